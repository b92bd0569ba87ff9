package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records the last input of every call and answers from the configured hooks.
type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	transact   func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)

	lastUpdate   *dynamodb.UpdateItemInput
	lastPut      *dynamodb.PutItemInput
	lastTransact *dynamodb.TransactWriteItemsInput
	queries      int
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getItem == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	if f.putItem == nil {
		return &dynamodb.PutItemOutput{}, nil
	}
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	if f.updateItem == nil {
		return &dynamodb.UpdateItemOutput{}, nil
	}
	return f.updateItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries++
	if f.query == nil {
		return &dynamodb.QueryOutput{}, nil
	}
	return f.query(in)
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.lastTransact = in
	if f.transact == nil {
		return &dynamodb.TransactWriteItemsOutput{}, nil
	}
	return f.transact(in)
}

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func cancelled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func marshalItem(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestBookingTransitionUpdate(t *testing.T) {
	paid := entities.BookingPaymentPaid
	spec := bookingTransitionUpdate("bk-1", entities.TransitionOwnerCancel,
		interfaces.BookingGuard{
			OwnerID:         "owner-1",
			PaymentStatusIn: []entities.BookingPaymentStatus{entities.BookingPaymentUnpaid},
		},
		entities.BookingPatch{PaymentStatus: &paid}, testNow)

	assert.Equal(t,
		"attribute_exists(#id) AND #status IN (:from0, :from1, :from2) AND #owner_id = :guard_owner AND #payment_status IN (:guard_ps0)",
		spec.condition)
	assert.Equal(t, "SET #status = :to, #updated_at = :now, #payment_status = :payment_status", spec.update)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "cancelled"}, spec.values[":to"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "confirmed"}, spec.values[":from2"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "owner-1"}, spec.values[":guard_owner"])

	for placeholder := range spec.names {
		assert.True(t, strings.Contains(spec.condition, placeholder) || strings.Contains(spec.update, placeholder), placeholder)
	}
}

func TestBookingTransitionUpdate_UnguardedCompletion(t *testing.T) {
	spec := bookingTransitionUpdate("bk-1", entities.TransitionAdminComplete, interfaces.BookingGuard{}, entities.BookingPatch{}, testNow)
	assert.Equal(t, "attribute_exists(#id)", spec.condition)
}

func TestBookingDynamoRepository(t *testing.T) {
	t.Run("get missing returns zero booking", func(t *testing.T) {
		repo := NewBookingDynamoRepository(&fakeDynamo{}, Tables{})
		b, err := repo.GetByID(context.Background(), "nope")
		require.NoError(t, err)
		assert.Empty(t, b.ID)
	})

	t.Run("get decodes row", func(t *testing.T) {
		item := toBookingItem(entities.Booking{
			ID: "bk-1", OwnerID: "owner-1", Status: entities.BookingStatusAccepted,
			PaymentStatus: entities.BookingPaymentUnpaid, PriceCents: 10000, StartAt: testNow,
		})
		fake := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.Equal(t, "bookings", aws.ToString(in.TableName))
			assert.True(t, aws.ToBool(in.ConsistentRead))
			return &dynamodb.GetItemOutput{Item: marshalItem(t, item)}, nil
		}}
		b, err := NewBookingDynamoRepository(fake, Tables{}).GetByID(context.Background(), "bk-1")
		require.NoError(t, err)
		assert.Equal(t, entities.BookingStatusAccepted, b.Status)
		assert.Equal(t, int64(10000), b.PriceCents)
		assert.True(t, testNow.Equal(b.StartAt))
	})

	t.Run("unassigned sitter is not written", func(t *testing.T) {
		fake := &fakeDynamo{}
		_, err := NewBookingDynamoRepository(fake, Tables{}).Create(context.Background(), entities.Booking{ID: "bk-1", OwnerID: "owner-1"})
		require.NoError(t, err)
		_, has := fake.lastPut.Item["sitter_id"]
		assert.False(t, has)
	})

	t.Run("create duplicate", func(t *testing.T) {
		fake := &fakeDynamo{putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			return nil, conditionFailed()
		}}
		_, err := NewBookingDynamoRepository(fake, Tables{}).Create(context.Background(), entities.Booking{ID: "bk-1"})
		assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	})

	t.Run("transition lost race", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, conditionFailed()
		}}
		_, err := NewBookingDynamoRepository(fake, Tables{}).Transition(context.Background(), "bk-1",
			entities.TransitionSitterAccept, interfaces.BookingGuard{}, entities.BookingPatch{})
		assert.ErrorIs(t, err, interfaces.ErrStaleStatus)
	})

	t.Run("transition returns new image", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, types.ReturnValueAllNew, in.ReturnValues)
			return &dynamodb.UpdateItemOutput{Attributes: marshalItem(t, bookingItem{ID: "bk-1", Status: "accepted"})}, nil
		}}
		b, err := NewBookingDynamoRepository(fake, Tables{}).Transition(context.Background(), "bk-1",
			entities.TransitionSitterAccept, interfaces.BookingGuard{}, entities.BookingPatch{})
		require.NoError(t, err)
		assert.Equal(t, entities.BookingStatusAccepted, b.Status)
	})

	t.Run("list follows pagination", func(t *testing.T) {
		fake := &fakeDynamo{}
		fake.query = func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, bookingsOwnerIndex, aws.ToString(in.IndexName))
			if fake.queries == 1 {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{marshalItem(t, bookingItem{ID: "bk-1"})},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": stringAttr("bk-1")},
				}, nil
			}
			assert.NotEmpty(t, in.ExclusiveStartKey)
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalItem(t, bookingItem{ID: "bk-2"})}}, nil
		}
		got, err := NewBookingDynamoRepository(fake, Tables{}).ListByOwner(context.Background(), "owner-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "bk-2", got[1].ID)
	})
}

func TestInvoiceDynamoRepository(t *testing.T) {
	t.Run("next sequence", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "counters", aws.ToString(in.TableName))
			assert.Equal(t, "ADD #seq :one", aws.ToString(in.UpdateExpression))
			return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
				"seq": &types.AttributeValueMemberN{Value: "42"},
			}}, nil
		}}
		n, err := NewInvoiceDynamoRepository(fake, Tables{}).NextSequence(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(42), n)
	})

	t.Run("checkout on settled invoice is stale", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, conditionFailed()
		}}
		_, err := NewInvoiceDynamoRepository(fake, Tables{}).SetCheckoutSession(context.Background(), "bk-1", "pref-1", "https://mp/checkout")
		assert.ErrorIs(t, err, interfaces.ErrStaleStatus)
	})

	t.Run("void with nothing awaiting", func(t *testing.T) {
		fake := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, conditionFailed()
		}}
		inv, err := NewInvoiceDynamoRepository(fake, Tables{}).Void(context.Background(), "bk-1")
		require.NoError(t, err)
		assert.Empty(t, inv.ID)
	})

	t.Run("lines survive a round trip", func(t *testing.T) {
		inv := entities.Invoice{
			ID: "inv-1", BookingID: "bk-1", Status: entities.InvoiceStatusAwaitingPayment,
			Lines: []entities.InvoiceLine{{Description: "Dog sitting", Quantity: 1, UnitCents: 10000, AmountCents: 10000}},
		}
		fake := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, invoicesIDIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalItem(t, toInvoiceItem(inv))}}, nil
		}}
		got, err := NewInvoiceDynamoRepository(fake, Tables{}).GetByID(context.Background(), "inv-1")
		require.NoError(t, err)
		assert.Equal(t, inv.Lines, got.Lines)
		assert.Nil(t, got.PaidAt)
	})
}

func TestPayoutDynamoRepository_MarkPaid(t *testing.T) {
	scheduled := toPayoutItem(entities.Payout{ID: "po-1", BookingID: "bk-1", Status: entities.PayoutStatusScheduled})

	t.Run("updates by booking key", func(t *testing.T) {
		fake := &fakeDynamo{
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalItem(t, scheduled)}}, nil
			},
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				assert.Equal(t, stringAttr("bk-1"), in.Key["booking_id"])
				assert.Contains(t, aws.ToString(in.UpdateExpression), "#transaction_ref = :ref")
				paid := scheduled
				paid.Status = "paid"
				paid.TransactionRef = "wire-7"
				return &dynamodb.UpdateItemOutput{Attributes: marshalItem(t, paid)}, nil
			},
		}
		p, err := NewPayoutDynamoRepository(fake, Tables{}).MarkPaid(context.Background(), "po-1", "wire-7", testNow)
		require.NoError(t, err)
		assert.Equal(t, entities.PayoutStatusPaid, p.Status)
		assert.Equal(t, "wire-7", p.TransactionRef)
	})

	t.Run("already paid", func(t *testing.T) {
		fake := &fakeDynamo{
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalItem(t, scheduled)}}, nil
			},
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, conditionFailed()
			},
		}
		_, err := NewPayoutDynamoRepository(fake, Tables{}).MarkPaid(context.Background(), "po-1", "", testNow)
		assert.ErrorIs(t, err, interfaces.ErrStaleStatus)
	})
}

func TestSettingsDynamoRepository(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		_, found, err := NewSettingsDynamoRepository(&fakeDynamo{}, Tables{}).GetNumber(context.Background(), "platform_fee_percent")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("string value is parsed", func(t *testing.T) {
		fake := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
				"key":   stringAttr("platform_fee_percent"),
				"value": stringAttr("12.5"),
			}}, nil
		}}
		v, found, err := NewSettingsDynamoRepository(fake, Tables{}).GetNumber(context.Background(), "platform_fee_percent")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 12.5, v)
	})

	t.Run("put writes a number", func(t *testing.T) {
		fake := &fakeDynamo{}
		require.NoError(t, NewSettingsDynamoRepository(fake, Tables{Settings: "cfg"}).PutNumber(context.Background(), "platform_fee_percent", 20))
		assert.Equal(t, "cfg", aws.ToString(fake.lastPut.TableName))
		assert.Equal(t, &types.AttributeValueMemberN{Value: "20"}, fake.lastPut.Item["value"])
	})
}

func TestLifecycleDynamoStore(t *testing.T) {
	inv := entities.Invoice{ID: "inv-1", BookingID: "bk-1", Status: entities.InvoiceStatusAwaitingPayment}

	t.Run("confirm writes booking and invoice together", func(t *testing.T) {
		fake := &fakeDynamo{}
		require.NoError(t, NewLifecycleDynamoStore(fake, Tables{}).ConfirmWithInvoice(context.Background(), "bk-1", "owner-1", inv, testNow))
		require.Len(t, fake.lastTransact.TransactItems, 2)
		assert.Equal(t, "bookings", aws.ToString(fake.lastTransact.TransactItems[0].Update.TableName))
		assert.Equal(t, "invoices", aws.ToString(fake.lastTransact.TransactItems[1].Put.TableName))
	})

	t.Run("confirm maps cancellation reasons", func(t *testing.T) {
		cases := []struct {
			name  string
			codes []string
			want  error
		}{
			{"booking guard", []string{"ConditionalCheckFailed", "None"}, interfaces.ErrStaleStatus},
			{"invoice exists", []string{"None", "ConditionalCheckFailed"}, interfaces.ErrAlreadyExists},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				fake := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
					return nil, cancelled(tc.codes...)
				}}
				err := NewLifecycleDynamoStore(fake, Tables{}).ConfirmWithInvoice(context.Background(), "bk-1", "owner-1", inv, testNow)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("non condition failures pass through", func(t *testing.T) {
		boom := errors.New("throttled")
		fake := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, boom
		}}
		err := NewLifecycleDynamoStore(fake, Tables{}).CompleteWithPayout(context.Background(), "bk-1", entities.Payout{ID: "po-1", BookingID: "bk-1"}, testNow)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("second payout is rejected", func(t *testing.T) {
		fake := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, cancelled("None", "ConditionalCheckFailed")
		}}
		err := NewLifecycleDynamoStore(fake, Tables{}).CompleteWithPayout(context.Background(), "bk-1", entities.Payout{ID: "po-1", BookingID: "bk-1"}, testNow)
		assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
	})

	t.Run("settlement with a new payment starts the booking", func(t *testing.T) {
		fake := &fakeDynamo{}
		err := NewLifecycleDynamoStore(fake, Tables{}).SettlePayment(context.Background(), entities.PaymentSettlement{
			Booking:      entities.Booking{ID: "bk-1"},
			Invoice:      inv,
			Payment:      entities.Payment{ID: "pay-1", InvoiceID: "inv-1", BookingID: "bk-1"},
			NewPayment:   true,
			StartBooking: true,
			ReceivedAt:   testNow,
		})
		require.NoError(t, err)

		items := fake.lastTransact.TransactItems
		require.Len(t, items, 3)
		assert.Equal(t, &types.AttributeValueMemberS{Value: "in_progress"}, items[0].Update.ExpressionAttributeValues[":to"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "paid"}, items[0].Update.ExpressionAttributeValues[":payment_status"])
		assert.Equal(t, "invoices", aws.ToString(items[1].Update.TableName))
		require.NotNil(t, items[2].Put)
		assert.Equal(t, stringAttr(formatTime(testNow)), items[2].Put.Item["received_at"])
	})

	t.Run("settlement of an uploaded proof stamps it", func(t *testing.T) {
		fake := &fakeDynamo{}
		err := NewLifecycleDynamoStore(fake, Tables{}).SettlePayment(context.Background(), entities.PaymentSettlement{
			Booking:    entities.Booking{ID: "bk-1"},
			Invoice:    inv,
			Payment:    entities.Payment{ID: "pay-1"},
			ReceivedAt: testNow,
		})
		require.NoError(t, err)

		items := fake.lastTransact.TransactItems
		assert.Equal(t, &types.AttributeValueMemberS{Value: "confirmed"}, items[0].Update.ExpressionAttributeValues[":to"])
		require.NotNil(t, items[2].Update)
		assert.Contains(t, aws.ToString(items[2].Update.ConditionExpression), "attribute_not_exists(#received_at)")
	})

	t.Run("settlement race is stale", func(t *testing.T) {
		fake := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, cancelled("None", "ConditionalCheckFailed", "None")
		}}
		err := NewLifecycleDynamoStore(fake, Tables{}).SettlePayment(context.Background(), entities.PaymentSettlement{
			Booking: entities.Booking{ID: "bk-1"}, Payment: entities.Payment{ID: "pay-1"}, ReceivedAt: testNow,
		})
		assert.ErrorIs(t, err, interfaces.ErrStaleStatus)
	})
}

package repository

import (
	"context"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	payoutsIDIndex     = "id-index"
	payoutsSitterIndex = "sitter_id-index"
	payoutsStatusIndex = "status-index"
)

type payoutItem struct {
	BookingID      string  `dynamodbav:"booking_id"`
	ID             string  `dynamodbav:"id"`
	SitterID       string  `dynamodbav:"sitter_id"`
	GrossCents     int64   `dynamodbav:"gross_cents"`
	FeePercent     float64 `dynamodbav:"fee_percent"`
	FeeCents       int64   `dynamodbav:"fee_cents"`
	AmountCents    int64   `dynamodbav:"amount_cents"`
	Currency       string  `dynamodbav:"currency"`
	Status         string  `dynamodbav:"status"`
	TransactionRef string  `dynamodbav:"transaction_ref,omitempty"`
	ScheduledAt    string  `dynamodbav:"scheduled_at"`
	PaidAt         string  `dynamodbav:"paid_at,omitempty"`
}

// PayoutDynamoRepository persists sitter payouts, one per booking.
//
// Table requirements:
//   - PK: booking_id (string)
//   - GSI: id-index (PK: id)
//   - GSI: sitter_id-index (PK: sitter_id)
//   - GSI: status-index (PK: status)
type PayoutDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPayoutRepository = (*PayoutDynamoRepository)(nil)

func NewPayoutDynamoRepository(ddb DynamoDBAPI, tables Tables) *PayoutDynamoRepository {
	return &PayoutDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Payouts}
}

func (r *PayoutDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Payout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": stringAttr(bookingID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payout{}, nil
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payout, error) {
	items, err := r.listByIndex(ctx, payoutsIDIndex, "id", id)
	if err != nil {
		return entities.Payout{}, err
	}
	if len(items) == 0 {
		return entities.Payout{}, nil
	}
	return items[0], nil
}

func (r *PayoutDynamoRepository) ListBySitter(ctx context.Context, sitterID string) ([]entities.Payout, error) {
	return r.listByIndex(ctx, payoutsSitterIndex, "sitter_id", sitterID)
}

func (r *PayoutDynamoRepository) ListByStatus(ctx context.Context, status entities.PayoutStatus) ([]entities.Payout, error) {
	return r.listByIndex(ctx, payoutsStatusIndex, "status", string(status))
}

func (r *PayoutDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Payout, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": stringAttr(value),
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAll(raw, fromPayoutItem)
}

// MarkPaid resolves the payout by id through the GSI, then updates it by booking key with a
// status condition so a concurrent mark-paid cannot overwrite the first transaction ref.
func (r *PayoutDynamoRepository) MarkPaid(ctx context.Context, id, transactionRef string, paidAt time.Time) (entities.Payout, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Payout{}, err
	}
	if current.ID == "" {
		return entities.Payout{}, interfaces.ErrStaleStatus
	}

	sets := "SET #status = :paid, #paid_at = :paid_at"
	names := map[string]string{
		"#booking_id": "booking_id",
		"#status":     "status",
		"#paid_at":    "paid_at",
	}
	values := map[string]types.AttributeValue{
		":paid":      stringAttr(string(entities.PayoutStatusPaid)),
		":paid_at":   stringAttr(formatTime(paidAt)),
		":scheduled": stringAttr(string(entities.PayoutStatusScheduled)),
	}
	if transactionRef != "" {
		sets += ", #transaction_ref = :ref"
		names["#transaction_ref"] = "transaction_ref"
		values[":ref"] = stringAttr(transactionRef)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": stringAttr(current.BookingID),
		},
		ConditionExpression:       aws.String("attribute_exists(#booking_id) AND #status = :scheduled"),
		UpdateExpression:          aws.String(sets),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payout{}, interfaces.ErrStaleStatus
		}
		return entities.Payout{}, err
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

// payoutPut inserts p only when the booking has no payout yet.
func payoutPut(table string, p entities.Payout) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toPayoutItem(p))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#booking_id)"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
	}, nil
}

func toPayoutItem(p entities.Payout) payoutItem {
	return payoutItem{
		BookingID:      p.BookingID,
		ID:             p.ID,
		SitterID:       p.SitterID,
		GrossCents:     p.GrossCents,
		FeePercent:     p.FeePercent,
		FeeCents:       p.FeeCents,
		AmountCents:    p.AmountCents,
		Currency:       p.Currency,
		Status:         string(p.Status),
		TransactionRef: p.TransactionRef,
		ScheduledAt:    formatTime(p.ScheduledAt),
		PaidAt:         formatTimePtr(p.PaidAt),
	}
}

func fromPayoutItem(it payoutItem) entities.Payout {
	return entities.Payout{
		ID:             it.ID,
		BookingID:      it.BookingID,
		SitterID:       it.SitterID,
		GrossCents:     it.GrossCents,
		FeePercent:     it.FeePercent,
		FeeCents:       it.FeeCents,
		AmountCents:    it.AmountCents,
		Currency:       it.Currency,
		Status:         entities.PayoutStatus(it.Status),
		TransactionRef: it.TransactionRef,
		ScheduledAt:    parseTime(it.ScheduledAt),
		PaidAt:         parseTimePtr(it.PaidAt),
	}
}

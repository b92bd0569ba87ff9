package repository

import (
	"context"
	"fmt"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// LifecycleDynamoStore writes the multi-table lifecycle steps with TransactWriteItems.
// Every item carries its own condition, so a lost race cancels the whole transaction.
type LifecycleDynamoStore struct {
	ddb    DynamoDBAPI
	tables Tables
}

var _ interfaces.ILifecycleStore = (*LifecycleDynamoStore)(nil)

func NewLifecycleDynamoStore(ddb DynamoDBAPI, tables Tables) *LifecycleDynamoStore {
	return &LifecycleDynamoStore{ddb: ddb, tables: tables.withDefaults()}
}

func (s *LifecycleDynamoStore) ConfirmWithInvoice(ctx context.Context, bookingID, ownerID string, inv entities.Invoice, now time.Time) error {
	booking := bookingTransitionUpdate(bookingID, entities.TransitionOwnerConfirm,
		interfaces.BookingGuard{OwnerID: ownerID}, entities.BookingPatch{}, now)

	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return err
	}
	invoice := types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(s.tables.Invoices),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#booking_id)"),
			ExpressionAttributeNames: map[string]string{
				"#booking_id": "booking_id",
			},
		},
	}

	return s.transact(ctx, []types.TransactWriteItem{
		booking.transactItem(s.tables.Bookings),
		invoice,
	}, map[int]error{
		0: interfaces.ErrStaleStatus,
		1: interfaces.ErrAlreadyExists,
	})
}

func (s *LifecycleDynamoStore) RecordPaymentProof(ctx context.Context, ownerID string, p entities.Payment, now time.Time) error {
	pending := entities.BookingPaymentPendingVerification
	booking := bookingTransitionUpdate(p.BookingID, entities.TransitionPaymentProof,
		interfaces.BookingGuard{
			OwnerID:         ownerID,
			PaymentStatusIn: []entities.BookingPaymentStatus{entities.BookingPaymentUnpaid, entities.BookingPaymentPendingVerification},
		},
		entities.BookingPatch{PaymentStatus: &pending}, now)

	put, err := paymentPut(s.tables.Payments, p)
	if err != nil {
		return err
	}

	return s.transact(ctx, []types.TransactWriteItem{
		booking.transactItem(s.tables.Bookings),
		{Put: put},
	}, map[int]error{
		0: interfaces.ErrStaleStatus,
		1: interfaces.ErrAlreadyExists,
	})
}

func (s *LifecycleDynamoStore) SettlePayment(ctx context.Context, st entities.PaymentSettlement) error {
	paid := entities.BookingPaymentPaid
	transition := entities.TransitionPaymentSettle
	if st.StartBooking {
		transition = entities.TransitionPaymentStart
	}
	booking := bookingTransitionUpdate(st.Booking.ID, transition,
		interfaces.BookingGuard{}, entities.BookingPatch{PaymentStatus: &paid}, st.ReceivedAt)
	invoice := invoiceSettleUpdate(st.Booking.ID, st.ReceivedAt)

	var payment types.TransactWriteItem
	if st.NewPayment {
		p := st.Payment
		receivedAt := st.ReceivedAt
		p.ReceivedAt = &receivedAt
		put, err := paymentPut(s.tables.Payments, p)
		if err != nil {
			return err
		}
		payment = types.TransactWriteItem{Put: put}
	} else {
		payment = paymentReceivedUpdate(st.Payment.ID, st.ReceivedAt).transactItem(s.tables.Payments)
	}

	return s.transact(ctx, []types.TransactWriteItem{
		booking.transactItem(s.tables.Bookings),
		invoice.transactItem(s.tables.Invoices),
		payment,
	}, map[int]error{
		0: interfaces.ErrStaleStatus,
		1: interfaces.ErrStaleStatus,
		2: interfaces.ErrStaleStatus,
	})
}

func (s *LifecycleDynamoStore) CompleteWithPayout(ctx context.Context, bookingID string, p entities.Payout, now time.Time) error {
	booking := bookingTransitionUpdate(bookingID, entities.TransitionAdminComplete,
		interfaces.BookingGuard{}, entities.BookingPatch{}, now)

	put, err := payoutPut(s.tables.Payouts, p)
	if err != nil {
		return err
	}

	return s.transact(ctx, []types.TransactWriteItem{
		booking.transactItem(s.tables.Bookings),
		{Put: put},
	}, map[int]error{
		0: interfaces.ErrStaleStatus,
		1: interfaces.ErrAlreadyExists,
	})
}

// transact runs items as one transaction. When it is cancelled by a failed condition, the
// error mapped to the lowest failing item index is returned.
func (s *LifecycleDynamoStore) transact(ctx context.Context, items []types.TransactWriteItem, onConditionFailed map[int]error) error {
	_, err := s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err == nil {
		return nil
	}

	failed, cancelled := failedConditions(err)
	if !cancelled {
		return err
	}
	for _, idx := range failed {
		if mapped, ok := onConditionFailed[idx]; ok {
			return mapped
		}
	}
	return fmt.Errorf("lifecycle transaction cancelled: %w", err)
}

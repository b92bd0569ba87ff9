package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	invoicesIDIndex    = "id-index"
	invoiceCounterName = "invoice_number"
)

type invoiceLineItem struct {
	Description string `dynamodbav:"description"`
	Quantity    int64  `dynamodbav:"quantity"`
	UnitCents   int64  `dynamodbav:"unit_cents"`
	AmountCents int64  `dynamodbav:"amount_cents"`
}

type invoiceItem struct {
	BookingID           string            `dynamodbav:"booking_id"`
	ID                  string            `dynamodbav:"id"`
	InvoiceNumber       string            `dynamodbav:"invoice_number"`
	IssuedAt            string            `dynamodbav:"issued_at"`
	DueAt               string            `dynamodbav:"due_at"`
	TotalCents          int64             `dynamodbav:"total_cents"`
	Currency            string            `dynamodbav:"currency"`
	Status              string            `dynamodbav:"status"`
	PaymentInstructions string            `dynamodbav:"payment_instructions"`
	Lines               []invoiceLineItem `dynamodbav:"lines"`
	CheckoutSessionID   string            `dynamodbav:"checkout_session_id,omitempty"`
	CheckoutURL         string            `dynamodbav:"checkout_url,omitempty"`
	PaidAt              string            `dynamodbav:"paid_at,omitempty"`
}

// InvoiceDynamoRepository persists invoices keyed by booking.
//
// Table requirements:
//   - PK: booking_id (string)
//   - GSI: id-index (PK: id)
//
// The invoice number sequence lives in the counters table (PK: name, attribute seq).
type InvoiceDynamoRepository struct {
	ddb           DynamoDBAPI
	tableName     string
	countersTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoDBAPI, tables Tables) *InvoiceDynamoRepository {
	tables = tables.withDefaults()
	return &InvoiceDynamoRepository{
		ddb:           ddb,
		tableName:     tables.Invoices,
		countersTable: tables.Counters,
	}
}

func (r *InvoiceDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": stringAttr(bookingID),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": stringAttr(id),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) NextSequence(ctx context.Context) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": stringAttr(invoiceCounterName),
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("invoice counter returned no sequence")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *InvoiceDynamoRepository) SetCheckoutSession(ctx context.Context, bookingID, sessionID, checkoutURL string) (entities.Invoice, error) {
	inv, err := r.updateAwaiting(ctx, bookingID,
		"SET #checkout_session_id = :sid, #checkout_url = :url",
		map[string]string{
			"#checkout_session_id": "checkout_session_id",
			"#checkout_url":        "checkout_url",
		},
		map[string]types.AttributeValue{
			":sid": stringAttr(sessionID),
			":url": stringAttr(checkoutURL),
		},
	)
	if err != nil && isConditionalCheckFailed(err) {
		return entities.Invoice{}, interfaces.ErrStaleStatus
	}
	return inv, err
}

func (r *InvoiceDynamoRepository) Void(ctx context.Context, bookingID string) (entities.Invoice, error) {
	inv, err := r.updateAwaiting(ctx, bookingID,
		"SET #status = :void",
		nil,
		map[string]types.AttributeValue{
			":void": stringAttr(string(entities.InvoiceStatusVoid)),
		},
	)
	if err != nil && isConditionalCheckFailed(err) {
		return entities.Invoice{}, nil
	}
	return inv, err
}

// updateAwaiting runs update only while the invoice is awaiting payment.
func (r *InvoiceDynamoRepository) updateAwaiting(ctx context.Context, bookingID, update string, names map[string]string, values map[string]types.AttributeValue) (entities.Invoice, error) {
	values[":awaiting"] = stringAttr(string(entities.InvoiceStatusAwaitingPayment))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"booking_id": stringAttr(bookingID),
		},
		ConditionExpression: aws.String("attribute_exists(#booking_id) AND #status = :awaiting"),
		UpdateExpression:    aws.String(update),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#booking_id": "booking_id",
			"#status":     "status",
		}, names),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// invoiceSettleUpdate marks an awaiting invoice paid into escrow.
func invoiceSettleUpdate(bookingID string, paidAt time.Time) updateSpec {
	return updateSpec{
		key:       map[string]types.AttributeValue{"booking_id": stringAttr(bookingID)},
		update:    "SET #status = :paid, #paid_at = :paid_at",
		condition: "attribute_exists(#booking_id) AND #status = :awaiting",
		names: map[string]string{
			"#booking_id": "booking_id",
			"#status":     "status",
			"#paid_at":    "paid_at",
		},
		values: map[string]types.AttributeValue{
			":paid":     stringAttr(string(entities.InvoiceStatusPaidEscrow)),
			":paid_at":  stringAttr(formatTime(paidAt)),
			":awaiting": stringAttr(string(entities.InvoiceStatusAwaitingPayment)),
		},
	}
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	lines := make([]invoiceLineItem, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, invoiceLineItem{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitCents:   l.UnitCents,
			AmountCents: l.AmountCents,
		})
	}
	return invoiceItem{
		BookingID:           inv.BookingID,
		ID:                  inv.ID,
		InvoiceNumber:       inv.InvoiceNumber,
		IssuedAt:            formatTime(inv.IssuedAt),
		DueAt:               formatTime(inv.DueAt),
		TotalCents:          inv.TotalCents,
		Currency:            inv.Currency,
		Status:              string(inv.Status),
		PaymentInstructions: inv.PaymentInstructions,
		Lines:               lines,
		CheckoutSessionID:   inv.CheckoutSessionID,
		CheckoutURL:         inv.CheckoutURL,
		PaidAt:              formatTimePtr(inv.PaidAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	lines := make([]entities.InvoiceLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.InvoiceLine{
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitCents:   l.UnitCents,
			AmountCents: l.AmountCents,
		})
	}
	return entities.Invoice{
		ID:                  it.ID,
		BookingID:           it.BookingID,
		InvoiceNumber:       it.InvoiceNumber,
		IssuedAt:            parseTime(it.IssuedAt),
		DueAt:               parseTime(it.DueAt),
		TotalCents:          it.TotalCents,
		Currency:            it.Currency,
		Status:              entities.InvoiceStatus(it.Status),
		PaymentInstructions: it.PaymentInstructions,
		Lines:               lines,
		CheckoutSessionID:   it.CheckoutSessionID,
		CheckoutURL:         it.CheckoutURL,
		PaidAt:              parseTimePtr(it.PaidAt),
	}
}

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

const paymentsInvoiceIndex = "invoice_id-index"

type paymentItem struct {
	ID          string `dynamodbav:"id"`
	InvoiceID   string `dynamodbav:"invoice_id"`
	BookingID   string `dynamodbav:"booking_id"`
	PayerID     string `dynamodbav:"payer_id"`
	AmountCents int64  `dynamodbav:"amount_cents"`
	Method      string `dynamodbav:"method"`
	ProofURL    string `dynamodbav:"proof_url,omitempty"`
	ReceivedAt  string `dynamodbav:"received_at,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists owner payments.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tables Tables) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Payments}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	put, err := paymentPut(r.tableName, p)
	if err != nil {
		return entities.Payment{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                put.TableName,
		Item:                     put.Item,
		ConditionExpression:      put.ConditionExpression,
		ExpressionAttributeNames: put.ExpressionAttributeNames,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceIndex),
		KeyConditionExpression: aws.String("#invoice_id = :invoice_id"),
		ExpressionAttributeNames: map[string]string{
			"#invoice_id": "invoice_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":invoice_id": stringAttr(invoiceID),
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAll(raw, fromPaymentItem)
}

// paymentPut inserts p only when its id is unused.
func paymentPut(table string, p entities.Payment) (*types.Put, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return nil, err
	}
	return &types.Put{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}, nil
}

// paymentReceivedUpdate stamps received_at on a payment that has not been received yet.
func paymentReceivedUpdate(id string, receivedAt time.Time) updateSpec {
	return updateSpec{
		key:       map[string]types.AttributeValue{"id": stringAttr(id)},
		update:    "SET #received_at = :received_at",
		condition: "attribute_exists(#id) AND attribute_not_exists(#received_at)",
		names: map[string]string{
			"#id":          "id",
			"#received_at": "received_at",
		},
		values: map[string]types.AttributeValue{
			":received_at": stringAttr(formatTime(receivedAt)),
		},
	}
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		BookingID:   p.BookingID,
		PayerID:     p.PayerID,
		AmountCents: p.AmountCents,
		Method:      string(p.Method),
		ProofURL:    p.ProofURL,
		ReceivedAt:  formatTimePtr(p.ReceivedAt),
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		BookingID:   it.BookingID,
		PayerID:     it.PayerID,
		AmountCents: it.AmountCents,
		Method:      entities.PaymentMethod(it.Method),
		ProofURL:    it.ProofURL,
		ReceivedAt:  parseTimePtr(it.ReceivedAt),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}

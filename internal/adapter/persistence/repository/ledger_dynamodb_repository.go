package repository

import (
	"context"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const ledgerBookingIndex = "booking_id-index"

type ledgerItem struct {
	ID        string         `dynamodbav:"id"`
	EventName string         `dynamodbav:"event_name"`
	ActorID   string         `dynamodbav:"actor_id"`
	ActorRole string         `dynamodbav:"actor_role"`
	BookingID string         `dynamodbav:"booking_id,omitempty"`
	Metadata  map[string]any `dynamodbav:"metadata,omitempty"`
	CreatedAt string         `dynamodbav:"created_at"`
}

// LedgerDynamoRepository is the append-only event log. Rows are only ever put.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id), sparse for events without a booking
type LedgerDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb DynamoDBAPI, tables Tables) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Ledger}
}

func (r *LedgerDynamoRepository) Append(ctx context.Context, e entities.LedgerEvent) error {
	av, err := attributevalue.MarshalMap(ledgerItem{
		ID:        e.ID,
		EventName: e.EventName,
		ActorID:   e.ActorID,
		ActorRole: string(e.ActorRole),
		BookingID: e.BookingID,
		Metadata:  e.Metadata,
		CreatedAt: formatTime(e.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil && isConditionalCheckFailed(err) {
		return interfaces.ErrAlreadyExists
	}
	return err
}

func (r *LedgerDynamoRepository) ListByBooking(ctx context.Context, bookingID string) ([]entities.LedgerEvent, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ledgerBookingIndex),
		KeyConditionExpression: aws.String("#booking_id = :booking_id"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":booking_id": stringAttr(bookingID),
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalAll(raw, func(it ledgerItem) entities.LedgerEvent {
		return entities.LedgerEvent{
			ID:        it.ID,
			EventName: it.EventName,
			ActorID:   it.ActorID,
			ActorRole: entities.UserType(it.ActorRole),
			BookingID: it.BookingID,
			Metadata:  it.Metadata,
			CreatedAt: parseTime(it.CreatedAt),
		}
	})
}

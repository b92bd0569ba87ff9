package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"petsit_booking/internal/domain/entities"
	"petsit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	bookingsOwnerIndex  = "owner_id-index"
	bookingsSitterIndex = "sitter_id-index"
	bookingsStatusIndex = "status-index"
)

type bookingItem struct {
	ID                 string `dynamodbav:"id"`
	OwnerID            string `dynamodbav:"owner_id"`
	SitterID           string `dynamodbav:"sitter_id,omitempty"`
	ServiceID          string `dynamodbav:"service_id"`
	ServiceType        string `dynamodbav:"service_type,omitempty"`
	StartAt            string `dynamodbav:"start_at"`
	EndAt              string `dynamodbav:"end_at"`
	PriceCents         int64  `dynamodbav:"price_cents"`
	Currency           string `dynamodbav:"currency"`
	Status             string `dynamodbav:"status"`
	PaymentStatus      string `dynamodbav:"payment_status"`
	Notes              string `dynamodbav:"notes,omitempty"`
	CancelledBy        string `dynamodbav:"cancelled_by,omitempty"`
	CancellationReason string `dynamodbav:"cancellation_reason,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//   - GSI: sitter_id-index (PK: sitter_id), sparse until a sitter is assigned
//   - GSI: status-index (PK: status)

type BookingDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoDBAPI, tables Tables) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: tables.withDefaults().Bookings,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Booking{}, interfaces.ErrAlreadyExists
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsOwnerIndex, "owner_id", ownerID)
}

func (r *BookingDynamoRepository) ListBySitter(ctx context.Context, sitterID string) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsSitterIndex, "sitter_id", sitterID)
}

func (r *BookingDynamoRepository) ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error) {
	return r.listByIndex(ctx, bookingsStatusIndex, "status", string(status))
}

func (r *BookingDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Booking, error) {
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
	return unmarshalAll(raw, fromBookingItem)
}

// Transition applies t as a single conditional update. The write only succeeds when the stored
// status is one of t.From and the guard attributes match; otherwise nothing is written and
// ErrStaleStatus is returned.
func (r *BookingDynamoRepository) Transition(ctx context.Context, id string, t entities.Transition, guard interfaces.BookingGuard, patch entities.BookingPatch) (entities.Booking, error) {
	spec := bookingTransitionUpdate(id, t, guard, patch, r.now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       spec.key,
		ConditionExpression:       aws.String(spec.condition),
		UpdateExpression:          aws.String(spec.update),
		ExpressionAttributeValues: spec.values,
		ExpressionAttributeNames:  spec.names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Booking{}, interfaces.ErrStaleStatus
		}
		return entities.Booking{}, err
	}
	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

// updateSpec is an update expression usable both in UpdateItem and in a transaction.
type updateSpec struct {
	key       map[string]types.AttributeValue
	update    string
	condition string
	names     map[string]string
	values    map[string]types.AttributeValue
}

func (s updateSpec) transactItem(table string) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(table),
			Key:                       s.key,
			UpdateExpression:          aws.String(s.update),
			ConditionExpression:       aws.String(s.condition),
			ExpressionAttributeNames:  s.names,
			ExpressionAttributeValues: s.values,
		},
	}
}

func bookingTransitionUpdate(id string, t entities.Transition, guard interfaces.BookingGuard, patch entities.BookingPatch, now time.Time) updateSpec {
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":  stringAttr(string(t.To)),
		":now": stringAttr(formatTime(now)),
	}
	sets := []string{"#status = :to", "#updated_at = :now"}

	if patch.PriceCents != nil {
		names["#price_cents"] = "price_cents"
		values[":price_cents"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*patch.PriceCents, 10)}
		sets = append(sets, "#price_cents = :price_cents")
	}
	if patch.PaymentStatus != nil {
		names["#payment_status"] = "payment_status"
		values[":payment_status"] = stringAttr(string(*patch.PaymentStatus))
		sets = append(sets, "#payment_status = :payment_status")
	}
	if patch.CancelledBy != nil {
		names["#cancelled_by"] = "cancelled_by"
		values[":cancelled_by"] = stringAttr(*patch.CancelledBy)
		sets = append(sets, "#cancelled_by = :cancelled_by")
	}
	if patch.CancellationReason != nil {
		names["#cancellation_reason"] = "cancellation_reason"
		values[":cancellation_reason"] = stringAttr(*patch.CancellationReason)
		sets = append(sets, "#cancellation_reason = :cancellation_reason")
	}

	conds := []string{"attribute_exists(#id)"}
	if len(t.From) > 0 {
		conds = append(conds, inCondition("#status", ":from", statusStrings(t.From), values))
	}
	if guard.OwnerID != "" {
		names["#owner_id"] = "owner_id"
		values[":guard_owner"] = stringAttr(guard.OwnerID)
		conds = append(conds, "#owner_id = :guard_owner")
	}
	if guard.SitterID != "" {
		names["#sitter_id"] = "sitter_id"
		values[":guard_sitter"] = stringAttr(guard.SitterID)
		conds = append(conds, "#sitter_id = :guard_sitter")
	}
	if len(guard.PaymentStatusIn) > 0 {
		names["#payment_status"] = "payment_status"
		ps := make([]string, 0, len(guard.PaymentStatusIn))
		for _, s := range guard.PaymentStatusIn {
			ps = append(ps, string(s))
		}
		conds = append(conds, inCondition("#payment_status", ":guard_ps", ps, values))
	}

	return updateSpec{
		key:       map[string]types.AttributeValue{"id": stringAttr(id)},
		update:    "SET " + strings.Join(sets, ", "),
		condition: strings.Join(conds, " AND "),
		names:     names,
		values:    values,
	}
}

// inCondition renders "<name> IN (:p0, :p1, ...)" and registers the placeholders in values.
func inCondition(name, prefix string, options []string, values map[string]types.AttributeValue) string {
	placeholders := make([]string, 0, len(options))
	for i, opt := range options {
		ph := fmt.Sprintf("%s%d", prefix, i)
		values[ph] = stringAttr(opt)
		placeholders = append(placeholders, ph)
	}
	return fmt.Sprintf("%s IN (%s)", name, strings.Join(placeholders, ", "))
}

func statusStrings(in []entities.BookingStatus) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:                 b.ID,
		OwnerID:            b.OwnerID,
		SitterID:           b.SitterID,
		ServiceID:          b.ServiceID,
		ServiceType:        b.ServiceType,
		StartAt:            formatTime(b.StartAt),
		EndAt:              formatTime(b.EndAt),
		PriceCents:         b.PriceCents,
		Currency:           b.Currency,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		Notes:              b.Notes,
		CancelledBy:        b.CancelledBy,
		CancellationReason: b.CancellationReason,
		CreatedAt:          formatTime(b.CreatedAt),
		UpdatedAt:          formatTime(b.UpdatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	return entities.Booking{
		ID:                 it.ID,
		OwnerID:            it.OwnerID,
		SitterID:           it.SitterID,
		ServiceID:          it.ServiceID,
		ServiceType:        it.ServiceType,
		StartAt:            parseTime(it.StartAt),
		EndAt:              parseTime(it.EndAt),
		PriceCents:         it.PriceCents,
		Currency:           it.Currency,
		Status:             entities.BookingStatus(it.Status),
		PaymentStatus:      entities.BookingPaymentStatus(it.PaymentStatus),
		Notes:              it.Notes,
		CancelledBy:        it.CancelledBy,
		CancellationReason: it.CancellationReason,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

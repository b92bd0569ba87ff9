package repository

import (
	"context"
	"fmt"
	"strconv"

	"petsit_booking/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SettingsDynamoRepository stores marketplace settings as key/value rows.
//
// Table requirements:
//   - PK: key (string)
//   - value: number
type SettingsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoDBAPI, tables Tables) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Settings}
}

func (r *SettingsDynamoRepository) GetNumber(ctx context.Context, key string) (float64, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": stringAttr(key),
		},
	})
	if err != nil {
		return 0, false, err
	}
	if len(out.Item) == 0 {
		return 0, false, nil
	}

	switch v := out.Item["value"].(type) {
	case *types.AttributeValueMemberN:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return 0, false, fmt.Errorf("setting %s: %w", key, err)
		}
		return f, true, nil
	case *types.AttributeValueMemberS:
		// rows edited by hand in the console are often strings
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return 0, false, fmt.Errorf("setting %s: %w", key, err)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("setting %s has no numeric value", key)
	}
}

func (r *SettingsDynamoRepository) PutNumber(ctx context.Context, key string, value float64) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"key":   stringAttr(key),
			"value": &types.AttributeValueMemberN{Value: strconv.FormatFloat(value, 'f', -1, 64)},
		},
	})
	return err
}

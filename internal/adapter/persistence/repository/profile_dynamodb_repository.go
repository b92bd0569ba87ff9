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

type profileItem struct {
	ID       string `dynamodbav:"id"`
	Email    string `dynamodbav:"email"`
	FullName string `dynamodbav:"full_name"`
	UserType string `dynamodbav:"user_type"`
}

// ProfileDynamoRepository reads the profiles table owned by the accounts service.
type ProfileDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb DynamoDBAPI, tables Tables) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{ddb: ddb, tableName: tables.withDefaults().Profiles}
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringAttr(id),
		},
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return entities.Profile{
		ID:       it.ID,
		Email:    it.Email,
		FullName: it.FullName,
		UserType: entities.UserType(it.UserType),
	}, nil
}

package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/GioMjds/pinterest-backend/internal/domain"
)

// BoardRepo provides typed DynamoDB operations for the boards table.
type BoardRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewBoardRepo(client *dynamodb.Client, tableName string) *BoardRepo {
	return &BoardRepo{client: client, tableName: tableName}
}

func (r *BoardRepo) Put(ctx context.Context, b *domain.Board) error {
	item, err := attributevalue.MarshalMap(b)
	if err != nil {
		return fmt.Errorf("marshal board: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *BoardRepo) Get(ctx context.Context, boardID string) (*domain.Board, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("board_id", boardID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("board not found: %w", domain.ErrNotFound)
	}
	var b domain.Board
	if err := attributevalue.UnmarshalMap(out.Item, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListByUser queries the user_id GSI for a user's enabled boards.
func (r *BoardRepo) ListByUser(ctx context.Context, userID string) ([]domain.Board, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("user_id-index"),
		KeyConditionExpression: aws.String("user_id = :uid"),
		FilterExpression:       aws.String("enable = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
			":t":   &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	var boards []domain.Board
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *BoardRepo) Update(ctx context.Context, boardID string, updates map[string]interface{}) error {
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("board_id", boardID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *BoardRepo) SoftDelete(ctx context.Context, boardID string) error {
	return r.Update(ctx, boardID, map[string]interface{}{fieldEnable: false})
}

// AdjustPinCount atomically adds delta to the board's denormalized pin counter.
func (r *BoardRepo) AdjustPinCount(ctx context.Context, boardID string, delta int) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("board_id", boardID),
		UpdateExpression:          aws.String("ADD #c :d"),
		ExpressionAttributeNames:  map[string]string{"#c": fieldPinCount},
		ExpressionAttributeValues: map[string]types.AttributeValue{":d": numAttr(delta)},
	})
	return err
}

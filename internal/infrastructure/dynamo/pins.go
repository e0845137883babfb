package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/GioMjds/pinterest-backend/internal/domain"
)

// PinRepo provides typed DynamoDB operations for the pins table.
type PinRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPinRepo(client *dynamodb.Client, tableName string) *PinRepo {
	return &PinRepo{client: client, tableName: tableName}
}

func (r *PinRepo) Put(ctx context.Context, p *domain.Pin) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal pin: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *PinRepo) Get(ctx context.Context, pinID string) (*domain.Pin, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("pin_id", pinID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("pin not found: %w", domain.ErrNotFound)
	}
	var p domain.Pin
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ScanPage returns a page of enabled pins for the home feed.
// cursor is a base64-encoded pin_id used as ExclusiveStartKey.
// Returns the items, a next cursor (empty string when no more pages), and any error.
func (r *PinRepo) ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Pin, string, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("enable = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
		Limit: aws.Int32(limit),
	}
	if cursor != "" {
		pinID, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", fmt.Errorf("invalid cursor: %w", domain.ErrBadRequest)
		}
		input.ExclusiveStartKey = strKey("pin_id", pinID)
	}
	out, err := r.client.Scan(ctx, input)
	if err != nil {
		return nil, "", err
	}
	var pins []domain.Pin
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &pins); err != nil {
		return nil, "", err
	}
	nextCursor := ""
	if v, ok := out.LastEvaluatedKey["pin_id"].(*types.AttributeValueMemberS); ok {
		nextCursor = encodeCursor(v.Value)
	}
	return pins, nextCursor, nil
}

// ListByBoard queries the board_id GSI for a board's enabled pins.
func (r *PinRepo) ListByBoard(ctx context.Context, boardID string) ([]domain.Pin, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("board_id-index"),
		KeyConditionExpression: aws.String("board_id = :bid"),
		FilterExpression:       aws.String("enable = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: boardID},
			":t":   &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	var pins []domain.Pin
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &pins); err != nil {
		return nil, err
	}
	return pins, nil
}

func (r *PinRepo) SoftDelete(ctx context.Context, pinID string) error {
	ue, err := buildUpdateExpr(map[string]interface{}{fieldEnable: false})
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("pin_id", pinID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// AdjustCount atomically adds delta to one of the pin's denormalized counters
// (save_count or comment_count).
func (r *PinRepo) AdjustCount(ctx context.Context, pinID, counter string, delta int) error {
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("pin_id", pinID),
		UpdateExpression:          aws.String("ADD #c :d"),
		ExpressionAttributeNames:  map[string]string{"#c": counter},
		ExpressionAttributeValues: map[string]types.AttributeValue{":d": numAttr(delta)},
	})
	return err
}

// SaveRepo records pins saved to boards.
// PK: user_id, SK: pin_id — the key shape itself enforces one save per (user, pin).
type SaveRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewSaveRepo(client *dynamodb.Client, tableName string) *SaveRepo {
	return &SaveRepo{client: client, tableName: tableName}
}

// PutIfAbsent inserts the save, rejecting a duplicate atomically.
func (r *SaveRepo) PutIfAbsent(ctx context.Context, s *domain.PinSave) error {
	item, err := attributevalue.MarshalMap(s)
	if err != nil {
		return fmt.Errorf("marshal pin save: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(user_id)"),
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("pin already saved: %w", domain.ErrConflict)
	}
	return err
}

// ListByUser returns all of a user's saves.
func (r *SaveRepo) ListByUser(ctx context.Context, userID string) ([]domain.PinSave, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	var saves []domain.PinSave
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &saves); err != nil {
		return nil, err
	}
	return saves, nil
}

// Delete removes the save, failing with ErrNotFound when it never existed.
// An unconditional delete would succeed silently on a missing key and let
// the caller decrement save_count below zero.
func (r *SaveRepo) Delete(ctx context.Context, userID, pinID string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 compositeKey("user_id", userID, "pin_id", pinID),
		ConditionExpression: aws.String("attribute_exists(user_id)"),
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("pin not saved: %w", domain.ErrNotFound)
	}
	return err
}

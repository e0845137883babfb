package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/GioMjds/pinterest-backend/internal/domain"
)

// OTPRepo manages transient one-time codes.
// PK: email, SK: purpose. The table's TTL attribute is expires_at, so expired
// entries are reaped by DynamoDB; the conditional write below also treats a
// stale-but-unreaped entry as absent.
type OTPRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOTPRepo(client *dynamodb.Client, tableName string) *OTPRepo {
	return &OTPRepo{client: client, tableName: tableName}
}

// PutIfAbsent stores the entry only when no live code exists for the same
// (email, purpose). The condition makes issue-if-absent atomic under
// concurrent requests for the same identity. An outstanding live code is
// reported as domain.ErrRateLimited.
func (r *OTPRepo) PutIfAbsent(ctx context.Context, e *domain.OTPEntry) error {
	item, err := attributevalue.MarshalMap(e)
	if err != nil {
		return fmt.Errorf("marshal otp entry: %w", err)
	}
	now := strconv.FormatInt(time.Now().Unix(), 10)
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email) OR expires_at < :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: now},
		},
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return fmt.Errorf("an OTP is already outstanding for this email: %w", domain.ErrRateLimited)
	}
	return err
}

func (r *OTPRepo) Get(ctx context.Context, purpose, email string) (*domain.OTPEntry, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey("email", email, "purpose", purpose),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("otp entry not found: %w", domain.ErrNotFound)
	}
	var e domain.OTPEntry
	if err := attributevalue.UnmarshalMap(out.Item, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// IncrementAttempts bumps the failed-attempt counter and returns the new count.
func (r *OTPRepo) IncrementAttempts(ctx context.Context, purpose, email string) (int, error) {
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       compositeKey("email", email, "purpose", purpose),
		UpdateExpression:          aws.String("ADD #a :one"),
		ConditionExpression:       aws.String("attribute_exists(email)"),
		ExpressionAttributeNames:  map[string]string{"#a": fieldAttempts},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": &types.AttributeValueMemberN{Value: "1"}},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return 0, fmt.Errorf("otp entry not found: %w", domain.ErrNotFound)
	}
	if err != nil {
		return 0, err
	}
	n, ok := out.Attributes[fieldAttempts].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("unexpected attempts attribute type")
	}
	count, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("parse attempts: %w", err)
	}
	return count, nil
}

// Delete removes the entry, enforcing single-use semantics.
func (r *OTPRepo) Delete(ctx context.Context, purpose, email string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey("email", email, "purpose", purpose),
	})
	return err
}

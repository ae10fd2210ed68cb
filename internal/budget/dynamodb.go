package budget

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	skWindow        = "WINDOW"
	attrWindowStart = "windowStart"
	counterPrefix   = "req_"
)

// dynamodbAPI is the minimal DynamoDB interface required by DynamoDB.
// *dynamodb.Client satisfies it.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// DynamoDB is a Store backed by a single table item per namespace. The item
// holds the window start and one counter attribute per key; every change is a
// conditional write so concurrent processes never exceed a limit.
type DynamoDB struct {
	api       dynamodbAPI
	tableName string
	pk        string
	window    time.Duration
	now       Clock
}

type DynamoDBOption func(*DynamoDB)

func WithDynamoDBClock(now Clock) DynamoDBOption {
	return func(d *DynamoDB) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDynamoDB creates a DynamoDB store.
func NewDynamoDB(api dynamodbAPI, tableName, namespace string, opts ...DynamoDBOption) (*DynamoDB, error) {
	if api == nil {
		return nil, errors.New("budget: dynamodb api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("budget: table name must not be empty")
	}
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return nil, errors.New("budget: namespace must not be empty")
	}
	d := &DynamoDB{
		api:       api,
		tableName: tableName,
		pk:        "BUDGET#" + namespace,
		window:    DefaultWindow,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *DynamoDB) Allow(ctx context.Context, key string, limit int) (bool, error) {
	if limit <= 0 {
		return false, nil
	}
	now := d.now()
	cutoff := now.Add(-d.window).UnixMilli()

	// A reset racing with another process can make the first increment miss;
	// one retry is enough because the winner opened a fresh window.
	for attempt := 0; attempt < 2; attempt++ {
		ok, err := d.increment(ctx, key, limit, cutoff)
		if err != nil || ok {
			return ok, err
		}
		if attempt > 0 {
			break
		}
		ok, err = d.reset(ctx, key, now, cutoff)
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

// count returns the number of requests admitted for key in the current
// window.
func (d *DynamoDB) count(ctx context.Context, key string) (int, error) {
	out, err := d.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            d.itemKey(),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, fmt.Errorf("budget: dynamodb count get item: %w", err)
	}
	if out == nil || len(out.Item) == 0 {
		return 0, nil
	}
	start, err := intAttr(out.Item, attrWindowStart)
	if err != nil {
		return 0, fmt.Errorf("budget: dynamodb count decode window: %w", err)
	}
	if int64(start) < d.now().Add(-d.window).UnixMilli() {
		return 0, nil
	}
	if _, ok := out.Item[counterAttr(key)]; !ok {
		return 0, nil
	}
	n, err := intAttr(out.Item, counterAttr(key))
	if err != nil {
		return 0, fmt.Errorf("budget: dynamodb count decode counter: %w", err)
	}
	return n, nil
}

func (d *DynamoDB) increment(ctx context.Context, key string, limit int, cutoff int64) (bool, error) {
	_, err := d.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(d.tableName),
		Key:                 d.itemKey(),
		UpdateExpression:    aws.String("SET #c = if_not_exists(#c, :zero) + :one"),
		ConditionExpression: aws.String("#ws >= :cutoff AND (attribute_not_exists(#c) OR #c < :limit)"),
		ExpressionAttributeNames: map[string]string{
			"#c":  counterAttr(key),
			"#ws": attrWindowStart,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero":   numberAttr(0),
			":one":    numberAttr(1),
			":cutoff": numberAttr(cutoff),
			":limit":  numberAttr(int64(limit)),
		},
	})
	if isConditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("budget: dynamodb increment %q: %w", key, err)
	}
	return true, nil
}

// reset replaces the whole item, which clears every counter, but only when
// the item is missing or its window has elapsed.
func (d *DynamoDB) reset(ctx context.Context, key string, now time.Time, cutoff int64) (bool, error) {
	item := d.itemKey()
	item[attrWindowStart] = numberAttr(now.UnixMilli())
	item[counterAttr(key)] = numberAttr(1)
	item["ttl"] = numberAttr(now.Add(2 * d.window).Unix())

	_, err := d.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(d.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) OR #ws < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#ws": attrWindowStart,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cutoff": numberAttr(cutoff),
		},
	})
	if isConditionFailed(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("budget: dynamodb reset window: %w", err)
	}
	return true, nil
}

func (d *DynamoDB) itemKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: d.pk},
		"SK": &types.AttributeValueMemberS{Value: skWindow},
	}
}

func counterAttr(key string) string {
	return counterPrefix + key
}

func numberAttr(n int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func intAttr(item map[string]types.AttributeValue, key string) (int, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("budget: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("budget: attribute %q is not a number", key)
	}
	parsed, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("budget: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}

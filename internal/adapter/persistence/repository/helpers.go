package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// updateByID runs a conditional UpdateItem keyed on id and returns the new
// attribute map. A nil map without error means the record does not exist.
func updateByID(
	ctx context.Context,
	ddb *dynamodb.Client,
	tableName, id, updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (map[string]types.AttributeValue, error) {
	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: &tableName,
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       stringPtr("attribute_exists(#id)"),
		UpdateExpression:          &updateExpr,
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil, nil
		}
		return nil, err
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	return out.Attributes, nil
}

func stringPtr(s string) *string { return &s }

// deleteByID runs a conditional DeleteItem keyed on id; false means the
// record did not exist.
func deleteByID(ctx context.Context, ddb *dynamodb.Client, tableName, id string) (bool, error) {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &tableName,
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: stringPtr("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// patchBuilder accumulates a SET update expression from optional fields.
type patchBuilder struct {
	set    []string
	values map[string]types.AttributeValue
	names  map[string]string
}

func newPatchBuilder() *patchBuilder {
	return &patchBuilder{
		set: []string{"#updated_at = :updated_at"},
		values: map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		names: map[string]string{"#updated_at": "updated_at"},
	}
}

func (b *patchBuilder) setAttr(attr string, v types.AttributeValue) {
	b.set = append(b.set, "#"+attr+" = :"+attr)
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
}

func (b *patchBuilder) setString(attr string, v *string) {
	if v != nil {
		b.setAttr(attr, &types.AttributeValueMemberS{Value: *v})
	}
}

func (b *patchBuilder) setInt(attr string, v *int) {
	if v != nil {
		b.setAttr(attr, &types.AttributeValueMemberN{Value: strconv.Itoa(*v)})
	}
}

func (b *patchBuilder) setBool(attr string, v *bool) {
	if v != nil {
		b.setAttr(attr, &types.AttributeValueMemberBOOL{Value: *v})
	}
}

func (b *patchBuilder) expr() string {
	return "SET " + strings.Join(b.set, ", ")
}

// scanAll drains a paginated Scan, following LastEvaluatedKey until the
// table is exhausted.
func scanAll(ctx context.Context, ddb *dynamodb.Client, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

package repository

import (
	"context"
	"fmt"
	"sort"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultFieldValuesTableName = "form_field_values"

type fieldValueRecord struct {
	ID           string `dynamodbav:"id"`
	FieldType    string `dynamodbav:"field_type"`
	Value        string `dynamodbav:"value"`
	Label        string `dynamodbav:"label"`
	DisplayOrder int    `dynamodbav:"display_order"`
	IsActive     bool   `dynamodbav:"is_active"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// FieldValueDynamoRepository persists dropdown options in DynamoDB. The
// formFields/{type}/values hierarchy of the document store is flattened into
// one table with a field_type attribute.
//
// Table requirements:
//   - PK: id (string)

type FieldValueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFieldValueRepository = (*FieldValueDynamoRepository)(nil)

func NewFieldValueDynamoRepository(ddb *dynamodb.Client) *FieldValueDynamoRepository {
	return &FieldValueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FIELD_VALUES_TABLE", defaultFieldValuesTableName),
	}
}

func (r *FieldValueDynamoRepository) Create(ctx context.Context, v entities.FieldValue) (entities.FieldValue, error) {
	av, err := attributevalue.MarshalMap(toFieldValueRecord(v))
	if err != nil {
		return entities.FieldValue{}, err
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
		return entities.FieldValue{}, fmt.Errorf("create field value: %w", err)
	}
	return v, nil
}

func (r *FieldValueDynamoRepository) GetByID(ctx context.Context, id string) (entities.FieldValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FieldValue{}, fmt.Errorf("get field value: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.FieldValue{}, nil
	}
	var rec fieldValueRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.FieldValue{}, err
	}
	return fromFieldValueRecord(rec), nil
}

func (r *FieldValueDynamoRepository) ListByType(ctx context.Context, fieldType string) ([]entities.FieldValue, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#field_type = :field_type"),
		ExpressionAttributeNames: map[string]string{
			"#field_type": "field_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":field_type": &types.AttributeValueMemberS{Value: fieldType},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list field values: %w", err)
	}

	values := make([]entities.FieldValue, 0, len(raw))
	for _, item := range raw {
		var rec fieldValueRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		values = append(values, fromFieldValueRecord(rec))
	}

	sort.SliceStable(values, func(i, j int) bool {
		if values[i].DisplayOrder != values[j].DisplayOrder {
			return values[i].DisplayOrder < values[j].DisplayOrder
		}
		return values[i].Label < values[j].Label
	})
	return values, nil
}

func (r *FieldValueDynamoRepository) Update(ctx context.Context, id string, patch interfaces.FieldValuePatch) (entities.FieldValue, error) {
	b := newPatchBuilder()
	b.setString("value", patch.Value)
	b.setString("label", patch.Label)
	b.setInt("display_order", patch.DisplayOrder)
	b.setBool("is_active", patch.IsActive)

	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, b.expr(), b.values, b.names)
	if err != nil {
		return entities.FieldValue{}, fmt.Errorf("update field value: %w", err)
	}
	if attrs == nil {
		return entities.FieldValue{}, nil
	}
	var rec fieldValueRecord
	if err := attributevalue.UnmarshalMap(attrs, &rec); err != nil {
		return entities.FieldValue{}, err
	}
	return fromFieldValueRecord(rec), nil
}

func (r *FieldValueDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := deleteByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return false, fmt.Errorf("delete field value: %w", err)
	}
	return found, nil
}

func (r *FieldValueDynamoRepository) FindByTypeValue(ctx context.Context, fieldType, value string) (entities.FieldValue, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#field_type = :field_type AND #value = :value"),
		ExpressionAttributeNames: map[string]string{
			"#field_type": "field_type",
			"#value":      "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":field_type": &types.AttributeValueMemberS{Value: fieldType},
			":value":      &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return entities.FieldValue{}, fmt.Errorf("find field value: %w", err)
	}
	if len(raw) == 0 {
		return entities.FieldValue{}, nil
	}
	var rec fieldValueRecord
	if err := attributevalue.UnmarshalMap(raw[0], &rec); err != nil {
		return entities.FieldValue{}, err
	}
	return fromFieldValueRecord(rec), nil
}

func toFieldValueRecord(v entities.FieldValue) fieldValueRecord {
	return fieldValueRecord{
		ID:           v.ID,
		FieldType:    v.FieldType,
		Value:        v.Value,
		Label:        v.Label,
		DisplayOrder: v.DisplayOrder,
		IsActive:     v.IsActive,
		CreatedAt:    formatTime(v.CreatedAt),
		UpdatedAt:    formatTime(v.UpdatedAt),
	}
}

func fromFieldValueRecord(rec fieldValueRecord) entities.FieldValue {
	return entities.FieldValue{
		ID:           rec.ID,
		FieldType:    rec.FieldType,
		Value:        rec.Value,
		Label:        rec.Label,
		DisplayOrder: rec.DisplayOrder,
		IsActive:     rec.IsActive,
		CreatedAt:    parseTime(rec.CreatedAt),
		UpdatedAt:    parseTime(rec.UpdatedAt),
	}
}

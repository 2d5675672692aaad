package repository

import (
	"context"
	"fmt"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrganisationContactsTableName = "organisation_contacts"

type organisationContactRecord struct {
	ID             string `dynamodbav:"id"`
	OrganisationID string `dynamodbav:"organisation_id"`
	ContactID      string `dynamodbav:"contact_id"`
	ContactName    string `dynamodbav:"contact_name"`
	Role           string `dynamodbav:"role,omitempty"`
	IsPrimary      bool   `dynamodbav:"is_primary"`
	Priority       int    `dynamodbav:"priority"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// OrganisationContactDynamoRepository persists the organisation-contact
// relationship in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// DemotePrimaries is a scan followed by one UpdateItem per record. It is not
// atomic with the write it precedes; two racing writers can leave two
// primaries behind.

type OrganisationContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrganisationContactRepository = (*OrganisationContactDynamoRepository)(nil)

func NewOrganisationContactDynamoRepository(ddb *dynamodb.Client) *OrganisationContactDynamoRepository {
	return &OrganisationContactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORGANISATION_CONTACTS_TABLE", defaultOrganisationContactsTableName),
	}
}

func (r *OrganisationContactDynamoRepository) Create(ctx context.Context, rel entities.OrganisationContact) (entities.OrganisationContact, error) {
	av, err := attributevalue.MarshalMap(toOrganisationContactRecord(rel))
	if err != nil {
		return entities.OrganisationContact{}, err
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
		return entities.OrganisationContact{}, fmt.Errorf("create organisation contact: %w", err)
	}
	return rel, nil
}

func (r *OrganisationContactDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrganisationContact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrganisationContact{}, fmt.Errorf("get organisation contact: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.OrganisationContact{}, nil
	}
	var rec organisationContactRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.OrganisationContact{}, err
	}
	return fromOrganisationContactRecord(rec), nil
}

func (r *OrganisationContactDynamoRepository) ListByOrganisation(ctx context.Context, organisationID string) ([]entities.OrganisationContact, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#organisation_id = :organisation_id"),
		ExpressionAttributeNames: map[string]string{
			"#organisation_id": "organisation_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":organisation_id": &types.AttributeValueMemberS{Value: organisationID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list organisation contacts: %w", err)
	}

	rels := make([]entities.OrganisationContact, 0, len(raw))
	for _, item := range raw {
		var rec organisationContactRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		rels = append(rels, fromOrganisationContactRecord(rec))
	}
	return rels, nil
}

func (r *OrganisationContactDynamoRepository) Update(ctx context.Context, id string, patch interfaces.OrganisationContactPatch) (entities.OrganisationContact, error) {
	b := newPatchBuilder()
	b.setString("role", patch.Role)
	b.setBool("is_primary", patch.IsPrimary)
	b.setInt("priority", patch.Priority)

	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, b.expr(), b.values, b.names)
	if err != nil {
		return entities.OrganisationContact{}, fmt.Errorf("update organisation contact: %w", err)
	}
	if attrs == nil {
		return entities.OrganisationContact{}, nil
	}
	var rec organisationContactRecord
	if err := attributevalue.UnmarshalMap(attrs, &rec); err != nil {
		return entities.OrganisationContact{}, err
	}
	return fromOrganisationContactRecord(rec), nil
}

func (r *OrganisationContactDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := deleteByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return false, fmt.Errorf("delete organisation contact: %w", err)
	}
	return found, nil
}

func (r *OrganisationContactDynamoRepository) DemotePrimaries(ctx context.Context, organisationID, exceptID string) (int, error) {
	rels, err := r.ListByOrganisation(ctx, organisationID)
	if err != nil {
		return 0, err
	}

	demoted := 0
	isPrimary := false
	for _, rel := range rels {
		if !rel.IsPrimary || rel.ID == exceptID {
			continue
		}
		if _, err := r.Update(ctx, rel.ID, interfaces.OrganisationContactPatch{IsPrimary: &isPrimary}); err != nil {
			return demoted, err
		}
		demoted++
	}
	return demoted, nil
}

func toOrganisationContactRecord(rel entities.OrganisationContact) organisationContactRecord {
	return organisationContactRecord{
		ID:             rel.ID,
		OrganisationID: rel.OrganisationID,
		ContactID:      rel.ContactID,
		ContactName:    rel.ContactName,
		Role:           rel.Role,
		IsPrimary:      rel.IsPrimary,
		Priority:       rel.Priority,
		CreatedAt:      formatTime(rel.CreatedAt),
		UpdatedAt:      formatTime(rel.UpdatedAt),
	}
}

func fromOrganisationContactRecord(rec organisationContactRecord) entities.OrganisationContact {
	return entities.OrganisationContact{
		ID:             rec.ID,
		OrganisationID: rec.OrganisationID,
		ContactID:      rec.ContactID,
		ContactName:    rec.ContactName,
		Role:           rec.Role,
		IsPrimary:      rec.IsPrimary,
		Priority:       rec.Priority,
		CreatedAt:      parseTime(rec.CreatedAt),
		UpdatedAt:      parseTime(rec.UpdatedAt),
	}
}

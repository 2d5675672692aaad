package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bizhub/internal/domain/entities"
	"bizhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrganisationsTableName = "organisations"

type organisationRecord struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Industry  string `dynamodbav:"industry,omitempty"`
	Website   string `dynamodbav:"website,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Address   string `dynamodbav:"address,omitempty"`
	City      string `dynamodbav:"city,omitempty"`
	Country   string `dynamodbav:"country,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrganisationDynamoRepository persists Organisation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type OrganisationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrganisationRepository = (*OrganisationDynamoRepository)(nil)

func NewOrganisationDynamoRepository(ddb *dynamodb.Client) *OrganisationDynamoRepository {
	return &OrganisationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORGANISATIONS_TABLE", defaultOrganisationsTableName),
	}
}

func (r *OrganisationDynamoRepository) Create(ctx context.Context, o entities.Organisation) (entities.Organisation, error) {
	av, err := attributevalue.MarshalMap(toOrganisationRecord(o))
	if err != nil {
		return entities.Organisation{}, err
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
		return entities.Organisation{}, fmt.Errorf("create organisation: %w", err)
	}
	return o, nil
}

func (r *OrganisationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Organisation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Organisation{}, fmt.Errorf("get organisation: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Organisation{}, nil
	}
	var rec organisationRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Organisation{}, err
	}
	return fromOrganisationRecord(rec), nil
}

func (r *OrganisationDynamoRepository) List(ctx context.Context, f interfaces.OrganisationFilter) ([]entities.Organisation, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if f.Industry != "" {
		input.FilterExpression = aws.String("#industry = :industry")
		input.ExpressionAttributeNames = map[string]string{"#industry": "industry"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":industry": &types.AttributeValueMemberS{Value: f.Industry},
		}
	}

	raw, err := scanAll(ctx, r.ddb, input)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	orgs := make([]entities.Organisation, 0, len(raw))
	for _, item := range raw {
		var rec organisationRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		o := fromOrganisationRecord(rec)
		if search != "" && !strings.Contains(strings.ToLower(o.Name), search) {
			continue
		}
		orgs = append(orgs, o)
	}

	asc := strings.EqualFold(f.SortDir, "asc")
	less := func(i, j int) bool {
		switch f.SortBy {
		case "name":
			return orgs[i].Name < orgs[j].Name
		default:
			return orgs[i].CreatedAt.Before(orgs[j].CreatedAt)
		}
	}
	if asc {
		sort.SliceStable(orgs, less)
	} else {
		sort.SliceStable(orgs, func(i, j int) bool { return less(j, i) })
	}

	if f.Limit > 0 && len(orgs) > f.Limit {
		orgs = orgs[:f.Limit]
	}
	return orgs, nil
}

func (r *OrganisationDynamoRepository) Update(ctx context.Context, id string, patch interfaces.OrganisationPatch) (entities.Organisation, error) {
	b := newPatchBuilder()
	b.setString("name", patch.Name)
	b.setString("industry", patch.Industry)
	b.setString("website", patch.Website)
	b.setString("email", patch.Email)
	b.setString("phone", patch.Phone)
	b.setString("address", patch.Address)
	b.setString("city", patch.City)
	b.setString("country", patch.Country)
	b.setString("notes", patch.Notes)

	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, b.expr(), b.values, b.names)
	if err != nil {
		return entities.Organisation{}, fmt.Errorf("update organisation: %w", err)
	}
	if attrs == nil {
		return entities.Organisation{}, nil
	}
	var rec organisationRecord
	if err := attributevalue.UnmarshalMap(attrs, &rec); err != nil {
		return entities.Organisation{}, err
	}
	return fromOrganisationRecord(rec), nil
}

func (r *OrganisationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := deleteByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return false, fmt.Errorf("delete organisation: %w", err)
	}
	return found, nil
}

func toOrganisationRecord(o entities.Organisation) organisationRecord {
	return organisationRecord{
		ID:        o.ID,
		Name:      o.Name,
		Industry:  o.Industry,
		Website:   o.Website,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		City:      o.City,
		Country:   o.Country,
		Notes:     o.Notes,
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
}

func fromOrganisationRecord(rec organisationRecord) entities.Organisation {
	return entities.Organisation{
		ID:        rec.ID,
		Name:      rec.Name,
		Industry:  rec.Industry,
		Website:   rec.Website,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Address:   rec.Address,
		City:      rec.City,
		Country:   rec.Country,
		Notes:     rec.Notes,
		CreatedAt: parseTime(rec.CreatedAt),
		UpdatedAt: parseTime(rec.UpdatedAt),
	}
}

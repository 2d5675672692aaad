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

const defaultWebsitesTableName = "websites"

type websiteRecord struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name,omitempty"`
	Domain           string `dynamodbav:"domain"`
	Status           string `dynamodbav:"status"`
	OrganisationID   string `dynamodbav:"organisation_id,omitempty"`
	OrganisationName string `dynamodbav:"organisation_name,omitempty"`
	Notes            string `dynamodbav:"notes,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// WebsiteDynamoRepository persists Website entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type WebsiteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWebsiteRepository = (*WebsiteDynamoRepository)(nil)

func NewWebsiteDynamoRepository(ddb *dynamodb.Client) *WebsiteDynamoRepository {
	return &WebsiteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WEBSITES_TABLE", defaultWebsitesTableName),
	}
}

func (r *WebsiteDynamoRepository) Create(ctx context.Context, w entities.Website) (entities.Website, error) {
	av, err := attributevalue.MarshalMap(toWebsiteRecord(w))
	if err != nil {
		return entities.Website{}, err
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
		return entities.Website{}, fmt.Errorf("create website: %w", err)
	}
	return w, nil
}

func (r *WebsiteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Website, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Website{}, fmt.Errorf("get website: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Website{}, nil
	}
	var rec websiteRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Website{}, err
	}
	return fromWebsiteRecord(rec), nil
}

func (r *WebsiteDynamoRepository) List(ctx context.Context, f interfaces.WebsiteFilter) ([]entities.Website, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if f.OrganisationID != "" {
		conds = append(conds, "#organisation_id = :organisation_id")
		names["#organisation_id"] = "organisation_id"
		values[":organisation_id"] = &types.AttributeValueMemberS{Value: f.OrganisationID}
	}
	if f.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: f.Status}
	}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	raw, err := scanAll(ctx, r.ddb, input)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}

	sites := make([]entities.Website, 0, len(raw))
	for _, item := range raw {
		var rec websiteRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		sites = append(sites, fromWebsiteRecord(rec))
	}

	asc := strings.EqualFold(f.SortDir, "asc")
	less := func(i, j int) bool {
		switch f.SortBy {
		case "domain":
			return sites[i].Domain < sites[j].Domain
		case "name":
			return sites[i].Name < sites[j].Name
		default:
			return sites[i].CreatedAt.Before(sites[j].CreatedAt)
		}
	}
	if asc {
		sort.SliceStable(sites, less)
	} else {
		sort.SliceStable(sites, func(i, j int) bool { return less(j, i) })
	}

	if f.Limit > 0 && len(sites) > f.Limit {
		sites = sites[:f.Limit]
	}
	return sites, nil
}

func (r *WebsiteDynamoRepository) Update(ctx context.Context, id string, patch interfaces.WebsitePatch) (entities.Website, error) {
	b := newPatchBuilder()
	b.setString("name", patch.Name)
	b.setString("domain", patch.Domain)
	if patch.Status != nil {
		s := string(*patch.Status)
		b.setString("status", &s)
	}
	b.setString("notes", patch.Notes)

	expr := b.expr()
	// An empty organisation id clears the link and its denormalized name.
	if patch.OrganisationID != nil {
		if *patch.OrganisationID == "" {
			b.names["#organisation_id"] = "organisation_id"
			b.names["#organisation_name"] = "organisation_name"
			expr = b.expr() + " REMOVE #organisation_id, #organisation_name"
		} else {
			b.setString("organisation_id", patch.OrganisationID)
			b.setString("organisation_name", patch.OrganisationName)
			expr = b.expr()
		}
	}

	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, expr, b.values, b.names)
	if err != nil {
		return entities.Website{}, fmt.Errorf("update website: %w", err)
	}
	if attrs == nil {
		return entities.Website{}, nil
	}
	var rec websiteRecord
	if err := attributevalue.UnmarshalMap(attrs, &rec); err != nil {
		return entities.Website{}, err
	}
	return fromWebsiteRecord(rec), nil
}

func (r *WebsiteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := deleteByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return false, fmt.Errorf("delete website: %w", err)
	}
	return found, nil
}

func toWebsiteRecord(w entities.Website) websiteRecord {
	return websiteRecord{
		ID:               w.ID,
		Name:             w.Name,
		Domain:           w.Domain,
		Status:           string(w.Status),
		OrganisationID:   w.OrganisationID,
		OrganisationName: w.OrganisationName,
		Notes:            w.Notes,
		CreatedAt:        formatTime(w.CreatedAt),
		UpdatedAt:        formatTime(w.UpdatedAt),
	}
}

func fromWebsiteRecord(rec websiteRecord) entities.Website {
	return entities.Website{
		ID:               rec.ID,
		Name:             rec.Name,
		Domain:           rec.Domain,
		Status:           entities.WebsiteStatus(rec.Status),
		OrganisationID:   rec.OrganisationID,
		OrganisationName: rec.OrganisationName,
		Notes:            rec.Notes,
		CreatedAt:        parseTime(rec.CreatedAt),
		UpdatedAt:        parseTime(rec.UpdatedAt),
	}
}

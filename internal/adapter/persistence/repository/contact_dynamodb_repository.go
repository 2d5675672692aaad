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

const defaultContactsTableName = "contacts"

type contactRecord struct {
	ID        string `dynamodbav:"id"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Mobile    string `dynamodbav:"mobile,omitempty"`
	JobTitle  string `dynamodbav:"job_title,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ContactDynamoRepository persists Contact entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Free-text search is a filtered Scan matched in memory so it can stay
// case-insensitive across name and email.

type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACTS_TABLE", defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	av, err := attributevalue.MarshalMap(toContactRecord(c))
	if err != nil {
		return entities.Contact{}, err
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
		return entities.Contact{}, fmt.Errorf("create contact: %w", err)
	}
	return c, nil
}

func (r *ContactDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Contact{}, nil
	}
	var rec contactRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Contact{}, err
	}
	return fromContactRecord(rec), nil
}

func (r *ContactDynamoRepository) List(ctx context.Context, f interfaces.ContactFilter) ([]entities.Contact, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	contacts := make([]entities.Contact, 0, len(raw))
	for _, item := range raw {
		var rec contactRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		c := fromContactRecord(rec)
		if search != "" && !contactMatches(c, search) {
			continue
		}
		contacts = append(contacts, c)
	}

	asc := strings.EqualFold(f.SortDir, "asc")
	less := func(i, j int) bool {
		switch f.SortBy {
		case "first_name":
			return contacts[i].FirstName < contacts[j].FirstName
		case "last_name":
			return contacts[i].LastName < contacts[j].LastName
		case "email":
			return contacts[i].Email < contacts[j].Email
		default:
			return contacts[i].CreatedAt.Before(contacts[j].CreatedAt)
		}
	}
	if asc {
		sort.SliceStable(contacts, less)
	} else {
		sort.SliceStable(contacts, func(i, j int) bool { return less(j, i) })
	}

	if f.Limit > 0 && len(contacts) > f.Limit {
		contacts = contacts[:f.Limit]
	}
	return contacts, nil
}

func contactMatches(c entities.Contact, search string) bool {
	return strings.Contains(strings.ToLower(c.DisplayName()), search) ||
		strings.Contains(strings.ToLower(c.Email), search)
}

func (r *ContactDynamoRepository) Update(ctx context.Context, id string, patch interfaces.ContactPatch) (entities.Contact, error) {
	b := newPatchBuilder()
	b.setString("first_name", patch.FirstName)
	b.setString("last_name", patch.LastName)
	b.setString("email", patch.Email)
	b.setString("phone", patch.Phone)
	b.setString("mobile", patch.Mobile)
	b.setString("job_title", patch.JobTitle)
	b.setString("notes", patch.Notes)

	attrs, err := updateByID(ctx, r.ddb, r.tableName, id, b.expr(), b.values, b.names)
	if err != nil {
		return entities.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	if attrs == nil {
		return entities.Contact{}, nil
	}
	var rec contactRecord
	if err := attributevalue.UnmarshalMap(attrs, &rec); err != nil {
		return entities.Contact{}, err
	}
	return fromContactRecord(rec), nil
}

func (r *ContactDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	found, err := deleteByID(ctx, r.ddb, r.tableName, id)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}
	return found, nil
}

func toContactRecord(c entities.Contact) contactRecord {
	return contactRecord{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Mobile:    c.Mobile,
		JobTitle:  c.JobTitle,
		Notes:     c.Notes,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromContactRecord(rec contactRecord) entities.Contact {
	return entities.Contact{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Mobile:    rec.Mobile,
		JobTitle:  rec.JobTitle,
		Notes:     rec.Notes,
		CreatedAt: parseTime(rec.CreatedAt),
		UpdatedAt: parseTime(rec.UpdatedAt),
	}
}

package repository

import (
	"context"
	"errors"
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

const defaultQuotesTableName = "quotes"

type quoteItemRecord struct {
	ID          string  `dynamodbav:"id"`
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Amount      float64 `dynamodbav:"amount"`
}

type quoteRecord struct {
	ID               string            `dynamodbav:"id"`
	QuoteNumber      string            `dynamodbav:"quote_number"`
	Subject          string            `dynamodbav:"subject"`
	OrganisationID   string            `dynamodbav:"organisation_id,omitempty"`
	OrganisationName string            `dynamodbav:"organisation_name,omitempty"`
	ContactID        string            `dynamodbav:"contact_id,omitempty"`
	ContactName      string            `dynamodbav:"contact_name,omitempty"`
	LeadID           string            `dynamodbav:"lead_id,omitempty"`
	LeadName         string            `dynamodbav:"lead_name,omitempty"`
	ProjectID        string            `dynamodbav:"project_id,omitempty"`
	ProjectName      string            `dynamodbav:"project_name,omitempty"`
	IssueDate        string            `dynamodbav:"issue_date,omitempty"`
	ExpiryDate       string            `dynamodbav:"expiry_date,omitempty"`
	Status           string            `dynamodbav:"status"`
	Items            []quoteItemRecord `dynamodbav:"items"`
	Subtotal         float64           `dynamodbav:"subtotal"`
	Tax              float64           `dynamodbav:"tax"`
	Total            float64           `dynamodbav:"total"`
	Notes            string            `dynamodbav:"notes,omitempty"`
	HTML             string            `dynamodbav:"html,omitempty"`
	CreatedAt        string            `dynamodbav:"created_at"`
	UpdatedAt        string            `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Quote numbers are looked up with a filtered Scan on the year prefix; the
// table is small enough that a dedicated index is not warranted.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteRecord(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, fmt.Errorf("get quote: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var rec quoteRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(rec), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context, f interfaces.QuoteFilter) ([]entities.Quote, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if f.Status != "" {
		conds = append(conds, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: f.Status}
	}
	if f.OrganisationID != "" {
		conds = append(conds, "#organisation_id = :organisation_id")
		names["#organisation_id"] = "organisation_id"
		values[":organisation_id"] = &types.AttributeValueMemberS{Value: f.OrganisationID}
	}
	if len(conds) > 0 {
		input.FilterExpression = aws.String(strings.Join(conds, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	raw, err := scanAll(ctx, r.ddb, input)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	quotes := make([]entities.Quote, 0, len(raw))
	for _, item := range raw {
		var rec quoteRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteRecord(rec))
	}

	sortQuotes(quotes, f.SortBy, f.SortDir)
	if f.Limit > 0 && len(quotes) > f.Limit {
		quotes = quotes[:f.Limit]
	}
	return quotes, nil
}

func sortQuotes(quotes []entities.Quote, sortBy, sortDir string) {
	asc := strings.EqualFold(sortDir, "asc")
	less := func(i, j int) bool {
		switch sortBy {
		case "issue_date":
			return quotes[i].IssueDate.Before(quotes[j].IssueDate)
		case "expiry_date":
			return quotes[i].ExpiryDate.Before(quotes[j].ExpiryDate)
		case "quote_number":
			return quotes[i].QuoteNumber < quotes[j].QuoteNumber
		case "subject":
			return quotes[i].Subject < quotes[j].Subject
		case "total":
			return quotes[i].Total < quotes[j].Total
		default:
			return quotes[i].CreatedAt.Before(quotes[j].CreatedAt)
		}
	}
	if asc {
		sort.SliceStable(quotes, less)
	} else {
		sort.SliceStable(quotes, func(i, j int) bool { return less(j, i) })
	}
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, id string, patch interfaces.QuotePatch) (entities.Quote, error) {
	set := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}
	names := map[string]string{"#updated_at": "updated_at"}

	setString := func(attr string, v *string) {
		if v == nil {
			return
		}
		set = append(set, fmt.Sprintf("#%s = :%s", attr, attr))
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: *v}
	}
	setNumber := func(attr string, v *float64) {
		if v == nil {
			return
		}
		set = append(set, fmt.Sprintf("#%s = :%s", attr, attr))
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberN{Value: floatToString(*v)}
	}

	setString("subject", patch.Subject)
	setString("notes", patch.Notes)
	setString("html", patch.HTML)
	if patch.Status != nil {
		s := string(*patch.Status)
		setString("status", &s)
	}
	if patch.IssueDate != nil {
		s := formatTime(*patch.IssueDate)
		setString("issue_date", &s)
	}
	if patch.ExpiryDate != nil {
		s := formatTime(*patch.ExpiryDate)
		setString("expiry_date", &s)
	}
	if patch.Items != nil {
		recs := make([]quoteItemRecord, 0, len(*patch.Items))
		for _, it := range *patch.Items {
			recs = append(recs, quoteItemRecord(it))
		}
		av, err := attributevalue.Marshal(recs)
		if err != nil {
			return entities.Quote{}, err
		}
		set = append(set, "#items = :items")
		names["#items"] = "items"
		values[":items"] = av
	}
	setNumber("subtotal", patch.Subtotal)
	setNumber("tax", patch.Tax)
	setNumber("total", patch.Total)

	return r.update(ctx, id, "SET "+strings.Join(set, ", "), values, names)
}

func (r *QuoteDynamoRepository) SetLink(ctx context.Context, id string, field interfaces.QuoteLinkField, linkID, linkName string) (entities.Quote, error) {
	idAttr := string(field) + "_id"
	nameAttr := string(field) + "_name"
	names := map[string]string{
		"#link_id":    idAttr,
		"#link_name":  nameAttr,
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}

	// Unlink clears both the foreign id and the denormalized name.
	expr := "SET #updated_at = :updated_at REMOVE #link_id, #link_name"
	if linkID != "" {
		expr = "SET #link_id = :link_id, #link_name = :link_name, #updated_at = :updated_at"
		values[":link_id"] = &types.AttributeValueMemberS{Value: linkID}
		values[":link_name"] = &types.AttributeValueMemberS{Value: linkName}
	}

	return r.update(ctx, id, expr, values, names)
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, fmt.Errorf("update quote: %w", err)
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var rec quoteRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(rec), nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, fmt.Errorf("delete quote: %w", err)
	}
	return true, nil
}

// LatestNumberForYear returns the quote number with the highest trailing
// counter for the given year, or "" when the year has no quotes yet.
// Fallback (timestamp) numbers are only returned when no sequential number
// exists, so the caller degrades to another fallback instead of restarting
// the sequence.
func (r *QuoteDynamoRepository) LatestNumberForYear(ctx context.Context, year int) (string, error) {
	prefix := entities.QuoteNumberPrefix(year)
	input := &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		FilterExpression:     aws.String("begins_with(#quote_number, :prefix)"),
		ProjectionExpression: aws.String("#quote_number"),
		ExpressionAttributeNames: map[string]string{
			"#quote_number": "quote_number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		},
	}

	raw, err := scanAll(ctx, r.ddb, input)
	if err != nil {
		return "", fmt.Errorf("latest quote number: %w", err)
	}

	bestSeq := -1
	bestNumber := ""
	lexMax := ""
	for _, item := range raw {
		var rec struct {
			QuoteNumber string `dynamodbav:"quote_number"`
		}
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			continue
		}
		if rec.QuoteNumber > lexMax {
			lexMax = rec.QuoteNumber
		}
		if seq, ok := entities.ParseQuoteNumberSeq(rec.QuoteNumber); ok && seq > bestSeq {
			bestSeq = seq
			bestNumber = rec.QuoteNumber
		}
	}
	if bestNumber != "" {
		return bestNumber, nil
	}
	return lexMax, nil
}

func toQuoteRecord(q entities.Quote) quoteRecord {
	items := make([]quoteItemRecord, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, quoteItemRecord(it))
	}
	return quoteRecord{
		ID:               q.ID,
		QuoteNumber:      q.QuoteNumber,
		Subject:          q.Subject,
		OrganisationID:   q.OrganisationID,
		OrganisationName: q.OrganisationName,
		ContactID:        q.ContactID,
		ContactName:      q.ContactName,
		LeadID:           q.LeadID,
		LeadName:         q.LeadName,
		ProjectID:        q.ProjectID,
		ProjectName:      q.ProjectName,
		IssueDate:        formatTime(q.IssueDate),
		ExpiryDate:       formatTime(q.ExpiryDate),
		Status:           string(q.Status),
		Items:            items,
		Subtotal:         q.Subtotal,
		Tax:              q.Tax,
		Total:            q.Total,
		Notes:            q.Notes,
		HTML:             q.HTML,
		CreatedAt:        formatTime(q.CreatedAt),
		UpdatedAt:        formatTime(q.UpdatedAt),
	}
}

func fromQuoteRecord(rec quoteRecord) entities.Quote {
	items := make([]entities.QuoteItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, entities.QuoteItem(it))
	}
	return entities.Quote{
		ID:               rec.ID,
		QuoteNumber:      rec.QuoteNumber,
		Subject:          rec.Subject,
		OrganisationID:   rec.OrganisationID,
		OrganisationName: rec.OrganisationName,
		ContactID:        rec.ContactID,
		ContactName:      rec.ContactName,
		LeadID:           rec.LeadID,
		LeadName:         rec.LeadName,
		ProjectID:        rec.ProjectID,
		ProjectName:      rec.ProjectName,
		IssueDate:        parseTime(rec.IssueDate),
		ExpiryDate:       parseTime(rec.ExpiryDate),
		Status:           entities.QuoteStatus(rec.Status),
		Items:            items,
		Subtotal:         rec.Subtotal,
		Tax:              rec.Tax,
		Total:            rec.Total,
		Notes:            rec.Notes,
		HTML:             rec.HTML,
		CreatedAt:        parseTime(rec.CreatedAt),
		UpdatedAt:        parseTime(rec.UpdatedAt),
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesNumberIndex      = "quote_number-index"
)

type quoteItem struct {
	ID             string `dynamodbav:"id"`
	QuoteNumber    string `dynamodbav:"quote_number"`
	ClientName     string `dynamodbav:"client_name"`
	ClientEmail    string `dynamodbav:"client_email"`
	ClientCompany  string `dynamodbav:"client_company,omitempty"`
	ProjectTitle   string `dynamodbav:"project_title"`
	ScopeOfWork    string `dynamodbav:"scope_of_work,omitempty"`
	Price          string `dynamodbav:"price"`
	Currency       string `dynamodbav:"currency"`
	Status         string `dynamodbav:"status"`
	ValidUntil     string `dynamodbav:"valid_until,omitempty"`
	SentDate       string `dynamodbav:"sent_date,omitempty"`
	ViewedDate     string `dynamodbav:"viewed_date,omitempty"`
	AcceptedDate   string `dynamodbav:"accepted_date,omitempty"`
	PaidDate       string `dynamodbav:"paid_date,omitempty"`
	DeclinedDate   string `dynamodbav:"declined_date,omitempty"`
	ClientNotes    string `dynamodbav:"client_notes,omitempty"`
	PaymentOrderID string `dynamodbav:"payment_order_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_number-index (PK: quote_number)
type QuoteDynamoRepository struct {
	ddb       dynamoClient
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb dynamoClient, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toQuoteItem(q)); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	it, found, err := getByID[quoteItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) GetByNumber(ctx context.Context, number string) (entities.Quote, error) {
	items, err := queryIndex[quoteItem](ctx, r.ddb, r.tableName, quotesNumberIndex, "quote_number", number)
	if err != nil || len(items) == 0 {
		return entities.Quote{}, err
	}
	return fromQuoteItem(items[0]), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context, f interfaces.QuoteFilter) ([]entities.Quote, error) {
	var filters []scanFilter
	if f.Status != "" && f.Status != entities.QuoteStatusExpired {
		filters = append(filters, scanFilter{attr: "status", value: string(f.Status)})
	}
	items, err := scanAll[quoteItem](ctx, r.ddb, r.tableName, filters...)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	quotes := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		q := fromQuoteItem(it)
		if f.Status == entities.QuoteStatusExpired && q.EffectiveStatus(now) != entities.QuoteStatusExpired {
			continue
		}
		quotes = append(quotes, q)
	}
	return applyListOptions(quotes, f.ListOptions,
		func(q entities.Quote) time.Time { return q.CreatedAt },
		func(q entities.Quote) time.Time { return q.UpdatedAt },
		func(q entities.Quote) string {
			return q.QuoteNumber + " " + q.ClientName + " " + q.ClientEmail + " " + q.ClientCompany + " " + q.ProjectTitle
		},
	), nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, q entities.Quote, expected entities.QuoteStatus) (entities.Quote, error) {
	found, err := replaceIfStatus(ctx, r.ddb, r.tableName, toQuoteItem(q), "status", string(expected), false)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) MarkViewed(ctx context.Context, id string, at time.Time) (bool, error) {
	_, err := r.update(ctx, id, "#status = :from", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #viewed_date = :viewed_date, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":from":        &types.AttributeValueMemberS{Value: string(entities.QuoteStatusSent)},
			":status":      &types.AttributeValueMemberS{Value: string(entities.QuoteStatusViewed)},
			":viewed_date": &types.AttributeValueMemberS{Value: formatTime(at)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":      "status",
			"#viewed_date": "viewed_date",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
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

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	extraCond string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)
	names["#id"] = "id"

	cond := "attribute_exists(#id)"
	if extraCond != "" {
		cond += " AND " + extraCond
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:             q.ID,
		QuoteNumber:    q.QuoteNumber,
		ClientName:     q.ClientName,
		ClientEmail:    q.ClientEmail,
		ClientCompany:  q.ClientCompany,
		ProjectTitle:   q.ProjectTitle,
		ScopeOfWork:    q.ScopeOfWork,
		Price:          floatToString(q.Price),
		Currency:       q.Currency,
		Status:         string(q.Status),
		ValidUntil:     formatTimePtr(q.ValidUntil),
		SentDate:       formatTimePtr(q.SentDate),
		ViewedDate:     formatTimePtr(q.ViewedDate),
		AcceptedDate:   formatTimePtr(q.AcceptedDate),
		PaidDate:       formatTimePtr(q.PaidDate),
		DeclinedDate:   formatTimePtr(q.DeclinedDate),
		ClientNotes:    q.ClientNotes,
		PaymentOrderID: q.PaymentOrderID,
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:             it.ID,
		QuoteNumber:    it.QuoteNumber,
		ClientName:     it.ClientName,
		ClientEmail:    it.ClientEmail,
		ClientCompany:  it.ClientCompany,
		ProjectTitle:   it.ProjectTitle,
		ScopeOfWork:    it.ScopeOfWork,
		Price:          parseFloat(it.Price),
		Currency:       it.Currency,
		Status:         entities.QuoteStatus(it.Status),
		ValidUntil:     parseTimePtr(it.ValidUntil),
		SentDate:       parseTimePtr(it.SentDate),
		ViewedDate:     parseTimePtr(it.ViewedDate),
		AcceptedDate:   parseTimePtr(it.AcceptedDate),
		PaidDate:       parseTimePtr(it.PaidDate),
		DeclinedDate:   parseTimePtr(it.DeclinedDate),
		ClientNotes:    it.ClientNotes,
		PaymentOrderID: it.PaymentOrderID,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsSubjectIDIndex   = "subject_id-index"
)

type paymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	SubjectType        string                 `dynamodbav:"subject_type"`
	SubjectID          string                 `dynamodbav:"subject_id"`
	Provider           string                 `dynamodbav:"provider"`
	Amount             string                 `dynamodbav:"amount"`
	Currency           string                 `dynamodbav:"currency"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists the Payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: subject_id-index (PK: subject_id)
type PaymentDynamoRepository struct {
	ddb       dynamoClient
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb dynamoClient, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	it, found, err := getByID[paymentItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListBySubjectID(ctx context.Context, subjectID string) ([]entities.Payment, error) {
	items, err := queryIndex[paymentItem](ctx, r.ddb, r.tableName, paymentsSubjectIDIndex, "subject_id", subjectID)
	if err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		SubjectType:        string(p.SubjectType),
		SubjectID:          p.SubjectID,
		Provider:           string(p.Provider),
		Amount:             floatToString(p.Amount),
		Currency:           p.Currency,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                 it.ID,
		SubjectType:        entities.PaymentSubjectType(it.SubjectType),
		SubjectID:          it.SubjectID,
		Provider:           entities.PaymentProvider(it.Provider),
		Amount:             parseFloat(it.Amount),
		Currency:           it.Currency,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}

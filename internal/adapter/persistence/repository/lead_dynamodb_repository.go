package repository

import (
	"context"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"
)

const (
	defaultLeadsTableName   = "leads"
	leadsPaymentStatusIndex = "payment_status-index"
)

type leadItem struct {
	ID                string `dynamodbav:"id"`
	Name              string `dynamodbav:"name"`
	Email             string `dynamodbav:"email"`
	Company           string `dynamodbav:"company,omitempty"`
	Phone             string `dynamodbav:"phone,omitempty"`
	Source            string `dynamodbav:"source,omitempty"`
	ServiceSKU        string `dynamodbav:"service_sku,omitempty"`
	Message           string `dynamodbav:"message,omitempty"`
	DealValue         string `dynamodbav:"deal_value"`
	Status            string `dynamodbav:"status"`
	PaymentStatus     string `dynamodbav:"payment_status,omitempty"`
	PaymentLink       string `dynamodbav:"payment_link,omitempty"`
	PaymentLinkSentAt string `dynamodbav:"payment_link_sent_at,omitempty"`
	LastReminderAt    string `dynamodbav:"last_reminder_at,omitempty"`
	ReminderCount     int    `dynamodbav:"reminder_count"`
	ProjectID         string `dynamodbav:"project_id,omitempty"`
	Version           int    `dynamodbav:"version"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_status-index (PK: payment_status). Sparse: payment_status is
//     omitted for leads that never received a payment link.
type LeadDynamoRepository struct {
	ddb       dynamoClient
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb dynamoClient, tableName string) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	if l.Version == 0 {
		l.Version = 1
	}
	if err := putNew(ctx, r.ddb, r.tableName, toLeadItem(l)); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	it, found, err := getByID[leadItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context, f interfaces.LeadFilter) ([]entities.Lead, error) {
	var filters []scanFilter
	if f.Status != "" {
		filters = append(filters, scanFilter{attr: "status", value: string(f.Status)})
	}
	items, err := scanAll[leadItem](ctx, r.ddb, r.tableName, filters...)
	if err != nil {
		return nil, err
	}
	leads := make([]entities.Lead, 0, len(items))
	for _, it := range items {
		leads = append(leads, fromLeadItem(it))
	}
	return applyListOptions(leads, f.ListOptions,
		func(l entities.Lead) time.Time { return l.CreatedAt },
		func(l entities.Lead) time.Time { return l.UpdatedAt },
		func(l entities.Lead) string { return l.Name + " " + l.Email + " " + l.Company },
	), nil
}

func (r *LeadDynamoRepository) ListByPaymentStatus(ctx context.Context, status entities.LeadPaymentStatus) ([]entities.Lead, error) {
	items, err := queryIndex[leadItem](ctx, r.ddb, r.tableName, leadsPaymentStatusIndex, "payment_status", string(status))
	if err != nil {
		return nil, err
	}
	leads := make([]entities.Lead, 0, len(items))
	for _, it := range items {
		leads = append(leads, fromLeadItem(it))
	}
	return leads, nil
}

// Update stores l with its version bumped. The returned lead carries the new version.
func (r *LeadDynamoRepository) Update(ctx context.Context, l entities.Lead, expectedVersion int) (entities.Lead, error) {
	if expectedVersion > 0 {
		l.Version = expectedVersion + 1
	} else {
		l.Version++
	}
	found, err := replaceExisting(ctx, r.ddb, r.tableName, toLeadItem(l), expectedVersion)
	if err != nil || !found {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:                l.ID,
		Name:              l.Name,
		Email:             l.Email,
		Company:           l.Company,
		Phone:             l.Phone,
		Source:            l.Source,
		ServiceSKU:        l.ServiceSKU,
		Message:           l.Message,
		DealValue:         floatToString(l.DealValue),
		Status:            string(l.Status),
		PaymentStatus:     string(l.PaymentStatus),
		PaymentLink:       l.PaymentLink,
		PaymentLinkSentAt: formatTimePtr(l.PaymentLinkSentAt),
		LastReminderAt:    formatTimePtr(l.LastReminderAt),
		ReminderCount:     l.ReminderCount,
		ProjectID:         l.ProjectID,
		Version:           l.Version,
		CreatedAt:         formatTime(l.CreatedAt),
		UpdatedAt:         formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:                it.ID,
		Name:              it.Name,
		Email:             it.Email,
		Company:           it.Company,
		Phone:             it.Phone,
		Source:            it.Source,
		ServiceSKU:        it.ServiceSKU,
		Message:           it.Message,
		DealValue:         parseFloat(it.DealValue),
		Status:            entities.LeadStatus(it.Status),
		PaymentStatus:     entities.LeadPaymentStatus(it.PaymentStatus),
		PaymentLink:       it.PaymentLink,
		PaymentLinkSentAt: parseTimePtr(it.PaymentLinkSentAt),
		LastReminderAt:    parseTimePtr(it.LastReminderAt),
		ReminderCount:     it.ReminderCount,
		ProjectID:         it.ProjectID,
		Version:           it.Version,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

package repository

import (
	"context"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"
)

const (
	defaultServiceRequestsTableName = "service_requests"
	serviceRequestsSessionIndex     = "checkout_session_id-index"
)

type serviceRequestItem struct {
	ID                string   `dynamodbav:"id"`
	Kind              string   `dynamodbav:"kind"`
	Name              string   `dynamodbav:"name"`
	Email             string   `dynamodbav:"email"`
	Company           string   `dynamodbav:"company,omitempty"`
	Phone             string   `dynamodbav:"phone,omitempty"`
	AppURL            string   `dynamodbav:"app_url,omitempty"`
	Platform          string   `dynamodbav:"platform,omitempty"`
	Details           string   `dynamodbav:"details,omitempty"`
	AddOns            []string `dynamodbav:"add_ons,omitempty"`
	Hours             int      `dynamodbav:"hours,omitempty"`
	Attachments       []string `dynamodbav:"attachments,omitempty"`
	PaymentStatus     string   `dynamodbav:"payment_status,omitempty"`
	PaymentAmount     string   `dynamodbav:"payment_amount"`
	PaymentProvider   string   `dynamodbav:"payment_provider,omitempty"`
	CheckoutSessionID string   `dynamodbav:"checkout_session_id,omitempty"`
	PaidAt            string   `dynamodbav:"paid_at,omitempty"`
	Status            string   `dynamodbav:"status"`
	LeadID            string   `dynamodbav:"lead_id,omitempty"`
	ServiceSKU        string   `dynamodbav:"service_sku,omitempty"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists every service request kind in one table.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: checkout_session_id-index (PK: checkout_session_id)
type ServiceRequestDynamoRepository struct {
	ddb       dynamoClient
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb dynamoClient, tableName string) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultServiceRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	sr.PaymentStatus = sr.PaymentStatus.OrDefault()
	if err := putNew(ctx, r.ddb, r.tableName, toServiceRequestItem(sr)); err != nil {
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	it, found, err := getByID[serviceRequestItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) GetByCheckoutSessionID(ctx context.Context, sessionID string) (entities.ServiceRequest, error) {
	items, err := queryIndex[serviceRequestItem](ctx, r.ddb, r.tableName, serviceRequestsSessionIndex, "checkout_session_id", sessionID)
	if err != nil || len(items) == 0 {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(items[0]), nil
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context, f interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, error) {
	var filters []scanFilter
	if f.Kind != "" {
		filters = append(filters, scanFilter{attr: "kind", value: string(f.Kind)})
	}
	items, err := scanAll[serviceRequestItem](ctx, r.ddb, r.tableName, filters...)
	if err != nil {
		return nil, err
	}

	requests := make([]entities.ServiceRequest, 0, len(items))
	for _, it := range items {
		sr := fromServiceRequestItem(it)
		// Legacy rows may have no stored payment_status; they read as pending.
		if f.PaymentStatus != "" && sr.PaymentStatus != f.PaymentStatus {
			continue
		}
		if !f.CreatedBefore.IsZero() && !sr.CreatedAt.Before(f.CreatedBefore) {
			continue
		}
		requests = append(requests, sr)
	}
	return applyListOptions(requests, f.ListOptions,
		func(sr entities.ServiceRequest) time.Time { return sr.CreatedAt },
		func(sr entities.ServiceRequest) time.Time { return sr.UpdatedAt },
		func(sr entities.ServiceRequest) string { return sr.Name + " " + sr.Email + " " + sr.Company + " " + sr.AppURL },
	), nil
}

func (r *ServiceRequestDynamoRepository) Update(ctx context.Context, sr entities.ServiceRequest, expected entities.RequestPaymentStatus) (entities.ServiceRequest, error) {
	sr.PaymentStatus = sr.PaymentStatus.OrDefault()
	expected = expected.OrDefault()
	// Legacy rows carry no payment_status and read as pending.
	found, err := replaceIfStatus(ctx, r.ddb, r.tableName, toServiceRequestItem(sr), "payment_status",
		string(expected), expected == entities.RequestPaymentPending)
	if err != nil || !found {
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	return serviceRequestItem{
		ID:                sr.ID,
		Kind:              string(sr.Kind),
		Name:              sr.Name,
		Email:             sr.Email,
		Company:           sr.Company,
		Phone:             sr.Phone,
		AppURL:            sr.AppURL,
		Platform:          sr.Platform,
		Details:           sr.Details,
		AddOns:            sr.AddOns,
		Hours:             sr.Hours,
		Attachments:       sr.Attachments,
		PaymentStatus:     string(sr.PaymentStatus),
		PaymentAmount:     floatToString(sr.PaymentAmount),
		PaymentProvider:   string(sr.PaymentProvider),
		CheckoutSessionID: sr.CheckoutSessionID,
		PaidAt:            formatTimePtr(sr.PaidAt),
		Status:            string(sr.Status),
		LeadID:            sr.LeadID,
		ServiceSKU:        sr.ServiceSKU,
		CreatedAt:         formatTime(sr.CreatedAt),
		UpdatedAt:         formatTime(sr.UpdatedAt),
	}
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:                it.ID,
		Kind:              entities.ServiceKind(it.Kind),
		Name:              it.Name,
		Email:             it.Email,
		Company:           it.Company,
		Phone:             it.Phone,
		AppURL:            it.AppURL,
		Platform:          it.Platform,
		Details:           it.Details,
		AddOns:            it.AddOns,
		Hours:             it.Hours,
		Attachments:       it.Attachments,
		PaymentStatus:     entities.RequestPaymentStatus(it.PaymentStatus).OrDefault(),
		PaymentAmount:     parseFloat(it.PaymentAmount),
		PaymentProvider:   entities.PaymentProvider(it.PaymentProvider),
		CheckoutSessionID: it.CheckoutSessionID,
		PaidAt:            parseTimePtr(it.PaidAt),
		Status:            entities.RequestWorkStatus(it.Status),
		LeadID:            it.LeadID,
		ServiceSKU:        it.ServiceSKU,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

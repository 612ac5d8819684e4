package interfaces

import (
	"context"

	"agencyops/internal/domain/entities"
)

// INotifier sends the transactional emails of the agency.
//
// Callers treat every send as fire-and-forget: a returned error is logged and
// never changes the outcome of the operation that triggered it.
type INotifier interface {
	SendQuote(ctx context.Context, q entities.Quote, link string) error
	SendPaymentLink(ctx context.Context, l entities.Lead, link string, amount float64) error
	SendPaymentReminder(ctx context.Context, l entities.Lead) error
	NotifyNewLead(ctx context.Context, l entities.Lead) error
	AcknowledgeContact(ctx context.Context, l entities.Lead) error
	NotifyServiceRequestPaid(ctx context.Context, r entities.ServiceRequest) error
}

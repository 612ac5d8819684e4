package interfaces

import (
	"context"
	"time"

	"agencyops/internal/domain/entities"
)

type ServiceRequestFilter struct {
	ListOptions
	Kind          entities.ServiceKind
	PaymentStatus entities.RequestPaymentStatus
	// CreatedBefore restricts results to requests created strictly before it.
	CreatedBefore time.Time
}

// IServiceRequestRepository abstracts persistence for the service request family.
type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	GetByCheckoutSessionID(ctx context.Context, sessionID string) (entities.ServiceRequest, error)
	List(ctx context.Context, f ServiceRequestFilter) ([]entities.ServiceRequest, error)
	// Update replaces a request only while its stored payment status is still
	// expected, returning entities.ErrStatusConflict otherwise.
	Update(ctx context.Context, r entities.ServiceRequest, expected entities.RequestPaymentStatus) (entities.ServiceRequest, error)
	Delete(ctx context.Context, id string) (bool, error)
}

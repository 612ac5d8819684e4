package interfaces

import (
	"context"

	"agencyops/internal/domain/entities"
)

type LeadFilter struct {
	ListOptions
	Status entities.LeadStatus
}

// ILeadRepository abstracts persistence for Lead.
//
// Update applies an optimistic check when expectedVersion > 0 and returns
// entities.ErrVersionConflict when the stored version differs.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context, f LeadFilter) ([]entities.Lead, error)
	ListByPaymentStatus(ctx context.Context, status entities.LeadPaymentStatus) ([]entities.Lead, error)
	Update(ctx context.Context, l entities.Lead, expectedVersion int) (entities.Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
}

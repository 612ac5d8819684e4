package interfaces

import (
	"context"
	"time"

	"agencyops/internal/domain/entities"
)

// ListOptions carries the shared list parameters of the admin CRUD surface.
//
// Sort follows the "-created_date" convention: a leading minus means descending.
type ListOptions struct {
	Sort   string
	Search string
	Limit  int
}

type QuoteFilter struct {
	ListOptions
	Status entities.QuoteStatus
}

// IQuoteRepository abstracts persistence for Quote.
//
// Lookups return a zero-value Quote (empty ID) when nothing matches.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByNumber(ctx context.Context, number string) (entities.Quote, error)
	List(ctx context.Context, f QuoteFilter) ([]entities.Quote, error)
	// Update replaces a quote only while its stored status is still expected,
	// returning entities.ErrStatusConflict otherwise.
	Update(ctx context.Context, q entities.Quote, expected entities.QuoteStatus) (entities.Quote, error)
	// MarkViewed moves a quote from sent to viewed. It reports false when the
	// stored status was not sent, which makes concurrent first views harmless.
	MarkViewed(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

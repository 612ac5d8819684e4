package interfaces

import (
	"context"

	"agencyops/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for the Payment ledger.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListBySubjectID(ctx context.Context, subjectID string) ([]entities.Payment, error)
}

package interfaces

import (
	"context"

	"agencyops/internal/domain/entities"
)

type ProjectFilter struct {
	ListOptions
	Status entities.ProjectStatus
}

// IProjectRepository abstracts persistence for Project. Update follows the same
// optimistic version contract as ILeadRepository.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project, expectedVersion int) (entities.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

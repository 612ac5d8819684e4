package interfaces

import (
	"context"

	"agencyops/internal/domain/entities"
)

type ITaskRepository interface {
	Create(ctx context.Context, t entities.Task) (entities.Task, error)
	GetByID(ctx context.Context, id string) (entities.Task, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Task, error)
	Update(ctx context.Context, t entities.Task) (entities.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ITaskCommentRepository interface {
	Create(ctx context.Context, c entities.TaskComment) (entities.TaskComment, error)
	ListByTaskID(ctx context.Context, taskID string) ([]entities.TaskComment, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ITaskTemplateRepository interface {
	Create(ctx context.Context, t entities.TaskTemplate) (entities.TaskTemplate, error)
	GetByID(ctx context.Context, id string) (entities.TaskTemplate, error)
	List(ctx context.Context) ([]entities.TaskTemplate, error)
	Delete(ctx context.Context, id string) (bool, error)
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTaskTemplateNotFound = errors.New("task template not found")
	ErrInvalidTemplateInput = errors.New("invalid task template input")
)

type TaskTemplateInput struct {
	Name        string
	ProjectType string
	Items       []entities.TaskTemplateItem
}

type ITaskTemplateUseCase interface {
	CreateTemplate(ctx context.Context, in TaskTemplateInput) (entities.TaskTemplate, error)
	GetTemplate(ctx context.Context, id string) (entities.TaskTemplate, error)
	ListTemplates(ctx context.Context) ([]entities.TaskTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
	ApplyTemplate(ctx context.Context, templateID, projectID string) ([]entities.Task, error)
}

type TaskTemplateUseCase struct {
	repo     interfaces.ITaskTemplateRepository
	tasks    interfaces.ITaskRepository
	projects interfaces.IProjectRepository
	log      *zap.Logger
	now      func() time.Time
}

var _ ITaskTemplateUseCase = (*TaskTemplateUseCase)(nil)

func NewTaskTemplateUseCase(repo interfaces.ITaskTemplateRepository, tasks interfaces.ITaskRepository, projects interfaces.IProjectRepository, logger *zap.Logger) *TaskTemplateUseCase {
	return &TaskTemplateUseCase{repo: repo, tasks: tasks, projects: projects, log: componentLogger(logger, "task_template_usecase"), now: utcNow}
}

func (u *TaskTemplateUseCase) CreateTemplate(ctx context.Context, in TaskTemplateInput) (entities.TaskTemplate, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.TaskTemplate{}, fmt.Errorf("%w: name is required", ErrInvalidTemplateInput)
	}
	if len(in.Items) == 0 {
		return entities.TaskTemplate{}, fmt.Errorf("%w: at least one item is required", ErrInvalidTemplateInput)
	}
	items := make([]entities.TaskTemplateItem, 0, len(in.Items))
	for i, it := range in.Items {
		it.Title = strings.TrimSpace(it.Title)
		it.Description = strings.TrimSpace(it.Description)
		if it.Title == "" {
			return entities.TaskTemplate{}, fmt.Errorf("%w: item %d has no title", ErrInvalidTemplateInput, i)
		}
		if it.Priority == "" {
			it.Priority = entities.TaskPriorityMedium
		} else if _, err := entities.ParseTaskPriority(string(it.Priority)); err != nil {
			return entities.TaskTemplate{}, fmt.Errorf("%w: %v", ErrInvalidTemplateInput, err)
		}
		items = append(items, it)
	}

	now := u.now()
	return u.repo.Create(ctx, entities.TaskTemplate{
		ID:          uuid.NewString(),
		Name:        name,
		ProjectType: strings.TrimSpace(in.ProjectType),
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *TaskTemplateUseCase) GetTemplate(ctx context.Context, id string) (entities.TaskTemplate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TaskTemplate{}, ErrTaskTemplateNotFound
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TaskTemplate{}, err
	}
	if t.ID == "" {
		return entities.TaskTemplate{}, ErrTaskTemplateNotFound
	}
	return t, nil
}

func (u *TaskTemplateUseCase) ListTemplates(ctx context.Context) ([]entities.TaskTemplate, error) {
	return u.repo.List(ctx)
}

func (u *TaskTemplateUseCase) DeleteTemplate(ctx context.Context, id string) error {
	t, err := u.GetTemplate(ctx, id)
	if err != nil {
		return err
	}
	ok, err := u.repo.Delete(ctx, t.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTaskTemplateNotFound
	}
	return nil
}

// ApplyTemplate appends one todo task per template item after the project's
// existing tasks.
func (u *TaskTemplateUseCase) ApplyTemplate(ctx context.Context, templateID, projectID string) ([]entities.Task, error) {
	tpl, err := u.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, ErrProjectNotFound
	}
	existing, err := u.tasks.ListByProjectID(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	created := make([]entities.Task, 0, len(tpl.Items))
	for i, it := range tpl.Items {
		t, err := u.tasks.Create(ctx, entities.Task{
			ID:          uuid.NewString(),
			ProjectID:   p.ID,
			Title:       it.Title,
			Description: it.Description,
			Status:      entities.TaskStatusTodo,
			Priority:    it.Priority,
			Position:    len(existing) + i,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return created, err
		}
		created = append(created, t)
	}
	u.log.Info("template applied", zap.String("template_id", tpl.ID), zap.String("project_id", p.ID), zap.Int("tasks", len(created)))
	return created, nil
}

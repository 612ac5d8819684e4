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
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrInvalidProjectInput  = errors.New("invalid project input")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrProjectHasTasks      = errors.New("project has tasks")
)

type ProjectInput struct {
	Title         string
	ClientName    string
	ClientEmail   string
	ClientCompany string
	ProjectType   string
	Description   string
	Status        string
	StartDate     *time.Time
	DueDate       *time.Time
}

type IProjectUseCase interface {
	CreateProject(ctx context.Context, in ProjectInput) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	ListProjects(ctx context.Context, f interfaces.ProjectFilter) ([]entities.Project, error)
	UpdateProject(ctx context.Context, id string, in ProjectInput, version int) (entities.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// ProjectUseCase manages projects. Deleting a project that still has tasks is refused.
type ProjectUseCase struct {
	repo  interfaces.IProjectRepository
	tasks interfaces.ITaskRepository
	log   *zap.Logger
	now   func() time.Time
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, tasks interfaces.ITaskRepository, logger *zap.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, tasks: tasks, log: componentLogger(logger, "project_usecase"), now: utcNow}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, in ProjectInput) (entities.Project, error) {
	in, status, err := normalizeProjectInput(in)
	if err != nil {
		return entities.Project{}, err
	}
	now := u.now()
	p := entities.Project{
		ID:            uuid.NewString(),
		Title:         in.Title,
		ClientName:    in.ClientName,
		ClientEmail:   in.ClientEmail,
		ClientCompany: in.ClientCompany,
		ProjectType:   in.ProjectType,
		Description:   in.Description,
		Status:        status,
		StartDate:     in.StartDate,
		DueDate:       in.DueDate,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	u.log.Info("project created", zap.String("project_id", created.ID))
	return created, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListProjects(ctx context.Context, f interfaces.ProjectFilter) ([]entities.Project, error) {
	if f.Status != "" {
		if _, err := entities.ParseProjectStatus(string(f.Status)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProjectStatus, err)
		}
	}
	return u.repo.List(ctx, f)
}

func (u *ProjectUseCase) UpdateProject(ctx context.Context, id string, in ProjectInput, version int) (entities.Project, error) {
	p, err := u.GetProject(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if strings.TrimSpace(in.Status) == "" {
		in.Status = string(p.Status)
	}
	in, status, err := normalizeProjectInput(in)
	if err != nil {
		return entities.Project{}, err
	}

	p.Title = in.Title
	p.ClientName = in.ClientName
	p.ClientEmail = in.ClientEmail
	p.ClientCompany = in.ClientCompany
	p.ProjectType = in.ProjectType
	p.Description = in.Description
	p.Status = status
	p.StartDate = in.StartDate
	p.DueDate = in.DueDate
	p.UpdatedAt = u.now()

	saved, err := u.repo.Update(ctx, p, version)
	if err != nil {
		return entities.Project{}, err
	}
	if saved.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return saved, nil
}

func (u *ProjectUseCase) DeleteProject(ctx context.Context, id string) error {
	p, err := u.GetProject(ctx, id)
	if err != nil {
		return err
	}
	tasks, err := u.tasks.ListByProjectID(ctx, p.ID)
	if err != nil {
		return err
	}
	if len(tasks) > 0 {
		return ErrProjectHasTasks
	}
	ok, err := u.repo.Delete(ctx, p.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProjectNotFound
	}
	u.log.Info("project deleted", zap.String("project_id", p.ID))
	return nil
}

func normalizeProjectInput(in ProjectInput) (ProjectInput, entities.ProjectStatus, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	in.ClientCompany = strings.TrimSpace(in.ClientCompany)
	in.ProjectType = strings.TrimSpace(in.ProjectType)
	in.Description = strings.TrimSpace(in.Description)

	if in.Title == "" {
		return in, "", fmt.Errorf("%w: title is required", ErrInvalidProjectInput)
	}
	if in.ClientEmail != "" && !validEmail(in.ClientEmail) {
		return in, "", fmt.Errorf("%w: client_email is invalid", ErrInvalidProjectInput)
	}
	if in.StartDate != nil && in.DueDate != nil && in.DueDate.Before(*in.StartDate) {
		return in, "", fmt.Errorf("%w: due_date is before start_date", ErrInvalidProjectInput)
	}
	status := entities.ProjectStatusPlanning
	if s := strings.TrimSpace(in.Status); s != "" {
		st, err := entities.ParseProjectStatus(s)
		if err != nil {
			return in, "", fmt.Errorf("%w: %v", ErrInvalidProjectStatus, err)
		}
		status = st
	}
	return in, status, nil
}

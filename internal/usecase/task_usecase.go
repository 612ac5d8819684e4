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
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTaskID       = errors.New("invalid task id")
	ErrInvalidTaskInput    = errors.New("invalid task input")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrInvalidCommentInput = errors.New("invalid comment input")
)

type TaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      string
	Priority    string
	Assignee    string
	DueDate     *time.Time
	Position    *int
}

type CommentInput struct {
	Author string
	Body   string
}

// ITaskUseCase manages tasks and their comments.
//
// A task must reference an existing project and a comment an existing task.
// Deleting a task deletes its comments first.
type ITaskUseCase interface {
	CreateTask(ctx context.Context, in TaskInput) (entities.Task, error)
	GetTask(ctx context.Context, id string) (entities.Task, error)
	ListTasks(ctx context.Context, projectID string) ([]entities.Task, error)
	UpdateTask(ctx context.Context, id string, in TaskInput) (entities.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AddComment(ctx context.Context, taskID string, in CommentInput) (entities.TaskComment, error)
	ListComments(ctx context.Context, taskID string) ([]entities.TaskComment, error)
	DeleteComment(ctx context.Context, id string) error
}

type TaskUseCase struct {
	repo     interfaces.ITaskRepository
	comments interfaces.ITaskCommentRepository
	projects interfaces.IProjectRepository
	log      *zap.Logger
	now      func() time.Time
}

var _ ITaskUseCase = (*TaskUseCase)(nil)

func NewTaskUseCase(repo interfaces.ITaskRepository, comments interfaces.ITaskCommentRepository, projects interfaces.IProjectRepository, logger *zap.Logger) *TaskUseCase {
	return &TaskUseCase{repo: repo, comments: comments, projects: projects, log: componentLogger(logger, "task_usecase"), now: utcNow}
}

func (u *TaskUseCase) CreateTask(ctx context.Context, in TaskInput) (entities.Task, error) {
	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return entities.Task{}, ErrInvalidProjectID
	}
	p, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return entities.Task{}, err
	}
	if p.ID == "" {
		return entities.Task{}, ErrProjectNotFound
	}

	t := entities.Task{ID: uuid.NewString(), ProjectID: p.ID}
	if err := applyTaskInput(&t, in); err != nil {
		return entities.Task{}, err
	}
	if in.Position == nil {
		existing, err := u.repo.ListByProjectID(ctx, p.ID)
		if err != nil {
			return entities.Task{}, err
		}
		t.Position = len(existing)
	}
	now := u.now()
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	u.log.Info("task created", zap.String("task_id", created.ID), zap.String("project_id", created.ProjectID))
	return created, nil
}

func (u *TaskUseCase) GetTask(ctx context.Context, id string) (entities.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Task{}, ErrInvalidTaskID
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if t.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (u *TaskUseCase) ListTasks(ctx context.Context, projectID string) ([]entities.Task, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return u.repo.ListByProjectID(ctx, projectID)
}

// UpdateTask never moves a task to another project.
func (u *TaskUseCase) UpdateTask(ctx context.Context, id string, in TaskInput) (entities.Task, error) {
	t, err := u.GetTask(ctx, id)
	if err != nil {
		return entities.Task{}, err
	}
	if strings.TrimSpace(in.Status) == "" {
		in.Status = string(t.Status)
	}
	if strings.TrimSpace(in.Priority) == "" {
		in.Priority = string(t.Priority)
	}
	if in.Position == nil {
		pos := t.Position
		in.Position = &pos
	}
	if err := applyTaskInput(&t, in); err != nil {
		return entities.Task{}, err
	}
	t.UpdatedAt = u.now()

	saved, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Task{}, err
	}
	if saved.ID == "" {
		return entities.Task{}, ErrTaskNotFound
	}
	return saved, nil
}

func (u *TaskUseCase) DeleteTask(ctx context.Context, id string) error {
	t, err := u.GetTask(ctx, id)
	if err != nil {
		return err
	}
	comments, err := u.comments.ListByTaskID(ctx, t.ID)
	if err != nil {
		return err
	}
	for _, c := range comments {
		if _, err := u.comments.Delete(ctx, c.ID); err != nil {
			return fmt.Errorf("delete comment %s: %w", c.ID, err)
		}
	}
	ok, err := u.repo.Delete(ctx, t.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTaskNotFound
	}
	u.log.Info("task deleted", zap.String("task_id", t.ID), zap.Int("comments", len(comments)))
	return nil
}

func (u *TaskUseCase) AddComment(ctx context.Context, taskID string, in CommentInput) (entities.TaskComment, error) {
	t, err := u.GetTask(ctx, taskID)
	if err != nil {
		return entities.TaskComment{}, err
	}
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return entities.TaskComment{}, fmt.Errorf("%w: body is required", ErrInvalidCommentInput)
	}
	author := strings.TrimSpace(in.Author)
	if author == "" {
		return entities.TaskComment{}, fmt.Errorf("%w: author is required", ErrInvalidCommentInput)
	}
	return u.comments.Create(ctx, entities.TaskComment{
		ID:        uuid.NewString(),
		TaskID:    t.ID,
		Author:    author,
		Body:      body,
		CreatedAt: u.now(),
	})
}

func (u *TaskUseCase) ListComments(ctx context.Context, taskID string) ([]entities.TaskComment, error) {
	taskID = strings.TrimSpace(taskID)
	if taskID == "" {
		return nil, ErrInvalidTaskID
	}
	return u.comments.ListByTaskID(ctx, taskID)
}

func (u *TaskUseCase) DeleteComment(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrCommentNotFound
	}
	ok, err := u.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommentNotFound
	}
	return nil
}

func applyTaskInput(t *entities.Task, in TaskInput) error {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTaskInput)
	}
	status := entities.TaskStatusTodo
	if s := strings.TrimSpace(in.Status); s != "" {
		st, err := entities.ParseTaskStatus(s)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTaskInput, err)
		}
		status = st
	}
	priority := entities.TaskPriorityMedium
	if s := strings.TrimSpace(in.Priority); s != "" {
		pr, err := entities.ParseTaskPriority(s)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTaskInput, err)
		}
		priority = pr
	}
	if in.Position != nil && *in.Position < 0 {
		return fmt.Errorf("%w: position must not be negative", ErrInvalidTaskInput)
	}

	t.Title = title
	t.Description = strings.TrimSpace(in.Description)
	t.Status = status
	t.Priority = priority
	t.Assignee = strings.TrimSpace(in.Assignee)
	t.DueDate = in.DueDate
	if in.Position != nil {
		t.Position = *in.Position
	}
	return nil
}

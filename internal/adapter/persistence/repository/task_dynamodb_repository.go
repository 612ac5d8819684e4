package repository

import (
	"context"
	"sort"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"
)

const (
	defaultTasksTableName    = "tasks"
	defaultCommentsTableName = "task_comments"
	defaultTemplatesTable    = "task_templates"
	tasksProjectIDIndex      = "project_id-index"
	commentsTaskIDIndex      = "task_id-index"
)

type taskItem struct {
	ID          string `dynamodbav:"id"`
	ProjectID   string `dynamodbav:"project_id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Status      string `dynamodbav:"status"`
	Priority    string `dynamodbav:"priority"`
	Assignee    string `dynamodbav:"assignee,omitempty"`
	DueDate     string `dynamodbav:"due_date,omitempty"`
	Position    int    `dynamodbav:"position"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// TaskDynamoRepository persists Task entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
type TaskDynamoRepository struct {
	ddb       dynamoClient
	tableName string
}

var _ interfaces.ITaskRepository = (*TaskDynamoRepository)(nil)

func NewTaskDynamoRepository(ddb dynamoClient, tableName string) *TaskDynamoRepository {
	return &TaskDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultTasksTableName)}
}

func (r *TaskDynamoRepository) Create(ctx context.Context, t entities.Task) (entities.Task, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toTaskItem(t)); err != nil {
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) GetByID(ctx context.Context, id string) (entities.Task, error) {
	it, found, err := getByID[taskItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Task{}, err
	}
	return fromTaskItem(it), nil
}

// ListByProjectID returns the project's tasks ordered by position.
func (r *TaskDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Task, error) {
	items, err := queryIndex[taskItem](ctx, r.ddb, r.tableName, tasksProjectIDIndex, "project_id", projectID)
	if err != nil {
		return nil, err
	}
	tasks := make([]entities.Task, 0, len(items))
	for _, it := range items {
		tasks = append(tasks, fromTaskItem(it))
	}
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Position < tasks[j].Position })
	return tasks, nil
}

func (r *TaskDynamoRepository) Update(ctx context.Context, t entities.Task) (entities.Task, error) {
	found, err := replaceExisting(ctx, r.ddb, r.tableName, toTaskItem(t), 0)
	if err != nil || !found {
		return entities.Task{}, err
	}
	return t, nil
}

func (r *TaskDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toTaskItem(t entities.Task) taskItem {
	return taskItem{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Assignee:    t.Assignee,
		DueDate:     formatTimePtr(t.DueDate),
		Position:    t.Position,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func fromTaskItem(it taskItem) entities.Task {
	return entities.Task{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		Title:       it.Title,
		Description: it.Description,
		Status:      entities.TaskStatus(it.Status),
		Priority:    entities.TaskPriority(it.Priority),
		Assignee:    it.Assignee,
		DueDate:     parseTimePtr(it.DueDate),
		Position:    it.Position,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

type taskCommentItem struct {
	ID        string `dynamodbav:"id"`
	TaskID    string `dynamodbav:"task_id"`
	Author    string `dynamodbav:"author"`
	Body      string `dynamodbav:"body"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TaskCommentDynamoRepository persists comments with a task_id-index GSI.
type TaskCommentDynamoRepository struct {
	ddb       dynamoClient
	tableName string
}

var _ interfaces.ITaskCommentRepository = (*TaskCommentDynamoRepository)(nil)

func NewTaskCommentDynamoRepository(ddb dynamoClient, tableName string) *TaskCommentDynamoRepository {
	return &TaskCommentDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultCommentsTableName)}
}

func (r *TaskCommentDynamoRepository) Create(ctx context.Context, c entities.TaskComment) (entities.TaskComment, error) {
	it := taskCommentItem{ID: c.ID, TaskID: c.TaskID, Author: c.Author, Body: c.Body, CreatedAt: formatTime(c.CreatedAt)}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.TaskComment{}, err
	}
	return c, nil
}

// ListByTaskID returns comments oldest first.
func (r *TaskCommentDynamoRepository) ListByTaskID(ctx context.Context, taskID string) ([]entities.TaskComment, error) {
	items, err := queryIndex[taskCommentItem](ctx, r.ddb, r.tableName, commentsTaskIDIndex, "task_id", taskID)
	if err != nil {
		return nil, err
	}
	comments := make([]entities.TaskComment, 0, len(items))
	for _, it := range items {
		comments = append(comments, entities.TaskComment{
			ID:        it.ID,
			TaskID:    it.TaskID,
			Author:    it.Author,
			Body:      it.Body,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	sort.SliceStable(comments, func(i, j int) bool { return comments[i].CreatedAt.Before(comments[j].CreatedAt) })
	return comments, nil
}

func (r *TaskCommentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

type taskTemplateItem struct {
	ID          string                  `dynamodbav:"id"`
	Name        string                  `dynamodbav:"name"`
	ProjectType string                  `dynamodbav:"project_type,omitempty"`
	Items       []taskTemplateEntryItem `dynamodbav:"items"`
	CreatedAt   string                  `dynamodbav:"created_at"`
	UpdatedAt   string                  `dynamodbav:"updated_at"`
}

type taskTemplateEntryItem struct {
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Priority    string `dynamodbav:"priority"`
}

// TaskTemplateDynamoRepository persists task templates (PK: id).
type TaskTemplateDynamoRepository struct {
	ddb       dynamoClient
	tableName string
}

var _ interfaces.ITaskTemplateRepository = (*TaskTemplateDynamoRepository)(nil)

func NewTaskTemplateDynamoRepository(ddb dynamoClient, tableName string) *TaskTemplateDynamoRepository {
	return &TaskTemplateDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultTemplatesTable)}
}

func (r *TaskTemplateDynamoRepository) Create(ctx context.Context, t entities.TaskTemplate) (entities.TaskTemplate, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toTaskTemplateItem(t)); err != nil {
		return entities.TaskTemplate{}, err
	}
	return t, nil
}

func (r *TaskTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.TaskTemplate, error) {
	it, found, err := getByID[taskTemplateItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.TaskTemplate{}, err
	}
	return fromTaskTemplateItem(it), nil
}

func (r *TaskTemplateDynamoRepository) List(ctx context.Context) ([]entities.TaskTemplate, error) {
	items, err := scanAll[taskTemplateItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.TaskTemplate, 0, len(items))
	for _, it := range items {
		out = append(out, fromTaskTemplateItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *TaskTemplateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toTaskTemplateItem(t entities.TaskTemplate) taskTemplateItem {
	entries := make([]taskTemplateEntryItem, 0, len(t.Items))
	for _, e := range t.Items {
		entries = append(entries, taskTemplateEntryItem{Title: e.Title, Description: e.Description, Priority: string(e.Priority)})
	}
	return taskTemplateItem{
		ID:          t.ID,
		Name:        t.Name,
		ProjectType: t.ProjectType,
		Items:       entries,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func fromTaskTemplateItem(it taskTemplateItem) entities.TaskTemplate {
	entries := make([]entities.TaskTemplateItem, 0, len(it.Items))
	for _, e := range it.Items {
		entries = append(entries, entities.TaskTemplateItem{
			Title:       e.Title,
			Description: e.Description,
			Priority:    entities.TaskPriority(e.Priority),
		})
	}
	return entities.TaskTemplate{
		ID:          it.ID,
		Name:        it.Name,
		ProjectType: it.ProjectType,
		Items:       entries,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

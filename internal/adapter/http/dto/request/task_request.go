package request

import (
	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase"
)

type TaskRequest struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"due_date"`
	Position    *int   `json:"position"`
}

func (r TaskRequest) ToInput() (usecase.TaskInput, error) {
	due, err := parseDate(r.DueDate)
	if err != nil {
		return usecase.TaskInput{}, err
	}
	return usecase.TaskInput{
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Assignee:    r.Assignee,
		DueDate:     due,
		Position:    r.Position,
	}, nil
}

type CommentRequest struct {
	Author string `json:"author"`
	Body   string `json:"body" binding:"required"`
}

func (r CommentRequest) ToInput() usecase.CommentInput {
	return usecase.CommentInput{Author: r.Author, Body: r.Body}
}

type TaskTemplateItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type TaskTemplateRequest struct {
	Name        string                    `json:"name" binding:"required"`
	ProjectType string                    `json:"project_type"`
	Items       []TaskTemplateItemRequest `json:"items"`
}

func (r TaskTemplateRequest) ToInput() usecase.TaskTemplateInput {
	items := make([]entities.TaskTemplateItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.TaskTemplateItem{
			Title:       it.Title,
			Description: it.Description,
			Priority:    entities.TaskPriority(it.Priority),
		})
	}
	return usecase.TaskTemplateInput{Name: r.Name, ProjectType: r.ProjectType, Items: items}
}

type ApplyTemplateRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

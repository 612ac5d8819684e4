package response

import (
	"time"

	"agencyops/internal/domain/entities"
)

type TaskResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Assignee    string     `json:"assignee,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Position    int        `json:"position"`
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate time.Time  `json:"updated_date"`
}

func FromTask(t entities.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Assignee:    t.Assignee,
		DueDate:     t.DueDate,
		Position:    t.Position,
		CreatedDate: t.CreatedAt,
		UpdatedDate: t.UpdatedAt,
	}
}

func FromTasks(ts []entities.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTask(t))
	}
	return out
}

type CommentResponse struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	Author      string    `json:"author"`
	Body        string    `json:"body"`
	CreatedDate time.Time `json:"created_date"`
}

func FromComments(cs []entities.TaskComment) []CommentResponse {
	out := make([]CommentResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromComment(c))
	}
	return out
}

func FromComment(c entities.TaskComment) CommentResponse {
	return CommentResponse{ID: c.ID, TaskID: c.TaskID, Author: c.Author, Body: c.Body, CreatedDate: c.CreatedAt}
}

type TaskTemplateResponse struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	ProjectType string                      `json:"project_type,omitempty"`
	Items       []entities.TaskTemplateItem `json:"items"`
	CreatedDate time.Time                   `json:"created_date"`
	UpdatedDate time.Time                   `json:"updated_date"`
}

func FromTaskTemplate(t entities.TaskTemplate) TaskTemplateResponse {
	items := t.Items
	if items == nil {
		items = []entities.TaskTemplateItem{}
	}
	return TaskTemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		ProjectType: t.ProjectType,
		Items:       items,
		CreatedDate: t.CreatedAt,
		UpdatedDate: t.UpdatedAt,
	}
}

func FromTaskTemplates(ts []entities.TaskTemplate) []TaskTemplateResponse {
	out := make([]TaskTemplateResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTaskTemplate(t))
	}
	return out
}

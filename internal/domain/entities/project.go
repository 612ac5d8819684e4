package entities

import (
	"fmt"
	"time"
)

// ProjectStatus has no transition constraints; any value may follow any other.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusReview     ProjectStatus = "Review"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
	ProjectStatusCancelled  ProjectStatus = "Cancelled"
)

var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusInProgress,
	ProjectStatusReview,
	ProjectStatusCompleted,
	ProjectStatusOnHold,
	ProjectStatusCancelled,
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	for _, st := range ProjectStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown project status %q", s)
}

// Project is client delivery work, optionally converted from a lead.
type Project struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	ClientName    string        `json:"client_name"`
	ClientEmail   string        `json:"client_email"`
	ClientCompany string        `json:"client_company,omitempty"`
	ProjectType   string        `json:"project_type,omitempty"`
	Description   string        `json:"description,omitempty"`
	Status        ProjectStatus `json:"status"`
	LeadID        string        `json:"lead_id,omitempty"`
	StartDate     *time.Time    `json:"start_date,omitempty"`
	DueDate       *time.Time    `json:"due_date,omitempty"`
	Version       int           `json:"version"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

package response

import (
	"time"

	"agencyops/internal/domain/entities"
)

type ProjectResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	ClientName    string     `json:"client_name"`
	ClientEmail   string     `json:"client_email"`
	ClientCompany string     `json:"client_company,omitempty"`
	ProjectType   string     `json:"project_type,omitempty"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	LeadID        string     `json:"lead_id,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Version       int        `json:"version"`
	CreatedDate   time.Time  `json:"created_date"`
	UpdatedDate   time.Time  `json:"updated_date"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Title:         p.Title,
		ClientName:    p.ClientName,
		ClientEmail:   p.ClientEmail,
		ClientCompany: p.ClientCompany,
		ProjectType:   p.ProjectType,
		Description:   p.Description,
		Status:        string(p.Status),
		LeadID:        p.LeadID,
		StartDate:     p.StartDate,
		DueDate:       p.DueDate,
		Version:       p.Version,
		CreatedDate:   p.CreatedAt,
		UpdatedDate:   p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}

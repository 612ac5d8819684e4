package request

import "agencyops/internal/usecase"

type ProjectRequest struct {
	Title         string `json:"title" binding:"required"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientCompany string `json:"client_company"`
	ProjectType   string `json:"project_type"`
	Description   string `json:"description"`
	Status        string `json:"status"`
	StartDate     string `json:"start_date"`
	DueDate       string `json:"due_date"`
	Version       int    `json:"version"`
}

func (r ProjectRequest) ToInput() (usecase.ProjectInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return usecase.ProjectInput{}, err
	}
	due, err := parseDate(r.DueDate)
	if err != nil {
		return usecase.ProjectInput{}, err
	}
	return usecase.ProjectInput{
		Title:         r.Title,
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientCompany: r.ClientCompany,
		ProjectType:   r.ProjectType,
		Description:   r.Description,
		Status:        r.Status,
		StartDate:     start,
		DueDate:       due,
	}, nil
}

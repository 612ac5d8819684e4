package repository

import (
	"context"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID            string `dynamodbav:"id"`
	Title         string `dynamodbav:"title"`
	ClientName    string `dynamodbav:"client_name"`
	ClientEmail   string `dynamodbav:"client_email"`
	ClientCompany string `dynamodbav:"client_company,omitempty"`
	ProjectType   string `dynamodbav:"project_type,omitempty"`
	Description   string `dynamodbav:"description,omitempty"`
	Status        string `dynamodbav:"status"`
	LeadID        string `dynamodbav:"lead_id,omitempty"`
	StartDate     string `dynamodbav:"start_date,omitempty"`
	DueDate       string `dynamodbav:"due_date,omitempty"`
	Version       int    `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB (PK: id).
type ProjectDynamoRepository struct {
	ddb       dynamoClient
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb dynamoClient, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if p.Version == 0 {
		p.Version = 1
	}
	if err := putNew(ctx, r.ddb, r.tableName, toProjectItem(p)); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	it, found, err := getByID[projectItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context, f interfaces.ProjectFilter) ([]entities.Project, error) {
	var filters []scanFilter
	if f.Status != "" {
		filters = append(filters, scanFilter{attr: "status", value: string(f.Status)})
	}
	items, err := scanAll[projectItem](ctx, r.ddb, r.tableName, filters...)
	if err != nil {
		return nil, err
	}
	projects := make([]entities.Project, 0, len(items))
	for _, it := range items {
		projects = append(projects, fromProjectItem(it))
	}
	return applyListOptions(projects, f.ListOptions,
		func(p entities.Project) time.Time { return p.CreatedAt },
		func(p entities.Project) time.Time { return p.UpdatedAt },
		func(p entities.Project) string { return p.Title + " " + p.ClientName + " " + p.ClientCompany },
	), nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project, expectedVersion int) (entities.Project, error) {
	if expectedVersion > 0 {
		p.Version = expectedVersion + 1
	} else {
		p.Version++
	}
	found, err := replaceExisting(ctx, r.ddb, r.tableName, toProjectItem(p), expectedVersion)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:            p.ID,
		Title:         p.Title,
		ClientName:    p.ClientName,
		ClientEmail:   p.ClientEmail,
		ClientCompany: p.ClientCompany,
		ProjectType:   p.ProjectType,
		Description:   p.Description,
		Status:        string(p.Status),
		LeadID:        p.LeadID,
		StartDate:     formatTimePtr(p.StartDate),
		DueDate:       formatTimePtr(p.DueDate),
		Version:       p.Version,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:            it.ID,
		Title:         it.Title,
		ClientName:    it.ClientName,
		ClientEmail:   it.ClientEmail,
		ClientCompany: it.ClientCompany,
		ProjectType:   it.ProjectType,
		Description:   it.Description,
		Status:        entities.ProjectStatus(it.Status),
		LeadID:        it.LeadID,
		StartDate:     parseTimePtr(it.StartDate),
		DueDate:       parseTimePtr(it.DueDate),
		Version:       it.Version,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}

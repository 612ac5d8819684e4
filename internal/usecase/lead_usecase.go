package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrLeadNotFound         = errors.New("lead not found")
	ErrInvalidLeadID        = errors.New("invalid lead id")
	ErrInvalidLeadInput     = errors.New("invalid lead input")
	ErrInvalidLeadStatus    = errors.New("invalid lead status")
	ErrLeadAlreadyConverted = errors.New("lead already converted")
	ErrInvalidPaymentLink   = errors.New("invalid payment link")
)

const contactFormSource = "contact_form"

type LeadInput struct {
	Name       string
	Email      string
	Company    string
	Phone      string
	Source     string
	ServiceSKU string
	Message    string
	DealValue  float64
	Status     string
}

// ILeadUseCase manages the CRM pipeline and the lead -> project handoff.
//
// UpdateLead and UpdateStatus take the version the caller read; 0 skips the check.
type ILeadUseCase interface {
	CreateLead(ctx context.Context, in LeadInput) (entities.Lead, error)
	NotifyNewLead(ctx context.Context, in LeadInput) (entities.Lead, error)
	UpdateLead(ctx context.Context, id string, in LeadInput, version int) (entities.Lead, error)
	UpdateStatus(ctx context.Context, id, status string, version int) (entities.Lead, error)
	DeleteLead(ctx context.Context, id string) error
	GetLead(ctx context.Context, id string) (entities.Lead, error)
	ListLeads(ctx context.Context, f interfaces.LeadFilter) ([]entities.Lead, error)
	ConvertToProject(ctx context.Context, leadID, projectType string) (entities.Project, error)
	SendPaymentLink(ctx context.Context, leadID, link string, amount float64) (entities.Lead, error)
}

type LeadUseCase struct {
	repo     interfaces.ILeadRepository
	projects interfaces.IProjectRepository
	notifier interfaces.INotifier
	log      *zap.Logger
	now      func() time.Time
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository, projects interfaces.IProjectRepository, notifier interfaces.INotifier, logger *zap.Logger) *LeadUseCase {
	return &LeadUseCase{
		repo:     repo,
		projects: projects,
		notifier: notifier,
		log:      componentLogger(logger, "lead_usecase"),
		now:      utcNow,
	}
}

func (u *LeadUseCase) CreateLead(ctx context.Context, in LeadInput) (entities.Lead, error) {
	in, status, err := normalizeLeadInput(in)
	if err != nil {
		return entities.Lead{}, err
	}
	now := u.now()
	l := entities.Lead{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Company:    in.Company,
		Phone:      in.Phone,
		Source:     in.Source,
		ServiceSKU: in.ServiceSKU,
		Message:    in.Message,
		DealValue:  in.DealValue,
		Status:     status,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, l)
	if err != nil {
		return entities.Lead{}, err
	}
	u.log.Info("lead created", zap.String("lead_id", created.ID), zap.String("source", created.Source))
	return created, nil
}

// NotifyNewLead handles the public contact form: the lead is stored as New, the
// admin is notified and the sender gets an acknowledgement. Email failures are logged.
func (u *LeadUseCase) NotifyNewLead(ctx context.Context, in LeadInput) (entities.Lead, error) {
	in.Status = string(entities.LeadStatusNew)
	in.DealValue = 0
	if strings.TrimSpace(in.Source) == "" {
		in.Source = contactFormSource
	}
	l, err := u.CreateLead(ctx, in)
	if err != nil {
		return entities.Lead{}, err
	}
	if u.notifier != nil {
		if err := u.notifier.NotifyNewLead(ctx, l); err != nil {
			u.log.Error("new lead notification failed", zap.String("lead_id", l.ID), zap.Error(err))
		}
		if err := u.notifier.AcknowledgeContact(ctx, l); err != nil {
			u.log.Error("contact acknowledgement failed", zap.String("lead_id", l.ID), zap.Error(err))
		}
	}
	return l, nil
}

func (u *LeadUseCase) UpdateLead(ctx context.Context, id string, in LeadInput, version int) (entities.Lead, error) {
	l, err := u.GetLead(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if strings.TrimSpace(in.Status) == "" {
		in.Status = string(l.Status)
	}
	in, status, err := normalizeLeadInput(in)
	if err != nil {
		return entities.Lead{}, err
	}

	l.Name = in.Name
	l.Email = in.Email
	l.Company = in.Company
	l.Phone = in.Phone
	l.Source = in.Source
	l.ServiceSKU = in.ServiceSKU
	l.Message = in.Message
	l.DealValue = in.DealValue
	l.Status = status
	l.UpdatedAt = u.now()
	return u.save(ctx, l, version)
}

// UpdateStatus moves a lead to any pipeline stage; only membership is checked.
func (u *LeadUseCase) UpdateStatus(ctx context.Context, id, status string, version int) (entities.Lead, error) {
	st, err := entities.ParseLeadStatus(strings.TrimSpace(status))
	if err != nil {
		return entities.Lead{}, fmt.Errorf("%w: %v", ErrInvalidLeadStatus, err)
	}
	l, err := u.GetLead(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	l.Status = st
	l.UpdatedAt = u.now()
	return u.save(ctx, l, version)
}

// DeleteLead removes the lead and clears lead_id on the project it produced.
func (u *LeadUseCase) DeleteLead(ctx context.Context, id string) error {
	l, err := u.GetLead(ctx, id)
	if err != nil {
		return err
	}
	ok, err := u.repo.Delete(ctx, l.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrLeadNotFound
	}

	if l.ProjectID != "" && u.projects != nil {
		p, err := u.projects.GetByID(ctx, l.ProjectID)
		if err != nil {
			u.log.Error("converted project lookup failed", zap.String("lead_id", l.ID), zap.Error(err))
			return nil
		}
		if p.ID != "" && p.LeadID == l.ID {
			p.LeadID = ""
			p.UpdatedAt = u.now()
			if _, err := u.projects.Update(ctx, p, 0); err != nil {
				u.log.Error("clearing project lead_id failed", zap.String("project_id", p.ID), zap.Error(err))
			}
		}
	}
	return nil
}

func (u *LeadUseCase) GetLead(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}

func (u *LeadUseCase) ListLeads(ctx context.Context, f interfaces.LeadFilter) ([]entities.Lead, error) {
	if f.Status != "" {
		if _, err := entities.ParseLeadStatus(string(f.Status)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLeadStatus, err)
		}
	}
	return u.repo.List(ctx, f)
}

// ConvertToProject creates a Planning project from the lead's contact details and
// links it back. If linking fails the new project is deleted again.
func (u *LeadUseCase) ConvertToProject(ctx context.Context, leadID, projectType string) (entities.Project, error) {
	l, err := u.GetLead(ctx, leadID)
	if err != nil {
		return entities.Project{}, err
	}
	if l.IsConverted() {
		return entities.Project{}, ErrLeadAlreadyConverted
	}

	now := u.now()
	p := projectFromLead(l)
	p.ID = uuid.NewString()
	p.ProjectType = strings.TrimSpace(projectType)
	p.Version = 1
	p.CreatedAt = now
	p.UpdatedAt = now
	created, err := u.projects.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}

	l.ProjectID = created.ID
	l.UpdatedAt = now
	if _, err := u.save(ctx, l, l.Version); err != nil {
		u.log.Error("lead link failed; removing project", zap.String("lead_id", l.ID), zap.String("project_id", created.ID), zap.Error(err))
		if _, derr := u.projects.Delete(ctx, created.ID); derr != nil {
			u.log.Error("project compensation failed", zap.String("project_id", created.ID), zap.Error(derr))
		}
		return entities.Project{}, err
	}
	u.log.Info("lead converted", zap.String("lead_id", l.ID), zap.String("project_id", created.ID))
	return created, nil
}

// projectFromLead copies exactly the contact fields a project inherits.
func projectFromLead(l entities.Lead) entities.Project {
	title := l.Company
	if title == "" {
		title = l.Name
	}
	return entities.Project{
		Title:         title,
		ClientName:    l.Name,
		ClientEmail:   l.Email,
		ClientCompany: l.Company,
		Status:        entities.ProjectStatusPlanning,
		LeadID:        l.ID,
	}
}

// SendPaymentLink emails a checkout link and starts the reminder cycle.
func (u *LeadUseCase) SendPaymentLink(ctx context.Context, leadID, link string, amount float64) (entities.Lead, error) {
	link = strings.TrimSpace(link)
	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "https" && parsed.Scheme != "http") || parsed.Host == "" {
		return entities.Lead{}, ErrInvalidPaymentLink
	}
	if amount < 0 {
		return entities.Lead{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidLeadInput)
	}
	l, err := u.GetLead(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.SendPaymentLink(ctx, l, link, amount); err != nil {
			u.log.Error("payment link email failed", zap.String("lead_id", l.ID), zap.Error(err))
		}
	}

	now := u.now()
	l.PaymentStatus = entities.LeadPaymentPending
	l.PaymentLink = link
	l.PaymentLinkSentAt = &now
	l.LastReminderAt = nil
	l.ReminderCount = 0
	if amount > 0 {
		l.DealValue = amount
	}
	l.UpdatedAt = now
	return u.save(ctx, l, l.Version)
}

func (u *LeadUseCase) save(ctx context.Context, l entities.Lead, version int) (entities.Lead, error) {
	saved, err := u.repo.Update(ctx, l, version)
	if err != nil {
		return entities.Lead{}, err
	}
	if saved.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return saved, nil
}

func normalizeLeadInput(in LeadInput) (LeadInput, entities.LeadStatus, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Company = strings.TrimSpace(in.Company)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Source = strings.TrimSpace(in.Source)
	in.ServiceSKU = strings.TrimSpace(in.ServiceSKU)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" {
		return in, "", fmt.Errorf("%w: name is required", ErrInvalidLeadInput)
	}
	if !validEmail(in.Email) {
		return in, "", fmt.Errorf("%w: email is invalid", ErrInvalidLeadInput)
	}
	if in.DealValue < 0 {
		return in, "", fmt.Errorf("%w: deal_value must not be negative", ErrInvalidLeadInput)
	}
	status := entities.LeadStatusNew
	if s := strings.TrimSpace(in.Status); s != "" {
		st, err := entities.ParseLeadStatus(s)
		if err != nil {
			return in, "", fmt.Errorf("%w: %v", ErrInvalidLeadStatus, err)
		}
		status = st
	}
	return in, status, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidQuoteInput      = errors.New("invalid quote input")
	ErrQuoteNotSendable       = errors.New("quote cannot be sent in its current status")
	ErrQuoteNotEditable       = errors.New("quote cannot be edited in its current status")
	ErrQuoteExpired           = errors.New("quote expired")
	ErrQuoteInvalidTransition = errors.New("invalid quote status transition")
	ErrQuoteNumberExhausted   = errors.New("could not allocate a unique quote number")
)

const (
	defaultCurrency = "USD"

	quoteNumberAttempts = 5
)

// QuoteInput carries the admin-editable fields of a quote.
type QuoteInput struct {
	ClientName    string
	ClientEmail   string
	ClientCompany string
	ProjectTitle  string
	ScopeOfWork   string
	Price         float64
	Currency      string
	ValidUntil    *time.Time
}

// PublicQuote is what the client-facing quote page renders.
type PublicQuote struct {
	Quote           entities.Quote
	EffectiveStatus entities.QuoteStatus
	IsExpired       bool
	CanAccept       bool
	CanPay          bool
}

// IQuoteUseCase exposes the quote lifecycle.
//
//   - draft -> sent on SendQuote (re-send allowed until the client accepts)
//   - sent -> viewed on the first public page load
//   - accept and decline are driven by the client
//   - accepted -> paid belongs to IQuotePaymentUseCase
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in QuoteInput) (entities.Quote, error)
	UpdateQuote(ctx context.Context, id string, in QuoteInput) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id string) error
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	ListQuotes(ctx context.Context, f interfaces.QuoteFilter) ([]entities.Quote, error)
	SendQuote(ctx context.Context, id string) (entities.Quote, error)
	ViewQuote(ctx context.Context, id string) (PublicQuote, error)
	AcceptQuote(ctx context.Context, id, notes string) (entities.Quote, error)
	DeclineQuote(ctx context.Context, id, notes string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	notifier interfaces.INotifier
	baseURL  string
	log      *zap.Logger
	now      func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, notifier interfaces.INotifier, publicBaseURL string, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{
		repo:     repo,
		notifier: notifier,
		baseURL:  strings.TrimRight(publicBaseURL, "/"),
		log:      componentLogger(logger, "quote_usecase"),
		now:      utcNow,
	}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	in, err := normalizeQuoteInput(in)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	number, err := u.allocateQuoteNumber(ctx, now)
	if err != nil {
		return entities.Quote{}, err
	}
	q := entities.Quote{
		ID:            uuid.NewString(),
		QuoteNumber:   number,
		ClientName:    in.ClientName,
		ClientEmail:   in.ClientEmail,
		ClientCompany: in.ClientCompany,
		ProjectTitle:  in.ProjectTitle,
		ScopeOfWork:   in.ScopeOfWork,
		Price:         in.Price,
		Currency:      in.Currency,
		Status:        entities.QuoteStatusDraft,
		ValidUntil:    in.ValidUntil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote created", zap.String("quote_id", created.ID), zap.String("quote_number", created.QuoteNumber))
	return created, nil
}

func (u *QuoteUseCase) UpdateQuote(ctx context.Context, id string, in QuoteInput) (entities.Quote, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusSent) {
		return entities.Quote{}, ErrQuoteNotEditable
	}
	in, err = normalizeQuoteInput(in)
	if err != nil {
		return entities.Quote{}, err
	}

	q.ClientName = in.ClientName
	q.ClientEmail = in.ClientEmail
	q.ClientCompany = in.ClientCompany
	q.ProjectTitle = in.ProjectTitle
	q.ScopeOfWork = in.ScopeOfWork
	q.Price = in.Price
	q.Currency = in.Currency
	q.ValidUntil = in.ValidUntil
	q.UpdatedAt = u.now()
	saved, err := u.save(ctx, q, q.Status)
	if errors.Is(err, ErrQuoteInvalidTransition) {
		return entities.Quote{}, ErrQuoteNotEditable
	}
	return saved, err
}

func (u *QuoteUseCase) DeleteQuote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuoteNotFound
	}
	return nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context, f interfaces.QuoteFilter) ([]entities.Quote, error) {
	if f.Status != "" {
		if _, err := entities.ParseQuoteStatus(string(f.Status)); err != nil {
			return nil, err
		}
	}
	return u.repo.List(ctx, f)
}

// SendQuote (re)sends the quote link to the client. Accepted, paid and declined
// quotes are refused so a re-send can never roll a decision back.
func (u *QuoteUseCase) SendQuote(ctx context.Context, id string) (entities.Quote, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusSent) {
		u.log.Warn("quote send refused", zap.String("quote_id", q.ID), zap.String("status", string(q.Status)))
		return entities.Quote{}, ErrQuoteNotSendable
	}

	now := u.now()
	read := q.Status
	q.Status = entities.QuoteStatusSent
	q.SentDate = &now
	q.UpdatedAt = now
	saved, err := u.save(ctx, q, read)
	if errors.Is(err, ErrQuoteInvalidTransition) {
		return entities.Quote{}, ErrQuoteNotSendable
	}
	if err != nil {
		return entities.Quote{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.SendQuote(ctx, saved, u.QuoteLink(saved.ID)); err != nil {
			u.log.Error("quote email failed", zap.String("quote_id", saved.ID), zap.Error(err))
		}
	}
	u.log.Info("quote sent", zap.String("quote_id", saved.ID))
	return saved, nil
}

// QuoteLink is the public page URL the client receives.
func (u *QuoteUseCase) QuoteLink(id string) string {
	return fmt.Sprintf("%s/quote/%s", u.baseURL, id)
}

func (u *QuoteUseCase) ViewQuote(ctx context.Context, id string) (PublicQuote, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return PublicQuote{}, err
	}

	now := u.now()
	if q.Status == entities.QuoteStatusSent {
		moved, err := u.repo.MarkViewed(ctx, q.ID, now)
		if err != nil {
			u.log.Error("quote mark viewed failed", zap.String("quote_id", q.ID), zap.Error(err))
		} else if moved {
			q.Status = entities.QuoteStatusViewed
			q.ViewedDate = &now
			q.UpdatedAt = now
		}
	}
	return toPublicQuote(q, now), nil
}

// AcceptQuote records the client's acceptance. Accepting an accepted quote again
// keeps it accepted and stores the latest notes.
func (u *QuoteUseCase) AcceptQuote(ctx context.Context, id, notes string) (entities.Quote, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	if !q.Status.CanTransitionTo(entities.QuoteStatusAccepted) {
		return entities.Quote{}, ErrQuoteInvalidTransition
	}
	if q.IsExpired(now) {
		return entities.Quote{}, ErrQuoteExpired
	}

	read := q.Status
	if read != entities.QuoteStatusAccepted || q.AcceptedDate == nil {
		q.AcceptedDate = &now
	}
	q.Status = entities.QuoteStatusAccepted
	q.ClientNotes = strings.TrimSpace(notes)
	q.UpdatedAt = now
	saved, err := u.save(ctx, q, read)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote accepted", zap.String("quote_id", saved.ID))
	return saved, nil
}

func (u *QuoteUseCase) DeclineQuote(ctx context.Context, id, notes string) (entities.Quote, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.Status.CanTransitionTo(entities.QuoteStatusDeclined) {
		return entities.Quote{}, ErrQuoteInvalidTransition
	}

	now := u.now()
	read := q.Status
	q.Status = entities.QuoteStatusDeclined
	q.DeclinedDate = &now
	if n := strings.TrimSpace(notes); n != "" {
		q.ClientNotes = n
	}
	q.UpdatedAt = now
	saved, err := u.save(ctx, q, read)
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("quote declined", zap.String("quote_id", saved.ID))
	return saved, nil
}

// save writes q only if the stored status is still the one it was read with.
// A concurrent transition, such as a capture marking the quote paid, surfaces
// as ErrQuoteInvalidTransition instead of being overwritten.
func (u *QuoteUseCase) save(ctx context.Context, q entities.Quote, read entities.QuoteStatus) (entities.Quote, error) {
	saved, err := u.repo.Update(ctx, q, read)
	if errors.Is(err, entities.ErrStatusConflict) {
		u.log.Warn("quote status changed concurrently", zap.String("quote_id", q.ID), zap.String("read_status", string(read)))
		return entities.Quote{}, ErrQuoteInvalidTransition
	}
	if err != nil {
		return entities.Quote{}, err
	}
	if saved.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return saved, nil
}

func toPublicQuote(q entities.Quote, now time.Time) PublicQuote {
	return PublicQuote{
		Quote:           q,
		EffectiveStatus: q.EffectiveStatus(now),
		IsExpired:       q.IsExpired(now),
		CanAccept:       q.CanAccept(now),
		CanPay:          q.CanPay(),
	}
}

func normalizeQuoteInput(in QuoteInput) (QuoteInput, error) {
	in.ClientName = strings.TrimSpace(in.ClientName)
	in.ClientEmail = strings.TrimSpace(in.ClientEmail)
	in.ClientCompany = strings.TrimSpace(in.ClientCompany)
	in.ProjectTitle = strings.TrimSpace(in.ProjectTitle)
	in.ScopeOfWork = strings.TrimSpace(in.ScopeOfWork)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = defaultCurrency
	}

	switch {
	case in.ClientName == "":
		return in, fmt.Errorf("%w: client_name is required", ErrInvalidQuoteInput)
	case !validEmail(in.ClientEmail):
		return in, fmt.Errorf("%w: client_email is invalid", ErrInvalidQuoteInput)
	case in.ProjectTitle == "":
		return in, fmt.Errorf("%w: project_title is required", ErrInvalidQuoteInput)
	case in.Price <= 0:
		return in, fmt.Errorf("%w: price must be positive", ErrInvalidQuoteInput)
	}
	return in, nil
}

// allocateQuoteNumber draws quote numbers until one is not taken yet.
func (u *QuoteUseCase) allocateQuoteNumber(ctx context.Context, now time.Time) (string, error) {
	for range quoteNumberAttempts {
		number := newQuoteNumber(now)
		existing, err := u.repo.GetByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return number, nil
		}
		u.log.Warn("quote number collision", zap.String("quote_number", number))
	}
	return "", ErrQuoteNumberExhausted
}

// newQuoteNumber formats Q-YYYYMMDD-XXXXXX with a random suffix.
func newQuoteNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("Q-%s-%s", now.Format("20060102"), suffix)
}

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

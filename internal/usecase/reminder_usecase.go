package usecase

import (
	"context"
	"fmt"
	"time"

	"agencyops/internal/domain/entities"
	"agencyops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	DefaultReminderInterval   = 3 * 24 * time.Hour
	DefaultReminderStaleAfter = 14 * 24 * time.Hour
)

// ReminderReport is the outcome of one reminder batch.
type ReminderReport struct {
	Processed     int      `json:"processed"`
	Reminded      int      `json:"reminded"`
	MarkedStale   int      `json:"marked_stale"`
	Errors        int      `json:"errors"`
	ErrorMessages []string `json:"error_messages"`
}

type IReminderUseCase interface {
	RunPaymentReminders(ctx context.Context) (ReminderReport, error)
}

// ReminderUseCase chases leads holding an unpaid payment link.
//
// A link older than staleAfter marks the lead stale and stops reminders; otherwise
// a reminder goes out when the last one (or the link itself) is older than interval.
type ReminderUseCase struct {
	leads      interfaces.ILeadRepository
	notifier   interfaces.INotifier
	interval   time.Duration
	staleAfter time.Duration
	log        *zap.Logger
	now        func() time.Time
}

var _ IReminderUseCase = (*ReminderUseCase)(nil)

func NewReminderUseCase(leads interfaces.ILeadRepository, notifier interfaces.INotifier, interval, staleAfter time.Duration, logger *zap.Logger) *ReminderUseCase {
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	if staleAfter <= 0 {
		staleAfter = DefaultReminderStaleAfter
	}
	return &ReminderUseCase{
		leads:      leads,
		notifier:   notifier,
		interval:   interval,
		staleAfter: staleAfter,
		log:        componentLogger(logger, "reminder_usecase"),
		now:        utcNow,
	}
}

func (u *ReminderUseCase) RunPaymentReminders(ctx context.Context) (ReminderReport, error) {
	report := ReminderReport{ErrorMessages: []string{}}
	pending, err := u.leads.ListByPaymentStatus(ctx, entities.LeadPaymentPending)
	if err != nil {
		return report, err
	}

	now := u.now()
	for _, l := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Processed++

		sentAt := l.CreatedAt
		if l.PaymentLinkSentAt != nil {
			sentAt = *l.PaymentLinkSentAt
		}

		if now.Sub(sentAt) >= u.staleAfter {
			l.PaymentStatus = entities.LeadPaymentStale
			l.UpdatedAt = now
			if _, err := u.leads.Update(ctx, l, l.Version); err != nil {
				report.fail(l, "mark stale", err)
				continue
			}
			report.MarkedStale++
			continue
		}

		last := sentAt
		if l.LastReminderAt != nil {
			last = *l.LastReminderAt
		}
		if now.Sub(last) < u.interval {
			continue
		}

		if err := u.notifier.SendPaymentReminder(ctx, l); err != nil {
			report.fail(l, "send reminder", err)
			continue
		}
		l.ReminderCount++
		l.LastReminderAt = &now
		l.UpdatedAt = now
		if _, err := u.leads.Update(ctx, l, l.Version); err != nil {
			report.fail(l, "record reminder", err)
			continue
		}
		report.Reminded++
	}

	u.log.Info("payment reminders finished",
		zap.Int("processed", report.Processed),
		zap.Int("reminded", report.Reminded),
		zap.Int("marked_stale", report.MarkedStale),
		zap.Int("errors", report.Errors))
	return report, nil
}

func (r *ReminderReport) fail(l entities.Lead, step string, err error) {
	r.Errors++
	r.ErrorMessages = append(r.ErrorMessages, fmt.Sprintf("lead %s: %s: %v", l.ID, step, err))
}

package scheduler

import (
	"context"
	"time"

	"agencyops/internal/infrastructure/metrics"
	"agencyops/internal/usecase"

	"go.uber.org/zap"
)

const (
	JobPaymentReminders  = "payment_reminders"
	JobReconcileRequests = "reconcile_service_requests"
)

type JobsConfig struct {
	ReminderSchedule string
	ReconcileEvery   time.Duration
	ReconcileAfter   time.Duration
}

// RegisterJobs schedules the payment reminder batch and the stale checkout sweep.
func RegisterJobs(s *Scheduler, cfg JobsConfig, reminders usecase.IReminderUseCase, requests usecase.IServiceRequestUseCase, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Named("jobs")

	if err := s.AddCronTask(JobPaymentReminders, cfg.ReminderSchedule, paymentRemindersJob(reminders, log)); err != nil {
		return err
	}
	if cfg.ReconcileEvery > 0 {
		if err := s.AddIntervalTask(JobReconcileRequests, cfg.ReconcileEvery, reconcileJob(requests, cfg.ReconcileAfter, log)); err != nil {
			return err
		}
	}
	return nil
}

func paymentRemindersJob(uc usecase.IReminderUseCase, log *zap.Logger) TaskFunc {
	return func(ctx context.Context) error {
		report, err := uc.RunPaymentReminders(ctx)
		if err != nil {
			return err
		}
		metrics.ReminderLeads.WithLabelValues("reminded").Add(float64(report.Reminded))
		metrics.ReminderLeads.WithLabelValues("stale").Add(float64(report.MarkedStale))
		metrics.ReminderLeads.WithLabelValues("error").Add(float64(report.Errors))
		log.Info("payment reminders run",
			zap.Int("processed", report.Processed),
			zap.Int("reminded", report.Reminded),
			zap.Int("marked_stale", report.MarkedStale),
			zap.Int("errors", report.Errors))
		return nil
	}
}

func reconcileJob(uc usecase.IServiceRequestUseCase, olderThan time.Duration, log *zap.Logger) TaskFunc {
	return func(ctx context.Context) error {
		res, err := uc.ReconcileStale(ctx, olderThan)
		if err != nil {
			return err
		}
		log.Info("stale service requests reconciled",
			zap.Int("checked", res.Checked),
			zap.Int("completed", res.Completed),
			zap.Int("failed", res.Failed),
			zap.Int("skipped", res.Skipped),
			zap.Int("errors", res.Errors))
		return nil
	}
}

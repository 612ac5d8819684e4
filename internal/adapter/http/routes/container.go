package routes

import (
	"context"
	"fmt"

	"agencyops/internal/adapter/http/handlers"
	"agencyops/internal/adapter/persistence/repository"
	"agencyops/internal/domain/pricing"
	"agencyops/internal/infrastructure/config"
	"agencyops/internal/infrastructure/database"
	"agencyops/internal/infrastructure/email"
	"agencyops/internal/infrastructure/payments"
	"agencyops/internal/infrastructure/scheduler"
	"agencyops/internal/infrastructure/storage"
	"agencyops/internal/usecase"
	"agencyops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type application struct {
	handlers  Handlers
	auth      *usecase.AuthUseCase
	scheduler *scheduler.Scheduler
}

func build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*application, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}

	tables := cfg.DynamoDB
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, tables.QuotesTable)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, tables.PaymentsTable)
	leadRepo := repository.NewLeadDynamoRepository(ddb, tables.LeadsTable)
	requestRepo := repository.NewServiceRequestDynamoRepository(ddb, tables.ServiceRequestsTable)
	projectRepo := repository.NewProjectDynamoRepository(ddb, tables.ProjectsTable)
	taskRepo := repository.NewTaskDynamoRepository(ddb, tables.TasksTable)
	commentRepo := repository.NewTaskCommentDynamoRepository(ddb, tables.TaskCommentsTable)
	templateRepo := repository.NewTaskTemplateDynamoRepository(ddb, tables.TaskTemplatesTable)

	stripeGateway := payments.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, log)
	if !cfg.Stripe.Enabled() {
		log.Warn("stripe not configured, card checkout disabled")
	}
	paypalGateway, err := payments.NewPayPalGateway(cfg.PayPal.ClientID, cfg.PayPal.ClientSecret, cfg.PayPal.Sandbox, cfg.PayPal.WebhookID, log)
	if err != nil {
		return nil, fmt.Errorf("paypal gateway: %w", err)
	}
	// A nil gateway answers every charge with ErrMercadoPagoGatewayNotConfigured.
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	}

	notifier, err := buildNotifier(cfg, log)
	if err != nil {
		return nil, err
	}

	var files interfaces.IFileStore
	if cfg.Storage.Enabled() {
		store, err := storage.NewS3FileStore(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("s3 file store: %w", err)
		}
		files = store
	}

	requestUseCase := usecase.NewServiceRequestUseCase(usecase.ServiceRequestDeps{
		Repo:     requestRepo,
		Leads:    leadRepo,
		Payments: paymentRepo,
		Checkout: stripeGateway,
		Orders:   paypalGateway,
		Files:    files,
		Notifier: notifier,
	}, pricing.Default, usecase.ServiceRequestUseCaseConfig{
		PublicBaseURL:      cfg.Site.PublicBaseURL,
		Currency:           cfg.Site.Currency,
		MaxAttachmentBytes: cfg.Storage.MaxAttachmentBytes,
	}, log)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, notifier, cfg.Site.PublicBaseURL, log)
	quotePaymentUseCase := usecase.NewQuotePaymentUseCase(quoteRepo, paymentRepo, paypalGateway, mpGateway, requestUseCase, usecase.QuotePaymentUseCaseConfig{
		PublicBaseURL:     cfg.Site.PublicBaseURL,
		SandboxToken:      cfg.MercadoPago.Sandbox(),
		SandboxPayerEmail: cfg.MercadoPago.SandboxPayerEmail,
	}, log)
	leadUseCase := usecase.NewLeadUseCase(leadRepo, projectRepo, notifier, log)
	reminderUseCase := usecase.NewReminderUseCase(leadRepo, notifier, cfg.Reminders.Interval, cfg.Reminders.StaleAfter, log)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, taskRepo, log)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, commentRepo, projectRepo, log)
	templateUseCase := usecase.NewTaskTemplateUseCase(templateRepo, taskRepo, projectRepo, log)
	authUseCase := usecase.NewAuthUseCase(usecase.AuthConfig{
		JWTSecret:         cfg.Auth.JWTSecret,
		TokenTTL:          cfg.Auth.TokenTTL,
		AdminEmail:        cfg.Auth.AdminEmail,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
	}, log)

	app := &application{
		auth: authUseCase,
		handlers: Handlers{
			Quotes:          handlers.NewQuoteHandler(quoteUseCase),
			QuotePayments:   handlers.NewQuotePaymentHandler(quotePaymentUseCase, cfg.MercadoPago.Mock, log),
			ServiceRequests: handlers.NewServiceRequestHandler(requestUseCase, log),
			Leads:           handlers.NewLeadHandler(leadUseCase),
			Projects:        handlers.NewProjectHandler(projectUseCase),
			Tasks:           handlers.NewTaskHandler(taskUseCase),
			Templates:       handlers.NewTaskTemplateHandler(templateUseCase),
			Auth:            handlers.NewAuthHandler(authUseCase),
			Webhooks:        handlers.NewWebhookHandler(requestUseCase, quotePaymentUseCase, log),
			Reminders:       handlers.NewReminderHandler(reminderUseCase),
			Functions: handlers.NewFunctionsHandler(handlers.FunctionsDeps{
				ServiceRequests: requestUseCase,
				QuotePayments:   quotePaymentUseCase,
				Leads:           leadUseCase,
				Reminders:       reminderUseCase,
			}, log),
		},
	}

	if cfg.Reminders.Enabled {
		app.scheduler = scheduler.New(cfg.Reminders.JobTimeout, log)
		err := scheduler.RegisterJobs(app.scheduler, scheduler.JobsConfig{
			ReminderSchedule: cfg.Reminders.Schedule,
			ReconcileEvery:   cfg.Reminders.ReconcileEvery,
			ReconcileAfter:   cfg.Reminders.ReconcileAfter,
		}, reminderUseCase, requestUseCase, log)
		if err != nil {
			return nil, fmt.Errorf("register jobs: %w", err)
		}
	}
	return app, nil
}

func buildNotifier(cfg *config.Config, log *zap.Logger) (*email.Notifier, error) {
	renderer, err := email.NewRenderer(cfg.Email.FromName, cfg.Site.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("email templates: %w", err)
	}

	var mailer email.Mailer = email.NewLogMailer(log)
	if cfg.Email.MailgunEnabled() {
		mailer = email.NewMailgunMailer(cfg.Email.MailgunDomain, cfg.Email.MailgunAPIKey, cfg.Email.MailgunAPIURL, cfg.Email.FromEmail, cfg.Email.FromName, log)
	} else {
		log.Warn("mailgun not configured, emails are only logged")
	}

	return email.NewNotifier(mailer, renderer, email.NotifierOptions{
		AgencyName: cfg.Email.FromName,
		AdminEmail: cfg.Site.NotificationEmail,
		SiteURL:    cfg.Site.PublicBaseURL,
		Currency:   cfg.Site.Currency,
	}, log), nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the service reads from the environment.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Server      ServerConfig
	DynamoDB    DynamoDBConfig
	Stripe      StripeConfig
	PayPal      PayPalConfig
	MercadoPago MercadoPagoConfig
	Email       EmailConfig
	Storage     StorageConfig
	Auth        AuthConfig
	Site        SiteConfig
	Reminders   RemindersConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// DynamoDBConfig defaults to static "local" credentials for DynamoDB Local.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`

	QuotesTable          string `env:"DYNAMODB_QUOTES_TABLE" envDefault:"quotes"`
	PaymentsTable        string `env:"DYNAMODB_PAYMENTS_TABLE" envDefault:"payments"`
	LeadsTable           string `env:"DYNAMODB_LEADS_TABLE" envDefault:"leads"`
	ProjectsTable        string `env:"DYNAMODB_PROJECTS_TABLE" envDefault:"projects"`
	TasksTable           string `env:"DYNAMODB_TASKS_TABLE" envDefault:"tasks"`
	TaskCommentsTable    string `env:"DYNAMODB_TASK_COMMENTS_TABLE" envDefault:"task_comments"`
	TaskTemplatesTable   string `env:"DYNAMODB_TASK_TEMPLATES_TABLE" envDefault:"task_templates"`
	ServiceRequestsTable string `env:"DYNAMODB_SERVICE_REQUESTS_TABLE" envDefault:"service_requests"`
}

type StripeConfig struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
}

func (c StripeConfig) Enabled() bool { return c.SecretKey != "" }

type PayPalConfig struct {
	ClientID     string `env:"PAYPAL_CLIENT_ID"`
	ClientSecret string `env:"PAYPAL_CLIENT_SECRET"`
	Sandbox      bool   `env:"PAYPAL_SANDBOX" envDefault:"true"`
	WebhookID    string `env:"PAYPAL_WEBHOOK_ID"`
}

func (c PayPalConfig) Enabled() bool { return c.ClientID != "" && c.ClientSecret != "" }

type MercadoPagoConfig struct {
	AccessToken       string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock              bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	SandboxPayerEmail string `env:"MERCADOPAGO_SANDBOX_PAYER_EMAIL"`
}

// Sandbox reports whether the access token is a Mercado Pago test credential.
func (c MercadoPagoConfig) Sandbox() bool {
	return strings.HasPrefix(c.AccessToken, "TEST-")
}

type EmailConfig struct {
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	MailgunAPIURL string `env:"MAILGUN_API_URL"`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"hello@agency.local"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"Agency"`
}

func (c EmailConfig) MailgunEnabled() bool { return c.MailgunDomain != "" && c.MailgunAPIKey != "" }

type StorageConfig struct {
	Bucket             string `env:"S3_BUCKET"`
	Region             string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint           string `env:"S3_ENDPOINT"`
	AccessKeyID        string `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey    string `env:"S3_SECRET_ACCESS_KEY"`
	MaxAttachmentBytes int64  `env:"MAX_ATTACHMENT_BYTES" envDefault:"10485760"`
}

func (c StorageConfig) Enabled() bool { return c.Bucket != "" }

type AuthConfig struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"JWT_TTL" envDefault:"12h"`
	AdminEmail        string        `env:"ADMIN_EMAIL"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
}

type SiteConfig struct {
	PublicBaseURL     string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`
	NotificationEmail string `env:"ADMIN_NOTIFICATION_EMAIL"`
	Currency          string `env:"CURRENCY" envDefault:"USD"`
}

type RemindersConfig struct {
	Enabled        bool          `env:"SCHEDULER_ENABLED" envDefault:"true"`
	Schedule       string        `env:"REMINDER_SCHEDULE" envDefault:"0 0 14 * * *"`
	Interval       time.Duration `env:"REMINDER_INTERVAL" envDefault:"72h"`
	StaleAfter     time.Duration `env:"REMINDER_STALE_AFTER" envDefault:"336h"`
	ReconcileEvery time.Duration `env:"RECONCILE_INTERVAL" envDefault:"1h"`
	ReconcileAfter time.Duration `env:"RECONCILE_OLDER_THAN" envDefault:"24h"`
	JobTimeout     time.Duration `env:"JOB_TIMEOUT" envDefault:"5m"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `env:"RATE_LIMIT_RPM" envDefault:"30"`
	Burst             int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.Site.PublicBaseURL = strings.TrimRight(cfg.Site.PublicBaseURL, "/")
	if cfg.Site.NotificationEmail == "" {
		cfg.Site.NotificationEmail = cfg.Auth.AdminEmail
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

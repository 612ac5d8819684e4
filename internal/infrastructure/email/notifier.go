package email

import (
	"context"
	"fmt"
	"strings"

	"agencyops/internal/domain/entities"
	"agencyops/internal/domain/pricing"
	"agencyops/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "January 2, 2006"

type NotifierOptions struct {
	AgencyName string
	// AdminEmail receives internal notifications. Empty disables them.
	AdminEmail string
	SiteURL    string
	Currency   string
}

// Notifier renders and sends the transactional emails of the agency.
type Notifier struct {
	mailer   Mailer
	renderer *Renderer
	opts     NotifierOptions
	printer  *message.Printer
	log      *zap.Logger
}

var _ interfaces.INotifier = (*Notifier)(nil)

func NewNotifier(mailer Mailer, renderer *Renderer, opts NotifierOptions, logger *zap.Logger) *Notifier {
	opts.SiteURL = strings.TrimRight(opts.SiteURL, "/")
	if opts.Currency == "" {
		opts.Currency = "USD"
	}
	return &Notifier{
		mailer:   mailer,
		renderer: renderer,
		opts:     opts,
		printer:  message.NewPrinter(language.English),
		log:      named(logger, "email.notifier"),
	}
}

func (n *Notifier) SendQuote(ctx context.Context, q entities.Quote, link string) error {
	data := map[string]any{
		"quoteNumber":  q.QuoteNumber,
		"clientName":   q.ClientName,
		"projectTitle": q.ProjectTitle,
		"price":        n.money(q.Price, q.Currency),
		"link":         link,
	}
	if q.ValidUntil != nil {
		data["validUntil"] = q.ValidUntil.Format(dateLayout)
	}
	subject := fmt.Sprintf("Your quote %s from %s", q.QuoteNumber, n.opts.AgencyName)
	text := fmt.Sprintf("Hi %s,\n\nYour quote %s for %s is ready: %s\n", q.ClientName, q.QuoteNumber, q.ProjectTitle, link)
	return n.send(ctx, "quote_sent", Message{To: q.ClientEmail, ToName: q.ClientName, Subject: subject, Text: text}, data)
}

func (n *Notifier) SendPaymentLink(ctx context.Context, l entities.Lead, link string, amount float64) error {
	data := map[string]any{
		"name":   l.Name,
		"amount": n.money(amount, ""),
		"link":   link,
	}
	text := fmt.Sprintf("Hi %s,\n\nYou can complete your payment of %s here: %s\n", l.Name, n.money(amount, ""), link)
	return n.send(ctx, "payment_link", Message{To: l.Email, ToName: l.Name, Subject: "Your payment link", Text: text}, data)
}

func (n *Notifier) SendPaymentReminder(ctx context.Context, l entities.Lead) error {
	data := map[string]any{
		"name": l.Name,
		"link": l.PaymentLink,
	}
	text := fmt.Sprintf("Hi %s,\n\nYour payment is still pending. You can finish it here: %s\n", l.Name, l.PaymentLink)
	return n.send(ctx, "payment_reminder", Message{To: l.Email, ToName: l.Name, Subject: "Reminder: your payment is pending", Text: text}, data)
}

func (n *Notifier) NotifyNewLead(ctx context.Context, l entities.Lead) error {
	if n.opts.AdminEmail == "" {
		return nil
	}
	data := map[string]any{
		"name":    l.Name,
		"email":   l.Email,
		"company": l.Company,
		"phone":   l.Phone,
		"source":  l.Source,
		"message": l.Message,
	}
	text := fmt.Sprintf("New lead from %s <%s>\n\n%s\n", l.Name, l.Email, l.Message)
	return n.send(ctx, "new_lead", Message{To: n.opts.AdminEmail, ReplyTo: l.Email, Subject: "New lead: " + l.Name, Text: text}, data)
}

func (n *Notifier) AcknowledgeContact(ctx context.Context, l entities.Lead) error {
	data := map[string]any{"name": l.Name}
	text := fmt.Sprintf("Hi %s,\n\nWe received your message and will get back to you within one business day.\n", l.Name)
	return n.send(ctx, "contact_ack", Message{To: l.Email, ToName: l.Name, Subject: "Thanks for reaching out", Text: text}, data)
}

func (n *Notifier) NotifyServiceRequestPaid(ctx context.Context, r entities.ServiceRequest) error {
	if n.opts.AdminEmail == "" {
		return nil
	}
	service := string(r.Kind)
	if item, err := pricing.Default.Lookup(r.Kind); err == nil {
		service = item.Name
	}
	data := map[string]any{
		"service":   service,
		"name":      r.Name,
		"email":     r.Email,
		"company":   r.Company,
		"amount":    n.money(r.PaymentAmount, ""),
		"provider":  string(r.PaymentProvider),
		"appURL":    r.AppURL,
		"addOns":    r.AddOns,
		"details":   r.Details,
		"adminLink": n.opts.SiteURL + "/admin/service-requests/" + r.ID,
	}
	subject := fmt.Sprintf("Paid %s request from %s", service, r.Name)
	text := fmt.Sprintf("%s paid %s for %s.\n", r.Name, n.money(r.PaymentAmount, ""), service)
	return n.send(ctx, "service_request_paid", Message{To: n.opts.AdminEmail, ReplyTo: r.Email, Subject: subject, Text: text}, data)
}

func (n *Notifier) send(ctx context.Context, template string, m Message, data map[string]any) error {
	html, err := n.renderer.Render(template, m.Subject, data)
	if err != nil {
		n.log.Error("render failed", zap.String("template", template), zap.Error(err))
		return err
	}
	m.HTML = html
	if _, err := n.mailer.Send(ctx, m); err != nil {
		return fmt.Errorf("send %s: %w", template, err)
	}
	return nil
}

func (n *Notifier) money(v float64, currency string) string {
	if currency == "" {
		currency = n.opts.Currency
	}
	return n.printer.Sprintf("%s %.2f", strings.ToUpper(currency), v)
}

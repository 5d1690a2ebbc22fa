package mailer

import (
	"fmt"
	"strings"

	applaundry "github.com/feedygotech/laundry-backend/internal/application/laundry"
	"github.com/feedygotech/laundry-backend/internal/domain/laundry"
	"github.com/feedygotech/laundry-backend/internal/infrastructure/config"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer implements the application Mailer over SMTP
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

var _ applaundry.Mailer = (*SMTPMailer)(nil)

// New creates a mailer from the mail configuration. When mail is
// disabled a no-op mailer is returned so callers never need to branch.
func New(cfg *config.MailConfig, logger *zap.Logger) applaundry.Mailer {
	if !cfg.Enabled {
		return &NopMailer{logger: logger}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendPickupAcknowledgement confirms receipt of a pickup request
func (m *SMTPMailer) SendPickupAcknowledgement(request *laundry.PickupRequest) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your pickup request and will call you shortly to arrange a time.\n\nPickup address:\n%s\n\nThank you for choosing us.",
		request.Name, request.Address,
	)
	return m.send(request.Email, "We received your pickup request", body)
}

// SendQueryReceived confirms receipt of a contact query
func (m *SMTPMailer) SendQueryReceived(query *laundry.ContactQuery) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for getting in touch about \"%s\". Our team will reply as soon as possible.",
		query.Name, query.Subject,
	)
	return m.send(query.Email, "We received your message", body)
}

// SendQueryResponse delivers the operator's answer to a resolved query
func (m *SMTPMailer) SendQueryResponse(query *laundry.ContactQuery) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nRegarding your message \"%s\":\n\n%s",
		query.Name, query.Subject, query.Response,
	)
	return m.send(query.Email, "Re: "+query.Subject, body)
}

// SendPendingChangesDigest mails the daily list of services whose
// published prices have drifted from the live catalog
func (m *SMTPMailer) SendPendingChangesDigest(to string, services []applaundry.PendingDigestEntry) error {
	var b strings.Builder
	b.WriteString("The following services have price list changes awaiting publication:\n\n")
	for _, entry := range services {
		state := "published, out of date"
		if !entry.Published {
			state = "never published"
		}
		fmt.Fprintf(&b, "  - %s (%s)\n", entry.ServiceName, state)
	}
	b.WriteString("\nReview and publish from the pricing admin.")
	return m.send(to, fmt.Sprintf("Pricing digest: %d service(s) pending", len(services)), b.String())
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	m.logger.Debug("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// NopMailer drops all mail. Used when SMTP is not configured.
type NopMailer struct {
	logger *zap.Logger
}

var _ applaundry.Mailer = (*NopMailer)(nil)

// SendPickupAcknowledgement logs and drops the mail
func (m *NopMailer) SendPickupAcknowledgement(request *laundry.PickupRequest) error {
	m.logger.Debug("mail disabled, skipping pickup acknowledgement", zap.String("to", request.Email))
	return nil
}

// SendQueryReceived logs and drops the mail
func (m *NopMailer) SendQueryReceived(query *laundry.ContactQuery) error {
	m.logger.Debug("mail disabled, skipping query receipt", zap.String("to", query.Email))
	return nil
}

// SendQueryResponse logs and drops the mail
func (m *NopMailer) SendQueryResponse(query *laundry.ContactQuery) error {
	m.logger.Debug("mail disabled, skipping query response", zap.String("to", query.Email))
	return nil
}

// SendPendingChangesDigest logs and drops the mail
func (m *NopMailer) SendPendingChangesDigest(to string, services []applaundry.PendingDigestEntry) error {
	m.logger.Debug("mail disabled, skipping pending-changes digest",
		zap.String("to", to), zap.Int("services", len(services)))
	return nil
}

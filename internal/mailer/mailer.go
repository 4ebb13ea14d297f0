// Package mailer sends the admin notification and customer auto-reply
// emails for contact and quote submissions. Delivery is best effort: the
// caller logs failures and never propagates them to the request.
package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/nruhp/newskprinter/internal/config"
	"github.com/nruhp/newskprinter/internal/storage"
)

type Mailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
	logger *zap.Logger
}

// New builds a Mailer. With no SMTP host configured the mailer is
// disabled and every Send call is a logged no-op.
func New(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	m := &Mailer{cfg: cfg, logger: logger}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return m
}

func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

// SendContactNotification notifies the admin of a new contact message and
// auto-replies to the sender.
func (m *Mailer) SendContactNotification(contact storage.Contact) error {
	if !m.Enabled() {
		m.logger.Warn("Email notifications disabled - no SMTP host configured")
		return nil
	}

	admin := m.newMessage(
		m.cfg.AdminEmail,
		fmt.Sprintf("New Contact Message: %s", contact.Subject),
		renderContactAdmin(contact, m.cfg.SiteURL),
	)
	reply := m.newMessage(
		contact.Email,
		"Thank you for contacting SK Printers!",
		renderContactReply(contact),
	)

	if err := m.dialer.DialAndSend(admin, reply); err != nil {
		return fmt.Errorf("failed to send contact emails: %w", err)
	}
	return nil
}

// SendQuoteNotification notifies the admin of a new quote request and
// auto-replies to the customer.
func (m *Mailer) SendQuoteNotification(quote storage.Quote) error {
	if !m.Enabled() {
		m.logger.Warn("Email notifications disabled - no SMTP host configured")
		return nil
	}

	company := quote.Company
	if company == "" {
		company = "Individual"
	}

	admin := m.newMessage(
		m.cfg.AdminEmail,
		fmt.Sprintf("New Quote Request from %s - %s", quote.Name, company),
		renderQuoteAdmin(quote, m.cfg.SiteURL),
	)
	reply := m.newMessage(
		quote.Email,
		"Your Quote Request Received - SK Printers",
		renderQuoteReply(quote),
	)

	if err := m.dialer.DialAndSend(admin, reply); err != nil {
		return fmt.Errorf("failed to send quote emails: %w", err)
	}
	return nil
}

func (m *Mailer) newMessage(to, subject, htmlBody string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.User, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return msg
}

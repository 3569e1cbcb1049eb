package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"techfest-backend/internal/domain/catalog"
	"techfest-backend/internal/domain/registration"
	"techfest-backend/internal/pkg/config"

	gomail "gopkg.in/gomail.v2"
)

// sendFunc delivers a message using the given account; swapped out in tests.
type sendFunc func(acct *Account, m *gomail.Message) error

type Mailer struct {
	pool    *Pool
	catalog *catalog.Catalog
	cfg     config.EmailConfig
	send    sendFunc
}

func NewMailer(pool *Pool, cat *catalog.Catalog, cfg config.EmailConfig) *Mailer {
	m := &Mailer{
		pool:    pool,
		catalog: cat,
		cfg:     cfg,
	}
	m.send = m.smtpSend
	return m
}

func (m *Mailer) smtpSend(acct *Account, msg *gomail.Message) error {
	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, acct.Address, acct.Password)
	return d.DialAndSend(msg)
}

// Notify sends the confirmation email for reg. Callers treat the result as
// best-effort: a returned error is logged, never propagated to the
// registrant.
func (m *Mailer) Notify(ctx context.Context, reg *registration.Registration) error {
	htmlBody, textBody, err := renderConfirmation(reg, m.catalog, m.cfg.FrontendURL, m.cfg.ContactAddr)
	if err != nil {
		return err
	}

	acct, err := m.pool.Acquire()
	if err != nil {
		return err
	}

	msg := m.buildMessage(acct, reg, htmlBody, textBody)
	if err := m.send(acct, msg); err != nil {
		if !isAuthOrLimitErr(err) {
			return err
		}
		// One retry with the next identity, then give up.
		m.pool.Advance()
		retry, acquireErr := m.pool.Acquire()
		if acquireErr != nil {
			return err
		}
		slog.WarnContext(ctx, "email send failed, retrying with next account",
			"error", err, "next", retry.Address)
		msg = m.buildMessage(retry, reg, htmlBody, textBody)
		if retryErr := m.send(retry, msg); retryErr != nil {
			return retryErr
		}
		acct = retry
	}

	m.pool.MarkSent(acct)
	slog.InfoContext(ctx, "registration email sent",
		"registration_id", reg.RegistrationID, "to", reg.UserEmail, "from", acct.Address)
	return nil
}

func (m *Mailer) buildMessage(acct *Account, reg *registration.Registration, htmlBody, textBody string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", acct.Address, acct.DisplayName)
	msg.SetHeader("To", reg.UserEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Tech Fiesta 2025 - Registration Confirmed (%s)", reg.RegistrationID))
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)
	return msg
}

// isAuthOrLimitErr matches SMTP responses worth retrying on another account:
// bad credentials (535) or provider rate limits (421/450/452).
func isAuthOrLimitErr(err error) bool {
	s := strings.ToLower(err.Error())
	for _, marker := range []string{"535", "421", "450", "452", "auth", "limit", "quota"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}

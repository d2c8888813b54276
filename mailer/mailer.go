package mailer

import (
	"fmt"

	"newshub/config"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// newsletterBatchSize caps the recipients per newsletter send to stay
// under provider rate limits.
const newsletterBatchSize = 50

// Mailer is the transactional notification sink. Every send is
// fire-and-forget from the caller's point of view: failures are reported
// but never roll back the mutation that triggered them.
type Mailer interface {
	SendWelcome(to, name string) error
	SendVerification(to, link string) error
	SendPasswordReset(to, link string) error
	SendArticlePublished(to, articleTitle, articleURL string) error
	SendCommentNotification(to, articleTitle, commenterName, commentContent, articleURL string) error
	SendNewsletter(recipients []string, subject, content string) error
	SendContactResponse(to, name, message string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    zerolog.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, log zerolog.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

func (m *smtpMailer) send(to []string, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error().Err(err).Str("subject", subject).Msg("failed to send email")
		return err
	}
	return nil
}

func (m *smtpMailer) SendWelcome(to, name string) error {
	body := fmt.Sprintf("Hello %s,<br>Welcome to NewsHub. Your account is ready.", name)
	return m.send([]string{to}, "Welcome to NewsHub", body)
}

func (m *smtpMailer) SendVerification(to, link string) error {
	body := fmt.Sprintf("Hello,<br>Please verify your email address by following <a href=%q>this link</a>. The link expires in 24 hours.", link)
	return m.send([]string{to}, "Verify your email address", body)
}

func (m *smtpMailer) SendPasswordReset(to, link string) error {
	body := fmt.Sprintf("Hello,<br>You requested a password reset. Follow <a href=%q>this link</a> to choose a new password. The link expires in 1 hour.", link)
	return m.send([]string{to}, "Reset your password", body)
}

func (m *smtpMailer) SendArticlePublished(to, articleTitle, articleURL string) error {
	subject := fmt.Sprintf("Your article %q has been published", articleTitle)
	body := fmt.Sprintf("Hello,<br>Your article <b>%s</b> is now live: <a href=%q>%s</a>", articleTitle, articleURL, articleURL)
	return m.send([]string{to}, subject, body)
}

func (m *smtpMailer) SendCommentNotification(to, articleTitle, commenterName, commentContent, articleURL string) error {
	subject := fmt.Sprintf("New comment on your article %q", articleTitle)
	body := fmt.Sprintf("Hello,<br><b>%s</b> commented on <a href=%q>%s</a>:<br><blockquote>%s</blockquote>",
		commenterName, articleURL, articleTitle, commentContent)
	return m.send([]string{to}, subject, body)
}

func (m *smtpMailer) SendNewsletter(recipients []string, subject, content string) error {
	for start := 0; start < len(recipients); start += newsletterBatchSize {
		end := start + newsletterBatchSize
		if end > len(recipients) {
			end = len(recipients)
		}
		if err := m.send(recipients[start:end], subject, content); err != nil {
			return err
		}
	}
	return nil
}

func (m *smtpMailer) SendContactResponse(to, name, message string) error {
	body := fmt.Sprintf("Hello %s,<br>We've received your message and will get back to you soon.<br><blockquote>%s</blockquote>", name, message)
	return m.send([]string{to}, "We've received your message", body)
}

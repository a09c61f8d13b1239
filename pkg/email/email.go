package email

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// SendFunc matches smtp.SendMail so tests can capture outgoing messages
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
	send   SendFunc
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config, send: smtp.SendMail}
}

// WithSendFunc replaces the SMTP transport
func (s *EmailService) WithSendFunc(fn SendFunc) *EmailService {
	s.send = fn
	return s
}

// Configured reports whether enough SMTP settings are present to send mail
func (s *EmailService) Configured() bool {
	return s.config.SMTPHost != "" && s.config.FromEmail != ""
}

// SendHTML sends an HTML document as the body of an email
func (s *EmailService) SendHTML(toEmail, subject, htmlBody string) error {
	if !s.Configured() {
		return fmt.Errorf("email: SMTP is not configured")
	}
	message := s.buildHTMLEmail(toEmail, subject, htmlBody)
	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	var auth smtp.Auth
	if s.config.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)
	}

	err := s.send(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		mime.QEncoding.Encode("utf-8", s.config.FromName),
		s.config.FromEmail,
		to,
		mime.QEncoding.Encode("utf-8", strings.TrimSpace(subject)),
	)

	return []byte(headers + htmlBody)
}

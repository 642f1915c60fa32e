package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	FromAddress     string
	FromName        string
	OperatorAddress string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendNewRequestNotification tells the operator a new beta request landed.
// The note is already sanitized before it reaches here.
func (s *SMTPEmailService) SendNewRequestNotification(name, requestEmail, note string) error {
	subject := fmt.Sprintf("New beta request from %s", name)

	noteSection := "No note provided."
	if note != "" {
		noteSection = note
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Beta Request</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Note:</strong></p>
			<p>%s</p>
		</body>
		</html>
	`, name, requestEmail, noteSection)

	plainBody := fmt.Sprintf(`
New Beta Request

Name: %s
Email: %s

Note:
%s
	`, name, requestEmail, noteSection)

	return s.sendEmail(s.config.OperatorAddress, subject, htmlBody, plainBody)
}

// SendApprovalEmail notifies a requester that their beta request was approved.
func (s *SMTPEmailService) SendApprovalEmail(to, name string) error {
	subject := "Your beta request was approved"

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your beta request has been approved.</p>
			<p>You can now sign in and start sharing your work with your fans.</p>
		</body>
		</html>
	`, name)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your beta request has been approved.

You can now sign in and start sharing your work with your fans.
	`, name)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

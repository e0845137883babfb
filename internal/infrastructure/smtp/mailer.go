package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/GioMjds/pinterest-backend/internal/config"
)

// Mailer delivers outbound account email. SendOTP failures surface to the
// caller so the registration flow can report a notification failure instead
// of leaving the client waiting for a code that never arrives.
type Mailer interface {
	SendEmail(to, subject, body string) error
	SendOTP(to, purposeLabel, code string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

func (m *mailer) SendOTP(to, purposeLabel, code string) error {
	subject := fmt.Sprintf("OTP for %s", purposeLabel)
	body := fmt.Sprintf("Your one-time code is %s. It expires in 2 minutes. If you did not request this, ignore this email.", code)
	return m.SendEmail(to, subject, body)
}

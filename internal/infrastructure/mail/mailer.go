package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"ruralconnect/internal/config"
)

// Mailer sends plain-text notification emails over SMTP. When no SMTP host is
// configured it logs and drops, so a missing mail setup never breaks the
// send path.
type Mailer struct {
	host   string
	port   int
	user   string
	pass   string
	from   string
	logger zerolog.Logger
}

func NewMailer(cfg *config.Config, logger zerolog.Logger) *Mailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &Mailer{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		from:   from,
		logger: logger,
	}
}

// Send delivers a single message. Returns nil when SMTP is unconfigured.
func (m *Mailer) Send(to, subject, body string) error {
	if m.host == "" {
		m.logger.Warn().Str("to", to).Msg("SMTP not configured, dropping notification email")
		return nil
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.user != "" && m.pass != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

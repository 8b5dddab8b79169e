// Package mailer sends the transactional notices: a welcome mail with the
// temporary password when an account is created, and the decision notice when
// a leave request is approved or rejected.
package mailer

import (
	"fmt"
	"log"

	"github.com/janarthanan-HTGE/HRMS-Dev/config"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewFromEnv builds the mailer from SMTP_* variables. With no SMTP_HOST set
// the mailer is a logging no-op so local runs work without a relay.
func NewFromEnv() *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		log.Println("[MAILER] SMTP_HOST not set, mail disabled")
		return &Mailer{}
	}
	dialer := gomail.NewDialer(
		host,
		config.GetEnvAsInt("SMTP_PORT", 587),
		config.GetEnv("SMTP_USER", ""),
		config.GetEnv("SMTP_PASSWORD", ""),
	)
	dialer.SSL = config.GetEnvAsBool("SMTP_SSL", false)

	return &Mailer{
		dialer: dialer,
		from:   config.GetEnv("SMTP_FROM", "hrms@localhost"),
	}
}

func (m *Mailer) send(to, subject, body string) {
	if m.dialer == nil {
		log.Printf("[MAILER] skipped (disabled): to=%s subject=%q", to, subject)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	// Sent in the background so a slow relay never blocks the request.
	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			log.Printf("[MAILER] send failed: to=%s err=%v", to, err)
			return
		}
		log.Printf("[MAILER] sent: to=%s subject=%q", to, subject)
	}()
}

// SendWelcome mails a newly created account its temporary password.
func (m *Mailer) SendWelcome(to, name, tempPassword string) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour HRMS account is ready.\nLogin: %s\nTemporary password: %s\n\nPlease change it after your first sign-in.\n",
		name, to, tempPassword,
	)
	m.send(to, "Your HRMS account", body)
}

// SendLeaveDecision notifies the requester of an approval or rejection.
func (m *Mailer) SendLeaveDecision(to, name, status, note string) {
	body := fmt.Sprintf("Hi %s,\n\nYour leave request was %s.\n", name, status)
	if note != "" {
		body += "Reviewer note: " + note + "\n"
	}
	m.send(to, "Leave request "+status, body)
}

package email

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// Mailer sends outbound mail over SMTP. Configuration comes from the EMAIL_*
// environment variables; when EMAIL_HOST is unset the mailer runs in
// placeholder mode and logs the message instead, so local development needs
// no SMTP credentials.
type Mailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// NewMailerFromEnv reads the EMAIL_* variables.
func NewMailerFromEnv() *Mailer {
	return &Mailer{
		Host: os.Getenv("EMAIL_HOST"),
		Port: os.Getenv("EMAIL_PORT"),
		User: os.Getenv("EMAIL_USER"),
		Pass: os.Getenv("EMAIL_PASS"),
		From: os.Getenv("EMAIL_FROM"),
	}
}

// SendEmail delivers one plain-text message.
func (m *Mailer) SendEmail(to, subject, body string) error {
	if m.Host == "" {
		// Placeholder mode: log instead of sending.
		log.Println("====================================================")
		log.Printf("--- NEW EMAIL (PLACEHOLDER) ---")
		log.Printf("To: %s", to)
		log.Printf("Subject: %s", subject)
		log.Println("--- Body ---")
		log.Println(body)
		log.Println("====================================================")
		return nil
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.From, to, subject, body,
	))

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(addr, auth, m.From, []string{to}, msg)
}

// SendContactSubmission formats and sends a contact-form submission to the
// configured submissions inbox (TO_EMAIL_SUBMISSIONS).
func (m *Mailer) SendContactSubmission(name, fromEmail, subject, messageBody, reference string) error {
	to := os.Getenv("TO_EMAIL_SUBMISSIONS")
	if to == "" {
		to = m.From
	}

	body := fmt.Sprintf(
		"New contact form submission\n\nReference: %s\nName: %s\nEmail: %s\n\n%s\n",
		reference, name, fromEmail, messageBody,
	)
	return m.SendEmail(to, "Contact form: "+subject, body)
}

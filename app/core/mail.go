package core

import (
	"errors"
	"log"

	"gopkg.in/gomail.v2"
)

// SendMail delivers a mail with optional file attachments over the configured
// SMTP server. There is no queueing, the call blocks until the dialer is done.
func SendMail(from string, to []string, cc []string, bcc []string, subject string, body string, files []string) error {
	if from == "" {
		from = Config.MailServer.From
	}

	if Config.MailServer.SmtpHost == "" || Config.MailServer.SmtpPort <= 0 {
		return errors.New("mail server not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to...)
	if len(cc) > 0 {
		m.SetHeader("Cc", cc...)
	}
	if len(bcc) > 0 {
		m.SetHeader("Bcc", bcc...)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	for _, file := range files {
		m.Attach(file)
	}

	d := gomail.NewDialer(Config.MailServer.SmtpHost, Config.MailServer.SmtpPort, Config.MailServer.SmtpUsername, Config.MailServer.SmtpPassword)

	err := d.DialAndSend(m)
	if err != nil {
		log.Print(err)
	}
	return err
}

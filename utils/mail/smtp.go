package mail

import (
	"context"
	gomail "github.com/go-mail/mail"
	"github.com/pkg/errors"
	"time"
)

type SMTPMailer struct {
	dialer *gomail.Dialer
}

func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, username, password)}
}

// Send dials a fresh connection per message. The context deadline, if any,
// bounds the dial.
func (s *SMTPMailer) Send(ctx context.Context, message *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dialer := *s.dialer
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Timeout = time.Until(deadline)
	}
	return errors.Wrap(dialer.DialAndSend(buildMessage(message)), "smtp send")
}

func buildMessage(message *Message) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", message.From)
	msg.SetHeader("To", message.To)
	msg.SetHeader("Subject", message.Subject)
	msg.SetBody("text/plain", message.Text)
	return msg
}

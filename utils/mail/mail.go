package mail

import (
	"context"
	"fmt"
	"referral_backend/config"
)

// Message is a single plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, message *Message) error
}

// Sender is the process-wide transport, set by InitMailer.
var Sender Mailer

func InitMailer() {
	var err error
	Sender, err = NewMailer(config.Config.MailTransport)
	if err != nil {
		panic(err)
	}
}

func NewMailer(transport string) (Mailer, error) {
	switch transport {
	case "smtp":
		if config.Config.MailUsername == "" || config.Config.MailPassword == "" {
			return nil, fmt.Errorf("smtp transport requires MAIL_USERNAME and MAIL_PASSWORD")
		}
		return NewSMTPMailer(
			config.Config.MailHost,
			config.Config.MailPort,
			config.Config.MailUsername,
			config.Config.MailPassword,
		), nil
	case "ses":
		return NewSESMailer(
			config.Config.TencentSecretID,
			config.Config.TencentSecretKey,
			config.Config.SesRegion,
		)
	case "log":
		return LogMailer{}, nil
	default:
		return nil, fmt.Errorf("unsupported mail transport %q", transport)
	}
}

// Send delivers message through Sender
func Send(ctx context.Context, message *Message) error {
	if message.From == "" {
		message.From = config.Config.MailFrom
	}
	return Sender.Send(ctx, message)
}

package mail

import (
	"context"
	"go.uber.org/zap"
	"referral_backend/utils"
)

// LogMailer writes messages to the logger instead of delivering them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, message *Message) error {
	utils.Logger.Info(
		"mail not delivered, log transport",
		zap.String("from", message.From),
		zap.String("to", message.To),
		zap.String("subject", message.Subject),
		zap.String("text", message.Text),
	)
	return nil
}

package email

import (
	"studyhub/utils"

	"go.uber.org/zap"
)

// LogSender writes codes to the log instead of sending email. Used in
// development when no Resend API key is configured.
type LogSender struct{}

func (LogSender) SendVerificationEmail(to, code string) error {
	utils.GetLogger().Info("verification email (log-only)",
		zap.String("to", to), zap.String("code", code))
	return nil
}

func (LogSender) SendResendEmail(to, code string) error {
	utils.GetLogger().Info("resend email (log-only)",
		zap.String("to", to), zap.String("code", code))
	return nil
}

// NewSender picks the Resend implementation when an API key is configured,
// and the log-only sender otherwise.
func NewSender(apiKey string) Sender {
	if apiKey == "" {
		return LogSender{}
	}
	return NewResendSender()
}

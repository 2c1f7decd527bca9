package email

import (
	"fmt"

	"studyhub/config"
	"studyhub/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendSender delivers verification emails through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender builds a sender from the configured API key.
func NewResendSender() *ResendSender {
	return &ResendSender{
		client: resend.NewClient(config.AppConfig.ResendAPIKey),
		from:   config.AppConfig.EmailFrom,
	}
}

func (s *ResendSender) send(to, subject, text string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Text:    text,
	}
	if _, err := s.client.Emails.Send(params); err != nil {
		utils.GetLogger().Error("Failed to send email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *ResendSender) SendVerificationEmail(to, code string) error {
	body := fmt.Sprintf("Your StudyHub verification code is: %s. It expires in 10 minutes.", code)
	return s.send(to, "Verify your StudyHub account", body)
}

func (s *ResendSender) SendResendEmail(to, code string) error {
	body := fmt.Sprintf("Your new StudyHub verification code is: %s. It expires in 10 minutes.", code)
	return s.send(to, "Your new StudyHub verification code", body)
}

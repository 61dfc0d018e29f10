package services

import (
	"fmt"

	"bollybuzz-backend/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer dispatches the password-reset mail. No retries: a failure is
// surfaced to the caller, who may resubmit the request.
type Mailer interface {
	SendResetEmail(to, resetToken string) error
}

type mailService struct {
	cfg    config.SMTPConfig
	appURL string
	logger *logrus.Logger
}

func NewMailService(cfg config.SMTPConfig, appURL string, logger *logrus.Logger) Mailer {
	return &mailService{
		cfg:    cfg,
		appURL: appURL,
		logger: logger,
	}
}

func (s *mailService) SendResetEmail(to, resetToken string) error {
	resetURL := fmt.Sprintf("%s/auth/reset-password/%s", s.appURL, resetToken)

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset Request - BollY BuzZ")
	m.SetBody("text/html", resetEmailBody(resetURL))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	d.SSL = s.cfg.Port == 465

	if err := d.DialAndSend(m); err != nil {
		s.logger.WithError(err).WithField("to", to).Error("Failed to send reset email")
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.WithField("to", to).Info("Reset email sent")
	return nil
}

func resetEmailBody(resetURL string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #EAB308; text-align: center;">BollY BuzZ Password Reset</h2>
  <div style="padding: 20px; background-color: #f8f8f8; border-radius: 10px;">
    <p>Hello,</p>
    <p>You have requested to reset your password. Please click the button below to set a new password:</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s" style="background-color: #EAB308; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a>
    </div>
    <p>If the button doesn't work, copy and paste this link into your browser:</p>
    <p style="word-break: break-all; color: #666;">%s</p>
    <p>This link will expire in 30 minutes.</p>
    <p>If you didn't request this password reset, please ignore this email.</p>
  </div>
</div>`, resetURL, resetURL)
}

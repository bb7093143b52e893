package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net"
	"net/smtp"

	"backoffice/config"
	"backoffice/infras/otel"
	"backoffice/shared/constant"

	"github.com/domodwyer/mailyak/v3"
	"github.com/rs/zerolog/log"
)

// Mailer sends transactional mail. Delivery is synchronous; callers decide
// whether a failed send aborts the request.
type Mailer interface {
	SendVerificationCode(ctx context.Context, toEmail, toName, code string, expireMin int) error
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
}

func New(config *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		config: config,
		otel:   otel,
	}
}

func (m *mailerImpl) SendVerificationCode(ctx context.Context, toEmail, toName, code string, expireMin int) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".SendVerificationCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	smtpCfg := m.config.External.SMTP
	addr := net.JoinHostPort(smtpCfg.Host, smtpCfg.Port)

	mail := mailyak.New(addr, smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host))

	mail.From(smtpCfg.SenderEmail)
	mail.FromName(smtpCfg.SenderName)
	mail.To(toEmail)
	mail.Subject(fmt.Sprintf("%s verification code", m.config.App.Name))

	greeting := toName
	if greeting == "" {
		greeting = toEmail
	}

	mail.Plain().Set(fmt.Sprintf(
		"Hi %s,\n\nYour verification code is %s. It expires in %d minutes.\n\nIf you did not request this, you can ignore this email.\n",
		greeting, code, expireMin,
	))

	if err = mail.Send(); err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("failed to send verification email")

		return fmt.Errorf("failed to send verification email: %w", err)
	}

	log.Info().Str("to", toEmail).Msg("verification email sent")

	return nil
}

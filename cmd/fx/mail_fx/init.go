package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"inzider/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587 // STARTTLS; use 465 with SMTP_SSL=true for SMTPS
	}

	cfg := services.SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"), // use app password if 2FA is enabled
		From:     os.Getenv("SMTP_FROM"),
		FromName: "Inzider",
		UseSSL:   os.Getenv("SMTP_SSL") == "true",

		AppName:    "Inzider",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	return services.NewSMTPMailService(cfg)
}

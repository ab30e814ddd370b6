package stripe_fx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"inzider/internal/repositories"
	"inzider/internal/services"
)

var Module = fx.Provide(provideStripeService)

func provideStripeService(creatorRepo repositories.CreatorRepository, log *zap.Logger) services.StripeServiceInterface {
	cfg := services.StripeConfig{
		SecretKey:   os.Getenv("STRIPE_SECRET_KEY"),
		ClientID:    os.Getenv("STRIPE_CLIENT_ID"),
		RedirectURI: os.Getenv("STRIPE_REDIRECT_URI"),
	}
	return services.NewStripeService(cfg, creatorRepo, log)
}

package services

import (
	"context"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/oauth"
	"go.uber.org/zap"

	"inzider/internal/repositories"
	"inzider/pkg/utils"
)

type StripeConfig struct {
	SecretKey string
	// ClientID is the Connect application id (ca_...), baked into the
	// authorize URL the connect button points at.
	ClientID    string
	RedirectURI string
}

// StripeServiceInterface drives the Connect OAuth flow: build the
// authorize URL, exchange the callback code for an account id and
// persist it on the creator, and clear the linkage on disconnect.
type StripeServiceInterface interface {
	ConnectURL(creatorID uuid.UUID) string
	HandleCallback(ctx context.Context, creatorID uuid.UUID, code string) (string, error)
	Disconnect(ctx context.Context, creatorID uuid.UUID) error
}

// stripeOAuth is the slice of the Stripe SDK the service touches,
// extracted so tests can stand in for the network.
type stripeOAuth interface {
	AuthorizeURL(params *stripe.AuthorizeURLParams) string
	ExchangeCode(params *stripe.OAuthTokenParams) (*stripe.OAuthToken, error)
	Deauthorize(params *stripe.DeauthorizeParams) (*stripe.Deauthorize, error)
}

type sdkOAuth struct{}

func (sdkOAuth) AuthorizeURL(params *stripe.AuthorizeURLParams) string {
	return oauth.AuthorizeURL(params)
}

func (sdkOAuth) ExchangeCode(params *stripe.OAuthTokenParams) (*stripe.OAuthToken, error) {
	return oauth.New(params)
}

func (sdkOAuth) Deauthorize(params *stripe.DeauthorizeParams) (*stripe.Deauthorize, error) {
	return oauth.Del(params)
}

type StripeService struct {
	cfg         StripeConfig
	creatorRepo repositories.CreatorRepository
	oauth       stripeOAuth
	log         *zap.Logger
}

func NewStripeService(cfg StripeConfig, creatorRepo repositories.CreatorRepository, log *zap.Logger) StripeServiceInterface {
	stripe.Key = cfg.SecretKey
	return &StripeService{
		cfg:         cfg,
		creatorRepo: creatorRepo,
		oauth:       sdkOAuth{},
		log:         log,
	}
}

func (s *StripeService) ConnectURL(creatorID uuid.UUID) string {
	return s.oauth.AuthorizeURL(&stripe.AuthorizeURLParams{
		ClientID:     stripe.String(s.cfg.ClientID),
		ResponseType: stripe.String("code"),
		Scope:        stripe.String("read_write"),
		RedirectURI:  stripe.String(s.cfg.RedirectURI),
		// State carries the creator through the round trip.
		State: stripe.String(creatorID.String()),
	})
}

func (s *StripeService) HandleCallback(ctx context.Context, creatorID uuid.UUID, code string) (string, error) {
	token, err := s.oauth.ExchangeCode(&stripe.OAuthTokenParams{
		GrantType: stripe.String("authorization_code"),
		Code:      stripe.String(code),
	})
	if err != nil {
		s.log.Error("stripe oauth exchange", zap.Error(err))
		return "", utils.ErrDatabaseError
	}

	if err := s.creatorRepo.UpdateStripeAccount(ctx, creatorID, token.StripeUserID); err != nil {
		s.log.Error("persist stripe account", zap.String("creator_id", creatorID.String()), zap.Error(err))
		return "", utils.ErrDatabaseError
	}

	return token.StripeUserID, nil
}

func (s *StripeService) Disconnect(ctx context.Context, creatorID uuid.UUID) error {
	creator, err := s.creatorRepo.FindByID(ctx, creatorID)
	if err != nil {
		s.log.Error("find creator for disconnect", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if creator == nil {
		return utils.ErrAccountNotFound
	}
	if creator.StripeAccountID == "" {
		return nil
	}

	if _, err := s.oauth.Deauthorize(&stripe.DeauthorizeParams{
		ClientID:     stripe.String(s.cfg.ClientID),
		StripeUserID: stripe.String(creator.StripeAccountID),
	}); err != nil {
		// Clear our side regardless; the provider linkage can be
		// retried from the dashboard.
		s.log.Warn("stripe deauthorize", zap.Error(err))
	}

	return s.creatorRepo.UpdateStripeAccount(ctx, creatorID, "")
}

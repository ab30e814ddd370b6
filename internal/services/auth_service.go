package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/repositories"
	"inzider/pkg/authz"
	"inzider/pkg/utils"
)

// AuthServiceInterface signs accounts up and in. Creators and users are
// disjoint kinds held in separate tables; the account kind is whichever
// table holds the email, and it travels inside the session token.
type AuthServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (string, error)
	SignIn(ctx context.Context, req request_models.SignInRequest) (string, error)
}

type AuthService struct {
	creatorRepo repositories.CreatorRepository
	userRepo    repositories.UserRepository
	log         *zap.Logger
}

func NewAuthService(creatorRepo repositories.CreatorRepository, userRepo repositories.UserRepository, log *zap.Logger) AuthServiceInterface {
	return &AuthService{
		creatorRepo: creatorRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

func (a *AuthService) SignUp(ctx context.Context, req request_models.SignUpRequest) (string, error) {
	email := strings.ToLower(req.Email)

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	switch authz.AccountKind(req.Kind) {
	case authz.KindCreator:
		creator := &db_models.Creator{
			Name:         req.Name,
			Email:        email,
			Username:     req.Username,
			PasswordHash: hashedPassword,
		}
		if err := a.creatorRepo.Insert(ctx, creator); err != nil {
			if utils.IsUniqueViolation(err) {
				return "", utils.ErrEmailAlreadyExists
			}
			a.log.Error("insert creator", zap.Error(err))
			return "", utils.ErrDatabaseError
		}
		return utils.CreateToken(creator.ID, req.Kind, false)

	case authz.KindUser:
		user := &db_models.User{
			Name:         req.Name,
			Email:        email,
			Username:     req.Username,
			PasswordHash: hashedPassword,
		}
		if err := a.userRepo.Insert(ctx, user); err != nil {
			if utils.IsUniqueViolation(err) {
				return "", utils.ErrEmailAlreadyExists
			}
			a.log.Error("insert user", zap.Error(err))
			return "", utils.ErrDatabaseError
		}
		return utils.CreateToken(user.ID, req.Kind, false)
	}

	return "", utils.ErrInvalidCredentials
}

func (a *AuthService) SignIn(ctx context.Context, req request_models.SignInRequest) (string, error) {
	email := strings.ToLower(req.Email)

	switch authz.AccountKind(req.Kind) {
	case authz.KindCreator:
		creator, err := a.creatorRepo.FindByEmail(ctx, email)
		if err != nil {
			a.log.Error("find creator by email", zap.Error(err))
			return "", utils.ErrDatabaseError
		}
		if creator == nil {
			return "", utils.ErrInvalidCredentials
		}
		if err := utils.ComparePasswords(creator.PasswordHash, req.Password); err != nil {
			return "", utils.ErrInvalidCredentials
		}
		return utils.CreateToken(creator.ID, req.Kind, false)

	case authz.KindUser:
		user, err := a.userRepo.FindByEmail(ctx, email)
		if err != nil {
			a.log.Error("find user by email", zap.Error(err))
			return "", utils.ErrDatabaseError
		}
		if user == nil {
			return "", utils.ErrInvalidCredentials
		}
		if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
			return "", utils.ErrInvalidCredentials
		}
		return utils.CreateToken(user.ID, req.Kind, false)
	}

	return "", utils.ErrInvalidCredentials
}

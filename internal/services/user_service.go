package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/repositories"
	"inzider/pkg/utils"
)

type UserServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	List(ctx context.Context) ([]db_models.User, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*db_models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserService struct {
	userRepo repositories.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, log *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, log: log}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]db_models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("list users", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find user for update", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		user.Username = *req.Username
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.ErrDuplicateKey
		}
		s.log.Error("update user", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find user for delete", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.log.Error("delete user", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

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

type CreatorServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Creator, error)
	List(ctx context.Context) ([]db_models.Creator, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateCreatorRequest) (*db_models.Creator, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreatorService struct {
	creatorRepo repositories.CreatorRepository
	log         *zap.Logger
}

func NewCreatorService(creatorRepo repositories.CreatorRepository, log *zap.Logger) CreatorServiceInterface {
	return &CreatorService{creatorRepo: creatorRepo, log: log}
}

func (s *CreatorService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Creator, error) {
	creator, err := s.creatorRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find creator", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrAccountNotFound
	}
	return creator, nil
}

func (s *CreatorService) List(ctx context.Context) ([]db_models.Creator, error) {
	creators, err := s.creatorRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("list creators", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return creators, nil
}

func (s *CreatorService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateCreatorRequest) (*db_models.Creator, error) {
	creator, err := s.creatorRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find creator for update", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if creator == nil {
		return nil, utils.ErrAccountNotFound
	}

	if req.Name != nil {
		creator.Name = *req.Name
	}
	if req.Username != nil {
		creator.Username = *req.Username
	}
	if req.Description != nil {
		creator.Description = *req.Description
	}
	if req.ImageURL != nil {
		creator.ImageURL = *req.ImageURL
	}
	if req.BackgroundImageURL != nil {
		creator.BackgroundImageURL = *req.BackgroundImageURL
	}
	if req.Instagram != nil {
		creator.Instagram = *req.Instagram
	}
	if req.OnboardingComplete != nil {
		creator.OnboardingComplete = *req.OnboardingComplete
	}

	if err := s.creatorRepo.Update(ctx, creator); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, utils.ErrDuplicateKey
		}
		s.log.Error("update creator", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return creator, nil
}

func (s *CreatorService) Delete(ctx context.Context, id uuid.UUID) error {
	creator, err := s.creatorRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find creator for delete", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if creator == nil {
		return utils.ErrAccountNotFound
	}
	if err := s.creatorRepo.Delete(ctx, id); err != nil {
		s.log.Error("delete creator", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

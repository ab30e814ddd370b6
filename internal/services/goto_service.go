package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/repositories"
	"inzider/pkg/utils"
)

// DuplicateGoToTitleMessage is the 409 body a creator sees when they
// reuse one of their own GoTo titles.
const DuplicateGoToTitleMessage = "You already have a GoTo with this title. Please choose a different title."

type GoToServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateGoToRequest) (*db_models.GoTo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.GoTo, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.GoTo, error)
	ListLaunched(ctx context.Context) ([]db_models.GoTo, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateGoToRequest) (*db_models.GoTo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoToService struct {
	goToRepo repositories.GoToRepository
	log      *zap.Logger
}

func NewGoToService(goToRepo repositories.GoToRepository, log *zap.Logger) GoToServiceInterface {
	return &GoToService{goToRepo: goToRepo, log: log}
}

func (s *GoToService) Create(ctx context.Context, req request_models.CreateGoToRequest) (*db_models.GoTo, error) {
	creatorID, err := uuid.Parse(req.CreatorID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	goTo := &db_models.GoTo{
		CreatorID:   creatorID,
		Status:      db_models.StatusDraft,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PriceMinor:  req.PriceMinor,
		Currency:    req.Currency,
	}
	if len(req.Spots) > 0 {
		goTo.Spots = datatypes.JSON(req.Spots)
	}
	if len(req.Media) > 0 {
		goTo.Media = datatypes.JSON(req.Media)
	}

	if err := s.goToRepo.Insert(ctx, goTo); err != nil {
		// The (creator_id, title) unique index is the authority here;
		// no pre-check, so there is no check-then-act window.
		if utils.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", utils.ErrDuplicateKey, DuplicateGoToTitleMessage)
		}
		s.log.Error("insert goto", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return goTo, nil
}

func (s *GoToService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.GoTo, error) {
	goTo, err := s.goToRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find goto", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if goTo == nil {
		return nil, utils.ErrNotFound
	}
	return goTo, nil
}

func (s *GoToService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.GoTo, error) {
	goTos, err := s.goToRepo.FindByCreator(ctx, creatorID)
	if err != nil {
		s.log.Error("list gotos by creator", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return goTos, nil
}

func (s *GoToService) ListLaunched(ctx context.Context) ([]db_models.GoTo, error) {
	goTos, err := s.goToRepo.FindLaunched(ctx)
	if err != nil {
		s.log.Error("list launched gotos", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return goTos, nil
}

func (s *GoToService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateGoToRequest) (*db_models.GoTo, error) {
	goTo, err := s.goToRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find goto for update", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if goTo == nil {
		return nil, utils.ErrNotFound
	}

	if req.Title != nil {
		goTo.Title = *req.Title
	}
	if req.Description != nil {
		goTo.Description = *req.Description
	}
	if req.ImageURL != nil {
		goTo.ImageURL = *req.ImageURL
	}
	if req.PriceMinor != nil {
		goTo.PriceMinor = *req.PriceMinor
	}
	if req.Currency != nil {
		goTo.Currency = *req.Currency
	}
	if req.Status != nil {
		goTo.Status = db_models.ContentStatus(*req.Status)
	}
	if len(req.Spots) > 0 {
		goTo.Spots = datatypes.JSON(req.Spots)
	}
	if len(req.Media) > 0 {
		goTo.Media = datatypes.JSON(req.Media)
	}

	if err := s.goToRepo.Update(ctx, goTo); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", utils.ErrDuplicateKey, DuplicateGoToTitleMessage)
		}
		s.log.Error("update goto", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return goTo, nil
}

func (s *GoToService) Delete(ctx context.Context, id uuid.UUID) error {
	goTo, err := s.goToRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find goto for delete", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if goTo == nil {
		return utils.ErrNotFound
	}
	if err := s.goToRepo.Delete(ctx, id); err != nil {
		s.log.Error("delete goto", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

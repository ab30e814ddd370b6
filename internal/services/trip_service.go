package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/repositories"
	"inzider/pkg/utils"
)

type TripServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Trip, error)
	ListLaunched(ctx context.Context) ([]db_models.Trip, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateTripRequest) (*db_models.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TripService struct {
	tripRepo repositories.TripRepository
	log      *zap.Logger
}

func NewTripService(tripRepo repositories.TripRepository, log *zap.Logger) TripServiceInterface {
	return &TripService{tripRepo: tripRepo, log: log}
}

func (s *TripService) Create(ctx context.Context, req request_models.CreateTripRequest) (*db_models.Trip, error) {
	// CreatorID is not checked against the creators table; referential
	// integrity here is best effort, matching the storage layer.
	creatorID, err := uuid.Parse(req.CreatorID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	trip := &db_models.Trip{
		CreatorID:   creatorID,
		Status:      db_models.StatusDraft,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		PriceMinor:  req.PriceMinor,
		Currency:    req.Currency,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if len(req.Days) > 0 {
		trip.Days = datatypes.JSON(req.Days)
	}
	if len(req.Media) > 0 {
		trip.Media = datatypes.JSON(req.Media)
	}

	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		s.log.Error("insert trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrNotFound
	}
	return trip, nil
}

func (s *TripService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Trip, error) {
	trips, err := s.tripRepo.FindByCreator(ctx, creatorID)
	if err != nil {
		s.log.Error("list trips by creator", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *TripService) ListLaunched(ctx context.Context) ([]db_models.Trip, error) {
	trips, err := s.tripRepo.FindLaunched(ctx)
	if err != nil {
		s.log.Error("list launched trips", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}

func (s *TripService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateTripRequest) (*db_models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find trip for update", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrNotFound
	}

	if req.Title != nil {
		trip.Title = *req.Title
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.Location != nil {
		trip.Location = *req.Location
	}
	if req.ImageURL != nil {
		trip.ImageURL = *req.ImageURL
	}
	if req.PriceMinor != nil {
		trip.PriceMinor = *req.PriceMinor
	}
	if req.Currency != nil {
		trip.Currency = *req.Currency
	}
	if req.Status != nil {
		trip.Status = db_models.ContentStatus(*req.Status)
	}
	if req.StartDate != nil {
		trip.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = req.EndDate
	}
	if len(req.Days) > 0 {
		trip.Days = datatypes.JSON(req.Days)
	}
	if len(req.Media) > 0 {
		trip.Media = datatypes.JSON(req.Media)
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		s.log.Error("update trip", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find trip for delete", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrNotFound
	}
	if err := s.tripRepo.Delete(ctx, id); err != nil {
		s.log.Error("delete trip", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

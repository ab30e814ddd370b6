package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/repositories"
	"inzider/pkg/utils"
)

type DiscountServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateDiscountRequest) (*db_models.Discount, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Discount, error)
	GetByCode(ctx context.Context, code string) (*db_models.Discount, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Discount, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateDiscountRequest) (*db_models.Discount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DiscountService struct {
	discountRepo repositories.DiscountRepository
	log          *zap.Logger
}

func NewDiscountService(discountRepo repositories.DiscountRepository, log *zap.Logger) DiscountServiceInterface {
	return &DiscountService{discountRepo: discountRepo, log: log}
}

func (s *DiscountService) Create(ctx context.Context, req request_models.CreateDiscountRequest) (*db_models.Discount, error) {
	creatorID, err := uuid.Parse(req.CreatorID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	discount := &db_models.Discount{
		Code:           strings.ToUpper(req.Code),
		CreatorID:      creatorID,
		ContentType:    db_models.ContentType(req.ContentType),
		PercentOff:     req.PercentOff,
		AmountOffMinor: req.AmountOffMinor,
		Active:         true,
		ExpiresAt:      req.ExpiresAt,
	}
	if req.ContentID != nil {
		contentID, err := uuid.Parse(*req.ContentID)
		if err != nil {
			return nil, utils.ErrNotFound
		}
		discount.ContentID = &contentID
	}

	if err := s.discountRepo.Insert(ctx, discount); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: a discount with code %q already exists", utils.ErrDuplicateKey, discount.Code)
		}
		s.log.Error("insert discount", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return discount, nil
}

func (s *DiscountService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Discount, error) {
	discount, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find discount", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if discount == nil {
		return nil, utils.ErrNotFound
	}
	return discount, nil
}

func (s *DiscountService) GetByCode(ctx context.Context, code string) (*db_models.Discount, error) {
	discount, err := s.discountRepo.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		s.log.Error("find discount by code", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if discount == nil {
		return nil, utils.ErrNotFound
	}
	return discount, nil
}

func (s *DiscountService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Discount, error) {
	discounts, err := s.discountRepo.FindByCreator(ctx, creatorID)
	if err != nil {
		s.log.Error("list discounts", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return discounts, nil
}

func (s *DiscountService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateDiscountRequest) (*db_models.Discount, error) {
	discount, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find discount for update", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if discount == nil {
		return nil, utils.ErrNotFound
	}

	if req.Active != nil {
		discount.Active = *req.Active
	}
	if req.ExpiresAt != nil {
		discount.ExpiresAt = req.ExpiresAt
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		s.log.Error("update discount", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return discount, nil
}

func (s *DiscountService) Delete(ctx context.Context, id uuid.UUID) error {
	discount, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find discount for delete", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if discount == nil {
		return utils.ErrNotFound
	}
	if err := s.discountRepo.Delete(ctx, id); err != nil {
		s.log.Error("delete discount", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

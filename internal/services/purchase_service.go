package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/repositories"
	"inzider/pkg/utils"
)

// allowedTransitions keeps the purchase lifecycle monotonic: pending
// moves forward to completed or failed, and refunded is terminal,
// reachable only from completed.
var allowedTransitions = map[db_models.PurchaseStatus][]db_models.PurchaseStatus{
	db_models.PurchaseStatusPending:   {db_models.PurchaseStatusCompleted, db_models.PurchaseStatusFailed},
	db_models.PurchaseStatusCompleted: {db_models.PurchaseStatusRefunded},
	db_models.PurchaseStatusFailed:    {},
	db_models.PurchaseStatusRefunded:  {},
}

type PurchaseServiceInterface interface {
	Create(ctx context.Context, req request_models.CreatePurchaseRequest) (*db_models.Purchase, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Purchase, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Purchase, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.PurchaseStatus, providerTxnID string) (*db_models.Purchase, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	log          *zap.Logger
}

func NewPurchaseService(purchaseRepo repositories.PurchaseRepository, log *zap.Logger) PurchaseServiceInterface {
	return &PurchaseService{purchaseRepo: purchaseRepo, log: log}
}

func (s *PurchaseService) Create(ctx context.Context, req request_models.CreatePurchaseRequest) (*db_models.Purchase, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrNotFound
	}
	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	purchase := &db_models.Purchase{
		UserID:      userID,
		ContentID:   contentID,
		ContentType: db_models.ContentType(req.ContentType),
		AmountMinor: req.AmountMinor,
		Currency:    req.Currency,
		Status:      db_models.PurchaseStatusPending,
	}

	if err := s.purchaseRepo.Insert(ctx, purchase); err != nil {
		s.log.Error("insert purchase", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return purchase, nil
}

func (s *PurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find purchase", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if purchase == nil {
		return nil, utils.ErrNotFound
	}
	return purchase, nil
}

func (s *PurchaseService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Purchase, error) {
	purchases, err := s.purchaseRepo.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("list purchases", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return purchases, nil
}

func (s *PurchaseService) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.PurchaseStatus, providerTxnID string) (*db_models.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find purchase for status update", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if purchase == nil {
		return nil, utils.ErrNotFound
	}

	if !transitionAllowed(purchase.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", utils.ErrInvalidStatusTransition, purchase.Status, status)
	}

	now := utils.NowUnixSeconds()
	purchase.Status = status
	switch status {
	case db_models.PurchaseStatusCompleted:
		purchase.PaidAt = &now
	case db_models.PurchaseStatusRefunded:
		purchase.RefundedAt = &now
	}
	if providerTxnID != "" {
		purchase.ProviderTxnID = providerTxnID
	}

	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		s.log.Error("update purchase status", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return purchase, nil
}

func (s *PurchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find purchase for delete", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if purchase == nil {
		return utils.ErrNotFound
	}
	if err := s.purchaseRepo.Delete(ctx, id); err != nil {
		s.log.Error("delete purchase", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func transitionAllowed(from, to db_models.PurchaseStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

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

type RefundServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateRefundRequest) (*db_models.Refund, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Refund, error)
	ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]db_models.Refund, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.RefundStatus) (*db_models.Refund, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RefundService struct {
	refundRepo   repositories.RefundRepository
	purchaseRepo repositories.PurchaseRepository
	purchases    PurchaseServiceInterface
	log          *zap.Logger
}

func NewRefundService(
	refundRepo repositories.RefundRepository,
	purchaseRepo repositories.PurchaseRepository,
	purchases PurchaseServiceInterface,
	log *zap.Logger,
) RefundServiceInterface {
	return &RefundService{
		refundRepo:   refundRepo,
		purchaseRepo: purchaseRepo,
		purchases:    purchases,
		log:          log,
	}
}

func (s *RefundService) Create(ctx context.Context, req request_models.CreateRefundRequest) (*db_models.Refund, error) {
	purchaseID, err := uuid.Parse(req.PurchaseID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		s.log.Error("find purchase for refund", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if purchase == nil {
		return nil, utils.ErrNotFound
	}
	// Only a completed purchase can be walked back.
	if purchase.Status != db_models.PurchaseStatusCompleted {
		return nil, utils.ErrInvalidStatusTransition
	}

	amount := req.AmountMinor
	if amount == 0 {
		amount = purchase.AmountMinor
	}

	refund := &db_models.Refund{
		PurchaseID:  purchaseID,
		Status:      db_models.RefundStatusRequested,
		Reason:      req.Reason,
		AmountMinor: amount,
	}

	if err := s.refundRepo.Insert(ctx, refund); err != nil {
		s.log.Error("insert refund", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return refund, nil
}

func (s *RefundService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Refund, error) {
	refund, err := s.refundRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find refund", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if refund == nil {
		return nil, utils.ErrNotFound
	}
	return refund, nil
}

func (s *RefundService) ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]db_models.Refund, error) {
	refunds, err := s.refundRepo.FindByPurchase(ctx, purchaseID)
	if err != nil {
		s.log.Error("list refunds", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return refunds, nil
}

func (s *RefundService) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.RefundStatus) (*db_models.Refund, error) {
	refund, err := s.refundRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find refund for status update", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if refund == nil {
		return nil, utils.ErrNotFound
	}

	// A processed refund flips the purchase to its terminal state. The
	// purchase transition goes first: if it is rejected (already
	// refunded, never completed), the refund row is left untouched.
	if status == db_models.RefundStatusProcessed {
		if _, err := s.purchases.UpdateStatus(ctx, refund.PurchaseID, db_models.PurchaseStatusRefunded, ""); err != nil {
			s.log.Error("mark purchase refunded", zap.String("purchase_id", refund.PurchaseID.String()), zap.Error(err))
			return nil, err
		}
	}

	refund.Status = status
	if err := s.refundRepo.Update(ctx, refund); err != nil {
		s.log.Error("update refund", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	return refund, nil
}

func (s *RefundService) Delete(ctx context.Context, id uuid.UUID) error {
	refund, err := s.refundRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("find refund for delete", zap.Error(err))
		return utils.ErrDatabaseError
	}
	if refund == nil {
		return utils.ErrNotFound
	}
	if err := s.refundRepo.Delete(ctx, id); err != nil {
		s.log.Error("delete refund", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

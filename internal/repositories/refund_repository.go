package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inzider/internal/models/db_models"
)

type RefundRepository interface {
	Insert(ctx context.Context, refund *db_models.Refund) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Refund, error)
	FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]db_models.Refund, error)
	Update(ctx context.Context, refund *db_models.Refund) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type refundRepository struct {
	db *gorm.DB
}

func NewRefundRepository(db *gorm.DB) RefundRepository {
	return &refundRepository{db: db}
}

func (r *refundRepository) Insert(ctx context.Context, refund *db_models.Refund) error {
	return r.db.WithContext(ctx).Create(refund).Error
}

func (r *refundRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Refund, error) {
	var refund db_models.Refund
	err := r.db.WithContext(ctx).First(&refund, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refund, nil
}

func (r *refundRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]db_models.Refund, error) {
	var refunds []db_models.Refund
	if err := r.db.WithContext(ctx).Where("purchase_id = ?", purchaseID).Find(&refunds).Error; err != nil {
		return nil, err
	}
	return refunds, nil
}

func (r *refundRepository) Update(ctx context.Context, refund *db_models.Refund) error {
	return r.db.WithContext(ctx).Save(refund).Error
}

func (r *refundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Refund{}, "id = ?", id).Error
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inzider/internal/models/db_models"
)

type PurchaseRepository interface {
	Insert(ctx context.Context, purchase *db_models.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Purchase, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Purchase, error)
	// FindCompleted returns the completed purchase for (user, content,
	// type) or nil. This is the lookup the access check leans on.
	FindCompleted(ctx context.Context, userID, contentID uuid.UUID, contentType db_models.ContentType) (*db_models.Purchase, error)
	Update(ctx context.Context, purchase *db_models.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Insert(ctx context.Context, purchase *db_models.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Purchase, error) {
	var purchase db_models.Purchase
	err := r.db.WithContext(ctx).First(&purchase, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Purchase, error) {
	var purchases []db_models.Purchase
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) FindCompleted(ctx context.Context, userID, contentID uuid.UUID, contentType db_models.ContentType) (*db_models.Purchase, error) {
	var purchase db_models.Purchase
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ? AND content_type = ? AND status = ?",
			userID, contentID, contentType, db_models.PurchaseStatusCompleted).
		First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) Update(ctx context.Context, purchase *db_models.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Purchase{}, "id = ?", id).Error
}

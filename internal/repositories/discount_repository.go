package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inzider/internal/models/db_models"
)

type DiscountRepository interface {
	Insert(ctx context.Context, discount *db_models.Discount) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Discount, error)
	FindByCode(ctx context.Context, code string) (*db_models.Discount, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Discount, error)
	Update(ctx context.Context, discount *db_models.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Insert(ctx context.Context, discount *db_models.Discount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Discount, error) {
	var discount db_models.Discount
	err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (r *discountRepository) FindByCode(ctx context.Context, code string) (*db_models.Discount, error) {
	var discount db_models.Discount
	err := r.db.WithContext(ctx).First(&discount, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &discount, nil
}

func (r *discountRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Discount, error) {
	var discounts []db_models.Discount
	if err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

func (r *discountRepository) Update(ctx context.Context, discount *db_models.Discount) error {
	return r.db.WithContext(ctx).Save(discount).Error
}

func (r *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Discount{}, "id = ?", id).Error
}

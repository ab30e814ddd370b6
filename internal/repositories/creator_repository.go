package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inzider/internal/models/db_models"
)

type CreatorRepository interface {
	Insert(ctx context.Context, creator *db_models.Creator) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Creator, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Creator, error)
	FindAll(ctx context.Context) ([]db_models.Creator, error)
	Update(ctx context.Context, creator *db_models.Creator) error
	UpdateStripeAccount(ctx context.Context, id uuid.UUID, stripeAccountID string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type creatorRepository struct {
	db *gorm.DB
}

func NewCreatorRepository(db *gorm.DB) CreatorRepository {
	return &creatorRepository{db: db}
}

func (r *creatorRepository) Insert(ctx context.Context, creator *db_models.Creator) error {
	return r.db.WithContext(ctx).Create(creator).Error
}

func (r *creatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Creator, error) {
	var creator db_models.Creator
	err := r.db.WithContext(ctx).First(&creator, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) FindByEmail(ctx context.Context, email string) (*db_models.Creator, error) {
	var creator db_models.Creator
	err := r.db.WithContext(ctx).First(&creator, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &creator, nil
}

func (r *creatorRepository) FindAll(ctx context.Context) ([]db_models.Creator, error) {
	var creators []db_models.Creator
	if err := r.db.WithContext(ctx).Find(&creators).Error; err != nil {
		return nil, err
	}
	return creators, nil
}

func (r *creatorRepository) Update(ctx context.Context, creator *db_models.Creator) error {
	return r.db.WithContext(ctx).Save(creator).Error
}

func (r *creatorRepository) UpdateStripeAccount(ctx context.Context, id uuid.UUID, stripeAccountID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Creator{}).
		Where("id = ?", id).
		Update("stripe_account_id", stripeAccountID).Error
}

func (r *creatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Creator{}, "id = ?", id).Error
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inzider/internal/models/db_models"
)

type GoToRepository interface {
	Insert(ctx context.Context, goTo *db_models.GoTo) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.GoTo, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.GoTo, error)
	FindLaunched(ctx context.Context) ([]db_models.GoTo, error)
	Update(ctx context.Context, goTo *db_models.GoTo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type goToRepository struct {
	db *gorm.DB
}

func NewGoToRepository(db *gorm.DB) GoToRepository {
	return &goToRepository{db: db}
}

func (r *goToRepository) Insert(ctx context.Context, goTo *db_models.GoTo) error {
	return r.db.WithContext(ctx).Create(goTo).Error
}

func (r *goToRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.GoTo, error) {
	var goTo db_models.GoTo
	err := r.db.WithContext(ctx).First(&goTo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goTo, nil
}

func (r *goToRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.GoTo, error) {
	var goTos []db_models.GoTo
	if err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).Find(&goTos).Error; err != nil {
		return nil, err
	}
	return goTos, nil
}

func (r *goToRepository) FindLaunched(ctx context.Context) ([]db_models.GoTo, error) {
	var goTos []db_models.GoTo
	if err := r.db.WithContext(ctx).Where("status = ?", db_models.StatusLaunch).Find(&goTos).Error; err != nil {
		return nil, err
	}
	return goTos, nil
}

func (r *goToRepository) Update(ctx context.Context, goTo *db_models.GoTo) error {
	return r.db.WithContext(ctx).Save(goTo).Error
}

func (r *goToRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.GoTo{}, "id = ?", id).Error
}

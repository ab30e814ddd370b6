package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"inzider/internal/models/db_models"
)

type PackageAccessRepository interface {
	Insert(ctx context.Context, grant *db_models.PackageAccess) error
	// KeyExists is the collision check run before accepting a freshly
	// generated key.
	KeyExists(ctx context.Context, key string) (bool, error)
	// FindGrant matches on all three of (email, key, packageID). Email
	// is compared case-insensitively; no partial-match variant exists,
	// so a caller cannot learn which field was wrong.
	FindGrant(ctx context.Context, email, key string, packageID uuid.UUID) (*db_models.PackageAccess, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.PackageAccess, error)
	UpdateLastAccessed(ctx context.Context, id uuid.UUID, ts int64) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type packageAccessRepository struct {
	db *gorm.DB
}

func NewPackageAccessRepository(db *gorm.DB) PackageAccessRepository {
	return &packageAccessRepository{db: db}
}

func (r *packageAccessRepository) Insert(ctx context.Context, grant *db_models.PackageAccess) error {
	return r.db.WithContext(ctx).Create(grant).Error
}

func (r *packageAccessRepository) KeyExists(ctx context.Context, key string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PackageAccess{}).
		Where("access_key = ?", key).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *packageAccessRepository) FindGrant(ctx context.Context, email, key string, packageID uuid.UUID) (*db_models.PackageAccess, error) {
	var grant db_models.PackageAccess
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND access_key = ? AND package_id = ?", email, key, packageID).
		First(&grant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

func (r *packageAccessRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.PackageAccess, error) {
	var grants []db_models.PackageAccess
	if err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *packageAccessRepository) UpdateLastAccessed(ctx context.Context, id uuid.UUID, ts int64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.PackageAccess{}).
		Where("id = ?", id).
		Update("last_accessed_at", ts).Error
}

func (r *packageAccessRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.PackageAccess{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inzider/internal/models/db_models"
	"inzider/internal/repositories"
	"inzider/pkg/utils"
)

const (
	// accessKeyBytes yields a 32-hex-char key.
	accessKeyBytes = 16
	// keyGenMaxAttempts bounds the generate-then-collision-check loop.
	// Collisions are birthday-bound improbable; hitting the cap means
	// something is broken, not unlucky.
	keyGenMaxAttempts = 5

	defaultGrantTTL = 72 * time.Hour
)

type IssueGrantInput struct {
	Email       string
	PackageID   uuid.UUID
	PackageType db_models.ContentType
	CreatorID   uuid.UUID
	// TTL of zero applies the default; negative means no expiry.
	TTL       time.Duration
	SendEmail bool
}

type PackageAccessServiceInterface interface {
	Issue(ctx context.Context, in IssueGrantInput) (*db_models.PackageAccess, error)
	// Verify returns the grant iff (email, key, packageID) all match an
	// active, unexpired record. Every failure mode comes back as
	// utils.ErrAccessDenied so the caller cannot tell which field was
	// wrong. A successful verification stamps LastAccessedAt.
	Verify(ctx context.Context, email, key string, packageID uuid.UUID) (*db_models.PackageAccess, error)
	Deactivate(ctx context.Context, grantID uuid.UUID) error
}

type PackageAccessService struct {
	grantRepo repositories.PackageAccessRepository
	mail      IMailService
	log       *zap.Logger
	now       func() time.Time
}

func NewPackageAccessService(grantRepo repositories.PackageAccessRepository, mail IMailService, log *zap.Logger) PackageAccessServiceInterface {
	return &PackageAccessService{
		grantRepo: grantRepo,
		mail:      mail,
		log:       log,
		now:       time.Now,
	}
}

func (s *PackageAccessService) Issue(ctx context.Context, in IssueGrantInput) (*db_models.PackageAccess, error) {
	key, err := s.uniqueKey(ctx)
	if err != nil {
		return nil, err
	}

	grant := &db_models.PackageAccess{
		Email:       strings.ToLower(in.Email),
		AccessKey:   key,
		PackageID:   in.PackageID,
		PackageType: in.PackageType,
		CreatorID:   in.CreatorID,
		IsActive:    true,
	}

	ttl := in.TTL
	if ttl == 0 {
		ttl = defaultGrantTTL
	}
	if ttl > 0 {
		expiresAt := s.now().Add(ttl).Unix()
		grant.ExpiresAt = &expiresAt
	}

	if err := s.grantRepo.Insert(ctx, grant); err != nil {
		if utils.IsUniqueViolation(err) {
			// Lost the race between collision check and insert; the
			// unique index is the authority.
			return nil, utils.ErrKeyGenerationExhausted
		}
		s.log.Error("insert package access grant", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	if in.SendEmail && s.mail != nil {
		if err := s.mail.SendAccessKey(grant.Email, grant.AccessKey, in.PackageID.String()); err != nil {
			// The grant exists either way; delivery is best effort.
			s.log.Warn("send access key email", zap.String("email", grant.Email), zap.Error(err))
		}
	}

	return grant, nil
}

func (s *PackageAccessService) uniqueKey(ctx context.Context) (string, error) {
	for attempt := 0; attempt < keyGenMaxAttempts; attempt++ {
		key, err := utils.GenerateAccessKey(accessKeyBytes)
		if err != nil {
			return "", utils.ErrDatabaseError
		}
		exists, err := s.grantRepo.KeyExists(ctx, key)
		if err != nil {
			s.log.Error("access key collision check", zap.Error(err))
			return "", utils.ErrDatabaseError
		}
		if !exists {
			return key, nil
		}
	}
	return "", utils.ErrKeyGenerationExhausted
}

func (s *PackageAccessService) Verify(ctx context.Context, email, key string, packageID uuid.UUID) (*db_models.PackageAccess, error) {
	grant, err := s.grantRepo.FindGrant(ctx, strings.ToLower(email), key, packageID)
	if err != nil {
		// Fail closed, same shape as a miss.
		s.log.Error("verify grant lookup", zap.Error(err))
		return nil, utils.ErrAccessDenied
	}
	if grant == nil || !grant.IsActive {
		return nil, utils.ErrAccessDenied
	}
	if grant.ExpiresAt != nil && s.now().Unix() >= *grant.ExpiresAt {
		return nil, utils.ErrAccessDenied
	}

	ts := s.now().Unix()
	if err := s.grantRepo.UpdateLastAccessed(ctx, grant.ID, ts); err != nil {
		s.log.Warn("update last accessed", zap.String("grant_id", grant.ID.String()), zap.Error(err))
	} else {
		grant.LastAccessedAt = &ts
	}

	return grant, nil
}

func (s *PackageAccessService) Deactivate(ctx context.Context, grantID uuid.UUID) error {
	if err := s.grantRepo.Deactivate(ctx, grantID); err != nil {
		s.log.Error("deactivate grant", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

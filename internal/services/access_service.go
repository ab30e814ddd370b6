package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inzider/internal/models/db_models"
	"inzider/internal/repositories"
)

// AccessReason says why a may-view decision came out the way it did.
type AccessReason string

const (
	AccessReasonPurchase AccessReason = "purchase"
	AccessReasonOwner    AccessReason = "owner"
	AccessReasonDenied   AccessReason = "denied"
)

type AccessDecision struct {
	Allowed bool
	Reason  AccessReason
}

// AccessServiceInterface is the session-bound may-view policy: a viewer
// may see gated content if they hold a completed purchase for it, or if
// they own it. The caller is responsible for having authenticated the
// viewer before asking.
type AccessServiceInterface interface {
	MayView(ctx context.Context, viewerID, contentID uuid.UUID, contentType db_models.ContentType) AccessDecision
	// OwnerOf resolves the creator that owns a piece of content, or nil
	// when the content does not exist.
	OwnerOf(ctx context.Context, contentID uuid.UUID, contentType db_models.ContentType) (*uuid.UUID, error)
}

type AccessService struct {
	purchaseRepo repositories.PurchaseRepository
	tripRepo     repositories.TripRepository
	goToRepo     repositories.GoToRepository
	log          *zap.Logger
}

func NewAccessService(
	purchaseRepo repositories.PurchaseRepository,
	tripRepo repositories.TripRepository,
	goToRepo repositories.GoToRepository,
	log *zap.Logger,
) AccessServiceInterface {
	return &AccessService{
		purchaseRepo: purchaseRepo,
		tripRepo:     tripRepo,
		goToRepo:     goToRepo,
		log:          log,
	}
}

// MayView is read-only and fails closed: any lookup error is logged and
// treated as a denial.
func (s *AccessService) MayView(ctx context.Context, viewerID, contentID uuid.UUID, contentType db_models.ContentType) AccessDecision {
	purchase, err := s.purchaseRepo.FindCompleted(ctx, viewerID, contentID, contentType)
	if err != nil {
		s.log.Error("access check: purchase lookup failed",
			zap.String("viewer_id", viewerID.String()),
			zap.String("content_id", contentID.String()),
			zap.Error(err))
		return AccessDecision{Allowed: false, Reason: AccessReasonDenied}
	}
	if purchase != nil {
		return AccessDecision{Allowed: true, Reason: AccessReasonPurchase}
	}

	// Ownership grants access regardless of content status, so a
	// creator can always see their own drafts.
	ownerID, err := s.OwnerOf(ctx, contentID, contentType)
	if err != nil {
		s.log.Error("access check: content lookup failed",
			zap.String("content_id", contentID.String()),
			zap.String("content_type", string(contentType)),
			zap.Error(err))
		return AccessDecision{Allowed: false, Reason: AccessReasonDenied}
	}
	if ownerID != nil && *ownerID == viewerID {
		return AccessDecision{Allowed: true, Reason: AccessReasonOwner}
	}

	return AccessDecision{Allowed: false, Reason: AccessReasonDenied}
}

func (s *AccessService) OwnerOf(ctx context.Context, contentID uuid.UUID, contentType db_models.ContentType) (*uuid.UUID, error) {
	switch contentType {
	case db_models.ContentTypeTrip:
		trip, err := s.tripRepo.FindByID(ctx, contentID)
		if err != nil || trip == nil {
			return nil, err
		}
		return &trip.CreatorID, nil
	case db_models.ContentTypeGoTo:
		goTo, err := s.goToRepo.FindByID(ctx, contentID)
		if err != nil || goTo == nil {
			return nil, err
		}
		return &goTo.CreatorID, nil
	}
	return nil, nil
}

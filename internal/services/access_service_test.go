package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"inzider/internal/models/db_models"
)

func newAccessService(purchases *MockPurchaseRepository, trips *MockTripRepository, goTos *MockGoToRepository) AccessServiceInterface {
	return NewAccessService(purchases, trips, goTos, zap.NewNop())
}

func TestAccessService_MayView_CompletedPurchaseAllows(t *testing.T) {
	viewerID := uuid.New()
	contentID := uuid.New()

	purchases := &MockPurchaseRepository{}
	trips := &MockTripRepository{}
	goTos := &MockGoToRepository{}

	// A completed purchase is enough on its own; ownership is never
	// consulted.
	purchases.On("FindCompleted", mock.Anything, viewerID, contentID, db_models.ContentTypeTrip).
		Return(&db_models.Purchase{Status: db_models.PurchaseStatusCompleted}, nil)

	svc := newAccessService(purchases, trips, goTos)
	decision := svc.MayView(context.Background(), viewerID, contentID, db_models.ContentTypeTrip)

	assert.True(t, decision.Allowed)
	assert.Equal(t, AccessReasonPurchase, decision.Reason)
	trips.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	purchases.AssertExpectations(t)
}

func TestAccessService_MayView_OwnerAllowedWithoutPurchase(t *testing.T) {
	creatorID := uuid.New()
	contentID := uuid.New()

	tests := []struct {
		name   string
		status db_models.ContentStatus
	}{
		{name: "launched content", status: db_models.StatusLaunch},
		// Ownership ignores content status, so drafts are visible to
		// their creator.
		{name: "draft content", status: db_models.StatusDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchases := &MockPurchaseRepository{}
			trips := &MockTripRepository{}
			goTos := &MockGoToRepository{}

			purchases.On("FindCompleted", mock.Anything, creatorID, contentID, db_models.ContentTypeGoTo).
				Return(nil, nil)
			goTos.On("FindByID", mock.Anything, contentID).
				Return(&db_models.GoTo{CreatorID: creatorID, Status: tt.status}, nil)

			svc := newAccessService(purchases, trips, goTos)
			decision := svc.MayView(context.Background(), creatorID, contentID, db_models.ContentTypeGoTo)

			assert.True(t, decision.Allowed)
			assert.Equal(t, AccessReasonOwner, decision.Reason)
		})
	}
}

func TestAccessService_MayView_DeniedWithoutPurchaseOrOwnership(t *testing.T) {
	viewerID := uuid.New()
	contentID := uuid.New()

	purchases := &MockPurchaseRepository{}
	trips := &MockTripRepository{}
	goTos := &MockGoToRepository{}

	purchases.On("FindCompleted", mock.Anything, viewerID, contentID, db_models.ContentTypeTrip).
		Return(nil, nil)
	trips.On("FindByID", mock.Anything, contentID).
		Return(&db_models.Trip{CreatorID: uuid.New()}, nil)

	svc := newAccessService(purchases, trips, goTos)
	decision := svc.MayView(context.Background(), viewerID, contentID, db_models.ContentTypeTrip)

	assert.False(t, decision.Allowed)
	assert.Equal(t, AccessReasonDenied, decision.Reason)
}

func TestAccessService_MayView_MissingContentDenied(t *testing.T) {
	viewerID := uuid.New()
	contentID := uuid.New()

	purchases := &MockPurchaseRepository{}
	trips := &MockTripRepository{}
	goTos := &MockGoToRepository{}

	purchases.On("FindCompleted", mock.Anything, viewerID, contentID, db_models.ContentTypeGoTo).
		Return(nil, nil)
	goTos.On("FindByID", mock.Anything, contentID).Return(nil, nil)

	svc := newAccessService(purchases, trips, goTos)
	decision := svc.MayView(context.Background(), viewerID, contentID, db_models.ContentTypeGoTo)

	assert.False(t, decision.Allowed)
}

func TestAccessService_MayView_LookupErrorFailsClosed(t *testing.T) {
	viewerID := uuid.New()
	contentID := uuid.New()

	tests := []struct {
		name  string
		setup func(*MockPurchaseRepository, *MockTripRepository)
	}{
		{
			name: "purchase lookup error",
			setup: func(purchases *MockPurchaseRepository, trips *MockTripRepository) {
				purchases.On("FindCompleted", mock.Anything, viewerID, contentID, db_models.ContentTypeTrip).
					Return(nil, errors.New("connection reset"))
			},
		},
		{
			name: "content lookup error",
			setup: func(purchases *MockPurchaseRepository, trips *MockTripRepository) {
				purchases.On("FindCompleted", mock.Anything, viewerID, contentID, db_models.ContentTypeTrip).
					Return(nil, nil)
				trips.On("FindByID", mock.Anything, contentID).
					Return(nil, errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchases := &MockPurchaseRepository{}
			trips := &MockTripRepository{}
			goTos := &MockGoToRepository{}
			tt.setup(purchases, trips)

			svc := newAccessService(purchases, trips, goTos)
			decision := svc.MayView(context.Background(), viewerID, contentID, db_models.ContentTypeTrip)

			assert.False(t, decision.Allowed)
			assert.Equal(t, AccessReasonDenied, decision.Reason)
		})
	}
}

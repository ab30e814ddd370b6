package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/pkg/utils"
)

func TestPurchaseService_Create_StartsPending(t *testing.T) {
	purchases := &MockPurchaseRepository{}
	purchases.On("Insert", mock.Anything, mock.MatchedBy(func(p *db_models.Purchase) bool {
		return p.Status == db_models.PurchaseStatusPending
	})).Return(nil)

	svc := NewPurchaseService(purchases, zap.NewNop())
	purchase, err := svc.Create(context.Background(), request_models.CreatePurchaseRequest{
		UserID:      uuid.New().String(),
		ContentID:   uuid.New().String(),
		ContentType: string(db_models.ContentTypeTrip),
		AmountMinor: 4900,
		Currency:    "usd",
	})

	assert.NoError(t, err)
	assert.Equal(t, db_models.PurchaseStatusPending, purchase.Status)
	assert.Nil(t, purchase.PaidAt)
	purchases.AssertExpectations(t)
}

func TestPurchaseService_UpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    db_models.PurchaseStatus
		to      db_models.PurchaseStatus
		allowed bool
	}{
		{name: "pending to completed", from: db_models.PurchaseStatusPending, to: db_models.PurchaseStatusCompleted, allowed: true},
		{name: "pending to failed", from: db_models.PurchaseStatusPending, to: db_models.PurchaseStatusFailed, allowed: true},
		{name: "completed to refunded", from: db_models.PurchaseStatusCompleted, to: db_models.PurchaseStatusRefunded, allowed: true},
		{name: "pending to refunded skips completed", from: db_models.PurchaseStatusPending, to: db_models.PurchaseStatusRefunded, allowed: false},
		{name: "completed back to pending", from: db_models.PurchaseStatusCompleted, to: db_models.PurchaseStatusPending, allowed: false},
		{name: "failed is terminal", from: db_models.PurchaseStatusFailed, to: db_models.PurchaseStatusCompleted, allowed: false},
		{name: "refunded is terminal", from: db_models.PurchaseStatusRefunded, to: db_models.PurchaseStatusCompleted, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()

			purchases := &MockPurchaseRepository{}
			purchases.On("FindByID", mock.Anything, id).
				Return(&db_models.Purchase{BaseModel: db_models.BaseModel{ID: id}, Status: tt.from}, nil)
			if tt.allowed {
				purchases.On("Update", mock.Anything, mock.Anything).Return(nil)
			}

			svc := NewPurchaseService(purchases, zap.NewNop())
			purchase, err := svc.UpdateStatus(context.Background(), id, tt.to, "")

			if tt.allowed {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, purchase.Status)
			} else {
				assert.ErrorIs(t, err, utils.ErrInvalidStatusTransition)
				purchases.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPurchaseService_UpdateStatus_StampsTimestamps(t *testing.T) {
	id := uuid.New()

	purchases := &MockPurchaseRepository{}
	purchases.On("FindByID", mock.Anything, id).
		Return(&db_models.Purchase{BaseModel: db_models.BaseModel{ID: id}, Status: db_models.PurchaseStatusPending}, nil)
	purchases.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewPurchaseService(purchases, zap.NewNop())
	purchase, err := svc.UpdateStatus(context.Background(), id, db_models.PurchaseStatusCompleted, "pi_12345")

	assert.NoError(t, err)
	assert.NotNil(t, purchase.PaidAt)
	assert.Equal(t, "pi_12345", purchase.ProviderTxnID)
}

func TestPurchaseService_UpdateStatus_NotFound(t *testing.T) {
	id := uuid.New()

	purchases := &MockPurchaseRepository{}
	purchases.On("FindByID", mock.Anything, id).Return(nil, nil)

	svc := NewPurchaseService(purchases, zap.NewNop())
	_, err := svc.UpdateStatus(context.Background(), id, db_models.PurchaseStatusCompleted, "")

	assert.ErrorIs(t, err, utils.ErrNotFound)
}

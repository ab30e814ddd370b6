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

type MockRefundRepository struct {
	mock.Mock
}

func (m *MockRefundRepository) Insert(ctx context.Context, refund *db_models.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockRefundRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Refund, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*db_models.Refund), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefundRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]db_models.Refund, error) {
	args := m.Called(ctx, purchaseID)
	if r := args.Get(0); r != nil {
		return r.([]db_models.Refund), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefundRepository) Update(ctx context.Context, refund *db_models.Refund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockRefundRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRefundService_Create_RequiresCompletedPurchase(t *testing.T) {
	purchaseID := uuid.New()

	tests := []struct {
		name    string
		status  db_models.PurchaseStatus
		wantErr error
	}{
		{name: "completed purchase accepted", status: db_models.PurchaseStatusCompleted},
		{name: "pending purchase rejected", status: db_models.PurchaseStatusPending, wantErr: utils.ErrInvalidStatusTransition},
		{name: "failed purchase rejected", status: db_models.PurchaseStatusFailed, wantErr: utils.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refunds := &MockRefundRepository{}
			purchaseRepo := &MockPurchaseRepository{}

			purchaseRepo.On("FindByID", mock.Anything, purchaseID).
				Return(&db_models.Purchase{
					BaseModel:   db_models.BaseModel{ID: purchaseID},
					Status:      tt.status,
					AmountMinor: 4900,
				}, nil)
			if tt.wantErr == nil {
				refunds.On("Insert", mock.Anything, mock.MatchedBy(func(r *db_models.Refund) bool {
					// Zero requested amount defaults to the full purchase.
					return r.Status == db_models.RefundStatusRequested && r.AmountMinor == 4900
				})).Return(nil)
			}

			svc := NewRefundService(refunds, purchaseRepo, NewPurchaseService(purchaseRepo, zap.NewNop()), zap.NewNop())
			refund, err := svc.Create(context.Background(), request_models.CreateRefundRequest{
				PurchaseID: purchaseID.String(),
				Reason:     "changed my mind",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				refunds.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, db_models.RefundStatusRequested, refund.Status)
			}
		})
	}
}

func TestRefundService_UpdateStatus_ProcessedRefundsThePurchase(t *testing.T) {
	refundID := uuid.New()
	purchaseID := uuid.New()

	refunds := &MockRefundRepository{}
	refunds.On("FindByID", mock.Anything, refundID).
		Return(&db_models.Refund{
			BaseModel:  db_models.BaseModel{ID: refundID},
			PurchaseID: purchaseID,
			Status:     db_models.RefundStatusApproved,
		}, nil)
	refunds.On("Update", mock.Anything, mock.Anything).Return(nil)

	purchaseRepo := &MockPurchaseRepository{}
	purchaseRepo.On("FindByID", mock.Anything, purchaseID).
		Return(&db_models.Purchase{
			BaseModel: db_models.BaseModel{ID: purchaseID},
			Status:    db_models.PurchaseStatusCompleted,
		}, nil)
	purchaseRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *db_models.Purchase) bool {
		return p.Status == db_models.PurchaseStatusRefunded && p.RefundedAt != nil
	})).Return(nil)

	svc := NewRefundService(refunds, purchaseRepo, NewPurchaseService(purchaseRepo, zap.NewNop()), zap.NewNop())
	refund, err := svc.UpdateStatus(context.Background(), refundID, db_models.RefundStatusProcessed)

	assert.NoError(t, err)
	assert.Equal(t, db_models.RefundStatusProcessed, refund.Status)
	purchaseRepo.AssertExpectations(t)
}

func TestRefundService_UpdateStatus_AlreadyRefundedPurchaseStopsProcessing(t *testing.T) {
	refundID := uuid.New()
	purchaseID := uuid.New()

	refunds := &MockRefundRepository{}
	refunds.On("FindByID", mock.Anything, refundID).
		Return(&db_models.Refund{
			BaseModel:  db_models.BaseModel{ID: refundID},
			PurchaseID: purchaseID,
			Status:     db_models.RefundStatusApproved,
		}, nil)

	purchaseRepo := &MockPurchaseRepository{}
	purchaseRepo.On("FindByID", mock.Anything, purchaseID).
		Return(&db_models.Purchase{
			BaseModel: db_models.BaseModel{ID: purchaseID},
			Status:    db_models.PurchaseStatusRefunded,
		}, nil)

	svc := NewRefundService(refunds, purchaseRepo, NewPurchaseService(purchaseRepo, zap.NewNop()), zap.NewNop())
	refund, err := svc.UpdateStatus(context.Background(), refundID, db_models.RefundStatusProcessed)

	assert.ErrorIs(t, err, utils.ErrInvalidStatusTransition)
	assert.Nil(t, refund)
	// The refund row must not be stamped processed when the purchase
	// cannot be walked back a second time.
	refunds.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRefundService_UpdateStatus_RejectionLeavesPurchaseAlone(t *testing.T) {
	refundID := uuid.New()

	refunds := &MockRefundRepository{}
	refunds.On("FindByID", mock.Anything, refundID).
		Return(&db_models.Refund{
			BaseModel: db_models.BaseModel{ID: refundID},
			Status:    db_models.RefundStatusRequested,
		}, nil)
	refunds.On("Update", mock.Anything, mock.Anything).Return(nil)

	purchaseRepo := &MockPurchaseRepository{}

	svc := NewRefundService(refunds, purchaseRepo, NewPurchaseService(purchaseRepo, zap.NewNop()), zap.NewNop())
	refund, err := svc.UpdateStatus(context.Background(), refundID, db_models.RefundStatusRejected)

	assert.NoError(t, err)
	assert.Equal(t, db_models.RefundStatusRejected, refund.Status)
	purchaseRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

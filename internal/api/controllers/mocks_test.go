package controllers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inzider/internal/models/db_models"
	"inzider/internal/models/request_models"
	"inzider/internal/services"
)

type MockGoToService struct {
	mock.Mock
}

func (m *MockGoToService) Create(ctx context.Context, req request_models.CreateGoToRequest) (*db_models.GoTo, error) {
	args := m.Called(ctx, req)
	if g := args.Get(0); g != nil {
		return g.(*db_models.GoTo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoToService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.GoTo, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*db_models.GoTo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoToService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.GoTo, error) {
	args := m.Called(ctx, creatorID)
	if g := args.Get(0); g != nil {
		return g.([]db_models.GoTo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoToService) ListLaunched(ctx context.Context) ([]db_models.GoTo, error) {
	args := m.Called(ctx)
	if g := args.Get(0); g != nil {
		return g.([]db_models.GoTo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoToService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateGoToRequest) (*db_models.GoTo, error) {
	args := m.Called(ctx, id, req)
	if g := args.Get(0); g != nil {
		return g.(*db_models.GoTo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoToService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) MayView(ctx context.Context, viewerID, contentID uuid.UUID, contentType db_models.ContentType) services.AccessDecision {
	args := m.Called(ctx, viewerID, contentID, contentType)
	return args.Get(0).(services.AccessDecision)
}

func (m *MockAccessService) OwnerOf(ctx context.Context, contentID uuid.UUID, contentType db_models.ContentType) (*uuid.UUID, error) {
	args := m.Called(ctx, contentID, contentType)
	if o := args.Get(0); o != nil {
		return o.(*uuid.UUID), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockPackageAccessService struct {
	mock.Mock
}

func (m *MockPackageAccessService) Issue(ctx context.Context, in services.IssueGrantInput) (*db_models.PackageAccess, error) {
	args := m.Called(ctx, in)
	if g := args.Get(0); g != nil {
		return g.(*db_models.PackageAccess), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPackageAccessService) Verify(ctx context.Context, email, key string, packageID uuid.UUID) (*db_models.PackageAccess, error) {
	args := m.Called(ctx, email, key, packageID)
	if g := args.Get(0); g != nil {
		return g.(*db_models.PackageAccess), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPackageAccessService) Deactivate(ctx context.Context, grantID uuid.UUID) error {
	args := m.Called(ctx, grantID)
	return args.Error(0)
}

type MockPurchaseService struct {
	mock.Mock
}

func (m *MockPurchaseService) Create(ctx context.Context, req request_models.CreatePurchaseRequest) (*db_models.Purchase, error) {
	args := m.Called(ctx, req)
	if p := args.Get(0); p != nil {
		return p.(*db_models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Purchase, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*db_models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Purchase, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]db_models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseService) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.PurchaseStatus, providerTxnID string) (*db_models.Purchase, error) {
	args := m.Called(ctx, id, status, providerTxnID)
	if p := args.Get(0); p != nil {
		return p.(*db_models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

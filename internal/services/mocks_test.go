package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"inzider/internal/models/db_models"
)

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Insert(ctx context.Context, purchase *db_models.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Purchase, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*db_models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Purchase, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]db_models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseRepository) FindCompleted(ctx context.Context, userID, contentID uuid.UUID, contentType db_models.ContentType) (*db_models.Purchase, error) {
	args := m.Called(ctx, userID, contentID, contentType)
	if p := args.Get(0); p != nil {
		return p.(*db_models.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, purchase *db_models.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trip, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*db_models.Trip), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.Trip, error) {
	args := m.Called(ctx, creatorID)
	if t := args.Get(0); t != nil {
		return t.([]db_models.Trip), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripRepository) FindLaunched(ctx context.Context) ([]db_models.Trip, error) {
	args := m.Called(ctx)
	if t := args.Get(0); t != nil {
		return t.([]db_models.Trip), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGoToRepository struct {
	mock.Mock
}

func (m *MockGoToRepository) Insert(ctx context.Context, goTo *db_models.GoTo) error {
	args := m.Called(ctx, goTo)
	return args.Error(0)
}

func (m *MockGoToRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.GoTo, error) {
	args := m.Called(ctx, id)
	if g := args.Get(0); g != nil {
		return g.(*db_models.GoTo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoToRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.GoTo, error) {
	args := m.Called(ctx, creatorID)
	if g := args.Get(0); g != nil {
		return g.([]db_models.GoTo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoToRepository) FindLaunched(ctx context.Context) ([]db_models.GoTo, error) {
	args := m.Called(ctx)
	if g := args.Get(0); g != nil {
		return g.([]db_models.GoTo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockGoToRepository) Update(ctx context.Context, goTo *db_models.GoTo) error {
	args := m.Called(ctx, goTo)
	return args.Error(0)
}

func (m *MockGoToRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPackageAccessRepository struct {
	mock.Mock
}

func (m *MockPackageAccessRepository) Insert(ctx context.Context, grant *db_models.PackageAccess) error {
	args := m.Called(ctx, grant)
	return args.Error(0)
}

func (m *MockPackageAccessRepository) KeyExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockPackageAccessRepository) FindGrant(ctx context.Context, email, key string, packageID uuid.UUID) (*db_models.PackageAccess, error) {
	args := m.Called(ctx, email, key, packageID)
	if g := args.Get(0); g != nil {
		return g.(*db_models.PackageAccess), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPackageAccessRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]db_models.PackageAccess, error) {
	args := m.Called(ctx, creatorID)
	if g := args.Get(0); g != nil {
		return g.([]db_models.PackageAccess), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPackageAccessRepository) UpdateLastAccessed(ctx context.Context, id uuid.UUID, ts int64) error {
	args := m.Called(ctx, id, ts)
	return args.Error(0)
}

func (m *MockPackageAccessRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCreatorRepository struct {
	mock.Mock
}

func (m *MockCreatorRepository) Insert(ctx context.Context, creator *db_models.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockCreatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Creator, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*db_models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorRepository) FindByEmail(ctx context.Context, email string) (*db_models.Creator, error) {
	args := m.Called(ctx, email)
	if c := args.Get(0); c != nil {
		return c.(*db_models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorRepository) FindAll(ctx context.Context) ([]db_models.Creator, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]db_models.Creator), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCreatorRepository) Update(ctx context.Context, creator *db_models.Creator) error {
	args := m.Called(ctx, creator)
	return args.Error(0)
}

func (m *MockCreatorRepository) UpdateStripeAccount(ctx context.Context, id uuid.UUID, stripeAccountID string) error {
	args := m.Called(ctx, id, stripeAccountID)
	return args.Error(0)
}

func (m *MockCreatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*db_models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*db_models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]db_models.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]db_models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMailService struct {
	mock.Mock
}

func (m *MockMailService) SendAccessKey(to, accessKey, packageID string) error {
	args := m.Called(to, accessKey, packageID)
	return args.Error(0)
}

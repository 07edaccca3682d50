package identity

import (
	"context"
	"testing"

	"github.com/craftkart/backend/internal/domain/cart"
	"github.com/craftkart/backend/internal/domain/identity"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Mock repositories
// ============================================================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*cart.CartLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cart.CartLine), args.Error(1)
}

func (m *MockCartRepository) FindByIDForUser(ctx context.Context, userID, lineID uuid.UUID) (*cart.CartLine, error) {
	args := m.Called(ctx, userID, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartLine), args.Error(1)
}

func (m *MockCartRepository) FindLine(ctx context.Context, userID, productID uuid.UUID, selectedSize string) (*cart.CartLine, error) {
	args := m.Called(ctx, userID, productID, selectedSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartLine), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, line *cart.CartLine) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockCartRepository) ApplyMerge(ctx context.Context, plan *cart.MergePlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func newTestAuthService() (*AuthService, *MockUserRepository, *MockCartRepository) {
	userRepo := new(MockUserRepository)
	cartRepo := new(MockCartRepository)
	return NewAuthService(userRepo, cartRepo), userRepo, cartRepo
}

func cartLine(t *testing.T, userID, productID uuid.UUID, size string, qty int) *cart.CartLine {
	t.Helper()
	line, err := cart.NewCartLine(userID, productID, size)
	require.NoError(t, err)
	require.NoError(t, line.ChangeQuantity(qty))
	return line
}

// ============================================================
// Tests
// ============================================================

func TestAuthService_StartAnonymousSession(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	resp, err := svc.StartAnonymousSession(context.Background())
	require.NoError(t, err)

	assert.True(t, resp.IsAnonymous)
	assert.Equal(t, "user", resp.Role)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, shared.ErrNotFound)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "asha@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", resp.Email)
	assert.False(t, resp.IsAnonymous)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	existing, err := identity.NewUser("asha@example.com", "s3cretpass", "")
	require.NoError(t, err)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(existing, nil)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email:    "asha@example.com",
		Password: "s3cretpass",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_MergesAnonymousCart(t *testing.T) {
	svc, userRepo, cartRepo := newTestAuthService()
	anonID := uuid.New()
	productA := uuid.New()

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(nil, shared.ErrNotFound)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)
	cartRepo.On("FindByUser", mock.Anything, anonID).
		Return([]*cart.CartLine{cartLine(t, anonID, productA, "", 2)}, nil)
	cartRepo.On("FindByUser", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return([]*cart.CartLine{}, nil)
	cartRepo.On("ApplyMerge", mock.Anything, mock.AnythingOfType("*cart.MergePlan")).Return(nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:           "asha@example.com",
		Password:        "s3cretpass",
		AnonymousUserID: &anonID,
	})
	require.NoError(t, err)
	cartRepo.AssertCalled(t, "ApplyMerge", mock.Anything, mock.AnythingOfType("*cart.MergePlan"))
}

func TestAuthService_Login(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	user, err := identity.NewUser("asha@example.com", "s3cretpass", "Asha")
	require.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.ID)
	assert.NotNil(t, resp.LastLoginAt)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	user, err := identity.NewUser("asha@example.com", "s3cretpass", "")
	require.NoError(t, err)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "asha@example.com",
		Password: "wrongpass",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo, _ := newTestAuthService()
	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code, "unknown email must not be distinguishable from a wrong password")
}

func TestAuthService_MergeCarts(t *testing.T) {
	svc, _, cartRepo := newTestAuthService()
	anonID := uuid.New()
	permID := uuid.New()
	productA := uuid.New()
	productB := uuid.New()

	anonLines := []*cart.CartLine{
		cartLine(t, anonID, productA, "", 2),
		cartLine(t, anonID, productB, "M", 1),
	}
	permLines := []*cart.CartLine{
		cartLine(t, permID, productA, "", 1),
	}

	cartRepo.On("FindByUser", mock.Anything, anonID).Return(anonLines, nil)
	cartRepo.On("FindByUser", mock.Anything, permID).Return(permLines, nil)
	cartRepo.On("ApplyMerge", mock.Anything, mock.MatchedBy(func(plan *cart.MergePlan) bool {
		return len(plan.Updates) == 1 && plan.Updates[0].Quantity == 3 &&
			len(plan.Inserts) == 1 && plan.Inserts[0].SelectedSize == "M" &&
			len(plan.DeleteIDs) == 2
	})).Return(nil)

	merged, err := svc.MergeCarts(context.Background(), anonID, permID)
	require.NoError(t, err)
	assert.Equal(t, 2, merged)
	cartRepo.AssertExpectations(t)
}

func TestAuthService_MergeCarts_EmptyAnonymousCartIsNoop(t *testing.T) {
	svc, _, cartRepo := newTestAuthService()
	anonID := uuid.New()
	permID := uuid.New()

	cartRepo.On("FindByUser", mock.Anything, anonID).Return([]*cart.CartLine{}, nil)

	merged, err := svc.MergeCarts(context.Background(), anonID, permID)
	require.NoError(t, err)
	assert.Equal(t, 0, merged)
	cartRepo.AssertNotCalled(t, "ApplyMerge", mock.Anything, mock.Anything)
}

func TestAuthService_MergeCarts_FailurePropagates(t *testing.T) {
	svc, _, cartRepo := newTestAuthService()
	anonID := uuid.New()
	permID := uuid.New()

	cartRepo.On("FindByUser", mock.Anything, anonID).
		Return([]*cart.CartLine{cartLine(t, anonID, uuid.New(), "", 1)}, nil)
	cartRepo.On("FindByUser", mock.Anything, permID).Return([]*cart.CartLine{}, nil)
	cartRepo.On("ApplyMerge", mock.Anything, mock.Anything).
		Return(shared.NewDomainError("INTERNAL_ERROR", "tx failed"))

	_, err := svc.MergeCarts(context.Background(), anonID, permID)
	assert.Error(t, err)
}

func TestAuthService_MergeCarts_SelfMergeRejected(t *testing.T) {
	svc, _, _ := newTestAuthService()
	id := uuid.New()
	_, err := svc.MergeCarts(context.Background(), id, id)
	assert.Error(t, err)
}

package inquiry

import (
	"context"
	"testing"

	"github.com/craftkart/backend/internal/domain/inquiry"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*inquiry.OrderRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inquiry.OrderRequest), args.Error(1)
}

func (m *MockRequestRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]inquiry.OrderRequest, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inquiry.OrderRequest), args.Error(1)
}

func (m *MockRequestRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inquiry.OrderRequest, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inquiry.OrderRequest), args.Error(1)
}

func (m *MockRequestRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) Save(ctx context.Context, r *inquiry.OrderRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRequestService() (*RequestService, *MockRequestRepository) {
	repo := new(MockRequestRepository)
	return NewRequestService(repo), repo
}

func submittedRequest(t *testing.T) *inquiry.OrderRequest {
	t.Helper()
	r, err := inquiry.NewOrderRequest(uuid.New(), "Asha Rao", "asha@example.com", "9876543210", "Wedding favors",
		[]inquiry.MaterialInput{{MaterialName: "Jute baskets", Quantity: 150, Customization: "Gold thread trim"}})
	require.NoError(t, err)
	return r
}

func TestRequestService_SubmitRequest(t *testing.T) {
	svc, repo := newTestRequestService()
	repo.On("Save", mock.Anything, mock.AnythingOfType("*inquiry.OrderRequest")).Return(nil)

	resp, err := svc.SubmitRequest(context.Background(), uuid.New(), SubmitRequestRequest{
		ContactName:  "Asha Rao",
		ContactEmail: "Asha@Example.com",
		Materials: []MaterialLineRequest{
			{MaterialName: "Jute baskets", Quantity: 150},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "asha@example.com", resp.ContactEmail)
	require.Len(t, resp.Materials, 1)
	assert.Equal(t, 150, resp.Materials[0].Quantity)
	repo.AssertExpectations(t)
}

func TestRequestService_SubmitRequest_NoMaterials(t *testing.T) {
	svc, repo := newTestRequestService()

	_, err := svc.SubmitRequest(context.Background(), uuid.New(), SubmitRequestRequest{
		ContactName:  "Asha Rao",
		ContactEmail: "asha@example.com",
	})
	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRequestService_ApproveRequest(t *testing.T) {
	svc, repo := newTestRequestService()
	r := submittedRequest(t)
	adminID := uuid.New()

	repo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	repo.On("Save", mock.Anything, r).Return(nil)

	resp, err := svc.ApproveRequest(context.Background(), adminID, r.ID)
	require.NoError(t, err)

	assert.Equal(t, "approved", resp.Status)
	assert.NotNil(t, resp.DecidedAt)
}

func TestRequestService_Decide_IsOneShot(t *testing.T) {
	svc, repo := newTestRequestService()
	r := submittedRequest(t)
	adminID := uuid.New()

	repo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	repo.On("Save", mock.Anything, r).Return(nil)

	_, err := svc.RejectRequest(context.Background(), adminID, r.ID)
	require.NoError(t, err)

	_, err = svc.ApproveRequest(context.Background(), adminID, r.ID)
	require.Error(t, err, "a decided request never changes status again")

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestRequestService_SetAdminNote_AnyStatus(t *testing.T) {
	svc, repo := newTestRequestService()
	r := submittedRequest(t)
	require.NoError(t, r.Reject(uuid.New()))

	repo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	repo.On("Save", mock.Anything, r).Return(nil)

	resp, err := svc.SetAdminNote(context.Background(), r.ID, SetAdminNoteRequest{Note: "Customer called back"})
	require.NoError(t, err)
	assert.Equal(t, "Customer called back", resp.AdminNote)
	assert.Equal(t, "rejected", resp.Status)
}

func TestRequestService_ListRequests_StatusFilter(t *testing.T) {
	svc, repo := newTestRequestService()

	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Filters["status"] == "pending"
	})).Return([]inquiry.OrderRequest{}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	_, err := svc.ListRequests(context.Background(), ListRequestsRequest{Status: "pending"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

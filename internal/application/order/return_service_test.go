package order

import (
	"context"
	"testing"
	"time"

	"github.com/craftkart/backend/internal/domain/order"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReturnService(window time.Duration) (*ReturnService, *MockReturnRepository, *MockOrderRepository) {
	returnRepo := new(MockReturnRepository)
	orderRepo := new(MockOrderRepository)
	return NewReturnService(returnRepo, orderRepo, window), returnRepo, orderRepo
}

func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := testOrder(t, order.PaymentMethodCOD)
	require.NoError(t, o.MarkShipped())
	require.NoError(t, o.MarkDelivered())
	return o
}

func TestReturnService_CreateReturn(t *testing.T) {
	svc, returnRepo, orderRepo := newTestReturnService(order.DefaultReturnWindow)
	o := deliveredOrder(t)

	orderRepo.On("FindByIDForUser", mock.Anything, o.UserID, o.ID).Return(o, nil)
	returnRepo.On("GenerateReturnNumber", mock.Anything).Return("RR-2026-00007", nil)
	returnRepo.On("SaveWithOrderMirror", mock.Anything, mock.AnythingOfType("*order.ReturnRequest"), o).Return(nil)

	resp, err := svc.CreateReturn(context.Background(), o.UserID, CreateReturnRequest{
		OrderID:      o.ID,
		OrderItemIDs: []uuid.UUID{o.Items[0].ID},
		ReasonCode:   order.ReasonDamaged,
		Comments:     "Arrived cracked",
	})
	require.NoError(t, err)

	assert.Equal(t, "RR-2026-00007", resp.ReturnNumber)
	assert.Equal(t, string(order.ReturnStatusPendingReview), resp.Status)
	assert.Equal(t, order.ReturnMirrorRequested, o.ReturnStatus,
		"the order mirror is updated in the same save as the return")
	returnRepo.AssertCalled(t, "SaveWithOrderMirror", mock.Anything, mock.AnythingOfType("*order.ReturnRequest"), o)
}

func TestReturnService_CreateReturn_WindowClosed(t *testing.T) {
	svc, returnRepo, orderRepo := newTestReturnService(order.DefaultReturnWindow)
	o := deliveredOrder(t)

	// Pretend delivery happened four days ago
	past := time.Now().Add(-4 * 24 * time.Hour)
	o.DeliveryDate = &past

	orderRepo.On("FindByIDForUser", mock.Anything, o.UserID, o.ID).Return(o, nil)

	_, err := svc.CreateReturn(context.Background(), o.UserID, CreateReturnRequest{
		OrderID:      o.ID,
		OrderItemIDs: []uuid.UUID{o.Items[0].ID},
		ReasonCode:   order.ReasonDamaged,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "RETURN_WINDOW_CLOSED", domainErr.Code)
	returnRepo.AssertNotCalled(t, "SaveWithOrderMirror", mock.Anything, mock.Anything, mock.Anything)
}

func TestReturnService_CreateReturn_SecondReturnRejected(t *testing.T) {
	svc, returnRepo, orderRepo := newTestReturnService(order.DefaultReturnWindow)
	o := deliveredOrder(t)
	require.NoError(t, o.MirrorReturnStatus(order.ReturnMirrorRequested))

	orderRepo.On("FindByIDForUser", mock.Anything, o.UserID, o.ID).Return(o, nil)

	_, err := svc.CreateReturn(context.Background(), o.UserID, CreateReturnRequest{
		OrderID:      o.ID,
		OrderItemIDs: []uuid.UUID{o.Items[0].ID},
		ReasonCode:   order.ReasonDamaged,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "RETURN_EXISTS", domainErr.Code, "one live return per order, enforced server side")
	returnRepo.AssertNotCalled(t, "SaveWithOrderMirror", mock.Anything, mock.Anything, mock.Anything)
}

func TestReturnService_CreateReturn_UndeliveredOrderRejected(t *testing.T) {
	svc, _, orderRepo := newTestReturnService(order.DefaultReturnWindow)
	o := testOrder(t, order.PaymentMethodCOD)

	orderRepo.On("FindByIDForUser", mock.Anything, o.UserID, o.ID).Return(o, nil)

	_, err := svc.CreateReturn(context.Background(), o.UserID, CreateReturnRequest{
		OrderID:      o.ID,
		OrderItemIDs: []uuid.UUID{o.Items[0].ID},
		ReasonCode:   order.ReasonDamaged,
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestReturnService_CreateReturn_ForeignItemRejected(t *testing.T) {
	svc, _, orderRepo := newTestReturnService(order.DefaultReturnWindow)
	o := deliveredOrder(t)

	orderRepo.On("FindByIDForUser", mock.Anything, o.UserID, o.ID).Return(o, nil)

	_, err := svc.CreateReturn(context.Background(), o.UserID, CreateReturnRequest{
		OrderID:      o.ID,
		OrderItemIDs: []uuid.UUID{uuid.New()},
		ReasonCode:   order.ReasonDamaged,
	})
	require.Error(t, err)
}

func TestReturnService_CreateReturn_ConfigurableWindow(t *testing.T) {
	svc, returnRepo, orderRepo := newTestReturnService(7 * 24 * time.Hour)
	o := deliveredOrder(t)

	// Four days out: closed under the default 72h window, open under 7 days
	past := time.Now().Add(-4 * 24 * time.Hour)
	o.DeliveryDate = &past

	orderRepo.On("FindByIDForUser", mock.Anything, o.UserID, o.ID).Return(o, nil)
	returnRepo.On("GenerateReturnNumber", mock.Anything).Return("RR-2026-00008", nil)
	returnRepo.On("SaveWithOrderMirror", mock.Anything, mock.AnythingOfType("*order.ReturnRequest"), o).Return(nil)

	_, err := svc.CreateReturn(context.Background(), o.UserID, CreateReturnRequest{
		OrderID:      o.ID,
		OrderItemIDs: []uuid.UUID{o.Items[0].ID},
		ReasonCode:   order.ReasonQualityIssue,
	})
	assert.NoError(t, err)
}

// ============================================================
// Review flow
// ============================================================

func pendingReturn(t *testing.T, o *order.Order) *order.ReturnRequest {
	t.Helper()
	r, err := order.NewReturnRequest(o, []uuid.UUID{o.Items[0].ID}, order.ReasonDamaged, "", "", time.Now(), order.DefaultReturnWindow)
	require.NoError(t, err)
	r.ReturnNumber = "RR-2026-00007"
	require.NoError(t, o.MirrorReturnStatus(order.ReturnMirrorRequested))
	return r
}

func TestReturnService_ApproveReturn_MirrorsOntoOrder(t *testing.T) {
	svc, returnRepo, orderRepo := newTestReturnService(order.DefaultReturnWindow)
	o := deliveredOrder(t)
	r := pendingReturn(t, o)
	reviewerID := uuid.New()

	returnRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	orderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	returnRepo.On("SaveWithOrderMirror", mock.Anything, r, o).Return(nil)

	resp, err := svc.ApproveReturn(context.Background(), reviewerID, r.ID)
	require.NoError(t, err)

	assert.Equal(t, string(order.ReturnStatusApproved), resp.Status)
	assert.Equal(t, order.ReturnMirrorApproved, o.ReturnStatus)
	returnRepo.AssertExpectations(t)
}

func TestReturnService_RejectReturn_RequiresReason(t *testing.T) {
	svc, returnRepo, orderRepo := newTestReturnService(order.DefaultReturnWindow)
	o := deliveredOrder(t)
	r := pendingReturn(t, o)

	returnRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	orderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)

	_, err := svc.RejectReturn(context.Background(), uuid.New(), r.ID, RejectReturnRequest{Reason: "   "})
	require.Error(t, err)
	returnRepo.AssertNotCalled(t, "SaveWithOrderMirror", mock.Anything, mock.Anything, mock.Anything)
}

func TestReturnService_MarkRefunded_OnlyFromApproved(t *testing.T) {
	svc, returnRepo, orderRepo := newTestReturnService(order.DefaultReturnWindow)
	o := deliveredOrder(t)
	r := pendingReturn(t, o)
	reviewerID := uuid.New()

	returnRepo.On("FindByID", mock.Anything, r.ID).Return(r, nil)
	orderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	returnRepo.On("SaveWithOrderMirror", mock.Anything, r, o).Return(nil)

	_, err := svc.MarkRefunded(context.Background(), reviewerID, r.ID)
	require.Error(t, err, "refund requires prior approval")

	_, err = svc.ApproveReturn(context.Background(), reviewerID, r.ID)
	require.NoError(t, err)

	resp, err := svc.MarkRefunded(context.Background(), reviewerID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, string(order.ReturnStatusRefunded), resp.Status)
	assert.Equal(t, order.ReturnMirrorRefunded, o.ReturnStatus)
	assert.NotNil(t, resp.RefundedAt)
}

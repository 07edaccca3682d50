package inquiry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRequest(t *testing.T) *OrderRequest {
	t.Helper()
	r, err := NewOrderRequest(uuid.New(), "Asha K", "asha@example.com", "9876543210", "Bulk diwali order", []MaterialInput{
		{MaterialName: "Jute", Quantity: 200, Customization: "natural dye"},
		{MaterialName: "Terracotta", Quantity: 50, ReferenceImageURL: "https://example.com/ref.jpg"},
	})
	require.NoError(t, err)
	return r
}

func TestNewOrderRequest(t *testing.T) {
	r := createTestRequest(t)

	assert.Equal(t, RequestStatusPending, r.Status)
	assert.Equal(t, "asha@example.com", r.ContactEmail)
	assert.Len(t, r.Materials, 2)
	require.Len(t, r.GetDomainEvents(), 1)
	assert.Equal(t, EventTypeOrderRequestSubmitted, r.GetDomainEvents()[0].EventType())
}

func TestNewOrderRequest_Validation(t *testing.T) {
	userID := uuid.New()
	materials := []MaterialInput{{MaterialName: "Jute", Quantity: 1}}

	_, err := NewOrderRequest(uuid.Nil, "A", "a@example.com", "", "", materials)
	assert.Error(t, err)

	_, err = NewOrderRequest(userID, "", "a@example.com", "", "", materials)
	assert.Error(t, err)

	_, err = NewOrderRequest(userID, "A", "a@example.com", "", "", nil)
	assert.Error(t, err)

	_, err = NewOrderRequest(userID, "A", "a@example.com", "", "", []MaterialInput{{MaterialName: "Jute", Quantity: 0}})
	assert.Error(t, err)

	_, err = NewOrderRequest(userID, "A", "a@example.com", "", "", []MaterialInput{{MaterialName: " ", Quantity: 1}})
	assert.Error(t, err)
}

func TestOrderRequest_Decisions(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		r := createTestRequest(t)
		adminID := uuid.New()

		require.NoError(t, r.Approve(adminID))
		assert.Equal(t, RequestStatusApproved, r.Status)
		require.NotNil(t, r.DecidedBy)
		assert.Equal(t, adminID, *r.DecidedBy)

		// Decisions are one-shot
		assert.Error(t, r.Reject(adminID))
	})

	t.Run("reject", func(t *testing.T) {
		r := createTestRequest(t)
		require.NoError(t, r.Reject(uuid.New()))
		assert.Equal(t, RequestStatusRejected, r.Status)
		assert.Error(t, r.Approve(uuid.New()))
	})
}

func TestOrderRequest_SetAdminNote_AnyStatus(t *testing.T) {
	r := createTestRequest(t)

	r.SetAdminNote("call customer for dye options")
	assert.Equal(t, "call customer for dye options", r.AdminNote)

	require.NoError(t, r.Approve(uuid.New()))
	r.SetAdminNote("approved with revised quote")
	assert.Equal(t, "approved with revised quote", r.AdminNote)
}

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusApproved))
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusRejected))
	assert.False(t, RequestStatusApproved.CanTransitionTo(RequestStatusRejected))
	assert.False(t, RequestStatusRejected.CanTransitionTo(RequestStatusApproved))
	assert.False(t, RequestStatusPending.CanTransitionTo(RequestStatusPending))
}

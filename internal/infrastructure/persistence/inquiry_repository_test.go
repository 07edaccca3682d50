package persistence

import (
	"context"
	"testing"

	"github.com/craftkart/backend/internal/domain/inquiry"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrderRequest(t *testing.T, userID uuid.UUID) *inquiry.OrderRequest {
	t.Helper()
	r, err := inquiry.NewOrderRequest(userID, "Asha Rao", "asha@example.com", "9876543210",
		"Wedding favors for 200 guests", []inquiry.MaterialInput{
			{MaterialName: "Terracotta diya", Quantity: 200, Customization: "gold rim"},
			{MaterialName: "Jute gift bag", Quantity: 200},
		})
	require.NoError(t, err)
	return r
}

func TestGormInquiryRepository_SaveAndFindByID(t *testing.T) {
	repo := NewGormInquiryRepository(setupTestDB(t))
	ctx := context.Background()

	r := mustOrderRequest(t, uuid.New())
	require.NoError(t, repo.Save(ctx, r))

	found, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", found.ContactEmail)
	assert.Equal(t, inquiry.RequestStatusPending, found.Status)
	require.Len(t, found.Materials, 2)
	assert.Equal(t, "gold rim", found.Materials[0].Customization)
}

func TestGormInquiryRepository_SavePersistsDecision(t *testing.T) {
	repo := NewGormInquiryRepository(setupTestDB(t))
	ctx := context.Background()

	r := mustOrderRequest(t, uuid.New())
	require.NoError(t, repo.Save(ctx, r))

	adminID := uuid.New()
	require.NoError(t, r.Approve(adminID))
	r.SetAdminNote("Quoted 15% bulk discount")
	require.NoError(t, repo.Save(ctx, r))

	found, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiry.RequestStatusApproved, found.Status)
	assert.Equal(t, "Quoted 15% bulk discount", found.AdminNote)
	require.NotNil(t, found.DecidedBy)
	assert.Equal(t, adminID, *found.DecidedBy)
}

func TestGormInquiryRepository_FindAll_FiltersByStatus(t *testing.T) {
	repo := NewGormInquiryRepository(setupTestDB(t))
	ctx := context.Background()

	pending := mustOrderRequest(t, uuid.New())
	decided := mustOrderRequest(t, uuid.New())
	require.NoError(t, decided.Reject(uuid.New()))
	require.NoError(t, repo.Save(ctx, pending))
	require.NoError(t, repo.Save(ctx, decided))

	filter := shared.DefaultFilter()
	filter.Filters["status"] = inquiry.RequestStatusPending.String()

	requests, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, pending.ID, requests[0].ID)

	count, err := repo.Count(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestGormInquiryRepository_FindByUser(t *testing.T) {
	repo := NewGormInquiryRepository(setupTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	mine := mustOrderRequest(t, userID)
	require.NoError(t, repo.Save(ctx, mine))
	require.NoError(t, repo.Save(ctx, mustOrderRequest(t, uuid.New())))

	requests, err := repo.FindByUser(ctx, userID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, mine.ID, requests[0].ID)
}

func TestGormInquiryRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormInquiryRepository(db)
	ctx := context.Background()

	r := mustOrderRequest(t, uuid.New())
	require.NoError(t, repo.Save(ctx, r))
	require.NoError(t, repo.Delete(ctx, r.ID))

	_, err := repo.FindByID(ctx, r.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var orphans int64
	require.NoError(t, db.Model(&inquiry.MaterialLine{}).Where("order_request_id = ?", r.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

package order

import (
	"context"
	"time"

	"github.com/craftkart/backend/internal/domain/order"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReturnService drives the post-delivery return workflow. Every status
// change is written together with the owning order's mirror field in one
// transaction, so the two documents never disagree.
type ReturnService struct {
	returnRepo     order.ReturnRequestRepository
	orderRepo      order.Repository
	window         time.Duration
	now            func() time.Time
	eventPublisher shared.EventPublisher
}

// NewReturnService creates a new ReturnService. A non-positive window falls
// back to the default eligibility window.
func NewReturnService(returnRepo order.ReturnRequestRepository, orderRepo order.Repository, window time.Duration) *ReturnService {
	if window <= 0 {
		window = order.DefaultReturnWindow
	}
	return &ReturnService{
		returnRepo: returnRepo,
		orderRepo:  orderRepo,
		window:     window,
		now:        time.Now,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ReturnService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateReturn opens a return for one of the caller's delivered orders.
// Eligibility, the one-return-per-order rule and item ownership are all
// enforced here regardless of what the client showed.
func (s *ReturnService) CreateReturn(ctx context.Context, userID uuid.UUID, req CreateReturnRequest) (*ReturnResponse, error) {
	o, err := s.orderRepo.FindByIDForUser(ctx, userID, req.OrderID)
	if err != nil {
		return nil, err
	}

	r, err := order.NewReturnRequest(o, req.OrderItemIDs, req.ReasonCode, req.Comments, req.DamageImageURLs, s.now(), s.window)
	if err != nil {
		return nil, err
	}

	number, err := s.returnRepo.GenerateReturnNumber(ctx)
	if err != nil {
		return nil, err
	}
	r.ReturnNumber = number

	if err := o.MirrorReturnStatus(order.ReturnMirrorRequested); err != nil {
		return nil, err
	}

	if err := s.returnRepo.SaveWithOrderMirror(ctx, r, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, r.GetDomainEvents())
	r.ClearDomainEvents()

	return ToReturnResponse(r), nil
}

// GetReturn returns a return request by ID for the back office
func (s *ReturnService) GetReturn(ctx context.Context, returnID uuid.UUID) (*ReturnResponse, error) {
	r, err := s.returnRepo.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}
	return ToReturnResponse(r), nil
}

// ListUserReturns returns the user's return requests, newest first
func (s *ReturnService) ListUserReturns(ctx context.Context, userID uuid.UUID, page, pageSize int) (*shared.Paginated[ReturnResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	returns, err := s.returnRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	filter.Filters["user_id"] = userID
	total, err := s.returnRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(returns, total, filter), nil
}

// ListReturns returns a filtered return listing for the back office
func (s *ReturnService) ListReturns(ctx context.Context, req ListReturnsRequest) (*shared.Paginated[ReturnResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.Status != "" {
		filter.Filters["status"] = req.Status
	}

	returns, err := s.returnRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.returnRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(returns, total, filter), nil
}

// ApproveReturn approves a pending return
func (s *ReturnService) ApproveReturn(ctx context.Context, reviewerID, returnID uuid.UUID) (*ReturnResponse, error) {
	return s.review(ctx, returnID, func(r *order.ReturnRequest) error {
		return r.Approve(reviewerID)
	})
}

// RejectReturn rejects a pending return with a reason
func (s *ReturnService) RejectReturn(ctx context.Context, reviewerID, returnID uuid.UUID, req RejectReturnRequest) (*ReturnResponse, error) {
	return s.review(ctx, returnID, func(r *order.ReturnRequest) error {
		return r.Reject(reviewerID, req.Reason)
	})
}

// MarkRefunded records that the refund for an approved return was issued
func (s *ReturnService) MarkRefunded(ctx context.Context, reviewerID, returnID uuid.UUID) (*ReturnResponse, error) {
	return s.review(ctx, returnID, func(r *order.ReturnRequest) error {
		return r.MarkRefunded(reviewerID)
	})
}

// review applies a reviewer mutation to the return and mirrors the outcome
// onto the owning order atomically
func (s *ReturnService) review(ctx context.Context, returnID uuid.UUID, mutate func(r *order.ReturnRequest) error) (*ReturnResponse, error) {
	r, err := s.returnRepo.FindByID(ctx, returnID)
	if err != nil {
		return nil, err
	}

	o, err := s.orderRepo.FindByID(ctx, r.OrderID)
	if err != nil {
		return nil, err
	}

	if err := mutate(r); err != nil {
		return nil, err
	}

	if err := o.MirrorReturnStatus(r.Status.MirrorStatus()); err != nil {
		return nil, err
	}

	if err := s.returnRepo.SaveWithOrderMirror(ctx, r, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, r.GetDomainEvents())
	r.ClearDomainEvents()

	return ToReturnResponse(r), nil
}

func (s *ReturnService) paginate(returns []order.ReturnRequest, total int64, filter shared.Filter) *shared.Paginated[ReturnResponse] {
	items := make([]ReturnResponse, 0, len(returns))
	for i := range returns {
		items = append(items, *ToReturnResponse(&returns[i]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result
}

func (s *ReturnService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range events {
		// Errors are logged by the bus; the operation itself has succeeded
		_ = s.eventPublisher.Publish(ctx, event)
	}
}

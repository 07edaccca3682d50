package inquiry

import (
	"context"

	"github.com/craftkart/backend/internal/domain/inquiry"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestService handles bulk/custom order inquiries: customer submission
// and the admin decision flow
type RequestService struct {
	requestRepo    inquiry.Repository
	eventPublisher shared.EventPublisher
}

// NewRequestService creates a new RequestService
func NewRequestService(requestRepo inquiry.Repository) *RequestService {
	return &RequestService{requestRepo: requestRepo}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *RequestService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SubmitRequest records a new inquiry from the storefront
func (s *RequestService) SubmitRequest(ctx context.Context, userID uuid.UUID, req SubmitRequestRequest) (*RequestResponse, error) {
	materials := make([]inquiry.MaterialInput, 0, len(req.Materials))
	for _, m := range req.Materials {
		materials = append(materials, inquiry.MaterialInput{
			MaterialName:      m.MaterialName,
			Quantity:          m.Quantity,
			Customization:     m.Customization,
			ReferenceImageURL: m.ReferenceImageURL,
		})
	}

	r, err := inquiry.NewOrderRequest(userID, req.ContactName, req.ContactEmail, req.ContactPhone, req.Message, materials)
	if err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, r.GetDomainEvents())
	r.ClearDomainEvents()

	return ToRequestResponse(r), nil
}

// GetRequest returns a request by ID for the back office
func (s *RequestService) GetRequest(ctx context.Context, requestID uuid.UUID) (*RequestResponse, error) {
	r, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return ToRequestResponse(r), nil
}

// ListUserRequests returns the user's inquiries, newest first
func (s *RequestService) ListUserRequests(ctx context.Context, userID uuid.UUID, page, pageSize int) (*shared.Paginated[RequestResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	requests, err := s.requestRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	filter.Filters["user_id"] = userID
	total, err := s.requestRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(requests, total, filter), nil
}

// ListRequests returns a filtered inquiry listing for the back office
func (s *RequestService) ListRequests(ctx context.Context, req ListRequestsRequest) (*shared.Paginated[RequestResponse], error) {
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

	requests, err := s.requestRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.requestRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(requests, total, filter), nil
}

// ApproveRequest marks an inquiry approved; the decision is one-shot
func (s *RequestService) ApproveRequest(ctx context.Context, adminID, requestID uuid.UUID) (*RequestResponse, error) {
	return s.decide(ctx, requestID, func(r *inquiry.OrderRequest) error {
		return r.Approve(adminID)
	})
}

// RejectRequest marks an inquiry rejected; the decision is one-shot
func (s *RequestService) RejectRequest(ctx context.Context, adminID, requestID uuid.UUID) (*RequestResponse, error) {
	return s.decide(ctx, requestID, func(r *inquiry.OrderRequest) error {
		return r.Reject(adminID)
	})
}

// SetAdminNote updates the internal note, allowed in any status
func (s *RequestService) SetAdminNote(ctx context.Context, requestID uuid.UUID, req SetAdminNoteRequest) (*RequestResponse, error) {
	r, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	r.SetAdminNote(req.Note)

	if err := s.requestRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	return ToRequestResponse(r), nil
}

func (s *RequestService) decide(ctx context.Context, requestID uuid.UUID, mutate func(r *inquiry.OrderRequest) error) (*RequestResponse, error) {
	r, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if err := mutate(r); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, r.GetDomainEvents())
	r.ClearDomainEvents()

	return ToRequestResponse(r), nil
}

func (s *RequestService) paginate(requests []inquiry.OrderRequest, total int64, filter shared.Filter) *shared.Paginated[RequestResponse] {
	items := make([]RequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, *ToRequestResponse(&requests[i]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result
}

func (s *RequestService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range events {
		// Errors are logged by the bus; the operation itself has succeeded
		_ = s.eventPublisher.Publish(ctx, event)
	}
}

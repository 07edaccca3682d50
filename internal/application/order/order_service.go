package order

import (
	"context"

	"github.com/craftkart/backend/internal/domain/order"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService drives the fulfilment lifecycle. Status writes go through
// optimistic locking so two admins acting on the same order cannot both win.
type OrderService struct {
	orderRepo      order.Repository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.Repository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetOrder returns an order by ID for the back office
func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// GetOrderForUser returns an order scoped to its owner. Another user's order
// is indistinguishable from a missing one.
func (s *OrderService) GetOrderForUser(ctx context.Context, userID, orderID uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// ListUserOrders returns the user's orders, newest first
func (s *OrderService) ListUserOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) (*shared.Paginated[OrderResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	orders, err := s.orderRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	filter.Filters["user_id"] = userID
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(orders, total, filter), nil
}

// ListOrders returns a filtered order listing for the back office
func (s *OrderService) ListOrders(ctx context.Context, req ListOrdersRequest) (*shared.Paginated[OrderResponse], error) {
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
	if req.ReturnStatus != "" {
		filter.Filters["return_status"] = req.ReturnStatus
	}
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid user id filter")
		}
		filter.Filters["user_id"] = userID
	}

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(orders, total, filter), nil
}

// ApprovePayment confirms the advance payment on a partial-UPI order,
// releasing it into the fulfilment flow
func (s *OrderService) ApprovePayment(ctx context.Context, adminID, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, func(o *order.Order) error {
		return o.ApprovePayment(adminID)
	})
}

// MarkShipped transitions an order to shipped
func (s *OrderService) MarkShipped(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, func(o *order.Order) error {
		return o.MarkShipped()
	})
}

// MarkDelivered transitions an order to delivered; the delivery date stamped
// here starts the return window
func (s *OrderService) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, func(o *order.Order) error {
		return o.MarkDelivered()
	})
}

// Cancel cancels an order from any non-terminal state
func (s *OrderService) Cancel(ctx context.Context, orderID uuid.UUID, req CancelOrderRequest) (*OrderResponse, error) {
	return s.transition(ctx, orderID, func(o *order.Order) error {
		return o.Cancel(req.Reason)
	})
}

// transition loads the order, applies the mutation and persists it under
// optimistic locking
func (s *OrderService) transition(ctx context.Context, orderID uuid.UUID, mutate func(o *order.Order) error) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := mutate(o); err != nil {
		return nil, err
	}

	if err := s.orderRepo.SaveWithLock(ctx, o); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o.GetDomainEvents())
	o.ClearDomainEvents()

	return ToOrderResponse(o), nil
}

func (s *OrderService) paginate(orders []order.Order, total int64, filter shared.Filter) *shared.Paginated[OrderResponse] {
	items := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *ToOrderResponse(&orders[i]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result
}

func (s *OrderService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range events {
		// Errors are logged by the bus; the operation itself has succeeded
		_ = s.eventPublisher.Publish(ctx, event)
	}
}

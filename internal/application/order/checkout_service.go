package order

import (
	"context"
	"encoding/json"

	"github.com/craftkart/backend/internal/domain/cart"
	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/craftkart/backend/internal/domain/identity"
	"github.com/craftkart/backend/internal/domain/order"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutConfig carries the pricing knobs applied at checkout time
type CheckoutConfig struct {
	// ShippingFee is the flat shipping fee added to every order
	ShippingFee decimal.Decimal
	// TaxRate is the tax percentage applied to the subtotal
	TaxRate decimal.Decimal
	// AdvancePercent is the share of the total collected up front for
	// partial UPI payments
	AdvancePercent decimal.Decimal
}

// DefaultCheckoutConfig returns the pricing defaults used when configuration
// does not override them
func DefaultCheckoutConfig() CheckoutConfig {
	return CheckoutConfig{
		ShippingFee:    decimal.NewFromInt(50),
		TaxRate:        decimal.Zero,
		AdvancePercent: decimal.NewFromInt(50),
	}
}

// CheckoutService converts a cart into an order: item snapshots are taken at
// this moment and never change afterwards, whatever happens to the catalog.
type CheckoutService struct {
	orderRepo      order.Repository
	cartRepo       cart.Repository
	productRepo    catalog.ProductRepository
	addressRepo    identity.AddressRepository
	config         CheckoutConfig
	eventPublisher shared.EventPublisher
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	productRepo catalog.ProductRepository,
	addressRepo identity.AddressRepository,
	config CheckoutConfig,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		config:      config,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CheckoutService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout places an order from the user's cart. Every line is re-validated
// against the live catalog, prices are resolved per selected size, and the
// cart is cleared once the order is persisted.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*OrderResponse, error) {
	lines, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot check out an empty cart")
	}

	address, err := s.addressRepo.FindByIDForUser(ctx, userID, req.AddressID)
	if err != nil {
		return nil, err
	}

	items, err := s.snapshotItems(ctx, lines)
	if err != nil {
		return nil, err
	}

	method := order.PaymentMethod(req.PaymentMethod)
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	tax := subtotal.Mul(s.config.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	details := s.paymentDetails(method, subtotal.Add(s.config.ShippingFee).Add(tax))

	shipping := order.ShippingAddress{
		FullName: address.FullName,
		Line1:    address.Line1,
		Line2:    address.Line2,
		City:     address.City,
		State:    address.State,
		Pincode:  address.Pincode,
		Phone:    address.Phone,
	}

	o, err := order.NewOrder(userID, items, shipping, method, details, s.config.ShippingFee, tax)
	if err != nil {
		return nil, err
	}

	number, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}
	o.OrderNumber = number

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	// The order exists; a failed cart clear leaves stale lines, not a lost
	// order, and the next checkout attempt fails on re-validation anyway
	if err := s.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, o.GetDomainEvents())
	o.ClearDomainEvents()

	return ToOrderResponse(o), nil
}

// snapshotItems re-validates the cart against the catalog and freezes each
// line into an order item
func (s *CheckoutService) snapshotItems(ctx context.Context, lines []*cart.CartLine) ([]order.OrderItem, error) {
	items := make([]order.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "A product in your cart is no longer available")
			}
			return nil, err
		}
		if !product.InStock {
			return nil, shared.NewDomainError("OUT_OF_STOCK", product.Name+" is out of stock")
		}
		if product.HasVariants() {
			if _, ok := product.VariantBySize(line.SelectedSize); !ok {
				return nil, shared.NewDomainError("INVALID_VARIANT", "The selected size of "+product.Name+" is no longer available")
			}
		}

		items = append(items, order.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: firstImageURL(product.ImageURLs),
			Size:         line.SelectedSize,
			UnitPrice:    product.PriceOf(line.SelectedSize).Amount(),
			Quantity:     line.Quantity,
		})
	}
	return items, nil
}

// paymentDetails computes the advance split for partial UPI payments; full
// and COD payments carry no split
func (s *CheckoutService) paymentDetails(method order.PaymentMethod, total decimal.Decimal) order.PaymentDetails {
	if method != order.PaymentMethodUPIPartial {
		return order.PaymentDetails{}
	}
	advance := total.Mul(s.config.AdvancePercent).Div(decimal.NewFromInt(100)).Round(2)
	return order.PaymentDetails{
		AdvanceAmount:   advance,
		RemainingAmount: total.Sub(advance),
	}
}

// firstImageURL extracts the first entry of a JSON array of image URLs
func firstImageURL(imageURLs string) string {
	var urls []string
	if err := json.Unmarshal([]byte(imageURLs), &urls); err != nil || len(urls) == 0 {
		return ""
	}
	return urls[0]
}

func (s *CheckoutService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range events {
		// Errors are logged by the bus; the operation itself has succeeded
		_ = s.eventPublisher.Publish(ctx, event)
	}
}

package cart

import (
	"context"

	"github.com/craftkart/backend/internal/domain/cart"
	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WriteDispatcher issues a named write without blocking the caller. The
// returned channel reports the single outcome; callers may ignore it, in
// which case failures surface through the process-wide error sink.
type WriteDispatcher interface {
	Dispatch(name string, fn func(ctx context.Context) error) <-chan error
}

// Service implements the cart engine: idempotent add-or-increment and the
// single quantity mutation primitive with delete-on-zero. Line writes are
// fire-and-forget; the merge path lives in the identity context.
type Service struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
	dispatcher  WriteDispatcher
}

// NewService creates a new cart Service
func NewService(cartRepo cart.Repository, productRepo catalog.ProductRepository, dispatcher WriteDispatcher) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		dispatcher:  dispatcher,
	}
}

// AddOrIncrement adds a product to the cart or bumps the quantity of the
// existing line keyed by (product, size). Variant products require a size;
// missing size is a user input error, not a fault.
func (s *Service) AddOrIncrement(ctx context.Context, userID uuid.UUID, req AddToCartRequest) (*MutationResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, shared.ErrOutOfStock
	}

	selectedSize := req.SelectedSize
	if product.HasVariants() {
		if selectedSize == "" {
			return nil, shared.NewDomainError("SIZE_REQUIRED", "Please select a size for this product")
		}
		if _, ok := product.VariantBySize(selectedSize); !ok {
			return nil, shared.NewDomainError("INVALID_VARIANT", "Unknown size for this product")
		}
	} else {
		selectedSize = ""
	}

	line, err := s.cartRepo.FindLine(ctx, userID, product.ID, selectedSize)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}

	if line != nil {
		line.Increment()
	} else {
		line, err = cart.NewCartLine(userID, product.ID, selectedSize)
		if err != nil {
			return nil, err
		}
	}

	saved := line
	done := s.dispatcher.Dispatch("cart.save_line", func(ctx context.Context) error {
		return s.cartRepo.Save(ctx, saved)
	})

	resp := ToCartLineResponse(line, product)
	return &MutationResponse{Line: &resp, Done: done}, nil
}

// SetQuantity is the single mutation primitive all quantity controls funnel
// through: positive quantities update the line, zero or less deletes it.
func (s *Service) SetQuantity(ctx context.Context, userID, lineID uuid.UUID, req SetQuantityRequest) (*MutationResponse, error) {
	line, err := s.cartRepo.FindByIDForUser(ctx, userID, lineID)
	if err != nil {
		return nil, err
	}

	if req.Quantity <= 0 {
		id := line.ID
		done := s.dispatcher.Dispatch("cart.delete_line", func(ctx context.Context) error {
			return s.cartRepo.Delete(ctx, id)
		})
		return &MutationResponse{Removed: true, Done: done}, nil
	}

	if err := line.ChangeQuantity(req.Quantity); err != nil {
		return nil, err
	}

	saved := line
	done := s.dispatcher.Dispatch("cart.save_line", func(ctx context.Context) error {
		return s.cartRepo.Save(ctx, saved)
	})

	resp := ToCartLineResponse(line, nil)
	return &MutationResponse{Line: &resp, Done: done}, nil
}

// RemoveLine deletes a line outright
func (s *Service) RemoveLine(ctx context.Context, userID, lineID uuid.UUID) (*MutationResponse, error) {
	return s.SetQuantity(ctx, userID, lineID, SetQuantityRequest{Quantity: 0})
}

// GetCart returns the user's cart. Lines whose product is missing from the
// catalog are returned without product fields and excluded from the total;
// the client renders nothing for them until both documents are present.
func (s *Service) GetCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	lines, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &CartResponse{
		Lines: make([]CartLineResponse, 0, len(lines)),
		Total: decimal.Zero,
	}

	for _, line := range lines {
		product, err := s.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if err == shared.ErrNotFound {
				product = nil
			} else {
				return nil, err
			}
		}
		lineResp := ToCartLineResponse(line, product)
		if lineResp.LineTotal != nil {
			resp.Total = resp.Total.Add(*lineResp.LineTotal)
		}
		resp.Lines = append(resp.Lines, lineResp)
	}

	return resp, nil
}

// Clear removes every line in the user's cart. Checkout awaits this; it is
// not dispatched fire-and-forget.
func (s *Service) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.cartRepo.DeleteByUser(ctx, userID)
}

package catalog

import (
	"context"

	"github.com/craftkart/backend/internal/domain/catalog"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles catalog reads for the storefront and product
// management for the back office
type ProductService struct {
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetProduct returns a single product with its variants
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// ListProducts returns a paginated product listing with optional category,
// material, stock and search filters
func (s *ProductService) ListProducts(ctx context.Context, req ListProductsRequest) (*shared.Paginated[ProductResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.Category != "" {
		filter.Filters["category"] = req.Category
	}
	if req.Material != "" {
		filter.Filters["material"] = req.Material
	}
	if req.InStock != nil {
		filter.Filters["in_stock"] = *req.InStock
	}
	filter.Search = req.Search

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *ToProductResponse(&products[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// CreateProduct creates a product, optionally with variants
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	baseMRP := decimal.Zero
	if req.BaseMRP != "" {
		parsed, err := decimal.NewFromString(req.BaseMRP)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_PRICE", "Base MRP is not a valid amount")
		}
		baseMRP = parsed
	}

	product, err := catalog.NewProduct(req.Name, req.Category, req.Material, baseMRP)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	if req.ImageURLs != "" {
		product.ImageURLs = req.ImageURLs
	}

	if len(req.Variants) > 0 {
		inputs, err := toVariantInputs(req.Variants)
		if err != nil {
			return nil, err
		}
		if err := product.ReplaceVariants(inputs); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product.GetDomainEvents())
	product.ClearDomainEvents()

	return ToProductResponse(product), nil
}

// UpdateProduct updates a product's descriptive fields
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Category, req.Material, req.Description); err != nil {
		return nil, err
	}
	if req.ImageURLs != "" {
		product.ImageURLs = req.ImageURLs
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product.GetDomainEvents())
	product.ClearDomainEvents()

	return ToProductResponse(product), nil
}

// SetStock flips the product's stock flag
func (s *ProductService) SetStock(ctx context.Context, id uuid.UUID, req SetStockRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.SetStock(*req.InStock)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product.GetDomainEvents())
	product.ClearDomainEvents()

	return ToProductResponse(product), nil
}

// SetPrice updates the flat base price
func (s *ProductService) SetPrice(ctx context.Context, id uuid.UUID, req SetPriceRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(req.BaseMRP)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Base MRP is not a valid amount")
	}
	if err := product.SetBaseMRP(price); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product.GetDomainEvents())
	product.ClearDomainEvents()

	return ToProductResponse(product), nil
}

// ReplaceVariants replaces the product's variant list wholesale
func (s *ProductService) ReplaceVariants(ctx context.Context, id uuid.UUID, req ReplaceVariantsRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	inputs, err := toVariantInputs(req.Variants)
	if err != nil {
		return nil, err
	}
	if err := product.ReplaceVariants(inputs); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product.GetDomainEvents())
	product.ClearDomainEvents()

	return ToProductResponse(product), nil
}

// DeleteProduct removes a product from the catalog. Cart lines referencing
// it are left in place; the cart tolerates dangling references.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, product.ID); err != nil {
		return err
	}

	s.publishEvents(ctx, []shared.DomainEvent{catalog.NewProductDeletedEvent(product)})
	return nil
}

func toVariantInputs(variants []VariantRequest) ([]catalog.VariantInput, error) {
	inputs := make([]catalog.VariantInput, 0, len(variants))
	for _, v := range variants {
		price, err := decimal.NewFromString(v.Price)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_PRICE", "Variant price is not a valid amount")
		}
		inputs = append(inputs, catalog.VariantInput{Size: v.Size, Price: price})
	}
	return inputs, nil
}

func (s *ProductService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range events {
		// Errors are logged by the bus; the operation itself has succeeded
		_ = s.eventPublisher.Publish(ctx, event)
	}
}

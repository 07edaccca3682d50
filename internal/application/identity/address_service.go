package identity

import (
	"context"

	"github.com/craftkart/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// AddressService manages a user's shipping addresses
type AddressService struct {
	addressRepo identity.AddressRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(addressRepo identity.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// List returns every address owned by the user
func (s *AddressService) List(ctx context.Context, userID uuid.UUID) ([]AddressResponse, error) {
	addresses, err := s.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		items = append(items, *ToAddressResponse(a))
	}
	return items, nil
}

// Create adds a new address. The first address a user creates becomes the
// default automatically.
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req CreateAddressRequest) (*AddressResponse, error) {
	address, err := identity.NewAddress(userID, req.FullName, req.Line1, req.Line2, req.City, req.State, req.Pincode, req.Phone)
	if err != nil {
		return nil, err
	}

	existing, err := s.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		address.IsDefault = true
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	return ToAddressResponse(address), nil
}

// Update replaces an address's fields
func (s *AddressService) Update(ctx context.Context, userID, addressID uuid.UUID, req UpdateAddressRequest) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByIDForUser(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if err := address.Update(req.FullName, req.Line1, req.Line2, req.City, req.State, req.Pincode, req.Phone); err != nil {
		return nil, err
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	return ToAddressResponse(address), nil
}

// Delete removes an address
func (s *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	address, err := s.addressRepo.FindByIDForUser(ctx, userID, addressID)
	if err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, address.ID)
}

// SetDefault marks an address as the user's default. The repository unsets
// every other default in the same transaction, so exactly one address is
// the default once this returns.
func (s *AddressService) SetDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := s.addressRepo.FindByIDForUser(ctx, userID, addressID); err != nil {
		return err
	}
	return s.addressRepo.SetDefault(ctx, userID, addressID)
}

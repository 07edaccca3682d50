package identity

import (
	"context"

	"github.com/craftkart/backend/internal/domain/cart"
	"github.com/craftkart/backend/internal/domain/identity"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AuthService handles identity resolution: anonymous sessions, sign-up,
// sign-in and the anonymous-to-permanent cart merge
type AuthService struct {
	userRepo       identity.UserRepository
	cartRepo       cart.Repository
	eventPublisher shared.EventPublisher
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, cartRepo cart.Repository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cartRepo: cartRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *AuthService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// StartAnonymousSession creates a guest identity so every request carries a
// non-nil user to scope cart and order reads against
func (s *AuthService) StartAnonymousSession(ctx context.Context) (*UserResponse, error) {
	user := identity.NewAnonymousUser()

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, user.GetDomainEvents())
	user.ClearDomainEvents()

	return ToUserResponse(user), nil
}

// Register creates a permanent account. The anonymous and permanent users
// are distinct identities; when an anonymous id is supplied its cart is
// merged into the new account before the call returns.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	user, err := identity.NewUser(req.Email, req.Password, req.DisplayName)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if req.AnonymousUserID != nil {
		if _, err := s.MergeCarts(ctx, *req.AnonymousUserID, user.ID); err != nil {
			return nil, err
		}
	}

	s.publishEvents(ctx, user.GetDomainEvents())
	user.ClearDomainEvents()

	return ToUserResponse(user), nil
}

// Login authenticates a permanent account and merges the anonymous cart if
// an anonymous id is supplied
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	if req.AnonymousUserID != nil {
		if _, err := s.MergeCarts(ctx, *req.AnonymousUserID, user.ID); err != nil {
			return nil, err
		}
	}

	return ToUserResponse(user), nil
}

// MergeCarts folds the anonymous user's cart into the permanent user's cart
// in a single transaction and returns the number of merged lines. Failure
// surfaces to the caller; the transaction guarantees no partial state.
func (s *AuthService) MergeCarts(ctx context.Context, anonymousUserID, permanentUserID uuid.UUID) (int, error) {
	if anonymousUserID == permanentUserID {
		return 0, shared.NewDomainError("INVALID_INPUT", "Cannot merge a cart into itself")
	}

	anonLines, err := s.cartRepo.FindByUser(ctx, anonymousUserID)
	if err != nil {
		return 0, err
	}
	if len(anonLines) == 0 {
		return 0, nil
	}

	permLines, err := s.cartRepo.FindByUser(ctx, permanentUserID)
	if err != nil {
		return 0, err
	}

	plan, err := cart.PlanMerge(permanentUserID, anonLines, permLines)
	if err != nil {
		return 0, err
	}

	if err := s.cartRepo.ApplyMerge(ctx, plan); err != nil {
		return 0, err
	}

	merged := len(anonLines)
	s.publishEvents(ctx, []shared.DomainEvent{
		identity.NewCartsMergedEvent(anonymousUserID, permanentUserID, merged),
	})

	return merged, nil
}

// GetProfile returns a user by ID
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// UpdateProfile updates display name and phone
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(req.DisplayName, req.Phone); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

// ListUsers returns a paginated user listing for the back office
func (s *AuthService) ListUsers(ctx context.Context, req ListUsersRequest) (*shared.Paginated[UserResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.Role != "" {
		filter.Filters["role"] = req.Role
	}
	if req.Anonymous != nil {
		filter.Filters["is_anonymous"] = *req.Anonymous
	}

	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *ToUserResponse(&users[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

func (s *AuthService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range events {
		// Errors are logged by the bus; the operation itself has succeeded
		_ = s.eventPublisher.Publish(ctx, event)
	}
}

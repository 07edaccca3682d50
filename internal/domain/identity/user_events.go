package identity

import (
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeUser = "User"

// Event type constants
const (
	EventTypeAnonymousSessionStarted = "identity.anonymous_session_started"
	EventTypeUserRegistered          = "identity.user_registered"
	EventTypeCartsMerged             = "identity.carts_merged"
)

// AnonymousSessionStartedEvent is published when a guest identity is created
type AnonymousSessionStartedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
}

// NewAnonymousSessionStartedEvent creates a new AnonymousSessionStartedEvent
func NewAnonymousSessionStartedEvent(user *User) *AnonymousSessionStartedEvent {
	return &AnonymousSessionStartedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAnonymousSessionStarted, AggregateTypeUser, user.ID),
		UserID:          user.ID,
	}
}

// UserRegisteredEvent is published when a permanent account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Email:           user.Email,
	}
}

// CartsMergedEvent is published after an anonymous cart folds into a
// permanent one during sign-up or sign-in
type CartsMergedEvent struct {
	shared.BaseDomainEvent
	AnonymousUserID uuid.UUID `json:"anonymous_user_id"`
	PermanentUserID uuid.UUID `json:"permanent_user_id"`
	LinesMerged     int       `json:"lines_merged"`
}

// NewCartsMergedEvent creates a new CartsMergedEvent
func NewCartsMergedEvent(anonymousUserID, permanentUserID uuid.UUID, linesMerged int) *CartsMergedEvent {
	return &CartsMergedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCartsMerged, AggregateTypeUser, permanentUserID),
		AnonymousUserID: anonymousUserID,
		PermanentUserID: permanentUserID,
		LinesMerged:     linesMerged,
	}
}

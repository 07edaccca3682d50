package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserRole represents the role of a user
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// IsValid checks if the role is valid
func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Password cost for bcrypt
const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents a storefront identity. Anonymous sessions get a real user
// row so every request has a non-nil identity to scope cart and order reads
// against; sign-up creates a distinct permanent identity and the anonymous
// cart is merged across, never upgraded in place.
type User struct {
	shared.BaseAggregateRoot
	Email        string   `gorm:"type:varchar(255);uniqueIndex:idx_users_email,where:email <> ''"`
	PasswordHash string   `gorm:"type:varchar(255)"`
	DisplayName  string   `gorm:"type:varchar(100)"`
	Phone        string   `gorm:"type:varchar(20)"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'"`
	IsAnonymous  bool     `gorm:"not null;default:false"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewAnonymousUser creates a guest identity with no credentials
func NewAnonymousUser() *User {
	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Role:              RoleUser,
		IsAnonymous:       true,
	}

	user.AddDomainEvent(NewAnonymousSessionStartedEvent(user))

	return user
}

// NewUser creates a permanent user with credentials
func NewUser(email, password, displayName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		PasswordHash:      passwordHash,
		DisplayName:       strings.TrimSpace(displayName),
		Role:              RoleUser,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// VerifyPassword checks the given password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// UpdateProfile updates the user's display name and phone
func (u *User) UpdateProfile(displayName, phone string) error {
	if len(displayName) > 100 {
		return shared.NewDomainError("INVALID_INPUT", "Display name cannot exceed 100 characters")
	}
	if phone != "" && len(phone) > 20 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 20 characters")
	}

	u.DisplayName = strings.TrimSpace(displayName)
	u.Phone = strings.TrimSpace(phone)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// RecordLogin stamps the last login time
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// PromoteToAdmin grants the admin role
func (u *User) PromoteToAdmin() error {
	if u.IsAnonymous {
		return shared.NewDomainError("INVALID_STATE", "Anonymous users cannot be admins")
	}
	u.Role = RoleAdmin
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

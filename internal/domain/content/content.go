package content

import (
	"strings"
	"time"

	"github.com/craftkart/backend/internal/domain/shared"
)

// BlogPost is a published article on the storefront
type BlogPost struct {
	shared.BaseEntity
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Body        string `gorm:"type:text;not null"`
	CoverImage  string `gorm:"type:varchar(500)"`
	Author      string `gorm:"type:varchar(100)"`
	Published   bool   `gorm:"not null;default:false"`
	PublishedAt *time.Time
}

// TableName returns the table name for GORM
func (BlogPost) TableName() string {
	return "blog_posts"
}

// NewBlogPost creates a draft blog post
func NewBlogPost(title, slug, body, author string) (*BlogPost, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Title is required")
	}
	if strings.TrimSpace(slug) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Slug is required")
	}

	return &BlogPost{
		BaseEntity: shared.NewBaseEntity(),
		Title:      strings.TrimSpace(title),
		Slug:       strings.ToLower(strings.TrimSpace(slug)),
		Body:       body,
		Author:     strings.TrimSpace(author),
	}, nil
}

// Publish makes the post publicly visible
func (b *BlogPost) Publish() {
	if b.Published {
		return
	}
	now := time.Now()
	b.Published = true
	b.PublishedAt = &now
	b.UpdatedAt = now
}

// Unpublish hides the post
func (b *BlogPost) Unpublish() {
	b.Published = false
	b.UpdatedAt = time.Now()
}

// TeamMember is a profile shown on the about page
type TeamMember struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(100);not null"`
	Role     string `gorm:"type:varchar(100)"`
	Bio      string `gorm:"type:text"`
	PhotoURL string `gorm:"type:varchar(500)"`
	Position int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (TeamMember) TableName() string {
	return "team_members"
}

// NewTeamMember creates a team member profile
func NewTeamMember(name, role, bio, photoURL string, position int) (*TeamMember, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name is required")
	}

	return &TeamMember{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Role:       strings.TrimSpace(role),
		Bio:        bio,
		PhotoURL:   photoURL,
		Position:   position,
	}, nil
}

// Store is a physical store location
type Store struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(100);not null"`
	Address string `gorm:"type:varchar(300);not null"`
	City    string `gorm:"type:varchar(100);not null"`
	Phone   string `gorm:"type:varchar(20)"`
	MapURL  string `gorm:"type:varchar(500)"`
	Hours   string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a store location
func NewStore(name, address, city, phone string) (*Store, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(address) == "" || strings.TrimSpace(city) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name, address and city are required")
	}

	return &Store{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Address:    strings.TrimSpace(address),
		City:       strings.TrimSpace(city),
		Phone:      strings.TrimSpace(phone),
	}, nil
}

// HeroImage is a banner slot on the landing page, ordered by position
type HeroImage struct {
	shared.BaseEntity
	ImageURL string `gorm:"type:varchar(500);not null"`
	Caption  string `gorm:"type:varchar(200)"`
	LinkURL  string `gorm:"type:varchar(500)"`
	Position int    `gorm:"not null;default:0"`
	Active   bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (HeroImage) TableName() string {
	return "hero_images"
}

// NewHeroImage creates a hero banner entry
func NewHeroImage(imageURL, caption, linkURL string, position int) (*HeroImage, error) {
	if strings.TrimSpace(imageURL) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Image URL is required")
	}

	return &HeroImage{
		BaseEntity: shared.NewBaseEntity(),
		ImageURL:   strings.TrimSpace(imageURL),
		Caption:    strings.TrimSpace(caption),
		LinkURL:    strings.TrimSpace(linkURL),
		Position:   position,
		Active:     true,
	}, nil
}

package content

import (
	"time"

	"github.com/craftkart/backend/internal/domain/content"
	"github.com/google/uuid"
)

// CreateBlogPostRequest is the admin payload for a new post
type CreateBlogPostRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Slug       string `json:"slug" binding:"required,max=200"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image" binding:"max=500"`
	Author     string `json:"author" binding:"max=100"`
}

// UpdateBlogPostRequest is the admin payload for editing a post
type UpdateBlogPostRequest struct {
	Title      string `json:"title" binding:"required,max=200"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image" binding:"max=500"`
	Author     string `json:"author" binding:"max=100"`
}

// ListBlogPostsRequest carries blog listing filters
type ListBlogPostsRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// BlogPostResponse is the API representation of a blog post
type BlogPostResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Author      string     `json:"author,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TeamMemberRequest is the admin payload for a team member profile
type TeamMemberRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role" binding:"max=100"`
	Bio      string `json:"bio" binding:"max=5000"`
	PhotoURL string `json:"photo_url" binding:"max=500"`
	Position int    `json:"position"`
}

// TeamMemberResponse is the API representation of a team member
type TeamMemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role,omitempty"`
	Bio      string    `json:"bio,omitempty"`
	PhotoURL string    `json:"photo_url,omitempty"`
	Position int       `json:"position"`
}

// StoreRequest is the admin payload for a store location
type StoreRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"required,max=300"`
	City    string `json:"city" binding:"required,max=100"`
	Phone   string `json:"phone" binding:"max=20"`
	MapURL  string `json:"map_url" binding:"max=500"`
	Hours   string `json:"hours" binding:"max=200"`
}

// StoreResponse is the API representation of a store location
type StoreResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Phone   string    `json:"phone,omitempty"`
	MapURL  string    `json:"map_url,omitempty"`
	Hours   string    `json:"hours,omitempty"`
}

// HeroImageRequest is the admin payload for a hero banner
type HeroImageRequest struct {
	ImageURL string `json:"image_url" binding:"required,max=500"`
	Caption  string `json:"caption" binding:"max=200"`
	LinkURL  string `json:"link_url" binding:"max=500"`
	Position int    `json:"position"`
	Active   *bool  `json:"active"`
}

// HeroImageResponse is the API representation of a hero banner
type HeroImageResponse struct {
	ID       uuid.UUID `json:"id"`
	ImageURL string    `json:"image_url"`
	Caption  string    `json:"caption,omitempty"`
	LinkURL  string    `json:"link_url,omitempty"`
	Position int       `json:"position"`
	Active   bool      `json:"active"`
}

// ToBlogPostResponse maps a domain blog post
func ToBlogPostResponse(b *content.BlogPost) *BlogPostResponse {
	return &BlogPostResponse{
		ID:          b.ID,
		Title:       b.Title,
		Slug:        b.Slug,
		Body:        b.Body,
		CoverImage:  b.CoverImage,
		Author:      b.Author,
		Published:   b.Published,
		PublishedAt: b.PublishedAt,
		CreatedAt:   b.CreatedAt,
	}
}

// ToTeamMemberResponse maps a domain team member
func ToTeamMemberResponse(m *content.TeamMember) *TeamMemberResponse {
	return &TeamMemberResponse{
		ID:       m.ID,
		Name:     m.Name,
		Role:     m.Role,
		Bio:      m.Bio,
		PhotoURL: m.PhotoURL,
		Position: m.Position,
	}
}

// ToStoreResponse maps a domain store location
func ToStoreResponse(s *content.Store) *StoreResponse {
	return &StoreResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		City:    s.City,
		Phone:   s.Phone,
		MapURL:  s.MapURL,
		Hours:   s.Hours,
	}
}

// ToHeroImageResponse maps a domain hero image
func ToHeroImageResponse(h *content.HeroImage) *HeroImageResponse {
	return &HeroImageResponse{
		ID:       h.ID,
		ImageURL: h.ImageURL,
		Caption:  h.Caption,
		LinkURL:  h.LinkURL,
		Position: h.Position,
		Active:   h.Active,
	}
}

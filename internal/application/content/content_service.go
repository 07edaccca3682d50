package content

import (
	"context"

	"github.com/craftkart/backend/internal/domain/content"
	"github.com/craftkart/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Service manages storefront content: blog posts, team profiles, store
// locations and hero banners. Public reads only see published or active
// entries; the back office sees everything.
type Service struct {
	blogRepo  content.BlogRepository
	teamRepo  content.TeamRepository
	storeRepo content.StoreRepository
	heroRepo  content.HeroRepository
}

// NewService creates a new content Service
func NewService(
	blogRepo content.BlogRepository,
	teamRepo content.TeamRepository,
	storeRepo content.StoreRepository,
	heroRepo content.HeroRepository,
) *Service {
	return &Service{
		blogRepo:  blogRepo,
		teamRepo:  teamRepo,
		storeRepo: storeRepo,
		heroRepo:  heroRepo,
	}
}

// ============================================================
// Blog posts
// ============================================================

// ListPublishedPosts returns published posts for the storefront
func (s *Service) ListPublishedPosts(ctx context.Context, req ListBlogPostsRequest) (*shared.Paginated[BlogPostResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	filter.Filters["published"] = true

	return s.listPosts(ctx, filter)
}

// ListAllPosts returns every post, drafts included, for the back office
func (s *Service) ListAllPosts(ctx context.Context, req ListBlogPostsRequest) (*shared.Paginated[BlogPostResponse], error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}

	return s.listPosts(ctx, filter)
}

func (s *Service) listPosts(ctx context.Context, filter shared.Filter) (*shared.Paginated[BlogPostResponse], error) {
	posts, err := s.blogRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.blogRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]BlogPostResponse, 0, len(posts))
	for i := range posts {
		items = append(items, *ToBlogPostResponse(&posts[i]))
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// GetPublishedPost returns a published post by slug; drafts are invisible to
// the storefront
func (s *Service) GetPublishedPost(ctx context.Context, slug string) (*BlogPostResponse, error) {
	post, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, shared.ErrNotFound
	}
	return ToBlogPostResponse(post), nil
}

// GetPost returns any post by ID for the back office
func (s *Service) GetPost(ctx context.Context, postID uuid.UUID) (*BlogPostResponse, error) {
	post, err := s.blogRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return ToBlogPostResponse(post), nil
}

// CreatePost creates a draft blog post
func (s *Service) CreatePost(ctx context.Context, req CreateBlogPostRequest) (*BlogPostResponse, error) {
	existing, err := s.blogRepo.FindBySlug(ctx, req.Slug)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A post with this slug already exists")
	}

	post, err := content.NewBlogPost(req.Title, req.Slug, req.Body, req.Author)
	if err != nil {
		return nil, err
	}
	post.CoverImage = req.CoverImage

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return ToBlogPostResponse(post), nil
}

// UpdatePost edits a post's content; the slug is fixed at creation
func (s *Service) UpdatePost(ctx context.Context, postID uuid.UUID, req UpdateBlogPostRequest) (*BlogPostResponse, error) {
	post, err := s.blogRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Body = req.Body
	post.CoverImage = req.CoverImage
	post.Author = req.Author

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return ToBlogPostResponse(post), nil
}

// PublishPost makes a post publicly visible
func (s *Service) PublishPost(ctx context.Context, postID uuid.UUID) (*BlogPostResponse, error) {
	post, err := s.blogRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Publish()

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return ToBlogPostResponse(post), nil
}

// UnpublishPost hides a post from the storefront
func (s *Service) UnpublishPost(ctx context.Context, postID uuid.UUID) (*BlogPostResponse, error) {
	post, err := s.blogRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Unpublish()

	if err := s.blogRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return ToBlogPostResponse(post), nil
}

// DeletePost removes a post
func (s *Service) DeletePost(ctx context.Context, postID uuid.UUID) error {
	if _, err := s.blogRepo.FindByID(ctx, postID); err != nil {
		return err
	}
	return s.blogRepo.Delete(ctx, postID)
}

// ============================================================
// Team members
// ============================================================

// ListTeam returns the team profiles ordered by position
func (s *Service) ListTeam(ctx context.Context) ([]TeamMemberResponse, error) {
	members, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]TeamMemberResponse, 0, len(members))
	for i := range members {
		items = append(items, *ToTeamMemberResponse(&members[i]))
	}
	return items, nil
}

// CreateTeamMember adds a team profile
func (s *Service) CreateTeamMember(ctx context.Context, req TeamMemberRequest) (*TeamMemberResponse, error) {
	member, err := content.NewTeamMember(req.Name, req.Role, req.Bio, req.PhotoURL, req.Position)
	if err != nil {
		return nil, err
	}

	if err := s.teamRepo.Save(ctx, member); err != nil {
		return nil, err
	}
	return ToTeamMemberResponse(member), nil
}

// UpdateTeamMember edits a team profile
func (s *Service) UpdateTeamMember(ctx context.Context, memberID uuid.UUID, req TeamMemberRequest) (*TeamMemberResponse, error) {
	member, err := s.teamRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	member.Name = req.Name
	member.Role = req.Role
	member.Bio = req.Bio
	member.PhotoURL = req.PhotoURL
	member.Position = req.Position

	if err := s.teamRepo.Save(ctx, member); err != nil {
		return nil, err
	}
	return ToTeamMemberResponse(member), nil
}

// DeleteTeamMember removes a team profile
func (s *Service) DeleteTeamMember(ctx context.Context, memberID uuid.UUID) error {
	if _, err := s.teamRepo.FindByID(ctx, memberID); err != nil {
		return err
	}
	return s.teamRepo.Delete(ctx, memberID)
}

// ============================================================
// Store locations
// ============================================================

// ListStores returns all store locations
func (s *Service) ListStores(ctx context.Context) ([]StoreResponse, error) {
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		items = append(items, *ToStoreResponse(&stores[i]))
	}
	return items, nil
}

// CreateStore adds a store location
func (s *Service) CreateStore(ctx context.Context, req StoreRequest) (*StoreResponse, error) {
	store, err := content.NewStore(req.Name, req.Address, req.City, req.Phone)
	if err != nil {
		return nil, err
	}
	store.MapURL = req.MapURL
	store.Hours = req.Hours

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}
	return ToStoreResponse(store), nil
}

// UpdateStore edits a store location
func (s *Service) UpdateStore(ctx context.Context, storeID uuid.UUID, req StoreRequest) (*StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	store.Name = req.Name
	store.Address = req.Address
	store.City = req.City
	store.Phone = req.Phone
	store.MapURL = req.MapURL
	store.Hours = req.Hours

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}
	return ToStoreResponse(store), nil
}

// DeleteStore removes a store location
func (s *Service) DeleteStore(ctx context.Context, storeID uuid.UUID) error {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		return err
	}
	return s.storeRepo.Delete(ctx, storeID)
}

// ============================================================
// Hero images
// ============================================================

// ListActiveHeroImages returns the landing page banners in display order
func (s *Service) ListActiveHeroImages(ctx context.Context) ([]HeroImageResponse, error) {
	images, err := s.heroRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return toHeroResponses(images), nil
}

// ListAllHeroImages returns every banner, inactive included
func (s *Service) ListAllHeroImages(ctx context.Context) ([]HeroImageResponse, error) {
	images, err := s.heroRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toHeroResponses(images), nil
}

// CreateHeroImage adds a landing page banner
func (s *Service) CreateHeroImage(ctx context.Context, req HeroImageRequest) (*HeroImageResponse, error) {
	image, err := content.NewHeroImage(req.ImageURL, req.Caption, req.LinkURL, req.Position)
	if err != nil {
		return nil, err
	}
	if req.Active != nil {
		image.Active = *req.Active
	}

	if err := s.heroRepo.Save(ctx, image); err != nil {
		return nil, err
	}
	return ToHeroImageResponse(image), nil
}

// UpdateHeroImage edits a banner
func (s *Service) UpdateHeroImage(ctx context.Context, imageID uuid.UUID, req HeroImageRequest) (*HeroImageResponse, error) {
	image, err := s.heroRepo.FindByID(ctx, imageID)
	if err != nil {
		return nil, err
	}

	image.ImageURL = req.ImageURL
	image.Caption = req.Caption
	image.LinkURL = req.LinkURL
	image.Position = req.Position
	if req.Active != nil {
		image.Active = *req.Active
	}

	if err := s.heroRepo.Save(ctx, image); err != nil {
		return nil, err
	}
	return ToHeroImageResponse(image), nil
}

// DeleteHeroImage removes a banner
func (s *Service) DeleteHeroImage(ctx context.Context, imageID uuid.UUID) error {
	if _, err := s.heroRepo.FindByID(ctx, imageID); err != nil {
		return err
	}
	return s.heroRepo.Delete(ctx, imageID)
}

func toHeroResponses(images []content.HeroImage) []HeroImageResponse {
	items := make([]HeroImageResponse, 0, len(images))
	for i := range images {
		items = append(items, *ToHeroImageResponse(&images[i]))
	}
	return items
}

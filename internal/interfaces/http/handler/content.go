package handler

import (
	"github.com/craftkart/backend/internal/application/content"
	"github.com/craftkart/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the public marketing content and the
// back-office editors behind it.
type ContentHandler struct {
	BaseHandler
	contentService *content.Service
}

func NewContentHandler(contentService *content.Service) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// RegisterRoutes wires the content endpoints
func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	publicGroup := rg.Group("/content")
	{
		publicGroup.GET("/blog", h.ListPublishedPosts)
		publicGroup.GET("/blog/:slug", h.GetPublishedPost)
		publicGroup.GET("/team", h.ListTeam)
		publicGroup.GET("/stores", h.ListStores)
		publicGroup.GET("/hero-images", h.ListActiveHeroImages)
	}

	adminGroup := rg.Group("/admin/content", middleware.AdminRequired())
	{
		adminGroup.GET("/blog", h.ListAllPosts)
		adminGroup.GET("/blog/:id", h.GetPost)
		adminGroup.POST("/blog", h.CreatePost)
		adminGroup.PUT("/blog/:id", h.UpdatePost)
		adminGroup.POST("/blog/:id/publish", h.PublishPost)
		adminGroup.POST("/blog/:id/unpublish", h.UnpublishPost)
		adminGroup.DELETE("/blog/:id", h.DeletePost)

		adminGroup.POST("/team", h.CreateTeamMember)
		adminGroup.PUT("/team/:id", h.UpdateTeamMember)
		adminGroup.DELETE("/team/:id", h.DeleteTeamMember)

		adminGroup.POST("/stores", h.CreateStore)
		adminGroup.PUT("/stores/:id", h.UpdateStore)
		adminGroup.DELETE("/stores/:id", h.DeleteStore)

		adminGroup.GET("/hero-images", h.ListAllHeroImages)
		adminGroup.POST("/hero-images", h.CreateHeroImage)
		adminGroup.PUT("/hero-images/:id", h.UpdateHeroImage)
		adminGroup.DELETE("/hero-images/:id", h.DeleteHeroImage)
	}
}

func (h *ContentHandler) ListPublishedPosts(c *gin.Context) {
	var req content.ListBlogPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.contentService.ListPublishedPosts(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ContentHandler) GetPublishedPost(c *gin.Context) {
	post, err := h.contentService.GetPublishedPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, post)
}

func (h *ContentHandler) ListAllPosts(c *gin.Context) {
	var req content.ListBlogPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	result, err := h.contentService.ListAllPosts(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

func (h *ContentHandler) GetPost(c *gin.Context) {
	postID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.contentService.GetPost(c.Request.Context(), postID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, post)
}

func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req content.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	post, err := h.contentService.CreatePost(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, post)
}

func (h *ContentHandler) UpdatePost(c *gin.Context) {
	postID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req content.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	post, err := h.contentService.UpdatePost(c.Request.Context(), postID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, post)
}

func (h *ContentHandler) PublishPost(c *gin.Context) {
	postID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.contentService.PublishPost(c.Request.Context(), postID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, post)
}

func (h *ContentHandler) UnpublishPost(c *gin.Context) {
	postID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.contentService.UnpublishPost(c.Request.Context(), postID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, post)
}

func (h *ContentHandler) DeletePost(c *gin.Context) {
	postID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeletePost(c.Request.Context(), postID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ContentHandler) ListTeam(c *gin.Context) {
	team, err := h.contentService.ListTeam(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, team)
}

func (h *ContentHandler) CreateTeamMember(c *gin.Context) {
	var req content.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	member, err := h.contentService.CreateTeamMember(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, member)
}

func (h *ContentHandler) UpdateTeamMember(c *gin.Context) {
	memberID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req content.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	member, err := h.contentService.UpdateTeamMember(c.Request.Context(), memberID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, member)
}

func (h *ContentHandler) DeleteTeamMember(c *gin.Context) {
	memberID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteTeamMember(c.Request.Context(), memberID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ContentHandler) ListStores(c *gin.Context) {
	stores, err := h.contentService.ListStores(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, stores)
}

func (h *ContentHandler) CreateStore(c *gin.Context) {
	var req content.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	store, err := h.contentService.CreateStore(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, store)
}

func (h *ContentHandler) UpdateStore(c *gin.Context) {
	storeID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req content.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	store, err := h.contentService.UpdateStore(c.Request.Context(), storeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, store)
}

func (h *ContentHandler) DeleteStore(c *gin.Context) {
	storeID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteStore(c.Request.Context(), storeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *ContentHandler) ListActiveHeroImages(c *gin.Context) {
	images, err := h.contentService.ListActiveHeroImages(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, images)
}

func (h *ContentHandler) ListAllHeroImages(c *gin.Context) {
	images, err := h.contentService.ListAllHeroImages(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, images)
}

func (h *ContentHandler) CreateHeroImage(c *gin.Context) {
	var req content.HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	image, err := h.contentService.CreateHeroImage(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, image)
}

func (h *ContentHandler) UpdateHeroImage(c *gin.Context) {
	imageID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	var req content.HeroImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	image, err := h.contentService.UpdateHeroImage(c.Request.Context(), imageID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, image)
}

func (h *ContentHandler) DeleteHeroImage(c *gin.Context) {
	imageID, ok := h.UUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.contentService.DeleteHeroImage(c.Request.Context(), imageID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

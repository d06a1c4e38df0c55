package handlers

import (
	"errors"
	"fmt"
	"log"

	"monacowatch/internal/models"
	"monacowatch/internal/repositories"
	"monacowatch/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service *services.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService) *BlogHandler {
	return &BlogHandler{
		service: service,
	}
}

// RegisterRoutes registers the blog routes with the Fiber app.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/blogs", h.HandleListPosts)
	router.Get("/blogs/:slug", h.HandleGetPostBySlug)
}

// HandleListPosts lists blog posts for a locale.
func (h *BlogHandler) HandleListPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultBlogLimit)
	if limit < minLimit || limit > maxLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "limit must be between 1 and 50",
		})
	}
	locale := c.Query("locale", "en")

	posts, err := h.service.ListPosts(locale, limit)
	if err != nil {
		// Read list endpoints degrade to empty output rather than failing.
		log.Printf("Error listing blog posts: %v", err)
		return c.JSON([]models.BlogPostOut{})
	}
	return c.JSON(posts)
}

// HandleGetPostBySlug retrieves a single blog post by slug and locale.
func (h *BlogHandler) HandleGetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	locale := c.Query("locale", "en")

	post, err := h.service.GetPostBySlug(slug, locale)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Blog post %q not found", slug),
			})
		}
		log.Printf("Error getting blog post %q (%s): %v", slug, locale, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve blog post",
		})
	}
	return c.JSON(post)
}

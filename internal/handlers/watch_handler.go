package handlers

import (
	"log"
	"strconv"

	"monacowatch/internal/models"
	"monacowatch/internal/services"

	"github.com/gofiber/fiber/v2"
)

const (
	minLimit          = 1
	maxLimit          = 50
	defaultWatchLimit = 12
	defaultBlogLimit  = 6
)

// WatchHandler handles HTTP requests for the watch catalog.
type WatchHandler struct {
	service *services.CatalogService
}

// NewWatchHandler creates a new WatchHandler.
func NewWatchHandler(service *services.CatalogService) *WatchHandler {
	return &WatchHandler{
		service: service,
	}
}

// RegisterRoutes registers the watch routes with the Fiber app.
func (h *WatchHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/watches", h.HandleListWatches)
}

// HandleListWatches lists watches, optionally filtering to featured only.
func (h *WatchHandler) HandleListWatches(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultWatchLimit)
	if limit < minLimit || limit > maxLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "limit must be between 1 and 50",
		})
	}

	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "featured must be a boolean",
			})
		}
		featured = &value
	}

	watches, err := h.service.ListWatches(featured, limit)
	if err != nil {
		// Read list endpoints degrade to empty output rather than failing.
		log.Printf("Error listing watches: %v", err)
		return c.JSON([]models.WatchOut{})
	}
	return c.JSON(watches)
}

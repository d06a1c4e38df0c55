package handlers

import (
	"log"

	"monacowatch/internal/services"
	"monacowatch/pkg/mongostore"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// SystemHandler handles the liveness, diagnostics, and seeding endpoints.
type SystemHandler struct {
	store      *mongostore.Client
	seeder     *services.SeedService
	instanceID string
}

// NewSystemHandler creates a new SystemHandler. The store may be nil when
// the process runs without a database.
func NewSystemHandler(store *mongostore.Client, seeder *services.SeedService) *SystemHandler {
	return &SystemHandler{
		store:      store,
		seeder:     seeder,
		instanceID: uuid.New().String(),
	}
}

// RegisterRoutes registers the root and diagnostics routes with the app and
// the seed route with the API router.
func (h *SystemHandler) RegisterRoutes(app fiber.Router, api fiber.Router) {
	app.Get("/", h.HandleRoot)
	app.Get("/test", h.HandleDiagnostics)
	api.Post("/seed", h.HandleSeed)
}

// HandleRoot is the liveness endpoint.
func (h *SystemHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Monaco Watch Company Backend Running",
	})
}

// HandleDiagnostics reports store reachability, configured environment
// variables, and collection names. Introspection only.
func (h *SystemHandler) HandleDiagnostics(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "running",
		"instance_id":       h.instanceID,
		"database":          "not available",
		"connection_status": "not connected",
		"database_name":     "",
		"collections":       []string{},
	}

	response["database_url_set"] = viper.GetString("DATABASE_URL") != ""
	response["database_name_set"] = viper.GetString("DATABASE_NAME") != ""

	if h.store != nil {
		response["database_name"] = h.store.DatabaseName()
		if err := h.store.Ping(c.Context()); err != nil {
			response["database"] = "configured but unreachable"
		} else {
			response["database"] = "connected"
			response["connection_status"] = "connected"
			if names, err := h.store.CollectionNames(c.Context()); err == nil {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
			}
		}
	}

	return c.JSON(response)
}

// HandleSeed force-reseeds both collections with the demo fixtures.
func (h *SystemHandler) HandleSeed(c *fiber.Ctx) error {
	if err := h.seeder.SeedAll(true); err != nil {
		log.Printf("Error force-seeding demo data: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not seed demo data",
		})
	}
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

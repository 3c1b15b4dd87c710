// Package v1 exposes the player progress store over HTTP for the
// browser client.
package v1

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vjstudio/career-api/internal/errors"
	"github.com/vjstudio/career-api/internal/orchestrators/progress"
)

// Config holds the dependencies for the HTTP handler
type Config struct {
	ProgressService progress.Service
	CORSOrigins     string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProgressService == nil {
		vb.RequiredField("ProgressService")
	}

	return vb.Build()
}

// Handler serves the game API routes
type Handler struct {
	progressService progress.Service
	corsOrigins     string
}

// NewHandler creates a new API handler with the given configuration
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		progressService: cfg.ProgressService,
		corsOrigins:     cfg.CORSOrigins,
	}, nil
}

// NewApp builds a fiber application with the handler's routes and
// middleware mounted.
func (h *Handler) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	app.Use(recover.New())

	if h.corsOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: h.corsOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		}))
	}

	h.RegisterRoutes(app)
	return app
}

// RegisterRoutes mounts all API routes on the given app
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", h.Liveness)

	v1 := app.Group("/api/v1")

	// Player state
	v1.Get("/player", h.GetPlayer)
	v1.Post("/player/reset", h.ResetPlayer)
	v1.Post("/player/experience", h.AddExperience)
	v1.Post("/player/reputation", h.AddReputation)
	v1.Post("/player/money", h.AddMoney)
	v1.Post("/player/money/spend", h.SpendMoney)
	v1.Post("/player/energy/consume", h.ConsumeEnergy)
	v1.Post("/player/energy/restore", h.RestoreEnergy)
	v1.Post("/player/position", h.SetPosition)
	v1.Post("/player/position/move", h.MoveBy)
	v1.Post("/player/unlock", h.UnlockContent)

	// Equipment and inventory
	v1.Post("/player/equipment/equip", h.EquipItem)
	v1.Post("/player/equipment/unequip", h.UnequipItem)
	v1.Post("/player/inventory/add", h.AddToInventory)
	v1.Post("/player/inventory/remove", h.RemoveFromInventory)
	v1.Get("/equipment", h.AvailableEquipment)
	v1.Post("/equipment/:id/purchase", h.PurchaseEquipment)

	// Skills and achievements
	v1.Get("/skills/progress", h.SkillProgress)
	v1.Post("/skills/:id/upgrade", h.UpgradeSkill)
	v1.Get("/achievements/stats", h.AchievementStats)
	v1.Post("/achievements/check", h.CheckAchievements)

	// Saves
	v1.Get("/saves", h.ListSaves)
	v1.Post("/saves/:slot", h.SaveGame)
	v1.Post("/saves/:slot/load", h.LoadGame)
	v1.Delete("/saves/:slot", h.DeleteSave)
	v1.Put("/autosave", h.SetAutoSave)

	// Export and import
	v1.Get("/export", h.ExportPlayerData)
	v1.Post("/import", h.ImportPlayerData)

	// Session
	v1.Post("/session/start", h.StartSession)
	v1.Post("/session/playtime", h.UpdatePlaytime)
	v1.Get("/session/duration", h.SessionDuration)
}

// Liveness handles GET /healthz
func (h *Handler) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// errorHandler maps coded errors onto HTTP statuses so handlers can
// just return them.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := err.Error()

	if fiberErr, ok := err.(*fiber.Error); ok {
		status = fiberErr.Code
	} else {
		code := errors.GetCode(err)
		status = code.HTTPStatus()
		message = errors.GetMessage(err)
	}

	if status == fiber.StatusInternalServerError {
		slog.Error("unhandled api error",
			"path", c.Path(),
			"method", c.Method(),
			"error", err.Error(),
		)
		message = "internal error"
	}

	return c.Status(status).JSON(ErrorResponse{
		Error:  message,
		Status: status,
	})
}

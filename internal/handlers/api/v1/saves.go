package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vjstudio/career-api/internal/errors"
	"github.com/vjstudio/career-api/internal/orchestrators/progress"
)

// ListSaves handles GET /api/v1/saves
func (h *Handler) ListSaves(c *fiber.Ctx) error {
	out, err := h.progressService.ListSaves(c.Context(), &progress.ListSavesInput{})
	if err != nil {
		return err
	}
	return c.JSON(SavesResponse{Slots: out.Slots[:]})
}

// SaveGame handles POST /api/v1/saves/:slot
func (h *Handler) SaveGame(c *fiber.Ctx) error {
	slot, err := c.ParamsInt("slot")
	if err != nil {
		return errors.InvalidArgument("slot must be a number")
	}

	var req SaveRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return errors.InvalidArgument("invalid request body")
		}
	}

	if _, err := h.progressService.SaveGame(c.Context(), &progress.SaveGameInput{
		Slot: slot,
		Name: req.Name,
	}); err != nil {
		return err
	}

	return c.JSON(ActionResponse{Success: true})
}

// LoadGame handles POST /api/v1/saves/:slot/load
func (h *Handler) LoadGame(c *fiber.Ctx) error {
	slot, err := c.ParamsInt("slot")
	if err != nil {
		return errors.InvalidArgument("slot must be a number")
	}

	out, err := h.progressService.LoadGame(c.Context(), &progress.LoadGameInput{Slot: slot})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// DeleteSave handles DELETE /api/v1/saves/:slot
func (h *Handler) DeleteSave(c *fiber.Ctx) error {
	slot, err := c.ParamsInt("slot")
	if err != nil {
		return errors.InvalidArgument("slot must be a number")
	}

	out, err := h.progressService.DeleteSave(c.Context(), &progress.DeleteSaveInput{Slot: slot})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success})
}

// SetAutoSave handles PUT /api/v1/autosave
func (h *Handler) SetAutoSave(c *fiber.Ctx) error {
	var req AutoSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.SetAutoSave(c.Context(), &progress.SetAutoSaveInput{Enabled: req.Enabled})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// ExportPlayerData handles GET /api/v1/export
func (h *Handler) ExportPlayerData(c *fiber.Ctx) error {
	out, err := h.progressService.ExportPlayerData(c.Context(), &progress.ExportPlayerDataInput{})
	if err != nil {
		return err
	}
	return c.JSON(ExportResponse{Data: out.Data})
}

// ImportPlayerData handles POST /api/v1/import
func (h *Handler) ImportPlayerData(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	if req.Data == "" {
		return errors.InvalidArgument("data is required")
	}

	out, err := h.progressService.ImportPlayerData(c.Context(), &progress.ImportPlayerDataInput{Data: req.Data})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// StartSession handles POST /api/v1/session/start
func (h *Handler) StartSession(c *fiber.Ctx) error {
	out, err := h.progressService.StartSession(c.Context(), &progress.StartSessionInput{})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// UpdatePlaytime handles POST /api/v1/session/playtime
func (h *Handler) UpdatePlaytime(c *fiber.Ctx) error {
	out, err := h.progressService.UpdatePlaytime(c.Context(), &progress.UpdatePlaytimeInput{})
	if err != nil {
		return err
	}
	return c.JSON(PlaytimeResponse{TotalPlaytime: out.TotalPlaytime})
}

// SessionDuration handles GET /api/v1/session/duration
func (h *Handler) SessionDuration(c *fiber.Ctx) error {
	out, err := h.progressService.SessionDuration(c.Context(), &progress.SessionDurationInput{})
	if err != nil {
		return err
	}
	return c.JSON(SessionDurationResponse{Seconds: out.Seconds})
}

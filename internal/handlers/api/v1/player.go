package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vjstudio/career-api/internal/entities/player"
	"github.com/vjstudio/career-api/internal/errors"
	"github.com/vjstudio/career-api/internal/orchestrators/progress"
)

// GetPlayer handles GET /api/v1/player
func (h *Handler) GetPlayer(c *fiber.Ctx) error {
	out, err := h.progressService.GetSnapshot(c.Context(), &progress.GetSnapshotInput{})
	if err != nil {
		return err
	}
	return c.JSON(SnapshotResponse{Snapshot: out.Snapshot})
}

// ResetPlayer handles POST /api/v1/player/reset
func (h *Handler) ResetPlayer(c *fiber.Ctx) error {
	out, err := h.progressService.ResetPlayer(c.Context(), &progress.ResetPlayerInput{})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// AddExperience handles POST /api/v1/player/experience
func (h *Handler) AddExperience(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.AddExperience(c.Context(), &progress.AddExperienceInput{Amount: req.Amount})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// AddReputation handles POST /api/v1/player/reputation
func (h *Handler) AddReputation(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.AddReputation(c.Context(), &progress.AddReputationInput{Amount: req.Amount})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// AddMoney handles POST /api/v1/player/money
func (h *Handler) AddMoney(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.AddMoney(c.Context(), &progress.AddMoneyInput{Amount: req.Amount})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// SpendMoney handles POST /api/v1/player/money/spend
func (h *Handler) SpendMoney(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.SpendMoney(c.Context(), &progress.SpendMoneyInput{Amount: req.Amount})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// ConsumeEnergy handles POST /api/v1/player/energy/consume
func (h *Handler) ConsumeEnergy(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.ConsumeEnergy(c.Context(), &progress.ConsumeEnergyInput{Amount: req.Amount})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// RestoreEnergy handles POST /api/v1/player/energy/restore
func (h *Handler) RestoreEnergy(c *fiber.Ctx) error {
	var req AmountRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.RestoreEnergy(c.Context(), &progress.RestoreEnergyInput{Amount: req.Amount})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// SetPosition handles POST /api/v1/player/position
func (h *Handler) SetPosition(c *fiber.Ctx) error {
	var req PositionRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.SetPosition(c.Context(), &progress.SetPositionInput{
		X:     req.X,
		Y:     req.Y,
		Scene: req.Scene,
	})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// MoveBy handles POST /api/v1/player/position/move
func (h *Handler) MoveBy(c *fiber.Ctx) error {
	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.MoveBy(c.Context(), &progress.MoveByInput{DX: req.DX, DY: req.DY})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// UnlockContent handles POST /api/v1/player/unlock
func (h *Handler) UnlockContent(c *fiber.Ctx) error {
	var req UnlockRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	if req.ContentID == "" {
		return errors.InvalidArgument("contentId is required")
	}

	out, err := h.progressService.UnlockContent(c.Context(), &progress.UnlockContentInput{ContentID: req.ContentID})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// EquipItem handles POST /api/v1/player/equipment/equip
func (h *Handler) EquipItem(c *fiber.Ctx) error {
	var req EquipRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	if req.ItemID == "" {
		return errors.InvalidArgument("itemId is required")
	}

	out, err := h.progressService.EquipItem(c.Context(), &progress.EquipItemInput{
		Slot:   player.Slot(req.Slot),
		ItemID: req.ItemID,
	})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// UnequipItem handles POST /api/v1/player/equipment/unequip
func (h *Handler) UnequipItem(c *fiber.Ctx) error {
	var req UnequipRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}

	out, err := h.progressService.UnequipItem(c.Context(), &progress.UnequipItemInput{Slot: player.Slot(req.Slot)})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// AddToInventory handles POST /api/v1/player/inventory/add
func (h *Handler) AddToInventory(c *fiber.Ctx) error {
	var req InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	if req.ItemID == "" {
		return errors.InvalidArgument("itemId is required")
	}

	out, err := h.progressService.AddToInventory(c.Context(), &progress.AddToInventoryInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: true, Snapshot: out.Snapshot})
}

// RemoveFromInventory handles POST /api/v1/player/inventory/remove
func (h *Handler) RemoveFromInventory(c *fiber.Ctx) error {
	var req InventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	if req.ItemID == "" {
		return errors.InvalidArgument("itemId is required")
	}

	out, err := h.progressService.RemoveFromInventory(c.Context(), &progress.RemoveFromInventoryInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// AvailableEquipment handles GET /api/v1/equipment
func (h *Handler) AvailableEquipment(c *fiber.Ctx) error {
	out, err := h.progressService.AvailableEquipment(c.Context(), &progress.AvailableEquipmentInput{})
	if err != nil {
		return err
	}
	return c.JSON(CatalogResponse{Items: out.Items})
}

// PurchaseEquipment handles POST /api/v1/equipment/:id/purchase
func (h *Handler) PurchaseEquipment(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return errors.InvalidArgument("item id is required")
	}

	out, err := h.progressService.PurchaseEquipment(c.Context(), &progress.PurchaseEquipmentInput{ItemID: itemID})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Snapshot: out.Snapshot})
}

// UpgradeSkill handles POST /api/v1/skills/:id/upgrade
func (h *Handler) UpgradeSkill(c *fiber.Ctx) error {
	skillID := c.Params("id")
	if skillID == "" {
		return errors.InvalidArgument("skill id is required")
	}

	out, err := h.progressService.UpgradeSkill(c.Context(), &progress.UpgradeSkillInput{
		SkillID: player.SkillID(skillID),
	})
	if err != nil {
		return err
	}
	return c.JSON(ActionResponse{Success: out.Success, Reason: out.Reason, Snapshot: out.Snapshot})
}

// SkillProgress handles GET /api/v1/skills/progress
func (h *Handler) SkillProgress(c *fiber.Ctx) error {
	out, err := h.progressService.SkillProgress(c.Context(), &progress.SkillProgressInput{})
	if err != nil {
		return err
	}
	return c.JSON(SkillProgressResponse{Progress: out.Progress})
}

// CheckAchievements handles POST /api/v1/achievements/check
func (h *Handler) CheckAchievements(c *fiber.Ctx) error {
	out, err := h.progressService.CheckAchievements(c.Context(), &progress.CheckAchievementsInput{})
	if err != nil {
		return err
	}

	unlocked := out.Unlocked
	if unlocked == nil {
		unlocked = []string{}
	}
	return c.JSON(CheckAchievementsResponse{Unlocked: unlocked, Snapshot: out.Snapshot})
}

// AchievementStats handles GET /api/v1/achievements/stats
func (h *Handler) AchievementStats(c *fiber.Ctx) error {
	out, err := h.progressService.AchievementStats(c.Context(), &progress.AchievementStatsInput{})
	if err != nil {
		return err
	}
	return c.JSON(AchievementStatsResponse{Stats: out.Stats})
}

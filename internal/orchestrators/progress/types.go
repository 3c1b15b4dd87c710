package progress

import (
	"github.com/vjstudio/career-api/internal/entities/player"
	"github.com/vjstudio/career-api/internal/repositories/save"
	"github.com/vjstudio/career-api/internal/rules/achievement"
	"github.com/vjstudio/career-api/internal/rules/equipment"
	"github.com/vjstudio/career-api/internal/rules/skill"
)

// Snapshot is the plain, serializable view of the player entity plus the
// store's own state. It is derived from the entity after every action;
// the entity stays the source of truth.
type Snapshot struct {
	PlayerID         string                 `json:"playerId"`
	Stats            player.Stats           `json:"stats"`
	Skills           map[player.SkillID]int `json:"skills"`
	Equipment        player.Equipment       `json:"equipment"`
	Position         player.Position        `json:"position"`
	Inventory        map[string]int         `json:"inventory"`
	Achievements     []string               `json:"achievements"`
	UnlockedContent  []string               `json:"unlockedContent"`
	AutoSaveEnabled  bool                   `json:"autoSaveEnabled"`
	SessionStartTime int64                  `json:"sessionStartTime"` // epoch ms
	TotalPlaytime    int64                  `json:"totalPlaytime"`    // seconds
}

// SlotMeta is the save-slot index view: a record without its payload.
type SlotMeta struct {
	Name      string `json:"name,omitempty"`
	Playtime  int64  `json:"playtime"`
	Timestamp int64  `json:"timestamp"`
}

// ExportEnvelope is the versioned wrapper for export/import of player data.
type ExportEnvelope struct {
	Version       string `json:"version"`
	PlayerData    string `json:"playerData"`
	TotalPlaytime int64  `json:"totalPlaytime"`
	ExportedAt    int64  `json:"exportedAt"` // epoch ms
}

// ExportVersion is the envelope version this store writes.
const ExportVersion = "1.0"

// GetSnapshotInput defines the request for reading the current snapshot
type GetSnapshotInput struct{}

// GetSnapshotOutput defines the response for reading the current snapshot
type GetSnapshotOutput struct {
	Snapshot *Snapshot
}

// AddExperienceInput defines the request for adding experience
type AddExperienceInput struct {
	Amount int
}

// AddExperienceOutput defines the response for adding experience
type AddExperienceOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// AddReputationInput defines the request for adjusting reputation
type AddReputationInput struct {
	Amount int
}

// AddReputationOutput defines the response for adjusting reputation
type AddReputationOutput struct {
	Snapshot *Snapshot
}

// AddMoneyInput defines the request for adding money
type AddMoneyInput struct {
	Amount int
}

// AddMoneyOutput defines the response for adding money
type AddMoneyOutput struct {
	Snapshot *Snapshot
}

// SpendMoneyInput defines the request for spending money
type SpendMoneyInput struct {
	Amount int
}

// SpendMoneyOutput defines the response for spending money
type SpendMoneyOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// ConsumeEnergyInput defines the request for consuming energy
type ConsumeEnergyInput struct {
	Amount int
}

// ConsumeEnergyOutput defines the response for consuming energy
type ConsumeEnergyOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// RestoreEnergyInput defines the request for restoring energy
type RestoreEnergyInput struct {
	Amount int
}

// RestoreEnergyOutput defines the response for restoring energy
type RestoreEnergyOutput struct {
	Snapshot *Snapshot
}

// EquipItemInput defines the request for equipping an item
type EquipItemInput struct {
	Slot   player.Slot
	ItemID string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// UnequipItemInput defines the request for clearing a slot
type UnequipItemInput struct {
	Slot player.Slot
}

// UnequipItemOutput defines the response for clearing a slot
type UnequipItemOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// AddToInventoryInput defines the request for adding inventory items
type AddToInventoryInput struct {
	ItemID   string
	Quantity int
}

// AddToInventoryOutput defines the response for adding inventory items
type AddToInventoryOutput struct {
	Snapshot *Snapshot
}

// RemoveFromInventoryInput defines the request for removing inventory items
type RemoveFromInventoryInput struct {
	ItemID   string
	Quantity int
}

// RemoveFromInventoryOutput defines the response for removing inventory items
type RemoveFromInventoryOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// SetPositionInput defines the request for moving the player.
// An empty Scene retains the current scene.
type SetPositionInput struct {
	X     float64
	Y     float64
	Scene string
}

// SetPositionOutput defines the response for moving the player
type SetPositionOutput struct {
	Snapshot *Snapshot
}

// MoveByInput defines the request for a relative move
type MoveByInput struct {
	DX float64
	DY float64
}

// MoveByOutput defines the response for a relative move
type MoveByOutput struct {
	Snapshot *Snapshot
}

// UnlockContentInput defines the request for unlocking content
type UnlockContentInput struct {
	ContentID string
}

// UnlockContentOutput defines the response for unlocking content
type UnlockContentOutput struct {
	Snapshot *Snapshot
}

// UpgradeSkillInput defines the request for upgrading a skill
type UpgradeSkillInput struct {
	SkillID player.SkillID
}

// UpgradeSkillOutput defines the response for upgrading a skill.
// Reason is set when the upgrade was rejected.
type UpgradeSkillOutput struct {
	Success  bool
	Reason   string
	Snapshot *Snapshot
}

// SkillProgressInput defines the request for the skill progress view
type SkillProgressInput struct{}

// SkillProgressOutput defines the response for the skill progress view
type SkillProgressOutput struct {
	Progress map[player.SkillID]skill.Progress
}

// PurchaseEquipmentInput defines the request for purchasing equipment
type PurchaseEquipmentInput struct {
	ItemID string
}

// PurchaseEquipmentOutput defines the response for purchasing equipment
type PurchaseEquipmentOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// AvailableEquipmentInput defines the request for the equipment catalog
type AvailableEquipmentInput struct{}

// AvailableEquipmentOutput defines the response for the equipment catalog
type AvailableEquipmentOutput struct {
	Items []equipment.Item
}

// CheckAchievementsInput defines the request for an achievement check
type CheckAchievementsInput struct{}

// CheckAchievementsOutput defines the response for an achievement check
type CheckAchievementsOutput struct {
	Unlocked []string
	Snapshot *Snapshot
}

// AchievementStatsInput defines the request for achievement stats
type AchievementStatsInput struct{}

// AchievementStatsOutput defines the response for achievement stats
type AchievementStatsOutput struct {
	Stats achievement.Stats
}

// SaveGameInput defines the request for writing a save slot
type SaveGameInput struct {
	Slot int
	Name string
}

// SaveGameOutput defines the response for writing a save slot
type SaveGameOutput struct {
	Record *save.Record
}

// LoadGameInput defines the request for loading a save slot
type LoadGameInput struct {
	Slot int
}

// LoadGameOutput defines the response for loading a save slot.
// Success is false when the slot is empty or its record is malformed.
type LoadGameOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// DeleteSaveInput defines the request for deleting a save slot
type DeleteSaveInput struct {
	Slot int
}

// DeleteSaveOutput defines the response for deleting a save slot.
// Success is false for the reserved autosave slot.
type DeleteSaveOutput struct {
	Success bool
}

// ListSavesInput defines the request for the save-slot index
type ListSavesInput struct{}

// ListSavesOutput defines the response for the save-slot index
type ListSavesOutput struct {
	Slots [save.UserSlotCount]*SlotMeta
}

// SetAutoSaveInput defines the request for toggling autosave
type SetAutoSaveInput struct {
	Enabled bool
}

// SetAutoSaveOutput defines the response for toggling autosave
type SetAutoSaveOutput struct {
	Snapshot *Snapshot
}

// ExportPlayerDataInput defines the request for exporting player data
type ExportPlayerDataInput struct{}

// ExportPlayerDataOutput defines the response for exporting player data
type ExportPlayerDataOutput struct {
	Data string
}

// ImportPlayerDataInput defines the request for importing player data
type ImportPlayerDataInput struct {
	Data string
}

// ImportPlayerDataOutput defines the response for importing player data.
// Success is false for malformed envelopes; state is left untouched.
type ImportPlayerDataOutput struct {
	Success  bool
	Snapshot *Snapshot
}

// StartSessionInput defines the request for starting a session
type StartSessionInput struct{}

// StartSessionOutput defines the response for starting a session
type StartSessionOutput struct {
	Snapshot *Snapshot
}

// UpdatePlaytimeInput defines the request for folding session time into
// total playtime
type UpdatePlaytimeInput struct{}

// UpdatePlaytimeOutput defines the response for updating playtime
type UpdatePlaytimeOutput struct {
	TotalPlaytime int64
	Snapshot      *Snapshot
}

// SessionDurationInput defines the request for the current session length
type SessionDurationInput struct{}

// SessionDurationOutput defines the response for the current session length
type SessionDurationOutput struct {
	Seconds int64
}

// ResetPlayerInput defines the request for resetting the player
type ResetPlayerInput struct{}

// ResetPlayerOutput defines the response for resetting the player
type ResetPlayerOutput struct {
	Snapshot *Snapshot
}

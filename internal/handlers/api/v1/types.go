package v1

import (
	"github.com/vjstudio/career-api/internal/entities/player"
	"github.com/vjstudio/career-api/internal/orchestrators/progress"
	"github.com/vjstudio/career-api/internal/rules/achievement"
	"github.com/vjstudio/career-api/internal/rules/equipment"
	"github.com/vjstudio/career-api/internal/rules/skill"
)

// ErrorResponse is the JSON body for failed requests
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// AmountRequest carries a single integer amount
type AmountRequest struct {
	Amount int `json:"amount"`
}

// PositionRequest carries an absolute position update.
// An empty scene keeps the current one.
type PositionRequest struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scene string  `json:"scene,omitempty"`
}

// MoveRequest carries a relative position delta
type MoveRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// EquipRequest names a slot and the item to put in it
type EquipRequest struct {
	Slot   string `json:"slot"`
	ItemID string `json:"itemId"`
}

// UnequipRequest names the slot to clear
type UnequipRequest struct {
	Slot string `json:"slot"`
}

// InventoryRequest names an item and quantity. Quantity defaults to 1.
type InventoryRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity,omitempty"`
}

// UnlockRequest names the content to unlock
type UnlockRequest struct {
	ContentID string `json:"contentId"`
}

// SaveRequest carries the optional display name for a save slot
type SaveRequest struct {
	Name string `json:"name,omitempty"`
}

// AutoSaveRequest toggles the autosave flag
type AutoSaveRequest struct {
	Enabled bool `json:"enabled"`
}

// ImportRequest carries a previously exported envelope
type ImportRequest struct {
	Data string `json:"data"`
}

// SnapshotResponse is the body for plain state reads
type SnapshotResponse struct {
	Snapshot *progress.Snapshot `json:"snapshot"`
}

// ActionResponse is the body for state-changing actions. Success is
// false for domain rejections; Reason says why when the action has one.
type ActionResponse struct {
	Success  bool               `json:"success"`
	Reason   string             `json:"reason,omitempty"`
	Snapshot *progress.Snapshot `json:"snapshot,omitempty"`
}

// CatalogResponse lists the purchasable equipment
type CatalogResponse struct {
	Items []equipment.Item `json:"items"`
}

// SkillProgressResponse maps each skill to its progress view
type SkillProgressResponse struct {
	Progress map[player.SkillID]skill.Progress `json:"progress"`
}

// AchievementStatsResponse wraps the aggregate achievement stats
type AchievementStatsResponse struct {
	Stats achievement.Stats `json:"stats"`
}

// CheckAchievementsResponse lists newly unlocked achievements
type CheckAchievementsResponse struct {
	Unlocked []string           `json:"unlocked"`
	Snapshot *progress.Snapshot `json:"snapshot"`
}

// SavesResponse is the save-slot index. Index 0 is user slot 1.
type SavesResponse struct {
	Slots []*progress.SlotMeta `json:"slots"`
}

// ExportResponse carries the export envelope as an opaque string
type ExportResponse struct {
	Data string `json:"data"`
}

// PlaytimeResponse reports accumulated playtime in seconds
type PlaytimeResponse struct {
	TotalPlaytime int64 `json:"totalPlaytime"`
}

// SessionDurationResponse reports the current session length in seconds
type SessionDurationResponse struct {
	Seconds int64 `json:"seconds"`
}

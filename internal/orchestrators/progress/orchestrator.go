// Package progress implements the player progress store: a single shared
// state container that owns one player entity, consults the rules
// services, and carries the save/load/import/export and session concerns.
package progress

//go:generate mockgen -destination=mock/mock_service.go -package=progressmock github.com/vjstudio/career-api/internal/orchestrators/progress Service

import (
	"context"
	"sync"
	"time"

	"github.com/vjstudio/career-api/internal/entities/player"
	"github.com/vjstudio/career-api/internal/errors"
	"github.com/vjstudio/career-api/internal/pkg/clock"
	"github.com/vjstudio/career-api/internal/pkg/idgen"
	"github.com/vjstudio/career-api/internal/repositories/save"
	"github.com/vjstudio/career-api/internal/rules/achievement"
	"github.com/vjstudio/career-api/internal/rules/equipment"
	"github.com/vjstudio/career-api/internal/rules/skill"
)

// Service defines the interface for the player progress store. Every
// mutating action returns a snapshot derived from the entity in the same
// step, so snapshot and entity never diverge as observed by callers.
type Service interface {
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// Stats
	AddExperience(ctx context.Context, input *AddExperienceInput) (*AddExperienceOutput, error)
	AddReputation(ctx context.Context, input *AddReputationInput) (*AddReputationOutput, error)
	AddMoney(ctx context.Context, input *AddMoneyInput) (*AddMoneyOutput, error)
	SpendMoney(ctx context.Context, input *SpendMoneyInput) (*SpendMoneyOutput, error)
	ConsumeEnergy(ctx context.Context, input *ConsumeEnergyInput) (*ConsumeEnergyOutput, error)
	RestoreEnergy(ctx context.Context, input *RestoreEnergyInput) (*RestoreEnergyOutput, error)

	// Equipment and inventory
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	AddToInventory(ctx context.Context, input *AddToInventoryInput) (*AddToInventoryOutput, error)
	RemoveFromInventory(ctx context.Context, input *RemoveFromInventoryInput) (*RemoveFromInventoryOutput, error)
	PurchaseEquipment(ctx context.Context, input *PurchaseEquipmentInput) (*PurchaseEquipmentOutput, error)
	AvailableEquipment(ctx context.Context, input *AvailableEquipmentInput) (*AvailableEquipmentOutput, error)

	// Position and content
	SetPosition(ctx context.Context, input *SetPositionInput) (*SetPositionOutput, error)
	MoveBy(ctx context.Context, input *MoveByInput) (*MoveByOutput, error)
	UnlockContent(ctx context.Context, input *UnlockContentInput) (*UnlockContentOutput, error)

	// Skills and achievements
	UpgradeSkill(ctx context.Context, input *UpgradeSkillInput) (*UpgradeSkillOutput, error)
	SkillProgress(ctx context.Context, input *SkillProgressInput) (*SkillProgressOutput, error)
	CheckAchievements(ctx context.Context, input *CheckAchievementsInput) (*CheckAchievementsOutput, error)
	AchievementStats(ctx context.Context, input *AchievementStatsInput) (*AchievementStatsOutput, error)

	// Persistence
	SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error)
	LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error)
	DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error)
	ListSaves(ctx context.Context, input *ListSavesInput) (*ListSavesOutput, error)
	SetAutoSave(ctx context.Context, input *SetAutoSaveInput) (*SetAutoSaveOutput, error)
	ExportPlayerData(ctx context.Context, input *ExportPlayerDataInput) (*ExportPlayerDataOutput, error)
	ImportPlayerData(ctx context.Context, input *ImportPlayerDataInput) (*ImportPlayerDataOutput, error)
	ResetPlayer(ctx context.Context, input *ResetPlayerInput) (*ResetPlayerOutput, error)

	// Session tracking
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	UpdatePlaytime(ctx context.Context, input *UpdatePlaytimeInput) (*UpdatePlaytimeOutput, error)
	SessionDuration(ctx context.Context, input *SessionDurationInput) (*SessionDurationOutput, error)
}

// Config holds the dependencies for the progress store
type Config struct {
	SaveRepo           save.Repository
	SkillService       skill.Service
	EquipmentService   equipment.Service
	AchievementService achievement.Service
	Clock              clock.Clock
	IDGenerator        idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}
	if c.SkillService == nil {
		vb.RequiredField("SkillService")
	}
	if c.EquipmentService == nil {
		vb.RequiredField("EquipmentService")
	}
	if c.AchievementService == nil {
		vb.RequiredField("AchievementService")
	}

	return vb.Build()
}

type orchestrator struct {
	// mu makes every action atomic; no action observes a
	// partially-applied mutation from another.
	mu sync.Mutex

	player       *player.Player
	saveRepo     save.Repository
	skills       skill.Service
	equipment    equipment.Service
	achievements achievement.Service
	clock        clock.Clock
	idGen        idgen.Generator

	autoSave      bool
	sessionStart  time.Time
	playtimeMark  time.Time
	totalPlaytime int64 // seconds
}

// NewOrchestrator creates a progress store owning a fresh player entity.
// The session starts at construction time.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("player")
	}

	now := c.Now()
	return &orchestrator{
		player:       player.New(gen.Generate()),
		saveRepo:     cfg.SaveRepo,
		skills:       cfg.SkillService,
		equipment:    cfg.EquipmentService,
		achievements: cfg.AchievementService,
		clock:        c,
		idGen:        gen,
		autoSave:     true,
		sessionStart: now,
		playtimeMark: now,
	}, nil
}

// snapshotLocked derives the read view from the entity. All collections
// are fresh copies; callers can hold the snapshot without aliasing store
// state. Callers must hold mu.
func (o *orchestrator) snapshotLocked() *Snapshot {
	p := o.player.Clone()
	return &Snapshot{
		PlayerID:         p.ID,
		Stats:            p.Stats,
		Skills:           p.Skills,
		Equipment:        p.Equipment,
		Position:         p.Position,
		Inventory:        p.Inventory,
		Achievements:     p.Achievements,
		UnlockedContent:  p.Unlocked,
		AutoSaveEnabled:  o.autoSave,
		SessionStartTime: o.sessionStart.UnixMilli(),
		TotalPlaytime:    o.totalPlaytime,
	}
}

func (o *orchestrator) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetSnapshotOutput{Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) AddExperience(ctx context.Context, input *AddExperienceInput) (*AddExperienceOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ok := o.player.AddExperience(input.Amount)
	return &AddExperienceOutput{Success: ok, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) AddReputation(ctx context.Context, input *AddReputationInput) (*AddReputationOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.player.AddReputation(input.Amount)
	return &AddReputationOutput{Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) AddMoney(ctx context.Context, input *AddMoneyInput) (*AddMoneyOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.player.AddMoney(input.Amount)
	return &AddMoneyOutput{Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) SpendMoney(ctx context.Context, input *SpendMoneyInput) (*SpendMoneyOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ok := o.player.SpendMoney(input.Amount)
	return &SpendMoneyOutput{Success: ok, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) ConsumeEnergy(ctx context.Context, input *ConsumeEnergyInput) (*ConsumeEnergyOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ok := o.player.ConsumeEnergy(input.Amount)
	return &ConsumeEnergyOutput{Success: ok, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) RestoreEnergy(ctx context.Context, input *RestoreEnergyInput) (*RestoreEnergyOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.player.RestoreEnergy(input.Amount)
	return &RestoreEnergyOutput{Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ok := o.player.EquipItem(input.Slot, input.ItemID)
	return &EquipItemOutput{Success: ok, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ok := o.player.UnequipItem(input.Slot)
	return &UnequipItemOutput{Success: ok, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) AddToInventory(ctx context.Context, input *AddToInventoryInput) (*AddToInventoryOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	o.player.AddToInventory(input.ItemID, qty)
	return &AddToInventoryOutput{Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) RemoveFromInventory(ctx context.Context, input *RemoveFromInventoryInput) (*RemoveFromInventoryOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	qty := input.Quantity
	if qty == 0 {
		qty = 1
	}
	ok := o.player.RemoveFromInventory(input.ItemID, qty)
	return &RemoveFromInventoryOutput{Success: ok, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) PurchaseEquipment(ctx context.Context, input *PurchaseEquipmentInput) (*PurchaseEquipmentOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ok := o.equipment.PurchaseEquipment(o.player, input.ItemID)
	return &PurchaseEquipmentOutput{Success: ok, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) AvailableEquipment(ctx context.Context, input *AvailableEquipmentInput) (*AvailableEquipmentOutput, error) {
	return &AvailableEquipmentOutput{Items: o.equipment.AvailableEquipment()}, nil
}

func (o *orchestrator) SetPosition(ctx context.Context, input *SetPositionInput) (*SetPositionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.player.SetPosition(input.X, input.Y, input.Scene)
	return &SetPositionOutput{Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) MoveBy(ctx context.Context, input *MoveByInput) (*MoveByOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.player.MoveBy(input.DX, input.DY)
	return &MoveByOutput{Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) UnlockContent(ctx context.Context, input *UnlockContentInput) (*UnlockContentOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.player.UnlockContent(input.ContentID)
	return &UnlockContentOutput{Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) UpgradeSkill(ctx context.Context, input *UpgradeSkillInput) (*UpgradeSkillOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	elig := o.skills.CanUpgradeSkill(o.player, input.SkillID)
	if !elig.CanUpgrade {
		return &UpgradeSkillOutput{Reason: elig.Reason, Snapshot: o.snapshotLocked()}, nil
	}

	ok := o.skills.UpgradeSkill(o.player, input.SkillID)
	return &UpgradeSkillOutput{Success: ok, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) SkillProgress(ctx context.Context, input *SkillProgressInput) (*SkillProgressOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &SkillProgressOutput{Progress: o.skills.SkillProgress(o.player)}, nil
}

func (o *orchestrator) CheckAchievements(ctx context.Context, input *CheckAchievementsInput) (*CheckAchievementsOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	unlocked := o.achievements.CheckAchievements(o.player)
	return &CheckAchievementsOutput{Unlocked: unlocked, Snapshot: o.snapshotLocked()}, nil
}

func (o *orchestrator) AchievementStats(ctx context.Context, input *AchievementStatsInput) (*AchievementStatsOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &AchievementStatsOutput{Stats: o.achievements.AchievementStats(o.player)}, nil
}

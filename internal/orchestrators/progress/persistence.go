package progress

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/vjstudio/career-api/internal/entities/player"
	"github.com/vjstudio/career-api/internal/errors"
	"github.com/vjstudio/career-api/internal/repositories/save"
)

// SaveGame serializes the player entity and writes it to the given slot.
// Storage failures propagate as errors; a silently dropped save would be
// a data-loss risk.
func (o *orchestrator) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !save.ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}

	data, err := o.player.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize player")
	}

	record := &save.Record{
		Name:       input.Name,
		PlayerData: string(data),
		Playtime:   o.totalPlaytime,
		Timestamp:  o.clock.Now().UnixMilli(),
	}

	if _, err := o.saveRepo.Put(ctx, save.PutInput{Slot: input.Slot, Record: record}); err != nil {
		return nil, errors.Wrapf(err, "failed to save game to slot %d", input.Slot)
	}

	slog.InfoContext(ctx, "game saved",
		"player_id", o.player.ID,
		"slot", input.Slot,
		"name", input.Name,
	)

	return &SaveGameOutput{Record: record}, nil
}

// LoadGame replaces the player entity from a slot. Empty or malformed
// slots report Success=false and leave the store untouched.
func (o *orchestrator) LoadGame(ctx context.Context, input *LoadGameInput) (*LoadGameOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !save.ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}

	getOutput, err := o.saveRepo.Get(ctx, save.GetInput{Slot: input.Slot})
	if err != nil {
		if errors.IsNotFound(err) || errors.IsDataLoss(err) {
			slog.WarnContext(ctx, "load failed, slot empty or corrupt",
				"slot", input.Slot,
				"error", err.Error())
			return &LoadGameOutput{Success: false, Snapshot: o.snapshotLocked()}, nil
		}
		return nil, errors.Wrapf(err, "failed to load game from slot %d", input.Slot)
	}

	loaded := player.New(o.player.ID)
	if err := loaded.Unmarshal([]byte(getOutput.Record.PlayerData)); err != nil {
		slog.WarnContext(ctx, "load failed, player data is malformed",
			"slot", input.Slot,
			"error", err.Error())
		return &LoadGameOutput{Success: false, Snapshot: o.snapshotLocked()}, nil
	}

	o.player = loaded
	o.totalPlaytime = getOutput.Record.Playtime
	o.playtimeMark = o.clock.Now()

	slog.InfoContext(ctx, "game loaded",
		"player_id", o.player.ID,
		"slot", input.Slot,
		"playtime", o.totalPlaytime,
	)

	return &LoadGameOutput{Success: true, Snapshot: o.snapshotLocked()}, nil
}

// DeleteSave removes a user save slot. The autosave slot is not
// user-deletable and is rejected without touching storage.
func (o *orchestrator) DeleteSave(ctx context.Context, input *DeleteSaveInput) (*DeleteSaveOutput, error) {
	if input.Slot == save.AutosaveSlot {
		return &DeleteSaveOutput{Success: false}, nil
	}
	if !save.ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}

	if _, err := o.saveRepo.Delete(ctx, save.DeleteInput{Slot: input.Slot}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete save slot %d", input.Slot)
	}

	return &DeleteSaveOutput{Success: true}, nil
}

// ListSaves returns the user-slot index view without the save payloads.
func (o *orchestrator) ListSaves(ctx context.Context, input *ListSavesInput) (*ListSavesOutput, error) {
	listOutput, err := o.saveRepo.List(ctx, save.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saves")
	}

	out := &ListSavesOutput{}
	for i, record := range listOutput.Slots {
		if record == nil {
			continue
		}
		out.Slots[i] = &SlotMeta{
			Name:      record.Name,
			Playtime:  record.Playtime,
			Timestamp: record.Timestamp,
		}
	}
	return out, nil
}

// SetAutoSave toggles the autosave flag. Scheduling the periodic save is
// the caller's concern.
func (o *orchestrator) SetAutoSave(ctx context.Context, input *SetAutoSaveInput) (*SetAutoSaveOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.autoSave = input.Enabled
	return &SetAutoSaveOutput{Snapshot: o.snapshotLocked()}, nil
}

// ExportPlayerData wraps the serialized entity in a versioned envelope.
func (o *orchestrator) ExportPlayerData(ctx context.Context, input *ExportPlayerDataInput) (*ExportPlayerDataOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := o.player.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize player")
	}

	envelope := ExportEnvelope{
		Version:       ExportVersion,
		PlayerData:    string(data),
		TotalPlaytime: o.totalPlaytime,
		ExportedAt:    o.clock.Now().UnixMilli(),
	}

	encoded, err := json.Marshal(envelope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode export envelope")
	}

	return &ExportPlayerDataOutput{Data: string(encoded)}, nil
}

// ImportPlayerData replaces the player entity and total playtime from an
// export envelope. Malformed input reports Success=false without
// mutating anything.
func (o *orchestrator) ImportPlayerData(ctx context.Context, input *ImportPlayerDataInput) (*ImportPlayerDataOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var envelope ExportEnvelope
	if err := json.Unmarshal([]byte(input.Data), &envelope); err != nil {
		slog.WarnContext(ctx, "import failed, envelope is malformed",
			"error", err.Error())
		return &ImportPlayerDataOutput{Success: false, Snapshot: o.snapshotLocked()}, nil
	}

	imported := player.New(o.player.ID)
	if err := imported.Unmarshal([]byte(envelope.PlayerData)); err != nil {
		slog.WarnContext(ctx, "import failed, player data is malformed",
			"error", err.Error())
		return &ImportPlayerDataOutput{Success: false, Snapshot: o.snapshotLocked()}, nil
	}

	o.player = imported
	o.totalPlaytime = envelope.TotalPlaytime
	o.playtimeMark = o.clock.Now()

	slog.InfoContext(ctx, "player data imported",
		"player_id", o.player.ID,
		"version", envelope.Version,
		"playtime", o.totalPlaytime,
	)

	return &ImportPlayerDataOutput{Success: true, Snapshot: o.snapshotLocked()}, nil
}

// ResetPlayer replaces the entity with a fresh one under a new id and
// resets session state. Saved slots are untouched.
func (o *orchestrator) ResetPlayer(ctx context.Context, input *ResetPlayerInput) (*ResetPlayerOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.clock.Now()
	o.player = player.New(o.idGen.Generate())
	o.autoSave = true
	o.totalPlaytime = 0
	o.sessionStart = now
	o.playtimeMark = now

	slog.InfoContext(ctx, "player reset", "player_id", o.player.ID)

	return &ResetPlayerOutput{Snapshot: o.snapshotLocked()}, nil
}

// StartSession resets the session start to now.
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.clock.Now()
	o.sessionStart = now
	o.playtimeMark = now
	return &StartSessionOutput{Snapshot: o.snapshotLocked()}, nil
}

// UpdatePlaytime folds the seconds elapsed since the last update (or the
// session start) into total playtime.
func (o *orchestrator) UpdatePlaytime(ctx context.Context, input *UpdatePlaytimeInput) (*UpdatePlaytimeOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	now := o.clock.Now()
	elapsed := int64(now.Sub(o.playtimeMark).Seconds())
	if elapsed > 0 {
		o.totalPlaytime += elapsed
		o.playtimeMark = now
	}

	return &UpdatePlaytimeOutput{TotalPlaytime: o.totalPlaytime, Snapshot: o.snapshotLocked()}, nil
}

// SessionDuration reports the seconds since the session started.
func (o *orchestrator) SessionDuration(ctx context.Context, input *SessionDurationInput) (*SessionDurationOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &SessionDurationOutput{
		Seconds: int64(o.clock.Now().Sub(o.sessionStart).Seconds()),
	}, nil
}

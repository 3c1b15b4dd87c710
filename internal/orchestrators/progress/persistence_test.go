package progress

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vjstudio/career-api/internal/errors"
	mockclock "github.com/vjstudio/career-api/internal/pkg/clock/mock"
	"github.com/vjstudio/career-api/internal/pkg/idgen"
	"github.com/vjstudio/career-api/internal/repositories/save"
	savemock "github.com/vjstudio/career-api/internal/repositories/save/mock"
	"github.com/vjstudio/career-api/internal/rules/achievement"
	"github.com/vjstudio/career-api/internal/rules/equipment"
	"github.com/vjstudio/career-api/internal/rules/skill"
)

func TestSaveGame_WritesRecord(t *testing.T) {
	svc, repo := newTestStore(t)
	ctx := context.Background()

	_, err := svc.AddMoney(ctx, &AddMoneyInput{Amount: 300})
	require.NoError(t, err)

	out, err := svc.SaveGame(ctx, &SaveGameInput{Slot: 1, Name: "Test Save"})
	require.NoError(t, err)
	assert.Equal(t, "Test Save", out.Record.Name)

	got, err := repo.Get(ctx, save.GetInput{Slot: 1})
	require.NoError(t, err)
	assert.Equal(t, "Test Save", got.Record.Name)
	assert.Contains(t, got.Record.PlayerData, `"money":300`)
}

func TestSaveGame_InvalidSlot(t *testing.T) {
	svc, _ := newTestStore(t)

	_, err := svc.SaveGame(context.Background(), &SaveGameInput{Slot: 6})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadGame_RoundTrip(t *testing.T) {
	svc, _ := newTestStore(t)
	ctx := context.Background()

	_, err := svc.AddMoney(ctx, &AddMoneyInput{Amount: 750})
	require.NoError(t, err)
	_, err = svc.SaveGame(ctx, &SaveGameInput{Slot: 2, Name: "checkpoint"})
	require.NoError(t, err)

	_, err = svc.SpendMoney(ctx, &SpendMoneyInput{Amount: 500})
	require.NoError(t, err)

	loadOut, err := svc.LoadGame(ctx, &LoadGameInput{Slot: 2})
	require.NoError(t, err)
	assert.True(t, loadOut.Success)
	assert.Equal(t, 750, loadOut.Snapshot.Stats.Money)
}

func TestLoadGame_EmptySlot(t *testing.T) {
	svc, _ := newTestStore(t)
	ctx := context.Background()

	_, err := svc.AddMoney(ctx, &AddMoneyInput{Amount: 42})
	require.NoError(t, err)

	out, err := svc.LoadGame(ctx, &LoadGameInput{Slot: 3})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, 42, out.Snapshot.Stats.Money)
}

func TestLoadGame_CorruptRecord(t *testing.T) {
	svc, repo := newTestStore(t)
	ctx := context.Background()

	_, err := repo.Put(ctx, save.PutInput{Slot: 1, Record: &save.Record{PlayerData: "{not json"}})
	require.NoError(t, err)

	out, err := svc.LoadGame(ctx, &LoadGameInput{Slot: 1})
	require.NoError(t, err)
	assert.False(t, out.Success)
}

func TestDeleteSave_AutosaveProtected(t *testing.T) {
	svc, repo := newTestStore(t)
	ctx := context.Background()

	_, err := svc.SaveGame(ctx, &SaveGameInput{Slot: save.AutosaveSlot})
	require.NoError(t, err)
	_, err = svc.SaveGame(ctx, &SaveGameInput{Slot: 1, Name: "user save"})
	require.NoError(t, err)

	out, err := svc.DeleteSave(ctx, &DeleteSaveInput{Slot: 0})
	require.NoError(t, err)
	assert.False(t, out.Success)

	_, err = repo.Get(ctx, save.GetInput{Slot: save.AutosaveSlot})
	require.NoError(t, err)

	out, err = svc.DeleteSave(ctx, &DeleteSaveInput{Slot: 1})
	require.NoError(t, err)
	assert.True(t, out.Success)

	_, err = repo.Get(ctx, save.GetInput{Slot: 1})
	assert.True(t, errors.IsNotFound(err))
}

func TestListSaves_Meta(t *testing.T) {
	svc, _ := newTestStore(t)
	ctx := context.Background()

	_, err := svc.SaveGame(ctx, &SaveGameInput{Slot: 4, Name: "late game"})
	require.NoError(t, err)

	out, err := svc.ListSaves(ctx, &ListSavesInput{})
	require.NoError(t, err)

	require.NotNil(t, out.Slots[3])
	assert.Equal(t, "late game", out.Slots[3].Name)
	assert.Nil(t, out.Slots[0])
}

func TestExportImport_RoundTrip(t *testing.T) {
	svc, _ := newTestStore(t)
	ctx := context.Background()

	_, err := svc.AddMoney(ctx, &AddMoneyInput{Amount: 1234})
	require.NoError(t, err)

	exportOut, err := svc.ExportPlayerData(ctx, &ExportPlayerDataInput{})
	require.NoError(t, err)

	var envelope ExportEnvelope
	require.NoError(t, json.Unmarshal([]byte(exportOut.Data), &envelope))
	assert.Equal(t, ExportVersion, envelope.Version)

	_, err = svc.ResetPlayer(ctx, &ResetPlayerInput{})
	require.NoError(t, err)

	importOut, err := svc.ImportPlayerData(ctx, &ImportPlayerDataInput{Data: exportOut.Data})
	require.NoError(t, err)
	assert.True(t, importOut.Success)
	assert.Equal(t, 1234, importOut.Snapshot.Stats.Money)
}

func TestImportPlayerData_MalformedLeavesStateUntouched(t *testing.T) {
	svc, _ := newTestStore(t)
	ctx := context.Background()

	_, err := svc.AddMoney(ctx, &AddMoneyInput{Amount: 55})
	require.NoError(t, err)

	out, err := svc.ImportPlayerData(ctx, &ImportPlayerDataInput{Data: "invalid json"})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, 55, out.Snapshot.Stats.Money)
	assert.Equal(t, int64(0), out.Snapshot.TotalPlaytime)
}

func TestImportPlayerData_RestoresPlaytime(t *testing.T) {
	svc, _ := newTestStore(t)
	ctx := context.Background()

	envelope := ExportEnvelope{
		Version:       ExportVersion,
		PlayerData:    `{"id":"player-9","stats":{"money":10}}`,
		TotalPlaytime: 7200,
	}
	data, err := json.Marshal(envelope)
	require.NoError(t, err)

	out, err := svc.ImportPlayerData(ctx, &ImportPlayerDataInput{Data: string(data)})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, int64(7200), out.Snapshot.TotalPlaytime)
	assert.Equal(t, 10, out.Snapshot.Stats.Money)
}

func TestSaveGame_BackendFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := savemock.NewMockRepository(ctrl)

	svc, err := NewOrchestrator(&Config{
		SaveRepo:           mockRepo,
		SkillService:       skill.New(),
		EquipmentService:   equipment.New(),
		AchievementService: achievement.New(),
		IDGenerator:        idgen.NewSequential("player"),
	})
	require.NoError(t, err)

	mockRepo.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis is down"))

	_, err = svc.SaveGame(context.Background(), &SaveGameInput{Slot: 1})
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}

func TestPlaytimeTracking(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := mockclock.NewMockClock(ctrl)
	base := time.UnixMilli(1700000000000)

	// Construction pins the session start
	mockClock.EXPECT().Now().Return(base)

	svc, err := NewOrchestrator(&Config{
		SaveRepo:           save.NewInMemory(),
		SkillService:       skill.New(),
		EquipmentService:   equipment.New(),
		AchievementService: achievement.New(),
		Clock:              mockClock,
		IDGenerator:        idgen.NewSequential("player"),
	})
	require.NoError(t, err)
	ctx := context.Background()

	mockClock.EXPECT().Now().Return(base.Add(90 * time.Second))
	out, err := svc.UpdatePlaytime(ctx, &UpdatePlaytimeInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(90), out.TotalPlaytime)

	// Elapsed time counts from the last update, not the session start
	mockClock.EXPECT().Now().Return(base.Add(150 * time.Second))
	out, err = svc.UpdatePlaytime(ctx, &UpdatePlaytimeInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(150), out.TotalPlaytime)

	mockClock.EXPECT().Now().Return(base.Add(200 * time.Second))
	durOut, err := svc.SessionDuration(ctx, &SessionDurationInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(200), durOut.Seconds)
}

func TestStartSession_ResetsClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClock := mockclock.NewMockClock(ctrl)
	base := time.UnixMilli(1700000000000)

	mockClock.EXPECT().Now().Return(base)

	svc, err := NewOrchestrator(&Config{
		SaveRepo:           save.NewInMemory(),
		SkillService:       skill.New(),
		EquipmentService:   equipment.New(),
		AchievementService: achievement.New(),
		Clock:              mockClock,
		IDGenerator:        idgen.NewSequential("player"),
	})
	require.NoError(t, err)
	ctx := context.Background()

	mockClock.EXPECT().Now().Return(base.Add(300 * time.Second))
	_, err = svc.StartSession(ctx, &StartSessionInput{})
	require.NoError(t, err)

	mockClock.EXPECT().Now().Return(base.Add(310 * time.Second))
	durOut, err := svc.SessionDuration(ctx, &SessionDurationInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), durOut.Seconds)
}

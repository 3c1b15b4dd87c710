package save_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjstudio/career-api/internal/errors"
	"github.com/vjstudio/career-api/internal/repositories/save"
	"github.com/vjstudio/career-api/internal/testutils"
)

func newRedisRepo(t *testing.T) (save.Repository, func()) {
	client, cleanup := testutils.CreateTestRedisClient(t)

	repo, err := save.NewRedis(&save.RedisConfig{Client: client})
	require.NoError(t, err)

	return repo, cleanup
}

func TestRedisRepository_PutGet(t *testing.T) {
	repo, cleanup := newRedisRepo(t)
	defer cleanup()
	ctx := context.Background()

	record := &save.Record{
		Name:       "Test Save",
		PlayerData: `{"id":"player-1"}`,
		Playtime:   3600,
		Timestamp:  1700000000000,
	}

	_, err := repo.Put(ctx, save.PutInput{Slot: 1, Record: record})
	require.NoError(t, err)

	got, err := repo.Get(ctx, save.GetInput{Slot: 1})
	require.NoError(t, err)
	assert.Equal(t, record, got.Record)
}

func TestRedisRepository_KeyLayout(t *testing.T) {
	var mr *miniredis.Miniredis
	client, cleanup := testutils.CreateTestRedisClientWithData(t, func(m *miniredis.Miniredis) {
		mr = m
	})
	defer cleanup()

	repo, err := save.NewRedis(&save.RedisConfig{Client: client})
	require.NoError(t, err)

	ctx := context.Background()
	record := &save.Record{PlayerData: "{}", Playtime: 1, Timestamp: 2}

	_, err = repo.Put(ctx, save.PutInput{Slot: 0, Record: record})
	require.NoError(t, err)
	_, err = repo.Put(ctx, save.PutInput{Slot: 3, Record: record})
	require.NoError(t, err)

	assert.True(t, mr.Exists("vj-game-autosave"))
	assert.True(t, mr.Exists("vj-game-save-3"))
}

func TestRedisRepository_GetEmptySlot(t *testing.T) {
	repo, cleanup := newRedisRepo(t)
	defer cleanup()

	_, err := repo.Get(context.Background(), save.GetInput{Slot: 2})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestRedisRepository_GetCorruptRecord(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClientWithData(t, func(mr *miniredis.Miniredis) {
		require.NoError(t, mr.Set("vj-game-save-1", "{not json"))
	})
	defer cleanup()

	repo, err := save.NewRedis(&save.RedisConfig{Client: client})
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), save.GetInput{Slot: 1})
	require.Error(t, err)
	assert.True(t, errors.IsDataLoss(err))
}

func TestRedisRepository_Delete(t *testing.T) {
	repo, cleanup := newRedisRepo(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.Put(ctx, save.PutInput{Slot: 4, Record: &save.Record{PlayerData: "{}"}})
	require.NoError(t, err)

	out, err := repo.Delete(ctx, save.DeleteInput{Slot: 4})
	require.NoError(t, err)
	assert.True(t, out.Existed)

	// Deleting an empty slot is not an error
	out, err = repo.Delete(ctx, save.DeleteInput{Slot: 4})
	require.NoError(t, err)
	assert.False(t, out.Existed)
}

func TestRedisRepository_List(t *testing.T) {
	repo, cleanup := newRedisRepo(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.Put(ctx, save.PutInput{Slot: 2, Record: &save.Record{Name: "two", PlayerData: "{}"}})
	require.NoError(t, err)
	_, err = repo.Put(ctx, save.PutInput{Slot: 5, Record: &save.Record{Name: "five", PlayerData: "{}"}})
	require.NoError(t, err)

	// Autosave never shows up in the user slot index
	_, err = repo.Put(ctx, save.PutInput{Slot: 0, Record: &save.Record{Name: "auto", PlayerData: "{}"}})
	require.NoError(t, err)

	out, err := repo.List(ctx, save.ListInput{})
	require.NoError(t, err)

	assert.Nil(t, out.Slots[0])
	require.NotNil(t, out.Slots[1])
	assert.Equal(t, "two", out.Slots[1].Name)
	assert.Nil(t, out.Slots[2])
	assert.Nil(t, out.Slots[3])
	require.NotNil(t, out.Slots[4])
	assert.Equal(t, "five", out.Slots[4].Name)
}

func TestRedisRepository_SlotValidation(t *testing.T) {
	repo, cleanup := newRedisRepo(t)
	defer cleanup()
	ctx := context.Background()

	for _, slot := range []int{-1, 6, 42} {
		_, err := repo.Get(ctx, save.GetInput{Slot: slot})
		assert.True(t, errors.IsInvalidArgument(err), "slot %d", slot)

		_, err = repo.Put(ctx, save.PutInput{Slot: slot, Record: &save.Record{}})
		assert.True(t, errors.IsInvalidArgument(err), "slot %d", slot)

		_, err = repo.Delete(ctx, save.DeleteInput{Slot: slot})
		assert.True(t, errors.IsInvalidArgument(err), "slot %d", slot)
	}

	_, err := repo.Put(ctx, save.PutInput{Slot: 1, Record: nil})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestInMemoryRepository_MatchesRedisBehavior(t *testing.T) {
	ctx := context.Background()
	repo := save.NewInMemory()

	record := &save.Record{Name: "mem", PlayerData: "{}", Playtime: 7}
	_, err := repo.Put(ctx, save.PutInput{Slot: 1, Record: record})
	require.NoError(t, err)

	got, err := repo.Get(ctx, save.GetInput{Slot: 1})
	require.NoError(t, err)
	assert.Equal(t, record, got.Record)

	// Stored copy is isolated from the caller's record
	record.Name = "changed"
	got, err = repo.Get(ctx, save.GetInput{Slot: 1})
	require.NoError(t, err)
	assert.Equal(t, "mem", got.Record.Name)

	_, err = repo.Get(ctx, save.GetInput{Slot: 2})
	assert.True(t, errors.IsNotFound(err))

	out, err := repo.Delete(ctx, save.DeleteInput{Slot: 1})
	require.NoError(t, err)
	assert.True(t, out.Existed)

	listOut, err := repo.List(ctx, save.ListInput{})
	require.NoError(t, err)
	for i, slot := range listOut.Slots {
		assert.Nil(t, slot, "slot index %d", i)
	}
}

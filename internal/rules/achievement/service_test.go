package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjstudio/career-api/internal/entities/player"
)

func TestCheckAchievements_UnlocksOnCondition(t *testing.T) {
	svc := New()
	p := player.New("player-1")

	// Fresh players have earned nothing
	assert.Empty(t, svc.CheckAchievements(p))

	p.AddReputation(10)
	p.AddMoney(1000)

	unlocked := svc.CheckAchievements(p)
	assert.ElementsMatch(t, []string{"first-gig", "funded"}, unlocked)
	assert.True(t, p.HasAchievement("first-gig"))
	assert.True(t, p.HasAchievement("funded"))
}

func TestCheckAchievements_Idempotent(t *testing.T) {
	svc := New()
	p := player.New("player-1")
	p.AddReputation(50)

	first := svc.CheckAchievements(p)
	require.NotEmpty(t, first)

	// No intervening progress: nothing new
	assert.Empty(t, svc.CheckAchievements(p))
}

func TestCheckAchievements_FullRig(t *testing.T) {
	svc := New()
	p := player.New("player-1")

	p.EquipItem(player.SlotProjector, "hd-projector")
	assert.NotContains(t, svc.CheckAchievements(p), "full-rig")

	p.EquipItem(player.SlotController, "midi-pad")
	assert.Contains(t, svc.CheckAchievements(p), "full-rig")
}

func TestAchievementStats(t *testing.T) {
	svc := New()
	p := player.New("player-1")

	empty := svc.AchievementStats(p)
	assert.Equal(t, len(svc.Achievements()), empty.Total)
	assert.Equal(t, 0, empty.Unlocked)
	assert.Equal(t, 0, empty.EarnedPoints)
	assert.Positive(t, empty.TotalPoints)

	p.AddReputation(10)
	svc.CheckAchievements(p)

	stats := svc.AchievementStats(p)
	assert.Equal(t, 1, stats.Unlocked)
	assert.Equal(t, 10, stats.EarnedPoints)
	assert.InDelta(t, float64(1)/float64(stats.Total)*100, stats.CompletionPercentage, 0.001)
}

func TestAchievement_Lookup(t *testing.T) {
	svc := New()

	def, ok := svc.Achievement("virtuoso")
	require.True(t, ok)
	assert.Equal(t, "Virtuoso", def.Name)
	assert.Equal(t, 25, def.Points)

	_, ok = svc.Achievement("missing")
	assert.False(t, ok)
}

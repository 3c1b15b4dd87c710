package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjstudio/career-api/internal/errors"
)

func TestNew_Defaults(t *testing.T) {
	p := New("player-1")

	assert.Equal(t, "player-1", p.ID)
	assert.Equal(t, 1, p.Stats.Level)
	assert.Equal(t, 0, p.Stats.Money)
	assert.Equal(t, 100, p.Stats.Energy)
	assert.Equal(t, 100, p.Stats.MaxEnergy)
	assert.Equal(t, StarterComputer, p.EquippedItem(SlotComputer))
	assert.Equal(t, "", p.EquippedItem(SlotProjector))
	assert.Equal(t, DefaultScene, p.Position.Scene)

	for _, s := range SkillIDs() {
		assert.Equal(t, 1, p.SkillLevel(s), "skill %s should start at 1", s)
	}
}

func TestAddExperience_LevelUp(t *testing.T) {
	p := New("player-1")

	// Under threshold: no level change
	require.True(t, p.AddExperience(50))
	assert.Equal(t, 1, p.Stats.Level)
	assert.Equal(t, 50, p.Stats.Experience)

	// Crossing 100 levels up, carries the remainder, grows the threshold by 3/2
	require.True(t, p.AddExperience(75))
	assert.Equal(t, 2, p.Stats.Level)
	assert.Equal(t, 25, p.Stats.Experience)
	assert.Equal(t, 150, p.Stats.ExperienceToNext)
}

func TestAddExperience_MultipleLevels(t *testing.T) {
	p := New("player-1")

	// 100 + 150 = 250 crosses two thresholds exactly
	require.True(t, p.AddExperience(250))
	assert.Equal(t, 3, p.Stats.Level)
	assert.Equal(t, 0, p.Stats.Experience)
	assert.Equal(t, 225, p.Stats.ExperienceToNext)
}

func TestAddExperience_NegativeRejected(t *testing.T) {
	p := New("player-1")

	assert.False(t, p.AddExperience(-10))
	assert.Equal(t, 0, p.Stats.Experience)
}

func TestMoney(t *testing.T) {
	p := New("player-1")

	p.AddMoney(100)
	assert.Equal(t, 100, p.Stats.Money)

	assert.True(t, p.SpendMoney(50))
	assert.Equal(t, 50, p.Stats.Money)

	// Overspend fails without mutation
	assert.False(t, p.SpendMoney(100))
	assert.Equal(t, 50, p.Stats.Money)

	// Negative amounts are no-ops
	p.AddMoney(-20)
	assert.Equal(t, 50, p.Stats.Money)
	assert.False(t, p.SpendMoney(-1))
}

func TestEnergy(t *testing.T) {
	p := New("player-1")

	assert.True(t, p.ConsumeEnergy(90))
	assert.Equal(t, 10, p.Stats.Energy)

	assert.False(t, p.ConsumeEnergy(20))
	assert.Equal(t, 10, p.Stats.Energy)

	// Restore clamps at max
	p.RestoreEnergy(500)
	assert.Equal(t, p.Stats.MaxEnergy, p.Stats.Energy)
}

func TestEnergyBounds_Sequence(t *testing.T) {
	p := New("player-1")

	ops := []struct {
		consume bool
		amount  int
	}{
		{true, 30}, {false, 10}, {true, 100}, {false, 200}, {true, 100}, {true, 1},
	}

	for _, op := range ops {
		if op.consume {
			p.ConsumeEnergy(op.amount)
		} else {
			p.RestoreEnergy(op.amount)
		}
		assert.GreaterOrEqual(t, p.Stats.Energy, 0)
		assert.LessOrEqual(t, p.Stats.Energy, p.Stats.MaxEnergy)
	}
}

func TestEquipment(t *testing.T) {
	p := New("player-1")

	assert.True(t, p.EquipItem(SlotProjector, "hd-projector"))
	assert.Equal(t, "hd-projector", p.EquippedItem(SlotProjector))

	// Unknown slot is rejected without mutation
	assert.False(t, p.EquipItem(Slot("backpack"), "thing"))
	assert.False(t, p.UnequipItem(Slot("backpack")))

	assert.True(t, p.UnequipItem(SlotProjector))
	assert.Equal(t, "", p.EquippedItem(SlotProjector))
}

func TestSoftwareAndAccessories(t *testing.T) {
	p := New("player-1")

	p.AddSoftware("mapping-suite")
	p.AddSoftware("mapping-suite")
	assert.True(t, p.HasSoftware("mapping-suite"))
	assert.Len(t, p.Equipment.Software, 1)

	p.AddAccessory("cable-kit")
	assert.True(t, p.HasAccessory("cable-kit"))
	assert.False(t, p.HasAccessory("flight-case"))
}

func TestInventory(t *testing.T) {
	p := New("player-1")

	p.AddToInventory("content-pack-1", 5)
	assert.True(t, p.RemoveFromInventory("content-pack-1", 2))
	assert.Equal(t, 3, p.InventoryCount("content-pack-1"))

	// Removing more than held fails without mutation
	assert.False(t, p.RemoveFromInventory("content-pack-1", 5))
	assert.Equal(t, 3, p.InventoryCount("content-pack-1"))

	// Absent keys count as zero
	assert.Equal(t, 0, p.InventoryCount("never-added"))
	assert.False(t, p.HasInInventory("never-added", 1))
	assert.True(t, p.HasInInventory("content-pack-1", 3))

	// Entries are pruned when they reach zero
	assert.True(t, p.RemoveFromInventory("content-pack-1", 3))
	_, present := p.Inventory["content-pack-1"]
	assert.False(t, present)
}

func TestPosition(t *testing.T) {
	p := New("player-1")

	p.SetPosition(10, 20, "venue")
	assert.Equal(t, "venue", p.Position.Scene)

	// Omitted scene is retained
	p.SetPosition(1, 2, "")
	assert.Equal(t, "venue", p.Position.Scene)
	assert.Equal(t, 1.0, p.Position.X)

	p.MoveBy(4, -1)
	assert.Equal(t, 5.0, p.Position.X)
	assert.Equal(t, 1.0, p.Position.Y)
	assert.Equal(t, "venue", p.Position.Scene)
}

func TestAchievementsAndUnlocks(t *testing.T) {
	p := New("player-1")

	assert.True(t, p.AddAchievement("first-gig"))
	assert.False(t, p.AddAchievement("first-gig"))
	assert.True(t, p.HasAchievement("first-gig"))

	p.UnlockContent("studio-scene")
	p.UnlockContent("studio-scene")
	assert.True(t, p.HasUnlockedContent("studio-scene"))
	assert.Len(t, p.Unlocked, 1)
}

func TestMarshal_RoundTrip(t *testing.T) {
	p := New("player-1")
	p.AddExperience(130)
	p.AddMoney(2500)
	p.SpendMoney(300)
	p.ConsumeEnergy(40)
	p.AddToInventory("content-pack-1", 3)
	p.EquipItem(SlotProjector, "hd-projector")
	p.AddSoftware("visual-synth")
	p.AddAccessory("cable-kit")
	p.SetPosition(12.5, -3, "venue")
	p.AddAchievement("first-gig")
	p.UnlockContent("studio-scene")
	p.SetSkillLevel(SkillArtisticVision, 4)

	data, err := p.Marshal()
	require.NoError(t, err)

	restored := New("other")
	require.NoError(t, restored.Unmarshal(data))

	assert.Equal(t, p, restored)
}

func TestUnmarshal_MalformedLeavesStateUntouched(t *testing.T) {
	p := New("player-1")
	p.AddMoney(500)

	err := p.Unmarshal([]byte("{not json"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, 500, p.Stats.Money)
	assert.Equal(t, "player-1", p.ID)
}

func TestUnmarshal_PartialRecordKeepsPriorValues(t *testing.T) {
	p := New("player-1")
	p.AddMoney(500)
	p.UnlockContent("studio-scene")

	// Only stats are present; everything else keeps its prior value
	require.NoError(t, p.Unmarshal([]byte(`{"stats":{"level":3,"experience":10,"experienceToNext":225,"reputation":5,"energy":80,"maxEnergy":100,"money":42}}`)))

	assert.Equal(t, 3, p.Stats.Level)
	assert.Equal(t, 42, p.Stats.Money)
	assert.Equal(t, "player-1", p.ID)
	assert.True(t, p.HasUnlockedContent("studio-scene"))
	assert.Equal(t, StarterComputer, p.EquippedItem(SlotComputer))
}

func TestUnmarshal_NormalizesOutOfBoundsValues(t *testing.T) {
	p := New("player-1")

	require.NoError(t, p.Unmarshal([]byte(`{"stats":{"level":0,"energy":900,"maxEnergy":100,"money":-5,"experienceToNext":0}}`)))

	assert.Equal(t, 1, p.Stats.Level)
	assert.Equal(t, 100, p.Stats.Energy)
	assert.Equal(t, 0, p.Stats.Money)
	assert.Positive(t, p.Stats.ExperienceToNext)
}

func TestClone_IsDeep(t *testing.T) {
	p := New("player-1")
	p.AddToInventory("content-pack-1", 2)

	clone := p.Clone()
	clone.AddToInventory("content-pack-1", 5)
	clone.EquipItem(SlotController, "midi-pad")
	clone.AddAchievement("first-gig")

	assert.Equal(t, 2, p.InventoryCount("content-pack-1"))
	assert.Equal(t, "", p.EquippedItem(SlotController))
	assert.False(t, p.HasAchievement("first-gig"))
}

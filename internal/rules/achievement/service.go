// Package achievement defines the career achievements and their unlock checks.
package achievement

import (
	"github.com/vjstudio/career-api/internal/entities/player"
)

//go:generate mockgen -destination=mock/mock_service.go -package=achievementmock github.com/vjstudio/career-api/internal/rules/achievement Service

// Definition is one achievement. The condition is evaluated against the
// player's current progress.
type Definition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Points      int    `json:"points"`

	condition func(p *player.Player) bool
}

// definitions is the ordered achievement table.
var definitions = []Definition{
	{
		ID: "first-gig", Name: "First Gig", Points: 10,
		Description: "Earn your first reputation",
		condition: func(p *player.Player) bool {
			return p.Stats.Reputation >= 10
		},
	},
	{
		ID: "funded", Name: "Funded", Points: 10,
		Description: "Hold 1,000 in the bank",
		condition: func(p *player.Player) bool {
			return p.Stats.Money >= 1000
		},
	},
	{
		ID: "rising-star", Name: "Rising Star", Points: 20,
		Description: "Reach level 5",
		condition: func(p *player.Player) bool {
			return p.Stats.Level >= 5
		},
	},
	{
		ID: "headliner", Name: "Headliner", Points: 40,
		Description: "Reach level 10",
		condition: func(p *player.Player) bool {
			return p.Stats.Level >= 10
		},
	},
	{
		ID: "full-rig", Name: "Full Rig", Points: 20,
		Description: "Fill every equipment slot",
		condition: func(p *player.Player) bool {
			return p.EquippedItem(player.SlotProjector) != "" &&
				p.EquippedItem(player.SlotComputer) != "" &&
				p.EquippedItem(player.SlotController) != ""
		},
	},
	{
		ID: "collector", Name: "Collector", Points: 15,
		Description: "Hold 10 distinct items",
		condition: func(p *player.Player) bool {
			return len(p.Inventory) >= 10
		},
	},
	{
		ID: "explorer", Name: "Explorer", Points: 15,
		Description: "Unlock 3 pieces of content",
		condition: func(p *player.Player) bool {
			return len(p.Unlocked) >= 3
		},
	},
	{
		ID: "virtuoso", Name: "Virtuoso", Points: 25,
		Description: "Max out a craft skill",
		condition: func(p *player.Player) bool {
			return p.SkillLevel(player.SkillTechnicalMapping) >= 10 ||
				p.SkillLevel(player.SkillArtisticVision) >= 10
		},
	},
}

// Stats summarizes achievement completion for a player.
type Stats struct {
	Total                int     `json:"total"`
	Unlocked             int     `json:"unlocked"`
	TotalPoints          int     `json:"totalPoints"`
	EarnedPoints         int     `json:"earnedPoints"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

// Service exposes the achievement rules.
type Service interface {
	// CheckAchievements records and returns the ids of achievements the
	// player just earned. Already-earned achievements are never
	// re-returned, so a second call without intervening progress
	// returns an empty list.
	CheckAchievements(p *player.Player) []string

	// AchievementStats summarizes totals and earned points.
	AchievementStats(p *player.Player) Stats

	// Achievement looks up a definition by id.
	Achievement(id string) (Definition, bool)

	// Achievements returns the ordered definition table.
	Achievements() []Definition
}

type service struct{}

// New creates the achievement rules service.
func New() Service {
	return &service{}
}

func (s *service) CheckAchievements(p *player.Player) []string {
	unlocked := []string{}
	for _, def := range definitions {
		if p.HasAchievement(def.ID) {
			continue
		}
		if !def.condition(p) {
			continue
		}
		if p.AddAchievement(def.ID) {
			unlocked = append(unlocked, def.ID)
		}
	}
	return unlocked
}

func (s *service) AchievementStats(p *player.Player) Stats {
	stats := Stats{Total: len(definitions)}
	for _, def := range definitions {
		stats.TotalPoints += def.Points
		if p.HasAchievement(def.ID) {
			stats.Unlocked++
			stats.EarnedPoints += def.Points
		}
	}
	if stats.Total > 0 {
		stats.CompletionPercentage = float64(stats.Unlocked) / float64(stats.Total) * 100
	}
	return stats
}

func (s *service) Achievement(id string) (Definition, bool) {
	for _, def := range definitions {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

func (s *service) Achievements() []Definition {
	defs := make([]Definition, len(definitions))
	copy(defs, definitions)
	return defs
}

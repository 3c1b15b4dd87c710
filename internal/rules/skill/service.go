// Package skill implements the upgrade rules for the five career skills.
package skill

import (
	"github.com/vjstudio/career-api/internal/entities/player"
)

//go:generate mockgen -destination=mock/mock_service.go -package=skillmock github.com/vjstudio/career-api/internal/rules/skill Service

// Money cost of the next upgrade is the current level times this base.
const upgradeCostPerLevel = 100

// Rejection reasons returned by CanUpgrade.
const (
	ReasonUnknownSkill      = "unknown skill"
	ReasonMaxLevel          = "skill is at max level"
	ReasonInsufficientFunds = "insufficient funds"
)

// maxLevels caps each skill. Social and collaboration tracks are shorter
// than the craft tracks.
var maxLevels = map[player.SkillID]int{
	player.SkillTechnicalMapping: 10,
	player.SkillArtisticVision:   10,
	player.SkillEquipmentMastery: 8,
	player.SkillSocialMedia:      8,
	player.SkillCollaboration:    6,
}

// Eligibility describes whether a skill can be upgraded right now.
type Eligibility struct {
	CanUpgrade bool
	Reason     string
	Cost       int
}

// Progress describes one skill's position on its track.
type Progress struct {
	Current    int
	Max        int
	Percentage float64
}

// Service exposes the skill upgrade rules. Lookups on unknown skills
// return well-typed rejections rather than errors.
type Service interface {
	// UpgradeSkill deducts the upgrade cost and raises the skill one
	// level. Returns false without mutation when ineligible.
	UpgradeSkill(p *player.Player, id player.SkillID) bool

	// CanUpgradeSkill explains whether an upgrade would succeed.
	CanUpgradeSkill(p *player.Player, id player.SkillID) Eligibility

	// SkillProgress reports every skill's current/max position.
	SkillProgress(p *player.Player) map[player.SkillID]Progress

	// MaxLevel returns the cap for a skill, or 0 for unknown ids.
	MaxLevel(id player.SkillID) int
}

type service struct{}

// New creates the skill rules service.
func New() Service {
	return &service{}
}

func (s *service) MaxLevel(id player.SkillID) int {
	return maxLevels[id]
}

func (s *service) CanUpgradeSkill(p *player.Player, id player.SkillID) Eligibility {
	max, ok := maxLevels[id]
	if !ok {
		return Eligibility{Reason: ReasonUnknownSkill}
	}

	current := p.SkillLevel(id)
	if current >= max {
		return Eligibility{Reason: ReasonMaxLevel}
	}

	cost := current * upgradeCostPerLevel
	if p.Stats.Money < cost {
		return Eligibility{Reason: ReasonInsufficientFunds, Cost: cost}
	}

	return Eligibility{CanUpgrade: true, Cost: cost}
}

func (s *service) UpgradeSkill(p *player.Player, id player.SkillID) bool {
	elig := s.CanUpgradeSkill(p, id)
	if !elig.CanUpgrade {
		return false
	}

	if !p.SpendMoney(elig.Cost) {
		return false
	}

	return p.SetSkillLevel(id, p.SkillLevel(id)+1)
}

func (s *service) SkillProgress(p *player.Player) map[player.SkillID]Progress {
	progress := make(map[player.SkillID]Progress, len(maxLevels))
	for _, id := range player.SkillIDs() {
		max := maxLevels[id]
		current := p.SkillLevel(id)
		progress[id] = Progress{
			Current:    current,
			Max:        max,
			Percentage: float64(current) / float64(max) * 100,
		}
	}
	return progress
}

// Package player defines the canonical mutable record of a player's
// career progress and its validated mutation operations.
package player

import (
	"encoding/json"

	"github.com/vjstudio/career-api/internal/errors"
)

// SkillID identifies one of the fixed career skills.
type SkillID string

// Career skills
const (
	SkillTechnicalMapping SkillID = "technicalMapping"
	SkillArtisticVision   SkillID = "artisticVision"
	SkillEquipmentMastery SkillID = "equipmentMastery"
	SkillSocialMedia      SkillID = "socialMedia"
	SkillCollaboration    SkillID = "collaboration"
)

// SkillIDs returns the fixed skill set in display order.
func SkillIDs() []SkillID {
	return []SkillID{
		SkillTechnicalMapping,
		SkillArtisticVision,
		SkillEquipmentMastery,
		SkillSocialMedia,
		SkillCollaboration,
	}
}

// Slot identifies an equipment slot. Only the three named slots are
// mutable via EquipItem/UnequipItem; anything else is rejected.
type Slot string

// Equipment slots
const (
	SlotProjector  Slot = "projector"
	SlotComputer   Slot = "computer"
	SlotController Slot = "controller"
)

// ValidSlot reports whether s is one of the three equipment slots.
func ValidSlot(s Slot) bool {
	switch s {
	case SlotProjector, SlotComputer, SlotController:
		return true
	}
	return false
}

// Defaults for a fresh player.
const (
	DefaultScene    = "home"
	StarterComputer = "basic-laptop"

	defaultMaxEnergy   = 100
	initialExpToNext   = 100
	initialSkillLevel  = 1
	expToNextGrowthNum = 3 // threshold grows by 3/2 per level
	expToNextGrowthDen = 2
)

// Stats holds the player's numeric progression values.
// Energy never exceeds MaxEnergy; Money never goes negative.
type Stats struct {
	Level            int `json:"level"`
	Experience       int `json:"experience"`
	ExperienceToNext int `json:"experienceToNext"`
	Reputation       int `json:"reputation"`
	Energy           int `json:"energy"`
	MaxEnergy        int `json:"maxEnergy"`
	Money            int `json:"money"`
}

// Equipment holds the slot assignments plus owned software and accessories.
type Equipment struct {
	Slots       map[Slot]string `json:"slots"`
	Software    []string        `json:"software"`
	Accessories []string        `json:"accessories"`
}

// Position is the player's location within a scene.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scene string  `json:"scene"`
}

// Player is the single owned, mutable record of one player's progress.
// All mutation goes through its methods; boolean-returning mutators never
// mutate on failure.
type Player struct {
	ID           string          `json:"id"`
	Stats        Stats           `json:"stats"`
	Skills       map[SkillID]int `json:"skills"`
	Equipment    Equipment       `json:"equipment"`
	Position     Position        `json:"position"`
	Inventory    map[string]int  `json:"inventory"`
	Achievements []string        `json:"achievements"`
	Unlocked     []string        `json:"unlockedContent"`
}

// New creates a player with starting progress: level 1, full energy, the
// starter laptop equipped, standing at home.
func New(id string) *Player {
	skills := make(map[SkillID]int, len(SkillIDs()))
	for _, s := range SkillIDs() {
		skills[s] = initialSkillLevel
	}

	return &Player{
		ID: id,
		Stats: Stats{
			Level:            1,
			Experience:       0,
			ExperienceToNext: initialExpToNext,
			Reputation:       0,
			Energy:           defaultMaxEnergy,
			MaxEnergy:        defaultMaxEnergy,
			Money:            0,
		},
		Skills: skills,
		Equipment: Equipment{
			Slots: map[Slot]string{
				SlotProjector:  "",
				SlotComputer:   StarterComputer,
				SlotController: "",
			},
			Software:    []string{},
			Accessories: []string{},
		},
		Position: Position{
			X:     0,
			Y:     0,
			Scene: DefaultScene,
		},
		Inventory:    make(map[string]int),
		Achievements: []string{},
		Unlocked:     []string{},
	}
}

// AddExperience adds experience and applies level-ups. While the
// experience meets the current threshold the level increments, the
// threshold is subtracted, and the threshold grows by 3/2.
// Returns false for negative amounts without mutation.
func (p *Player) AddExperience(amount int) bool {
	if amount < 0 {
		return false
	}

	p.Stats.Experience += amount
	for p.Stats.Experience >= p.Stats.ExperienceToNext {
		p.Stats.Experience -= p.Stats.ExperienceToNext
		p.Stats.Level++
		p.Stats.ExperienceToNext = p.Stats.ExperienceToNext * expToNextGrowthNum / expToNextGrowthDen
	}
	return true
}

// AddReputation adds reputation; negative amounts lower it.
func (p *Player) AddReputation(amount int) {
	p.Stats.Reputation += amount
}

// AddMoney adds money. Negative amounts are ignored; use SpendMoney.
func (p *Player) AddMoney(amount int) {
	if amount < 0 {
		return
	}
	p.Stats.Money += amount
}

// SpendMoney deducts amount iff the player can afford it. No partial
// spend: on insufficient funds it returns false and leaves money as-is.
func (p *Player) SpendMoney(amount int) bool {
	if amount < 0 || p.Stats.Money < amount {
		return false
	}
	p.Stats.Money -= amount
	return true
}

// ConsumeEnergy deducts amount iff enough energy remains.
func (p *Player) ConsumeEnergy(amount int) bool {
	if amount < 0 || p.Stats.Energy < amount {
		return false
	}
	p.Stats.Energy -= amount
	return true
}

// RestoreEnergy adds energy, clamped to MaxEnergy.
func (p *Player) RestoreEnergy(amount int) {
	if amount < 0 {
		return
	}
	p.Stats.Energy += amount
	if p.Stats.Energy > p.Stats.MaxEnergy {
		p.Stats.Energy = p.Stats.MaxEnergy
	}
}

// SkillLevel returns the current level of a skill, or 0 for unknown ids.
func (p *Player) SkillLevel(id SkillID) int {
	return p.Skills[id]
}

// SetSkillLevel sets a skill to the given level. Unknown skills and
// levels below 1 are rejected.
func (p *Player) SetSkillLevel(id SkillID, level int) bool {
	if level < 1 {
		return false
	}
	if _, ok := p.Skills[id]; !ok {
		return false
	}
	p.Skills[id] = level
	return true
}

// EquipItem places itemID into the given slot. Unknown slots fail
// without mutation.
func (p *Player) EquipItem(slot Slot, itemID string) bool {
	if !ValidSlot(slot) || itemID == "" {
		return false
	}
	p.Equipment.Slots[slot] = itemID
	return true
}

// UnequipItem clears the given slot. Unknown slots fail without mutation.
func (p *Player) UnequipItem(slot Slot) bool {
	if !ValidSlot(slot) {
		return false
	}
	p.Equipment.Slots[slot] = ""
	return true
}

// EquippedItem returns the item in a slot, or "" if empty or unknown.
func (p *Player) EquippedItem(slot Slot) string {
	return p.Equipment.Slots[slot]
}

// AddSoftware records ownership of a software id. Duplicates are ignored.
func (p *Player) AddSoftware(id string) {
	if id == "" || containsString(p.Equipment.Software, id) {
		return
	}
	p.Equipment.Software = append(p.Equipment.Software, id)
}

// HasSoftware reports whether the player owns a software id.
func (p *Player) HasSoftware(id string) bool {
	return containsString(p.Equipment.Software, id)
}

// AddAccessory records ownership of an accessory id. Duplicates are ignored.
func (p *Player) AddAccessory(id string) {
	if id == "" || containsString(p.Equipment.Accessories, id) {
		return
	}
	p.Equipment.Accessories = append(p.Equipment.Accessories, id)
}

// HasAccessory reports whether the player owns an accessory id.
func (p *Player) HasAccessory(id string) bool {
	return containsString(p.Equipment.Accessories, id)
}

// AddToInventory adds qty of an item. Non-positive quantities and empty
// ids are ignored.
func (p *Player) AddToInventory(itemID string, qty int) {
	if itemID == "" || qty <= 0 {
		return
	}
	p.Inventory[itemID] += qty
}

// RemoveFromInventory removes qty of an item iff at least qty are held.
// Entries that reach zero are pruned.
func (p *Player) RemoveFromInventory(itemID string, qty int) bool {
	if qty <= 0 {
		return false
	}
	current := p.Inventory[itemID]
	if current < qty {
		return false
	}
	if current == qty {
		delete(p.Inventory, itemID)
	} else {
		p.Inventory[itemID] = current - qty
	}
	return true
}

// HasInInventory reports whether at least qty of an item are held.
// Absent keys count as zero.
func (p *Player) HasInInventory(itemID string, qty int) bool {
	if qty <= 0 {
		return true
	}
	return p.Inventory[itemID] >= qty
}

// InventoryCount returns the held quantity of an item; absent keys are 0.
func (p *Player) InventoryCount(itemID string) int {
	return p.Inventory[itemID]
}

// SetPosition moves the player. An empty scene retains the current scene.
func (p *Player) SetPosition(x, y float64, scene string) {
	p.Position.X = x
	p.Position.Y = y
	if scene != "" {
		p.Position.Scene = scene
	}
}

// MoveBy shifts the player's coordinates without touching the scene.
func (p *Player) MoveBy(dx, dy float64) {
	p.Position.X += dx
	p.Position.Y += dy
}

// AddAchievement appends an achievement id. Returns false if already held.
func (p *Player) AddAchievement(id string) bool {
	if id == "" || containsString(p.Achievements, id) {
		return false
	}
	p.Achievements = append(p.Achievements, id)
	return true
}

// HasAchievement reports whether an achievement id has been earned.
func (p *Player) HasAchievement(id string) bool {
	return containsString(p.Achievements, id)
}

// UnlockContent appends a content id. Duplicates are ignored.
func (p *Player) UnlockContent(id string) {
	if id == "" || containsString(p.Unlocked, id) {
		return
	}
	p.Unlocked = append(p.Unlocked, id)
}

// HasUnlockedContent reports whether a content id has been unlocked.
func (p *Player) HasUnlockedContent(id string) bool {
	return containsString(p.Unlocked, id)
}

// Marshal encodes the full player state as JSON. The encoding
// round-trips exactly through Unmarshal.
func (p *Player) Marshal() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player %s", p.ID)
	}
	return data, nil
}

// Unmarshal replaces the player's state from JSON. Malformed input
// returns an InvalidArgument error and leaves the player untouched.
// Fields absent from data keep their prior values.
func (p *Player) Unmarshal(data []byte) error {
	next := p.Clone()
	if err := json.Unmarshal(data, next); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed player data")
	}
	next.normalize()
	*p = *next
	return nil
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	clone := *p

	clone.Skills = make(map[SkillID]int, len(p.Skills))
	for k, v := range p.Skills {
		clone.Skills[k] = v
	}

	clone.Equipment.Slots = make(map[Slot]string, len(p.Equipment.Slots))
	for k, v := range p.Equipment.Slots {
		clone.Equipment.Slots[k] = v
	}
	clone.Equipment.Software = append([]string{}, p.Equipment.Software...)
	clone.Equipment.Accessories = append([]string{}, p.Equipment.Accessories...)

	clone.Inventory = make(map[string]int, len(p.Inventory))
	for k, v := range p.Inventory {
		clone.Inventory[k] = v
	}

	clone.Achievements = append([]string{}, p.Achievements...)
	clone.Unlocked = append([]string{}, p.Unlocked...)

	return &clone
}

// normalize restores structural invariants after a load: non-nil
// collections, all known skills present, the three slots present, energy
// within bounds, and a non-empty scene.
func (p *Player) normalize() {
	if p.Skills == nil {
		p.Skills = make(map[SkillID]int)
	}
	for _, s := range SkillIDs() {
		if p.Skills[s] < 1 {
			p.Skills[s] = initialSkillLevel
		}
	}

	if p.Equipment.Slots == nil {
		p.Equipment.Slots = make(map[Slot]string)
	}
	for _, s := range []Slot{SlotProjector, SlotComputer, SlotController} {
		if _, ok := p.Equipment.Slots[s]; !ok {
			p.Equipment.Slots[s] = ""
		}
	}
	if p.Equipment.Software == nil {
		p.Equipment.Software = []string{}
	}
	if p.Equipment.Accessories == nil {
		p.Equipment.Accessories = []string{}
	}

	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.Unlocked == nil {
		p.Unlocked = []string{}
	}

	if p.Stats.MaxEnergy <= 0 {
		p.Stats.MaxEnergy = defaultMaxEnergy
	}
	if p.Stats.Energy > p.Stats.MaxEnergy {
		p.Stats.Energy = p.Stats.MaxEnergy
	}
	if p.Stats.Energy < 0 {
		p.Stats.Energy = 0
	}
	if p.Stats.Money < 0 {
		p.Stats.Money = 0
	}
	if p.Stats.Level < 1 {
		p.Stats.Level = 1
	}
	if p.Stats.ExperienceToNext <= 0 {
		p.Stats.ExperienceToNext = initialExpToNext
	}
	if p.Position.Scene == "" {
		p.Position.Scene = DefaultScene
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Package equipment defines the purchasable gear catalog and purchase rules.
package equipment

import (
	"github.com/vjstudio/career-api/internal/entities/player"
)

//go:generate mockgen -destination=mock/mock_service.go -package=equipmentmock github.com/vjstudio/career-api/internal/rules/equipment Service

// Category classifies a catalog item.
type Category string

// Item categories
const (
	CategoryProjector  Category = "projector"
	CategoryComputer   Category = "computer"
	CategoryController Category = "controller"
	CategorySoftware   Category = "software"
	CategoryAccessory  Category = "accessory"
)

// Item is one purchasable catalog entry. Slot is empty for software and
// accessories.
type Item struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    Category    `json:"category"`
	Slot        player.Slot `json:"slot,omitempty"`
	Price       int         `json:"price"`
	Description string      `json:"description"`
}

// catalog is the ordered equipment shop. The starter laptop is not
// listed; players begin with it.
var catalog = []Item{
	{ID: "pocket-beam", Name: "Pocket Beam", Category: CategoryProjector, Slot: player.SlotProjector, Price: 800, Description: "Palm-sized 720p projector for guerrilla mapping"},
	{ID: "hd-projector", Name: "HD Projector", Category: CategoryProjector, Slot: player.SlotProjector, Price: 2500, Description: "1080p workhorse with lens shift"},
	{ID: "laser-4k", Name: "Laser 4K", Category: CategoryProjector, Slot: player.SlotProjector, Price: 12000, Description: "20k lumen laser unit for building facades"},
	{ID: "studio-laptop", Name: "Studio Laptop", Category: CategoryComputer, Slot: player.SlotComputer, Price: 1800, Description: "Dedicated GPU, runs two outputs"},
	{ID: "render-rig", Name: "Render Rig", Category: CategoryComputer, Slot: player.SlotComputer, Price: 9000, Description: "Rack machine for realtime 4K content"},
	{ID: "midi-pad", Name: "MIDI Pad", Category: CategoryController, Slot: player.SlotController, Price: 350, Description: "Entry pad controller"},
	{ID: "vj-console", Name: "VJ Console", Category: CategoryController, Slot: player.SlotController, Price: 4200, Description: "Motorized faders and clip matrix"},
	{ID: "mapping-suite", Name: "Mapping Suite", Category: CategorySoftware, Price: 1200, Description: "Projection mapping and warping toolkit"},
	{ID: "visual-synth", Name: "Visual Synth", Category: CategorySoftware, Price: 900, Description: "Generative visual synthesizer"},
	{ID: "cable-kit", Name: "Cable Kit", Category: CategoryAccessory, Price: 150, Description: "HDMI, SDI and power runs"},
	{ID: "flight-case", Name: "Flight Case", Category: CategoryAccessory, Price: 400, Description: "Keeps the rig alive between venues"},
}

// Service exposes the equipment catalog and purchase rules.
type Service interface {
	// PurchaseEquipment checks the price against the player's money,
	// deducts it, and hands over the item: slot items are equipped,
	// software and accessories are added to their owned sets, and every
	// purchase lands in the inventory. Returns false without mutation
	// for unknown items or insufficient funds.
	PurchaseEquipment(p *player.Player, itemID string) bool

	// AvailableEquipment returns the ordered catalog.
	AvailableEquipment() []Item

	// Item looks up a catalog entry by id.
	Item(id string) (Item, bool)
}

type service struct{}

// New creates the equipment rules service.
func New() Service {
	return &service{}
}

func (s *service) AvailableEquipment() []Item {
	items := make([]Item, len(catalog))
	copy(items, catalog)
	return items
}

func (s *service) Item(id string) (Item, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

func (s *service) PurchaseEquipment(p *player.Player, itemID string) bool {
	item, ok := s.Item(itemID)
	if !ok {
		return false
	}

	if !p.SpendMoney(item.Price) {
		return false
	}

	switch item.Category {
	case CategorySoftware:
		p.AddSoftware(item.ID)
	case CategoryAccessory:
		p.AddAccessory(item.ID)
	default:
		p.EquipItem(item.Slot, item.ID)
	}

	p.AddToInventory(item.ID, 1)
	return true
}

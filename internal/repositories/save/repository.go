// Package save provides the interface for save-slot persistence
package save

//go:generate mockgen -destination=mock/mock_repository.go -package=savemock github.com/vjstudio/career-api/internal/repositories/save Repository

import (
	"context"
	"fmt"
)

// Slot layout: slot 0 is the reserved autosave slot, slots 1 through 5
// are user save slots.
const (
	AutosaveSlot  = 0
	MinUserSlot   = 1
	MaxSlot       = 5
	UserSlotCount = MaxSlot - MinUserSlot + 1
)

// Storage key layout
const (
	autosaveKey   = "vj-game-autosave"
	userSlotKeyFn = "vj-game-save-%d"
)

// SlotKey returns the storage key for a slot.
func SlotKey(slot int) string {
	if slot == AutosaveSlot {
		return autosaveKey
	}
	return fmt.Sprintf(userSlotKeyFn, slot)
}

// ValidSlot reports whether slot addresses a real save slot.
func ValidSlot(slot int) bool {
	return slot >= AutosaveSlot && slot <= MaxSlot
}

// Record is one persisted save.
type Record struct {
	Name       string `json:"name,omitempty"`
	PlayerData string `json:"playerData"`
	Playtime   int64  `json:"playtime"`
	Timestamp  int64  `json:"timestamp"`
}

// Repository defines the interface for save-slot persistence
type Repository interface {
	// Put writes a record into a slot, overwriting any previous save
	// Returns errors.InvalidArgument for out-of-range slots or nil records
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves the record in a slot
	// Returns errors.InvalidArgument for out-of-range slots
	// Returns errors.NotFound if the slot is empty
	// Returns errors.DataLoss if the stored record cannot be decoded
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the record in a slot; deleting an empty slot is not
	// an error
	// Returns errors.InvalidArgument for out-of-range slots
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the records in the user slots 1..5, indexed from 0;
	// empty or unreadable slots are nil
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// PutInput defines the input for writing a save
type PutInput struct {
	Slot   int
	Record *Record
}

// PutOutput defines the output for writing a save
type PutOutput struct {
	Record *Record
}

// GetInput defines the input for reading a save
type GetInput struct {
	Slot int
}

// GetOutput defines the output for reading a save
type GetOutput struct {
	Record *Record
}

// DeleteInput defines the input for deleting a save
type DeleteInput struct {
	Slot int
}

// DeleteOutput defines the output for deleting a save
type DeleteOutput struct {
	Existed bool
}

// ListInput defines the input for listing user saves
type ListInput struct{}

// ListOutput defines the output for listing user saves
type ListOutput struct {
	Slots [UserSlotCount]*Record
}

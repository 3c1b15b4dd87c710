package save

import (
	"context"
	"sync"

	"github.com/vjstudio/career-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[int]*Record
}

// NewInMemory creates a new in-memory save repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[int]*Record),
	}
}

// Put writes a record into a slot
func (r *InMemoryRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if !ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument("record cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record := *input.Record
	r.store[input.Slot] = &record

	return &PutOutput{Record: input.Record}, nil
}

// Get retrieves the record in a slot
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if !ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.store[input.Slot]
	if !exists {
		return nil, errors.NotFoundf("save slot %d is empty", input.Slot)
	}

	// Return a copy to prevent external modification
	record := *stored
	return &GetOutput{Record: &record}, nil
}

// Delete removes the record in a slot
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if !ValidSlot(input.Slot) {
		return nil, errors.InvalidArgumentf("slot %d out of range", input.Slot)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.store[input.Slot]
	delete(r.store, input.Slot)

	return &DeleteOutput{Existed: existed}, nil
}

// List returns the records in the user slots
func (r *InMemoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &ListOutput{}
	for slot := MinUserSlot; slot <= MaxSlot; slot++ {
		if stored, exists := r.store[slot]; exists {
			record := *stored
			out.Slots[slot-MinUserSlot] = &record
		}
	}
	return out, nil
}

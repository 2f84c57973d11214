package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/i474232898/weathernow/internal/store"
)

// SlotKey is the storage slot holding the serialized favorites list.
const SlotKey = "favorites"

// Repository loads and saves the whole favorites list.
type Repository interface {
	Load() List
	Save(list List) error
}

// Slots is the subset of named-slot storage the repository needs.
type Slots interface {
	GetItem(key string) (string, error)
	SetItem(key, value string) error
}

// SlotRepository stores the list as a JSON array in a single slot.
type SlotRepository struct {
	slots Slots
	key   string
}

// NewSlotRepository creates a repository on the SlotKey slot.
func NewSlotRepository(slots Slots) *SlotRepository {
	return &SlotRepository{slots: slots, key: SlotKey}
}

// Load reads the persisted list. Missing data yields an empty list; unreadable
// or corrupt data is logged and also yields an empty list.
func (r *SlotRepository) Load() List {
	raw, err := r.slots.GetItem(r.key)
	if errors.Is(err, store.ErrNotFound) {
		return List{}
	}
	if err != nil {
		log.Printf("ERROR: favorites: reading slot %q failed: %v", r.key, err)
		return List{}
	}

	var list List
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("ERROR: favorites: slot %q holds corrupt data, starting empty: %v", r.key, err)
		return List{}
	}
	if list == nil {
		return List{}
	}
	return list
}

// Save overwrites the slot with the full list.
func (r *SlotRepository) Save(list List) error {
	if list == nil {
		list = List{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}
	if err := r.slots.SetItem(r.key, string(data)); err != nil {
		return fmt.Errorf("write favorites slot: %w", err)
	}
	return nil
}

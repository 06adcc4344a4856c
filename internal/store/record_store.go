package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/models"
)

// Slot names used by the client.
const (
	SlotProjects    = "projects"
	SlotUsers       = "users"
	SlotCurrentUser = "currentUser"
)

type slotRecordStore struct {
	slots SlotStore
	name  string
}

// NewRecordStore returns a [RecordStore] keeping the collection as a JSON
// array in the [SlotProjects] slot.
func NewRecordStore(slots SlotStore) RecordStore {
	return &slotRecordStore{slots: slots, name: SlotProjects}
}

// ReadAll returns the stored collection. A slot that was never written reads
// as an empty collection.
func (s *slotRecordStore) ReadAll(ctx context.Context) ([]models.Project, error) {
	raw, err := s.slots.Get(ctx, s.name)
	if errors.Is(err, ErrSlotNotFound) {
		return []models.Project{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s slot: %w", s.name, err)
	}

	projects := make([]models.Project, 0)
	if err = json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptedSlot, s.name, err)
	}

	return projects, nil
}

func (s *slotRecordStore) WriteAll(ctx context.Context, projects []models.Project) error {
	if projects == nil {
		projects = []models.Project{}
	}

	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("encode %s slot: %w", s.name, err)
	}

	if err = s.slots.Put(ctx, s.name, raw); err != nil {
		return fmt.Errorf("write %s slot: %w", s.name, err)
	}

	return nil
}

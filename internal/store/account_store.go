package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/models"
)

type slotAccountStore struct {
	slots SlotStore
}

// NewAccountStore returns an [AccountStore] keeping accounts in the
// [SlotUsers] slot and the session marker in [SlotCurrentUser].
func NewAccountStore(slots SlotStore) AccountStore {
	return &slotAccountStore{slots: slots}
}

func (s *slotAccountStore) GetAccounts(ctx context.Context) (map[string]models.Account, error) {
	accounts := make(map[string]models.Account)

	raw, err := s.slots.Get(ctx, SlotUsers)
	if errors.Is(err, ErrSlotNotFound) {
		return accounts, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users slot: %w", err)
	}

	if err = json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("%w: users: %w", ErrCorruptedSlot, err)
	}

	return accounts, nil
}

func (s *slotAccountStore) SaveAccounts(ctx context.Context, accounts map[string]models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode users slot: %w", err)
	}

	return s.slots.Put(ctx, SlotUsers, raw)
}

// GetSession returns the current session or nil when nobody is signed in.
func (s *slotAccountStore) GetSession(ctx context.Context) (*models.Session, error) {
	raw, err := s.slots.Get(ctx, SlotCurrentUser)
	if errors.Is(err, ErrSlotNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read currentUser slot: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("%w: currentUser: %w", ErrCorruptedSlot, err)
	}

	return &session, nil
}

func (s *slotAccountStore) SaveSession(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode currentUser slot: %w", err)
	}

	return s.slots.Put(ctx, SlotCurrentUser, raw)
}

func (s *slotAccountStore) DeleteSession(ctx context.Context) error {
	return s.slots.Delete(ctx, SlotCurrentUser)
}

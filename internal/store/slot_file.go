// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileSlotStore keeps every slot in one JSON document on disk. The whole
// document is rewritten on each change through a temp file and a rename.
type fileSlotStore struct {
	path string

	mu    sync.RWMutex
	slots map[string]json.RawMessage
}

// NewFileSlotStore opens (or starts) the JSON slot file at path.
func NewFileSlotStore(path string) (SlotStore, error) {
	s := &fileSlotStore{
		path:  path,
		slots: make(map[string]json.RawMessage),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSlotStore) Get(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[name]
	if !ok {
		return nil, ErrSlotNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *fileSlotStore) Put(_ context.Context, name string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("%w: slot %q is not a JSON document", ErrCorruptedSlot, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(json.RawMessage, len(value))
	copy(stored, value)

	prev, had := s.slots[name]
	s.slots[name] = stored
	if err := s.persist(); err != nil {
		if had {
			s.slots[name] = prev
		} else {
			delete(s.slots, name)
		}
		return err
	}

	return nil
}

func (s *fileSlotStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.slots[name]
	if !had {
		return nil
	}

	delete(s.slots, name)
	if err := s.persist(); err != nil {
		s.slots[name] = prev
		return err
	}

	return nil
}

func (s *fileSlotStore) Close() error {
	return nil
}

func (s *fileSlotStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read slot file: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	slots := make(map[string]json.RawMessage)
	if err = json.Unmarshal(data, &slots); err != nil {
		return fmt.Errorf("%w: decode slot file: %w", ErrCorruptedSlot, err)
	}

	s.slots = slots
	return nil
}

func (s *fileSlotStore) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create slot file dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(s.slots, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write slot file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write slot file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrProjectNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}

// mapStoreError translates repository errors on the server side.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, store.ErrProjectNotFound) {
		return fmt.Errorf("%w: %w", ErrProjectNotFound, err)
	}

	return err
}

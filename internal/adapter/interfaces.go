// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients of the remote project collection.
//
// The primary abstraction is [RemoteCollection], which decouples the project
// store from the transport. The package ships an HTTP/REST implementation
// talking to cmd/server ([NewHTTPRemoteCollection]) and a Redis
// implementation keeping the collection directly in Redis
// ([NewRedisRemoteCollection]).
//
// Error values defined in errors.go are mapped from HTTP status codes and
// Redis results so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for an absent record).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-project-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_collection_mock.go -package=mock

// RemoteCollection is the shared collection of projects. Any call may fail;
// implementations never retry underneath.
type RemoteCollection interface {
	// GetByID returns the record with id or an error wrapping [ErrNotFound].
	GetByID(ctx context.Context, id string) (models.Project, error)

	// List returns every record, newest first.
	List(ctx context.Context) ([]models.Project, error)

	// Create stores payload under a new remote-assigned id and returns the
	// stored record.
	Create(ctx context.Context, payload models.Project) (models.Project, error)

	// Update merges update over the record with id and returns the result.
	Update(ctx context.Context, id string, update models.ProjectUpdate) (models.Project, error)

	// Delete removes the record with id.
	Delete(ctx context.Context, id string) error
}

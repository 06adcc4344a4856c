// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks project payloads before the remote collection
// server stores them: field lengths, the refused image payload and
// timestamp syntax.
//
// The project validator is wrapped around the server's project service so
// that handlers and storage never see an invalid record.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

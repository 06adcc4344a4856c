// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the project client runtime.
//
// It opens the local storages and the remote collection, migrates the local
// collection, starts reconciliation in the background and runs the terminal
// UI until the user quits.
package client

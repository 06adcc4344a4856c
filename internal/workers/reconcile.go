// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/models"
)

// Reconciler is the part of service.ReconcileService the worker needs.
type Reconciler interface {
	Reconcile(ctx context.Context) (models.SyncReport, error)
}

// ReconcileWorker runs one reconciliation pass. Its outcome is only logged,
// a panic included.
type ReconcileWorker struct {
	reconciler Reconciler
	timeout    time.Duration

	logger *logger.Logger
}

// NewReconcileWorker bounds the pass with timeout; zero means no bound
// besides the parent context.
func NewReconcileWorker(reconciler Reconciler, timeout time.Duration, logger *logger.Logger) *ReconcileWorker {
	return &ReconcileWorker{reconciler: reconciler, timeout: timeout, logger: logger}
}

func (w *ReconcileWorker) Run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error().Str("func", "ReconcileWorker.Run").
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("reconciliation panicked")
		}
	}()

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	started := time.Now()
	report, err := w.reconciler.Reconcile(w.logger.EnsureContext(ctx))

	switch {
	case errors.Is(err, adapter.ErrRemoteUnavailable):
		w.logger.Info().Err(err).Str("func", "ReconcileWorker.Run").Msg("remote collection unavailable, reconciliation skipped")
		return
	case err != nil:
		w.logger.Err(err).Str("func", "ReconcileWorker.Run").Msg("reconciliation aborted")
		return
	}

	w.logger.Info().Str("func", "ReconcileWorker.Run").
		Int("pushed", len(report.Pushed)).
		Int("skipped", report.Skipped).
		Strs("failed", report.Failed).
		Dur("took", time.Since(started)).
		Msg("reconciliation finished")
}

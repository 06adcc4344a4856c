package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-project-keeper/internal/logger"
)

// retryDelays are the pauses between attempts of a retryable database call.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond, time.Second}

// DB wraps a *sql.DB with the error classifier of its driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// withRetry runs fn and repeats it while the classifier marks the error as
// [Retryable]. Without a classifier fn runs once.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if db.errorClassificator == nil {
		return err
	}

	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying database call")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		err = fn()
	}

	return err
}

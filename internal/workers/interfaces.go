// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts
// several workers in a unified way and waits for them on shutdown.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks for the duration of the work and must return once ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    // do the work
//	}
type Worker interface {
	Run(ctx context.Context)
}

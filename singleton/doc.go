// Package singleton shows the Singleton pattern: one lazily created,
// process-wide instance behind an accessor.
//
// Lifecycle
//
//   - Created on the first call to Instance, at most once per process.
//   - Every later call returns the same *Singleton with the same ID.
//   - There is no teardown.
//
// Thread-Safety
//
//	The check-and-create step runs under sync.Once, so concurrent first
//	accesses from many goroutines still observe exactly one instance.
package singleton

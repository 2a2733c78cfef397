package singleton

import (
	"sync"

	"github.com/google/uuid"
)

var (
	// instance holds the process-wide Singleton.
	// Protected by once for thread-safe initialization.
	instance *Singleton
	once     sync.Once
)

// Singleton is the shared instance. It can only be obtained through Instance.
type Singleton struct {
	id string
}

// Instance returns the process-wide Singleton, creating it on first use with
// a random UUID as its ID. Safe for concurrent calls.
func Instance() *Singleton {
	once.Do(func() {
		instance = &Singleton{id: uuid.NewString()}
	})

	return instance
}

// ID returns the identifier generated when the instance was created.
func (s *Singleton) ID() string {
	return s.id
}

// File: component.go
// Role: nested value carried by a Prototype and its deep copy.
// Determinism:
//   - Clone round-trips through msgpack, so the copy shares no maps with the source.

package prototype

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Component is the nested value-type field of a Prototype.
type Component struct {
	// CreatedAt records when the component was made.
	CreatedAt time.Time `msgpack:"created_at"`

	// Labels stores arbitrary annotations. Deep-copied by Clone.
	Labels map[string]string `msgpack:"labels"`
}

// NewComponent returns a Component stamped with createdAt and no labels.
func NewComponent(createdAt time.Time) *Component {
	return &Component{CreatedAt: createdAt}
}

// Clone returns a deep copy of c. A nil component clones to nil.
//
// The copy is produced by encoding c with msgpack and decoding into a fresh
// value; the timestamp keeps c's location and a non-nil Labels map stays
// non-nil even when empty.
//
// Complexity: O(size of c).
func (c *Component) Clone() (*Component, error) {
	if c == nil {
		return nil, nil
	}
	data, err := msgpack.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("Component.Clone: encode: %w: %w", ErrCloneFailed, err)
	}
	out := &Component{}
	if err = msgpack.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("Component.Clone: decode: %w: %w", ErrCloneFailed, err)
	}
	out.CreatedAt = out.CreatedAt.In(c.CreatedAt.Location())
	// An empty, non-nil map must stay writable on the copy.
	if c.Labels != nil && out.Labels == nil {
		out.Labels = make(map[string]string)
	}

	return out, nil
}

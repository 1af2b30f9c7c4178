// Package uid generates per-instance DOM identifiers.
//
// Components never reach for a package-level counter; they receive a
// Generator from the app provider so tests can substitute a deterministic
// sequence.
package uid

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new unique identifier for the given prefix.
type Generator interface {
	Next(prefix string) string
}

// Func adapts a plain function to Generator.
type Func func(prefix string) string

// Next calls f.
func (f Func) Next(prefix string) string {
	return f(prefix)
}

// Counter issues prefix+N ids from one monotonically increasing sequence
// shared by every prefix. It is safe for concurrent use.
type Counter struct {
	last atomic.Uint64
}

// NewCounter returns a counter whose first id ends in 1.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next id for prefix.
func (c *Counter) Next(prefix string) string {
	return prefix + strconv.FormatUint(c.last.Add(1), 10)
}

var process = NewCounter()

// Default returns the process-wide counter.
func Default() Generator {
	return process
}

// Random issues opaque ids for values that cross a trust boundary, such as
// session handles placed in URLs.
type Random struct{}

// Next returns prefix followed by a random UUID without dashes.
func (Random) Next(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

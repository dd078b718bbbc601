package fitbit

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	stateOnce    sync.Once
	stateMu      sync.Mutex
	stateEntropy *ulid.MonotonicEntropy
)

// NewState returns a fresh value for the state parameter of the
// authorization flow. Values are ULIDs generated from a process-wide
// monotonic entropy source, so they are unguessable and sortable by
// creation time.
func NewState() string {
	stateOnce.Do(func() {
		stateEntropy = ulid.Monotonic(rand.Reader, 0)
	})

	stateMu.Lock()
	defer stateMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), stateEntropy).String()
}

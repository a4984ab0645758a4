package shell

import (
	"sync"
	"time"

	"github.com/ziadkadry99/studydeck/internal/catalog"
)

// Sessions maps session ids to shells.
type Sessions struct {
	mu      sync.Mutex
	shells  map[string]*Shell
	catalog *catalog.Catalog
	opts    Options
}

// NewSessions creates an empty session table whose shells serve c.
func NewSessions(c *catalog.Catalog, opts Options) *Sessions {
	return &Sessions{
		shells:  make(map[string]*Shell),
		catalog: c,
		opts:    opts,
	}
}

// Get returns the shell for id, creating it on first use.
func (ss *Sessions) Get(id string) *Shell {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	sh, ok := ss.shells[id]
	if !ok {
		sh = New(id, ss.catalog, ss.opts)
		ss.shells[id] = sh
	}
	return sh
}

// Len returns the number of live sessions.
func (ss *Sessions) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.shells)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were
// removed. A dropped session starts over on the home view if it returns; its
// completion set is persisted separately and survives.
func (ss *Sessions) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	ss.mu.Lock()
	defer ss.mu.Unlock()

	removed := 0
	for id, sh := range ss.shells {
		if sh.LastSeen().Before(cutoff) {
			delete(ss.shells, id)
			removed++
		}
	}
	return removed
}

package service

import (
	"sync"
	"time"
)

// idGenerator hands out time-derived identifiers: the current Unix
// millisecond, bumped past the previous value when two calls land in the
// same millisecond so ids stay strictly increasing.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

var ids idGenerator

// nextID returns a fresh unique id for a new account or catalog item.
func nextID() int64 {
	return ids.Next()
}

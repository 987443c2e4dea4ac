package cache

import (
	"sync"

	"github.com/Zutime1215/CCN-Bus-tracker/module/tracking/domain"
)

// LiveLocations holds the most recent coordinate per bus. It starts empty,
// is overwritten on every successful ingestion and lives only in process
// memory: everything is lost on restart and rebuilt from new reports.
type LiveLocations struct {
	mu      sync.RWMutex
	entries map[string]domain.Coordinate
}

func NewLiveLocations() *LiveLocations {
	return &LiveLocations{entries: make(map[string]domain.Coordinate)}
}

// Update stores coord as the latest known position for busID, replacing any
// previous entry.
func (c *LiveLocations) Update(busID string, coord domain.Coordinate) {
	c.mu.Lock()
	c.entries[busID] = coord
	c.mu.Unlock()
}

// Get returns the latest coordinate for busID, or false if the bus has not
// reported since process start.
func (c *LiveLocations) Get(busID string) (domain.Coordinate, bool) {
	c.mu.RLock()
	coord, ok := c.entries[busID]
	c.mu.RUnlock()
	return coord, ok
}

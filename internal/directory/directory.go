package directory

import (
	"sync"

	"voltlink/internal/models"
)

// Directory keeps the in-memory charger set for quick lookups. Read-only
// after construction except for the one-time relocation transform.
type Directory struct {
	mu        sync.RWMutex
	chargers  []models.Charger
	byID      map[string]int
	relocated bool
}

// New returns a directory populated from the static seed.
func New() *Directory {
	chargers := seedChargers()
	byID := make(map[string]int, len(chargers))
	for i, c := range chargers {
		byID[c.ID] = i
	}
	return &Directory{
		chargers: chargers,
		byID:     byID,
	}
}

// List returns a copy of all chargers.
func (d *Directory) List() []models.Charger {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Charger, len(d.chargers))
	copy(out, d.chargers)
	return out
}

// Get returns the charger with the given id.
func (d *Directory) Get(id string) (models.Charger, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	idx, ok := d.byID[id]
	if !ok {
		return models.Charger{}, false
	}
	return d.chargers[idx], true
}

// RelocateNear shifts every charger by the delta between the given user
// position and the seed center, so the demo set appears near the user.
// Applied at most once; later calls are ignored.
func (d *Directory) RelocateNear(user models.Coordinates) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.relocated {
		return
	}
	latDiff := user.Lat - seedCenter.Lat
	lngDiff := user.Lng - seedCenter.Lng
	for i := range d.chargers {
		d.chargers[i].Location.Lat += latDiff
		d.chargers[i].Location.Lng += lngDiff
	}
	d.relocated = true
}

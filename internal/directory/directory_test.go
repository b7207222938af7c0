package directory

import (
	"math"
	"testing"

	"voltlink/internal/models"
)

const coordTolerance = 1e-9

func TestGetReturnsSeededCharger(t *testing.T) {
	dir := New()

	charger, ok := dir.Get("ch_001")
	if !ok {
		t.Fatalf("expected ch_001 to exist")
	}
	if charger.Name != "Metropolis SuperHub" {
		t.Fatalf("unexpected name: %s", charger.Name)
	}
	if charger.PricePerKwh != 0.45 {
		t.Fatalf("unexpected price: %f", charger.PricePerKwh)
	}

	if _, ok := dir.Get("ch_999"); ok {
		t.Fatalf("expected lookup miss for unknown id")
	}
}

func TestListReturnsCopy(t *testing.T) {
	dir := New()

	list := dir.List()
	if len(list) != 4 {
		t.Fatalf("expected 4 chargers, got %d", len(list))
	}

	list[0].Name = "mutated"
	again, _ := dir.Get(list[0].ID)
	if again.Name == "mutated" {
		t.Fatalf("List must not expose internal storage")
	}
}

func TestRelocateNearShiftsAllChargersOnce(t *testing.T) {
	dir := New()
	before := dir.List()

	user := models.Coordinates{Lat: 52.5200, Lng: 13.4050}
	dir.RelocateNear(user)

	latDiff := user.Lat - 37.7749
	lngDiff := user.Lng - (-122.4194)

	after := dir.List()
	for i, c := range after {
		wantLat := before[i].Location.Lat + latDiff
		wantLng := before[i].Location.Lng + lngDiff
		if math.Abs(c.Location.Lat-wantLat) > coordTolerance {
			t.Fatalf("charger %s lat = %f, want %f", c.ID, c.Location.Lat, wantLat)
		}
		if math.Abs(c.Location.Lng-wantLng) > coordTolerance {
			t.Fatalf("charger %s lng = %f, want %f", c.ID, c.Location.Lng, wantLng)
		}
	}

	// A second relocation must be a no-op.
	dir.RelocateNear(models.Coordinates{Lat: 0, Lng: 0})
	unchanged := dir.List()
	for i, c := range unchanged {
		if math.Abs(c.Location.Lat-after[i].Location.Lat) > coordTolerance {
			t.Fatalf("charger %s moved on second relocation", c.ID)
		}
	}
}

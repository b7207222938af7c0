package models

// ChargerStatus is the advertised availability of a charging point.
type ChargerStatus string

const (
	ChargerStatusAvailable   ChargerStatus = "AVAILABLE"
	ChargerStatusBusy        ChargerStatus = "BUSY"
	ChargerStatusOffline     ChargerStatus = "OFFLINE"
	ChargerStatusMaintenance ChargerStatus = "MAINTENANCE"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Charger is a physical charging point record. Immutable after load except
// for the one-time relocation transform applied by the directory.
type Charger struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	Location    Coordinates   `json:"location"`
	Operator    string        `json:"operator"`
	PowerKW     float64       `json:"power_kw"`
	PricePerKwh float64       `json:"price_per_kwh"`
	Status      ChargerStatus `json:"status"`
	Connectors  []string      `json:"connectors"`
	Discount    string        `json:"discount,omitempty"`
	Rating      float64       `json:"rating,omitempty"`
}

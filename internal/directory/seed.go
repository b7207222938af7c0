package directory

import "voltlink/internal/models"

// Seed center: downtown San Francisco. The relocation transform shifts every
// charger by the delta between the resolved user position and this point.
var seedCenter = models.Coordinates{Lat: 37.7749, Lng: -122.4194}

func seedChargers() []models.Charger {
	return []models.Charger{
		{
			ID:          "ch_001",
			Name:        "Metropolis SuperHub",
			Address:     "123 Tech Plaza, Downtown",
			Location:    models.Coordinates{Lat: 37.7749, Lng: -122.4194},
			Operator:    "VoltNet",
			PowerKW:     150,
			PricePerKwh: 0.45,
			Status:      models.ChargerStatusAvailable,
			Connectors:  []string{"CCS2", "CHAdeMO"},
			Rating:      4.8,
		},
		{
			ID:          "ch_002",
			Name:        "GreenEnergy Station 4",
			Address:     "450 Market St",
			Location:    models.Coordinates{Lat: 37.7895, Lng: -122.4010},
			Operator:    "GreenCharge",
			PowerKW:     50,
			PricePerKwh: 0.35,
			Status:      models.ChargerStatusBusy,
			Connectors:  []string{"Type 2", "CCS2"},
			Discount:    "10% off for members",
		},
		{
			ID:          "ch_003",
			Name:        "EcoPark Garage",
			Address:     "800 Mission St",
			Location:    models.Coordinates{Lat: 37.7845, Lng: -122.4070},
			Operator:    "VoltNet",
			PowerKW:     350,
			PricePerKwh: 0.55,
			Status:      models.ChargerStatusAvailable,
			Connectors:  []string{"CCS2"},
			Rating:      4.9,
		},
		{
			ID:          "ch_004",
			Name:        "Westside Mall Charging",
			Address:     "1500 Van Ness Ave",
			Location:    models.Coordinates{Lat: 37.7900, Lng: -122.4200},
			Operator:    "ChargePoint",
			PowerKW:     22,
			PricePerKwh: 0.25,
			Status:      models.ChargerStatusMaintenance,
			Connectors:  []string{"Type 2"},
		},
	}
}

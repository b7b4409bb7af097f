package models

import "time"

type VehicleType string

const (
	VehicleSedan     VehicleType = "Sedan"
	VehicleSUV       VehicleType = "SUV"
	VehicleVan       VehicleType = "Van"
	VehicleMiniBus   VehicleType = "Mini Bus"
	VehicleLuxuryCar VehicleType = "Luxury Car"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleSedan, VehicleSUV, VehicleVan, VehicleMiniBus, VehicleLuxuryCar:
		return true
	}
	return false
}

type TaxiCapacity struct {
	Passengers int `bson:"passengers" json:"passengers"`
	Luggage    int `bson:"luggage" json:"luggage"`
}

// TaxiPricing holds the fare components. AirportTransfer and FullDayRate
// are flat rates; zero means the metered fare applies instead.
type TaxiPricing struct {
	BasePrice       float64 `bson:"basePrice" json:"basePrice"`
	PricePerKm      float64 `bson:"pricePerKm" json:"pricePerKm"`
	AirportTransfer float64 `bson:"airportTransfer,omitempty" json:"airportTransfer,omitempty"`
	FullDayRate     float64 `bson:"fullDayRate,omitempty" json:"fullDayRate,omitempty"`
	Currency        string  `bson:"currency" json:"currency"`
}

// Taxi is a transfer vehicle in the operator's fleet.
type Taxi struct {
	ID          string       `bson:"id" json:"id"`
	VehicleType VehicleType  `bson:"vehicleType" json:"vehicleType"`
	VehicleName string       `bson:"vehicleName" json:"vehicleName"`
	Description string       `bson:"description" json:"description"`
	Capacity    TaxiCapacity `bson:"capacity" json:"capacity"`
	Pricing     TaxiPricing  `bson:"pricing" json:"pricing"`
	Features    []string     `bson:"features,omitempty" json:"features,omitempty"`
	Images      []ImageRef   `bson:"images,omitempty" json:"images,omitempty"`
	IsActive    bool         `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updatedAt" json:"updatedAt"`
}

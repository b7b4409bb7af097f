package models

import "time"

// TripType selects how a taxi fare is computed.
type TripType string

const (
	TripPointToPoint TripType = "pointToPoint"
	TripAirport      TripType = "airport"
	TripFullDay      TripType = "fullDay"
)

func (t TripType) Valid() bool {
	switch t {
	case TripPointToPoint, TripAirport, TripFullDay:
		return true
	}
	return false
}

type TaxiFare struct {
	BasePrice   float64 `bson:"basePrice" json:"basePrice"`
	DistanceKm  float64 `bson:"distanceKm" json:"distanceKm"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
	Currency    string  `bson:"currency" json:"currency"`
}

// TaxiBooking reserves a transfer vehicle for a trip.
type TaxiBooking struct {
	ID        string `bson:"id" json:"id"`
	Reference string `bson:"reference" json:"reference"`
	TaxiID    string `bson:"taxiId" json:"taxiId"`

	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerEmail string `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`

	TripType        TripType  `bson:"tripType" json:"tripType"`
	PickupLocation  string    `bson:"pickupLocation" json:"pickupLocation"`
	DropoffLocation string    `bson:"dropoffLocation,omitempty" json:"dropoffLocation,omitempty"`
	PickupTime      time.Time `bson:"pickupTime" json:"pickupTime"`
	Passengers      int       `bson:"passengers" json:"passengers"`
	DistanceKm      float64   `bson:"distanceKm,omitempty" json:"distanceKm,omitempty"`

	Fare TaxiFare `bson:"fare" json:"fare"`

	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	AdminNotes    string        `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

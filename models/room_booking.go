package models

import "time"

// RoomBookingGuests is the requested party for a room stay.
type RoomBookingGuests struct {
	Adults   int `bson:"adults" json:"adults"`
	Children int `bson:"children" json:"children"`
}

// RoomBookingPricing is the computed cost of a stay.
type RoomBookingPricing struct {
	RoomRate    float64 `bson:"roomRate" json:"roomRate"`
	Nights      int     `bson:"nights" json:"nights"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
	Currency    string  `bson:"currency" json:"currency"`
}

// RoomBooking reserves a room for a date range. It shares the safari
// booking lifecycle (pending -> confirmed/cancelled -> completed).
type RoomBooking struct {
	ID        string `bson:"id" json:"id"`
	Reference string `bson:"reference" json:"reference"`
	RoomID    string `bson:"roomId" json:"roomId"`

	GuestName  string `bson:"guestName" json:"guestName"`
	GuestEmail string `bson:"guestEmail" json:"guestEmail"`
	GuestPhone string `bson:"guestPhone" json:"guestPhone"`

	CheckIn         time.Time          `bson:"checkIn" json:"checkIn"`
	CheckOut        time.Time          `bson:"checkOut" json:"checkOut"`
	Guests          RoomBookingGuests  `bson:"guests" json:"guests"`
	Pricing         RoomBookingPricing `bson:"pricing" json:"pricing"`
	SpecialRequests string             `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`

	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	AdminNotes    string        `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

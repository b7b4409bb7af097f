package models

import "time"

type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomSuite  RoomType = "Suite"
	RoomFamily RoomType = "Family"
	RoomDeluxe RoomType = "Deluxe"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomSingle, RoomDouble, RoomSuite, RoomFamily, RoomDeluxe:
		return true
	}
	return false
}

// RoomCapacity is the maximum party a room accommodates.
type RoomCapacity struct {
	Adults   int `bson:"adults" json:"adults"`
	Children int `bson:"children" json:"children"`
}

type RoomPricing struct {
	PerNight float64 `bson:"perNight" json:"perNight"`
	Currency string  `bson:"currency" json:"currency"`
}

type RoomAvailability struct {
	IsAvailable bool `bson:"isAvailable" json:"isAvailable"`
	TotalRooms  int  `bson:"totalRooms" json:"totalRooms"`
}

type RoomPolicies struct {
	CheckIn            string `bson:"checkIn" json:"checkIn"`
	CheckOut           string `bson:"checkOut" json:"checkOut"`
	CancellationPolicy string `bson:"cancellationPolicy,omitempty" json:"cancellationPolicy,omitempty"`
}

// ImageRef is an uploaded image attached to a catalogue entity.
type ImageRef struct {
	URL        string `bson:"url" json:"url"`
	PublicID   string `bson:"publicId,omitempty" json:"publicId,omitempty"`
	Caption    string `bson:"caption,omitempty" json:"caption,omitempty"`
	IsFeatured bool   `bson:"isFeatured" json:"isFeatured"`
}

// Room is a lodge room offered alongside safaris.
type Room struct {
	ID           string           `bson:"id" json:"id"`
	Name         string           `bson:"name" json:"name"`
	Description  string           `bson:"description" json:"description"`
	RoomType     RoomType         `bson:"roomType" json:"roomType"`
	Capacity     RoomCapacity     `bson:"capacity" json:"capacity"`
	Pricing      RoomPricing      `bson:"pricing" json:"pricing"`
	Amenities    []string         `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Images       []ImageRef       `bson:"images,omitempty" json:"images,omitempty"`
	Availability RoomAvailability `bson:"availability" json:"availability"`
	Policies     RoomPolicies     `bson:"policies" json:"policies"`
	IsActive     bool             `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time        `bson:"updatedAt" json:"updatedAt"`
}

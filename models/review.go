package models

import "time"

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

type ServiceType string

const (
	ServiceSafari  ServiceType = "safari"
	ServiceRoom    ServiceType = "room"
	ServiceTaxi    ServiceType = "taxi"
	ServiceOverall ServiceType = "overall"
)

// Review is a customer testimonial held for admin moderation before it
// is published.
type Review struct {
	ID string `bson:"id" json:"id"`

	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerEmail string `bson:"customerEmail" json:"customerEmail"`
	CustomerPhoto string `bson:"customerPhoto,omitempty" json:"customerPhoto,omitempty"`

	Rating      int         `bson:"rating" json:"rating"`
	Message     string      `bson:"message" json:"message"`
	ServiceType ServiceType `bson:"serviceType" json:"serviceType"`
	BookingRef  string      `bson:"bookingRef,omitempty" json:"bookingRef,omitempty"`

	Status      ReviewStatus `bson:"status" json:"status"`
	IsPublished bool         `bson:"isPublished" json:"isPublished"`
	IsFeatured  bool         `bson:"isFeatured" json:"isFeatured"`

	AdminResponse string     `bson:"adminResponse,omitempty" json:"adminResponse,omitempty"`
	RespondedAt   *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
	HelpfulCount  int        `bson:"helpfulCount" json:"helpfulCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

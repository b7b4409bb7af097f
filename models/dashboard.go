package models

import "time"

// DashboardStat is a point-in-time snapshot of the booking figures shown
// on the admin overview. A snapshot is persisted every time the overview
// is computed, giving a rough history of how the numbers moved.
type DashboardStat struct {
	ID string `bson:"id" json:"id"`

	TotalBookings   int64   `bson:"totalBookings" json:"totalBookings"`
	Revenue         float64 `bson:"revenue" json:"revenue"`
	PendingBookings int64   `bson:"pendingBookings" json:"pendingBookings"`
	WebsiteVisitors int64   `bson:"websiteVisitors" json:"websiteVisitors"`
	LocalVisitors   int64   `bson:"localVisitors" json:"localVisitors"`
	ForeignVisitors int64   `bson:"foreignVisitors" json:"foreignVisitors"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

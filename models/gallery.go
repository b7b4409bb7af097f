package models

import "time"

// GalleryImage is a published photo in the site gallery, stored in
// Cloudinary and referenced by public ID.
type GalleryImage struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category,omitempty" json:"category,omitempty"`
	URL       string    `bson:"url" json:"url"`
	PublicID  string    `bson:"publicId" json:"publicId"`
	Order     int       `bson:"order" json:"order"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

package models

import "time"

// ContactMessage is an enquiry submitted through the public contact
// form. Messages land in the admin inbox and trigger a thank-you email
// to the sender.
type ContactMessage struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject string `bson:"subject,omitempty" json:"subject,omitempty"`
	Message string `bson:"message" json:"message"`

	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

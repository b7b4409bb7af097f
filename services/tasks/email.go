package tasks

import (
	"encoding/json"

	"yalasafari/models"

	"github.com/hibiken/asynq"
)

// TypeSendEmail is the asynq task type for outbound notification emails.
const TypeSendEmail = "email:send"

// Email kinds carried in the task payload.
const (
	KindSafariReceived  = "safariReceived"
	KindSafariConfirmed = "safariConfirmed"
	KindSafariRejected  = "safariRejected"
	KindRoomReceived    = "roomReceived"
	KindTaxiReceived    = "taxiReceived"
	KindContactReceived = "contactReceived"
)

// EmailPayload is the flat data object handed to the mail worker. Only
// the fields relevant to the Kind are populated.
type EmailPayload struct {
	Kind string `json:"kind"`

	SafariBooking *models.SafariBooking `json:"safariBooking,omitempty"`
	Reason        string                `json:"reason,omitempty"`

	RoomBooking *models.RoomBooking `json:"roomBooking,omitempty"`
	Room        *models.Room        `json:"room,omitempty"`

	TaxiBooking *models.TaxiBooking `json:"taxiBooking,omitempty"`
	Taxi        *models.Taxi        `json:"taxi,omitempty"`

	Contact *models.ContactMessage `json:"contact,omitempty"`
}

// NewEmailTask wraps an email payload in an asynq task.
func NewEmailTask(payload EmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendEmail, b), nil
}

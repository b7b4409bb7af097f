package models

import "time"

// BookingStatus is the lifecycle state of a safari booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// PaymentStatus tracks payment independently of the booking lifecycle.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type VisitorType string

const (
	VisitorLocal   VisitorType = "local"
	VisitorForeign VisitorType = "foreign"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotExtended  TimeSlot = "extended"
	SlotFullDay   TimeSlot = "fullDay"
)

type JeepGrade string

const (
	JeepBasic       JeepGrade = "basic"
	JeepLuxury      JeepGrade = "luxury"
	JeepSuperLuxury JeepGrade = "superLuxury"
)

type GuideOption string

const (
	GuideDriver        GuideOption = "driver"
	GuideDriverGuide   GuideOption = "driverGuide"
	GuideSeparateGuide GuideOption = "separateGuide"
)

type MealOption string

const (
	MealsIncluded MealOption = "with"
	MealsNone     MealOption = "without"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Active reports whether the booking still occupies its calendar date.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

func (v VisitorType) Valid() bool {
	return v == VisitorLocal || v == VisitorForeign
}

func (t TimeSlot) Valid() bool {
	switch t {
	case SlotMorning, SlotAfternoon, SlotExtended, SlotFullDay:
		return true
	}
	return false
}

func (g JeepGrade) Valid() bool {
	switch g {
	case JeepBasic, JeepLuxury, JeepSuperLuxury:
		return true
	}
	return false
}

func (g GuideOption) Valid() bool {
	switch g {
	case GuideDriver, GuideDriverGuide, GuideSeparateGuide:
		return true
	}
	return false
}

func (m MealOption) Valid() bool {
	return m == MealsIncluded || m == MealsNone
}

// MealSelection captures the optional meal add-ons for a safari party.
type MealSelection struct {
	Option         MealOption `bson:"option" json:"option"`
	BreakfastItems []string   `bson:"breakfastItems,omitempty" json:"breakfastItems,omitempty"`
	LunchItems     []string   `bson:"lunchItems,omitempty" json:"lunchItems,omitempty"`
	Vegetarian     bool       `bson:"vegetarian" json:"vegetarian"`
	IncludeEggs    bool       `bson:"includeEggs" json:"includeEggs"`
}

// PriceBreakdown is the computed quote for a booking. Components are
// rounded to two decimals before the total is summed and re-rounded.
type PriceBreakdown struct {
	TicketPrice float64 `bson:"ticketPrice" json:"ticketPrice"`
	JeepPrice   float64 `bson:"jeepPrice" json:"jeepPrice"`
	GuidePrice  float64 `bson:"guidePrice" json:"guidePrice"`
	MealPrice   float64 `bson:"mealPrice" json:"mealPrice"`
	TotalPrice  float64 `bson:"totalPrice" json:"totalPrice"`
}

// SafariBooking is a safari reservation. One active (pending or
// confirmed) booking is allowed per calendar date; the park runs a
// single party per day.
type SafariBooking struct {
	ID        string `bson:"id" json:"id"`
	Reference string `bson:"reference" json:"reference"`

	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerEmail string `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`

	VisitorType VisitorType `bson:"visitorType" json:"visitorType"`
	Date        time.Time   `bson:"date" json:"date"`
	TimeSlot    TimeSlot    `bson:"timeSlot" json:"timeSlot"`
	JeepGrade   JeepGrade   `bson:"jeepGrade" json:"jeepGrade"`
	GuideOption GuideOption `bson:"guideOption" json:"guideOption"`
	People      int         `bson:"people" json:"people"`

	Meals  MealSelection  `bson:"meals" json:"meals"`
	Prices PriceBreakdown `bson:"prices" json:"prices"`

	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	AdminNotes    string        `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookingConflict is the PII-free view of the booking occupying a date,
// returned by availability checks for calendar display.
type BookingConflict struct {
	Reference string        `json:"reference"`
	Status    BookingStatus `json:"status"`
	TimeSlot  TimeSlot      `json:"timeSlot"`
}

// NormalizeDate truncates a timestamp to midnight UTC so that bookings
// compare by calendar date regardless of the submitted time of day.
func NormalizeDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package notification

import (
	"fmt"
	"strings"

	"yalasafari/models"
)

var timeSlotDisplay = map[models.TimeSlot]string{
	models.SlotMorning:   "Morning Safari (5:30 AM - 9:30 AM)",
	models.SlotAfternoon: "Afternoon Safari (2:30 PM - 6:30 PM)",
	models.SlotExtended:  "Extended Safari (5:30 AM - 12:00 PM)",
	models.SlotFullDay:   "Full Day Safari (5:30 AM - 6:30 PM)",
}

var guideDisplay = map[models.GuideOption]string{
	models.GuideDriver:        "Driver Only",
	models.GuideDriverGuide:   "Driver Guide",
	models.GuideSeparateGuide: "Driver + Separate Guide",
}

func displaySlot(s models.TimeSlot) string {
	if d, ok := timeSlotDisplay[s]; ok {
		return d
	}
	return string(s)
}

func displayGuide(g models.GuideOption) string {
	if d, ok := guideDisplay[g]; ok {
		return d
	}
	return string(g)
}

func row(label, value string) string {
	return fmt.Sprintf("<tr><td><strong>%s</strong></td><td>%s</td></tr>", label, value)
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func safariDetailRows(b *models.SafariBooking) string {
	var sb strings.Builder
	sb.WriteString(row("Booking Reference", b.Reference))
	sb.WriteString(row("Date", b.Date.Format("2 January 2006")))
	sb.WriteString(row("Time Slot", displaySlot(b.TimeSlot)))
	sb.WriteString(row("Jeep", string(b.JeepGrade)))
	sb.WriteString(row("Guide", displayGuide(b.GuideOption)))
	sb.WriteString(row("Party Size", fmt.Sprintf("%d", b.People)))
	sb.WriteString(row("Visitor Type", string(b.VisitorType)))

	if b.Meals.Option == models.MealsIncluded {
		if len(b.Meals.BreakfastItems) > 0 {
			items := strings.Join(b.Meals.BreakfastItems, ", ")
			if b.Meals.Vegetarian && b.Meals.IncludeEggs {
				items += " + Eggs"
			}
			sb.WriteString(row("Breakfast", items))
		}
		if len(b.Meals.LunchItems) > 0 {
			sb.WriteString(row("Lunch", strings.Join(b.Meals.LunchItems, ", ")))
		}
		diet := "Non-Vegetarian"
		if b.Meals.Vegetarian {
			diet = "Vegetarian"
		}
		sb.WriteString(row("Meal Type", diet))
	} else {
		sb.WriteString(row("Meals", "No Meals"))
	}
	return sb.String()
}

func safariPriceRows(p models.PriceBreakdown) string {
	var sb strings.Builder
	sb.WriteString(row("Park Tickets", money(p.TicketPrice)))
	sb.WriteString(row("Jeep", money(p.JeepPrice)))
	sb.WriteString(row("Guide", money(p.GuidePrice)))
	sb.WriteString(row("Meals", money(p.MealPrice)))
	sb.WriteString(row("Total", money(p.TotalPrice)))
	return sb.String()
}

func safariAdminAlertBody(b *models.SafariBooking) string {
	return fmt.Sprintf(`<html><body>
<h2>New Booking Received</h2>
<p>A new safari booking is awaiting review.</p>
<table>%s%s%s</table>
<table>%s</table>
</body></html>`,
		row("Customer", b.CustomerName),
		row("Email", b.CustomerEmail),
		row("Phone", b.CustomerPhone),
		safariDetailRows(b)+safariPriceRows(b.Prices))
}

func safariPendingBody(b *models.SafariBooking) string {
	return fmt.Sprintf(`<html><body>
<h2>Dear %s,</h2>
<p>Thank you for booking with Yala Safari. Your booking is pending review
and you will receive a confirmation shortly.</p>
<table>%s%s</table>
<p>The Yala Safari Team</p>
</body></html>`,
		b.CustomerName, safariDetailRows(b), safariPriceRows(b.Prices))
}

func safariConfirmedBody(b *models.SafariBooking) string {
	return fmt.Sprintf(`<html><body>
<h2>Dear %s,</h2>
<p>Your safari booking has been confirmed. We look forward to seeing you!</p>
<table>%s%s</table>
<p>The Yala Safari Team</p>
</body></html>`,
		b.CustomerName, safariDetailRows(b), safariPriceRows(b.Prices))
}

func safariRejectedBody(b *models.SafariBooking, reason string) string {
	reasonHTML := ""
	if reason != "" {
		reasonHTML = fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", reason)
	}
	return fmt.Sprintf(`<html><body>
<h2>Dear %s,</h2>
<p>We are sorry, your safari booking %s could not be accepted.</p>
%s
<p>Please contact us to arrange an alternative date.</p>
<p>The Yala Safari Team</p>
</body></html>`,
		b.CustomerName, b.Reference, reasonHTML)
}

func roomBookingBody(b *models.RoomBooking, room *models.Room, forAdmin bool) string {
	heading := fmt.Sprintf("Dear %s,", b.GuestName)
	intro := "Thank you for your room booking. We will confirm shortly."
	if forAdmin {
		heading = "New Room Booking"
		intro = "A new room booking is awaiting review."
	}
	return fmt.Sprintf(`<html><body>
<h2>%s</h2>
<p>%s</p>
<table>%s%s%s%s%s%s</table>
<p>The Yala Safari Team</p>
</body></html>`,
		heading, intro,
		row("Reference", b.Reference),
		row("Room", room.Name),
		row("Check-in", b.CheckIn.Format("2 January 2006")),
		row("Check-out", b.CheckOut.Format("2 January 2006")),
		row("Nights", fmt.Sprintf("%d", b.Pricing.Nights)),
		row("Total", fmt.Sprintf("%s %.2f", b.Pricing.Currency, b.Pricing.TotalAmount)))
}

func contactAdminBody(m *models.ContactMessage) string {
	return fmt.Sprintf(`<html><body>
<h2>New Contact Message</h2>
<p>A visitor sent a message through the contact form.</p>
<table>%s%s%s%s</table>
<p>%s</p>
</body></html>`,
		row("Name", m.Name),
		row("Email", m.Email),
		row("Phone", m.Phone),
		row("Subject", m.Subject),
		m.Message)
}

func contactThankYouBody(m *models.ContactMessage) string {
	return fmt.Sprintf(`<html><body>
<h2>Dear %s,</h2>
<p>Thank you for your message. We will contact you soon.</p>
<p>Your message:</p>
<blockquote>%s</blockquote>
<p>The Yala Safari Team</p>
</body></html>`,
		m.Name, m.Message)
}

func taxiBookingBody(b *models.TaxiBooking, taxi *models.Taxi, forAdmin bool) string {
	heading := fmt.Sprintf("Dear %s,", b.CustomerName)
	intro := "Thank you for your taxi booking. We will confirm shortly."
	if forAdmin {
		heading = "New Taxi Booking"
		intro = "A new taxi booking is awaiting review."
	}
	return fmt.Sprintf(`<html><body>
<h2>%s</h2>
<p>%s</p>
<table>%s%s%s%s%s</table>
<p>The Yala Safari Team</p>
</body></html>`,
		heading, intro,
		row("Reference", b.Reference),
		row("Vehicle", fmt.Sprintf("%s (%s)", taxi.VehicleName, taxi.VehicleType)),
		row("Pickup", b.PickupLocation),
		row("Pickup Time", b.PickupTime.Format("2 January 2006 15:04")),
		row("Fare", fmt.Sprintf("%s %.2f", b.Fare.Currency, b.Fare.TotalAmount)))
}

package booking

import (
	"math"

	"yalasafari/models"
)

// Party size bounds for a single jeep.
const (
	MinPartySize = 1
	MaxPartySize = 7
)

// QuoteRequest carries the selections that drive a price quote.
type QuoteRequest struct {
	VisitorType models.VisitorType   `json:"visitorType"`
	People      int                  `json:"people"`
	TimeSlot    models.TimeSlot      `json:"timeSlot"`
	JeepGrade   models.JeepGrade     `json:"jeepGrade"`
	GuideOption models.GuideOption   `json:"guideOption"`
	Meals       models.MealSelection `json:"meals"`
}

// Round2 rounds a price to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateQuote computes the price breakdown for a booking request
// against a pricing package. It is a pure function of its inputs: the
// package is supplied by the caller, never fetched here.
//
// Each component is rounded to two decimals before the total is summed
// and re-rounded.
func CalculateQuote(req QuoteRequest, pkg *models.Package) (models.PriceBreakdown, error) {
	var breakdown models.PriceBreakdown

	if pkg == nil || !pkg.IsActive {
		return breakdown, newError(CodePricingNotFound, "no active pricing package is configured")
	}
	if req.People < MinPartySize || req.People > MaxPartySize {
		return breakdown, newError(CodeInvalidPartySize, "party size must be between %d and %d, got %d", MinPartySize, MaxPartySize, req.People)
	}
	if !req.VisitorType.Valid() {
		return breakdown, newError(CodeInvalidSelection, "unknown visitor type %q", req.VisitorType)
	}
	if !req.TimeSlot.Valid() {
		return breakdown, newError(CodeInvalidSelection, "unknown time slot %q", req.TimeSlot)
	}
	if !req.JeepGrade.Valid() {
		return breakdown, newError(CodeInvalidSelection, "unknown jeep grade %q", req.JeepGrade)
	}
	if !req.GuideOption.Valid() {
		return breakdown, newError(CodeInvalidSelection, "unknown guide option %q", req.GuideOption)
	}
	if req.Meals.Option != "" && !req.Meals.Option.Valid() {
		return breakdown, newError(CodeInvalidSelection, "unknown meal option %q", req.Meals.Option)
	}

	breakdown.TicketPrice = Round2(pkg.TicketRate(req.VisitorType) * float64(req.People))
	breakdown.JeepPrice = Round2(pkg.JeepRate(req.JeepGrade, req.TimeSlot))
	breakdown.GuidePrice = Round2(pkg.GuideRate(req.GuideOption))
	breakdown.MealPrice = Round2(mealPrice(req.Meals, req.People, pkg))
	breakdown.TotalPrice = Round2(breakdown.TicketPrice + breakdown.JeepPrice + breakdown.GuidePrice + breakdown.MealPrice)

	return breakdown, nil
}

// mealPrice sums the selected menu items for the whole party. Vegetarian
// diners only pay for vegetarian items; the egg surcharge applies to
// vegetarian breakfasts only.
func mealPrice(meals models.MealSelection, people int, pkg *models.Package) float64 {
	if meals.Option != models.MealsIncluded {
		return 0
	}

	var perPerson float64
	for _, name := range meals.BreakfastItems {
		item, ok := pkg.FindBreakfastItem(name)
		if !ok {
			continue
		}
		if meals.Vegetarian && !item.Vegetarian {
			continue
		}
		perPerson += item.Price
	}
	if meals.Vegetarian && meals.IncludeEggs {
		perPerson += pkg.EggSurcharge
	}
	for _, name := range meals.LunchItems {
		item, ok := pkg.FindLunchItem(name)
		if !ok {
			continue
		}
		if meals.Vegetarian && !item.Vegetarian {
			continue
		}
		perPerson += item.Price
	}

	return perPerson * float64(people)
}

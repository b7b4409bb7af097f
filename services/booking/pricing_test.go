package booking

import (
	"fmt"
	"testing"

	"yalasafari/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackage() *models.Package {
	return &models.Package{
		ID: "pkg-test",
		Jeep: map[models.JeepGrade]map[models.TimeSlot]float64{
			models.JeepBasic:  {models.SlotMorning: 50, models.SlotFullDay: 80},
			models.JeepLuxury: {models.SlotMorning: 65, models.SlotAfternoon: 65},
		},
		Guide: map[models.GuideOption]float64{
			models.GuideDriver:        0,
			models.GuideDriverGuide:   15,
			models.GuideSeparateGuide: 25,
		},
		Tickets: map[models.VisitorType]float64{
			models.VisitorForeign: 15,
			models.VisitorLocal:   5,
		},
		Breakfast: []models.MealItem{
			{Name: "Toast & butter/jam", Price: 1, Vegetarian: true},
			{Name: "Chicken sandwich", Price: 3, Vegetarian: false},
		},
		Lunch: []models.MealItem{
			{Name: "Vegetable rice & curry", Price: 4, Vegetarian: true},
			{Name: "Fish rice & curry", Price: 5.5, Vegetarian: false},
		},
		EggSurcharge: 1.5,
		IsActive:     true,
	}
}

func TestCalculateQuoteWithoutMeals(t *testing.T) {
	req := QuoteRequest{
		VisitorType: models.VisitorForeign,
		People:      2,
		TimeSlot:    models.SlotMorning,
		JeepGrade:   models.JeepLuxury,
		GuideOption: models.GuideDriverGuide,
		Meals:       models.MealSelection{Option: models.MealsNone},
	}

	breakdown, err := CalculateQuote(req, testPackage())
	require.NoError(t, err)

	assert.Equal(t, 30.0, breakdown.TicketPrice)
	assert.Equal(t, 65.0, breakdown.JeepPrice)
	assert.Equal(t, 15.0, breakdown.GuidePrice)
	assert.Equal(t, 0.0, breakdown.MealPrice)
	assert.Equal(t, 110.0, breakdown.TotalPrice)
}

func TestCalculateQuoteVegetarianBreakfastWithEggs(t *testing.T) {
	req := QuoteRequest{
		VisitorType: models.VisitorForeign,
		People:      2,
		TimeSlot:    models.SlotMorning,
		JeepGrade:   models.JeepLuxury,
		GuideOption: models.GuideDriverGuide,
		Meals: models.MealSelection{
			Option:         models.MealsIncluded,
			BreakfastItems: []string{"Toast & butter/jam"},
			Vegetarian:     true,
			IncludeEggs:    true,
		},
	}

	breakdown, err := CalculateQuote(req, testPackage())
	require.NoError(t, err)

	// (1 + 1.5) per person for two people.
	assert.Equal(t, 5.0, breakdown.MealPrice)
	assert.Equal(t, 115.0, breakdown.TotalPrice)
}

func TestCalculateQuoteVegetarianFiltersNonVegItems(t *testing.T) {
	req := QuoteRequest{
		VisitorType: models.VisitorLocal,
		People:      1,
		TimeSlot:    models.SlotMorning,
		JeepGrade:   models.JeepBasic,
		GuideOption: models.GuideDriver,
		Meals: models.MealSelection{
			Option:         models.MealsIncluded,
			BreakfastItems: []string{"Chicken sandwich"},
			LunchItems:     []string{"Fish rice & curry", "Vegetable rice & curry"},
			Vegetarian:     true,
		},
	}

	breakdown, err := CalculateQuote(req, testPackage())
	require.NoError(t, err)

	// Only the vegetarian lunch survives the filter.
	assert.Equal(t, 4.0, breakdown.MealPrice)
}

func TestCalculateQuoteNonVegDietDoesNotFilter(t *testing.T) {
	req := QuoteRequest{
		VisitorType: models.VisitorLocal,
		People:      2,
		TimeSlot:    models.SlotMorning,
		JeepGrade:   models.JeepBasic,
		GuideOption: models.GuideDriver,
		Meals: models.MealSelection{
			Option:         models.MealsIncluded,
			BreakfastItems: []string{"Toast & butter/jam", "Chicken sandwich"},
			IncludeEggs:    true, // no surcharge without the vegetarian flag
		},
	}

	breakdown, err := CalculateQuote(req, testPackage())
	require.NoError(t, err)

	assert.Equal(t, 8.0, breakdown.MealPrice)
}

func TestCalculateQuoteUnknownMenuItemsAreIgnored(t *testing.T) {
	req := QuoteRequest{
		VisitorType: models.VisitorLocal,
		People:      1,
		TimeSlot:    models.SlotMorning,
		JeepGrade:   models.JeepBasic,
		GuideOption: models.GuideDriver,
		Meals: models.MealSelection{
			Option:         models.MealsIncluded,
			BreakfastItems: []string{"Caviar"},
		},
	}

	breakdown, err := CalculateQuote(req, testPackage())
	require.NoError(t, err)
	assert.Equal(t, 0.0, breakdown.MealPrice)
}

func TestCalculateQuoteTicketPriceScalesWithPartySize(t *testing.T) {
	for people := MinPartySize; people <= MaxPartySize; people++ {
		t.Run(fmt.Sprintf("people=%d", people), func(t *testing.T) {
			req := QuoteRequest{
				VisitorType: models.VisitorForeign,
				People:      people,
				TimeSlot:    models.SlotMorning,
				JeepGrade:   models.JeepLuxury,
				GuideOption: models.GuideDriver,
			}
			breakdown, err := CalculateQuote(req, testPackage())
			require.NoError(t, err)
			assert.Equal(t, 15.0*float64(people), breakdown.TicketPrice)
			// The jeep is hired whole, not per person.
			assert.Equal(t, 65.0, breakdown.JeepPrice)
		})
	}
}

func TestCalculateQuotePartySizeBounds(t *testing.T) {
	for _, people := range []int{0, -1, 8, 100} {
		req := QuoteRequest{
			VisitorType: models.VisitorForeign,
			People:      people,
			TimeSlot:    models.SlotMorning,
			JeepGrade:   models.JeepLuxury,
			GuideOption: models.GuideDriver,
		}
		_, err := CalculateQuote(req, testPackage())
		require.Error(t, err)
		assert.Equal(t, CodeInvalidPartySize, ErrCode(err))
	}
}

func TestCalculateQuoteInvalidSelections(t *testing.T) {
	base := QuoteRequest{
		VisitorType: models.VisitorForeign,
		People:      2,
		TimeSlot:    models.SlotMorning,
		JeepGrade:   models.JeepLuxury,
		GuideOption: models.GuideDriver,
	}

	cases := map[string]func(*QuoteRequest){
		"visitor type": func(r *QuoteRequest) { r.VisitorType = "alien" },
		"time slot":    func(r *QuoteRequest) { r.TimeSlot = "midnight" },
		"jeep grade":   func(r *QuoteRequest) { r.JeepGrade = "rusty" },
		"guide option": func(r *QuoteRequest) { r.GuideOption = "nobody" },
		"meal option":  func(r *QuoteRequest) { r.Meals.Option = "maybe" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := base
			mutate(&req)
			_, err := CalculateQuote(req, testPackage())
			require.Error(t, err)
			assert.Equal(t, CodeInvalidSelection, ErrCode(err))
		})
	}
}

func TestCalculateQuoteRequiresActivePackage(t *testing.T) {
	req := QuoteRequest{
		VisitorType: models.VisitorForeign,
		People:      2,
		TimeSlot:    models.SlotMorning,
		JeepGrade:   models.JeepLuxury,
		GuideOption: models.GuideDriver,
	}

	_, err := CalculateQuote(req, nil)
	require.Error(t, err)
	assert.Equal(t, CodePricingNotFound, ErrCode(err))

	inactive := testPackage()
	inactive.IsActive = false
	_, err = CalculateQuote(req, inactive)
	require.Error(t, err)
	assert.Equal(t, CodePricingNotFound, ErrCode(err))
}

func TestCalculateQuoteRoundsComponentsBeforeTotal(t *testing.T) {
	pkg := testPackage()
	pkg.Tickets[models.VisitorForeign] = 3.333
	pkg.Jeep[models.JeepLuxury][models.SlotMorning] = 10.006
	pkg.Guide[models.GuideDriver] = 1.499

	req := QuoteRequest{
		VisitorType: models.VisitorForeign,
		People:      3,
		TimeSlot:    models.SlotMorning,
		JeepGrade:   models.JeepLuxury,
		GuideOption: models.GuideDriver,
	}
	breakdown, err := CalculateQuote(req, pkg)
	require.NoError(t, err)

	assert.Equal(t, 10.0, breakdown.TicketPrice) // 9.999 rounded
	assert.Equal(t, 10.01, breakdown.JeepPrice)  // 10.006 rounded
	assert.Equal(t, 1.5, breakdown.GuidePrice)   // 1.499 rounded
	assert.Equal(t, Round2(breakdown.TicketPrice+breakdown.JeepPrice+breakdown.GuidePrice+breakdown.MealPrice), breakdown.TotalPrice)
}

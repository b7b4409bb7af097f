package models

import "time"

// MealItem is a named menu entry on the active pricing package.
type MealItem struct {
	Name       string  `bson:"name" json:"name"`
	Price      float64 `bson:"price" json:"price"`
	Vegetarian bool    `bson:"vegetarian" json:"vegetarian"`
}

// Package is a versioned pricing configuration. The most recently
// updated document with IsActive set is authoritative for quotes.
type Package struct {
	ID string `bson:"id" json:"id"`

	// Jeep maps grade -> time slot -> hire price for the whole vehicle.
	Jeep map[JeepGrade]map[TimeSlot]float64 `bson:"jeep" json:"jeep"`
	// Guide maps guide option -> flat add-on price.
	Guide map[GuideOption]float64 `bson:"guide" json:"guide"`
	// Tickets maps visitor type -> per-person park ticket rate.
	Tickets map[VisitorType]float64 `bson:"tickets" json:"tickets"`

	Breakfast []MealItem `bson:"breakfast" json:"breakfast"`
	Lunch     []MealItem `bson:"lunch" json:"lunch"`
	// EggSurcharge is the per-person add-on when a vegetarian breakfast
	// includes eggs.
	EggSurcharge float64 `bson:"eggSurcharge" json:"eggSurcharge"`

	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// JeepRate returns the hire price for a grade and slot, zero when the
// cell is absent from the table.
func (p *Package) JeepRate(grade JeepGrade, slot TimeSlot) float64 {
	if p.Jeep == nil {
		return 0
	}
	return p.Jeep[grade][slot]
}

// GuideRate returns the flat price for a guide option, zero if unset.
func (p *Package) GuideRate(opt GuideOption) float64 {
	if p.Guide == nil {
		return 0
	}
	return p.Guide[opt]
}

// TicketRate returns the per-person ticket rate for a visitor type.
func (p *Package) TicketRate(v VisitorType) float64 {
	if p.Tickets == nil {
		return 0
	}
	return p.Tickets[v]
}

// FindBreakfastItem looks up a breakfast menu entry by name.
func (p *Package) FindBreakfastItem(name string) (MealItem, bool) {
	return findItem(p.Breakfast, name)
}

// FindLunchItem looks up a lunch menu entry by name.
func (p *Package) FindLunchItem(name string) (MealItem, bool) {
	return findItem(p.Lunch, name)
}

func findItem(items []MealItem, name string) (MealItem, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return MealItem{}, false
}

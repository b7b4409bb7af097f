package pricing

import (
	"context"
	"errors"
	"time"

	pricingRepo "yalasafari/database/repository/pricing"
	"yalasafari/models"
	"yalasafari/services/booking"
	"yalasafari/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPricingService backs the pricing API and feeds the booking
// engine through the booking.PackageSource interface.
type DefaultPricingService struct {
	Repo pricingRepo.Repository
}

var _ Service = (*DefaultPricingService)(nil)
var _ booking.PackageSource = (*DefaultPricingService)(nil)

func NewPricingService(repo pricingRepo.Repository) *DefaultPricingService {
	return &DefaultPricingService{Repo: repo}
}

// ActivePackage returns the authoritative package for quotes, nil when
// no active one exists.
func (s *DefaultPricingService) ActivePackage(ctx context.Context) (*models.Package, error) {
	return s.Repo.FindActive(ctx)
}

func (s *DefaultPricingService) Get(ctx context.Context, id string) (*models.Package, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pricingRepo.ErrNotFound) {
			return nil, booking.NewError(booking.CodeNotFound, "package %s not found", id)
		}
		return nil, err
	}
	return p, nil
}

func (s *DefaultPricingService) List(ctx context.Context) ([]models.Package, error) {
	return s.Repo.List(ctx)
}

// Create stores a new package version. New packages start active unless
// the request explicitly says otherwise; the newest active one wins.
func (s *DefaultPricingService) Create(ctx context.Context, req UpdateRequest) (*models.Package, error) {
	now := time.Now().UTC()
	p := &models.Package{
		ID:        uuid.NewString(),
		Jeep:      req.Jeep,
		Guide:     req.Guide,
		Tickets:   req.Tickets,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.EggSurcharge != nil {
		p.EggSurcharge = *req.EggSurcharge
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the rate tables of an existing package. Only fields
// present in the request are touched so partial edits are safe.
func (s *DefaultPricingService) Update(ctx context.Context, id string, req UpdateRequest) (*models.Package, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Jeep != nil {
		p.Jeep = req.Jeep
	}
	if req.Guide != nil {
		p.Guide = req.Guide
	}
	if req.Tickets != nil {
		p.Tickets = req.Tickets
	}
	if req.Breakfast != nil {
		p.Breakfast = req.Breakfast
	}
	if req.Lunch != nil {
		p.Lunch = req.Lunch
	}
	if req.EggSurcharge != nil {
		p.EggSurcharge = *req.EggSurcharge
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// EnsureDefault seeds the default package on an empty collection so a
// fresh deployment can quote immediately.
func (s *DefaultPricingService) EnsureDefault(ctx context.Context) error {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	seed := &models.Package{
		ID: uuid.NewString(),
		Jeep: map[models.JeepGrade]map[models.TimeSlot]float64{
			models.JeepBasic: {
				models.SlotMorning: 50, models.SlotAfternoon: 50,
				models.SlotExtended: 60, models.SlotFullDay: 80,
			},
			models.JeepLuxury: {
				models.SlotMorning: 65, models.SlotAfternoon: 65,
				models.SlotExtended: 75, models.SlotFullDay: 95,
			},
			models.JeepSuperLuxury: {
				models.SlotMorning: 80, models.SlotAfternoon: 80,
				models.SlotExtended: 90, models.SlotFullDay: 110,
			},
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
			{Name: "Fruit platter", Price: 2, Vegetarian: true},
			{Name: "String hoppers & curry", Price: 2.5, Vegetarian: true},
			{Name: "Chicken sandwich", Price: 3, Vegetarian: false},
		},
		Lunch: []models.MealItem{
			{Name: "Vegetable rice & curry", Price: 4, Vegetarian: true},
			{Name: "Chicken rice & curry", Price: 5, Vegetarian: false},
			{Name: "Fish rice & curry", Price: 5.5, Vegetarian: false},
		},
		EggSurcharge: 1.5,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Repo.Create(ctx, seed); err != nil {
		return err
	}
	utils.GetLogger().Info("pricing: seeded default package", zap.String("id", seed.ID))
	return nil
}

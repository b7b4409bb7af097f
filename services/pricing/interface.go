package pricing

import (
	"context"

	"yalasafari/models"
)

// UpdateRequest replaces the rate tables of a package. Pointer fields
// distinguish "leave unchanged" from an explicit zero.
type UpdateRequest struct {
	Jeep         map[models.JeepGrade]map[models.TimeSlot]float64 `json:"jeep"`
	Guide        map[models.GuideOption]float64                   `json:"guide"`
	Tickets      map[models.VisitorType]float64                   `json:"tickets"`
	Breakfast    []models.MealItem                                `json:"breakfast"`
	Lunch        []models.MealItem                                `json:"lunch"`
	EggSurcharge *float64                                         `json:"eggSurcharge"`
	IsActive     *bool                                            `json:"isActive"`
}

// Service manages pricing packages and supplies the active one to the
// booking engine.
type Service interface {
	ActivePackage(ctx context.Context) (*models.Package, error)
	Get(ctx context.Context, id string) (*models.Package, error)
	List(ctx context.Context) ([]models.Package, error)
	Create(ctx context.Context, req UpdateRequest) (*models.Package, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*models.Package, error)
	// EnsureDefault seeds an initial package when the collection is
	// empty so that quotes work on a fresh install.
	EnsureDefault(ctx context.Context) error
}

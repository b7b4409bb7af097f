package pricingRepo

import (
	"context"
	"fmt"
	"time"

	"yalasafari/database"
	"yalasafari/models"
	"yalasafari/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoPricingRepo implements Repository using MongoDB.
type MongoPricingRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRepo creates a pricing repository backed by the
// "packages" collection.
func NewMongoPricingRepo() Repository {
	repo := &MongoPricingRepo{coll: database.Collection("packages")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("pricing repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoPricingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "updatedAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPricingRepo) Create(ctx context.Context, p *models.Package) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *MongoPricingRepo) GetByID(ctx context.Context, id string) (*models.Package, error) {
	var p models.Package
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch package %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPricingRepo) FindActive(ctx context.Context) (*models.Package, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	var p models.Package
	if err := r.coll.FindOne(ctx, bson.M{"isActive": true}, opts).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch active package: %w", err)
	}
	return &p, nil
}

func (r *MongoPricingRepo) List(ctx context.Context) ([]models.Package, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return packages, nil
}

func (r *MongoPricingRepo) Update(ctx context.Context, p *models.Package) error {
	p.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update package %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPricingRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return count, nil
}

package galleryRepo

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

// MongoGalleryRepo implements Repository using MongoDB.
type MongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo creates a gallery repository backed by the
// "gallery" collection.
func NewMongoGalleryRepo() Repository {
	repo := &MongoGalleryRepo{coll: database.Collection("gallery")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("gallery repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoGalleryRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoGalleryRepo) Create(ctx context.Context, img *models.GalleryImage) error {
	now := time.Now()
	img.CreatedAt = now
	img.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, img); err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *MongoGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	var img models.GalleryImage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&img); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch gallery image %s: %w", id, err)
	}
	return &img, nil
}

func (r *MongoGalleryRepo) List(ctx context.Context, category string, activeOnly bool) ([]models.GalleryImage, error) {
	query := bson.M{}
	if category != "" {
		query["category"] = category
	}
	if activeOnly {
		query["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	defer cursor.Close(ctx)

	var images []models.GalleryImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, fmt.Errorf("failed to decode gallery images: %w", err)
	}
	return images, nil
}

func (r *MongoGalleryRepo) Update(ctx context.Context, img *models.GalleryImage) error {
	img.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": img.ID}, bson.M{"$set": img})
	if err != nil {
		return fmt.Errorf("failed to update gallery image %s: %w", img.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoGalleryRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete gallery image %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package reviewsRepo

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

// MongoReviewRepo implements Repository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a review repository backed by the "reviews"
// collection.
func NewMongoReviewRepo() Repository {
	repo := &MongoReviewRepo{coll: database.Collection("reviews")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("review repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "isPublished", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch review %s: %w", id, err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) List(ctx context.Context, filter ListFilter) ([]models.Review, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.PublishedOnly {
		query["isPublished"] = true
	}
	if filter.FeaturedOnly {
		query["isFeatured"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepo) Update(ctx context.Context, review *models.Review) error {
	review.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": review.ID}, bson.M{"$set": review})
	if err != nil {
		return fmt.Errorf("failed to update review %s: %w", review.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoReviewRepo) IncrementHelpful(ctx context.Context, id string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{"helpfulCount": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment helpful count for review %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

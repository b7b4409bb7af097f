package blogsRepo

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

// MongoBlogRepo implements Repository using MongoDB.
type MongoBlogRepo struct {
	coll *mongo.Collection
}

// NewMongoBlogRepo creates a blog repository backed by the "blogs"
// collection.
func NewMongoBlogRepo() Repository {
	repo := &MongoBlogRepo{coll: database.Collection("blogs")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("blog repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoBlogRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "publishedAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *MongoBlogRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch blog post %s: %w", id, err)
	}
	return &post, nil
}

func (r *MongoBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch blog post by slug %s: %w", slug, err)
	}
	return &post, nil
}

func (r *MongoBlogRepo) List(ctx context.Context, publishedOnly bool, limit, skip int64) ([]models.BlogPost, error) {
	query := bson.M{}
	if publishedOnly {
		query["status"] = models.BlogPublished
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if skip > 0 {
		opts.SetSkip(skip)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode blog posts: %w", err)
	}
	return posts, nil
}

func (r *MongoBlogRepo) Update(ctx context.Context, post *models.BlogPost) error {
	post.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": post.ID}, bson.M{"$set": post})
	if err != nil {
		return fmt.Errorf("failed to update blog post %s: %w", post.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBlogRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blog post %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

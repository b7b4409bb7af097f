package adminRepo

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

// MongoAdminRepo implements Repository using MongoDB.
type MongoAdminRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminRepo creates an admin repository backed by the "admins"
// collection.
func NewMongoAdminRepo() Repository {
	repo := &MongoAdminRepo{coll: database.Collection("admins")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("admin repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoAdminRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *MongoAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin %s: %w", id, err)
	}
	return &admin, nil
}

func (r *MongoAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin by email %s: %w", email, err)
	}
	return &admin, nil
}

func (r *MongoAdminRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

package statsRepo

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

// MongoStatsRepo implements Repository using MongoDB.
type MongoStatsRepo struct {
	coll *mongo.Collection
}

// NewMongoStatsRepo creates a stats repository backed by the
// "dashboardStats" collection.
func NewMongoStatsRepo() Repository {
	repo := &MongoStatsRepo{coll: database.Collection("dashboardStats")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("stats repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoStatsRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoStatsRepo) Create(ctx context.Context, s *models.DashboardStat) error {
	s.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create dashboard snapshot: %w", err)
	}
	return nil
}

func (r *MongoStatsRepo) Recent(ctx context.Context, limit int64) ([]models.DashboardStat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboard snapshots: %w", err)
	}
	defer cursor.Close(ctx)

	var snapshots []models.DashboardStat
	if err := cursor.All(ctx, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard snapshots: %w", err)
	}
	return snapshots, nil
}

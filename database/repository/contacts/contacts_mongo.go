package contactsRepo

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

// MongoContactRepo implements Repository using MongoDB.
type MongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo creates a contact repository backed by the
// "contacts" collection.
func NewMongoContactRepo() Repository {
	repo := &MongoContactRepo{coll: database.Collection("contacts")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("contact repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoContactRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isRead", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoContactRepo) Create(ctx context.Context, m *models.ContactMessage) error {
	m.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *MongoContactRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch contact message %s: %w", id, err)
	}
	return &m, nil
}

func (r *MongoContactRepo) List(ctx context.Context, filter ListFilter) ([]models.ContactMessage, error) {
	query := bson.M{}
	if filter.UnreadOnly {
		query["isRead"] = false
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
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return messages, nil
}

func (r *MongoContactRepo) MarkRead(ctx context.Context, id string) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return fmt.Errorf("failed to mark contact message %s as read: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoContactRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact message %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

package taxisRepo

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

// MongoTaxiRepo implements TaxiRepository using MongoDB.
type MongoTaxiRepo struct {
	coll *mongo.Collection
}

// NewMongoTaxiRepo creates a taxi repository backed by the "taxis" collection.
func NewMongoTaxiRepo() TaxiRepository {
	repo := &MongoTaxiRepo{coll: database.Collection("taxis")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("taxi repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTaxiRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isActive", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTaxiRepo) Create(ctx context.Context, taxi *models.Taxi) error {
	now := time.Now()
	taxi.CreatedAt = now
	taxi.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, taxi); err != nil {
		return fmt.Errorf("failed to create taxi: %w", err)
	}
	return nil
}

func (r *MongoTaxiRepo) GetByID(ctx context.Context, id string) (*models.Taxi, error) {
	var taxi models.Taxi
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&taxi); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTaxiNotFound
		}
		return nil, fmt.Errorf("failed to fetch taxi %s: %w", id, err)
	}
	return &taxi, nil
}

func (r *MongoTaxiRepo) List(ctx context.Context, activeOnly bool) ([]models.Taxi, error) {
	query := bson.M{}
	if activeOnly {
		query["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxis: %w", err)
	}
	defer cursor.Close(ctx)

	var taxis []models.Taxi
	if err := cursor.All(ctx, &taxis); err != nil {
		return nil, fmt.Errorf("failed to decode taxis: %w", err)
	}
	return taxis, nil
}

func (r *MongoTaxiRepo) Update(ctx context.Context, taxi *models.Taxi) error {
	taxi.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": taxi.ID}, bson.M{"$set": taxi})
	if err != nil {
		return fmt.Errorf("failed to update taxi %s: %w", taxi.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrTaxiNotFound
	}
	return nil
}

func (r *MongoTaxiRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete taxi %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrTaxiNotFound
	}
	return nil
}

// MongoTaxiBookingRepo implements BookingRepository using MongoDB.
type MongoTaxiBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoTaxiBookingRepo creates a repository backed by the
// "taxi_bookings" collection.
func NewMongoTaxiBookingRepo() BookingRepository {
	repo := &MongoTaxiBookingRepo{coll: database.Collection("taxi_bookings")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("taxi booking repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoTaxiBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "taxiId", Value: 1}, {Key: "pickupTime", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoTaxiBookingRepo) Create(ctx context.Context, b *models.TaxiBooking) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create taxi booking: %w", err)
	}
	return nil
}

func (r *MongoTaxiBookingRepo) GetByID(ctx context.Context, id string) (*models.TaxiBooking, error) {
	var b models.TaxiBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch taxi booking %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoTaxiBookingRepo) List(ctx context.Context, filter BookingFilter) ([]models.TaxiBooking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.TaxiID != "" {
		query["taxiId"] = filter.TaxiID
	}
	pickupRange := bson.M{}
	if !filter.From.IsZero() {
		pickupRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		pickupRange["$lte"] = filter.To
	}
	if len(pickupRange) > 0 {
		query["pickupTime"] = pickupRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list taxi bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.TaxiBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode taxi bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoTaxiBookingRepo) Update(ctx context.Context, b *models.TaxiBooking) error {
	b.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, bson.M{"$set": b})
	if err != nil {
		return fmt.Errorf("failed to update taxi booking %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *MongoTaxiBookingRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete taxi booking %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

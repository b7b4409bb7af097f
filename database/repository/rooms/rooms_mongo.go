package roomsRepo

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

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo creates a room repository backed by the "rooms" collection.
func NewMongoRoomRepo() RoomRepository {
	repo := &MongoRoomRepo{coll: database.Collection("rooms")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("room repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoRoomRepo) ensureIndexes() error {
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

func (r *MongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoRoomRepo) List(ctx context.Context, activeOnly bool) ([]models.Room, error) {
	query := bson.M{}
	if activeOnly {
		query["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) Update(ctx context.Context, room *models.Room) error {
	room.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": room.ID}, bson.M{"$set": room})
	if err != nil {
		return fmt.Errorf("failed to update room %s: %w", room.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *MongoRoomRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// MongoRoomBookingRepo implements BookingRepository using MongoDB.
type MongoRoomBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomBookingRepo creates a repository backed by the
// "room_bookings" collection.
func NewMongoRoomBookingRepo() BookingRepository {
	repo := &MongoRoomBookingRepo{coll: database.Collection("room_bookings")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("room booking repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoRoomBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "roomId", Value: 1}, {Key: "checkIn", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoRoomBookingRepo) Create(ctx context.Context, b *models.RoomBooking) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create room booking: %w", err)
	}
	return nil
}

func (r *MongoRoomBookingRepo) GetByID(ctx context.Context, id string) (*models.RoomBooking, error) {
	var b models.RoomBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch room booking %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoRoomBookingRepo) GetByReference(ctx context.Context, ref string) (*models.RoomBooking, error) {
	var b models.RoomBooking
	if err := r.coll.FindOne(ctx, bson.M{"reference": ref}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch room booking by reference %s: %w", ref, err)
	}
	return &b, nil
}

func (r *MongoRoomBookingRepo) List(ctx context.Context, filter BookingFilter) ([]models.RoomBooking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.RoomID != "" {
		query["roomId"] = filter.RoomID
	}
	checkInRange := bson.M{}
	if !filter.From.IsZero() {
		checkInRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		checkInRange["$lte"] = filter.To
	}
	if len(checkInRange) > 0 {
		query["checkIn"] = checkInRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list room bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.RoomBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode room bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoRoomBookingRepo) Update(ctx context.Context, b *models.RoomBooking) error {
	b.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, bson.M{"$set": b})
	if err != nil {
		return fmt.Errorf("failed to update room booking %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *MongoRoomBookingRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room booking %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

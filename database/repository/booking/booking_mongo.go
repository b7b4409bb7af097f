package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"yalasafari/database"
	"yalasafari/models"
	"yalasafari/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoBookingRepo implements Repository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a booking repository backed by the
// "bookings" collection.
func NewMongoBookingRepo() Repository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Error("booking repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

// ensureIndexes creates lookup indexes plus the partial unique index that
// enforces at most one active booking per calendar date.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "date", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{
						string(models.BookingPending),
						string(models.BookingConfirmed),
					}},
				}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, b *models.SafariBooking) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDateTaken
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.SafariBooking, error) {
	var b models.SafariBooking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) GetByReference(ctx context.Context, ref string) (*models.SafariBooking, error) {
	var b models.SafariBooking
	if err := r.coll.FindOne(ctx, bson.M{"reference": ref}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking by reference %s: %w", ref, err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) List(ctx context.Context, filter ListFilter) ([]models.SafariBooking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	dateRange := bson.M{}
	if !filter.From.IsZero() {
		dateRange["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		dateRange["$lte"] = filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.SafariBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) Update(ctx context.Context, b *models.SafariBooking) error {
	b.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": b.ID}, bson.M{"$set": b})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDateTaken
		}
		return fmt.Errorf("failed to update booking %s: %w", b.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookingRepo) FindActiveByDate(ctx context.Context, date time.Time) (*models.SafariBooking, error) {
	filter := bson.M{
		"date": models.NormalizeDate(date),
		"status": bson.M{"$in": bson.A{
			string(models.BookingPending),
			string(models.BookingConfirmed),
		}},
	}

	var b models.SafariBooking
	if err := r.coll.FindOne(ctx, filter).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query active booking for date: %w", err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) ActiveDatesInRange(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	filter := bson.M{
		"date": bson.M{
			"$gte": models.NormalizeDate(from),
			"$lte": models.NormalizeDate(to),
		},
		"status": bson.M{"$in": bson.A{
			string(models.BookingPending),
			string(models.BookingConfirmed),
		}},
	}

	raw, err := r.coll.Distinct(ctx, "date", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list booked dates: %w", err)
	}

	dates := make([]time.Time, 0, len(raw))
	for _, v := range raw {
		switch dt := v.(type) {
		case primitive.DateTime:
			dates = append(dates, dt.Time().UTC())
		case time.Time:
			dates = append(dates, dt.UTC())
		}
	}
	return dates, nil
}

func (r *MongoBookingRepo) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error

	if stats.TotalBookings, err = r.coll.CountDocuments(ctx, bson.M{}); err != nil {
		return Stats{}, fmt.Errorf("failed to count bookings: %w", err)
	}
	if stats.PendingBookings, err = r.coll.CountDocuments(ctx, bson.M{"status": models.BookingPending}); err != nil {
		return Stats{}, fmt.Errorf("failed to count pending bookings: %w", err)
	}
	if stats.LocalVisitors, err = r.coll.CountDocuments(ctx, bson.M{"visitorType": models.VisitorLocal}); err != nil {
		return Stats{}, fmt.Errorf("failed to count local visitors: %w", err)
	}
	if stats.ForeignVisitors, err = r.coll.CountDocuments(ctx, bson.M{"visitorType": models.VisitorForeign}); err != nil {
		return Stats{}, fmt.Errorf("failed to count foreign visitors: %w", err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": models.BookingCompleted}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$prices.totalPrice"},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return Stats{}, fmt.Errorf("failed to decode revenue aggregate: %w", err)
	}
	if len(result) > 0 {
		stats.CompletedRevenue = result[0].Total
	}
	return stats, nil
}

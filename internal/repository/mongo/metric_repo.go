package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/fitmetric/internal/domain"
	"alcyxob/fitmetric/internal/repository"
)

const metricCollectionName = "daily_metrics"

// mongoMetricRepository implements repository.MetricRepository
type mongoMetricRepository struct {
	collection *mongo.Collection
}

// NewMongoMetricRepository creates a new DailyMetric repository.
func NewMongoMetricRepository(db *mongo.Database) repository.MetricRepository {
	return &mongoMetricRepository{
		collection: db.Collection(metricCollectionName),
	}
}

// UpsertForDay atomically creates or updates the metric document for the
// UTC day containing `at`. Only the fields present on values (and a
// non-empty notes) are written, so steps logged in the morning survive a
// weight update in the evening. The compound unique index on
// (userId, date) keeps concurrent writers from creating two rows for the
// same day.
func (r *mongoMetricRepository) UpsertForDay(ctx context.Context, userID primitive.ObjectID, at time.Time, values domain.MetricValues, notes string) (*domain.DailyMetric, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("metric requires userId")
	}

	day := at.UTC().Truncate(24 * time.Hour)
	now := time.Now().UTC()

	set := bson.M{"updatedAt": now}
	if values.Weight != nil {
		set["metrics.weight"] = *values.Weight
	}
	if values.Steps != nil {
		set["metrics.steps"] = *values.Steps
	}
	if values.SleepHours != nil {
		set["metrics.sleepHours"] = *values.SleepHours
	}
	if values.Mood != nil {
		set["metrics.mood"] = *values.Mood
	}
	if values.WaterIntake != nil {
		set["metrics.waterIntake"] = *values.WaterIntake
	}
	if values.CaloriesBurned != nil {
		set["metrics.caloriesBurned"] = *values.CaloriesBurned
	}
	if notes != "" {
		set["notes"] = notes
	}

	filter := bson.M{"userId": userID, "date": day}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"userId":    userID,
			"date":      day,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var metric domain.DailyMetric
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&metric); err != nil {
		return nil, err
	}
	return &metric, nil
}

// GetHistory retrieves the user's metrics from `since` onward, date
// ascending for charting.
func (r *mongoMetricRepository) GetHistory(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.DailyMetric, error) {
	var metrics []domain.DailyMetric
	filter := bson.M{
		"userId": userID,
		"date":   bson.M{"$gte": since.UTC()},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// EnsureMetricIndexes creates necessary indexes. Call during startup.
func EnsureMetricIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One metric document per user per day.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}

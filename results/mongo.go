package results

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const (
	resultsCollectionName = "workoutResults"
)

type mongoRepository struct {
	collection *mongo.Collection
}

var _ Repository = &mongoRepository{}

func NewMongoRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &mongoRepository{
		collection: db.Collection(resultsCollectionName),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.Initialize(ctx)
		},
	})

	return repo, nil
}

func (r *mongoRepository) Initialize(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "patientId", Value: 1},
				{Key: "completedAt", Value: -1},
			},
			Options: options.Index().SetName("PatientResults"),
		},
	})
	return err
}

func (r *mongoRepository) Append(ctx context.Context, result WorkoutResult) (*WorkoutResult, error) {
	if result.Id == "" {
		result.Id = uuid.NewString()
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, result); err != nil {
		return nil, fmt.Errorf("error appending workout result: %w", err)
	}

	return &result, nil
}

func (r *mongoRepository) ListByPatient(ctx context.Context, patientId string) ([]*WorkoutResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"patientId": patientId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing workout results: %w", err)
	}

	var list []*WorkoutResult
	if err = cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding workout results: %w", err)
	}

	return list, nil
}

func (r *mongoRepository) CountByPatient(ctx context.Context, patientId string) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"patientId": patientId})
	if err != nil {
		return 0, fmt.Errorf("error counting workout results: %w", err)
	}
	return int(count), nil
}

package patients

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/garrettborunda-lab/movefitrx-poc/store"
)

const (
	patientsCollectionName = "patients"
)

type mongoRepository struct {
	collection *mongo.Collection
}

var _ Repository = &mongoRepository{}

// NewMongoRepository returns the persistent variant of the registry. It
// satisfies the same contract as the in-memory repository.
func NewMongoRepository(db *mongo.Database, lifecycle fx.Lifecycle) (Repository, error) {
	repo := &mongoRepository{
		collection: db.Collection(patientsCollectionName),
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
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("UniquePatient"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("CreatedAt"),
		},
	})
	return err
}

func (r *mongoRepository) Create(ctx context.Context, patient Patient) (*Patient, error) {
	patient.Status = StatusPendingPayment
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, patient); err != nil {
		if store.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("error creating patient: %w", err)
	}

	return r.Get(ctx, patient.Id)
}

func (r *mongoRepository) Get(ctx context.Context, id string) (*Patient, error) {
	patient := &Patient{}
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(patient)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("error fetching patient: %w", err)
	}

	return patient, nil
}

func (r *mongoRepository) MarkPaid(ctx context.Context, id string) (bool, error) {
	selector := bson.M{
		"id":     id,
		"status": StatusPendingPayment,
	}
	update := bson.M{
		"$set": bson.M{
			"status": StatusPaid,
			"paidAt": time.Now(),
		},
	}

	err := r.collection.FindOneAndUpdate(ctx, selector, update).Err()
	if err == mongo.ErrNoDocuments {
		// Absent or already paid: the transition is idempotent either way.
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("error updating patient: %w", err)
	}

	return true, nil
}

func (r *mongoRepository) List(ctx context.Context) ([]*Patient, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	var list []*Patient
	if err = cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding patient list: %w", err)
	}

	return list, nil
}

package results

import (
	"context"
	"time"
)

// WorkoutResult is a single completed-exercise event pushed from the
// equipment pipeline. Entries are append-only and never mutated or deleted.
// No validation against the regimen catalog happens on acceptance: an entry
// for an unknown machine/activity is still logged, it simply never matches
// a regimen step.
type WorkoutResult struct {
	Id             string    `bson:"id"`
	PatientId      string    `bson:"patientId"`
	MachineName    string    `bson:"machineName"`
	ActivityLabel  string    `bson:"activityLabel"`
	MetricsSummary string    `bson:"metricsSummary"`
	CompletedAt    time.Time `bson:"completedAt"`
}

type Repository interface {
	Append(ctx context.Context, result WorkoutResult) (*WorkoutResult, error)

	// ListByPatient returns the patient's results sorted by CompletedAt
	// descending. Storage order is unspecified.
	ListByPatient(ctx context.Context, patientId string) ([]*WorkoutResult, error)

	CountByPatient(ctx context.Context, patientId string) (int, error)
}

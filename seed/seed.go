package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/credentials"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/results"
)

// PoolSize is the number of pre-provisioned credentials.
const PoolSize = 10

var credentialIds = []string{
	"MFRX-AB001", "MFRX-CD002", "MFRX-EF003", "MFRX-GH004", "MFRX-IJ005",
	"MFRX-KL006", "MFRX-MN007", "MFRX-OP008", "MFRX-QR009", "MFRX-ST010",
}

// Credentials returns the fixed demo inventory: ten id/access-code pairs.
func Credentials() []credentials.Credential {
	pool := make([]credentials.Credential, 0, PoolSize)
	for i, id := range credentialIds {
		pool = append(pool, credentials.Credential{
			Id:         id,
			AccessCode: fmt.Sprintf("%06d", 205101+i),
		})
	}
	return pool
}

// Demo seeds the deterministic startup fixture: one fully enrolled patient
// with five logged workouts spread over the trailing week, and one patient
// still pending payment. The two records consume the first two pool
// credentials, so they must be seeded before any referral is accepted.
func Demo(ctx context.Context, pool credentials.Pool, patientsRepo patients.Repository, resultsRepo results.Repository, logger *zap.SugaredLogger) error {
	boneDensity, err := catalog.RegimenById(catalog.RegimenBoneDensity)
	if err != nil {
		return err
	}

	first, err := pool.Issue(ctx)
	if err != nil {
		return err
	}
	paid, err := patientsRepo.Create(ctx, patients.Patient{
		Id:          first.Id,
		Name:        "Eleanor Vance",
		Email:       "eleanor.vance@example.com",
		DiagnosisId: "OSTE",
		RegimenId:   catalog.RegimenBoneDensity,
		AccessCode:  first.AccessCode,
		CreatedAt:   time.Now().AddDate(0, 0, -9),
	})
	if err != nil {
		return err
	}
	if _, err := patientsRepo.MarkPaid(ctx, paid.Id); err != nil {
		return err
	}

	// Five results across the trailing week, cycling through the regimen so
	// the detail view shows partial step completion and a populated chart.
	offsets := []int{0, 1, 3, 4, 6}
	for i, daysAgo := range offsets {
		step := boneDensity.Steps[i%len(boneDensity.Steps)]
		_, err := resultsRepo.Append(ctx, results.WorkoutResult{
			PatientId:      paid.Id,
			MachineName:    step.Machine,
			ActivityLabel:  step.Activity,
			MetricsSummary: "Distance: 2.1 mi | Avg HR: 118 bpm",
			CompletedAt:    time.Now().AddDate(0, 0, -daysAgo).Add(-2 * time.Hour),
		})
		if err != nil {
			return err
		}
	}

	second, err := pool.Issue(ctx)
	if err != nil {
		return err
	}
	pending, err := patientsRepo.Create(ctx, patients.Patient{
		Id:          second.Id,
		Name:        "Maria Delgado",
		Email:       "maria.delgado@example.com",
		DiagnosisId: "HYPT",
		RegimenId:   catalog.RegimenCardioVascular,
		AccessCode:  second.AccessCode,
		CreatedAt:   time.Now().AddDate(0, 0, -2),
	})
	if err != nil {
		return err
	}

	logger.Infow("seeded demo fixture", "paidPatientId", paid.Id, "pendingPatientId", pending.Id)
	return nil
}

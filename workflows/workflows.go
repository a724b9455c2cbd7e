package workflows

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/config"
	"github.com/garrettborunda-lab/movefitrx-poc/credentials"
	"github.com/garrettborunda-lab/movefitrx-poc/events"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/results"
)

var ErrMissingField = errors.New("required referral field missing")
var ErrInvalidPaymentTransition = errors.New("payment cannot be applied")

// ReferralRequest carries the clinician form fields. All three are required.
type ReferralRequest struct {
	Name        string
	Email       string
	DiagnosisId string
}

// Service owns the three state-transition workflows: referral, payment
// simulation and workout push. Every successful mutation publishes an event
// so armed views refresh without waiting for the next poll tick.
type Service struct {
	pool         credentials.Pool
	patients     patients.Repository
	results      results.Repository
	bus          *events.Bus
	logger       *zap.SugaredLogger
	paymentDelay time.Duration

	randMu sync.Mutex
	rand   *rand.Rand
}

func NewService(pool credentials.Pool, patientsRepo patients.Repository, resultsRepo results.Repository, bus *events.Bus, cfg *config.Config, logger *zap.SugaredLogger) *Service {
	return &Service{
		pool:         pool,
		patients:     patientsRepo,
		results:      resultsRepo,
		bus:          bus,
		logger:       logger,
		paymentDelay: cfg.PaymentDelay,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Refer validates the form, consumes the next credential and creates the
// patient record. Exhaustion aborts with no side effects. A failure after
// issuance does not return the credential to the pool; that loss is an
// accepted limitation of the pre-provisioned inventory.
func (s *Service) Refer(ctx context.Context, request ReferralRequest) (*patients.Patient, error) {
	if err := request.validate(); err != nil {
		return nil, err
	}

	diagnosis, err := catalog.DiagnosisById(request.DiagnosisId)
	if err != nil {
		return nil, err
	}

	credential, err := s.pool.Issue(ctx)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.Create(ctx, patients.Patient{
		Id:          credential.Id,
		Name:        request.Name,
		Email:       request.Email,
		DiagnosisId: diagnosis.Id,
		RegimenId:   diagnosis.RegimenId,
		AccessCode:  credential.AccessCode,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("patient referred", "patientId", patient.Id, "diagnosisId", diagnosis.Id)
	s.bus.Publish(events.NewEvent(events.EventTypePatientReferred, patient.Id))

	return patient, nil
}

func (r ReferralRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if strings.TrimSpace(r.DiagnosisId) == "" {
		return fmt.Errorf("%w: diagnosisId", ErrMissingField)
	}
	return nil
}

// ConfirmPayment applies the simulated payment. Unknown ids and repeated
// confirmations both surface ErrInvalidPaymentTransition; neither mutates
// anything.
func (s *Service) ConfirmPayment(ctx context.Context, patientId string) error {
	applied, err := s.patients.MarkPaid(ctx, patientId)
	if err != nil {
		return err
	}
	if !applied {
		return ErrInvalidPaymentTransition
	}

	s.logger.Infow("payment confirmed", "patientId", patientId)
	s.bus.Publish(events.NewEvent(events.EventTypePaymentCompleted, patientId))

	return nil
}

// SchedulePayment models the gateway's artificial processing delay as a
// cancellable scheduled continuation. The returned function stops the
// pending confirmation; it is a no-op once the confirmation has fired.
func (s *Service) SchedulePayment(patientId string) (cancel func()) {
	timer := time.AfterFunc(s.paymentDelay, func() {
		if err := s.ConfirmPayment(context.Background(), patientId); err != nil {
			s.logger.Warnw("deferred payment confirmation failed", "patientId", patientId, "error", err)
		}
	})
	return func() { timer.Stop() }
}

// PushWorkout appends a completed-exercise event for one regimen step,
// synthesizing a plausible metrics summary for the activity type.
func (s *Service) PushWorkout(ctx context.Context, patientId string, stepId string) (*results.WorkoutResult, error) {
	patient, err := s.patients.Get(ctx, patientId)
	if err != nil {
		return nil, err
	}

	regimen, err := catalog.RegimenById(patient.RegimenId)
	if err != nil {
		return nil, err
	}
	step, err := regimen.StepById(stepId)
	if err != nil {
		return nil, err
	}

	result, err := s.results.Append(ctx, results.WorkoutResult{
		PatientId:      patient.Id,
		MachineName:    step.Machine,
		ActivityLabel:  step.Activity,
		MetricsSummary: s.synthesizeMetrics(*step),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("workout recorded", "patientId", patient.Id, "stepId", step.Id)
	s.bus.Publish(events.NewEvent(events.EventTypeWorkoutRecorded, patient.Id))

	return result, nil
}

// synthesizeMetrics fakes equipment telemetry: distance and heart rate for
// time-based activities, weight and volume for set-based ones. The format
// is fixed; only the magnitudes are random.
func (s *Service) synthesizeMetrics(step catalog.Step) string {
	s.randMu.Lock()
	defer s.randMu.Unlock()

	if strings.Contains(step.Activity, "Sets") {
		weight := 20 + s.rand.Intn(81)
		volume := weight * (24 + s.rand.Intn(24))
		return fmt.Sprintf("Weight: %d lbs | Volume: %d lbs", weight, volume)
	}

	distance := 1.0 + s.rand.Float64()*3.0
	heartRate := 95 + s.rand.Intn(56)
	return fmt.Sprintf("Distance: %.1f mi | Avg HR: %d bpm", distance, heartRate)
}

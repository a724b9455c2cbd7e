package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/results"
)

// PatientSummary is the list-view model for a single patient.
type PatientSummary struct {
	Patient       *patients.Patient
	DiagnosisName string
	DisplayStatus DisplayStatus
	Completion    int
}

// PatientDetail is the clinician progress-view model.
type PatientDetail struct {
	Patient       *patients.Patient
	Diagnosis     *catalog.Diagnosis
	Regimen       *catalog.Regimen
	DisplayStatus DisplayStatus
	Completion    int
	Steps         []StepCompletion
	Adherence     []AdherenceDay
	Results       []*results.WorkoutResult
}

// Calculator derives the view models from registry and log snapshots. It
// holds no state of its own.
type Calculator struct {
	patients patients.Repository
	results  results.Repository
}

func NewCalculator(patientsRepo patients.Repository, resultsRepo results.Repository) *Calculator {
	return &Calculator{
		patients: patientsRepo,
		results:  resultsRepo,
	}
}

func (c *Calculator) ListSummaries(ctx context.Context) ([]PatientSummary, error) {
	list, err := c.patients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing patients: %w", err)
	}

	summaries := make([]PatientSummary, 0, len(list))
	for _, patient := range list {
		count, err := c.results.CountByPatient(ctx, patient.Id)
		if err != nil {
			return nil, fmt.Errorf("error counting results for %s: %w", patient.Id, err)
		}

		diagnosisName := ""
		if diagnosis, err := catalog.DiagnosisById(patient.DiagnosisId); err == nil {
			diagnosisName = diagnosis.Name
		}

		summaries = append(summaries, PatientSummary{
			Patient:       patient,
			DiagnosisName: diagnosisName,
			DisplayStatus: Display(patient.Status, count),
			Completion:    Completion(count),
		})
	}

	return summaries, nil
}

func (c *Calculator) Detail(ctx context.Context, patientId string) (*PatientDetail, error) {
	patient, err := c.patients.Get(ctx, patientId)
	if err != nil {
		return nil, err
	}

	diagnosis, err := catalog.DiagnosisById(patient.DiagnosisId)
	if err != nil {
		return nil, err
	}
	regimen, err := catalog.RegimenById(patient.RegimenId)
	if err != nil {
		return nil, err
	}

	list, err := c.results.ListByPatient(ctx, patient.Id)
	if err != nil {
		return nil, fmt.Errorf("error listing results for %s: %w", patient.Id, err)
	}

	return &PatientDetail{
		Patient:       patient,
		Diagnosis:     diagnosis,
		Regimen:       regimen,
		DisplayStatus: Display(patient.Status, len(list)),
		Completion:    Completion(len(list)),
		Steps:         StepCompletions(regimen, list),
		Adherence:     Adherence(list, time.Now()),
		Results:       list,
	}, nil
}

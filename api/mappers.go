package api

import (
	"time"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/progress"
	"github.com/garrettborunda-lab/movefitrx-poc/results"
)

type DiagnosisDto struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Icd10Code string `json:"icd10Code"`
	RegimenId string `json:"regimenId"`
}

type PatientDto struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	DiagnosisId string     `json:"diagnosisId"`
	RegimenId   string     `json:"regimenId"`
	AccessCode  string     `json:"accessCode"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

type PatientSummaryDto struct {
	Patient       PatientDto `json:"patient"`
	DiagnosisName string     `json:"diagnosisName"`
	DisplayStatus string     `json:"displayStatus"`
	Completion    int        `json:"completion"`
}

type StepCompletionDto struct {
	StepId    string `json:"stepId"`
	Machine   string `json:"machine"`
	Activity  string `json:"activity"`
	Completed bool   `json:"completed"`
}

type AdherenceDayDto struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Target    int    `json:"target"`
	MetTarget bool   `json:"metTarget"`
}

type WorkoutResultDto struct {
	Id             string    `json:"id"`
	PatientId      string    `json:"patientId"`
	MachineName    string    `json:"machineName"`
	ActivityLabel  string    `json:"activityLabel"`
	MetricsSummary string    `json:"metricsSummary"`
	CompletedAt    time.Time `json:"completedAt"`
}

type PatientDetailDto struct {
	Patient       PatientDto          `json:"patient"`
	Diagnosis     DiagnosisDto        `json:"diagnosis"`
	RegimenName   string              `json:"regimenName"`
	RegimenUrl    string              `json:"regimenUrl"`
	DisplayStatus string              `json:"displayStatus"`
	Completion    int                 `json:"completion"`
	Steps         []StepCompletionDto `json:"steps"`
	Adherence     []AdherenceDayDto   `json:"adherence"`
	Results       []WorkoutResultDto  `json:"results"`
}

type ReferralRequestDto struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	DiagnosisId string `json:"diagnosisId"`
}

type WorkoutPushDto struct {
	StepId string `json:"stepId"`
}

func NewDiagnosisDto(diagnosis catalog.Diagnosis) DiagnosisDto {
	return DiagnosisDto{
		Id:        diagnosis.Id,
		Name:      diagnosis.Name,
		Icd10Code: diagnosis.Icd10Code,
		RegimenId: diagnosis.RegimenId,
	}
}

func NewPatientDto(patient *patients.Patient) PatientDto {
	return PatientDto{
		Id:          patient.Id,
		Name:        patient.Name,
		Email:       patient.Email,
		DiagnosisId: patient.DiagnosisId,
		RegimenId:   patient.RegimenId,
		AccessCode:  patient.AccessCode,
		Status:      string(patient.Status),
		CreatedAt:   patient.CreatedAt,
		PaidAt:      patient.PaidAt,
	}
}

func NewPatientSummaryDto(summary progress.PatientSummary) PatientSummaryDto {
	return PatientSummaryDto{
		Patient:       NewPatientDto(summary.Patient),
		DiagnosisName: summary.DiagnosisName,
		DisplayStatus: string(summary.DisplayStatus),
		Completion:    summary.Completion,
	}
}

func NewWorkoutResultDto(result *results.WorkoutResult) WorkoutResultDto {
	return WorkoutResultDto{
		Id:             result.Id,
		PatientId:      result.PatientId,
		MachineName:    result.MachineName,
		ActivityLabel:  result.ActivityLabel,
		MetricsSummary: result.MetricsSummary,
		CompletedAt:    result.CompletedAt,
	}
}

func NewPatientDetailDto(detail *progress.PatientDetail) PatientDetailDto {
	steps := make([]StepCompletionDto, 0, len(detail.Steps))
	for _, step := range detail.Steps {
		steps = append(steps, StepCompletionDto{
			StepId:    step.Step.Id,
			Machine:   step.Step.Machine,
			Activity:  step.Step.Activity,
			Completed: step.Completed,
		})
	}

	adherence := make([]AdherenceDayDto, 0, len(detail.Adherence))
	for _, day := range detail.Adherence {
		adherence = append(adherence, AdherenceDayDto{
			Date:      day.Date.Format("2006-01-02"),
			Count:     day.Count,
			Target:    progress.DailyAdherenceTarget,
			MetTarget: day.MetTarget,
		})
	}

	list := make([]WorkoutResultDto, 0, len(detail.Results))
	for _, result := range detail.Results {
		list = append(list, NewWorkoutResultDto(result))
	}

	return PatientDetailDto{
		Patient:       NewPatientDto(detail.Patient),
		Diagnosis:     NewDiagnosisDto(*detail.Diagnosis),
		RegimenName:   detail.Regimen.Name,
		RegimenUrl:    detail.Regimen.Url,
		DisplayStatus: string(detail.DisplayStatus),
		Completion:    detail.Completion,
		Steps:         steps,
		Adherence:     adherence,
		Results:       list,
	}
}

package api

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/credentials"
	"github.com/garrettborunda-lab/movefitrx-poc/errors"
	"github.com/garrettborunda-lab/movefitrx-poc/lmn"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/progress"
	"github.com/garrettborunda-lab/movefitrx-poc/workflows"
)

type Handler struct {
	patients   patients.Repository
	calculator *progress.Calculator
	workflows  *workflows.Service
	letters    *lmn.Generator
}

type Params struct {
	fx.In

	Patients   patients.Repository
	Calculator *progress.Calculator
	Workflows  *workflows.Service
	Letters    *lmn.Generator
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients:   p.Patients,
		calculator: p.Calculator,
		workflows:  p.Workflows,
		letters:    p.Letters,
	}
}

func RegisterHandlers(e *echo.Echo, h *Handler) {
	e.GET("/v1/diagnoses", h.ListDiagnoses)
	e.GET("/v1/patients", h.ListPatients)
	e.POST("/v1/referrals", h.SubmitReferral)
	e.GET("/v1/patients/:patientId", h.GetPatient)
	e.GET("/v1/patients/:patientId/progress", h.GetPatientProgress)
	e.GET("/v1/patients/:patientId/lmn", h.GetPatientLetter)
	e.POST("/v1/patients/:patientId/payments", h.SubmitPayment)
	e.POST("/v1/patients/:patientId/workouts", h.PushWorkout)
}

// ListDiagnoses
// (GET /v1/diagnoses)
func (h *Handler) ListDiagnoses(ec echo.Context) error {
	diagnoses := catalog.Diagnoses()
	dtos := make([]DiagnosisDto, 0, len(diagnoses))
	for _, diagnosis := range diagnoses {
		dtos = append(dtos, NewDiagnosisDto(diagnosis))
	}
	return ec.JSON(http.StatusOK, dtos)
}

// ListPatients
// (GET /v1/patients)
func (h *Handler) ListPatients(ec echo.Context) error {
	summaries, err := h.calculator.ListSummaries(ec.Request().Context())
	if err != nil {
		return asHTTPError(err)
	}

	dtos := make([]PatientSummaryDto, 0, len(summaries))
	for _, summary := range summaries {
		dtos = append(dtos, NewPatientSummaryDto(summary))
	}
	return ec.JSON(http.StatusOK, dtos)
}

// SubmitReferral
// (POST /v1/referrals)
func (h *Handler) SubmitReferral(ec echo.Context) error {
	dto := ReferralRequestDto{}
	if err := ec.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	patient, err := h.workflows.Refer(ec.Request().Context(), workflows.ReferralRequest{
		Name:        dto.Name,
		Email:       dto.Email,
		DiagnosisId: dto.DiagnosisId,
	})
	if err != nil {
		return asHTTPError(err)
	}

	return ec.JSON(http.StatusCreated, NewPatientDto(patient))
}

// GetPatient
// (GET /v1/patients/{patientId})
func (h *Handler) GetPatient(ec echo.Context) error {
	patient, err := h.patients.Get(ec.Request().Context(), ec.Param("patientId"))
	if err != nil {
		return asHTTPError(err)
	}
	return ec.JSON(http.StatusOK, NewPatientDto(patient))
}

// GetPatientProgress
// (GET /v1/patients/{patientId}/progress)
func (h *Handler) GetPatientProgress(ec echo.Context) error {
	detail, err := h.calculator.Detail(ec.Request().Context(), ec.Param("patientId"))
	if err != nil {
		return asHTTPError(err)
	}
	return ec.JSON(http.StatusOK, NewPatientDetailDto(detail))
}

// GetPatientLetter
// (GET /v1/patients/{patientId}/lmn)
func (h *Handler) GetPatientLetter(ec echo.Context) error {
	ctx := ec.Request().Context()
	patient, err := h.patients.Get(ctx, ec.Param("patientId"))
	if err != nil {
		return asHTTPError(err)
	}
	diagnosis, err := catalog.DiagnosisById(patient.DiagnosisId)
	if err != nil {
		return asHTTPError(err)
	}
	regimen, err := catalog.RegimenById(patient.RegimenId)
	if err != nil {
		return asHTTPError(err)
	}

	letter, err := h.letters.Generate(patient, diagnosis, regimen)
	if err != nil {
		return asHTTPError(err)
	}
	return ec.String(http.StatusOK, letter)
}

// SubmitPayment
// (POST /v1/patients/{patientId}/payments)
func (h *Handler) SubmitPayment(ec echo.Context) error {
	if err := h.workflows.ConfirmPayment(ec.Request().Context(), ec.Param("patientId")); err != nil {
		return asHTTPError(err)
	}
	return ec.NoContent(http.StatusNoContent)
}

// PushWorkout
// (POST /v1/patients/{patientId}/workouts)
func (h *Handler) PushWorkout(ec echo.Context) error {
	dto := WorkoutPushDto{}
	if err := ec.Bind(&dto); err != nil {
		return errors.BadRequest
	}

	result, err := h.workflows.PushWorkout(ec.Request().Context(), ec.Param("patientId"), dto.StepId)
	if err != nil {
		return asHTTPError(err)
	}
	return ec.JSON(http.StatusCreated, NewWorkoutResultDto(result))
}

// asHTTPError maps domain errors to response codes. Every domain error is a
// recoverable, user-facing condition; nothing here is process-fatal.
func asHTTPError(err error) error {
	switch {
	case stderrors.Is(err, patients.ErrNotFound),
		stderrors.Is(err, catalog.ErrDiagnosisNotFound),
		stderrors.Is(err, catalog.ErrRegimenNotFound),
		stderrors.Is(err, catalog.ErrStepNotFound):
		return errors.HttpError{Code: http.StatusNotFound, Err: err}
	case stderrors.Is(err, workflows.ErrMissingField):
		return errors.HttpError{Code: http.StatusBadRequest, Err: err}
	case stderrors.Is(err, credentials.ErrPoolExhausted),
		stderrors.Is(err, workflows.ErrInvalidPaymentTransition),
		stderrors.Is(err, patients.ErrDuplicate):
		return errors.HttpError{Code: http.StatusConflict, Err: err}
	default:
		return err
	}
}

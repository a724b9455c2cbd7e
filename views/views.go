package views

import (
	"context"

	"github.com/garrettborunda-lab/movefitrx-poc/progress"
)

//go:generate go tool mockgen -source=./views.go -destination=./test/mock_renderer.go -package test

// Renderer paints the clinician views. Implementations are external to the
// synchronizer; the console renderer and the HTTP mappers both consume the
// same view models.
type Renderer interface {
	RenderPatientList(ctx context.Context, summaries []progress.PatientSummary) error
	RenderPatientDetail(ctx context.Context, detail *progress.PatientDetail) error
}

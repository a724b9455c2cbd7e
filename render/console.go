package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/garrettborunda-lab/movefitrx-poc/progress"
	"github.com/garrettborunda-lab/movefitrx-poc/views"
)

// ConsoleRenderer paints the clinician views as plain text. It is the
// display surface for the demo driver; the synchronizer calls it from timer
// and event goroutines, so writes are serialized.
type ConsoleRenderer struct {
	mu  sync.Mutex
	out io.Writer
}

var _ views.Renderer = &ConsoleRenderer{}

func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

func (r *ConsoleRenderer) RenderPatientList(ctx context.Context, summaries []progress.PatientSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintln(r.out, "== Referred Patients ==")
	if len(summaries) == 0 {
		fmt.Fprintln(r.out, "No patients referred yet.")
		return nil
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDIAGNOSIS\tSTATUS\tCOMPLETE")
	for _, summary := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\n",
			summary.Patient.Id,
			summary.Patient.Name,
			summary.DiagnosisName,
			summary.DisplayStatus,
			summary.Completion,
		)
	}
	return w.Flush()
}

func (r *ConsoleRenderer) RenderPatientDetail(ctx context.Context, detail *progress.PatientDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "== %s (%s) ==\n", detail.Patient.Name, detail.Patient.Id)
	fmt.Fprintf(r.out, "Diagnosis: %s (%s)\n", detail.Diagnosis.Name, detail.Diagnosis.Icd10Code)
	fmt.Fprintf(r.out, "Regimen:   %s\n", detail.Regimen.Name)
	fmt.Fprintf(r.out, "Status:    %s, %d%% complete\n", detail.DisplayStatus, detail.Completion)

	fmt.Fprintln(r.out, "Steps:")
	for _, step := range detail.Steps {
		marker := "[ ]"
		if step.Completed {
			marker = "[x]"
		}
		fmt.Fprintf(r.out, "  %s %s / %s\n", marker, step.Step.Machine, step.Step.Activity)
	}

	fmt.Fprintln(r.out, "Adherence (trailing 7 days):")
	for _, day := range detail.Adherence {
		bar := strings.Repeat("#", day.Count)
		fmt.Fprintf(r.out, "  %s %-10s %d/%d\n", day.Date.Format("Jan 02"), bar, day.Count, progress.DailyAdherenceTarget)
	}

	fmt.Fprintf(r.out, "Logged results: %d\n", len(detail.Results))
	return nil
}

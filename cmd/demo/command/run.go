package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/config"
	"github.com/garrettborunda-lab/movefitrx-poc/credentials"
	"github.com/garrettborunda-lab/movefitrx-poc/events"
	"github.com/garrettborunda-lab/movefitrx-poc/lmn"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/progress"
	"github.com/garrettborunda-lab/movefitrx-poc/render"
	"github.com/garrettborunda-lab/movefitrx-poc/results"
	"github.com/garrettborunda-lab/movefitrx-poc/seed"
	"github.com/garrettborunda-lab/movefitrx-poc/views"
	"github.com/garrettborunda-lab/movefitrx-poc/workflows"
)

var pollInterval time.Duration
var showLetter bool

func init() {
	runCmd.Flags().DurationVar(&pollInterval, "poll-interval", 250*time.Millisecond, "Observer poll interval")
	runCmd.Flags().BoolVar(&showLetter, "letter", false, "Print the letter of medical necessity for the referred patient")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Seed the demo fixture and walk one patient through the full workflow",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}
		cfg.PollInterval = pollInterval
		return run(cmd.Context(), cfg)
	},
}

func run(ctx context.Context, cfg *config.Config) error {
	log := zap.NewNop().Sugar()

	bus := events.NewBus()
	pool := credentials.NewPool(seed.Credentials())
	patientsRepo := patients.NewMemoryRepository()
	resultsRepo := results.NewMemoryRepository()
	calculator := progress.NewCalculator(patientsRepo, resultsRepo)
	renderer := render.NewConsoleRenderer(os.Stdout)
	workflowSvc := workflows.NewService(pool, patientsRepo, resultsRepo, bus, cfg, log)

	synchronizer, err := views.NewSynchronizer(calculator, renderer, bus, cfg, log)
	if err != nil {
		return err
	}
	defer synchronizer.Close()

	if err := seed.Demo(ctx, pool, patientsRepo, resultsRepo, log); err != nil {
		return err
	}

	// Clinician opens the portal: the list observer starts ticking.
	synchronizer.ArmList()
	time.Sleep(cfg.PollInterval)

	fmt.Println()
	fmt.Println("-- referring Jane Doe (Osteoporosis) --")
	patient, err := workflowSvc.Refer(ctx, workflows.ReferralRequest{
		Name:        "Jane Doe",
		Email:       "jane.doe@example.com",
		DiagnosisId: "OSTE",
	})
	if err != nil {
		return err
	}
	fmt.Printf("   access code %s, partner gym: %s (%s)\n", patient.AccessCode, catalog.Gym.Name, catalog.Gym.Address)
	time.Sleep(cfg.PollInterval)

	fmt.Println()
	fmt.Printf("-- payment processing for %s --\n", patient.Id)
	cancel := workflowSvc.SchedulePayment(patient.Id)
	defer cancel()
	time.Sleep(cfg.PaymentDelay + cfg.PollInterval)

	fmt.Println()
	fmt.Printf("-- equipment pushes first workout for %s --\n", patient.Id)
	synchronizer.ArmDetail(patient.Id)
	if _, err := workflowSvc.PushWorkout(ctx, patient.Id, "MXW-BND-01"); err != nil {
		return err
	}
	time.Sleep(cfg.PollInterval)

	synchronizer.CloseDetail()
	time.Sleep(cfg.PollInterval)
	synchronizer.Disarm()

	if showLetter {
		generator, err := lmn.NewGenerator()
		if err != nil {
			return err
		}
		diagnosis, err := catalog.DiagnosisById(patient.DiagnosisId)
		if err != nil {
			return err
		}
		regimen, err := catalog.RegimenById(patient.RegimenId)
		if err != nil {
			return err
		}
		letter, err := generator.Generate(patient, diagnosis, regimen)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(letter)
	}

	return nil
}

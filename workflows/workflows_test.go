package workflows_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/garrettborunda-lab/movefitrx-poc/config"
	"github.com/garrettborunda-lab/movefitrx-poc/credentials"
	"github.com/garrettborunda-lab/movefitrx-poc/events"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/results"
	"github.com/garrettborunda-lab/movefitrx-poc/seed"
	"github.com/garrettborunda-lab/movefitrx-poc/workflows"
)

var _ = Describe("Workflows Service", func() {
	var pool credentials.Pool
	var patientsRepo patients.Repository
	var resultsRepo results.Repository
	var bus *events.Bus
	var service *workflows.Service
	var published []events.EventType

	BeforeEach(func() {
		pool = credentials.NewPool(seed.Credentials())
		patientsRepo = patients.NewMemoryRepository()
		resultsRepo = results.NewMemoryRepository()
		bus = events.NewBus()
		published = nil
		bus.Subscribe(func(event events.Event) {
			published = append(published, event.Type)
		})

		cfg := &config.Config{PaymentDelay: 20 * time.Millisecond}
		service = workflows.NewService(pool, patientsRepo, resultsRepo, bus, cfg, zap.NewNop().Sugar())
	})

	validRequest := func() workflows.ReferralRequest {
		return workflows.ReferralRequest{
			Name:        "Jane Doe",
			Email:       "jane.doe@example.com",
			DiagnosisId: "OSTE",
		}
	}

	Describe("Refer", func() {
		It("consumes the next credential and creates a pending record", func() {
			patient, err := service.Refer(context.Background(), validRequest())
			Expect(err).ToNot(HaveOccurred())
			Expect(patient.Id).To(Equal("MFRX-AB001"))
			Expect(patient.Status).To(Equal(patients.StatusPendingPayment))
			Expect(patient.RegimenId).To(Equal("bone-density"))
			Expect(patient.AccessCode).ToNot(BeEmpty())

			remaining, err := pool.Remaining(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(seed.PoolSize - 1))
			Expect(published).To(Equal([]events.EventType{events.EventTypePatientReferred}))
		})

		It("rejects a request with a missing field before touching the pool", func() {
			request := validRequest()
			request.Email = "  "

			patient, err := service.Refer(context.Background(), request)
			Expect(patient).To(BeNil())
			Expect(err).To(MatchError(workflows.ErrMissingField))

			remaining, err := pool.Remaining(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(seed.PoolSize))
			Expect(published).To(BeEmpty())
		})

		It("rejects an unknown diagnosis before touching the pool", func() {
			request := validRequest()
			request.DiagnosisId = "NOPE"

			_, err := service.Refer(context.Background(), request)
			Expect(err).To(HaveOccurred())

			remaining, err := pool.Remaining(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(seed.PoolSize))
		})

		It("aborts with no side effects once the pool is exhausted", func() {
			for i := 0; i < seed.PoolSize; i++ {
				_, err := pool.Issue(context.Background())
				Expect(err).ToNot(HaveOccurred())
			}
			published = nil

			patient, err := service.Refer(context.Background(), validRequest())
			Expect(patient).To(BeNil())
			Expect(err).To(MatchError(credentials.ErrPoolExhausted))

			list, err := patientsRepo.List(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(BeEmpty())
			Expect(published).To(BeEmpty())
		})
	})

	Describe("ConfirmPayment", func() {
		It("marks the patient paid and publishes the event", func() {
			patient, err := service.Refer(context.Background(), validRequest())
			Expect(err).ToNot(HaveOccurred())

			Expect(service.ConfirmPayment(context.Background(), patient.Id)).To(Succeed())

			paid, err := patientsRepo.Get(context.Background(), patient.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(paid.Status).To(Equal(patients.StatusPaid))
			Expect(published).To(ContainElement(events.EventTypePaymentCompleted))
		})

		It("rejects a repeated confirmation", func() {
			patient, err := service.Refer(context.Background(), validRequest())
			Expect(err).ToNot(HaveOccurred())

			Expect(service.ConfirmPayment(context.Background(), patient.Id)).To(Succeed())
			err = service.ConfirmPayment(context.Background(), patient.Id)
			Expect(err).To(MatchError(workflows.ErrInvalidPaymentTransition))
		})

		It("rejects an unknown patient", func() {
			err := service.ConfirmPayment(context.Background(), "MFRX-ZZ999")
			Expect(err).To(MatchError(workflows.ErrInvalidPaymentTransition))
		})
	})

	Describe("SchedulePayment", func() {
		It("confirms the payment after the configured delay", func() {
			patient, err := service.Refer(context.Background(), validRequest())
			Expect(err).ToNot(HaveOccurred())

			service.SchedulePayment(patient.Id)

			Eventually(func() patients.Status {
				fetched, err := patientsRepo.Get(context.Background(), patient.Id)
				Expect(err).ToNot(HaveOccurred())
				return fetched.Status
			}).Should(Equal(patients.StatusPaid))
		})

		It("does nothing when cancelled before the delay elapses", func() {
			patient, err := service.Refer(context.Background(), validRequest())
			Expect(err).ToNot(HaveOccurred())

			cancel := service.SchedulePayment(patient.Id)
			cancel()

			Consistently(func() patients.Status {
				fetched, err := patientsRepo.Get(context.Background(), patient.Id)
				Expect(err).ToNot(HaveOccurred())
				return fetched.Status
			}, 100*time.Millisecond).Should(Equal(patients.StatusPendingPayment))
		})
	})

	Describe("PushWorkout", func() {
		var patient *patients.Patient

		BeforeEach(func() {
			var err error
			patient, err = service.Refer(context.Background(), validRequest())
			Expect(err).ToNot(HaveOccurred())
			Expect(service.ConfirmPayment(context.Background(), patient.Id)).To(Succeed())
			published = nil
		})

		It("appends a result carrying the step's machine and activity", func() {
			result, err := service.PushWorkout(context.Background(), patient.Id, "MXW-BND-01")
			Expect(err).ToNot(HaveOccurred())
			Expect(result.MachineName).To(Equal("Treadmill"))
			Expect(result.ActivityLabel).To(Equal("Brisk Walk w/ Low Incline 30 min"))
			Expect(published).To(Equal([]events.EventType{events.EventTypeWorkoutRecorded}))
		})

		It("synthesizes distance metrics for time-based activities", func() {
			result, err := service.PushWorkout(context.Background(), patient.Id, "MXW-BND-01")
			Expect(err).ToNot(HaveOccurred())
			Expect(result.MetricsSummary).To(MatchRegexp(`^Distance: \d+\.\d mi \| Avg HR: \d+ bpm$`))
		})

		It("synthesizes weight metrics for set-based activities", func() {
			result, err := service.PushWorkout(context.Background(), patient.Id, "MXW-BND-02")
			Expect(err).ToNot(HaveOccurred())
			Expect(result.MetricsSummary).To(MatchRegexp(`^Weight: \d+ lbs \| Volume: \d+ lbs$`))
		})

		It("rejects a step outside the patient's regimen", func() {
			result, err := service.PushWorkout(context.Background(), patient.Id, "MXW-CDI-01")
			Expect(result).To(BeNil())
			Expect(err).To(HaveOccurred())
		})

		It("rejects an unknown patient", func() {
			_, err := service.PushWorkout(context.Background(), "MFRX-ZZ999", "MXW-BND-01")
			Expect(err).To(MatchError(patients.ErrNotFound))
		})
	})
})

package patients_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	patientsTest "github.com/garrettborunda-lab/movefitrx-poc/patients/test"
)

var _ = Describe("Patients Repository", func() {
	var repo patients.Repository

	BeforeEach(func() {
		repo = patients.NewMemoryRepository()
	})

	Describe("Create", func() {
		It("inserts the record with status PENDING_PAYMENT", func() {
			randomPatient := patientsTest.RandomPatient()
			randomPatient.Status = patients.StatusPaid

			created, err := repo.Create(context.Background(), randomPatient)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).To(Equal(randomPatient.Id))
			Expect(created.Status).To(Equal(patients.StatusPendingPayment))
			Expect(created.CreatedAt).ToNot(BeZero())
			Expect(created.PaidAt).To(BeNil())
		})

		It("rejects a duplicate id", func() {
			randomPatient := patientsTest.RandomPatient()

			_, err := repo.Create(context.Background(), randomPatient)
			Expect(err).ToNot(HaveOccurred())

			_, err = repo.Create(context.Background(), randomPatient)
			Expect(err).To(MatchError(patients.ErrDuplicate))
		})
	})

	Describe("Get", func() {
		It("returns ErrNotFound for an unknown id", func() {
			patient, err := repo.Get(context.Background(), "MFRX-ZZ999")
			Expect(patient).To(BeNil())
			Expect(err).To(MatchError(patients.ErrNotFound))
		})

		It("returns a copy that does not alias the stored record", func() {
			randomPatient := patientsTest.RandomPatient()
			_, err := repo.Create(context.Background(), randomPatient)
			Expect(err).ToNot(HaveOccurred())

			fetched, err := repo.Get(context.Background(), randomPatient.Id)
			Expect(err).ToNot(HaveOccurred())
			fetched.Name = "mutated"

			again, err := repo.Get(context.Background(), randomPatient.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(again.Name).To(Equal(randomPatient.Name))
		})
	})

	Describe("MarkPaid", func() {
		var created *patients.Patient

		BeforeEach(func() {
			var err error
			created, err = repo.Create(context.Background(), patientsTest.RandomPatient())
			Expect(err).ToNot(HaveOccurred())
		})

		It("transitions PENDING_PAYMENT to PAID exactly once", func() {
			applied, err := repo.MarkPaid(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(applied).To(BeTrue())

			paid, err := repo.Get(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(paid.Status).To(Equal(patients.StatusPaid))
			Expect(paid.PaidAt).ToNot(BeNil())

			applied, err = repo.MarkPaid(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(applied).To(BeFalse())
		})

		It("never reverses a paid status", func() {
			_, err := repo.MarkPaid(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())

			firstPaid, err := repo.Get(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())

			_, err = repo.MarkPaid(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())

			secondPaid, err := repo.Get(context.Background(), created.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(secondPaid.Status).To(Equal(patients.StatusPaid))
			Expect(secondPaid.PaidAt).To(Equal(firstPaid.PaidAt))
		})

		It("is a no-op for an unknown id", func() {
			applied, err := repo.MarkPaid(context.Background(), "MFRX-ZZ999")
			Expect(err).ToNot(HaveOccurred())
			Expect(applied).To(BeFalse())
		})
	})

	Describe("List", func() {
		It("sorts by creation time descending regardless of insertion order", func() {
			older := patientsTest.RandomPatient()
			older.Id = "MFRX-OLD01"
			older.CreatedAt = time.Now().Add(-48 * time.Hour)

			newer := patientsTest.RandomPatient()
			newer.Id = "MFRX-NEW01"
			newer.CreatedAt = time.Now().Add(-1 * time.Hour)

			_, err := repo.Create(context.Background(), older)
			Expect(err).ToNot(HaveOccurred())
			_, err = repo.Create(context.Background(), newer)
			Expect(err).ToNot(HaveOccurred())

			list, err := repo.List(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(list).To(HaveLen(2))
			Expect(list[0].Id).To(Equal("MFRX-NEW01"))
			Expect(list[1].Id).To(Equal("MFRX-OLD01"))
		})
	})
})

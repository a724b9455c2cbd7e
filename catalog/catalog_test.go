package catalog_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
)

var _ = Describe("Catalog", func() {
	Describe("Diagnoses", func() {
		It("maps every diagnosis to an existing regimen", func() {
			diagnoses := catalog.Diagnoses()
			Expect(diagnoses).To(HaveLen(6))

			for _, diagnosis := range diagnoses {
				regimen, err := catalog.RegimenById(diagnosis.RegimenId)
				Expect(err).ToNot(HaveOccurred())
				Expect(regimen.Steps).ToNot(BeEmpty())
			}
		})

		It("returns a copy callers cannot mutate", func() {
			catalog.Diagnoses()[0].Name = "mutated"
			Expect(catalog.Diagnoses()[0].Name).To(Equal("Symptomatic Menopausal Transition"))
		})
	})

	Describe("DiagnosisById", func() {
		It("resolves a known diagnosis", func() {
			diagnosis, err := catalog.DiagnosisById("OSTE")
			Expect(err).ToNot(HaveOccurred())
			Expect(diagnosis.Name).To(Equal("Osteoporosis"))
			Expect(diagnosis.Icd10Code).To(Equal("M81.0"))
			Expect(diagnosis.RegimenId).To(Equal(catalog.RegimenBoneDensity))
		})

		It("rejects an unknown id", func() {
			diagnosis, err := catalog.DiagnosisById("NOPE")
			Expect(diagnosis).To(BeNil())
			Expect(err).To(MatchError(catalog.ErrDiagnosisNotFound))
		})
	})

	Describe("RegimenForDiagnosis", func() {
		It("resolves the prescribed regimen", func() {
			regimen, err := catalog.RegimenForDiagnosis("HYPT")
			Expect(err).ToNot(HaveOccurred())
			Expect(regimen.Id).To(Equal(catalog.RegimenCardioVascular))
		})

		It("shares the bone density regimen between osteopenia and osteoporosis", func() {
			forOsteopenia, err := catalog.RegimenForDiagnosis("OSTP")
			Expect(err).ToNot(HaveOccurred())
			forOsteoporosis, err := catalog.RegimenForDiagnosis("OSTE")
			Expect(err).ToNot(HaveOccurred())
			Expect(forOsteopenia.Id).To(Equal(forOsteoporosis.Id))
		})
	})

	Describe("StepById", func() {
		It("resolves a step within the regimen", func() {
			regimen, err := catalog.RegimenById(catalog.RegimenBoneDensity)
			Expect(err).ToNot(HaveOccurred())

			step, err := regimen.StepById("MXW-BND-01")
			Expect(err).ToNot(HaveOccurred())
			Expect(step.Machine).To(Equal("Treadmill"))
			Expect(step.Activity).To(Equal("Brisk Walk w/ Low Incline 30 min"))
		})

		It("rejects a step from another regimen", func() {
			regimen, err := catalog.RegimenById(catalog.RegimenBoneDensity)
			Expect(err).ToNot(HaveOccurred())

			step, err := regimen.StepById("MXW-CDI-01")
			Expect(step).To(BeNil())
			Expect(err).To(MatchError(catalog.ErrStepNotFound))
		})
	})
})

package lmn

import (
	"bytes"
	"text/template"
	"time"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
)

// Generator produces the Letter of Medical Necessity text for a referred
// patient. Pure templating; no state.
type Generator struct {
	template *template.Template
}

type letterData struct {
	Date          string
	PatientName   string
	DiagnosisName string
	DiagnosisCode string
	RegimenName   string
	PatientId     string
	DoctorName    string
	DoctorPhone   string
	ClinicName    string
}

const letterTemplate = `To Whom It May Concern:

Subject: Letter of Medical Necessity for Structured Exercise Prescription (MoveFitRx)

Date: {{.Date}}

This letter confirms that {{.PatientName}} is under my care and has been diagnosed with the following condition:

Primary Diagnosis: {{.DiagnosisName}} (ICD-10 Code: {{.DiagnosisCode}})

Medical Necessity

Due to the patient's condition, a structured, medically necessary exercise regimen is required to mitigate symptoms, prevent disease progression, and improve overall health markers.

The prescribed program, MoveFitRx, is a certified physical therapy and corrective exercise intervention focusing on {{.RegimenName}} (Regimen Code: {{.PatientId}}). This specific regimen is mandatory for managing the patient's diagnosed condition and cannot be achieved through general fitness programs. The exercise is delivered using specialized, clinically monitored equipment which provides Real-World Evidence (RWE) required for clinical oversight and tracking of adherence to the physician's prescription.

Prescription Details

* Referring Provider (Type 1 NPI): {{.DoctorName}}
* Provider NPI (Type 1 - Referring): 9876543210 (Mock NPI)
* Prescribing Service (Type 2 NPI): MoveFitRx Program/Service
* Provider NPI (Type 2 - Prescribing Service): 1234567890 (Mock NPI)
* Prescription: Structured exercise regimen, 3x per week for 12 weeks.

Reimbursement Request

I have determined that participation in the MoveFitRx program, including the prescribed regimen, RWE tracking, and data reporting, is medically necessary for the treatment of {{.DiagnosisName}}.

Please consider this letter a formal request to approve reimbursement for the necessary MoveFitRx Program/Service costs under the patient's Health Savings Account (HSA) or Flexible Spending Account (FSA).

If you require any further documentation, please contact me at {{.DoctorPhone}}.

Sincerely,

{{.DoctorName}}
{{.ClinicName}}
`

func NewGenerator() (*Generator, error) {
	t, err := template.New("lmn").Parse(letterTemplate)
	if err != nil {
		return nil, err
	}
	return &Generator{template: t}, nil
}

func (g *Generator) Generate(patient *patients.Patient, diagnosis *catalog.Diagnosis, regimen *catalog.Regimen) (string, error) {
	data := letterData{
		Date:          time.Now().Format("January 2, 2006"),
		PatientName:   patient.Name,
		DiagnosisName: diagnosis.Name,
		DiagnosisCode: diagnosis.Icd10Code,
		RegimenName:   regimen.Name,
		PatientId:     patient.Id,
		DoctorName:    catalog.Clinician.Name,
		DoctorPhone:   catalog.Clinician.Phone,
		ClinicName:    catalog.Clinician.Clinic,
	}

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

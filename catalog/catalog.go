package catalog

import "errors"

var ErrDiagnosisNotFound = errors.New("diagnosis not found")
var ErrRegimenNotFound = errors.New("regimen not found")
var ErrStepNotFound = errors.New("regimen step not found")

// Diagnosis is a referrable condition. Each diagnosis maps to exactly one
// exercise regimen.
type Diagnosis struct {
	Id        string
	Name      string
	Icd10Code string
	RegimenId string
}

// Step is a single prescribed exercise within a regimen. The machine and
// activity strings are the identity used to match logged workout results.
type Step struct {
	Id       string
	Machine  string
	Activity string
}

// Regimen is the ordered set of prescribed exercise steps for a diagnosis.
type Regimen struct {
	Id    string
	Name  string
	Url   string
	Steps []Step
}

const (
	RegimenHormonalStrength = "hormonal-strength"
	RegimenBoneDensity      = "bone-density"
	RegimenCardioInsulin    = "cardio-insulin"
	RegimenCardioVascular   = "cardio-vascular-health"
)

var diagnoses = []Diagnosis{
	{Id: "SMT", Name: "Symptomatic Menopausal Transition", Icd10Code: "E89.0", RegimenId: RegimenHormonalStrength},
	{Id: "PHRM", Name: "Postmenopausal Health/Risk Management", Icd10Code: "Z00.00", RegimenId: RegimenCardioInsulin},
	{Id: "OSTP", Name: "Osteopenia", Icd10Code: "M85.8", RegimenId: RegimenBoneDensity},
	{Id: "OSTE", Name: "Osteoporosis", Icd10Code: "M81.0", RegimenId: RegimenBoneDensity},
	{Id: "PCOS", Name: "PCOS", Icd10Code: "E28.2", RegimenId: RegimenCardioInsulin},
	{Id: "HYPT", Name: "Hypertension", Icd10Code: "I10", RegimenId: RegimenCardioVascular},
}

var regimens = map[string]Regimen{
	RegimenHormonalStrength: {
		Id:   RegimenHormonalStrength,
		Name: "Hormonal Balance & Strength",
		Url:  "https://movefitrx.com/regimen/hormonal-strength",
		Steps: []Step{
			{Id: "MXW-HRM-01", Machine: "Recumbent Bike", Activity: "Low Intensity Cardio 25 min"},
			{Id: "MXW-HRM-02", Machine: "Leg Press", Activity: "3 Sets x 12 Reps"},
			{Id: "MXW-HRM-03", Machine: "Diverging Seated Row", Activity: "3 Sets x 10 Reps"},
		},
	},
	RegimenBoneDensity: {
		Id:   RegimenBoneDensity,
		Name: "Bone Density & Balance",
		Url:  "https://movefitrx.com/regimen/bone-density",
		Steps: []Step{
			{Id: "MXW-BND-01", Machine: "Treadmill", Activity: "Brisk Walk w/ Low Incline 30 min"},
			{Id: "MXW-BND-02", Machine: "Calf Extension", Activity: "3 Sets x 15 Reps (Light)"},
			{Id: "MXW-BND-03", Machine: "Hip Adductor", Activity: "3 Sets x 12 Reps"},
		},
	},
	RegimenCardioInsulin: {
		Id:   RegimenCardioInsulin,
		Name: "Cardio Endurance & Insulin Sensitivity",
		Url:  "https://movefitrx.com/regimen/cardio-insulin",
		Steps: []Step{
			{Id: "MXW-CDI-01", Machine: "Ascent Trainer", Activity: "Steady State 45 min"},
			{Id: "MXW-CDI-02", Machine: "Pec Fly", Activity: "3 Sets x 15 Reps (Circuit)"},
		},
	},
	RegimenCardioVascular: {
		Id:   RegimenCardioVascular,
		Name: "Cardio Vascular Health",
		Url:  "https://movefitrx.com/regimen/cardio-vascular-health",
		Steps: []Step{
			{Id: "MXW-CVH-01", Machine: "Treadmill", Activity: "Aerobic Walk 40 min (Target HR: 110-130)"},
			{Id: "MXW-CVH-02", Machine: "Seated Leg Curl", Activity: "2 Sets x 15 Reps (Low Resistance)"},
		},
	},
}

func Diagnoses() []Diagnosis {
	result := make([]Diagnosis, len(diagnoses))
	copy(result, diagnoses)
	return result
}

func DiagnosisById(id string) (*Diagnosis, error) {
	for _, d := range diagnoses {
		if d.Id == id {
			diagnosis := d
			return &diagnosis, nil
		}
	}
	return nil, ErrDiagnosisNotFound
}

func RegimenById(id string) (*Regimen, error) {
	regimen, ok := regimens[id]
	if !ok {
		return nil, ErrRegimenNotFound
	}
	return &regimen, nil
}

// RegimenForDiagnosis resolves the regimen prescribed for a diagnosis id.
func RegimenForDiagnosis(diagnosisId string) (*Regimen, error) {
	diagnosis, err := DiagnosisById(diagnosisId)
	if err != nil {
		return nil, err
	}
	return RegimenById(diagnosis.RegimenId)
}

func (r *Regimen) StepById(stepId string) (*Step, error) {
	for _, s := range r.Steps {
		if s.Id == stepId {
			step := s
			return &step, nil
		}
	}
	return nil, ErrStepNotFound
}

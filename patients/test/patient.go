package test

import (
	"fmt"
	"time"

	"github.com/garrettborunda-lab/movefitrx-poc/catalog"
	"github.com/garrettborunda-lab/movefitrx-poc/patients"
	"github.com/garrettborunda-lab/movefitrx-poc/test"
)

func RandomPatient() patients.Patient {
	diagnoses := catalog.Diagnoses()
	diagnosis := diagnoses[test.Rand.Intn(len(diagnoses))]
	return patients.Patient{
		Id:          fmt.Sprintf("MFRX-%s%03d", test.Faker.RandomStringWithLength(2), test.Rand.Intn(999)+1),
		Name:        test.Faker.Person().Name(),
		Email:       test.Faker.Internet().Email(),
		DiagnosisId: diagnosis.Id,
		RegimenId:   diagnosis.RegimenId,
		AccessCode:  fmt.Sprintf("%06d", test.Rand.Intn(1000000)),
		Status:      patients.StatusPendingPayment,
		CreatedAt:   time.Now().Add(-time.Duration(test.Rand.Intn(72)) * time.Hour),
	}
}

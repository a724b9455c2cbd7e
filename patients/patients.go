package patients

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("patient not found")
var ErrDuplicate = errors.New("patient already referred")

type Status string

const (
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusPaid           Status = "PAID"
)

// Patient is a referred-patient record. The id is the issued credential id
// and is immutable after creation. Status only ever moves
// PENDING_PAYMENT -> PAID.
type Patient struct {
	Id          string     `bson:"id"`
	Name        string     `bson:"name"`
	Email       string     `bson:"email"`
	DiagnosisId string     `bson:"diagnosisId"`
	RegimenId   string     `bson:"regimenId"`
	AccessCode  string     `bson:"accessCode"`
	Status      Status     `bson:"status"`
	CreatedAt   time.Time  `bson:"createdAt"`
	PaidAt      *time.Time `bson:"paidAt,omitempty"`
}

type Service interface {
	// Create inserts a new record with status PENDING_PAYMENT.
	Create(ctx context.Context, patient Patient) (*Patient, error)

	Get(ctx context.Context, id string) (*Patient, error)

	// MarkPaid transitions the record to PAID if it is currently
	// PENDING_PAYMENT. It is idempotent: a second call for the same id, or a
	// call for an unknown id, reports false and applies nothing.
	MarkPaid(ctx context.Context, id string) (bool, error)

	// List returns all records sorted by CreatedAt descending.
	List(ctx context.Context) ([]*Patient, error)
}

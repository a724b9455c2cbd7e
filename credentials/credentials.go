package credentials

import (
	"context"
	"errors"
)

// ErrPoolExhausted is returned by Issue once every credential in the pool
// has been consumed. It is an expected, user-visible condition, not a fault.
var ErrPoolExhausted = errors.New("credential pool exhausted")

// Credential is a pre-provisioned Matrix/gym access-code pair. A credential
// is consumed exactly once, by the referral workflow, and never reissued.
// A downstream failure after issuance does not return the credential to the
// pool.
type Credential struct {
	Id         string `bson:"id"`
	AccessCode string `bson:"accessCode"`
	Consumed   bool   `bson:"consumed"`
}

type Pool interface {
	// Issue marks the first unconsumed credential as consumed, in original
	// insertion order, and returns it. Returns ErrPoolExhausted when none
	// are left.
	Issue(ctx context.Context) (*Credential, error)

	// Remaining reports how many credentials are still unconsumed.
	Remaining(ctx context.Context) (int, error)
}

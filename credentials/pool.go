package credentials

import (
	"context"
	"sync"

	"github.com/mohae/deepcopy"
)

type memoryPool struct {
	mu          sync.Mutex
	credentials []*Credential
}

var _ Pool = &memoryPool{}

// NewPool returns an in-memory pool seeded with the given credentials.
// The pool owns its copies; the caller's slice is never mutated.
func NewPool(seed []Credential) Pool {
	pool := &memoryPool{
		credentials: make([]*Credential, 0, len(seed)),
	}
	for _, credential := range seed {
		c := credential
		pool.credentials = append(pool.credentials, &c)
	}
	return pool
}

func (p *memoryPool) Issue(ctx context.Context) (*Credential, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, credential := range p.credentials {
		if !credential.Consumed {
			credential.Consumed = true
			return deepcopy.Copy(credential).(*Credential), nil
		}
	}

	return nil, ErrPoolExhausted
}

func (p *memoryPool) Remaining(ctx context.Context) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	remaining := 0
	for _, credential := range p.credentials {
		if !credential.Consumed {
			remaining++
		}
	}
	return remaining, nil
}

package birthday

import (
	"context"
	"sync"
)

// RepositoryStub is an in-memory Repository for tests.
type RepositoryStub struct {
	mu        sync.RWMutex
	birthdays []Birthday
	loadErr   error
	saveErr   error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{birthdays: []Birthday{}}
}

func (r *RepositoryStub) Load(_ context.Context) ([]Birthday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]Birthday, len(r.birthdays))
	copy(out, r.birthdays)
	return out, nil
}

func (r *RepositoryStub) Save(_ context.Context, birthdays []Birthday) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.birthdays = make([]Birthday, len(birthdays))
	copy(r.birthdays, birthdays)
	return nil
}

func (r *RepositoryStub) FailLoadsWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadErr = err
}

func (r *RepositoryStub) FailSavesWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

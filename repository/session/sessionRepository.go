// repository/session/repo.go
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/SelinaMogicato/Car4You/model"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

// Repo keeps one BookingState per active session. In-memory only: the
// wizard is ephemeral and nothing survives a restart.
type Repo interface {
	Create(ctx context.Context) (string, *model.BookingState, error)
	Get(ctx context.Context, id string) (*model.BookingState, error)
	Save(ctx context.Context, id string, st *model.BookingState) error
	Delete(ctx context.Context, id string) error
}

type repo struct {
	mu       sync.RWMutex
	sessions map[string]*model.BookingState
}

func New() Repo {
	return &repo{sessions: make(map[string]*model.BookingState)}
}

func (r *repo) Create(ctx context.Context) (string, *model.BookingState, error) {
	id := uuid.NewString()
	st := model.NewBookingState()

	r.mu.Lock()
	r.sessions[id] = st
	r.mu.Unlock()

	return id, st.Clone(), nil
}

// Get hands out a deep copy; callers mutate it and Save it back.
func (r *repo) Get(ctx context.Context, id string) (*model.BookingState, error) {
	r.mu.RLock()
	st, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return st.Clone(), nil
}

func (r *repo) Save(ctx context.Context, id string, st *model.BookingState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	r.sessions[id] = st.Clone()
	return nil
}

func (r *repo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

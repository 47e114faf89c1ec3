package contacts

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/contactbook/internal/common"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	items []Contact
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, c *Contact) (*Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *c)
	out := *c
	return &out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, c *Contact) (*Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(c.ID)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	c.CreatedAt = r.items[i].CreatedAt
	r.items[i] = *c
	out := *c
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

func (r *InMemoryRepository) index(id string) int {
	return slices.IndexFunc(r.items, func(c Contact) bool { return c.ID == id })
}

package contacts

import (
	"context"
)

// Repository persists contacts. List returns them oldest first. Update and
// Delete return common.ErrorNotFound for unknown ids.
type Repository interface {
	List(ctx context.Context) ([]Contact, error)
	Create(ctx context.Context, c *Contact) (*Contact, error)
	Update(ctx context.Context, c *Contact) (*Contact, error)
	Delete(ctx context.Context, id string) error
}

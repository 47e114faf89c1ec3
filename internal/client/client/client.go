package client

import (
	"context"

	"github.com/dmitrijs2005/contactbook/internal/client/models"
)

// Client is the contract the rest of the CLI uses to talk to the contacts
// backend. Every method is a single round trip; nothing is cached.
//
// Create and Update succeed on any 2xx answer. The returned contact is nil
// when the server acknowledged the write without a readable body.
type Client interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, fields models.ContactFields) (*models.Contact, error)
	Update(ctx context.Context, id string, fields models.ContactFields) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/contactbook/internal/server/contacts"
)

type InMemoryRepositoryManager struct {
	contacts contacts.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{contacts: contacts.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Contacts() contacts.Repository {
	return m.contacts
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

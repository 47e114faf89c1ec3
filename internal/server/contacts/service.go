package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/google/uuid"
)

type Service struct {
	repo   Repository
	logger logging.Logger
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("module", "contacts"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *Service) List(ctx context.Context) ([]Contact, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list contacts", "err", err)
		return nil, common.ErrorInternal
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, f Fields) (*Contact, error) {
	if err := validate(f); err != nil {
		return nil, err
	}

	c := &Contact{ID: s.newID(), CreatedAt: s.now().UTC()}
	f.apply(c)

	out, err := s.repo.Create(ctx, c)
	if err != nil {
		s.logger.Error(ctx, "create contact", "err", err)
		return nil, common.ErrorInternal
	}
	s.logger.Info(ctx, "contact created", "id", out.ID)
	return out, nil
}

func (s *Service) Update(ctx context.Context, id string, f Fields) (*Contact, error) {
	if strings.TrimSpace(id) == "" {
		return nil, common.ErrorInvalidID
	}
	if err := validate(f); err != nil {
		return nil, err
	}

	c := &Contact{ID: id}
	f.apply(c)

	out, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, s.repoError(ctx, "update contact", id, err)
	}
	s.logger.Info(ctx, "contact updated", "id", id)
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return common.ErrorInvalidID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.repoError(ctx, "delete contact", id, err)
	}
	s.logger.Info(ctx, "contact deleted", "id", id)
	return nil
}

func (s *Service) repoError(ctx context.Context, op, id string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	s.logger.Error(ctx, op, "id", id, "err", err)
	return common.ErrorInternal
}

// validate requires every field to be non-blank. The email shape is only
// checked loosely; the client does the same.
func validate(f Fields) error {
	var missing []string
	for _, p := range []struct{ name, v string }{
		{"name", f.Name},
		{"surname", f.Surname},
		{"phoneNumber", f.PhoneNumber},
		{"email", f.Email},
	} {
		if strings.TrimSpace(p.v) == "" {
			missing = append(missing, p.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", common.ErrorValidation, strings.Join(missing, ", "))
	}
	if !strings.Contains(f.Email, "@") {
		return fmt.Errorf("%w: email must contain @", common.ErrorValidation)
	}
	return nil
}

package contacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenRepo struct{ err error }

func (b brokenRepo) List(context.Context) ([]Contact, error)            { return nil, b.err }
func (b brokenRepo) Create(context.Context, *Contact) (*Contact, error) { return nil, b.err }
func (b brokenRepo) Update(context.Context, *Contact) (*Contact, error) { return nil, b.err }
func (b brokenRepo) Delete(context.Context, string) error               { return b.err }

func newTestService(repo Repository) *Service {
	s := NewService(repo, logging.Discard())
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	n := 0
	s.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	return s
}

var validFields = Fields{Name: "John", Surname: "Doe", PhoneNumber: "555-1234", Email: "john@x.com"}

func TestService_CreateAssignsIDAndTime(t *testing.T) {
	s := newTestService(NewInMemoryRepository())

	got, err := s.Create(context.Background(), validFields)
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, "John", got.Name)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), got.CreatedAt)
}

func TestService_Validation(t *testing.T) {
	s := newTestService(NewInMemoryRepository())
	ctx := context.Background()

	tests := []struct {
		name string
		f    Fields
		msg  string
	}{
		{name: "all blank", f: Fields{}, msg: "missing name, surname, phoneNumber, email"},
		{name: "whitespace only", f: Fields{Name: " ", Surname: "Doe", PhoneNumber: "1", Email: "a@b"}, msg: "missing name"},
		{name: "email without at", f: Fields{Name: "A", Surname: "B", PhoneNumber: "1", Email: "ab"}, msg: "email must contain @"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(ctx, tt.f)
			assert.ErrorIs(t, err, common.ErrorValidation)
			assert.ErrorContains(t, err, tt.msg)

			_, err = s.Update(ctx, "x", tt.f)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestService_UpdateDeleteMapErrors(t *testing.T) {
	ctx := context.Background()
	s := newTestService(NewInMemoryRepository())

	_, err := s.Update(ctx, "nope", validFields)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "nope"), common.ErrorNotFound)
	assert.ErrorIs(t, s.Delete(ctx, " "), common.ErrorInvalidID)
	_, err = s.Update(ctx, "", validFields)
	assert.ErrorIs(t, err, common.ErrorInvalidID)

	broken := newTestService(brokenRepo{err: errors.New("disk on fire")})
	_, err = broken.List(ctx)
	assert.ErrorIs(t, err, common.ErrorInternal)
	_, err = broken.Create(ctx, validFields)
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.ErrorIs(t, broken.Delete(ctx, "x"), common.ErrorInternal)
}

func TestService_UpdateKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestService(NewInMemoryRepository())

	first, err := s.Create(ctx, validFields)
	require.NoError(t, err)
	_, err = s.Create(ctx, Fields{Name: "Jane", Surname: "Roe", PhoneNumber: "2", Email: "jane@x.com"})
	require.NoError(t, err)

	upd := validFields
	upd.PhoneNumber = "000"
	_, err = s.Update(ctx, first.ID, upd)
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "000", list[0].PhoneNumber)
}

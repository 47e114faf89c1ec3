package models

import (
	"errors"
	"fmt"
	"strings"
)

// Field names one editable contact attribute. Values match the JSON keys.
type Field string

const (
	FieldName        Field = "name"
	FieldSurname     Field = "surname"
	FieldPhoneNumber Field = "phoneNumber"
	FieldEmail       Field = "email"
)

// EditableFields lists the form fields in display order.
var EditableFields = []Field{FieldName, FieldSurname, FieldPhoneNumber, FieldEmail}

var ErrUnknownField = errors.New("unknown field")

// Label is the human-readable form label of f.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "First Name"
	case FieldSurname:
		return "Last Name"
	case FieldPhoneNumber:
		return "Phone Number"
	case FieldEmail:
		return "Email Address"
	default:
		return string(f)
	}
}

// ParseField resolves user input to a Field. Matching is case-insensitive and
// accepts a few short aliases ("first", "last", "phone", "mail").
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "first", "firstname":
		return FieldName, nil
	case "surname", "last", "lastname":
		return FieldSurname, nil
	case "phonenumber", "phone", "tel":
		return FieldPhoneNumber, nil
	case "email", "mail":
		return FieldEmail, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// Mode is derived from the draft: editing an existing contact or creating a
// new one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Draft is the transient staging copy of a contact behind the form. An empty
// ID is the "nothing selected" sentinel and means create mode.
type Draft struct {
	ID string
	ContactFields
}

// EmptyDraft returns the sentinel draft.
func EmptyDraft() Draft {
	return Draft{}
}

// DraftFrom copies every field of c, including its id, into a new draft.
func DraftFrom(c Contact) Draft {
	return Draft{ID: c.ID, ContactFields: c.Fields()}
}

func (d Draft) Mode() Mode {
	if d.ID != "" {
		return ModeEdit
	}
	return ModeCreate
}

func (d Draft) IsEditing() bool {
	return d.Mode() == ModeEdit
}

// IsEmpty reports whether d equals the sentinel.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// Get returns the current value of f.
func (d Draft) Get(f Field) (string, error) {
	switch f {
	case FieldName:
		return d.Name, nil
	case FieldSurname:
		return d.Surname, nil
	case FieldPhoneNumber:
		return d.PhoneNumber, nil
	case FieldEmail:
		return d.Email, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
}

// With returns a copy of d with f set to value. Any text is accepted.
func (d Draft) With(f Field, value string) (Draft, error) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldSurname:
		d.Surname = value
	case FieldPhoneNumber:
		d.PhoneNumber = value
	case FieldEmail:
		d.Email = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return d, nil
}

// Payload is the request body for create/update. It never carries the id.
func (d Draft) Payload() ContactFields {
	return d.ContactFields
}

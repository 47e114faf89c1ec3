// Package models defines the client-side contact types: the persisted
// Contact, its editable field set, and the transient form Draft.
package models

// Contact is a person's contact details as served by the remote API.
// ID is assigned by the server and never changes once issued.
type Contact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// ContactFields is the editable part of a Contact. It is the request body of
// create and update calls; the id travels only in the URL.
type ContactFields struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// Fields returns the editable part of c.
func (c Contact) Fields() ContactFields {
	return ContactFields{
		Name:        c.Name,
		Surname:     c.Surname,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
	}
}

// FullName joins name and surname for display.
func (c Contact) FullName() string {
	switch {
	case c.Name == "":
		return c.Surname
	case c.Surname == "":
		return c.Name
	default:
		return c.Name + " " + c.Surname
	}
}

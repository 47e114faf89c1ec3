package contacts

import "time"

// Contact is the stored record. CreatedAt fixes the list order and is never
// sent to clients.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"-"`
}

// Fields is the create/update request body.
type Fields struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

func (f Fields) apply(c *Contact) {
	c.Name = f.Name
	c.Surname = f.Surname
	c.PhoneNumber = f.PhoneNumber
	c.Email = f.Email
}

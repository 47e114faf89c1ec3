package controller

import "github.com/dmitrijs2005/contactbook/internal/client/models"

// Status is the network and notification state of the form.
type Status struct {
	Loading   bool
	Saving    bool
	ErrorKind ErrorKind
	Error     string
	Success   string
}

// View is an immutable snapshot of everything a renderer needs.
type View struct {
	Contacts []models.Contact
	Draft    models.Draft
	Mode     models.Mode
	Status
}

func (v View) Count() int {
	return len(v.Contacts)
}

// Empty reports whether the empty-state should be shown.
func (v View) Empty() bool {
	return len(v.Contacts) == 0
}

// FormTitle and SubmitLabel follow the current mode.
func (v View) FormTitle() string {
	if v.Mode == models.ModeEdit {
		return "Edit Contact"
	}
	return "New Contact"
}

func (v View) FormHint() string {
	if v.Mode == models.ModeEdit {
		return "Update the details below"
	}
	return "Add a new person to your list"
}

func (v View) SubmitLabel() string {
	switch {
	case v.Saving:
		return "Processing..."
	case v.Mode == models.ModeEdit:
		return "Save Changes"
	default:
		return "Create Contact"
	}
}

// CanCancel reports whether the cancel action is offered.
func (v View) CanCancel() bool {
	return v.Mode == models.ModeEdit && !v.Saving
}

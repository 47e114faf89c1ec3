package controller

import (
	"errors"
)

// ErrorKind classifies the last failure shown to the user.
type ErrorKind string

const (
	ErrorKindNone ErrorKind = ""
	FetchFailed   ErrorKind = "FetchFailed"
	SaveFailed    ErrorKind = "SaveFailed"
	DeleteFailed  ErrorKind = "DeleteFailed"
)

const (
	MsgFetchFailed  = "Failed to load contacts. Is the backend running?"
	MsgSaveFailed   = "Failed to save contact. Please check connection."
	MsgDeleteFailed = "Failed to delete contact."

	MsgContactUpdated = "Contact updated successfully"
	MsgContactAdded   = "New contact added"
	MsgContactDeleted = "Contact deleted"
)

// Message is the user-facing text for k.
func (k ErrorKind) Message() string {
	switch k {
	case FetchFailed:
		return MsgFetchFailed
	case SaveFailed:
		return MsgSaveFailed
	case DeleteFailed:
		return MsgDeleteFailed
	default:
		return ""
	}
}

var (
	ErrSaveInProgress = errors.New("save already in progress")
	ErrDeclined       = errors.New("delete not confirmed")
	ErrNotLoaded      = errors.New("contact is not in the loaded list")
)

// OpError wraps the cause of a failed network operation together with the
// kind recorded in the status.
type OpError struct {
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	return e.Kind.Message() + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Package controller reconciles the contact form with the remote list.
//
// A Controller owns the transient UI state: the form Draft, the saving flag,
// the last error and the last success message. It turns user intent into
// calls on a client.Client and, after every successful mutation, reloads the
// whole contact list through a store.Store. Nothing is mutated locally
// before the server confirms it.
//
// # Modes
//
// The mode is derived from the draft: Edit when the draft carries an id,
// Create otherwise. BeginEdit switches to Edit by copying a contact;
// CancelEdit and every successful Submit return to Create.
//
// # Status rules
//
//   - Submit is refused with ErrSaveInProgress while a save is in flight.
//   - Submit and Delete clear the error when they start; success messages are
//     only set on the success path.
//   - A failed save keeps the draft so the user can retry.
//   - Delete runs only after the injected Confirmer agrees; the default
//     Confirmer declines.
//   - A success message clears itself after SuccessMessageTTL unless a newer
//     message replaced it first.
//
// # Errors
//
// Failures are logged, recorded in the status as one of the ErrorKind
// values with its user-facing message, and returned as *OpError.
//
// Controllers are safe for concurrent use. Observers are invoked without
// internal locks held and may call View.
package controller

// Package common contains shared constants and sentinel errors used across
// contactbook components.
package common

// ContactsPath is the resource path of the contacts collection, relative to
// the configured service origin (client) or endpoints prefix (server).
const ContactsPath = "/contacts"

// RequestIDHeaderName carries a per-request correlation id from the client
// to the server logs.
const RequestIDHeaderName = "X-Request-Id"

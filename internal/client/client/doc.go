// Package client contains the contactbook API client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     four calls of the contacts resource: List, Create, Update and Delete.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that talks to
//     <base URL>/contacts, tags each request with an X-Request-Id, and maps
//     transport failures and non-2xx statuses to sentinel errors.
//
// # Wire format
//
//	GET    /contacts        -> [Contact]
//	POST   /contacts        {name, surname, phoneNumber, email} -> Contact
//	PUT    /contacts/{id}   {name, surname, phoneNumber, email} -> Contact
//	DELETE /contacts/{id}   -> empty
//
// # Error Handling
//
// Callers can match with errors.Is: ErrUnavailable (transport failure or
// 502/503/504), ErrNotFound (404), ErrRejected (other 4xx), ErrServer (other
// 5xx), ErrBadResponse (undecodable body), ErrInvalidID (empty id, no
// request sent). *StatusError carries the raw code and body for logging.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and deadlines.
package client

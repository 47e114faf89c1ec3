// Package httpapi exposes the contacts service as a JSON REST API.
//
//	GET    {prefix}/contacts        list, oldest first
//	POST   {prefix}/contacts        create, 201 with the stored contact
//	PUT    {prefix}/contacts/{id}   update, 200 with the stored contact
//	DELETE {prefix}/contacts/{id}   delete, 204
//
// Errors are {"error": "..."} with 400 for invalid input, 404 for unknown
// ids and 500 otherwise. /metrics serves Prometheus text, /liveness is a
// bare 200.
package httpapi

import (
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/dmitrijs2005/contactbook/internal/server/contacts"
	"github.com/gorilla/mux"
)

// NewRouter wires handlers and middleware. The metrics set is owned by the
// caller so tests can inspect it.
func NewRouter(prefix string, svc *contacts.Service, logger logging.Logger, set *metrics.Set) *mux.Router {
	h := &handler{svc: svc, logger: logger.With("module", "httpapi")}

	r := mux.NewRouter()
	r.Use(requestID, h.recoverPanics, h.logRequests, meterRequests(set))

	r.HandleFunc("/liveness", func(http.ResponseWriter, *http.Request) {}).Methods(http.MethodGet)
	r.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		set.WritePrometheus(w)
		metrics.WriteProcessMetrics(w)
	}).Methods(http.MethodGet)

	api := r.PathPrefix(prefix).Subrouter()
	api.HandleFunc(common.ContactsPath, h.list).Methods(http.MethodGet)
	api.HandleFunc(common.ContactsPath, h.create).Methods(http.MethodPost)
	api.HandleFunc(common.ContactsPath+"/{id}", h.update).Methods(http.MethodPut)
	api.HandleFunc(common.ContactsPath+"/{id}", h.delete).Methods(http.MethodDelete)

	return r
}

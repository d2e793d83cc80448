// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
HTTP interface for the community catalog.

# Routing Strategy

  - Public (v1): the grouped view and the flat filtered record list.
  - Restricted: admins may trigger a new load attempt.

Every request carries its own filter input (q, filter); nothing is remembered
between requests.
*/

package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/guildboard/internal/platform/apperr"
	"github.com/taibuivan/guildboard/internal/platform/ctxutil"
	"github.com/taibuivan/guildboard/internal/platform/middleware"
	requestutil "github.com/taibuivan/guildboard/internal/platform/request"
	"github.com/taibuivan/guildboard/internal/platform/respond"
	"github.com/taibuivan/guildboard/internal/platform/sec"
)

// Query parameter names carrying the filter input.
const (
	QuerySearch   = "q"
	QueryCategory = "filter"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog operations.
type Handler struct {
	service  *Service
	verifier middleware.TokenVerifier
}

// NewHandler constructs a new catalog [Handler]. verifier checks the bearer
// tokens of administrative routes only; public routes ignore Authorization.
func NewHandler(service *Service, verifier middleware.TokenVerifier) *Handler {
	return &Handler{service: service, verifier: verifier}
}

// Routes returns a [chi.Router] configured with catalog endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery
	router.Get("/", handler.getView)
	router.Get("/records", handler.listRecords)

	// ## Administrative
	router.With(
		middleware.Authenticate(handler.verifier),
		middleware.RequireRole(sec.RoleAdmin),
	).Post("/reload", handler.reload)

	return router
}

// FilterStateFrom reads the filter input of a request.
func FilterStateFrom(request *http.Request) FilterState {
	return NewFilterState(
		requestutil.Query(request, QuerySearch),
		requestutil.Query(request, QueryCategory),
	)
}

// # Catalog Endpoints

/*
GET /api/v1/catalog.

Description: Runs the pipeline and returns the grouped view model.

Request:
  - q: string (search term, substring of name, description or a tag)
  - filter: string (tag key, or "all")

Response:
  - 200: View (state "sections" or "no_results")
  - 400: VALIDATION_ERROR
  - 503: CATALOG_UNAVAILABLE when the last load failed
*/
func (handler *Handler) getView(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.View(FilterStateFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if view.State == ViewLoadFailed {
		respond.Error(writer, request, apperr.CatalogUnavailable(view.Message, handler.service.Status().Err))
		return
	}

	respond.OK(writer, view)
}

/*
GET /api/v1/catalog/records.

Description: Returns the filtered records in load order, ungrouped.

Response:
  - 200: []Record
  - 400: VALIDATION_ERROR
  - 503: CATALOG_UNAVAILABLE
*/
func (handler *Handler) listRecords(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.service.Records(FilterStateFrom(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, records)
}

/*
POST /api/v1/catalog/reload.

Description: Starts a new load attempt and waits for its outcome. The attempt
outlives a client that hangs up; only the service load timeout bounds it.

Response:
  - 200: load status
  - 401/403: missing or non-admin token
  - 503: CATALOG_UNAVAILABLE when the attempt failed
*/
func (handler *Handler) reload(writer http.ResponseWriter, request *http.Request) {
	logger := ctxutil.Logger(request.Context())
	logger.Info("catalog_reload_requested")

	if err := handler.service.Load(context.WithoutCancel(request.Context())); err != nil {
		respond.Error(writer, request, apperr.CatalogUnavailable(MessageLoadFailed, err))
		return
	}

	snapshot := handler.service.Status()
	logger.Info("catalog_reload_finished", slog.Int("records", len(snapshot.Records)))

	respond.OK(writer, map[string]any{
		"status":    snapshot.Status,
		"records":   len(snapshot.Records),
		"loaded_at": snapshot.LoadedAt.Format(time.RFC3339),
	})
}

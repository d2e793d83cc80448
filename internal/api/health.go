// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/guildboard/internal/catalog"
	"github.com/taibuivan/guildboard/internal/platform/constants"
	"github.com/taibuivan/guildboard/internal/platform/respond"
)

// HealthDependencies holds the checkers consulted by the /ready endpoint.
// Nil checkers are skipped.
type HealthDependencies struct {
	// CatalogStatus reports the outcome of the last catalog load.
	CatalogStatus func() catalog.Snapshot

	// CheckDatabase pings the PostgreSQL pool of the postgres source.
	CheckDatabase func(ctx context.Context) error

	// CheckCache pings the Redis client of the redis source.
	CheckCache func(ctx context.Context) error
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health. It answers 200 while the process runs.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus: "ok",
		"version":             constants.AppVersion,
	})
}

/*
readiness handles GET /ready.

The server is ready once a catalog load has succeeded and every configured
backend answers. A pending or failed load answers 503 so that traffic is only
routed to instances with data.
*/
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 3)
	isReady := true

	if handler.dependencies.CatalogStatus != nil {
		snapshot := handler.dependencies.CatalogStatus()
		result := checkResult{Name: constants.FieldCatalog, IsOK: snapshot.Status == catalog.StatusReady}
		switch {
		case snapshot.Err != nil:
			result.Error = snapshot.Err.Error()
		case !result.IsOK:
			result.Error = "load " + string(snapshot.Status)
		}
		isReady = isReady && result.IsOK
		results = append(results, result)
	}

	ping := func(name string, check func(ctx context.Context) error) {
		if check == nil {
			return
		}

		ctx, cancel := context.WithTimeout(request.Context(), 2*time.Second)
		defer cancel()

		result := checkResult{Name: name, IsOK: true}
		if err := check(ctx); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
		}
		results = append(results, result)
	}

	ping("postgres", handler.dependencies.CheckDatabase)
	ping("redis", handler.dependencies.CheckCache)

	status, httpStatus := "ready", http.StatusOK
	if !isReady {
		status, httpStatus = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/guildboard/internal/api"
	"github.com/taibuivan/guildboard/internal/catalog"
	"github.com/taibuivan/guildboard/internal/platform/config"
	"github.com/taibuivan/guildboard/internal/platform/constants"
	"github.com/taibuivan/guildboard/internal/platform/sec"
	"github.com/taibuivan/guildboard/internal/render"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type readiness struct {
	Data struct {
		Status string `json:"status"`
		Checks []struct {
			Name  string `json:"name"`
			IsOK  bool   `json:"ok"`
			Error string `json:"error"`
		} `json:"checks"`
	} `json:"data"`
}

func newTestServer(t *testing.T, dataPath string, deps api.HealthDependencies) (http.Handler, *catalog.Service) {
	t.Helper()

	service := catalog.NewService(catalog.NewFileSource(dataPath), catalog.NewStore(), time.Second, discardLogger)
	deps.CatalogStatus = service.Status

	page, err := render.NewHTML()
	require.NoError(t, err)

	tokens, err := sec.NewTokenService("", "", constants.AuthIssuer)
	require.NoError(t, err)

	liveness, ready := api.NewHealthHandlers(deps, discardLogger)
	cfg := &config.Config{ServerPort: "0", Environment: "development"}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := api.NewServer(ctx, cfg, discardLogger, api.Handlers{
		Liveness:  liveness,
		Readiness: ready,
		Catalog:   catalog.NewHandler(service, tokens),
		Page:      render.NewPageHandler(service, page),
	})
	return server.Handler(), service
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"nome": "Vanguarda", "descricao": "Guilda", "tags": ["guilda"]},
		{"nome": "Ana", "nick": "Nyx", "descricao": "Suporte", "tags": ["players"]}
	]`), 0o600))
	return path
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestServer_Routes(t *testing.T) {
	handler, service := newTestServer(t, writeCatalog(t), api.HealthDependencies{})
	require.NoError(t, service.Load(context.Background()))

	recorder := get(handler, "/health")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	recorder = get(handler, "/api/v1/catalog?filter=guilda")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"heading":"Vanguarda"`)

	recorder = get(handler, "/?q=vang")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "<h2>Vanguarda</h2>")

	recorder = get(handler, "/nowhere")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "NOT_FOUND")
}

/*
TestServer_Readiness follows the catalog from pending to ready to failed.
*/
func TestServer_Readiness(t *testing.T) {
	path := writeCatalog(t)
	handler, service := newTestServer(t, path, api.HealthDependencies{})

	assert.Equal(t, http.StatusServiceUnavailable, get(handler, "/ready").Code)

	require.NoError(t, service.Load(context.Background()))
	recorder := get(handler, "/ready")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body readiness
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ready", body.Data.Status)
	require.Len(t, body.Data.Checks, 1)
	assert.Equal(t, "catalog", body.Data.Checks[0].Name)

	require.NoError(t, os.Remove(path))
	require.Error(t, service.Load(context.Background()))

	recorder = get(handler, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Data.Status)
	assert.NotEmpty(t, body.Data.Checks[0].Error)

	assert.Equal(t, http.StatusServiceUnavailable, get(handler, "/").Code)
}

func TestServer_ReadinessBackends(t *testing.T) {
	handler, service := newTestServer(t, writeCatalog(t), api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("redis down") },
	})
	require.NoError(t, service.Load(context.Background()))

	recorder := get(handler, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var body readiness
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data.Checks, 3)
	assert.True(t, body.Data.Checks[1].IsOK)
	assert.Equal(t, "redis down", body.Data.Checks[2].Error)
}

func TestServer_ReloadRequiresToken(t *testing.T) {
	handler, _ := newTestServer(t, writeCatalog(t), api.HealthDependencies{})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/catalog/reload", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestServer_PublicRoutesIgnoreAuthorization sends headers the server cannot
verify (no public key configured, foreign scheme). Search must keep working.
*/
func TestServer_PublicRoutesIgnoreAuthorization(t *testing.T) {
	handler, service := newTestServer(t, writeCatalog(t), api.HealthDependencies{})
	require.NoError(t, service.Load(context.Background()))

	for _, header := range []string{"Bearer anything", "Basic dXNlcjpwYXNz"} {
		for _, target := range []string{"/?q=nyx", "/api/v1/catalog?q=nyx"} {
			request := httptest.NewRequest(http.MethodGet, target, nil)
			request.Header.Set("Authorization", header)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code, "%s %s", header, target)
			assert.Contains(t, recorder.Body.String(), "Nyx", "%s %s", header, target)
		}
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/guildboard/internal/platform/ctxutil"
	"github.com/taibuivan/guildboard/internal/platform/middleware"
	"github.com/taibuivan/guildboard/internal/platform/sec"
)

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

type fakeVerifier struct {
	claims *sec.AuthClaims
}

func (verifier fakeVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return verifier.claims, nil
}

type fakeConfig struct {
	development bool
	suffix      string
}

func (cfg fakeConfig) IsDevelopment() bool { return cfg.development }
func (cfg fakeConfig) AllowedOrigin(origin string) bool {
	return cfg.suffix != "" && len(origin) >= len(cfg.suffix) && origin[len(origin)-len(cfg.suffix):] == cfg.suffix
}

func serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.RequestID(request.Context())
	}))

	t.Run("minted", func(t *testing.T) {
		recorder := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("X-Request-ID", "upstream-1")
		recorder := serve(handler, request)
		assert.Equal(t, "upstream-1", seen)
		assert.Equal(t, "upstream-1", recorder.Header().Get("X-Request-ID"))
	})
}

/*
TestAuthenticate_RequireRole walks the operator access matrix.
*/
func TestAuthenticate_RequireRole(t *testing.T) {
	admin := &sec.AuthClaims{Role: string(sec.RoleAdmin)}
	viewer := &sec.AuthClaims{Role: string(sec.RoleViewer)}

	tests := []struct {
		name     string
		claims   *sec.AuthClaims
		header   string
		expected int
	}{
		{"anonymous", admin, "", http.StatusUnauthorized},
		{"malformed_header", admin, "Token good", http.StatusUnauthorized},
		{"invalid_token", admin, "Bearer bad", http.StatusUnauthorized},
		{"insufficient_role", viewer, "Bearer good", http.StatusForbidden},
		{"admin", admin, "Bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(fakeVerifier{claims: tt.claims})(
				middleware.RequireRole(sec.RoleAdmin)(okHandler),
			)

			request := httptest.NewRequest(http.MethodPost, "/reload", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.expected, serve(handler, request).Code)
		})
	}
}

func TestAuthenticate_AnonymousPassesThrough(t *testing.T) {
	handler := middleware.Authenticate(fakeVerifier{})(okHandler)
	assert.Equal(t, http.StatusOK, serve(handler, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestCORS(t *testing.T) {
	handler := middleware.CORS(fakeConfig{suffix: ".guildboard.gg"})(okHandler)

	t.Run("allowed_origin", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
		request.Header.Set("Origin", "https://www.guildboard.gg")
		recorder := serve(handler, request)
		assert.Equal(t, "https://www.guildboard.gg", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign_origin", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
		request.Header.Set("Origin", "https://evil.example")
		recorder := serve(handler, request)
		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodOptions, "/api/v1/catalog", nil)
		request.Header.Set("Origin", "https://www.guildboard.gg")
		assert.Equal(t, http.StatusNoContent, serve(handler, request).Code)
	})

	t.Run("development_allows_all", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Origin", "http://localhost:5173")
		recorder := serve(middleware.CORS(fakeConfig{development: true})(okHandler), request)
		assert.Equal(t, "http://localhost:5173", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 0.001, 2)(okHandler)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.7:5555"

	require.Equal(t, http.StatusOK, serve(handler, request).Code)
	require.Equal(t, http.StatusOK, serve(handler, request).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(handler, request).Code)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.8:5555"
	assert.Equal(t, http.StatusOK, serve(handler, other).Code)
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_SERVER_ERROR")
}

func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	assert.Equal(t, "203.0.113.5", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.9")
	assert.Equal(t, "198.51.100.9", middleware.RealIP(request))
}

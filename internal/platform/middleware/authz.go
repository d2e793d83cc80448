// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/taibuivan/guildboard/internal/platform/apperr"
	"github.com/taibuivan/guildboard/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/guildboard/internal/platform/request"
	"github.com/taibuivan/guildboard/internal/platform/respond"
	"github.com/taibuivan/guildboard/internal/platform/sec"
)

// TokenVerifier defines what the middleware needs to check bearer tokens.
// [*sec.TokenService] implements it.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate verifies an optional bearer token.
//
// # Flow
//  1. No Authorization header: the request continues anonymously.
//  2. Malformed header or invalid token: 401.
//  3. Valid token: the claims are stored in the request context.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Header.Get("Authorization") == "" {
				next.ServeHTTP(writer, request)
				return
			}

			token, ok := requestutil.BearerToken(request)
			if !ok {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := ctxutil.WithClaims(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests whose token role is below role.
//
// # Usage
//
// Must run after [Authenticate]; a missing token is answered with 401 and an
// insufficient role with 403.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.Claims(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !sec.UserRole(claims.Role).AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It keeps query parsing in one place so that every handler trims and reads
parameters the same way.
*/
package requestutil

import (
	"net/http"
	"strings"
)

/*
Query retrieves a named query parameter from the request URL.

Surrounding whitespace is kept: a search term is matched as typed.
Returns an empty string when the parameter is absent.
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
BearerToken extracts the token of an 'Authorization: Bearer <token>' header.

Returns:
  - string: the raw token
  - bool: false when the header is absent or malformed
*/
func BearerToken(request *http.Request) (string, bool) {
	header := request.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

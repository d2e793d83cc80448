// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"
)

// maxPayloadBytes caps the size of a remote catalog payload.
const maxPayloadBytes = 8 << 20

// ErrPayloadTooLarge reports a remote catalog larger than the accepted size.
var ErrPayloadTooLarge = errors.New("payload exceeds 8 MiB")

// HTTPSource fetches the catalog document from a URL, like the page did with
// its data.json.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource constructs an [HTTPSource] with its own timeout-bound client.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Name implements [Source].
func (source *HTTPSource) Name() string { return "http" }

// Load implements [Source].
func (source *HTTPSource) Load(ctx context.Context) ([]Record, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	request.Header.Set("Accept", "application/json, application/yaml")

	response, err := source.Client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source.URL, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", source.URL, response.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source.URL, err)
	}
	if len(data) > maxPayloadBytes {
		return nil, fmt.Errorf("reading %s: %w", source.URL, ErrPayloadTooLarge)
	}

	format := FormatFromPath(request.URL.Path)
	mediaType, _, _ := mime.ParseMediaType(response.Header.Get("Content-Type"))
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		format = FormatYAML
	}

	return DecodeRecords(data, format)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/taibuivan/guildboard/internal/catalog"
	"github.com/taibuivan/guildboard/internal/platform/apperr"
	"github.com/taibuivan/guildboard/internal/platform/ctxutil"
	"github.com/taibuivan/guildboard/internal/platform/respond"
)

// Viewer runs the catalog pipeline. [*catalog.Service] implements it.
type Viewer interface {
	View(state catalog.FilterState) (catalog.View, error)
}

// PageHandler serves the HTML catalog page.
type PageHandler struct {
	viewer Viewer
	sink   *HTML
}

// NewPageHandler constructs a new [PageHandler].
func NewPageHandler(viewer Viewer, sink *HTML) *PageHandler {
	return &PageHandler{viewer: viewer, sink: sink}
}

/*
ServeHTTP handles GET /.

Request:
  - q: string (search term)
  - filter: string (tag key, or "all")

Response:
  - 200: page with sections or the no-results message
  - 400: oversized filter input, painted as no results
  - 503: page with the load-failed message
*/
func (handler *PageHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	state := catalog.FilterStateFrom(request)
	status := http.StatusOK

	view, err := handler.viewer.View(state)
	if err != nil {
		appError := apperr.As(err)
		if appError == nil {
			respond.Error(writer, request, err)
			return
		}

		ctxutil.Logger(request.Context()).Warn("catalog_page_rejected", slog.String("code", appError.Code))
		status = appError.HTTPStatus
		view = catalog.NoResultsView()
	}

	if view.State == catalog.ViewLoadFailed {
		status = http.StatusServiceUnavailable
	}

	var buffer bytes.Buffer
	if err := handler.sink.RenderPage(&buffer, Page{View: view, State: state}); err != nil {
		respond.Error(writer, request, err)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/taibuivan/guildboard/internal/catalog"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Page is the data behind one catalog page.
type Page struct {
	View    catalog.View
	State   catalog.FilterState
	Filters []FilterOption
}

// HTML renders the catalog page.
//
// Descriptions may carry inline markup; they pass through a UGC policy before
// being written unescaped. Every other field is escaped by html/template.
type HTML struct {
	page   *template.Template
	policy *bluemonday.Policy
}

// NewHTML parses the embedded page template.
func NewHTML() (*HTML, error) {
	sink := &HTML{policy: bluemonday.UGCPolicy()}

	page, err := template.New("page.html.tmpl").
		Funcs(template.FuncMap{"body": sink.body}).
		ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("render: parse page template: %w", err)
	}

	sink.page = page
	return sink, nil
}

// Render writes a page for view with no active filter input.
func (sink *HTML) Render(w io.Writer, view catalog.View) error {
	return sink.RenderPage(w, Page{View: view, State: catalog.NewFilterState("", "")})
}

// RenderPage writes a full page, marking the active filter and echoing the
// search term back into the search box.
func (sink *HTML) RenderPage(w io.Writer, page Page) error {
	if page.Filters == nil {
		page.Filters = FilterOptions
	}

	if err := sink.page.Execute(w, page); err != nil {
		return fmt.Errorf("render: execute page template: %w", err)
	}
	return nil
}

func (sink *HTML) body(text string) template.HTML {
	return template.HTML(sink.policy.Sanitize(text))
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render paints a [catalog.View] onto an output.

Sinks:

  - HTML: the catalog page served at "/", with the search box and filter buttons.
  - Terminal: a styled text listing used by guildctl.

The JSON sink is the catalog HTTP handler itself. Sinks never filter or group;
they draw exactly the sections and cards they are given.
*/
package render

import (
	"io"

	"github.com/taibuivan/guildboard/internal/catalog"
)

// Sink writes a view to w.
type Sink interface {
	Render(w io.Writer, view catalog.View) error
}

// FilterOption is one category filter button.
type FilterOption struct {
	Value string
	Label string
}

// FilterOptions lists the filter buttons in display order.
var FilterOptions = []FilterOption{
	{Value: catalog.AllCategories, Label: "Todos"},
	{Value: catalog.TagGuild, Label: "Guilda"},
	{Value: catalog.TagLines, Label: "Lines"},
	{Value: catalog.TagPlayers, Label: "Jogadores"},
	{Value: catalog.TagTournament, Label: "Campeonatos"},
}

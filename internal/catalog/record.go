// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog turns the community catalog (guild, lines, players, tournaments) into
grouped, category-shaped cards.

It owns the whole decision pipeline and nothing else:

  - Classification: [Classify] places a record into exactly one [Category].
  - Filtering: [Filter] keeps the records matching a [FilterState].
  - Presentation: [Build] groups the survivors into ordered [Section] values made of [DisplaySpec] cards.

Loading raw records ([Source]) and painting the resulting [View] are collaborators,
not part of the pipeline. Every request re-runs the pipeline from scratch.
*/
package catalog

// # Core Entities

// Record is one catalog entity as it appears in the data file.
//
// Wire keys follow the published data file. An empty optional string means the
// field is absent.
type Record struct {
	Name        string   `json:"nome"                   yaml:"nome"`
	Description string   `json:"descricao"              yaml:"descricao"`
	Tags        []string `json:"tags"                   yaml:"tags"`
	Nickname    string   `json:"nick,omitempty"         yaml:"nick,omitempty"`
	ImageURL    string   `json:"imagem,omitempty"       yaml:"imagem,omitempty"`
	Link        string   `json:"link,omitempty"         yaml:"link,omitempty"`
	Year        string   `json:"ano,omitempty"          yaml:"ano,omitempty"`
	FoundedDate string   `json:"data_criacao,omitempty" yaml:"data_criacao,omitempty"`
}

// # Categories

// Category is the grouping bucket a record is placed into.
type Category string

const (
	// CategoryGuild is the fallback bucket. It also holds "line" records.
	CategoryGuild Category = "guild"
	// CategoryPlayer holds players and founders.
	CategoryPlayer Category = "player"
	// CategoryTournament holds championships.
	CategoryTournament Category = "tournament"
)

// categoryOrder is the fixed section order of every view.
var categoryOrder = []Category{CategoryGuild, CategoryPlayer, CategoryTournament}

// Title returns the section heading shown for the category.
func (c Category) Title() string {
	switch c {
	case CategoryPlayer:
		return "Jogadores"
	case CategoryTournament:
		return "Campeonatos"
	default:
		return "Guilda & Lines"
	}
}

// # Filter Input

// AllCategories is the category selector that matches every record.
const AllCategories = "all"

// FilterState is the search term and category selector driving one pipeline run.
//
// It is passed by value; the pipeline never keeps it.
type FilterState struct {
	SearchTerm string `json:"q"`
	Category   string `json:"filter"`
}

// NewFilterState builds a state, defaulting an empty selector to [AllCategories].
func NewFilterState(searchTerm, category string) FilterState {
	if category == "" {
		category = AllCategories
	}
	return FilterState{SearchTerm: searchTerm, Category: category}
}

// # View Model

// ViewState tells the render sink which kind of output to paint.
type ViewState string

const (
	ViewSections   ViewState = "sections"
	ViewNoResults  ViewState = "no_results"
	ViewLoadFailed ViewState = "load_failed"
)

// User-visible sentinel messages.
const (
	MessageNoResults  = "Nenhum resultado encontrado."
	MessageLoadFailed = "Não foi possível carregar os dados. Tente novamente mais tarde."
)

// View is the complete output of one pipeline run.
type View struct {
	State    ViewState `json:"state"`
	Sections []Section `json:"sections,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Section is a titled group of cards sharing one category.
type Section struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Category Category      `json:"category"`
	Items    []DisplaySpec `json:"items"`
}

// SubtitleKind distinguishes a person's name from a date line.
type SubtitleKind string

const (
	SubtitleName SubtitleKind = "name"
	SubtitleDate SubtitleKind = "date"
)

// Image is the optional picture shown on top of a card.
type Image struct {
	URL        string `json:"url"`
	Alt        string `json:"alt"`
	StyleClass string `json:"style_class,omitempty"`
}

// FooterLink is the optional outbound link of a card.
type FooterLink struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// DisplaySpec is a record projected into the fields its card shows.
type DisplaySpec struct {
	CardClass    string       `json:"card_class"`
	Image        *Image       `json:"image,omitempty"`
	Heading      string       `json:"heading"`
	Subtitle     string       `json:"subtitle"`
	SubtitleKind SubtitleKind `json:"subtitle_kind"`
	Body         string       `json:"body"`
	Tags         []string     `json:"tags"`
	Link         *FooterLink  `json:"link,omitempty"`
}

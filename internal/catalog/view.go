// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"slices"

	"github.com/taibuivan/guildboard/pkg/slug"
)

// # Card Vocabulary

const (
	// CardClass is carried by every card.
	CardClass = "card"
	// CardClassTournament marks cards of records tagged as championships.
	CardClassTournament = "card card-tournament"

	// LinkLabelPlayer is the footer link label of player cards.
	LinkLabelPlayer = "Conheça-me"
	// LinkLabelGuild is the footer link label of guild and line cards.
	LinkLabelGuild = "Conheça-nos"

	imageAltPrefix = "Imagem de "
)

// # Pipeline

// Run filters records by state and builds the resulting view.
func Run(records []Record, state FilterState) View {
	return Build(Filter(records, state))
}

// # View Model Builder

// Build groups already filtered records into sections.
//
// Sections always come in the order guild, player, tournament; a bucket with no
// records produces no section. Inside a section cards keep the input order.
// No records at all yields the no-results view instead of an empty section list.
func Build(records []Record) View {
	if len(records) == 0 {
		return NoResultsView()
	}

	buckets := make(map[Category][]Record, len(categoryOrder))
	for _, record := range records {
		category := Classify(record.Tags)
		buckets[category] = append(buckets[category], record)
	}

	sections := make([]Section, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		bucket := buckets[category]
		if len(bucket) == 0 {
			continue
		}

		items := make([]DisplaySpec, 0, len(bucket))
		for _, record := range bucket {
			items = append(items, Project(record, category))
		}

		sections = append(sections, Section{
			ID:       slug.From(category.Title()),
			Title:    category.Title(),
			Category: category,
			Items:    items,
		})
	}

	return View{State: ViewSections, Sections: sections}
}

// NoResultsView is painted when nothing passed the filter.
func NoResultsView() View {
	return View{State: ViewNoResults, Message: MessageNoResults}
}

// LoadFailedView is painted when the record collection could not be loaded.
func LoadFailedView() View {
	return View{State: ViewLoadFailed, Message: MessageLoadFailed}
}

// # Projection

// Project shapes a record into the card of the given category.
func Project(record Record, category Category) DisplaySpec {
	card := DisplaySpec{
		CardClass: CardClass,
		Image:     projectImage(record),
		Body:      record.Description,
		Tags:      slices.Clone(record.Tags),
	}
	if HasAnyTag(record.Tags, TagTournament) {
		card.CardClass = CardClassTournament
	}

	switch category {
	case CategoryPlayer:
		card.Heading = firstPresent(record.Nickname, record.Name)
		card.Subtitle = record.Name
		card.SubtitleKind = SubtitleName
		card.Link = projectLink(record.Link, LinkLabelPlayer)

	case CategoryTournament:
		card.Heading = record.Name
		card.Subtitle = firstPresent(record.Year, record.FoundedDate)
		card.SubtitleKind = SubtitleDate

	default:
		card.Heading = record.Name
		card.Subtitle = record.FoundedDate
		card.SubtitleKind = SubtitleDate
		card.Link = projectLink(record.Link, LinkLabelGuild)
	}

	return card
}

func projectImage(record Record) *Image {
	if record.ImageURL == "" {
		return nil
	}
	return &Image{
		URL:        record.ImageURL,
		Alt:        imageAltPrefix + record.Name,
		StyleClass: ImageStyle(record.Tags),
	}
}

func projectLink(url, label string) *FooterLink {
	if url == "" {
		return nil
	}
	return &FooterLink{URL: url, Label: label}
}

func firstPresent(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "strings"

// # Tag Vocabulary

// Tags with a meaning for classification or styling, lower-cased.
const (
	TagGuild      = "guilda"
	TagLines      = "lines"
	TagLineMobile = "line mobile"
	TagPlayers    = "players"
	TagFounders   = "fundadores"
	TagTournament = "campeonatos"
)

// Image style classes, checked in this order.
const (
	StyleGuildImage      = "guild-image"
	StyleLineImage       = "line-image"
	StylePlayerImage     = "player-image"
	StyleTournamentImage = "tournament-image"
)

// HasAnyTag reports whether any of tags equals any of names, ignoring case.
//
// It is the single tag-membership check used by both [Classify] and [ImageStyle].
func HasAnyTag(tags []string, names ...string) bool {
	for _, tag := range tags {
		lowered := strings.ToLower(tag)
		for _, name := range names {
			if lowered == strings.ToLower(name) {
				return true
			}
		}
	}
	return false
}

// # Classification

// Classify places a tag set into exactly one [Category].
//
// Priority is fixed: tournament tags win over player tags, and everything else
// (guild, lines, untagged) falls back to [CategoryGuild].
func Classify(tags []string) Category {
	switch {
	case HasAnyTag(tags, TagTournament):
		return CategoryTournament
	case HasAnyTag(tags, TagPlayers, TagFounders):
		return CategoryPlayer
	default:
		return CategoryGuild
	}
}

// ImageStyle picks the picture frame class for a tag set.
//
// This is a finer, four-way split than [Classify]: lines get their own frame even
// though they are grouped with the guild. A record matching none of the styled
// tags gets no class.
func ImageStyle(tags []string) string {
	switch {
	case HasAnyTag(tags, TagGuild):
		return StyleGuildImage
	case HasAnyTag(tags, TagLines, TagLineMobile):
		return StyleLineImage
	case HasAnyTag(tags, TagPlayers, TagFounders):
		return StylePlayerImage
	case HasAnyTag(tags, TagTournament):
		return StyleTournamentImage
	default:
		return ""
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"github.com/taibuivan/guildboard/pkg/slice"
)

// # Filter Engine

// Filter returns the records matching both the search term and the category
// selector of state, in their original order.
//
// An unknown selector is not an error: it simply matches nothing.
func Filter(records []Record, state FilterState) []Record {
	term := strings.ToLower(state.SearchTerm)

	return slice.Filter(records, func(record Record) bool {
		return matchesSearch(record, term) && matchesCategory(record, state.Category)
	})
}

// matchesSearch expects an already lower-cased term. It widens the name,
// description and tags rule with the nickname, the heading of player cards.
func matchesSearch(record Record, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(record.Name), term) ||
		strings.Contains(strings.ToLower(record.Nickname), term) ||
		strings.Contains(strings.ToLower(record.Description), term) {
		return true
	}
	for _, tag := range record.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// matchesCategory compares the selector against tags ignoring case. Only the exact
// sentinel [AllCategories] is universal.
func matchesCategory(record Record, category string) bool {
	if category == AllCategories {
		return true
	}
	return HasAnyTag(record.Tags, category)
}

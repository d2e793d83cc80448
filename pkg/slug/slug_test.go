// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/guildboard/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Guilda & Lines", "guilda-lines"},
		{"Jogadores", "jogadores"},
		{"Campeonatos", "campeonatos"},
		{"Fénix Açaí", "fenix-acai"},
		{"  --Copa 2024--  ", "copa-2024"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

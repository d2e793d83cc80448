// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taibuivan/guildboard/internal/catalog"
	"github.com/taibuivan/guildboard/pkg/slice"
)

// Terminal prints a view as styled text. Colors are only emitted when the
// writer is a color-capable terminal.
type Terminal struct{}

type terminalStyles struct {
	section  lipgloss.Style
	card     lipgloss.Style
	heading  lipgloss.Style
	subtitle lipgloss.Style
	tag      lipgloss.Style
	link     lipgloss.Style
	message  lipgloss.Style
}

func newTerminalStyles(renderer *lipgloss.Renderer) terminalStyles {
	return terminalStyles{
		section: renderer.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			MarginTop(1),
		card: renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 1),
		heading: renderer.NewStyle().Bold(true),
		subtitle: renderer.NewStyle().
			Foreground(lipgloss.Color("#8A8A8A")).
			Italic(true),
		tag: renderer.NewStyle().
			Foreground(lipgloss.Color("#04B575")),
		link: renderer.NewStyle().
			Foreground(lipgloss.Color("#5DA9E9")).
			Underline(true),
		message: renderer.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")),
	}
}

// Render writes view to w.
func (Terminal) Render(w io.Writer, view catalog.View) error {
	styles := newTerminalStyles(lipgloss.NewRenderer(w))

	if view.State != catalog.ViewSections {
		_, err := fmt.Fprintln(w, styles.message.Render(view.Message))
		return err
	}

	for _, section := range view.Sections {
		if _, err := fmt.Fprintln(w, styles.section.Render(section.Title)); err != nil {
			return err
		}
		for _, item := range section.Items {
			if _, err := fmt.Fprintln(w, styles.card.Render(terminalCard(styles, item))); err != nil {
				return err
			}
		}
	}
	return nil
}

func terminalCard(styles terminalStyles, item catalog.DisplaySpec) string {
	lines := []string{styles.heading.Render(item.Heading)}
	if item.Subtitle != "" {
		lines = append(lines, styles.subtitle.Render(item.Subtitle))
	}
	if item.Body != "" {
		lines = append(lines, item.Body)
	}

	if len(item.Tags) > 0 {
		tags := slice.Map(item.Tags, func(tag string) string { return styles.tag.Render("#" + tag) })
		lines = append(lines, strings.Join(tags, " "))
	}

	if item.Link != nil {
		lines = append(lines, item.Link.Label+": "+styles.link.Render(item.Link.URL))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to the output writer, so piping to a file or a buffer
// yields plain text. They are never applied inside tabwriter cells, where
// escape sequences would break the alignment.
type styles struct {
	title lipgloss.Style
	done  lipgloss.Style
	muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Underline(true),
		done:  r.NewStyle().Foreground(lipgloss.Color("42")),
		muted: r.NewStyle().Faint(true),
	}
}

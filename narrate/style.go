// SPDX-License-Identifier: MIT

package narrate

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette.
var (
	ColorAccent  = lipgloss.Color("#2CD7C7")
	ColorPrimary = lipgloss.Color("#20B9B4")
	ColorBorder  = lipgloss.Color("#16858E")
	ColorMuted   = lipgloss.Color("#2C4A54")
	ColorWarning = lipgloss.Color("#F4D03F")
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	border  lipgloss.Style
}

func colourStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
		heading: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		success: lipgloss.NewStyle().Foreground(ColorAccent),
		warning: lipgloss.NewStyle().Foreground(ColorWarning),
		header:  lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1),
		cell:    lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		border:  lipgloss.NewStyle().Foreground(ColorBorder),
	}
}

func plainStyles() styles {
	none := lipgloss.NewStyle()

	return styles{
		title:   none,
		heading: none,
		muted:   none,
		success: none,
		warning: none,
		header:  none.Padding(0, 1),
		cell:    none.Padding(0, 1).Align(lipgloss.Right),
		border:  none,
	}
}

// Renderer formats engine results.
type Renderer struct {
	plain bool
	st    styles
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables colour and uses ASCII borders.
func WithPlain(on bool) Option {
	return func(r *Renderer) { r.plain = on }
}

// New returns a Renderer; colour is on unless WithPlain(true) is given.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.plain {
		r.st = plainStyles()
	} else {
		r.st = colourStyles()
	}

	return r
}

// grid builds a table with the renderer's border and cell styles.
// headers may be empty for a bare matrix.
func (r *Renderer) grid(headers []string, rows [][]string) string {
	border := lipgloss.RoundedBorder()
	if r.plain {
		border = lipgloss.ASCIIBorder()
	}
	t := table.New().
		Border(border).
		BorderStyle(r.st.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.st.header
			}

			return r.st.cell
		}).
		Rows(rows...)
	if len(headers) > 0 {
		t = t.Headers(headers...)
	}

	return t.String()
}

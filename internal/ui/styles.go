package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/card"
	"github.com/simonbystrom/commandcenter/internal/config"
	"github.com/simonbystrom/commandcenter/internal/task"
)

// Styles holds every lipgloss style used by the dashboard, built from the
// configured colors.
type Styles struct {
	Title  lipgloss.Style
	Text   lipgloss.Style
	Dim    lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
	Search lipgloss.Style
	Meta   lipgloss.Style

	Chip       lipgloss.Style
	ChipActive lipgloss.Style
	ChipCursor lipgloss.Style

	Tab       lipgloss.Style
	TabActive lipgloss.Style

	Column     [len(board.Buckets)]lipgloss.Style
	StatNumber map[string]lipgloss.Style
	StatBox    lipgloss.Style

	Card       lipgloss.Style
	CardActive lipgloss.Style

	Priority map[task.Priority]lipgloss.Style
	Marker   map[card.Kind]lipgloss.Style

	Badge      lipgloss.Style
	categories map[string]lipgloss.Style

	Modal        lipgloss.Style
	SectionTitle lipgloss.Style
	Blocker      lipgloss.Style
	Link         lipgloss.Style
	Overlay      lipgloss.Color
}

// NewStyles builds Styles from a color palette.
func NewStyles(c config.Colors) Styles {
	badge := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Bold(true)
	}

	s := Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)).
			Padding(0, 1),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Text)),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Dim)),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Help)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)).Bold(true),
		Search: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Search)),
		Meta:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.HelpActive)),

		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Chip)).
			Padding(0, 1),
		ChipActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Overlay)).
			Background(lipgloss.Color(c.ChipActive)).
			Bold(true).
			Padding(0, 1),
		ChipCursor: lipgloss.NewStyle().
			Underline(true),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Dim)).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Overlay)).
			Background(lipgloss.Color(c.Selected)).
			Bold(true).
			Padding(0, 1),

		StatBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1).
			Align(lipgloss.Center),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
		CardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Selected)).
			Padding(0, 1),

		Priority: map[task.Priority]lipgloss.Style{
			task.PriorityHigh:   badge(c.High),
			task.PriorityMedium: badge(c.Medium),
			task.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Low)),
		},
		Marker: map[card.Kind]lipgloss.Style{
			card.KindCompleted:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Done)),
			card.KindHours:           lipgloss.NewStyle().Foreground(lipgloss.Color(c.Dim)),
			card.KindBlockers:        badge(c.Blocker),
			card.KindWaiting:         badge(c.Waiting),
			card.KindNeedsValidation: badge(c.Validation),
		},

		Badge:      badge(c.Badge),
		categories: make(map[string]lipgloss.Style, len(c.Categories)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Selected)).
			Padding(1, 2),
		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)),
		Blocker: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Blocker)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(c.Blocker)).
			PaddingLeft(1),
		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Link)).
			Underline(true),
		Overlay: lipgloss.Color(c.Overlay),
	}

	bucketColors := [len(board.Buckets)]string{
		board.Done:       c.Done,
		board.Testing:    c.Testing,
		board.InProgress: c.InProgress,
		board.Todo:       c.Todo,
	}
	s.StatNumber = map[string]lipgloss.Style{
		"cost": badge(c.Cost),
	}
	for _, b := range board.Buckets {
		s.Column[b] = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(bucketColors[b]))
		s.StatNumber[card.BucketClass(b)] = badge(bucketColors[b])
	}
	// the summary row labels done as "completed"
	s.StatNumber["completed"] = s.StatNumber[card.BucketClass(board.Done)]

	for name, color := range c.Categories {
		s.categories[name] = badge(color)
	}
	return s
}

// Category returns the badge style of a category.
func (s Styles) Category(name string) lipgloss.Style {
	if st, ok := s.categories[name]; ok {
		return st
	}
	return s.Badge
}

// PriorityMarker renders the priority icon, or "" for none.
func (s Styles) PriorityMarker(c card.Card) string {
	if c.PriorityIcon == "" {
		return ""
	}
	return s.Priority[c.Priority].Render(c.PriorityIcon)
}

// RenderMarker renders an icon + text marker.
func (s Styles) RenderMarker(m card.Marker) string {
	return s.Marker[m.Kind].Render(m.Icon + " " + m.Text)
}

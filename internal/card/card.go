// Package card describes what each surface shows for a task, the summary
// statistics and the detail modal. It decides presence and wording; the
// terminal and HTML renderers only decide styling.
package card

import (
	"fmt"
	"strconv"

	"github.com/simonbystrom/commandcenter/internal/task"
)

// Kind identifies a marker so renderers can style it.
type Kind int

const (
	KindCompleted Kind = iota
	KindHours
	KindBlockers
	KindWaiting
	KindNeedsValidation
)

// Class is a stable identifier for the kind, used as a CSS class suffix.
func (k Kind) Class() string {
	switch k {
	case KindCompleted:
		return "completed"
	case KindHours:
		return "hours"
	case KindBlockers:
		return "blockers"
	case KindWaiting:
		return "waiting"
	case KindNeedsValidation:
		return "testing"
	}
	return "unknown"
}

// Marker is a small icon + text indicator on a card.
type Marker struct {
	Kind Kind
	Icon string
	Text string
}

// Card is the summary of a task shown in a column.
type Card struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Priority     task.Priority // empty unless recognized
	PriorityIcon string

	Meta   []Marker // completion date, estimated hours
	Badges []Marker // blockers, waiting for team, needs validation
}

// New builds the card for t.
func New(t task.Task) Card {
	c := Card{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
	}
	c.Priority, c.PriorityIcon = priority(t.Priority)

	if d, ok := t.CompletedDate.Get(); ok && d != "" {
		c.Meta = append(c.Meta, Marker{Kind: KindCompleted, Icon: "✅", Text: d})
	}
	if h, ok := t.EstimatedHours.Get(); ok {
		c.Meta = append(c.Meta, Marker{Kind: KindHours, Icon: "⏱️", Text: FormatHours(h) + "h"})
	}

	if n := len(t.Blockers); n > 0 {
		c.Badges = append(c.Badges, Marker{Kind: KindBlockers, Icon: "🚧", Text: BlockerLabel(n)})
	}
	if t.WaitingForTeam() {
		c.Badges = append(c.Badges, Marker{Kind: KindWaiting, Icon: "⏳", Text: "Waiting for team"})
	}
	if t.NeedsValidation() {
		c.Badges = append(c.Badges, Marker{Kind: KindNeedsValidation, Icon: "🧪", Text: "Needs validation"})
	}
	return c
}

// PriorityIcon returns the marker for a priority level, or "" for none.
func PriorityIcon(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return "🔥"
	case task.PriorityMedium:
		return "⚡"
	case task.PriorityLow:
		return "💤"
	}
	return ""
}

func priority(o task.Optional[task.Priority]) (task.Priority, string) {
	p, ok := o.Get()
	if !ok || !p.Known() {
		return "", ""
	}
	return p, PriorityIcon(p)
}

// BlockerLabel pluralizes the blocker count: "1 blocker", "2 blockers".
func BlockerLabel(n int) string {
	if n == 1 {
		return "1 blocker"
	}
	return fmt.Sprintf("%d blockers", n)
}

// FormatHours prints hours without trailing zeros: 12, 6.5, 0.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

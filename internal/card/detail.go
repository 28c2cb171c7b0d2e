package card

import (
	"github.com/simonbystrom/commandcenter/internal/task"
)

// Detail is the content of the detail modal. Empty sections are nil and
// must be omitted by renderers.
type Detail struct {
	Card

	Details  []string
	Blockers []string
	Links    []task.Link

	StatusNote  string
	TestingNote string

	Completed string // "Completed: <date>"
	Estimated string // "Estimated: <h> hours"
}

// NewDetail builds the modal content for t.
func NewDetail(t task.Task) Detail {
	d := Detail{Card: New(t)}
	if len(t.Details) > 0 {
		d.Details = t.Details
	}
	if len(t.Blockers) > 0 {
		d.Blockers = t.Blockers
	}
	if len(t.Links) > 0 {
		d.Links = t.Links
	}
	if n, ok := t.StatusNote.Get(); ok {
		d.StatusNote = n
	}
	if n, ok := t.TestingNote.Get(); ok {
		d.TestingNote = n
	}
	if v, ok := t.CompletedDate.Get(); ok && v != "" {
		d.Completed = "Completed: " + v
	}
	if h, ok := t.EstimatedHours.Get(); ok {
		d.Estimated = "Estimated: " + FormatHours(h) + " hours"
	}
	return d
}

// HasFooter reports whether the footer has anything to show.
func (d Detail) HasFooter() bool {
	return d.Completed != "" || d.Estimated != ""
}

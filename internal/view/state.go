// Package view holds the transient, per-session state of a dashboard:
// search text, selected categories, the task open in the detail modal and
// the active bucket of the narrow layout.
package view

import (
	"slices"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/task"
)

// DefaultTab is the bucket shown first in the narrow layout.
const DefaultTab = board.Testing

// State is a value type. Mutating methods never share backing arrays
// with earlier copies, so a copied State can be kept as a snapshot.
type State struct {
	search     string
	categories []string

	selected    task.Task
	hasSelected bool

	tab board.Bucket
}

// New returns the state at session start.
func New() State {
	return State{tab: DefaultTab}
}

// Search returns the current search text.
func (s State) Search() string {
	return s.search
}

// SetSearch replaces the search text.
func (s *State) SetSearch(text string) {
	s.search = text
}

// Categories returns the selected categories in the order they were chosen.
func (s State) Categories() []string {
	return slices.Clone(s.categories)
}

// CategorySelected reports whether c is in the selected set.
func (s State) CategorySelected(c string) bool {
	return slices.Contains(s.categories, c)
}

// ToggleCategory adds c if absent, removes it if present.
func (s *State) ToggleCategory(c string) {
	if i := slices.Index(s.categories, c); i >= 0 {
		s.categories = slices.Delete(slices.Clone(s.categories), i, i+1)
		return
	}
	s.categories = append(slices.Clone(s.categories), c)
}

// ClearCategories empties the selected set in one step.
func (s *State) ClearCategories() {
	s.categories = nil
}

// ShowClear reports whether the clear affordance should be offered.
func (s State) ShowClear() bool {
	return len(s.categories) > 0
}

// Query is the filter input derived from the state.
func (s State) Query() board.Query {
	return board.Query{Search: s.search, Categories: s.Categories()}
}

// Select opens t in the detail modal. Selecting while another task is
// open replaces it directly.
func (s *State) Select(t task.Task) {
	s.selected = t
	s.hasSelected = true
}

// Close dismisses the detail modal.
func (s *State) Close() {
	s.selected = task.Task{}
	s.hasSelected = false
}

// Selected returns the task open in the modal, if any.
func (s State) Selected() (task.Task, bool) {
	return s.selected, s.hasSelected
}

// Tab returns the active bucket of the narrow layout.
func (s State) Tab() board.Bucket {
	return s.tab
}

// SetTab switches the narrow layout to b.
func (s *State) SetTab(b board.Bucket) {
	s.tab = b
}

// Package task defines a single unit of work shown on the board.
package task

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Priority is the three-level urgency marker of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Known reports whether p is one of the recognized levels.
func (p Priority) Known() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Recognized values of the free-form status fields.
const (
	StatusWaitingForTeam   = "waiting-for-team"
	TestingNeedsValidation = "needs-validation"
)

// Link is an external reference attached to a task.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Safe reports whether the link can be handed to a browser: an absolute
// http or https URL with a host.
func (l Link) Safe() bool {
	u, err := url.Parse(strings.TrimSpace(l.URL))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Task is one card on the board. Bucket membership is not a field: it is
// decided by where the task sits in the board document.
type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Details     []string `json:"details,omitempty" yaml:"details,omitempty"`
	Links       []Link   `json:"links,omitempty" yaml:"links,omitempty"`
	Blockers    []string `json:"blockers,omitempty" yaml:"blockers,omitempty"`

	CompletedDate  Optional[string]   `json:"completedDate,omitzero" yaml:"completedDate,omitempty"`
	Priority       Optional[Priority] `json:"priority,omitzero" yaml:"priority,omitempty"`
	EstimatedHours Optional[float64]  `json:"estimatedHours,omitzero" yaml:"estimatedHours,omitempty"`
	Status         Optional[string]   `json:"status,omitzero" yaml:"status,omitempty"`
	StatusNote     Optional[string]   `json:"statusNote,omitzero" yaml:"statusNote,omitempty"`
	TestingStatus  Optional[string]   `json:"testingStatus,omitzero" yaml:"testingStatus,omitempty"`
	TestingNote    Optional[string]   `json:"testingNote,omitzero" yaml:"testingNote,omitempty"`
}

// WaitingForTeam reports whether the task is parked on another team.
func (t Task) WaitingForTeam() bool {
	s, ok := t.Status.Get()
	return ok && s == StatusWaitingForTeam
}

// NeedsValidation reports whether the task is waiting on test validation.
func (t Task) NeedsValidation() bool {
	s, ok := t.TestingStatus.Get()
	return ok && s == TestingNeedsValidation
}

// Validate reports authoring errors in a single task.
func (t Task) Validate() error {
	var errs []error
	if strings.TrimSpace(t.ID) == "" {
		errs = append(errs, errors.New("id is empty"))
	}
	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, errors.New("title is empty"))
	}
	if strings.TrimSpace(t.Category) == "" {
		errs = append(errs, errors.New("category is empty"))
	}
	if h, ok := t.EstimatedHours.Get(); ok && h < 0 {
		errs = append(errs, fmt.Errorf("estimatedHours is negative (%g)", h))
	}
	return errors.Join(errs...)
}

// Package board holds the immutable task document and the operations
// derived from it: bucket iteration, category universe and filtering.
package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/simonbystrom/commandcenter/internal/task"
)

// Bucket is one of the four fixed task groupings.
type Bucket int

const (
	Done Bucket = iota
	Testing
	InProgress
	Todo
)

// Buckets lists every bucket in display order. Code that needs to visit
// all tasks iterates this list rather than naming buckets individually.
var Buckets = [...]Bucket{Done, Testing, InProgress, Todo}

// String returns the key used for the bucket in the board document.
func (b Bucket) String() string {
	switch b {
	case Done:
		return "done"
	case Testing:
		return "testing"
	case InProgress:
		return "inProgress"
	case Todo:
		return "todo"
	}
	return fmt.Sprintf("Bucket(%d)", int(b))
}

// Title is the column heading.
func (b Bucket) Title() string {
	switch b {
	case Done:
		return "Done"
	case Testing:
		return "Testing"
	case InProgress:
		return "In Progress"
	case Todo:
		return "To Do"
	}
	return b.String()
}

// Icon is the glyph shown next to the column heading.
func (b Bucket) Icon() string {
	switch b {
	case Done:
		return "✅"
	case Testing:
		return "🧪"
	case InProgress:
		return "🚧"
	case Todo:
		return "📋"
	}
	return ""
}

// ParseBucket accepts document keys plus a few spellings used on the
// command line ("in-progress", "progress").
func ParseBucket(s string) (Bucket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "done":
		return Done, nil
	case "testing":
		return Testing, nil
	case "inprogress", "in-progress", "in_progress", "progress":
		return InProgress, nil
	case "todo", "to-do":
		return Todo, nil
	}
	return Done, fmt.Errorf("unknown bucket %q (want done, testing, inProgress or todo)", s)
}

// Project is the board-wide metadata record.
type Project struct {
	Description string `json:"description" yaml:"description"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	LastUpdated string `json:"lastUpdated" yaml:"lastUpdated"`
}

// Stats are authored alongside the task lists and displayed as-is.
// Missing fields decode as zero. Counts are plain numbers in the document,
// so a count written as 12.0 loads like 12.
type Stats struct {
	TasksCompleted          float64            `json:"tasksCompleted" yaml:"tasksCompleted"`
	TasksTesting            float64            `json:"tasksTesting" yaml:"tasksTesting"`
	TasksInProgress         float64            `json:"tasksInProgress" yaml:"tasksInProgress"`
	TasksTodo               float64            `json:"tasksTodo" yaml:"tasksTodo"`
	HoursInvested           float64            `json:"hoursInvested" yaml:"hoursInvested"`
	EstimatedHoursRemaining float64            `json:"estimatedHoursRemaining" yaml:"estimatedHoursRemaining"`
	DeploymentsCost         map[string]float64 `json:"deploymentsCost" yaml:"deploymentsCost"`
}

// Count returns the authored count for a bucket.
func (s Stats) Count(b Bucket) float64 {
	switch b {
	case Done:
		return s.TasksCompleted
	case Testing:
		return s.TasksTesting
	case InProgress:
		return s.TasksInProgress
	case Todo:
		return s.TasksTodo
	}
	return 0
}

// Cost returns the monthly cost of a deployment tier, zero when absent.
func (s Stats) Cost(tier string) float64 {
	return s.DeploymentsCost[tier]
}

// Board is the loaded document. It is never mutated after construction.
type Board struct {
	Project Project
	Stats   Stats

	buckets    [len(Buckets)][]task.Task
	categories []string
}

// New builds a Board. Buckets missing from the map are empty.
func New(project Project, stats Stats, buckets map[Bucket][]task.Task) *Board {
	b := &Board{Project: project, Stats: stats}
	for _, bk := range Buckets {
		b.buckets[bk] = slices.Clone(buckets[bk])
	}
	b.categories = collectCategories(b)
	return b
}

// Tasks returns the tasks of a bucket in document order. The slice is
// shared; callers must not modify it.
func (b *Board) Tasks(bk Bucket) []task.Task {
	return b.buckets[bk]
}

// Len returns the number of tasks across all buckets.
func (b *Board) Len() int {
	n := 0
	for _, bk := range Buckets {
		n += len(b.buckets[bk])
	}
	return n
}

// Find looks a task up by id across all buckets.
func (b *Board) Find(id string) (task.Task, Bucket, bool) {
	for _, bk := range Buckets {
		for _, t := range b.buckets[bk] {
			if t.ID == id {
				return t, bk, true
			}
		}
	}
	return task.Task{}, Done, false
}

// Categories returns the sorted set of distinct categories.
func (b *Board) Categories() []string {
	return slices.Clone(b.categories)
}

func collectCategories(b *Board) []string {
	seen := make(map[string]bool)
	var out []string
	for _, bk := range Buckets {
		for _, t := range b.buckets[bk] {
			if !seen[t.Category] {
				seen[t.Category] = true
				out = append(out, t.Category)
			}
		}
	}
	slices.Sort(out)
	return out
}

package board

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/simonbystrom/commandcenter/internal/task"
)

// Query selects the visible tasks. The zero value matches everything.
type Query struct {
	Search     string   // case-insensitive substring of title or description
	Categories []string // empty means no category filter
}

// Filter returns the tasks matching q, in input order (AND logic).
func Filter(tasks []task.Task, q Query) []task.Task {
	needle := strings.ToLower(q.Search)
	var result []task.Task
	for _, t := range tasks {
		if matchesSearch(t, needle) && matchesCategory(t, q.Categories) {
			result = append(result, t)
		}
	}
	return result
}

// matchesSearch expects an already lower-cased needle.
func matchesSearch(t task.Task, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

func matchesCategory(t task.Task, categories []string) bool {
	return len(categories) == 0 || slices.Contains(categories, t.Category)
}

// Visible is the filtered content of every bucket.
type Visible [len(Buckets)][]task.Task

// Tasks returns the visible tasks of a bucket.
func (v Visible) Tasks(b Bucket) []task.Task {
	return v[b]
}

// Count returns the number of visible tasks in a bucket.
func (v Visible) Count(b Bucket) int {
	return len(v[b])
}

// Visible applies q to each bucket independently.
func (b *Board) Visible(q Query) Visible {
	var v Visible
	for _, bk := range Buckets {
		v[bk] = Filter(b.buckets[bk], q)
	}
	return v
}

// MarshalJSON encodes the visible buckets keyed like the board document.
func (v Visible) MarshalJSON() ([]byte, error) {
	out := make(map[string][]task.Task, len(Buckets))
	for _, bk := range Buckets {
		ts := v[bk]
		if ts == nil {
			ts = []task.Task{}
		}
		out[bk.String()] = ts
	}
	return json.Marshal(out)
}

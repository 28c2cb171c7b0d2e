package board

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Severity grades an authoring issue.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is a problem found in the authored document. Issues never stop the
// board from loading or rendering.
type Issue struct {
	Severity Severity
	Bucket   Bucket
	TaskID   string // empty for board-level issues
	Message  string
}

func (i Issue) String() string {
	if i.TaskID == "" {
		return fmt.Sprintf("%s: %s", i.Severity, i.Message)
	}
	return fmt.Sprintf("%s: %s/%s: %s", i.Severity, i.Bucket, i.TaskID, i.Message)
}

// Check lists authoring issues. Invalid tasks, ids repeated across
// buckets and negative figures are errors. Links the terminal cannot open
// and stats counts that disagree with the bucket sizes are warnings.
func (b *Board) Check() []Issue {
	var issues []Issue
	firstSeen := make(map[string]Bucket)

	for _, bk := range Buckets {
		for _, t := range b.buckets[bk] {
			if err := t.Validate(); err != nil {
				for _, line := range strings.Split(err.Error(), "\n") {
					issues = append(issues, Issue{Severity: SeverityError, Bucket: bk, TaskID: t.ID, Message: line})
				}
			}
			for i, l := range t.Links {
				if !l.Safe() {
					issues = append(issues, Issue{
						Severity: SeverityWarning,
						Bucket:   bk,
						TaskID:   t.ID,
						Message:  fmt.Sprintf("link %d (%q) is not an http(s) URL and will not open from the terminal", i+1, l.Label),
					})
				}
			}
			if t.ID == "" {
				continue
			}
			if prev, dup := firstSeen[t.ID]; dup {
				issues = append(issues, Issue{
					Severity: SeverityError,
					Bucket:   bk,
					TaskID:   t.ID,
					Message:  fmt.Sprintf("duplicate id (first seen in %s)", prev),
				})
				continue
			}
			firstSeen[t.ID] = bk
		}
	}

	s := b.Stats
	type figure struct {
		name  string
		value float64
	}
	negatives := []figure{
		{"tasksCompleted", s.TasksCompleted},
		{"tasksTesting", s.TasksTesting},
		{"tasksInProgress", s.TasksInProgress},
		{"tasksTodo", s.TasksTodo},
		{"hoursInvested", s.HoursInvested},
		{"estimatedHoursRemaining", s.EstimatedHoursRemaining},
	}
	for _, tier := range slices.Sorted(maps.Keys(s.DeploymentsCost)) {
		negatives = append(negatives, figure{"deploymentsCost." + tier, s.DeploymentsCost[tier]})
	}
	for _, n := range negatives {
		if n.value < 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("stats.%s is negative (%g)", n.name, n.value),
			})
		}
	}

	for _, bk := range Buckets {
		if got, want := len(b.buckets[bk]), s.Count(bk); float64(got) != want {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Bucket:   bk,
				Message:  fmt.Sprintf("stats count for %s is %g but the bucket holds %d tasks", bk, want, got),
			})
		}
	}
	return issues
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

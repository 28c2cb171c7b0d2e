package card

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/simonbystrom/commandcenter/internal/board"
)

// Stat is one figure of the summary row.
type Stat struct {
	Class string // completed, testing, progress, todo, cost
	Value string
	Label string
}

// Summary returns the five summary figures: the four authored bucket
// counts and the monthly cost of one deployment tier. Absent figures are 0.
func Summary(s board.Stats, tier string) []Stat {
	return []Stat{
		{Class: "completed", Value: FormatHours(s.TasksCompleted), Label: "Completed"},
		{Class: "testing", Value: FormatHours(s.TasksTesting), Label: "Testing"},
		{Class: "progress", Value: FormatHours(s.TasksInProgress), Label: "In Progress"},
		{Class: "todo", Value: FormatHours(s.TasksTodo), Label: "To Do"},
		{Class: "cost", Value: FormatCost(s.Cost(tier)), Label: TierLabel(tier) + "/mo"},
	}
}

// FormatCost prints a dollar figure: $42, $9.5.
func FormatCost(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}

// TierLabel capitalizes a tier key for display.
func TierLabel(tier string) string {
	if tier == "" {
		return ""
	}
	r := []rune(tier)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Meta is a labelled project figure shown in the header.
type Meta struct {
	Label string
	Value string
}

// ProjectMeta returns the header badges: start and update dates, hours
// invested and hours remaining.
func ProjectMeta(p board.Project, s board.Stats) []Meta {
	return []Meta{
		{Label: "Started:", Value: p.StartDate},
		{Label: "Updated:", Value: p.LastUpdated},
		{Label: "Hours:", Value: FormatHours(s.HoursInvested) + "h"},
		{Label: "Remaining:", Value: FormatHours(s.EstimatedHoursRemaining) + "h"},
	}
}

// BucketClass is the CSS/style key of a bucket.
func BucketClass(b board.Bucket) string {
	if b == board.InProgress {
		return "progress"
	}
	return strings.ToLower(b.String())
}

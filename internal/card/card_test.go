package card

import (
	"testing"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/task"
)

func badgeText(c Card, k Kind) (string, bool) {
	for _, m := range append(c.Meta, c.Badges...) {
		if m.Kind == k {
			return m.Text, true
		}
	}
	return "", false
}

func TestNew_BlockerLabel(t *testing.T) {
	tests := []struct {
		blockers []string
		want     string
		wantSet  bool
	}{
		{nil, "", false},
		{[]string{}, "", false},
		{[]string{"DNS"}, "1 blocker", true},
		{[]string{"DNS", "Cert"}, "2 blockers", true},
		{[]string{"a", "b", "c"}, "3 blockers", true},
	}
	for _, tt := range tests {
		c := New(task.Task{Blockers: tt.blockers})
		got, ok := badgeText(c, KindBlockers)
		if ok != tt.wantSet || got != tt.want {
			t.Errorf("blockers %v: got (%q, %v), want (%q, %v)", tt.blockers, got, ok, tt.want, tt.wantSet)
		}
	}
}

func TestNew_Priority(t *testing.T) {
	tests := []struct {
		name string
		p    task.Optional[task.Priority]
		want string
	}{
		{"absent", task.None[task.Priority](), ""},
		{"high", task.Some(task.PriorityHigh), "🔥"},
		{"medium", task.Some(task.PriorityMedium), "⚡"},
		{"low", task.Some(task.PriorityLow), "💤"},
		{"unknown", task.Some(task.Priority("urgent")), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(task.Task{Priority: tt.p})
			if c.PriorityIcon != tt.want {
				t.Errorf("PriorityIcon = %q, want %q", c.PriorityIcon, tt.want)
			}
		})
	}
}

func TestNew_ZeroHoursShown(t *testing.T) {
	c := New(task.Task{EstimatedHours: task.Some(0.0)})
	if got, ok := badgeText(c, KindHours); !ok || got != "0h" {
		t.Errorf("hours marker = (%q, %v), want (0h, true)", got, ok)
	}

	c = New(task.Task{})
	if _, ok := badgeText(c, KindHours); ok {
		t.Error("absent hours should not render a marker")
	}
}

func TestNew_StatusIndicatorsIndependent(t *testing.T) {
	both := New(task.Task{
		Status:        task.Some(task.StatusWaitingForTeam),
		TestingStatus: task.Some(task.TestingNeedsValidation),
	})
	if _, ok := badgeText(both, KindWaiting); !ok {
		t.Error("missing waiting badge")
	}
	if _, ok := badgeText(both, KindNeedsValidation); !ok {
		t.Error("missing needs-validation badge")
	}

	onlyTesting := New(task.Task{TestingStatus: task.Some(task.TestingNeedsValidation)})
	if _, ok := badgeText(onlyTesting, KindWaiting); ok {
		t.Error("waiting badge should not appear")
	}
}

func TestNew_CompletedDate(t *testing.T) {
	c := New(task.Task{CompletedDate: task.Some("2026-01-20")})
	if got, ok := badgeText(c, KindCompleted); !ok || got != "2026-01-20" {
		t.Errorf("completed = (%q, %v)", got, ok)
	}
	if c := New(task.Task{CompletedDate: task.Some("")}); len(c.Meta) != 0 {
		t.Errorf("empty date should render nothing, got %+v", c.Meta)
	}
}

func TestNewDetail_Sections(t *testing.T) {
	d := NewDetail(task.Task{
		Title:          "Deploy",
		Details:        []string{"one", "two"},
		Links:          []task.Link{{Label: "Runbook", URL: "https://example.com"}},
		EstimatedHours: task.Some(3.0),
		StatusNote:     task.Some("waiting on infra"),
	})
	if len(d.Details) != 2 || d.Blockers != nil || len(d.Links) != 1 {
		t.Errorf("sections = %+v", d)
	}
	if d.Estimated != "Estimated: 3 hours" {
		t.Errorf("Estimated = %q", d.Estimated)
	}
	if d.Completed != "" {
		t.Errorf("Completed = %q, want empty", d.Completed)
	}
	if !d.HasFooter() {
		t.Error("footer expected")
	}
	if d.StatusNote != "waiting on infra" {
		t.Errorf("StatusNote = %q", d.StatusNote)
	}

	empty := NewDetail(task.Task{Details: []string{}})
	if empty.Details != nil || empty.HasFooter() {
		t.Errorf("empty detail = %+v", empty)
	}
}

func TestSummary(t *testing.T) {
	stats := board.Stats{
		TasksCompleted:  5,
		TasksInProgress: 2,
		TasksTodo:       7,
		DeploymentsCost: map[string]float64{"commander": 42.5},
	}
	got := Summary(stats, "commander")
	want := []Stat{
		{"completed", "5", "Completed"},
		{"testing", "0", "Testing"},
		{"progress", "2", "In Progress"},
		{"todo", "7", "To Do"},
		{"cost", "$42.5", "Commander/mo"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stat %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	missing := Summary(board.Stats{}, "enterprise")
	if missing[4].Value != "$0" {
		t.Errorf("missing tier = %q, want $0", missing[4].Value)
	}

	odd := Summary(board.Stats{TasksCompleted: 12.0, TasksTodo: 2.5}, "commander")
	if odd[0].Value != "12" || odd[3].Value != "2.5" {
		t.Errorf("fractional counts = %q, %q; want 12, 2.5", odd[0].Value, odd[3].Value)
	}
}

func TestProjectMeta(t *testing.T) {
	m := ProjectMeta(board.Project{StartDate: "2026-01-01", LastUpdated: "2026-02-01"}, board.Stats{HoursInvested: 64.5, EstimatedHoursRemaining: 30})
	if m[2].Value != "64.5h" || m[3].Value != "30h" {
		t.Errorf("meta = %+v", m)
	}
}

func TestBucketClass(t *testing.T) {
	want := map[board.Bucket]string{
		board.Done:       "done",
		board.Testing:    "testing",
		board.InProgress: "progress",
		board.Todo:       "todo",
	}
	for b, w := range want {
		if got := BucketClass(b); got != w {
			t.Errorf("BucketClass(%s) = %q, want %q", b, got, w)
		}
	}
}

package board

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func loadFixture(t *testing.T) *Board {
	t.Helper()
	b, err := Load(filepath.Join("testdata", "board.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestLoad_JSON(t *testing.T) {
	b := loadFixture(t)

	if b.Project.StartDate != "2026-01-05" {
		t.Errorf("StartDate = %q, want 2026-01-05", b.Project.StartDate)
	}
	counts := map[Bucket]int{Done: 2, Testing: 1, InProgress: 1, Todo: 2}
	for bk, want := range counts {
		if got := len(b.Tasks(bk)); got != want {
			t.Errorf("len(%s) = %d, want %d", bk, got, want)
		}
	}
	if b.Len() != 6 {
		t.Errorf("Len = %d, want 6", b.Len())
	}
	if b.Stats.TasksTesting != 0 {
		t.Errorf("missing tasksTesting should be 0, got %g", b.Stats.TasksTesting)
	}
	if got := b.Stats.Cost("commander"); got != 42 {
		t.Errorf("Cost(commander) = %v, want 42", got)
	}
	if got := b.Stats.Cost("enterprise"); got != 0 {
		t.Errorf("Cost(enterprise) = %v, want 0", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	b, err := Load(filepath.Join("testdata", "board.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ts := b.Tasks(Done)
	if len(ts) != 1 || ts[0].ID != "y1" {
		t.Fatalf("done = %+v, want one task y1", ts)
	}
	if h, ok := ts[0].EstimatedHours.Get(); !ok || h != 0 {
		t.Errorf("estimatedHours = (%v, %v), want (0, true)", h, ok)
	}
	for _, bk := range []Bucket{Testing, InProgress, Todo} {
		if len(b.Tasks(bk)) != 0 {
			t.Errorf("missing bucket %s should be empty", bk)
		}
	}
}

func TestLoad_FileNotExist(t *testing.T) {
	_, err := Load("/nonexistent/board.json")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte(`{"done": [`), FormatJSON); err == nil {
		t.Error("expected error for truncated JSON")
	}
	if _, err := Parse([]byte("done: [\n"), FormatYAML); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestParse_FractionalCounts(t *testing.T) {
	doc := `{"stats": {"tasksCompleted": 12.0, "tasksTodo": 2.5, "hoursInvested": 3}}`
	b, err := Parse([]byte(doc), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Stats.TasksCompleted != 12 || b.Stats.TasksTodo != 2.5 {
		t.Errorf("counts = %g, %g; want 12, 2.5", b.Stats.TasksCompleted, b.Stats.TasksTodo)
	}

	y, err := Parse([]byte("stats:\n  tasksCompleted: 12.0\n"), FormatYAML)
	if err != nil {
		t.Fatalf("Parse yaml: %v", err)
	}
	if y.Stats.TasksCompleted != 12 {
		t.Errorf("yaml tasksCompleted = %g, want 12", y.Stats.TasksCompleted)
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	b, err := Parse([]byte(`{}`), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
	if cats := b.Categories(); len(cats) != 0 {
		t.Errorf("Categories = %v, want none", cats)
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"data.json", FormatJSON},
		{"data.yaml", FormatYAML},
		{"DATA.YML", FormatYAML},
		{"data", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatFor(tt.path); got != tt.want {
			t.Errorf("FormatFor(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCategories_SortedDistinct(t *testing.T) {
	b := loadFixture(t)
	want := []string{"backend", "docs", "frontend", "infra"}
	if got := b.Categories(); !slices.Equal(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

func TestFind(t *testing.T) {
	b := loadFixture(t)
	tk, bk, ok := b.Find("p1")
	if !ok {
		t.Fatal("expected to find p1")
	}
	if bk != InProgress || tk.Title != "Billing integration" {
		t.Errorf("Find(p1) = (%q, %s)", tk.Title, bk)
	}
	if _, _, ok := b.Find("nope"); ok {
		t.Error("Find(nope) should fail")
	}
}

func TestParseBucket(t *testing.T) {
	tests := []struct {
		in   string
		want Bucket
	}{
		{"done", Done},
		{"Testing", Testing},
		{"inProgress", InProgress},
		{"in-progress", InProgress},
		{"progress", InProgress},
		{"todo", Todo},
	}
	for _, tt := range tests {
		got, err := ParseBucket(tt.in)
		if err != nil {
			t.Errorf("ParseBucket(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBucket(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseBucket("backlog"); err == nil {
		t.Error("expected error for unknown bucket")
	}
}

func TestBucket_Labels(t *testing.T) {
	for _, bk := range Buckets {
		if bk.Title() == "" || bk.Icon() == "" {
			t.Errorf("bucket %s missing title or icon", bk)
		}
	}
	if InProgress.Title() != "In Progress" {
		t.Errorf("InProgress.Title = %q", InProgress.Title())
	}
}

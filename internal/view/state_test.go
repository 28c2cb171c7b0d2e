package view

import (
	"slices"
	"testing"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/task"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	if s.Tab() != board.Testing {
		t.Errorf("Tab = %s, want testing", s.Tab())
	}
	if _, ok := s.Selected(); ok {
		t.Error("new state should have no selection")
	}
	if s.ShowClear() {
		t.Error("clear should be hidden with no categories")
	}
	q := s.Query()
	if q.Search != "" || len(q.Categories) != 0 {
		t.Errorf("Query = %+v, want zero", q)
	}
}

func TestToggleCategory(t *testing.T) {
	s := New()
	s.ToggleCategory("infra")
	s.ToggleCategory("docs")
	if got := s.Categories(); !slices.Equal(got, []string{"infra", "docs"}) {
		t.Fatalf("Categories = %v", got)
	}
	if !s.ShowClear() {
		t.Error("clear should be visible")
	}

	s.ToggleCategory("infra")
	if got := s.Categories(); !slices.Equal(got, []string{"docs"}) {
		t.Errorf("after removing infra = %v", got)
	}
	if s.CategorySelected("infra") || !s.CategorySelected("docs") {
		t.Error("CategorySelected mismatch")
	}
}

func TestClearCategories(t *testing.T) {
	s := New()
	s.ToggleCategory("a")
	s.ToggleCategory("b")
	s.ClearCategories()
	if len(s.Categories()) != 0 {
		t.Errorf("Categories = %v, want empty", s.Categories())
	}
	if s.ShowClear() {
		t.Error("clear should hide once empty")
	}
}

func TestToggleCategory_CopyIsolation(t *testing.T) {
	s := New()
	s.ToggleCategory("a")
	s.ToggleCategory("b")
	snapshot := s

	s.ToggleCategory("a")
	s.ToggleCategory("c")

	if got := snapshot.Categories(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("snapshot changed: %v", got)
	}
}

func TestSelect_DirectTransition(t *testing.T) {
	s := New()
	a := task.Task{ID: "a", Title: "A"}
	b := task.Task{ID: "b", Title: "B"}

	s.Select(a)
	s.Select(b)

	got, ok := s.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	if got.ID != "b" {
		t.Errorf("Selected = %s, want b", got.ID)
	}

	s.Close()
	if _, ok := s.Selected(); ok {
		t.Error("Close should clear the selection")
	}
}

func TestSetTab(t *testing.T) {
	s := New()
	s.SetTab(board.Todo)
	if s.Tab() != board.Todo {
		t.Errorf("Tab = %s, want todo", s.Tab())
	}
}

func TestQuery_ReflectsState(t *testing.T) {
	s := New()
	s.SetSearch("deploy")
	s.ToggleCategory("infra")
	q := s.Query()
	if q.Search != "deploy" {
		t.Errorf("Search = %q", q.Search)
	}
	if !slices.Equal(q.Categories, []string{"infra"}) {
		t.Errorf("Categories = %v", q.Categories)
	}
}

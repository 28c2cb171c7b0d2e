package web

import (
	"net/url"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/card"
	"github.com/simonbystrom/commandcenter/internal/task"
	"github.com/simonbystrom/commandcenter/internal/view"
)

// page is the data of templates/index.html. Every href carries the full
// view state, so navigation works without client-side script.
type page struct {
	Project board.Project
	Meta    []card.Meta
	Stats   []card.Stat

	Search     string
	Categories []string // selected, for the search form
	Tab        string   // non-default tab, for the search form
	Chips      []chip
	ClearHref  string // empty when no category is selected

	Tabs    []tab
	Columns []column
	Active  column

	Detail    *card.Detail
	CloseHref string
}

type chip struct {
	Name   string
	Href   string
	Active bool
}

type tab struct {
	Class  string
	Icon   string
	Title  string
	Count  int
	Href   string
	Active bool
}

type column struct {
	Class string
	Icon  string
	Title string
	Count int
	Cards []cardView
}

type cardView struct {
	card.Card
	Href string
}

// stateFromQuery rebuilds the view state of a request. Unknown tabs and
// task ids are ignored.
func stateFromQuery(q url.Values, b *board.Board) view.State {
	st := view.New()
	st.SetSearch(q.Get("q"))
	for _, c := range q["cat"] {
		if c != "" && !st.CategorySelected(c) {
			st.ToggleCategory(c)
		}
	}
	if tb := q.Get("tab"); tb != "" {
		if bk, err := board.ParseBucket(tb); err == nil {
			st.SetTab(bk)
		}
	}
	if id := q.Get("task"); id != "" {
		if t, _, ok := b.Find(id); ok {
			st.Select(t)
		}
	}
	return st
}

func queryOf(st view.State) url.Values {
	v := url.Values{}
	if s := st.Search(); s != "" {
		v.Set("q", s)
	}
	for _, c := range st.Categories() {
		v.Add("cat", c)
	}
	if st.Tab() != view.DefaultTab {
		v.Set("tab", st.Tab().String())
	}
	if t, ok := st.Selected(); ok {
		v.Set("task", t.ID)
	}
	return v
}

func hrefOf(st view.State) string {
	if enc := queryOf(st).Encode(); enc != "" {
		return "/?" + enc
	}
	return "/"
}

func newPage(b *board.Board, st view.State, tier string) page {
	vis := b.Visible(st.Query())

	// links from the board never keep the modal open
	base := st
	base.Close()

	p := page{
		Project:    b.Project,
		Meta:       card.ProjectMeta(b.Project, b.Stats),
		Stats:      card.Summary(b.Stats, tier),
		Search:     st.Search(),
		Categories: st.Categories(),
	}
	if st.Tab() != view.DefaultTab {
		p.Tab = st.Tab().String()
	}

	for _, c := range b.Categories() {
		next := base
		next.ToggleCategory(c)
		p.Chips = append(p.Chips, chip{Name: c, Href: hrefOf(next), Active: st.CategorySelected(c)})
	}
	if st.ShowClear() {
		next := base
		next.ClearCategories()
		p.ClearHref = hrefOf(next)
	}

	for _, bk := range board.Buckets {
		next := base
		next.SetTab(bk)
		p.Tabs = append(p.Tabs, tab{
			Class:  card.BucketClass(bk),
			Icon:   bk.Icon(),
			Title:  bk.Title(),
			Count:  vis.Count(bk),
			Href:   hrefOf(next),
			Active: bk == st.Tab(),
		})

		col := newColumn(bk, vis.Tasks(bk), base)
		p.Columns = append(p.Columns, col)
		if bk == st.Tab() {
			p.Active = col
		}
	}

	if t, ok := st.Selected(); ok {
		d := card.NewDetail(t)
		p.Detail = &d
		p.CloseHref = hrefOf(base)
	}
	return p
}

func newColumn(bk board.Bucket, tasks []task.Task, base view.State) column {
	col := column{
		Class: card.BucketClass(bk),
		Icon:  bk.Icon(),
		Title: bk.Title(),
		Count: len(tasks),
	}
	for _, t := range tasks {
		next := base
		next.Select(t)
		col.Cards = append(col.Cards, cardView{Card: card.New(t), Href: hrefOf(next)})
	}
	return col
}

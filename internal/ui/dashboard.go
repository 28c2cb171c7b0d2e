package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/card"
	"github.com/simonbystrom/commandcenter/internal/task"
)

const (
	cardLines  = 4
	cardHeight = cardLines + 2 // plus border
)

func (m AppModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(keyMsg, m.keys.Filter):
		if n := len(m.board.Categories()); n > 0 {
			m.focus = focusChips
			m.chipCursor = min(m.chipCursor, n-1)
		}
	case key.Matches(keyMsg, m.keys.Clear):
		if m.state.ShowClear() {
			m.state.ClearCategories()
			m.clampRows()
		}
	case key.Matches(keyMsg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(keyMsg, m.keys.Left), key.Matches(keyMsg, m.keys.PrevTab):
		m.moveColumn(-1)
	case key.Matches(keyMsg, m.keys.Right), key.Matches(keyMsg, m.keys.NextTab):
		m.moveColumn(1)
	case key.Matches(keyMsg, m.keys.JumpTab):
		m.setColumn(board.Buckets[keyMsg.String()[0]-'1'])
	case key.Matches(keyMsg, m.keys.Open):
		b := m.focused()
		m.openTask(b, m.rows[b])
	}
	return m, nil
}

// openTask opens the detail modal on row i of bucket b.
func (m *AppModel) openTask(b board.Bucket, i int) {
	tasks := m.visible().Tasks(b)
	if len(tasks) == 0 {
		return
	}
	i = max(0, min(i, len(tasks)-1))
	m.rows[b] = i
	m.state.Select(tasks[i])
	m.detailOffset = 0
	m.linkErr = ""
}

// cardAt maps a screen cell to the card drawn there.
func (m AppModel) cardAt(x, y int) (board.Bucket, int, bool) {
	top := lipgloss.Height(m.viewTop())
	avail := m.height - top - lipgloss.Height(m.viewHelp())

	var b board.Bucket
	if m.narrow() {
		b = m.state.Tab()
	} else {
		col := x / m.columnWidth()
		if x < 0 || col >= len(board.Buckets) {
			return b, 0, false
		}
		b = board.Buckets[col]
	}

	// one line of column header or tab bar sits above the cards
	rel := y - top - 1
	off, end := m.cardWindow(b, m.visible().Count(b), avail-1)
	if off > 0 {
		rel--
	}
	if rel < 0 {
		return b, 0, false
	}
	i := off + rel/cardHeight
	if i >= end {
		return b, 0, false
	}
	return b, i, true
}

func (m AppModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Accept) {
		m.search.Blur()
		m.focus = focusBoard
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.state.Search() {
		m.state.SetSearch(v)
		m.clampRows()
	}
	return m, cmd
}

func (m AppModel) updateChips(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	categories := m.board.Categories()
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		m.focus = focusBoard
	case key.Matches(keyMsg, m.keys.Left):
		if m.chipCursor > 0 {
			m.chipCursor--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.chipCursor < len(categories)-1 {
			m.chipCursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.chipCursor < len(categories) {
			m.state.ToggleCategory(categories[m.chipCursor])
			m.clampRows()
		}
	case key.Matches(keyMsg, m.keys.Clear):
		if m.state.ShowClear() {
			m.state.ClearCategories()
			m.clampRows()
		}
	}
	return m, nil
}

func (m *AppModel) moveRow(delta int) {
	b := m.focused()
	n := m.visible().Count(b)
	m.rows[b] = max(0, min(m.rows[b]+delta, n-1))
}

func (m *AppModel) moveColumn(delta int) {
	n := len(board.Buckets)
	m.setColumn(board.Buckets[(int(m.focused())+delta+n)%n])
}

// setColumn changes the active tab in the narrow layout and the focused
// column otherwise.
func (m *AppModel) setColumn(b board.Bucket) {
	if m.narrow() {
		m.state.SetTab(b)
		return
	}
	m.col = b
}

// clampRows keeps every row cursor inside its bucket after the visible set
// shrinks.
func (m *AppModel) clampRows() {
	vis := m.visible()
	for _, b := range board.Buckets {
		m.rows[b] = max(0, min(m.rows[b], vis.Count(b)-1))
	}
}

// viewTop renders everything above the columns.
func (m AppModel) viewTop() string {
	sections := []string{m.viewHeader(), m.viewSearch()}
	if chips := m.viewChips(); chips != "" {
		sections = append(sections, chips)
	}
	sections = append(sections, m.viewStats())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AppModel) viewBoard() string {
	vis := m.visible()
	top := m.viewTop()
	helpLine := m.viewHelp()

	avail := m.height - lipgloss.Height(top) - lipgloss.Height(helpLine)

	var body string
	if m.narrow() {
		body = m.viewNarrow(vis, avail)
	} else {
		body = m.viewColumns(vis, avail)
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, body, helpLine)
}

func (m AppModel) viewHeader() string {
	lines := []string{m.styles.Title.Render("🎯 Command Center")}
	if d := m.board.Project.Description; d != "" {
		lines = append(lines, " "+m.styles.Dim.Render(truncate(d, m.width-2)))
	}

	var meta []string
	for _, pm := range card.ProjectMeta(m.board.Project, m.board.Stats) {
		if pm.Value == "" {
			continue
		}
		meta = append(meta, m.styles.Dim.Render(pm.Label)+" "+m.styles.Text.Render(pm.Value))
	}
	if len(meta) > 0 {
		sep := m.styles.Dim.Render("  ·  ")
		lines = append(lines, lipgloss.NewStyle().MaxWidth(m.width).Render(" "+strings.Join(meta, sep)))
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) viewSearch() string {
	if m.focus == focusSearch || m.search.Value() != "" {
		return " " + m.search.View()
	}
	return " " + m.styles.Dim.Render("🔍 / to search")
}

func (m AppModel) viewChips() string {
	categories := m.board.Categories()
	if len(categories) == 0 {
		return ""
	}

	chips := make([]string, 0, len(categories)+1)
	for i, c := range categories {
		st := m.styles.Chip
		if m.state.CategorySelected(c) {
			st = m.styles.ChipActive
		}
		if m.focus == focusChips && i == m.chipCursor {
			st = st.Inherit(m.styles.ChipCursor)
		}
		chips = append(chips, st.Render(c))
	}
	if m.state.ShowClear() {
		chips = append(chips, m.styles.Error.Render("✕ Clear"))
	}
	return lipgloss.NewStyle().Width(m.width).Render(" " + strings.Join(chips, " "))
}

func (m AppModel) viewStats() string {
	stats := card.Summary(m.board.Stats, m.tier)

	if m.width < 60 {
		parts := make([]string, len(stats))
		for i, s := range stats {
			parts[i] = m.styles.StatNumber[s.Class].Render(s.Value) + " " + m.styles.Dim.Render(s.Label)
		}
		return " " + strings.Join(parts, m.styles.Dim.Render(" · "))
	}

	boxWidth := min(m.width/len(stats)-2, 22)
	boxes := make([]string, len(stats))
	for i, s := range stats {
		content := m.styles.StatNumber[s.Class].Render(s.Value) + "\n" + m.styles.Dim.Render(s.Label)
		boxes[i] = m.styles.StatBox.Width(boxWidth).Render(content)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m AppModel) columnWidth() int {
	w := m.width / len(board.Buckets)
	if m.layout.MaxColumnWidth > 0 {
		w = min(w, m.layout.MaxColumnWidth)
	}
	return w
}

func (m AppModel) viewColumns(vis board.Visible, height int) string {
	w := m.columnWidth()
	cols := make([]string, len(board.Buckets))
	for _, b := range board.Buckets {
		header := fmt.Sprintf("%s %s (%d)", b.Icon(), b.Title(), vis.Count(b))
		st := m.styles.Column[b]
		if b == m.col {
			st = st.Underline(true)
		}
		body := m.viewCards(b, vis.Tasks(b), w, height-1, b == m.col)
		cols[b] = lipgloss.NewStyle().Width(w).Render(st.Render(truncate(header, w-1)) + "\n" + body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m AppModel) viewNarrow(vis board.Visible, height int) string {
	active := m.state.Tab()
	tabs := make([]string, len(board.Buckets))
	for _, b := range board.Buckets {
		label := fmt.Sprintf("%s %s %d", b.Icon(), b.Title(), vis.Count(b))
		if m.width < 60 {
			label = fmt.Sprintf("%s %d", b.Icon(), vis.Count(b))
		}
		if b == active {
			tabs[b] = m.styles.TabActive.Render(label)
		} else {
			tabs[b] = m.styles.Tab.Render(label)
		}
	}
	bar := lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(tabs, " "))
	body := m.viewCards(active, vis.Tasks(active), m.width, height-1, true)
	return bar + "\n" + body
}

// viewCards renders the cards of one bucket that fit in height, scrolled so
// the cursor row is visible.
func (m AppModel) viewCards(b board.Bucket, tasks []task.Task, width, height int, focused bool) string {
	if len(tasks) == 0 {
		return m.styles.Dim.Render("  No tasks here")
	}

	row := max(0, min(m.rows[b], len(tasks)-1))
	off, end := m.cardWindow(b, len(tasks), height)

	var lines []string
	if off > 0 {
		lines = append(lines, m.styles.Dim.Render(fmt.Sprintf("  ↑ %d more", off)))
	}
	for i := off; i < end; i++ {
		lines = append(lines, m.renderCard(card.New(tasks[i]), width, focused && i == row))
	}
	if end < len(tasks) {
		lines = append(lines, m.styles.Dim.Render(fmt.Sprintf("  ↓ %d more", len(tasks)-end)))
	}
	return strings.Join(lines, "\n")
}

// cardWindow returns the range of the n cards of bucket b that fit in
// height, scrolled so the cursor row is visible.
func (m AppModel) cardWindow(b board.Bucket, n, height int) (int, int) {
	fit := max(1, (height-2)/cardHeight)
	row := max(0, min(m.rows[b], n-1))
	off := 0
	if row >= fit {
		off = row - fit + 1
	}
	return off, min(off+fit, n)
}

func (m AppModel) renderCard(c card.Card, width int, active bool) string {
	st := m.styles.Card
	if active {
		st = m.styles.CardActive
	}
	inner := max(1, width-4)
	clip := lipgloss.NewStyle().MaxWidth(inner)

	title := m.styles.Text.Bold(true).Render(truncate(c.Title, inner-3))
	if p := m.styles.PriorityMarker(c); p != "" {
		title += " " + p
	}

	info := []string{m.styles.Category(c.Category).Render(c.Category)}
	for _, mk := range c.Meta {
		info = append(info, m.styles.RenderMarker(mk))
	}
	badges := make([]string, len(c.Badges))
	for i, mk := range c.Badges {
		badges[i] = m.styles.RenderMarker(mk)
	}

	lines := []string{
		clip.Render(title),
		m.styles.Dim.Render(truncate(c.Description, inner)),
		clip.Render(strings.Join(info, "  ")),
		clip.Render(strings.Join(badges, "  ")),
	}
	return st.Width(width - 2).Height(cardLines).Render(strings.Join(lines, "\n"))
}

func (m AppModel) viewHelp() string {
	var bindings []key.Binding
	switch m.focus {
	case focusSearch:
		bindings = []key.Binding{m.keys.Accept}
	case focusChips:
		bindings = []key.Binding{m.keys.Left, m.keys.Right, m.keys.Toggle}
		if m.state.ShowClear() {
			bindings = append(bindings, m.keys.Clear)
		}
		bindings = append(bindings, m.keys.Back)
	default:
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Open, m.keys.Search, m.keys.Filter}
		if m.state.ShowClear() {
			bindings = append(bindings, m.keys.Clear)
		}
		if m.narrow() {
			bindings = append(bindings, m.keys.JumpTab)
		}
		bindings = append(bindings, m.keys.Quit)
	}
	return " " + m.help.ShortHelpView(bindings)
}

// truncate shortens plain text to width cells, ending in an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

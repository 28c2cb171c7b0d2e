package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/commandcenter/internal/card"
	"github.com/simonbystrom/commandcenter/internal/task"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (m AppModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	t, _ := m.state.Selected()

	switch {
	case key.Matches(keyMsg, m.keys.Close):
		m.closeDetail()
	case key.Matches(keyMsg, m.keys.PrevTask):
		m.stepDetail(-1)
	case key.Matches(keyMsg, m.keys.NextTask):
		m.stepDetail(1)
	case key.Matches(keyMsg, m.keys.Up):
		if m.detailOffset > 0 {
			m.detailOffset--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.detailOffset < m.detailMaxOffset() {
			m.detailOffset++
		}
	case key.Matches(keyMsg, m.keys.OpenLink):
		i := int(keyMsg.String()[0] - '1')
		if i >= len(t.Links) {
			return m, nil
		}
		link, opener := t.Links[i], m.opener
		return m, func() tea.Msg {
			return linkOpenedMsg{url: link.URL, err: opener.Open(link)}
		}
	}
	return m, nil
}

func (m *AppModel) closeDetail() {
	m.state.Close()
	m.detailOffset = 0
	m.linkErr = ""
}

// stepDetail replaces the open task with its neighbour in the same bucket,
// without closing the modal in between.
func (m *AppModel) stepDetail(delta int) {
	t, ok := m.state.Selected()
	if !ok {
		return
	}
	_, b, ok := m.board.Find(t.ID)
	if !ok {
		return
	}
	tasks := m.visible().Tasks(b)
	for i := range tasks {
		if tasks[i].ID != t.ID {
			continue
		}
		next := i + delta
		if next < 0 || next >= len(tasks) {
			return
		}
		m.state.Select(tasks[next])
		m.rows[b] = next
		m.detailOffset = 0
		m.linkErr = ""
		return
	}
}

func (m AppModel) detailWidth() int {
	return max(20, min(m.width-4, 80))
}

// detailViewport is the number of body lines the modal shows at once.
func (m AppModel) detailViewport() int {
	// border, padding and the help line
	return max(3, m.height-8)
}

func (m AppModel) detailMaxOffset() int {
	return max(0, len(m.detailLines())-m.detailViewport())
}

// detailLines renders the modal body wrapped to the modal width. Sections
// without content are left out.
func (m AppModel) detailLines() []string {
	t, _ := m.state.Selected()
	d := card.NewDetail(t)
	inner := m.detailWidth() - 6
	s := m.styles

	head := s.SectionTitle.Render(d.Title)
	if p := s.PriorityMarker(d.Card); p != "" {
		head += "  " + p
	}
	blocks := []string{
		head + "\n" + s.Category(d.Category).Render(d.Category),
	}
	if d.Description != "" {
		blocks = append(blocks, s.Text.Render(d.Description))
	}
	if len(d.Badges) > 0 {
		badges := make([]string, len(d.Badges))
		for i, mk := range d.Badges {
			badges[i] = s.RenderMarker(mk)
		}
		blocks = append(blocks, strings.Join(badges, "  "))
	}
	if d.StatusNote != "" {
		blocks = append(blocks, s.Dim.Render("Status: ")+s.Text.Render(d.StatusNote))
	}
	if d.TestingNote != "" {
		blocks = append(blocks, s.Dim.Render("Testing: ")+s.Text.Render(d.TestingNote))
	}
	if len(d.Details) > 0 {
		lines := []string{s.SectionTitle.Render("Details")}
		for _, item := range d.Details {
			lines = append(lines, s.Text.Render("• "+item))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(d.Blockers) > 0 {
		lines := []string{s.SectionTitle.Render("Blockers")}
		for _, item := range d.Blockers {
			lines = append(lines, s.Blocker.Render(item))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(d.Links) > 0 {
		blocks = append(blocks, m.detailLinks(d.Links))
	}
	if d.HasFooter() {
		var footer []string
		for _, f := range []string{d.Completed, d.Estimated} {
			if f != "" {
				footer = append(footer, f)
			}
		}
		blocks = append(blocks, s.Dim.Render(strings.Join(footer, "  ·  ")))
	}
	if m.linkErr != "" {
		blocks = append(blocks, s.Error.Render("Error: "+m.linkErr))
	}

	body := lipgloss.NewStyle().Width(inner).Render(strings.Join(blocks, "\n\n"))
	return strings.Split(body, "\n")
}

func (m AppModel) detailLinks(links []task.Link) string {
	lines := []string{m.styles.SectionTitle.Render("Links")}
	for i, l := range links {
		label := l.Label
		if label == "" {
			label = l.URL
		}
		if i >= 9 {
			lines = append(lines, m.styles.Dim.Render("    "+label))
			continue
		}
		lines = append(lines, fmt.Sprintf("[%d] %s", i+1, m.styles.Link.Render(label)))
	}
	return strings.Join(lines, "\n")
}

func (m AppModel) detailBox() string {
	lines := m.detailLines()
	off := min(m.detailOffset, max(0, len(lines)-m.detailViewport()))
	end := min(off+m.detailViewport(), len(lines))
	body := strings.Join(lines[off:end], "\n")

	bindings := []key.Binding{m.keys.Close, m.keys.PrevTask, m.keys.NextTask}
	if t, _ := m.state.Selected(); len(t.Links) > 0 {
		bindings = append(bindings, m.keys.OpenLink)
	}
	if len(lines) > m.detailViewport() {
		bindings = append(bindings, m.keys.Up, m.keys.Down)
	}
	helpLine := m.help.ShortHelpView(bindings)

	return m.styles.Modal.Width(m.detailWidth() - 2).Render(body + "\n\n" + helpLine)
}

// detailRect is where viewDetail places the modal on screen.
func (m AppModel) detailRect() rect {
	w, h := lipgloss.Size(m.detailBox())
	return rect{
		x: max(0, (m.width-w)/2),
		y: max(0, (m.height-h)/2),
		w: w,
		h: h,
	}
}

func (m AppModel) viewDetail() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.detailBox(),
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(m.styles.Overlay),
	)
}

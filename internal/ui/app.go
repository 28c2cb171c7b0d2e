package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonbystrom/commandcenter/internal/board"
	"github.com/simonbystrom/commandcenter/internal/browser"
	"github.com/simonbystrom/commandcenter/internal/config"
	"github.com/simonbystrom/commandcenter/internal/logging"
	"github.com/simonbystrom/commandcenter/internal/view"
)

type focus int

const (
	focusBoard focus = iota
	focusSearch
	focusChips
)

// linkOpenedMsg reports the outcome of opening a task link.
type linkOpenedMsg struct {
	url string
	err error
}

type AppModel struct {
	board  *board.Board
	state  view.State
	opener browser.Opener
	logger *slog.Logger

	styles Styles
	layout config.Layout
	tier   string
	keys   keyMap
	help   help.Model

	search     textinput.Model
	focus      focus
	chipCursor int

	// wide layout column and per-bucket row cursor
	col  board.Bucket
	rows [len(board.Buckets)]int

	detailOffset int
	linkErr      string

	width  int
	height int
}

func NewApp(cfg config.Config, b *board.Board, opener browser.Opener, logger *slog.Logger) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Search tasks..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 0

	if logger == nil {
		logger = logging.Discard()
	}

	st := NewStyles(cfg.Colors)
	ti.PromptStyle = st.Search
	ti.TextStyle = st.Text
	ti.PlaceholderStyle = st.Dim

	h := help.New()
	h.Styles.ShortKey = st.Meta
	h.Styles.ShortDesc = st.Help
	h.Styles.ShortSeparator = st.Dim

	return AppModel{
		board:  b,
		state:  view.New(),
		opener: opener,
		logger: logger,
		styles: st,
		layout: cfg.Layout,
		tier:   cfg.Stats.CostTier,
		keys:   defaultKeyMap(),
		help:   h,
		search: ti,
		col:    view.DefaultTab,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = min(msg.Width-6, 60)
		return m, nil

	case linkOpenedMsg:
		if msg.err != nil {
			m.logger.Warn("open link failed", "url", msg.url, "err", msg.err)
			m.linkErr = msg.err.Error()
		} else {
			m.logger.Debug("opened link", "url", msg.url)
			m.linkErr = ""
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if _, ok := m.state.Selected(); ok {
		return m.updateDetail(msg)
	}
	switch m.focus {
	case focusSearch:
		return m.updateSearch(msg)
	case focusChips:
		return m.updateChips(msg)
	}
	return m.updateBoard(msg)
}

func (m AppModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if _, ok := m.state.Selected(); ok {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if !m.detailRect().contains(msg.X, msg.Y) {
				m.closeDetail()
			}
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveRow(-1)
	case tea.MouseButtonWheelDown:
		m.moveRow(1)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || m.focus != focusBoard {
			break
		}
		if b, i, ok := m.cardAt(msg.X, msg.Y); ok {
			m.setColumn(b)
			m.openTask(b, i)
		}
	}
	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if _, ok := m.state.Selected(); ok {
		return m.viewDetail()
	}
	return m.viewBoard()
}

// narrow reports whether the single-column tab layout is active.
func (m AppModel) narrow() bool {
	return m.width < m.layout.NarrowWidth
}

// focused is the bucket that row navigation and enter act on.
func (m AppModel) focused() board.Bucket {
	if m.narrow() {
		return m.state.Tab()
	}
	return m.col
}

func (m AppModel) visible() board.Visible {
	return m.board.Visible(m.state.Query())
}

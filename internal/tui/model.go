package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leo/claude-sessions/internal/agent"
	"github.com/leo/claude-sessions/internal/session"
)

// Options wires the model to its data sources.
type Options struct {
	Detect      func() session.Result
	HistoryPath string
	Timeout     time.Duration
}

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up:      key.NewBinding(key.WithKeys("k", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down")),
	Refresh: key.NewBinding(key.WithKeys("r")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// Messages
type sessionsLoadedMsg struct {
	result     session.Result
	workspaces []agent.Workspace
}

// Commands
func loadSessions(opts Options) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
		defer cancel()
		res := agent.Load(ctx, opts.Detect)
		history := agent.LastActiveByProject(opts.HistoryPath)
		return sessionsLoadedMsg{result: res, workspaces: agent.BuildWorkspaces(res, history)}
	}
}

// Model is the top-level Bubble Tea model.
type Model struct {
	opts       Options
	workspaces []agent.Workspace
	supported  bool
	cursor     int
	detail     viewport.Model
	width      int
	height     int
	loaded     bool
	loading    bool
	now        func() time.Time
}

// NewModel creates the initial model. Sessions load on Init and again only
// when the user presses r.
func NewModel(opts Options) Model {
	if opts.Detect == nil {
		opts.Detect = session.Detect
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	return Model{
		opts:    opts,
		detail:  viewport.New(40, 20),
		loading: true,
		now:     time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return loadSessions(m.opts)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = m.detailWidth()
		m.detail.Height = max(m.height-1, 0)
		m.refreshDetail()
		return m, nil

	case sessionsLoadedMsg:
		var selected string
		if m.cursor < len(m.workspaces) {
			selected = m.workspaces[m.cursor].Path
		}
		m.loaded = true
		m.loading = false
		m.supported = msg.result.Supported
		m.workspaces = msg.workspaces
		if i := IndexOfPath(m.workspaces, selected); i >= 0 {
			m.cursor = i
		} else {
			m.cursor = ClampCursor(m.cursor, len(m.workspaces))
		}
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.workspaces)-1 {
				m.cursor++
				m.refreshDetail()
			}

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshDetail()
			}

		case key.Matches(msg, keys.Refresh):
			if !m.loading {
				m.loading = true
				return m, loadSessions(m.opts)
			}
		}
	}
	return m, nil
}

func (m *Model) refreshDetail() {
	if m.cursor < 0 || m.cursor >= len(m.workspaces) {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(RenderDetail(m.workspaces[m.cursor], m.now()))
	m.detail.GotoTop()
}

func (m Model) View() string {
	if m.width == 0 || !m.loaded {
		return ""
	}

	if !m.supported {
		return errStyle.Render("Session detection is not supported on this platform.") +
			"\n" + helpStyle.Render("Press q to quit.")
	}

	if len(m.workspaces) == 0 {
		return helpStyle.Render("No active sessions found.\nPress r to refresh, q to quit.")
	}

	listWidth := m.listWidth()
	h := m.height - 1 // footer
	if h < 1 {
		return m.footer()
	}

	listContent := strings.Join(m.renderList(listWidth, h), "\n")
	listRendered := lipgloss.NewStyle().Width(listWidth).Height(h).Render(listContent)

	// Vertical separator: one column of "│" repeated for each row
	sep := separatorStyle.Render(strings.Repeat("│\n", h-1) + "│")

	dw := m.detailWidth()
	m.detail.Width = dw
	m.detail.Height = h
	detailRendered := lipgloss.NewStyle().Width(dw).Height(h).Render(m.detail.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, listRendered, sep, detailRendered)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer())
}

func (m Model) footer() string {
	status := "j/k move · r refresh · q quit"
	if m.loading {
		status = "refreshing… · " + status
	}
	return helpStyle.Render(" " + status)
}

func (m Model) listWidth() int {
	return max(m.width*30/100, 20)
}

func (m Model) detailWidth() int {
	return max(m.width-m.listWidth()-1, 0) // 1 for separator
}

func (m Model) renderList(width, height int) []string {
	start := VisibleSlice(len(m.workspaces), m.cursor, height)
	end := min(start+height, len(m.workspaces))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, RenderWorkspace(m.workspaces[i], i == m.cursor, width))
	}
	return lines
}

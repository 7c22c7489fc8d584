package terminal

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/BrandonKowalski/tablekit/pkg/tablekit"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/constants"
	"github.com/BrandonKowalski/tablekit/pkg/tablekit/internal"
)

// reloadMsg is sent when the controller's contents are replaced mid-show.
type reloadMsg struct{}

// Title, blank, more-above, more-below, blank, help.
const chromeLines = 6

type model struct {
	controller *tablekit.Controller
	snap       *tablekit.Snapshot
	all        []tablekit.Line
	focus      *tablekit.Focus

	keys   KeyMap
	styles styles
	help   help.Model
	filter textinput.Model

	filtering bool
	width     int
	height    int

	result tablekit.Interaction
	done   bool
	quit   bool
}

func newModel(c *tablekit.Controller, resume tablekit.Cursor, keys KeyMap, st styles) model {
	ti := textinput.New()
	ti.Prompt = internal.Localize(internal.MsgFilterPrompt)
	ti.CharLimit = 64

	m := model{
		controller: c,
		keys:       keys,
		styles:     st,
		help:       help.New(),
		filter:     ti,
		width:      constants.DefaultTerminalWidth,
		height:     constants.DefaultTerminalHeight,
	}
	m.snap = c.Snapshot()
	m.all = tablekit.Layout(m.snap)
	m.focus = tablekit.NewFocus(m.all, resume, m.listHeight())
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.focus.SetVisible(m.listHeight())
		return m, nil

	case reloadMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.focus.Move(-1)

	case key.Matches(msg, m.keys.Down):
		m.focus.Move(1)

	case key.Matches(msg, m.keys.PageUp):
		m.focus.Move(-m.pageSize())

	case key.Matches(msg, m.keys.PageDown):
		m.focus.Move(m.pageSize())

	case key.Matches(msg, m.keys.Home):
		m.focus.First()

	case key.Matches(msg, m.keys.End):
		m.focus.Last()

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.focus.SetVisible(m.listHeight())
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Select):
		path, ok := m.focus.IndexPath()
		if !ok {
			return m, nil
		}
		m.result = tablekit.Selected(m.snap, path, m.cursor())
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.filter.Value() != "" {
			m.clearFilter()
			return m, nil
		}
		m.result = tablekit.Back(m.cursor())
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quit = true
		return m, tea.Quit

	case tea.KeyEsc:
		m.clearFilter()
		return m, nil

	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.focus.SetVisible(m.listHeight())
		return m, nil

	case tea.KeyUp:
		m.focus.Move(-1)
		return m, nil

	case tea.KeyDown:
		m.focus.Move(1)
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m *model) clearFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
	m.applyFilter()
}

// applyFilter rebuilds the focus from the current query. With an empty
// query the cursor stays on the row it was on.
func (m *model) applyFilter() {
	query := m.filter.Value()
	current, _ := m.focus.IndexPath()

	lines, best, ok := filterLines(m.all, query)
	resume := tablekit.Cursor{IndexPath: current}
	if ok {
		resume.IndexPath = best
	}
	m.focus = tablekit.NewFocus(lines, resume, m.listHeight())
}

// reload takes a fresh snapshot after SetContents. The cursor stays on the
// same index path if it still exists.
func (m *model) reload() {
	m.snap = m.controller.Snapshot()
	m.all = tablekit.Layout(m.snap)
	internal.GetInternalLogger().Debug("Terminal host reloaded contents",
		"title", m.snap.Title(), "rows", m.snap.RowCount())
	m.applyFilter()
}

func (m model) filterShown() bool {
	return m.filtering || m.filter.Value() != ""
}

func (m model) listHeight() int {
	reserved := chromeLines
	if m.filterShown() {
		reserved++
	}
	return max(m.height-reserved, 1)
}

func (m model) pageSize() int {
	return max(m.focus.Visible()-1, 1)
}

func (m model) cursor() tablekit.Cursor {
	// Offsets inside a filtered list mean nothing to the unfiltered one.
	if m.filter.Value() != "" {
		path, _ := m.focus.IndexPath()
		return tablekit.Cursor{IndexPath: path}
	}
	return m.focus.Cursor()
}

func (m model) View() string {
	var b strings.Builder

	if title := m.snap.Title(); title != "" {
		b.WriteString(m.styles.Title.Render(m.truncate(title, 0)))
	}
	b.WriteString("\n\n")

	if m.filterShown() {
		if m.filtering {
			b.WriteString(m.filter.View())
		} else {
			b.WriteString(m.styles.Filter.Render(m.filter.Prompt + m.filter.Value()))
		}
		b.WriteString("\n")
	}

	if m.focus.MoreAbove() {
		b.WriteString(m.styles.Muted.Render("  " + constants.MoreAbove))
	}
	b.WriteString("\n")

	switch {
	case len(m.all) == 0 || m.snap.RowCount() == 0:
		b.WriteString(m.styles.Muted.Render("  " + internal.Localize(internal.MsgEmptyContents)))
		b.WriteString("\n")
	case !m.focus.HasRows():
		b.WriteString(m.styles.Muted.Render("  " + internal.Localize(internal.MsgNoMatches)))
		b.WriteString("\n")
	default:
		focused := m.focus.FocusedLine()
		for i, line := range m.focus.VisibleLines() {
			b.WriteString(m.renderLine(line, m.focus.Offset()+i == focused))
			b.WriteString("\n")
		}
	}

	if m.focus.MoreBelow() {
		b.WriteString(m.styles.Muted.Render("  " + constants.MoreBelow))
	}
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m model) renderLine(line tablekit.Line, focused bool) string {
	switch line.Kind {
	case tablekit.LineHeader:
		return m.styles.Header.Render(m.truncate(line.Text, 0))
	case tablekit.LineSpacer:
		return ""
	}

	text := m.truncate(line.Text, 6)
	if focused {
		return m.styles.Cursor.Render(constants.Cursor+" ") +
			m.styles.RowFocused.Render(text) +
			m.styles.Chevron.Render(" "+constants.Chevron)
	}
	return "  " + m.styles.Row.Render(text)
}

// truncate shortens s to the terminal width minus reserve cells.
func (m model) truncate(s string, reserve int) string {
	width := m.width - reserve
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

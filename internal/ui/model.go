package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/reinhart/hyprconf/internal/configuration"
	"github.com/reinhart/hyprconf/internal/history"
	"github.com/reinhart/hyprconf/internal/hyprconf"
	"github.com/reinhart/hyprconf/internal/hyprctl"
)

// --- Palette & Styles ---

var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorSubtext = lipgloss.Color("#9399b2")
	colorAccent  = lipgloss.Color("#cba6f7")
	colorOK      = lipgloss.Color("#a6e3a1")
	colorWarn    = lipgloss.Color("#f9e2af")
	colorErr     = lipgloss.Color("#f38ba8")
	colorBorder  = lipgloss.Color("#45475a")

	styleBase = lipgloss.NewStyle().Foreground(colorText)

	styleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	styleFocusBorder = styleBorder.Copy().
				BorderForeground(colorWarn)

	styleTab = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Padding(0, 1)

	styleTabActive = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorWarn).
			Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Italic(true)

	styleStatusOK = lipgloss.NewStyle().
			Foreground(colorOK)

	styleStatusErr = lipgloss.NewStyle().
			Foreground(colorErr).
			Bold(true)
)

type pane int

const (
	paneSettings pane = iota
	paneBinds
	paneAutostart
	paneVariables
	paneMonitors
	paneDiff
)

var paneNames = []string{"Settings", "Binds", "Autostart", "Variables", "Monitors", "Diff"}

type State int

const (
	StateBrowse State = iota
	StateEdit
	StateReloading
)

// row is one editable key/value entry on the settings pane.
type row struct {
	section string
	key     string
	value   string
}

type Model struct {
	editor   *hyprconf.Editor
	reloader *hyprctl.Reloader
	cfg      *configuration.Config
	undo     *history.Stack

	pane     pane
	state    State
	rows     []row
	cursor   int
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	status    string
	statusErr bool
	quitArmed bool

	width  int
	height int
}

func NewModel(editor *hyprconf.Editor, reloader *hyprctl.Reloader, cfg *configuration.Config) Model {
	ti := textinput.New()
	ti.Prompt = "= "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorAccent)
	ti.TextStyle = styleBase

	vp := viewport.New(80, 20)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)

	m := Model{
		editor:   editor,
		reloader: reloader,
		cfg:      cfg,
		undo:     history.New(),
		input:    ti,
		viewport: vp,
		spinner:  s,
		status:   "Loaded " + editor.Path(),
	}
	m.refreshRows()
	m.refreshContent()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

type reloadMsg struct {
	ok  bool
	msg string
}

type saveMsg struct {
	err error
}

func (m Model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		ok, msg := m.reloader.Reload(context.Background())
		return reloadMsg{ok: ok, msg: msg}
	}
}

func (m Model) saveCmd() tea.Cmd {
	return func() tea.Msg {
		return saveMsg{err: m.editor.Save(m.cfg.Editor.Backup)}
	}
}

// refreshRows rebuilds the flat settings listing from the parsed model.
func (m *Model) refreshRows() {
	var rows []row
	for _, key := range m.editor.SectionKeys("") {
		rows = append(rows, row{section: "", key: key, value: m.editor.GetTop(key, "")})
	}
	for _, section := range m.editor.Sections() {
		for _, key := range m.editor.SectionKeys(section) {
			rows = append(rows, row{section: section, key: key, value: m.editor.Get(section, key, "")})
		}
	}
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(m.renderPane())
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
	m.quitArmed = false
}

// applyEdit routes a value change through the history stack so it can be
// undone and redone.
func (m *Model) applyEdit(r row, newValue string) {
	oldValue := m.editor.Get(r.section, r.key, "")
	if r.section == "" {
		oldValue = m.editor.GetTop(r.key, "")
	}
	if oldValue == newValue {
		return
	}
	editor := m.editor
	section, key := r.section, r.key
	desc := fmt.Sprintf("set %s %s = %s", displaySection(section), key, newValue)
	m.undo.Push(desc,
		func() { editor.SetValue(section, key, oldValue) },
		func() { editor.SetValue(section, key, newValue) },
	)
	editor.SetValue(section, key, newValue)
	m.setStatus(desc, false)
}

func displaySection(section string) string {
	if section == "" {
		return "(top level)"
	}
	return section
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		verticalMargins := 7 // tabs + borders + status + input
		viewportHeight := msg.Height - verticalMargins
		if viewportHeight < 5 {
			viewportHeight = 5
		}
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = viewportHeight
		m.input.Width = msg.Width - 8
		m.refreshContent()

	case tea.KeyMsg:
		if m.state == StateEdit {
			switch msg.Type {
			case tea.KeyEsc:
				m.state = StateBrowse
				m.setStatus("edit cancelled", false)
			case tea.KeyEnter:
				m.state = StateBrowse
				if m.cursor < len(m.rows) {
					m.applyEdit(m.rows[m.cursor], strings.TrimSpace(m.input.Value()))
					m.refreshRows()
				}
				m.refreshContent()
			default:
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.editor.Dirty() && m.cfg.UI.ConfirmQuit && !m.quitArmed {
				m.quitArmed = true
				m.status = "unsaved changes, press q again to quit"
				m.statusErr = true
				break
			}
			return m, tea.Quit
		case "tab":
			m.pane = (m.pane + 1) % pane(len(paneNames))
			m.refreshContent()
		case "shift+tab":
			m.pane = (m.pane + pane(len(paneNames)) - 1) % pane(len(paneNames))
			m.refreshContent()
		case "up", "k":
			if m.pane == paneSettings && m.cursor > 0 {
				m.cursor--
				m.refreshContent()
			}
		case "down", "j":
			if m.pane == paneSettings && m.cursor < len(m.rows)-1 {
				m.cursor++
				m.refreshContent()
			}
		case "enter":
			if m.pane == paneSettings && m.cursor < len(m.rows) {
				m.state = StateEdit
				m.input.SetValue(m.rows[m.cursor].value)
				m.input.CursorEnd()
				m.input.Focus()
			}
		case "u":
			if desc, ok := m.undo.Undo(); ok {
				m.refreshRows()
				m.refreshContent()
				m.setStatus("undid: "+desc, false)
			}
		case "ctrl+r":
			if desc, ok := m.undo.Redo(); ok {
				m.refreshRows()
				m.refreshContent()
				m.setStatus("redid: "+desc, false)
			}
		case "s":
			cmds = append(cmds, m.saveCmd())
		case "R":
			m.state = StateReloading
			m.setStatus("reloading Hyprland...", false)
			cmds = append(cmds, m.reloadCmd(), m.spinner.Tick)
		}

	case saveMsg:
		if msg.err != nil {
			m.setStatus(msg.err.Error(), true)
		} else {
			m.setStatus("saved "+m.editor.Path(), false)
			m.refreshContent()
		}

	case reloadMsg:
		m.state = StateBrowse
		m.setStatus(msg.msg, !msg.ok)

	case spinner.TickMsg:
		if m.state == StateReloading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.state == StateBrowse && m.pane != paneSettings {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) renderPane() string {
	var b strings.Builder
	switch m.pane {
	case paneSettings:
		for i, r := range m.rows {
			line := fmt.Sprintf("%-28s %s = %s", displaySection(r.section), r.key, r.value)
			if i == m.cursor {
				b.WriteString(styleSelected.Render("> " + line))
			} else {
				b.WriteString(styleBase.Render("  " + line))
			}
			b.WriteString("\n")
		}
	case paneBinds:
		for _, bind := range m.editor.Binds() {
			line := fmt.Sprintf("%-7s %-16s %-12s %s", bind.Type, bind.Mods, bind.Key, bind.Dispatcher)
			if bind.Params != "" {
				line += ", " + bind.Params
			}
			b.WriteString(styleBase.Render(line) + "\n")
		}
	case paneAutostart:
		for _, cmd := range m.editor.ExecOnce() {
			b.WriteString(styleBase.Render("exec-once = "+cmd) + "\n")
		}
	case paneVariables:
		for _, v := range m.editor.Variables() {
			b.WriteString(styleBase.Render(v.Name+" = "+v.Value) + "\n")
		}
	case paneMonitors:
		for _, mon := range m.editor.Monitors() {
			b.WriteString(styleBase.Render("monitor = "+mon) + "\n")
		}
	case paneDiff:
		patch := m.editor.Patch()
		if patch == "" {
			b.WriteString(styleStatus.Render("no pending changes"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(colorSubtext).Render(patch))
		}
	}
	return b.String()
}

func (m Model) View() string {
	// Tab bar
	var tabs []string
	for i, name := range paneNames {
		if pane(i) == m.pane {
			tabs = append(tabs, styleTabActive.Render(name))
		} else {
			tabs = append(tabs, styleTab.Render(name))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	content := styleBorder.Width(m.width - 2).Height(m.viewport.Height + 2).Render(m.viewport.View())

	var statusStr string
	switch {
	case m.state == StateReloading:
		statusStr = fmt.Sprintf(" %s %s", m.spinner.View(), styleStatus.Render(m.status))
	case m.statusErr:
		statusStr = " " + styleStatusErr.Render(m.status)
	default:
		statusStr = " " + styleStatusOK.Render(m.status)
	}
	statusView := lipgloss.NewStyle().Width(m.width).PaddingLeft(1).Render(statusStr)

	var bottom string
	if m.state == StateEdit {
		label := ""
		if m.cursor < len(m.rows) {
			r := m.rows[m.cursor]
			label = lipgloss.NewStyle().Foreground(colorAccent).Render(displaySection(r.section) + " " + r.key + " ")
		}
		bottom = styleFocusBorder.Width(m.width - 2).Render(label + m.input.View())
	} else {
		help := "tab: pane  enter: edit  u: undo  ctrl+r: redo  s: save  R: reload  q: quit"
		bottom = styleBorder.Width(m.width - 2).Render(styleStatus.Render(help))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabBar,
		content,
		statusView,
		bottom,
	)
}

package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JimenezCarmona8063/MYXITECH/internal/config"
	"github.com/JimenezCarmona8063/MYXITECH/internal/engine"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/campus"
	"github.com/JimenezCarmona8063/MYXITECH/pkg/sim"
)

// Map cells: one terminal cell covers 10x20 simulation units, so the
// 960x520 world fits in 96x26 cells.
const (
	cellScaleX = 10.0
	cellScaleY = 20.0
	mapCols    = int(campus.WorldWidth / cellScaleX)
	mapRows    = int(campus.WorldHeight / cellScaleY)

	sidePanelWidth = 34

	// One key press moves the player this many frames' worth.
	nudgeFrames = 3

	// Guard against huge dt after a suspend or terminal freeze.
	maxFrameDT = 0.25
)

var (
	titleCase = cases.Title(language.AmericanEnglish)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("24"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

// roleChoice is one entry of the role-selection modal.
type roleChoice struct {
	role  sim.Role
	blurb string
}

var roleChoices = []roleChoice{
	{sim.RoleStudent, "Follow your schedule and don't be late to class."},
	{sim.RoleTeacher, "Start class from the Classroom, or cancel it."},
	{sim.RoleStaff, "Open and close the Cafeteria from the Admin office."},
}

type frameMsg time.Time

// UI is the BubbleTea model driving the simulation. Each frame tick
// advances the engine by the measured wall-clock dt.
type UI struct {
	sim    *engine.Simulation
	logger *slog.Logger
	tick   time.Duration

	width  int
	height int
	ready  bool

	showRoleModal bool
	selectedRole  int
	showQuitModal bool

	lastFrame time.Time

	// inspect indexes the cast for the status panel.
	inspect int

	sidePanel viewport.Model

	// eventLog keeps every transient message for the session, for the
	// panel and for clipboard copy.
	eventLog []string
	lastSeq  int
}

func NewUI(cfg *config.Config, s *engine.Simulation, logger *slog.Logger, resumed bool) UI {
	vp := viewport.New(sidePanelWidth, 20)
	return UI{
		sim:           s,
		logger:        logger,
		tick:          cfg.TickInterval,
		sidePanel:     vp,
		showRoleModal: !resumed || s.Player() == nil,
	}
}

func (m UI) Init() tea.Cmd {
	return m.frameTick()
}

func (m UI) frameTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showRoleModal {
		return m.updateRoleModal(msg)
	}
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sidePanel.Width = sidePanelWidth
		m.sidePanel.Height = m.height - 4
		m.ready = true

	case frameMsg:
		dt := m.frameDT(time.Time(msg))
		m.sim.Step(dt)
		m.collectMessages()
		m.sidePanel.SetContent(m.writeSidePanel())
		return m, m.frameTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.sidePanel, cmd = m.sidePanel.Update(msg)
	return m, cmd
}

// frameDT converts the tick timestamp into a simulation dt. The clock
// source never goes negative; large gaps are capped.
func (m *UI) frameDT(now time.Time) float64 {
	dt := m.tick.Seconds()
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDT {
		dt = maxFrameDT
	}
	return dt
}

// collectMessages appends newly posted story messages to the event log.
func (m *UI) collectMessages() {
	for _, msg := range m.sim.Story.Messages {
		if msg.Seq > m.lastSeq {
			m.lastSeq = msg.Seq
			stamp := fmt.Sprintf("[%5.1fs] ", m.sim.Story.Elapsed)
			m.eventLog = append(m.eventLog, stamp+msg.Text)
		}
	}
}

func (m UI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.tick.Seconds() * nudgeFrames

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.showQuitModal = true
		return m, nil
	case "up", "w":
		m.sim.MovePlayer(0, -1, step)
	case "down", "s":
		m.sim.MovePlayer(0, 1, step)
	case "left", "a":
		m.sim.MovePlayer(-1, 0, step)
	case "right", "d":
		m.sim.MovePlayer(1, 0, step)
	case "e", " ":
		m.sim.Interact()
	case "c":
		m.sim.CancelClass()
	case "r":
		m.sim.ResetAll()
	case "tab":
		m.inspect = (m.inspect + 1) % len(m.sim.Characters())
	case "y":
		if len(m.eventLog) > 0 {
			if err := clipboard.WriteAll(strings.Join(m.eventLog, "\n")); err != nil {
				m.logger.Error("clipboard copy failed", "error", err)
			} else {
				m.sim.Story.Post("Event log copied to clipboard.")
			}
		}
	}
	return m, nil
}

func (m UI) updateRoleModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sidePanel.Width = sidePanelWidth
		m.sidePanel.Height = m.height - 4
		m.ready = true

	case frameMsg:
		// Keep the clock warm so the first played frame gets a sane dt.
		m.lastFrame = time.Time(msg)
		return m, m.frameTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selectedRole > 0 {
				m.selectedRole--
			}
		case "down", "j":
			if m.selectedRole < len(roleChoices)-1 {
				m.selectedRole++
			}
		case "1", "2", "3":
			m.selectedRole = int(msg.String()[0] - '1')
			return m.confirmRole()
		case "enter":
			return m.confirmRole()
		}
	}
	return m, nil
}

func (m UI) confirmRole() (tea.Model, tea.Cmd) {
	choice := roleChoices[m.selectedRole]
	if err := m.sim.SelectRole(choice.role); err != nil {
		m.logger.Error("role selection failed", "role", choice.role, "error", err)
		return m, tea.Quit
	}
	m.showRoleModal = false
	m.sim.Story.Post(fmt.Sprintf("You are the %s. Good luck out there.", choice.role))
	return m, nil
}

func (m UI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.lastFrame = time.Time(msg)
		return m, m.frameTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "enter", "y":
			return m, tea.Quit
		case "n", "esc":
			m.showQuitModal = false
		}
	}
	return m, nil
}

func (m UI) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.showRoleModal {
		return m.renderRoleModal()
	}
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	mapView := m.renderMap()
	panel := m.sidePanel.View()
	body := lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", panel)

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.renderMessages(),
		m.renderBanner(),
	)
}

func (m UI) renderRoleModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Choose Your Role"))
	content.WriteString("\n\n")

	for i, choice := range roleChoices {
		label := fmt.Sprintf("%d. %s: %s", i+1, titleCase.String(string(choice.role)), choice.blurb)
		if i == m.selectedRole {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + label))
		} else {
			content.WriteString(modalItemStyle.Render("  " + label))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(helpStyle.Render("Use ↑/↓ or 1-3, Enter to select, Esc to exit"))

	modal := modalStyle.Width(64).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (m UI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Leave Campus?"))
	content.WriteString("\n\n")
	content.WriteString("Your session will be saved if Redis is configured.")
	content.WriteString("\n\n")
	content.WriteString(helpStyle.Render("Press Y or Enter to quit, N to keep playing"))

	modal := modalStyle.Width(54).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

// cell is one terminal cell of the map buffer.
type cell struct {
	r  rune
	fg string
	bg string
}

// renderMap rasterizes zones and characters into a cell buffer, then
// joins runs of identically styled cells per row.
func (m UI) renderMap() string {
	buf := make([][]cell, mapRows)
	for y := range buf {
		buf[y] = make([]cell, mapCols)
		for x := range buf[y] {
			buf[y][x] = cell{r: ' '}
		}
	}

	for _, z := range m.sim.Campus.Zones() {
		x0 := int(z.Bounds.X / cellScaleX)
		y0 := int(z.Bounds.Y / cellScaleY)
		w := int(z.Bounds.W / cellScaleX)
		h := int(z.Bounds.H / cellScaleY)
		for y := y0; y < y0+h && y < mapRows; y++ {
			for x := x0; x < x0+w && x < mapCols; x++ {
				buf[y][x] = cell{r: ' ', bg: z.Color}
			}
		}
		// Zone label on the top row.
		for i, r := range z.Name {
			x := x0 + 1 + i
			if x >= x0+w || x >= mapCols {
				break
			}
			buf[y0][x] = cell{r: r, fg: "236", bg: z.Color}
		}
	}

	player := m.sim.Player()
	for _, c := range m.sim.Characters() {
		x := int(c.Position.X / cellScaleX)
		y := int(c.Position.Y / cellScaleY)
		if x < 0 || x >= mapCols || y < 0 || y >= mapRows {
			continue
		}
		glyph := rune(c.Name[0])
		if c == player {
			glyph = '@'
		}
		bg := buf[y][x].bg
		buf[y][x] = cell{r: glyph, fg: c.Color, bg: bg}
	}

	var out strings.Builder
	for y := 0; y < mapRows; y++ {
		x := 0
		for x < mapCols {
			run := x
			style := buf[y][x]
			var text strings.Builder
			for run < mapCols && buf[y][run].fg == style.fg && buf[y][run].bg == style.bg {
				text.WriteRune(buf[y][run].r)
				run++
			}
			s := lipgloss.NewStyle()
			if style.fg != "" {
				s = s.Foreground(lipgloss.Color(style.fg)).Bold(true)
			}
			if style.bg != "" {
				s = s.Background(lipgloss.Color(style.bg))
			}
			out.WriteString(s.Render(text.String()))
			x = run
		}
		out.WriteString("\n")
	}
	return strings.TrimRight(out.String(), "\n")
}

func (m UI) writeSidePanel() string {
	var content strings.Builder
	st := m.sim.Story

	content.WriteString(titleStyle.Render("CAMPUS LIFE") + "\n\n")
	content.WriteString(fmt.Sprintf("Clock: %.1fs\n", st.Elapsed))
	content.WriteString(fmt.Sprintf("Role: %s\n", titleCase.String(string(st.PlayerRole))))
	content.WriteString(fmt.Sprintf("Class: %s\n", classLabel(st.ClassInSession, st.ClassCancelled)))
	content.WriteString(fmt.Sprintf("Cafeteria: %s\n\n", openLabel(st.CafeteriaOpen)))

	cast := m.sim.Characters()
	c := cast[m.inspect%len(cast)]
	content.WriteString(titleStyle.Render(c.Name) + fmt.Sprintf(" (%s)\n", titleCase.String(string(c.Role))))
	if act := c.CurrentActivity(); act != nil {
		content.WriteString(fmt.Sprintf("Now: %s → %s\n", act.Label, act.Zone))
	}
	keys := make([]string, 0, len(c.Status))
	for k := range c.Status {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if c.Status[k] {
			content.WriteString(doneStyle.Render("✔ "+k) + "\n")
		} else {
			content.WriteString(pendingStyle.Render("… "+k) + "\n")
		}
	}

	content.WriteString("\n" + titleStyle.Render("EVENTS") + "\n")
	logStart := 0
	if len(m.eventLog) > 8 {
		logStart = len(m.eventLog) - 8
	}
	for _, line := range m.eventLog[logStart:] {
		content.WriteString(wordwrap.String(line, sidePanelWidth-2) + "\n")
	}

	content.WriteString("\n" + helpStyle.Render(
		"arrows/wasd move · e interact\nc cancel class · r reset all\ntab inspect · y copy log · q quit"))

	return content.String()
}

func (m UI) renderMessages() string {
	msgs := m.sim.Story.Messages
	if len(msgs) == 0 {
		return ""
	}
	texts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		texts = append(texts, msg.Text)
	}
	wrapped := wordwrap.String(strings.Join(texts, "  ·  "), max(20, m.width-2))
	return messageStyle.Render(wrapped)
}

func (m UI) renderBanner() string {
	text := " Goal: keep campus life on track. Classes, lunches, and chores all done. "
	return bannerStyle.Width(max(len(text), m.width)).Render(text)
}

func classLabel(inSession, cancelled bool) string {
	switch {
	case cancelled:
		return "cancelled"
	case inSession:
		return "in session"
	default:
		return "not started"
	}
}

func openLabel(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/subkiller/internal/audio"
	"github.com/vovakirdan/subkiller/internal/config"
	"github.com/vovakirdan/subkiller/internal/core"
	"github.com/vovakirdan/subkiller/internal/games/subkiller"
	"github.com/vovakirdan/subkiller/internal/storage"
)

// footerRows is the space kept below the playfield for the help line.
const footerRows = 1

// Game is the simulation driven by the model.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	State() core.GameState
	Accuracy() float64
	Render(screen *core.Screen)
}

var _ Game = (*subkiller.Game)(nil)

// Options configures a play session.
type Options struct {
	Config    config.Config
	Store     *storage.Store // Optional session ledger
	Sound     audio.Player   // Optional, defaults to audio.Nop
	Logger    *log.Logger    // Optional, defaults to a discarding logger
	SessionID string
	Player    string
	Seed      int64 // 0 picks a time-based seed
	Width     int   // Initial terminal size, 0 if unknown
	Height    int
}

// Model is the Bubble Tea model for one player's session.
type Model struct {
	game   Game
	opts   Options
	screen *core.Screen
	rt     core.RuntimeConfig
	clock  Clock
	keys   KeyMap
	help   help.Model
	input  core.InputFrame
	state  core.GameState
	report *Report

	width, height int
	sized         bool // The game exists once the surface has a size
	tooSmall      bool
	activated     bool // The player clicked or pressed a key at least once
	focused       bool
	games         int // Games started in this session
	quitting      bool
}

// NewModel creates a model for game. If opts carries a terminal size the
// game is created right away, otherwise on the first WindowSizeMsg.
func NewModel(game Game, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	rt := core.RuntimeConfig{
		CellW:        opts.Config.Display.CellWidth,
		CellH:        opts.Config.Display.CellHeight,
		TickInterval: opts.Config.TickInterval(),
		Seed:         opts.Seed,
	}
	if rt.TickInterval <= 0 {
		rt.TickInterval = core.DefaultTickInterval
	}

	m := Model{
		game:   game,
		opts:   opts,
		screen: core.NewScreen(0, 0),
		rt:     rt,
		clock:  NewClock(rt.TickInterval),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
	}
	if opts.Width > 0 && opts.Height > 0 {
		m.resize(opts.Width, opts.Height)
	}
	return m
}

// Init waits for the player; ticking starts once the surface is activated.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, m.activate()
		}
		return m, nil

	case tea.FocusMsg:
		// Regaining terminal focus resumes a game the player already started.
		if m.activated {
			return m, m.focus()
		}
		return m, nil

	case tea.BlurMsg:
		m.blur()
		return m, nil

	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg, m.state.GameOver)
	if action == core.ActionQuit {
		m.quitting = true
		m.clock.Stop()
		return m, tea.Quit
	}

	// The playfield is hidden, so nothing but quit and help reaches the game.
	if m.tooSmall {
		return m, nil
	}

	if action == core.ActionRestart {
		return m, m.newGame()
	}

	if m.state.GameOver {
		return m, nil
	}

	// Any key on an inactive surface only activates it.
	if !m.focused {
		return m, m.activate()
	}

	if action == core.ActionPause {
		m.blur()
		return m, nil
	}

	m.input.Push(action)
	return m, nil
}

// handleTick runs one simulation step if the tick belongs to the live chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.Accept(msg) || !m.sized || m.tooSmall {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	audio.PlayEvents(m.opts.Sound, result.Events)
	m.logEvents(result)

	if result.Has(core.EventGameOver) {
		m.clock.Stop()
		m.finish()
		return m, nil
	}

	return m, m.clock.Next()
}

// activate gives the play surface focus after a click or key press.
func (m *Model) activate() tea.Cmd {
	if m.state.GameOver {
		return nil
	}
	if !m.activated {
		m.opts.Logger.Debug("surface activated", "session", m.opts.SessionID)
	}
	m.activated = true
	return m.focus()
}

// focus marks the surface focused. The clock waits while the terminal is
// too small and starts in resize once the playfield fits.
func (m *Model) focus() tea.Cmd {
	if m.state.GameOver {
		return nil
	}
	m.focused = true
	if m.tooSmall {
		return nil
	}
	return m.clock.Start()
}

func (m *Model) blur() {
	m.focused = false
	m.clock.Stop()
}

// resize adapts the screen and the game to a new terminal size. The game
// is created on the first size and kept afterwards. A playfield below the
// minimum freezes the game until the terminal grows again.
func (m *Model) resize(width, height int) tea.Cmd {
	m.width, m.height = width, height
	m.help.Width = width

	m.rt.ScreenW = max(0, width)
	m.rt.ScreenH = max(0, height-footerRows)
	m.screen.Resize(m.rt.ScreenW, m.rt.ScreenH)

	minW, minH := m.minCells()
	m.tooSmall = m.rt.ScreenW < minW || m.rt.ScreenH < minH

	if !m.sized {
		m.sized = true
		m.startGame()
	} else {
		m.game.Resize(m.rt)
	}

	if m.tooSmall {
		m.clock.Stop()
		m.input.Clear()
		return nil
	}
	if m.activated && m.focused {
		return m.focus()
	}
	return nil
}

// minCells returns the smallest playfield in cells.
func (m Model) minCells() (w, h int) {
	pw, ph := m.opts.Config.MinPlayfield()
	cw, ch := m.rt.CellW, m.rt.CellH
	if cw <= 0 {
		cw = core.DefaultCellWidth
	}
	if ch <= 0 {
		ch = core.DefaultCellHeight
	}
	return core.CeilDiv(pw, cw), core.CeilDiv(ph, ch)
}

// startGame recreates every entity with the next seed of the session.
func (m *Model) startGame() {
	m.rt.Seed = m.opts.Seed + int64(m.games)
	m.games++
	m.game.Reset(m.rt)
	m.state = m.game.State()
	m.report = nil
	m.input.Clear()
	m.opts.Logger.Info("game started",
		"session", m.opts.SessionID,
		"game", m.game.ID(),
		"round", m.games,
		"seed", m.rt.Seed,
	)
}

// newGame starts over after the report and keeps the surface focused.
func (m *Model) newGame() tea.Cmd {
	if !m.sized {
		return nil
	}
	m.startGame()
	return m.activate()
}

// finish records the result and prepares the report.
func (m *Model) finish() {
	accuracy := m.game.Accuracy()
	report := &Report{Title: m.game.Title(), State: m.state, Accuracy: accuracy}

	m.opts.Logger.Info("game over",
		"session", m.opts.SessionID,
		"hits", m.state.Hits,
		"misses", m.state.Misses,
		"accuracy", FormatAccuracy(accuracy),
	)

	if store := m.opts.Store; store != nil {
		_, err := store.SaveResult(storage.Result{
			SessionID: m.opts.SessionID,
			Player:    m.opts.Player,
			Hits:      m.state.Hits,
			Misses:    m.state.Misses,
			Charges:   m.state.Charges,
			Accuracy:  accuracy,
		})
		if err != nil {
			m.opts.Logger.Warn("could not save result", "error", err)
		}

		if history, err := store.SessionResults(m.opts.SessionID, maxReportRows); err == nil {
			report.History = history
		} else {
			m.opts.Logger.Warn("could not load session results", "error", err)
		}
		if best, ok, err := store.Best(); err == nil && ok {
			report.Best = &best
		}
	}

	m.report = report
}

func (m Model) logEvents(result core.StepResult) {
	for _, ev := range result.Events {
		switch ev {
		case core.EventHit, core.EventMiss:
			m.opts.Logger.Debug(ev.String(),
				"session", m.opts.SessionID,
				"hits", result.State.Hits,
				"misses", result.State.Misses,
			)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || !m.sized {
		return ""
	}

	footer := m.help.View(m.keys)

	if m.report != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.report.View(m.width, m.rt.ScreenH),
			footer,
		)
	}

	if m.tooSmall {
		minW, minH := m.minCells()
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", minW, minH+footerRows, m.width, m.height)
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.Place(m.width, m.rt.ScreenH, lipgloss.Center, lipgloss.Center, msg),
			footer,
		)
	}

	m.game.Render(m.screen)
	if !m.focused {
		m.screen.DrawTextCentered(m.screen.Height()/10+2, subkiller.BeginBanner, core.ColorRed)
	}

	return RenderScreen(m.screen) + "\n" + footer
}

// Focused reports whether the play surface currently has focus.
func (m Model) Focused() bool {
	return m.focused
}

// State returns the scoreboard after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Report returns the end-of-game report, or nil while playing.
func (m Model) Report() *Report {
	return m.report
}

// Run starts a local Bubble Tea program for one game session.
func Run(game Game, opts Options, mouse bool) error {
	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	}
	if mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewModel(game, opts), programOpts...)
	_, err := p.Run()
	return err
}

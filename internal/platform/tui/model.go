package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marralek/glidebird/internal/core"
	"github.com/marralek/glidebird/internal/sim"
	"github.com/marralek/glidebird/internal/storage"
)

// nominalFrameMs is the delta assumed for the very first tick after the
// loop is (re)armed, before a real wall-clock interval exists.
const nominalFrameMs = 1000.0 / 60.0

// Options configures the TUI host.
type Options struct {
	TickRate int    // Target frames per second
	Profile  string // Storage profile for run history
}

// Model is the Bubble Tea model hosting a single glidebird session.
// It measures real elapsed time between ticks so the simulation stays
// frame-rate independent regardless of terminal latency.
type Model struct {
	game   *sim.Simulation
	screen *core.Screen
	store  *storage.Store
	keymap *KeyMapper
	input  core.InputFrame
	opts   Options

	lastTick time.Time
	ticking  bool
	paused   bool
	quitting bool
	runSaved bool // Whether the finished run has been recorded
}

// NewModel creates a TUI host around an existing simulation. The store may
// be nil, in which case run history is not recorded.
func NewModel(game *sim.Simulation, store *storage.Store, opts Options) Model {
	if opts.Profile == "" {
		opts.Profile = storage.DefaultProfile
	}

	return Model{
		game:   game,
		screen: core.NewScreen(80, 24),
		store:  store,
		keymap: NewKeyMapper(),
		input:  core.NewInputFrame(),
		opts:   opts,
	}
}

// Init returns no command: the tick loop is armed by the first input that
// starts the session. The idle screen is static and needs no redraws.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionFlap:
		// Any flap while idle also starts the session.
		if m.game.Phase() == sim.PhaseStart {
			return m.startSession()
		}
		// Collect the flap into the input frame; it is applied on the
		// next tick, so a press between two ticks is never lost.
		if m.game.Phase() == sim.PhasePlaying && !m.paused {
			m.input.Set(core.ActionFlap)
		}

	case core.ActionStart:
		if m.game.Phase() == sim.PhaseStart {
			return m.startSession()
		}

	case core.ActionRestart:
		if m.game.Phase() == sim.PhaseGameOver {
			m.game.OnRestart()
			m.runSaved = false
			m.paused = false
			return m.armTicks()
		}

	case core.ActionPause:
		return m.togglePause()
	}

	return m, nil
}

// startSession begins play and arms the tick loop.
func (m Model) startSession() (tea.Model, tea.Cmd) {
	m.game.OnStart()
	return m.armTicks()
}

// armTicks starts the tick loop if it is not already running. Resetting
// lastTick makes the next tick use the nominal delta instead of the idle
// interval.
func (m Model) armTicks() (tea.Model, tea.Cmd) {
	m.lastTick = time.Time{}
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.opts.TickRate)
}

// togglePause flips host-level pause. The tick loop stops while paused so
// the resumed session does not see the paused interval as elapsed time.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	if m.game.Phase() != sim.PhasePlaying {
		return m, nil
	}

	m.paused = !m.paused
	if m.paused {
		m.ticking = false
		return m, nil
	}
	return m.armTicks()
}

// handleResize processes window resize events. The world keeps a fixed
// height; width follows the terminal aspect ratio so obstacles stay
// roughly square on screen (terminal cells are about twice as tall as
// they are wide).
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}

	m.screen.Resize(msg.Width, msg.Height)

	snap := m.game.Snapshot()
	worldH := snap.ViewH
	worldW := worldH * float64(msg.Width) / (2 * float64(msg.Height))
	m.game.Resize(worldW, worldH)

	return m, nil
}

// handleTick advances the simulation by the real elapsed time since the
// previous tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticking {
		// A stale tick from before a pause; drop it.
		return m, nil
	}

	now := time.Time(msg)
	dtMs := nominalFrameMs
	if !m.lastTick.IsZero() {
		dtMs = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	// Drain the input collected since the previous tick.
	if m.input.Has(core.ActionFlap) {
		m.game.OnFlap()
	}
	m.input.Clear()

	m.game.Tick(dtMs)

	if m.game.Phase() == sim.PhaseGameOver {
		m.saveRun()
		// The game-over screen is static until a restart; stop ticking.
		m.ticking = false
		return m, nil
	}

	return m, tickCmd(m.opts.TickRate)
}

// saveRun records the finished session once.
func (m *Model) saveRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.store == nil || m.game.Score() <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.opts.Profile, m.game.Score())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot(), m.paused)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program hosting the given simulation.
func Run(game *sim.Simulation, store *storage.Store, opts Options) error {
	model := NewModel(game, store, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

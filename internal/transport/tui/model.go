package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/blockfall/internal/entity"
	"github.com/rocketscienceinc/blockfall/internal/usecase"
)

// chromeLines is the number of terminal rows used by the well border and footer.
const chromeLines = 3

type gameSession interface {
	Push(ctx context.Context, move entity.Move) error
	Pause(ctx context.Context) error
	Tick(ctx context.Context) error
	Snapshot(ctx context.Context, height int) (usecase.Snapshot, error)
}

// MsgFrame drives the render loop.
type MsgFrame time.Time

// Model is the Bubble Tea model of the game screen.
type Model struct {
	ctx     context.Context
	session gameSession
	keys    KeyMap

	frame    time.Duration
	rows     int
	snapshot usecase.Snapshot
	err      error
}

// NewModel builds a model that shows rows playfield rows and redraws frameRate times per second.
func NewModel(ctx context.Context, session gameSession, rows, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 30
	}

	return Model{
		ctx:     ctx,
		session: session,
		keys:    DefaultKeyMap(),
		frame:   time.Second / time.Duration(frameRate),
		rows:    rows,
	}
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if rows := msg.Height - chromeLines; rows > 0 {
			m.rows = rows
		}
		return m.refresh(nil)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgFrame:
		next, cmd := m.refresh(m.session.Tick(m.ctx))
		if cmd != nil {
			return next, cmd
		}
		return next, next.nextFrame()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		return m.refresh(m.session.Pause(m.ctx))
	}

	if move, ok := m.keys.Move(msg); ok {
		return m.refresh(m.session.Push(m.ctx, move))
	}

	return m, nil
}

// refresh takes a new snapshot unless err is set. Any error ends the program.
func (m Model) refresh(err error) (Model, tea.Cmd) {
	if err == nil {
		m.snapshot, err = m.session.Snapshot(m.ctx, m.rows)
	}

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			m.err = fmt.Errorf("game session: %w", err)
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return MsgFrame(t)
	})
}

func (m Model) View() string {
	if m.snapshot.Rows == nil {
		return ""
	}
	return Render(m.snapshot, m.keys)
}

// Run starts the program on the alternate screen and blocks until the player quits.
func Run(ctx context.Context, session gameSession, rows, frameRate int, opts ...tea.ProgramOption) error {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	allOpts = append(allOpts, opts...)

	program := tea.NewProgram(NewModel(ctx, session, rows, frameRate), allOpts...)

	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}

	if model, ok := final.(Model); ok && model.Err() != nil {
		return model.Err()
	}

	return nil
}

package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/blockfall/internal/apperror"
	"github.com/rocketscienceinc/blockfall/internal/entity"
	"github.com/rocketscienceinc/blockfall/internal/tetris"
)

type gameEngine interface {
	Push(move entity.Move)
	Pause()
	Stop()
	Tick()
	Status() entity.Status
	Overlapping() bool
	VisibleBoard(height int) [][]entity.Cell
	PeekQueue(index int) entity.PieceType
	Hold() entity.PieceType
	HoldLocked() bool
	Options() tetris.Options
}

// Snapshot is a read-only view of a game for rendering.
type Snapshot struct {
	Rows       [][]entity.Cell
	Next       []entity.PieceType
	Hold       entity.PieceType
	HoldLocked bool
	Status     entity.Status
}

type operation struct {
	apply func(game gameEngine)
	done  chan struct{}
}

// Session serializes every access to one game through a single consumer loop.
// It also performs the top-out check after each operation, stopping the game
// when a freshly spawned piece overlaps the stack.
type Session struct {
	id     string
	logger *slog.Logger
	game   gameEngine

	operations chan operation
	quit       chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
}

func NewSession(logger *slog.Logger, game gameEngine) *Session {
	id := uuid.NewString()

	return &Session{
		id:     id,
		logger: logger.With("component", "session", "session_id", id),
		game:   game,

		operations: make(chan operation),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (that *Session) ID() string {
	return that.id
}

// Run consumes operations until ctx is cancelled or Close is called.
func (that *Session) Run(ctx context.Context) {
	log := that.logger.With("method", "Run")

	defer close(that.done)

	log.Info("session started", "status", that.game.Status().String())

	for {
		select {
		case <-ctx.Done():
			log.Info("session stopped", "reason", ctx.Err())
			return
		case <-that.quit:
			log.Info("session closed")
			return
		case op := <-that.operations:
			op.apply(that.game)
			that.checkTopOut()
			close(op.done)
		}
	}
}

// Close stops the loop. Pending and later calls return apperror.ErrSessionClosed.
func (that *Session) Close() {
	that.closeOnce.Do(func() {
		close(that.quit)
	})
}

// Done is closed once the loop has exited.
func (that *Session) Done() <-chan struct{} {
	return that.done
}

func (that *Session) Push(ctx context.Context, move entity.Move) error {
	return that.do(ctx, func(game gameEngine) {
		game.Push(move)
		that.logger.Debug("move applied", "move", move.String(), "status", game.Status().String())
	})
}

// Pause toggles between playing and idle.
func (that *Session) Pause(ctx context.Context) error {
	return that.do(ctx, func(game gameEngine) {
		game.Pause()
		that.logger.Info("pause toggled", "status", game.Status().String())
	})
}

func (that *Session) Tick(ctx context.Context) error {
	return that.do(ctx, func(game gameEngine) {
		game.Tick()
	})
}

// Snapshot renders the bottom height rows and the side panel data.
func (that *Session) Snapshot(ctx context.Context, height int) (Snapshot, error) {
	var snapshot Snapshot

	err := that.do(ctx, func(game gameEngine) {
		next := make([]entity.PieceType, game.Options().QueueLength)
		for i := range next {
			next[i] = game.PeekQueue(i)
		}

		snapshot = Snapshot{
			Rows:       game.VisibleBoard(height),
			Next:       next,
			Hold:       game.Hold(),
			HoldLocked: game.HoldLocked(),
			Status:     game.Status(),
		}
	})

	return snapshot, err
}

func (that *Session) do(ctx context.Context, apply func(game gameEngine)) error {
	op := operation{
		apply: apply,
		done:  make(chan struct{}),
	}

	select {
	case that.operations <- op:
	case <-that.done:
		return apperror.ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-op.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (that *Session) checkTopOut() {
	if !that.game.Status().IsPlaying() || !that.game.Overlapping() {
		return
	}

	that.game.Stop()
	that.logger.Info("top out, game stopped")
}

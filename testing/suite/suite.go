package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/blockfall/internal/entity"
	"github.com/rocketscienceinc/blockfall/internal/rotation"
	"github.com/rocketscienceinc/blockfall/internal/tetris"
	"github.com/rocketscienceinc/blockfall/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// ScriptedQueue deals a fixed cycle of pieces so tests can predict every spawn.
type ScriptedQueue struct {
	pieces []entity.PieceType
	next   int
}

func NewScriptedQueue(pieces ...entity.PieceType) *ScriptedQueue {
	if len(pieces) == 0 {
		pieces = entity.PieceTypes[:]
	}
	return &ScriptedQueue{pieces: pieces}
}

func (that *ScriptedQueue) Peek(index int) entity.PieceType {
	return that.pieces[(that.next+index)%len(that.pieces)]
}

func (that *ScriptedQueue) Pop() entity.PieceType {
	piece := that.Peek(0)
	that.next++
	return piece
}

// Game builds a default-sized game dealing the given pieces in a cycle.
func (that *Suite) Game(pieces ...entity.PieceType) *tetris.Game {
	return tetris.New(tetris.Options{}, NewScriptedQueue(pieces...), rotation.NewStandard())
}

// StartSession runs a session for the game until the test ends.
func (that *Suite) StartSession(ctx context.Context, game *tetris.Game) *usecase.Session {
	that.Helper()

	session := usecase.NewSession(that.Logger, game)
	go session.Run(ctx)

	that.Cleanup(func() {
		session.Close()
		<-session.Done()
	})

	return session
}

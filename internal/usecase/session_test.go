package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/blockfall/internal/apperror"
	"github.com/rocketscienceinc/blockfall/internal/entity"
	"github.com/rocketscienceinc/blockfall/internal/usecase"
	"github.com/rocketscienceinc/blockfall/testing/suite"
)

func TestSession_Push(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a running session over an O/T game
	game := st.Game(entity.O, entity.T)
	session := st.StartSession(ctx, game)
	require.NotEmpty(t, session.ID())

	// When: the piece is dragged to the wall and hard-dropped
	require.NoError(t, session.Push(ctx, entity.Left(100)))
	require.NoError(t, session.Push(ctx, entity.HardDrop()))

	// Then: the snapshot shows the locked O in the bottom-left corner and T in play
	snapshot, err := session.Snapshot(ctx, 20)
	require.NoError(t, err)
	require.Len(t, snapshot.Rows, 20)
	assert.Equal(t, entity.CellOf(entity.O), snapshot.Rows[19][0])
	assert.Equal(t, entity.CellOf(entity.O), snapshot.Rows[18][1])
	assert.Equal(t, entity.StatusPlaying, snapshot.Status)
	assert.Equal(t, entity.T, game.Piece().Type)
}

func TestSession_Snapshot(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a session whose game has swapped once
	session := st.StartSession(ctx, st.Game(entity.I, entity.J, entity.L, entity.O, entity.S))
	require.NoError(t, session.Push(ctx, entity.Swap()))

	// When: a snapshot is taken
	snapshot, err := session.Snapshot(ctx, 0)

	// Then: the whole board, the preview and the hold slot are reported
	require.NoError(t, err)
	assert.Len(t, snapshot.Rows, 40)
	assert.Equal(t, []entity.PieceType{entity.L, entity.O, entity.S, entity.I}, snapshot.Next)
	assert.Equal(t, entity.I, snapshot.Hold)
	assert.True(t, snapshot.HoldLocked)
}

func TestSession_Pause(t *testing.T) {
	ctx, st := suite.New(t)

	game := st.Game(entity.O)
	session := st.StartSession(ctx, game)

	require.NoError(t, session.Pause(ctx))
	require.NoError(t, session.Push(ctx, entity.Left(2)))
	assert.Equal(t, entity.StatusIdle, game.Status())
	assert.Equal(t, 3, game.Piece().Col)

	require.NoError(t, session.Pause(ctx))
	require.NoError(t, session.Tick(ctx))
	assert.Equal(t, entity.StatusPlaying, game.Status())
}

func TestSession_TopOut(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a game dealing only O pieces
	game := st.Game(entity.O)
	session := st.StartSession(ctx, game)

	// When: eleven Os are stacked in the same columns
	for i := 0; i < 11; i++ {
		require.NoError(t, session.Push(ctx, entity.HardDrop()))
	}

	// Then: the last spawn overlaps the stack and the session stops the game
	snapshot, err := session.Snapshot(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusStopped, snapshot.Status)

	// Then: further moves and pauses are ignored
	before := game.Piece()
	require.NoError(t, session.Push(ctx, entity.Left(1)))
	require.NoError(t, session.Pause(ctx))
	assert.Equal(t, before, game.Piece())
	assert.Equal(t, entity.StatusStopped, game.Status())
}

func TestSession_NoTopOutBeforeTheStackReachesSpawn(t *testing.T) {
	ctx, st := suite.New(t)

	game := st.Game(entity.O)
	session := st.StartSession(ctx, game)

	for i := 0; i < 10; i++ {
		require.NoError(t, session.Push(ctx, entity.HardDrop()))
	}

	assert.Equal(t, entity.StatusPlaying, game.Status())
	assert.Equal(t, 18, game.Piece().Row)
}

func TestSession_Serializes(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: an O piece at the spawn row
	game := st.Game(entity.O)
	session := st.StartSession(ctx, game)

	// When: ten goroutines each soft-drop it by one row
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, session.Push(ctx, entity.SoftDrop(1)))
		}()
	}
	wg.Wait()

	// Then: every move was applied exactly once
	snapshot, err := session.Snapshot(ctx, 40)
	require.NoError(t, err)
	assert.Equal(t, entity.CellOf(entity.O), snapshot.Rows[29][4])
	assert.Equal(t, entity.CellOf(entity.O), snapshot.Rows[30][5])
}

func TestSession_Closed(t *testing.T) {
	t.Run("Returns ErrSessionClosed after Close", func(t *testing.T) {
		ctx, st := suite.New(t)

		session := usecase.NewSession(st.Logger, st.Game())
		go session.Run(ctx)

		session.Close()
		<-session.Done()

		require.ErrorIs(t, session.Push(ctx, entity.HardDrop()), apperror.ErrSessionClosed)
		_, err := session.Snapshot(ctx, 20)
		require.ErrorIs(t, err, apperror.ErrSessionClosed)
	})

	t.Run("Returns ErrSessionClosed after the run context ends", func(t *testing.T) {
		ctx, st := suite.New(t)

		runCtx, cancel := context.WithCancel(ctx)
		session := usecase.NewSession(st.Logger, st.Game())
		go session.Run(runCtx)

		cancel()
		<-session.Done()

		require.ErrorIs(t, session.Tick(ctx), apperror.ErrSessionClosed)
	})

	t.Run("Caller context ends before the loop starts", func(t *testing.T) {
		_, st := suite.New(t)

		session := usecase.NewSession(st.Logger, st.Game())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, session.Push(ctx, entity.HardDrop()), context.Canceled)
	})
}

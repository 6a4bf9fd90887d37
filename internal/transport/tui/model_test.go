package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/blockfall/internal/entity"
	"github.com/rocketscienceinc/blockfall/internal/usecase"
	"github.com/rocketscienceinc/blockfall/testing/suite"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func isQuit(t *testing.T, cmd tea.Cmd) bool {
	t.Helper()

	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeyMap_Move(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want entity.Move
	}{
		{"w hard drop", runeKey('w'), entity.HardDrop()},
		{"a left", runeKey('a'), entity.Left(1)},
		{"s soft drop", runeKey('s'), entity.SoftDrop(1)},
		{"d right", runeKey('d'), entity.Right(1)},
		{"j counter-clockwise", runeKey('j'), entity.Rotate(-1)},
		{"k clockwise", runeKey('k'), entity.Rotate(1)},
		{"l half turn", runeKey('l'), entity.Rotate(2)},
		{"q swap", runeKey('q'), entity.Swap()},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, entity.Left(1)},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, entity.Rotate(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, ok := km.Move(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, move)
		})
	}

	t.Run("Unbound key", func(t *testing.T) {
		_, ok := km.Move(runeKey('z'))
		assert.False(t, ok)
	})
}

func TestModel_Update(t *testing.T) {
	t.Run("Key press moves the piece", func(t *testing.T) {
		// Given: a model over a running session
		ctx, st := suite.New(t)
		game := st.Game(entity.O)
		model := NewModel(ctx, st.StartSession(ctx, game), 20, 30)

		// When: the left key is pressed
		next, cmd := model.Update(runeKey('a'))

		// Then: the piece moved and a snapshot was taken
		assert.Nil(t, cmd)
		assert.Equal(t, 2, game.Piece().Col)
		require.Len(t, next.(Model).snapshot.Rows, 20)
	})

	t.Run("Pause key", func(t *testing.T) {
		ctx, st := suite.New(t)
		game := st.Game(entity.T)
		model := NewModel(ctx, st.StartSession(ctx, game), 20, 30)

		next, _ := model.Update(runeKey('p'))

		assert.Equal(t, entity.StatusIdle, game.Status())
		assert.Contains(t, next.View(), "PAUSED")
	})

	t.Run("Quit key", func(t *testing.T) {
		ctx, st := suite.New(t)
		model := NewModel(ctx, st.StartSession(ctx, st.Game()), 20, 30)

		_, cmd := model.Update(runeKey('c'))

		assert.True(t, isQuit(t, cmd))
	})

	t.Run("Frame schedules the next frame", func(t *testing.T) {
		ctx, st := suite.New(t)
		model := NewModel(ctx, st.StartSession(ctx, st.Game(entity.I)), 20, 30)

		next, cmd := model.Update(MsgFrame(time.Now()))

		require.NotNil(t, cmd)
		assert.NotEmpty(t, next.View())
	})

	t.Run("Window size changes the visible rows", func(t *testing.T) {
		ctx, st := suite.New(t)
		model := NewModel(ctx, st.StartSession(ctx, st.Game()), 20, 30)

		next, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 15})

		assert.Len(t, next.(Model).snapshot.Rows, 12)
	})

	t.Run("Closed session ends the program", func(t *testing.T) {
		ctx, st := suite.New(t)
		session := usecase.NewSession(st.Logger, st.Game())
		go session.Run(ctx)
		session.Close()
		<-session.Done()
		model := NewModel(ctx, session, 20, 30)

		next, cmd := model.Update(runeKey('a'))

		assert.True(t, isQuit(t, cmd))
		require.Error(t, next.(Model).Err())
	})
}

func TestRender(t *testing.T) {
	t.Run("Cells", func(t *testing.T) {
		assert.Contains(t, renderCell(entity.CellEmpty), strings.TrimSpace(glyphEmpty))
		assert.Contains(t, renderCell(entity.CellGhost), strings.TrimSpace(glyphGhost))
		assert.Contains(t, renderCell(entity.CellOf(entity.T)), glyphBlock)
	})

	t.Run("Preview", func(t *testing.T) {
		preview := renderPreview(entity.I)
		assert.Equal(t, 4, strings.Count(preview, glyphBlock))

		empty := renderPreview(entity.None)
		assert.NotContains(t, empty, glyphBlock)
	})

	t.Run("Game over", func(t *testing.T) {
		screen := Render(usecase.Snapshot{
			Rows:   [][]entity.Cell{{entity.CellEmpty, entity.CellOf(entity.Z)}},
			Next:   []entity.PieceType{entity.S},
			Status: entity.StatusStopped,
		}, DefaultKeyMap())

		assert.Contains(t, screen, "GAME OVER")
		assert.Contains(t, screen, "Next")
		assert.Contains(t, screen, "Hold")
	})
}

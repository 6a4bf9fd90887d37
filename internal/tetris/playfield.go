package tetris

import "github.com/rocketscienceinc/blockfall/internal/entity"

// Ghost returns where the active piece would rest if hard-dropped now.
func (that *Game) Ghost() entity.Piece {
	ghost := that.piece
	ghost.Row = that.restingRow()
	return ghost
}

// VisibleBoard renders the bottom height rows of the board with the ghost and
// the active piece drawn over the locked cells. A height outside
// (0, rows] returns the whole board.
func (that *Game) VisibleBoard(height int) [][]entity.Cell {
	rows := that.board.Rows()
	if height <= 0 || height > rows {
		height = rows
	}

	view := make([][]entity.Cell, rows)
	for row := range view {
		view[row] = make([]entity.Cell, that.board.Width())
		for col := range view[row] {
			view[row][col] = entity.CellOf(that.board.At(row, col))
		}
	}

	that.draw(view, that.Ghost(), entity.CellGhost)
	that.draw(view, that.piece, entity.CellOf(that.piece.Type))

	return view[rows-height:]
}

func (that *Game) draw(view [][]entity.Cell, piece entity.Piece, value entity.Cell) {
	for _, cell := range piece.Absolute() {
		if that.board.InBounds(cell.Row, cell.Col) {
			view[cell.Row][cell.Col] = value
		}
	}
}

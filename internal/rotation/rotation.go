package rotation

import "github.com/rocketscienceinc/blockfall/internal/entity"

// Standard is the default rotation system: fixed shape tables with
// per-transition wall kicks. It holds no state; the board is borrowed per call.
type Standard struct{}

func NewStandard() *Standard {
	return &Standard{}
}

// Overlaps reports whether any cell of the placement lies outside the board
// or on an occupied cell.
func (that *Standard) Overlaps(board *entity.Board, piece entity.Piece) bool {
	for _, cell := range piece.Absolute() {
		if !board.InBounds(cell.Row, cell.Col) || board.At(cell.Row, cell.Col) != entity.None {
			return true
		}
	}
	return false
}

// Spawn places a new piece in orientation 0, centred horizontally, near the
// top of the hidden region. The returned piece may overlap the board; detecting
// that top-out is up to the caller.
func (that *Standard) Spawn(board *entity.Board, pieceType entity.PieceType) entity.Piece {
	piece := entity.Piece{
		Type:     pieceType,
		Row:      board.Rows()/2 - 2,
		Col:      (board.Width()+3)/2 - 3,
		Rotation: 0,
		Cells:    Shape(pieceType, 0),
	}

	if !that.Overlaps(board, piece) && !that.Overlaps(board, piece.Shifted(entity.Offset{Row: 1})) {
		piece.Row++
	}

	return piece
}

// Rotate turns the piece in place when it fits, otherwise tries the kick
// candidates in order. The piece is left untouched when nothing fits.
func (that *Standard) Rotate(board *entity.Board, piece *entity.Piece, turns int) {
	target := normalize(piece.Rotation + turns)

	rotated := *piece
	rotated.Rotation = target
	rotated.Cells = Shape(piece.Type, target)

	if !that.Overlaps(board, rotated) {
		*piece = rotated
		return
	}

	kicks, ok := Kicks(piece.Type, piece.Rotation, target)
	if !ok {
		return
	}

	for _, kick := range kicks {
		if candidate := rotated.Shifted(kick); !that.Overlaps(board, candidate) {
			*piece = candidate
			return
		}
	}
}

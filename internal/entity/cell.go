package entity

// Cell is one square of a rendered playfield.
// Values 1..7 are the piece type tags; CellGhost marks the drop projection.
type Cell uint8

const (
	CellEmpty Cell = 0
	CellGhost Cell = 8
)

// CellOf converts a board tag into a view cell.
func CellOf(piece PieceType) Cell {
	return Cell(piece)
}

// Piece returns the piece type drawn in the cell, or None for empty and ghost cells.
func (that Cell) Piece() PieceType {
	if that == CellGhost {
		return None
	}
	return PieceType(that)
}

func (that Cell) IsGhost() bool {
	return that == CellGhost
}

func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

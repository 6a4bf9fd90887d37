package entity

// Board is a fixed-size grid of piece-type tags, indexed [row][col].
// Row 0 is the top of the hidden region.
type Board struct {
	cells [][]PieceType
	width int
}

// NewBoard allocates an empty board.
func NewBoard(rows, width int) *Board {
	cells := make([][]PieceType, rows)
	for i := range cells {
		cells[i] = make([]PieceType, width)
	}

	return &Board{
		cells: cells,
		width: width,
	}
}

func (that *Board) Rows() int {
	return len(that.cells)
}

func (that *Board) Width() int {
	return that.width
}

// InBounds reports whether the coordinate lies on the board.
func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(that.cells) && col >= 0 && col < that.width
}

// At returns the tag stored at (row, col). The caller must check bounds.
func (that *Board) At(row, col int) PieceType {
	return that.cells[row][col]
}

// Set stores a tag at (row, col). The caller must check bounds.
func (that *Board) Set(row, col int, value PieceType) {
	that.cells[row][col] = value
}

// IsRowFull reports whether every cell in the row is occupied.
func (that *Board) IsRowFull(row int) bool {
	for _, cell := range that.cells[row] {
		if cell == None {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, scanning top to bottom, and inserts
// an empty row at the top for each one. It returns the number of rows removed.
func (that *Board) ClearFullRows() int {
	cleared := 0
	for i := range that.cells {
		if !that.IsRowFull(i) {
			continue
		}

		copy(that.cells[1:i+1], that.cells[:i])
		that.cells[0] = make([]PieceType, that.width)
		cleared++
	}
	return cleared
}

// Clone returns a deep copy of the board.
func (that *Board) Clone() *Board {
	clone := NewBoard(len(that.cells), that.width)
	for i, row := range that.cells {
		copy(clone.cells[i], row)
	}
	return clone
}

package entity

// PieceType identifies one of the seven tetrominoes. The zero value marks an empty board cell.
type PieceType uint8

const (
	None PieceType = iota
	I
	J
	L
	O
	S
	T
	Z
)

// PieceTypes lists every playable piece type in tag order.
var PieceTypes = [...]PieceType{I, J, L, O, S, T, Z}

// NumPieceTypes is the number of playable piece types.
const NumPieceTypes = len(PieceTypes)

// NumRotations is the number of orientations every piece has.
const NumRotations = 4

func (that PieceType) String() string {
	switch that {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return "-"
	}
}

// IsValid reports whether the type is one of the seven playable pieces.
func (that PieceType) IsValid() bool {
	return that >= I && that <= Z
}

// Offset is a (row, column) displacement. Rows grow downward.
type Offset struct {
	Row int
	Col int
}

// Add returns the component-wise sum of two offsets.
func (that Offset) Add(other Offset) Offset {
	return Offset{Row: that.Row + other.Row, Col: that.Col + other.Col}
}

// Piece is the active, player-controlled tetromino.
// Row and Col locate the origin of its 4x4 frame; Cells are relative to it.
type Piece struct {
	Type     PieceType
	Row      int
	Col      int
	Rotation int
	Cells    [4]Offset
}

// Origin returns the piece origin as an offset.
func (that Piece) Origin() Offset {
	return Offset{Row: that.Row, Col: that.Col}
}

// Shifted returns a copy of the piece with its origin moved by delta.
func (that Piece) Shifted(delta Offset) Piece {
	that.Row += delta.Row
	that.Col += delta.Col
	return that
}

// Absolute returns the board coordinates occupied by the piece.
func (that Piece) Absolute() [4]Offset {
	var cells [4]Offset
	for i, cell := range that.Cells {
		cells[i] = cell.Add(that.Origin())
	}
	return cells
}

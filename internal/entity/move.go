package entity

import "fmt"

// MoveType tags a player command.
type MoveType uint8

const (
	MoveDrag MoveType = iota
	MoveHardDrop
	MoveRotate
	MoveSoftDrop
	MoveSwap
)

func (that MoveType) String() string {
	switch that {
	case MoveDrag:
		return "drag"
	case MoveHardDrop:
		return "hard-drop"
	case MoveRotate:
		return "rotate"
	case MoveSoftDrop:
		return "soft-drop"
	case MoveSwap:
		return "swap"
	default:
		return fmt.Sprintf("move(%d)", uint8(that))
	}
}

// Move describes one player intent. Only the field matching Type is meaningful:
// Cols for drag, Rows for soft-drop, Turns for rotate.
type Move struct {
	Type  MoveType
	Rows  int
	Cols  int
	Turns int
}

// Drag slides the piece horizontally by cols cells; negative is left.
func Drag(cols int) Move {
	return Move{Type: MoveDrag, Cols: cols}
}

func Left(cols int) Move {
	return Drag(-cols)
}

func Right(cols int) Move {
	return Drag(cols)
}

// Rotate turns the piece clockwise by turns quarter turns; negative is counter-clockwise.
func Rotate(turns int) Move {
	return Move{Type: MoveRotate, Turns: turns % NumRotations}
}

func HardDrop() Move {
	return Move{Type: MoveHardDrop}
}

// SoftDrop moves the piece down by rows cells without locking it.
func SoftDrop(rows int) Move {
	return Move{Type: MoveSoftDrop, Rows: rows}
}

// Swap exchanges the active piece with the hold slot.
func Swap() Move {
	return Move{Type: MoveSwap}
}

func (that Move) String() string {
	switch that.Type {
	case MoveDrag:
		return fmt.Sprintf("drag(%d)", that.Cols)
	case MoveSoftDrop:
		return fmt.Sprintf("soft-drop(%d)", that.Rows)
	case MoveRotate:
		return fmt.Sprintf("rotate(%d)", that.Turns)
	default:
		return that.Type.String()
	}
}

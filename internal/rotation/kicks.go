package rotation

import "github.com/rocketscienceinc/blockfall/internal/entity"

// kickTable maps from*4+to to the ordered corrections tried when a rotation
// does not fit in place. Half turns have no entry.
type kickTable map[int][]entity.Offset

func kickKey(from, to int) int {
	return from*entity.NumRotations + to
}

var standardKicks = kickTable{
	kickKey(0, 1): {{0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	kickKey(0, 3): {{0, 1}, {-1, 1}, {2, 0}, {2, 1}},
	kickKey(1, 0): {{0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	kickKey(1, 2): {{0, 1}, {1, 1}, {-2, 0}, {-2, 1}},
	kickKey(2, 1): {{0, -1}, {-1, -1}, {2, 0}, {2, -1}},
	kickKey(2, 3): {{0, 1}, {-1, 1}, {2, 0}, {2, 1}},
	kickKey(3, 0): {{0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
	kickKey(3, 2): {{0, -1}, {1, -1}, {-2, 0}, {-2, -1}},
}

var iKicks = kickTable{
	kickKey(0, 1): {{0, -2}, {0, 1}, {1, -2}, {-2, 1}},
	kickKey(0, 3): {{0, -1}, {0, 2}, {-2, -1}, {1, 2}},
	kickKey(1, 0): {{0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	kickKey(1, 2): {{0, -1}, {0, 2}, {-2, -1}, {1, 2}},
	kickKey(2, 1): {{0, 1}, {0, -2}, {2, 1}, {-1, 2}},
	kickKey(2, 3): {{0, 2}, {0, -1}, {-1, 2}, {2, -1}},
	kickKey(3, 0): {{0, 1}, {0, -2}, {2, 1}, {-1, -2}},
	kickKey(3, 2): {{0, -2}, {0, 1}, {1, -2}, {-2, 1}},
}

// Kicks returns the candidate corrections for rotating a piece from one
// orientation to another. ok is false when the transition has no entry.
func Kicks(piece entity.PieceType, from, to int) (candidates []entity.Offset, ok bool) {
	table := standardKicks
	if piece == entity.I {
		table = iKicks
	}

	candidates, ok = table[kickKey(normalize(from), normalize(to))]
	return candidates, ok
}

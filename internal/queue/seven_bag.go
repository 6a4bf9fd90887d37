package queue

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/blockfall/internal/entity"
)

// DefaultLookahead is the number of upcoming pieces kept visible.
const DefaultLookahead = 4

// SevenBag deals pieces in shuffled bags holding one of each type,
// so every type appears exactly once per bag.
type SevenBag struct {
	lookahead int
	pieces    []entity.PieceType
	random    *rand.Rand
}

// NewSevenBag builds a queue that keeps at least lookahead+1 pieces generated.
// A non-positive lookahead falls back to DefaultLookahead.
func NewSevenBag(lookahead int, random *rand.Rand) *SevenBag {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}

	bag := &SevenBag{
		lookahead: lookahead,
		pieces:    make([]entity.PieceType, 0, 2*entity.NumPieceTypes),
		random:    random,
	}
	bag.ensure(lookahead + 1)

	return bag
}

// Lookahead returns the configured preview length.
func (that *SevenBag) Lookahead() int {
	return that.lookahead
}

// Peek returns the piece at the given lookahead position without consuming it.
// Index 0 is the next piece to be popped.
func (that *SevenBag) Peek(index int) entity.PieceType {
	if index < 0 {
		return entity.None
	}

	that.ensure(index + 1)
	return that.pieces[index]
}

// Pop removes and returns the next piece.
func (that *SevenBag) Pop() entity.PieceType {
	that.ensure(that.lookahead + 1)

	next := that.pieces[0]
	that.pieces = that.pieces[1:]

	return next
}

// Len reports how many pieces are currently generated.
func (that *SevenBag) Len() int {
	return len(that.pieces)
}

func (that *SevenBag) ensure(size int) {
	for len(that.pieces) < size {
		that.fill()
	}
}

func (that *SevenBag) fill() {
	bag := entity.PieceTypes
	that.random.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	that.pieces = append(that.pieces, bag[:]...)
}

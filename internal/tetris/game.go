package tetris

import (
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/blockfall/internal/entity"
	"github.com/rocketscienceinc/blockfall/internal/queue"
	"github.com/rocketscienceinc/blockfall/internal/rotation"
)

// PieceQueue deals upcoming pieces.
type PieceQueue interface {
	Peek(index int) entity.PieceType
	Pop() entity.PieceType
}

// RotationSystem decides collisions, spawn placement and rotation for a board
// it borrows on every call.
type RotationSystem interface {
	Overlaps(board *entity.Board, piece entity.Piece) bool
	Spawn(board *entity.Board, pieceType entity.PieceType) entity.Piece
	Rotate(board *entity.Board, piece *entity.Piece, turns int)
}

// Game owns the board, the active piece and the hold slot, and applies
// player moves. It is not safe for concurrent use.
type Game struct {
	options  Options
	board    *entity.Board
	queue    PieceQueue
	rotation RotationSystem

	piece    entity.Piece
	hold     entity.PieceType
	holdLock bool
	status   entity.Status
}

// New builds a game on an empty board of 2*Height rows and spawns the first piece.
func New(options Options, pieceQueue PieceQueue, rotationSystem RotationSystem) *Game {
	options = options.withDefaults()

	game := &Game{
		options:  options,
		board:    entity.NewBoard(options.Height*2, options.Width),
		queue:    pieceQueue,
		rotation: rotationSystem,
		status:   entity.StatusPlaying,
	}
	game.piece = game.rotation.Spawn(game.board, game.queue.Pop())

	return game
}

// NewDefault builds a game with a seven-bag queue and the standard rotation
// system. A zero seed draws one from the clock.
func NewDefault(options Options, seed uint64) *Game {
	options = options.withDefaults()
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	random := rand.New(rand.NewPCG(seed, seed>>1|1))
	return New(options, queue.NewSevenBag(options.QueueLength, random), rotation.NewStandard())
}

func (that *Game) Options() Options {
	return that.options
}

func (that *Game) Status() entity.Status {
	return that.status
}

// Piece returns a copy of the active piece.
func (that *Game) Piece() entity.Piece {
	return that.piece
}

// Hold returns the held piece type, or entity.None when the slot is empty.
func (that *Game) Hold() entity.PieceType {
	return that.hold
}

// HoldLocked reports whether a swap was already used by the active piece.
func (that *Game) HoldLocked() bool {
	return that.holdLock
}

// PeekQueue returns the upcoming piece at the given lookahead position.
func (that *Game) PeekQueue(index int) entity.PieceType {
	return that.queue.Peek(index)
}

// Board returns a copy of the locked cells.
func (that *Game) Board() *entity.Board {
	return that.board.Clone()
}

// Overlapping reports whether the active piece overlaps the board. After a
// spawn this means the stack has topped out; acting on it is up to the caller.
func (that *Game) Overlapping() bool {
	return that.rotation.Overlaps(that.board, that.piece)
}

// Pause toggles between playing and idle. It does nothing once stopped.
func (that *Game) Pause() {
	that.SetPaused(that.status.IsPlaying())
}

// SetPaused moves to idle or playing explicitly. It does nothing once stopped.
func (that *Game) SetPaused(paused bool) {
	if that.status.IsStopped() {
		return
	}

	if paused {
		that.status = entity.StatusIdle
	} else {
		that.status = entity.StatusPlaying
	}
}

// Stop ends the game. Stopped is terminal.
func (that *Game) Stop() {
	that.status = entity.StatusStopped
}

// Tick is the time step hook. Gravity is not implemented.
func (that *Game) Tick() {}

// Push applies one move. Moves are ignored unless the game is playing, and
// illegal moves leave the state as it was.
func (that *Game) Push(move entity.Move) {
	if !that.status.IsPlaying() {
		return
	}

	switch move.Type {
	case entity.MoveDrag:
		that.step(entity.Offset{Col: 1}, move.Cols)
	case entity.MoveSoftDrop:
		that.step(entity.Offset{Row: 1}, move.Rows)
	case entity.MoveHardDrop:
		that.lock()
	case entity.MoveRotate:
		that.rotation.Rotate(that.board, &that.piece, move.Turns)
	case entity.MoveSwap:
		that.swap()
	}
}

// step moves the piece one cell at a time along axis, up to |n| cells,
// stopping before the first overlapping position.
func (that *Game) step(axis entity.Offset, n int) {
	delta := axis
	if n < 0 {
		n = -n
		delta = entity.Offset{Row: -axis.Row, Col: -axis.Col}
	}

	for ; n > 0; n-- {
		next := that.piece.Shifted(delta)
		if that.rotation.Overlaps(that.board, next) {
			return
		}
		that.piece = next
	}
}

// restingRow returns the lowest row the active piece can fall to.
func (that *Game) restingRow() int {
	down := entity.Offset{Row: 1}

	resting := that.piece
	for next := resting.Shifted(down); !that.rotation.Overlaps(that.board, next); next = next.Shifted(down) {
		resting = next
	}

	return resting.Row
}

func (that *Game) lock() {
	that.piece.Row = that.restingRow()

	for _, cell := range that.piece.Absolute() {
		if that.board.InBounds(cell.Row, cell.Col) {
			that.board.Set(cell.Row, cell.Col, that.piece.Type)
		}
	}

	that.board.ClearFullRows()

	that.piece = that.rotation.Spawn(that.board, that.queue.Pop())
	that.holdLock = false
}

func (that *Game) swap() {
	if that.holdLock {
		return
	}

	if that.hold == entity.None {
		that.hold = that.queue.Pop()
	}

	that.hold, that.piece = that.piece.Type, that.rotation.Spawn(that.board, that.hold)
	that.holdLock = true
}

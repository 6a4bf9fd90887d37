package tetris

import (
	"fmt"

	"github.com/rocketscienceinc/blockfall/internal/apperror"
)

const (
	DefaultHeight      = 20
	DefaultWidth       = 10
	DefaultQueueLength = 4
)

// Options configures a game. Zero fields take their defaults.
type Options struct {
	Height      int
	Width       int
	QueueLength int
}

// Validate rejects negative dimensions.
func (that Options) Validate() error {
	if that.Height < 0 || that.Width < 0 || that.QueueLength < 0 {
		return fmt.Errorf("%w: height %d, width %d, queue length %d",
			apperror.ErrInvalidDimensions, that.Height, that.Width, that.QueueLength)
	}
	return nil
}

func (that Options) withDefaults() Options {
	if that.Height <= 0 {
		that.Height = DefaultHeight
	}
	if that.Width <= 0 {
		that.Width = DefaultWidth
	}
	if that.QueueLength <= 0 {
		that.QueueLength = DefaultQueueLength
	}
	return that
}

package surface

import "github.com/Drawing-master/Drawing-Master/internal/pixel"

// Option configures a Canvas during creation.
//
//	c, err := surface.New(800, 600,
//		surface.WithBackground(pixel.White),
//		surface.WithSnapshotBudget(64<<20),
//	)
type Option func(*options)

type options struct {
	background     pixel.Color
	snapshotBudget int
	font           []byte
}

func defaultOptions() options {
	return options{
		background: pixel.White,
	}
}

// WithBackground sets the color used by ClearToBackground.
func WithBackground(c pixel.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithSnapshotBudget limits the size in bytes of a single capture. Zero
// means unlimited.
func WithSnapshotBudget(n int) Option {
	return func(o *options) {
		o.snapshotBudget = n
	}
}

// WithFont replaces the built-in Go Regular face used for text stamps with
// TrueType/OpenType font data.
func WithFont(data []byte) Option {
	return func(o *options) {
		o.font = data
	}
}

// Package marker renders the floating pushpin overlay that visually tags a
// pinned window. A marker is a borderless, click-through, always-on-top
// native window glued to its target's top-left corner; it consumes no pointer
// input and never participates in window activation.
package marker

import (
	"errors"

	"window-pin/internal/winapi"
)

// ErrTargetGone is returned by Sync when the tracked window's rectangle can
// no longer be read, i.e. the target was closed.
var ErrTargetGone = errors.New("marker target window is gone")

// Config controls the marker's appearance.
type Config struct {
	// Size is the edge length of the square overlay in pixels.
	Size int32
}

// DefaultConfig returns the stock 40x40 pushpin.
func DefaultConfig() Config {
	return Config{Size: 40}
}

// Factory creates markers. All calls, including every call on the markers it
// produces, must come from one goroutine; that goroutine services the native
// windows the factory creates.
type Factory struct {
	cfg Config
}

// NewFactory creates a marker factory.
func NewFactory(cfg Config) *Factory {
	if cfg.Size <= 0 {
		cfg.Size = DefaultConfig().Size
	}
	return &Factory{cfg: cfg}
}

// Marker is one overlay window bound to one target window.
type Marker struct {
	hwnd   winapi.Handle
	target winapi.Handle
	size   int32
}

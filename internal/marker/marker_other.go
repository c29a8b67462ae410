//go:build !windows

package marker

import (
	"fmt"

	"window-pin/internal/winapi"
)

// Create is not supported off Windows.
func (f *Factory) Create(target winapi.Handle) (*Marker, error) {
	return nil, fmt.Errorf("marker overlay not supported on this platform")
}

// Sync is not supported off Windows.
func (m *Marker) Sync() error {
	return ErrTargetGone
}

// Destroy is a no-op off Windows.
func (m *Marker) Destroy() {}

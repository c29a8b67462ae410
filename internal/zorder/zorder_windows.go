//go:build windows

package zorder

import (
	"fmt"

	"window-pin/internal/winapi"
)

// SetTopmost moves the window into the topmost band, or back into the normal
// band. Only the z-order changes: SWP_NOMOVE and SWP_NOSIZE keep the window's
// position and size untouched, and SWP_NOACTIVATE keeps focus where it is.
func (s *Service) SetTopmost(h winapi.Handle, topmost bool) error {
	if !winapi.IsWindow(h) {
		return ErrInvalidHandle
	}

	insertAfter := winapi.HWNDTopmost
	if !topmost {
		insertAfter = winapi.HWNDNotopmost
	}

	err := winapi.SetWindowPos(h, insertAfter, 0, 0, 0, 0,
		winapi.SWPNoMove|winapi.SWPNoSize|winapi.SWPNoActivate)
	if err != nil {
		return fmt.Errorf("changing z-order: %w", err)
	}
	return nil
}

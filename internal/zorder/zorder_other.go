//go:build !windows

package zorder

import (
	"fmt"

	"window-pin/internal/winapi"
)

// SetTopmost is not supported off Windows.
func (s *Service) SetTopmost(h winapi.Handle, topmost bool) error {
	return fmt.Errorf("z-order control not supported on this platform")
}

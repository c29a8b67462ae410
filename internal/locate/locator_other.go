//go:build !windows

package locate

import (
	"fmt"

	"window-pin/internal/winapi"
)

// RootAt is not supported off Windows.
func (s *Service) RootAt(pt winapi.Point) (winapi.Handle, error) {
	return 0, fmt.Errorf("window lookup not supported on this platform")
}

// Title is not supported off Windows.
func (s *Service) Title(h winapi.Handle) string {
	return ""
}

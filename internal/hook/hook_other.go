//go:build !windows

package hook

import (
	"fmt"

	"window-pin/internal/winapi"
)

// Install is not supported off Windows; pin mode can never arm there.
func (s *Service) Install(onClick func(winapi.Point)) error {
	return fmt.Errorf("pointer hook not supported on this platform")
}

// Uninstall is a no-op off Windows.
func (s *Service) Uninstall() {}

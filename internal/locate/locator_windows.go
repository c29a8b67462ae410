//go:build windows

package locate

import (
	"window-pin/internal/winapi"
)

// RootAt returns the top-level window owning the given screen point. A click
// usually lands on a child control, so the hit window is walked up to its
// root ancestor; GA_ROOT never crosses the desktop.
func (s *Service) RootAt(pt winapi.Point) (winapi.Handle, error) {
	hit := winapi.WindowFromPoint(pt)
	if hit == 0 {
		return 0, ErrNoWindowAtPoint
	}

	root := winapi.RootAncestor(hit)
	if root == 0 {
		// A window with no root ancestor is the desktop itself.
		return 0, ErrNoWindowAtPoint
	}

	return root, nil
}

// Title returns the window's title text, or "" when it has none.
func (s *Service) Title(h winapi.Handle) string {
	return winapi.WindowText(h)
}

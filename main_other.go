//go:build !windows

package main

import "window-pin/internal/winapi"

// ownWindowHandle is a no-op on non-Windows platforms.
func (a *App) ownWindowHandle() winapi.Handle {
	return 0
}

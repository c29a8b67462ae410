//go:build windows

package main

import "window-pin/internal/winapi"

// ownWindowHandle finds and caches the HWND of the control-panel window by
// its title. Only the pin controller's dispatch goroutine calls this, so the
// cached field needs no lock.
func (a *App) ownWindowHandle() winapi.Handle {
	if a.ownHWND != 0 {
		return a.ownHWND
	}
	a.ownHWND = winapi.FindWindowByTitle(appTitle)
	return a.ownHWND
}

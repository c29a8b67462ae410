// Package winapi holds the Win32 surface shared by the window services:
// handle and geometry types, the user32/gdi32 proc table, and typed wrappers
// around the calls the rest of the application needs. Everything that touches
// a DLL lives behind the windows build tag; these types are portable so the
// higher-level packages compile (and test) on any platform.
package winapi

// Handle is an opaque identifier for a top-level window (an HWND). The window
// it names is owned by another process and may vanish at any time, so every
// operation taking a Handle must tolerate it being stale.
type Handle uintptr

// Point is a position in screen coordinates.
type Point struct {
	X int32
	Y int32
}

// Rect is a window rectangle in screen coordinates.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

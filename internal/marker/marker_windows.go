//go:build windows

package marker

import (
	"fmt"
	"sync"
	"syscall"

	"window-pin/internal/winapi"
)

const className = "WindowPinMarker"

// COLORREF values (0x00BBGGRR). White is the layered color key, so every
// white pixel of the overlay is fully transparent on screen.
const (
	colorKey    = 0x00FFFFFF
	colorHead   = 0x00323CDC // red pin head
	colorNeedle = 0x00404040
)

var classOnce sync.Once

func registerClass() error {
	var err error
	classOnce.Do(func() {
		err = winapi.RegisterClass(className, syscall.NewCallback(wndProc))
	})
	return err
}

// wndProc only paints; markers receive no input (WS_EX_TRANSPARENT) and are
// destroyed explicitly by their owner.
func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	if uint32(msg) == winapi.WMPaint {
		paint(hwnd)
		return 0
	}
	return winapi.DefWindowProc(hwnd, uint32(msg), wParam, lParam)
}

// paint draws the pushpin glyph: a round head in the upper left, the needle
// running toward the lower right corner.
func paint(hwnd uintptr) {
	var ps winapi.PaintStruct
	hdc := winapi.BeginPaint(hwnd, &ps)
	defer winapi.EndPaint(hwnd, &ps)

	bg := winapi.CreateSolidBrush(colorKey)
	winapi.FillRect(hdc, &ps.RcPaint, bg)
	winapi.DeleteObject(bg)

	w := ps.RcPaint.Right - ps.RcPaint.Left
	h := ps.RcPaint.Bottom - ps.RcPaint.Top

	needle := winapi.CreatePen(3, colorNeedle)
	prevPen := winapi.SelectObject(hdc, needle)
	winapi.MoveTo(hdc, w*3/10, h*3/10)
	winapi.LineTo(hdc, w-2, h-2)
	winapi.SelectObject(hdc, prevPen)
	winapi.DeleteObject(needle)

	head := winapi.CreateSolidBrush(colorHead)
	prevBrush := winapi.SelectObject(hdc, head)
	winapi.Ellipse(hdc, 1, 1, w*6/10, h*6/10)
	winapi.SelectObject(hdc, prevBrush)
	winapi.DeleteObject(head)
}

// Create builds an overlay window glued to the target's current top-left
// corner. The overlay is layered (color-keyed), click-through, a tool window
// (no taskbar entry), topmost, and never activated.
func (f *Factory) Create(target winapi.Handle) (*Marker, error) {
	if err := registerClass(); err != nil {
		return nil, fmt.Errorf("registering marker class: %w", err)
	}

	rect, err := winapi.WindowRect(target)
	if err != nil {
		return nil, ErrTargetGone
	}

	exStyle := uint32(winapi.WSExLayered | winapi.WSExTransparent |
		winapi.WSExToolWindow | winapi.WSExTopmost | winapi.WSExNoActivate)

	hwnd, err := winapi.CreateWindow(className, exStyle, winapi.WSPopup,
		rect.Left, rect.Top, f.cfg.Size, f.cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("creating marker window: %w", err)
	}

	winapi.SetLayeredColorKey(hwnd, colorKey)
	winapi.ShowWindowNoActivate(hwnd)

	m := &Marker{hwnd: hwnd, target: target, size: f.cfg.Size}
	m.drain()
	return m, nil
}

// Sync repositions the overlay onto the target's current origin and
// re-asserts the topmost band. Returns ErrTargetGone when the target's
// rectangle can no longer be read; the marker itself stays alive so its
// owner decides when to destroy it.
func (m *Marker) Sync() error {
	rect, err := winapi.WindowRect(m.target)
	if err != nil {
		return ErrTargetGone
	}

	err = winapi.SetWindowPos(m.hwnd, winapi.HWNDTopmost,
		rect.Left, rect.Top, 0, 0,
		winapi.SWPNoSize|winapi.SWPNoActivate)
	if err != nil {
		return fmt.Errorf("moving marker: %w", err)
	}

	m.drain()
	return nil
}

// Destroy tears the overlay window down.
func (m *Marker) Destroy() {
	winapi.DestroyWindow(m.hwnd)
	m.drain()
}

// drain services any pending messages for windows owned by this thread, so
// paint requests are handled without a blocking message loop.
func (m *Marker) drain() {
	var msg winapi.Msg
	for winapi.PeekMessage(&msg) {
		winapi.DispatchMessage(&msg)
	}
}

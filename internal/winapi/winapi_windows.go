//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazyDLL("user32.dll")
	gdi32    = windows.NewLazyDLL("gdi32.dll")
	kernel32 = windows.NewLazyDLL("kernel32.dll")

	procWindowFromPoint            = user32.NewProc("WindowFromPoint")
	procGetAncestor                = user32.NewProc("GetAncestor")
	procGetWindowTextW             = user32.NewProc("GetWindowTextW")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procIsWindow                   = user32.NewProc("IsWindow")
	procFindWindowW                = user32.NewProc("FindWindowW")
	procSetWindowsHookExW          = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx        = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx             = user32.NewProc("CallNextHookEx")
	procGetMessageW                = user32.NewProc("GetMessageW")
	procTranslateMessage           = user32.NewProc("TranslateMessage")
	procDispatchMessageW           = user32.NewProc("DispatchMessageW")
	procPeekMessageW               = user32.NewProc("PeekMessageW")
	procPostThreadMessageW         = user32.NewProc("PostThreadMessageW")
	procRegisterClassExW           = user32.NewProc("RegisterClassExW")
	procCreateWindowExW            = user32.NewProc("CreateWindowExW")
	procDestroyWindow              = user32.NewProc("DestroyWindow")
	procShowWindow                 = user32.NewProc("ShowWindow")
	procDefWindowProcW             = user32.NewProc("DefWindowProcW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procBeginPaint                 = user32.NewProc("BeginPaint")
	procEndPaint                   = user32.NewProc("EndPaint")

	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
	procCreatePen        = gdi32.NewProc("CreatePen")
	procSelectObject     = gdi32.NewProc("SelectObject")
	procDeleteObject     = gdi32.NewProc("DeleteObject")
	procEllipse          = gdi32.NewProc("Ellipse")
	procMoveToEx         = gdi32.NewProc("MoveToEx")
	procLineTo           = gdi32.NewProc("LineTo")
	procFillRect         = user32.NewProc("FillRect")

	procGetModuleHandleW   = kernel32.NewProc("GetModuleHandleW")
	procGetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

// Win32 constants used across the window services.
const (
	GARoot = 2

	WHMouseLL     = 14
	WMLButtonDown = 0x0201
	WMQuit        = 0x0012
	WMDestroy     = 0x0002
	WMPaint       = 0x000F

	SWPNoSize     = 0x0001
	SWPNoMove     = 0x0002
	SWPNoActivate = 0x0010

	WSPopup         = 0x80000000
	WSExTopmost     = 0x00000008
	WSExTransparent = 0x00000020
	WSExToolWindow  = 0x00000080
	WSExLayered     = 0x00080000
	WSExNoActivate  = 0x08000000

	LWAColorKey = 0x0001

	SWShowNoActivate = 4

	PMRemove = 0x0001

	PSSolid = 0
)

// HWNDTopmost and HWNDNotopmost are the SetWindowPos insert-after bands
// (-1 and -2 as unsigned pointers).
var (
	HWNDTopmost   = ^uintptr(0)
	HWNDNotopmost = ^uintptr(1)
)

// Msg mirrors the Win32 MSG structure.
type Msg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
}

// WndClassEx mirrors WNDCLASSEXW.
type WndClassEx struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     uintptr
	HIcon         uintptr
	HCursor       uintptr
	HbrBackground uintptr
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       uintptr
}

// PaintStruct mirrors PAINTSTRUCT.
type PaintStruct struct {
	Hdc         uintptr
	FErase      int32
	RcPaint     Rect
	FRestore    int32
	FIncUpdate  int32
	RgbReserved [32]byte
}

// mouseHookInfo mirrors MSLLHOOKSTRUCT.
type mouseHookInfo struct {
	Pt        Point
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// WindowFromPoint returns the window occupying the given screen point, or 0.
// POINT is passed by value, packed into a single 64-bit argument.
func WindowFromPoint(pt Point) Handle {
	packed := uintptr(uint32(pt.X)) | uintptr(uint32(pt.Y))<<32
	h, _, _ := procWindowFromPoint.Call(packed)
	return Handle(h)
}

// RootAncestor walks up to the top-level ancestor of h. GA_ROOT stops at the
// desktop, so the result is always a real top-level window.
func RootAncestor(h Handle) Handle {
	root, _, _ := procGetAncestor.Call(uintptr(h), GARoot)
	return Handle(root)
}

// WindowText returns the window's title, or "" if it has none.
func WindowText(h Handle) string {
	buf := make([]uint16, 256)
	ret, _, _ := procGetWindowTextW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return ""
	}
	return windows.UTF16ToString(buf)
}

// WindowRect reads the window's screen rectangle.
func WindowRect(h Handle) (Rect, error) {
	var r Rect
	ret, _, _ := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return Rect{}, fmt.Errorf("GetWindowRect failed for handle %#x", uintptr(h))
	}
	return r, nil
}

// IsWindow reports whether h still refers to a live window.
func IsWindow(h Handle) bool {
	ret, _, _ := procIsWindow.Call(uintptr(h))
	return ret != 0
}

// SetWindowPos changes the window's position in the z-order and/or on screen.
func SetWindowPos(h Handle, insertAfter uintptr, x, y, cx, cy int32, flags uint32) error {
	ret, _, _ := procSetWindowPos.Call(
		uintptr(h),
		insertAfter,
		uintptr(x), uintptr(y), uintptr(cx), uintptr(cy),
		uintptr(flags),
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed for handle %#x", uintptr(h))
	}
	return nil
}

// FindWindowByTitle resolves a top-level window by its exact title, or 0.
func FindWindowByTitle(title string) Handle {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0
	}
	h, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	return Handle(h)
}

// SetMouseHook installs a process-wide low-level mouse hook. proc must be a
// syscall.NewCallback pointer with the LowLevelMouseProc signature.
func SetMouseHook(proc uintptr) (uintptr, error) {
	hhk, _, err := procSetWindowsHookExW.Call(WHMouseLL, proc, 0, 0)
	if hhk == 0 {
		return 0, fmt.Errorf("SetWindowsHookEx: %w", err)
	}
	return hhk, nil
}

// Unhook removes a hook installed by SetMouseHook.
func Unhook(hhk uintptr) error {
	ret, _, err := procUnhookWindowsHookEx.Call(hhk)
	if ret == 0 {
		return fmt.Errorf("UnhookWindowsHookEx: %w", err)
	}
	return nil
}

// NextHook forwards the event to the next handler in the hook chain.
func NextHook(code int32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return ret
}

// HookClickPoint extracts the screen point from a low-level mouse hook event.
func HookClickPoint(lParam uintptr) Point {
	info := (*mouseHookInfo)(unsafe.Pointer(lParam))
	return info.Pt
}

// GetMessage blocks on the calling thread's message queue. Returns 0 when
// WM_QUIT was retrieved, -1 on error.
func GetMessage(msg *Msg) int32 {
	ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, 0, 0)
	return int32(ret)
}

// DispatchMessage routes a retrieved message to its window procedure.
func DispatchMessage(msg *Msg) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
}

// PeekMessage removes and returns the next pending message without blocking.
func PeekMessage(msg *Msg) bool {
	ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(msg)), 0, 0, 0, PMRemove)
	return ret != 0
}

// PostThreadQuit posts WM_QUIT to the given thread's message queue, unblocking
// its GetMessage loop.
func PostThreadQuit(threadID uint32) error {
	ret, _, err := procPostThreadMessageW.Call(uintptr(threadID), WMQuit, 0, 0)
	if ret == 0 {
		return fmt.Errorf("PostThreadMessage(WM_QUIT): %w", err)
	}
	return nil
}

// CurrentThreadID returns the OS thread id of the calling thread.
func CurrentThreadID() uint32 {
	id, _, _ := procGetCurrentThreadId.Call()
	return uint32(id)
}

// ModuleHandle returns the handle of the current module.
func ModuleHandle() uintptr {
	h, _, _ := procGetModuleHandleW.Call(0)
	return h
}

// RegisterClass registers a window class with the given procedure.
func RegisterClass(name string, wndProc uintptr) error {
	className, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	var wc WndClassEx
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.LpfnWndProc = wndProc
	wc.HInstance = ModuleHandle()
	wc.LpszClassName = className
	atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		return fmt.Errorf("RegisterClassEx(%s): %w", name, callErr)
	}
	return nil
}

// CreateWindow creates a native window of a previously registered class.
func CreateWindow(class string, exStyle, style uint32, x, y, w, h int32) (Handle, error) {
	className, err := windows.UTF16PtrFromString(class)
	if err != nil {
		return 0, err
	}
	hwnd, _, callErr := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(className)),
		0,
		uintptr(style),
		uintptr(x), uintptr(y), uintptr(w), uintptr(h),
		0, 0, ModuleHandle(), 0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowEx(%s): %w", class, callErr)
	}
	return Handle(hwnd), nil
}

// DestroyWindow destroys a window created by CreateWindow.
func DestroyWindow(h Handle) {
	procDestroyWindow.Call(uintptr(h))
}

// ShowWindowNoActivate makes the window visible without giving it focus.
func ShowWindowNoActivate(h Handle) {
	procShowWindow.Call(uintptr(h), SWShowNoActivate)
}

// DefWindowProc is the default window procedure.
func DefWindowProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	ret, _, _ := procDefWindowProcW.Call(hwnd, uintptr(msg), wParam, lParam)
	return ret
}

// SetLayeredColorKey makes every pixel of the given color fully transparent.
func SetLayeredColorKey(h Handle, color uint32) {
	procSetLayeredWindowAttributes.Call(uintptr(h), uintptr(color), 0, LWAColorKey)
}

// BeginPaint / EndPaint bracket a WM_PAINT handler.
func BeginPaint(hwnd uintptr, ps *PaintStruct) uintptr {
	hdc, _, _ := procBeginPaint.Call(hwnd, uintptr(unsafe.Pointer(ps)))
	return hdc
}

func EndPaint(hwnd uintptr, ps *PaintStruct) {
	procEndPaint.Call(hwnd, uintptr(unsafe.Pointer(ps)))
}

// GDI helpers for the marker glyph.

func CreateSolidBrush(color uint32) uintptr {
	b, _, _ := procCreateSolidBrush.Call(uintptr(color))
	return b
}

func CreatePen(width int32, color uint32) uintptr {
	p, _, _ := procCreatePen.Call(PSSolid, uintptr(width), uintptr(color))
	return p
}

func SelectObject(hdc, obj uintptr) uintptr {
	prev, _, _ := procSelectObject.Call(hdc, obj)
	return prev
}

func DeleteObject(obj uintptr) {
	procDeleteObject.Call(obj)
}

func Ellipse(hdc uintptr, left, top, right, bottom int32) {
	procEllipse.Call(hdc, uintptr(left), uintptr(top), uintptr(right), uintptr(bottom))
}

func MoveTo(hdc uintptr, x, y int32) {
	procMoveToEx.Call(hdc, uintptr(x), uintptr(y), 0)
}

func LineTo(hdc uintptr, x, y int32) {
	procLineTo.Call(hdc, uintptr(x), uintptr(y))
}

func FillRect(hdc uintptr, r *Rect, brush uintptr) {
	procFillRect.Call(hdc, uintptr(unsafe.Pointer(r)), brush)
}

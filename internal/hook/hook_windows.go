//go:build windows

package hook

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"window-pin/internal/winapi"
)

// The hook procedure callback is created once per process; NewCallback slots
// are never released, and at most one hook exists at a time anyway. The click
// sink behind it is swapped on install/uninstall.
var (
	procOnce sync.Once
	procPtr  uintptr

	sinkMu sync.Mutex
	sink   func(winapi.Point)
)

func setSink(fn func(winapi.Point)) {
	sinkMu.Lock()
	sink = fn
	sinkMu.Unlock()
}

// mouseProc is the LowLevelMouseProc. It runs in the hook calling context, so
// it must return quickly: filter the event, hand it off, pass it on down the
// chain. Window management never happens here.
func mouseProc(code, wParam, lParam uintptr) uintptr {
	if int32(code) >= 0 && wParam == winapi.WMLButtonDown {
		sinkMu.Lock()
		fn := sink
		sinkMu.Unlock()
		if fn != nil {
			fn(winapi.HookClickPoint(lParam))
		}
	}
	return winapi.NextHook(int32(code), wParam, lParam)
}

// Install starts the hook thread and blocks until the hook is live. onClick
// is invoked for every system-wide primary-button press; it must not block.
// Returns ErrActive if a hook is already installed.
func (s *Service) Install(onClick func(winapi.Point)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrActive
	}

	procOnce.Do(func() {
		procPtr = syscall.NewCallback(mouseProc)
	})

	setSink(onClick)
	s.done = make(chan struct{})
	ready := make(chan error, 1)

	go s.pump(ready)

	if err := <-ready; err != nil {
		setSink(nil)
		<-s.done
		return fmt.Errorf("installing pointer hook: %w", err)
	}

	s.running = true
	return nil
}

// Uninstall posts WM_QUIT into the hook thread's queue and joins it. After
// Uninstall returns, no further click notifications are delivered: the sink
// is cleared before the quit is posted, and any hook call already in flight
// finishes on the hook thread before the thread can exit.
func (s *Service) Uninstall() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	setSink(nil)
	if err := winapi.PostThreadQuit(s.threadID); err != nil {
		// Thread already gone (fault path); the join below returns at once.
		s.log.Warn("posting quit to hook thread", zap.Error(err))
	}
	<-s.done
	s.running = false
}

// pump is the hook thread. It locks the goroutine to its OS thread, installs
// the hook, and then does nothing but retrieve and dispatch messages until
// WM_QUIT arrives.
func (s *Service) pump(ready chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(s.done)

	s.threadID = winapi.CurrentThreadID()

	hhk, err := winapi.SetMouseHook(procPtr)
	if err != nil {
		ready <- err
		return
	}

	// Touch the queue before reporting ready so PostThreadMessage from
	// Uninstall cannot race queue creation.
	var msg winapi.Msg
	winapi.PeekMessage(&msg)

	ready <- nil

	for {
		ret := winapi.GetMessage(&msg)
		if ret == 0 {
			break // WM_QUIT
		}
		if ret == -1 {
			s.reportFault(fmt.Errorf("pointer hook message retrieval failed"))
			break
		}
		winapi.DispatchMessage(&msg)
	}

	if err := winapi.Unhook(hhk); err != nil {
		s.log.Warn("removing pointer hook", zap.Error(err))
	}
}

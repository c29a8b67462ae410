// Package pin owns the pin/unpin state machine: arming the pointer hook,
// validating the clicked window, keeping pinned windows and their markers
// consistent, and restoring everything on shutdown.
//
// All state lives on a single dispatch goroutine started by Run. The Wails
// bindings and the hook thread never touch the registry or the markers; they
// only enqueue commands and click events. That one goroutine also services
// the native marker windows, which is why Run locks itself to an OS thread.
package pin

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"window-pin/internal/locate"
	"window-pin/internal/logging"
	"window-pin/internal/marker"
	"window-pin/internal/winapi"
)

// defaultSyncEvery is the marker position-tracking cadence.
const defaultSyncEvery = 30 * time.Millisecond

// Locator resolves screen points to top-level windows.
type Locator interface {
	RootAt(pt winapi.Point) (winapi.Handle, error)
	Title(h winapi.Handle) string
}

// ZOrder applies and removes the always-on-top attribute.
type ZOrder interface {
	SetTopmost(h winapi.Handle, topmost bool) error
}

// Pointer is the system-wide click interceptor.
type Pointer interface {
	Install(onClick func(winapi.Point)) error
	Uninstall()
	Faults() <-chan error
}

// Marker is one overlay tracking one pinned window.
type Marker interface {
	Sync() error
	Destroy()
}

// Config wires the controller's collaborators.
type Config struct {
	Locator      Locator
	ZOrder       ZOrder
	Hook         Pointer
	CreateMarker func(winapi.Handle) (Marker, error)
	// OwnWindow resolves this application's own top-level window, so a
	// click on it is rejected. It is re-queried per click because the
	// window may not exist yet at startup.
	OwnWindow func() winapi.Handle
	SyncEvery time.Duration
	Log       *logging.Logger
}

// Status is the snapshot the UI polls: whether pin mode is armed, how many
// windows are pinned, and the most recent user-visible notice.
type Status struct {
	Armed  bool   `json:"armed"`
	Pinned int    `json:"pinned"`
	Notice string `json:"notice"`
}

type cmdKind int

const (
	cmdToggle cmdKind = iota
	cmdUnpin
	cmdShutdown
)

type command struct {
	kind cmdKind
	ack  chan Status
}

// Controller runs the pin/unpin state machine.
type Controller struct {
	cfg Config
	reg *registry

	armed bool

	cmds   chan command
	clicks chan winapi.Point

	statusMu sync.RWMutex
	status   Status

	stopped chan struct{}
}

// New creates a controller. Run must be started on its own goroutine before
// Toggle, Unpin or Shutdown are called.
func New(cfg Config) *Controller {
	if cfg.SyncEvery <= 0 {
		cfg.SyncEvery = defaultSyncEvery
	}
	if cfg.Log == nil {
		cfg.Log = logging.NewNop()
	}
	if cfg.OwnWindow == nil {
		cfg.OwnWindow = func() winapi.Handle { return 0 }
	}
	return &Controller{
		cfg:     cfg,
		reg:     newRegistry(),
		cmds:    make(chan command),
		clicks:  make(chan winapi.Point, 1),
		stopped: make(chan struct{}),
	}
}

// Run is the dispatch loop. It returns after a Shutdown command has been
// processed.
func (c *Controller) Run() {
	// This goroutine owns the native marker windows, so it must stay on
	// one OS thread for their message handling.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ticker := time.NewTicker(c.cfg.SyncEvery)
	defer ticker.Stop()

	for {
		select {
		case cmd := <-c.cmds:
			if cmd.kind == cmdShutdown {
				c.handleShutdown()
				cmd.ack <- c.Status()
				close(c.stopped)
				return
			}
			switch cmd.kind {
			case cmdToggle:
				c.handleToggle()
			case cmdUnpin:
				c.handleUnpin()
			}
			cmd.ack <- c.Status()

		case pt := <-c.clicks:
			c.handleClick(pt)

		case err := <-c.cfg.Hook.Faults():
			c.handleHookFault(err)

		case <-ticker.C:
			c.syncMarkers()
		}
	}
}

// Toggle arms pin mode, or cancels it when already armed.
func (c *Controller) Toggle() Status { return c.send(cmdToggle) }

// Unpin releases the most recently pinned window.
func (c *Controller) Unpin() Status { return c.send(cmdUnpin) }

// Shutdown unpins every remaining window, removes the hook if armed, and
// stops the dispatch loop. Safe to call more than once.
func (c *Controller) Shutdown() Status { return c.send(cmdShutdown) }

// Status returns the current snapshot. Callable from any goroutine.
func (c *Controller) Status() Status {
	c.statusMu.RLock()
	defer c.statusMu.RUnlock()
	return c.status
}

func (c *Controller) send(kind cmdKind) Status {
	cmd := command{kind: kind, ack: make(chan Status, 1)}
	select {
	case c.cmds <- cmd:
		select {
		case st := <-cmd.ack:
			return st
		case <-c.stopped:
			return c.Status()
		}
	case <-c.stopped:
		return c.Status()
	}
}

// forwardClick runs in hook context; it must not block. The click channel
// holds one event, anything beyond that while the dispatch loop is busy is
// dropped (only the first click matters, the hook is disarmed right after).
func (c *Controller) forwardClick(pt winapi.Point) {
	select {
	case c.clicks <- pt:
	default:
	}
}

func (c *Controller) update(notice string) {
	c.statusMu.Lock()
	c.status = Status{Armed: c.armed, Pinned: c.reg.len(), Notice: notice}
	c.statusMu.Unlock()
}

func (c *Controller) handleToggle() {
	if c.armed {
		c.cfg.Hook.Uninstall()
		c.armed = false
		c.update("")
		c.cfg.Log.Info("pin mode cancelled")
		return
	}

	if err := c.cfg.Hook.Install(c.forwardClick); err != nil {
		c.cfg.Log.Error("arming pin mode failed", zap.Error(err))
		c.update("Couldn't start pin mode.")
		return
	}
	c.armed = true
	c.update("Click the window to pin.")
	c.cfg.Log.Info("pin mode armed")
}

func (c *Controller) handleClick(pt winapi.Point) {
	if !c.armed {
		// Stale click delivered around a cancel; the hook is already gone.
		return
	}

	// Disarm before anything else so a double-click cannot pin twice.
	c.cfg.Hook.Uninstall()
	c.armed = false

	target, err := c.cfg.Locator.RootAt(pt)
	if err != nil {
		if errors.Is(err, locate.ErrNoWindowAtPoint) {
			c.update("No window at that point.")
		} else {
			c.cfg.Log.Warn("resolving clicked window", zap.Error(err))
			c.update("Couldn't resolve the clicked window.")
		}
		return
	}

	if own := c.cfg.OwnWindow(); own != 0 && target == own {
		c.update("Pick a window other than Window Pin.")
		return
	}

	title := strings.TrimSpace(c.cfg.Locator.Title(target))
	if title == "" {
		c.update("No valid window selected.")
		return
	}

	if c.reg.has(target) {
		c.cfg.Log.Info("window already pinned", zap.String("title", title))
		c.update("")
		return
	}

	if err := c.cfg.ZOrder.SetTopmost(target, true); err != nil {
		c.cfg.Log.Warn("pinning window", zap.String("title", title), zap.Error(err))
		c.update(fmt.Sprintf("Failed to pin %q.", title))
		return
	}

	m, err := c.cfg.CreateMarker(target)
	if err != nil {
		// Registry entries and markers exist strictly together; roll the
		// z-order change back rather than pin without a marker.
		c.cfg.Log.Warn("creating marker", zap.String("title", title), zap.Error(err))
		if restoreErr := c.cfg.ZOrder.SetTopmost(target, false); restoreErr != nil {
			c.cfg.Log.Warn("restoring z-order after marker failure", zap.Error(restoreErr))
		}
		c.update(fmt.Sprintf("Failed to mark %q.", title))
		return
	}

	c.reg.push(&pinnedEntry{handle: target, marker: m})
	c.update(fmt.Sprintf("Pinned %q.", title))
	c.cfg.Log.Info("window pinned", zap.String("title", title), zap.Int("pinned", c.reg.len()))
}

func (c *Controller) handleUnpin() {
	e, ok := c.reg.popRecent()
	if !ok {
		c.update("No windows are pinned.")
		return
	}

	e.marker.Destroy()

	// Best effort: a window that no longer exists cannot be restored, and
	// that must not block cleanup of our own bookkeeping.
	if err := c.cfg.ZOrder.SetTopmost(e.handle, false); err != nil {
		c.cfg.Log.Warn("restoring z-order on unpin", zap.Error(err))
		c.update("Unpinned; the window was already gone.")
		return
	}

	c.update("Unpinned.")
	c.cfg.Log.Info("window unpinned", zap.Int("pinned", c.reg.len()))
}

func (c *Controller) handleShutdown() {
	for {
		e, ok := c.reg.popRecent()
		if !ok {
			break
		}
		e.marker.Destroy()
		if err := c.cfg.ZOrder.SetTopmost(e.handle, false); err != nil {
			// One dead window must not stop cleanup of the rest.
			c.cfg.Log.Warn("restoring z-order on shutdown", zap.Error(err))
		}
	}

	if c.armed {
		c.cfg.Hook.Uninstall()
		c.armed = false
	}
	c.update("")
	c.cfg.Log.Info("shutdown cleanup complete")
}

func (c *Controller) handleHookFault(err error) {
	c.cfg.Log.Error("pointer hook died", zap.Error(err))
	if !c.armed {
		return
	}
	c.cfg.Hook.Uninstall()
	c.armed = false
	c.update("Pin mode stopped unexpectedly.")
}

// syncMarkers runs on every tick: each marker is repositioned onto its
// target, and pairs whose target vanished are removed together, so the
// registry never references a destroyed marker.
func (c *Controller) syncMarkers() {
	if c.reg.len() == 0 {
		return
	}

	var gone []winapi.Handle
	for _, e := range c.reg.entries() {
		err := e.marker.Sync()
		if err == nil {
			continue
		}
		if !errors.Is(err, marker.ErrTargetGone) {
			// Transient repositioning failure; the pin itself is intact.
			c.cfg.Log.Warn("syncing marker", zap.Error(err))
			continue
		}
		c.cfg.Log.Info("pinned window closed", zap.Uint64("handle", uint64(e.handle)))
		e.marker.Destroy()
		gone = append(gone, e.handle)
	}

	if len(gone) == 0 {
		return
	}
	for _, h := range gone {
		c.reg.remove(h)
	}
	c.update(c.Status().Notice)
}

package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"time"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"window-pin/internal/config"
	"window-pin/internal/hook"
	"window-pin/internal/locate"
	"window-pin/internal/logging"
	"window-pin/internal/marker"
	"window-pin/internal/pin"
	"window-pin/internal/winapi"
	"window-pin/internal/zorder"
)

//go:embed all:frontend/dist
var assets embed.FS

// appTitle is also how the application finds its own top-level window, so a
// pin click on the control panel itself can be rejected.
const appTitle = "Window Pin"

// App struct
type App struct {
	ctx     context.Context
	config  *config.Service
	log     *logging.Logger
	pins    *pin.Controller
	ownHWND winapi.Handle
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// OnStartup is called when the app starts up
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	// Initialize config service
	configSvc, err := config.New()
	if err != nil {
		fmt.Printf("Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	a.config = configSvc

	cfg := configSvc.Get()
	a.log = logging.New(cfg.LogLevel)

	markers := marker.NewFactory(marker.Config{Size: cfg.Marker.Size})

	a.pins = pin.New(pin.Config{
		Locator: locate.New(),
		ZOrder:  zorder.New(),
		Hook:    hook.New(a.log),
		CreateMarker: func(h winapi.Handle) (pin.Marker, error) {
			return markers.Create(h)
		},
		OwnWindow: a.ownWindowHandle,
		SyncEvery: time.Duration(cfg.Marker.RefreshMs) * time.Millisecond,
		Log:       a.log,
	})
	go a.pins.Run()
}

// OnShutdown is called when the app is shutting down. The controller drains
// the registry here, so no window is left stuck topmost even when the user
// exits without unpinning.
func (a *App) OnShutdown(ctx context.Context) {
	if a.pins != nil {
		a.pins.Shutdown()
	}
	if a.config != nil {
		a.config.Save()
	}
	if a.log != nil {
		a.log.Sync()
	}
}

// TogglePinMode arms window selection, or cancels it when already armed. The
// next system-wide primary click picks the window to pin.
func (a *App) TogglePinMode() pin.Status {
	return a.pins.Toggle()
}

// UnpinLast releases the most recently pinned window.
func (a *App) UnpinLast() pin.Status {
	return a.pins.Unpin()
}

// Status returns the controller snapshot the frontend polls.
func (a *App) Status() pin.Status {
	return a.pins.Status()
}

func main() {
	// Create an instance of the app structure
	app := NewApp()

	// Create application with options
	err := wails.Run(&options.App{
		Title:  appTitle,
		Width:  320,
		Height: 200,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup:  app.OnStartup,
		OnShutdown: app.OnShutdown,
		Bind:       []interface{}{app},
	})

	if err != nil {
		fmt.Printf("Error starting application: %v\n", err)
		os.Exit(1)
	}
}

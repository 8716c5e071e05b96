package tray

import (
	"runtime"

	"github.com/getlantern/systray"
)

// Supported reports whether the system tray backend works on this platform.
// macOS is excluded: its tray must run on the main goroutine and Tray.Run
// drives the backend from its own.
func Supported() bool { return supportedOS(runtime.GOOS) }

func supportedOS(goos string) bool {
	switch goos {
	case "linux", "windows":
		return true
	}
	return false
}

// Systray is the Backend backed by github.com/getlantern/systray. There is
// only one tray per process.
type Systray struct{}

// NewSystray returns the process tray backend.
func NewSystray() Systray { return Systray{} }

func (Systray) Run(onReady, onExit func()) { systray.Run(onReady, onExit) }
func (Systray) Quit()                      { systray.Quit() }
func (Systray) SetIcon(data []byte)        { systray.SetIcon(data) }
func (Systray) SetTitle(title string)      { systray.SetTitle(title) }
func (Systray) SetTooltip(tooltip string)  { systray.SetTooltip(tooltip) }
func (Systray) AddSeparator()              { systray.AddSeparator() }

func (Systray) AddItem(title, tooltip string) Item {
	return systrayItem{systray.AddMenuItem(title, tooltip)}
}

type systrayItem struct {
	m *systray.MenuItem
}

func (i systrayItem) AddSubItem(title, tooltip string) Item {
	return systrayItem{i.m.AddSubMenuItem(title, tooltip)}
}

func (i systrayItem) Disable()                 { i.m.Disable() }
func (i systrayItem) Clicked() <-chan struct{} { return i.m.ClickedCh }

package ui

import (
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/OpenTraceLab/menukit/pkg/menu"
)

// Options configures the preview window.
type Options struct {
	Title    string
	Source   string
	Width    int
	Height   int
	DarkMode bool
	Logger   *slog.Logger
}

// Run opens a window previewing c and blocks until it closes. It must be
// called from the main goroutine.
func Run(c menu.Container, opts Options) error {
	if opts.Title == "" {
		opts.Title = "menukit preview"
	}
	if opts.Width <= 0 {
		opts.Width = 720
	}
	if opts.Height <= 0 {
		opts.Height = 480
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title(opts.Title), app.Size(unit.Dp(opts.Width), unit.Dp(opts.Height)))
		ui := New(w, NewState(opts.Source, c), opts.DarkMode, logger)
		if err := ui.Run(); err != nil {
			logger.Error("ui: window closed with error", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}

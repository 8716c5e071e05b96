// Package tray mounts a context menu in the system notification area.
//
// A Tray takes a menu.ContextMenu and maps it onto a Backend: groups become
// sub menus, disabled flags carry over and clicks on leaves are reported
// through the OnSelect callback.
//
//	t := tray.New(tray.NewSystray(), tray.WithTooltip("menukit"))
//	t.SetMenu(cm)
//	t.OnSelect(func(s tray.Selection) { log.Println(s.ID) })
//	err := t.Run(ctx)
package tray

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/OpenTraceLab/menukit/pkg/menu"
)

// ErrRunning is returned when a Tray is started twice or changed while
// mounted.
var ErrRunning = errors.New("tray: already running")

// Selection identifies the leaf a user clicked.
type Selection struct {
	ID    string
	Label string
}

// Tray binds a context menu to a Backend.
type Tray struct {
	backend Backend
	logger  *slog.Logger
	title   string
	tooltip string
	icon    *icon.Icon

	mu       sync.Mutex
	menu     *menu.ContextMenu
	onSelect func(Selection)
	running  bool
	stop     chan struct{}
}

// Option configures a Tray.
type Option func(*Tray)

// WithTitle sets the text shown next to the icon where the platform
// supports it.
func WithTitle(title string) Option {
	return func(t *Tray) { t.title = title }
}

// WithTooltip sets the hover text.
func WithTooltip(tooltip string) Option {
	return func(t *Tray) { t.tooltip = tooltip }
}

// WithIcon sets the tray icon. It is scaled to TrayIconSize.
func WithIcon(ic *icon.Icon) Option {
	return func(t *Tray) { t.icon = ic }
}

// WithLogger sets where diagnostics go.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tray) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a tray on backend.
func New(backend Backend, opts ...Option) *Tray {
	t := &Tray{backend: backend, logger: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetMenu sets the popup menu. It must be called before Run.
func (t *Tray) SetMenu(cm *menu.ContextMenu) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return ErrRunning
	}
	t.menu = cm
	return nil
}

// OnSelect registers the popup item selection listener. It is called from
// a click forwarding goroutine.
func (t *Tray) OnSelect(fn func(Selection)) {
	t.mu.Lock()
	t.onSelect = fn
	t.mu.Unlock()
}

// Run mounts the tray and blocks until ctx is cancelled or the backend
// exits. Cancellation returns ctx.Err(). The backend runs on a separate
// goroutine, so backends tied to the main thread (macOS) are not usable here.
func (t *Tray) Run(ctx context.Context) error {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return ErrRunning
	}
	t.running = true
	t.stop = make(chan struct{})
	t.mu.Unlock()

	exited := make(chan struct{})
	go t.backend.Run(t.onReady, func() { close(exited) })

	var err error
	select {
	case <-ctx.Done():
		t.logger.Debug("tray: context done, quitting")
		t.backend.Quit()
		<-exited
		err = ctx.Err()
	case <-exited:
		t.logger.Debug("tray: backend exited")
	}

	t.mu.Lock()
	close(t.stop)
	t.running = false
	t.mu.Unlock()
	return err
}

func (t *Tray) onReady() {
	if t.icon != nil {
		data, err := encodeIcon(t.icon)
		if err != nil {
			t.logger.Warn("tray: icon unavailable", "err", err)
		} else {
			t.backend.SetIcon(data)
		}
	}
	if t.title != "" {
		t.backend.SetTitle(t.title)
	}
	if t.tooltip != "" {
		t.backend.SetTooltip(t.tooltip)
	}

	t.mu.Lock()
	cm := t.menu
	stop := t.stop
	t.mu.Unlock()
	if cm == nil {
		return
	}
	for _, n := range cm.Items {
		switch n := n.(type) {
		case *menu.Separator:
			t.backend.AddSeparator()
		case *menu.Leaf:
			t.mountLeaf(t.backend.AddItem(n.Label, n.Label), n, stop)
		case *menu.Group:
			t.mountGroup(t.backend.AddItem(n.Label, n.Label), n, stop)
		}
	}
}

func (t *Tray) mountLeaf(it Item, l *menu.Leaf, stop <-chan struct{}) {
	if l.Disabled {
		it.Disable()
	}
	go t.forward(it.Clicked(), Selection{ID: l.ID, Label: l.Label}, stop)
}

func (t *Tray) mountGroup(it Item, g *menu.Group, stop <-chan struct{}) {
	if g.Disabled {
		it.Disable()
	}
	for _, n := range g.Children {
		switch n := n.(type) {
		case *menu.Separator:
			t.logger.Debug("tray: nested separator dropped", "group", g.Label)
		case *menu.Leaf:
			t.mountLeaf(it.AddSubItem(n.Label, n.Label), n, stop)
		case *menu.Group:
			t.mountGroup(it.AddSubItem(n.Label, n.Label), n, stop)
		}
	}
}

// forward relays clicks on one item until the tray stops.
func (t *Tray) forward(clicked <-chan struct{}, sel Selection, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case _, ok := <-clicked:
			if !ok {
				return
			}
			t.logger.Debug("tray: item selected", "id", sel.ID, "label", sel.Label)
			t.mu.Lock()
			fn := t.onSelect
			t.mu.Unlock()
			if fn != nil {
				fn(sel)
			}
		}
	}
}

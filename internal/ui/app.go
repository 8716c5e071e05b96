package ui

import (
	"fmt"
	"image/color"
	"log/slog"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	gvmenu "github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"

	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/OpenTraceLab/menukit/pkg/menu"
)

// topButton is one entry of the button row. Groups carry a dropdown.
type topButton struct {
	entry *entry
	click widget.Clickable
	drop  *gvmenu.DropdownMenu
}

// App drives the Gio preview window.
type App struct {
	window *app.Window
	ops    op.Ops
	state  *AppState
	logger *slog.Logger

	gvTheme  *theme.Theme
	darkMode bool

	buttons []*topButton
	// nested holds the dropdowns of groups inside groups; pending is the
	// one to toggle on the next frame.
	nested  []*gvmenu.DropdownMenu
	pending *gvmenu.DropdownMenu

	images  map[*icon.Icon]paint.ImageOp
	logList widget.List
}

// New creates the preview app for state.
func New(w *app.Window, state *AppState, darkMode bool, logger *slog.Logger) *App {
	if w == nil {
		w = new(app.Window)
	}
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		window:   w,
		state:    state,
		logger:   logger,
		gvTheme:  theme.NewTheme("", nil, true),
		darkMode: darkMode,
		images:   make(map[*icon.Icon]paint.ImageOp),
	}
	a.logList.Axis = layout.Vertical
	a.logList.ScrollToEnd = true
	a.applyPalette()

	snap := state.Snapshot()
	for _, e := range topLevel(snap.Container) {
		b := &topButton{entry: e}
		if e != nil && e.Group != nil {
			b.drop = a.buildDropdown(e.Group)
		}
		a.buttons = append(a.buttons, b)
	}
	leaves, seps, groups := menu.Count(snap.Container)
	state.AppendLog(fmt.Sprintf("loaded %s: %d items, %d separators, %d menus", snap.Container.Shape(), leaves, seps, groups))
	return a
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) buildDropdown(g *menu.Group) *gvmenu.DropdownMenu {
	groups := optionGroups(g.Children)
	if len(groups) == 0 {
		return nil
	}
	opts := make([][]gvmenu.MenuOption, 0, len(groups))
	for _, run := range groups {
		row := make([]gvmenu.MenuOption, 0, len(run))
		for _, e := range run {
			e := e
			var nested *gvmenu.DropdownMenu
			if e.Group != nil {
				nested = a.buildDropdown(e.Group)
				if nested != nil {
					a.nested = append(a.nested, nested)
				}
			}
			row = append(row, gvmenu.MenuOption{
				OnClicked: func() error {
					a.activate(e, nested)
					return nil
				},
				Layout: func(gtx gvmenu.C, th *theme.Theme) gvmenu.D {
					return a.layoutEntry(gtx, th, e)
				},
			})
		}
		opts = append(opts, row)
	}
	drop := gvmenu.NewDropdownMenu(opts)
	drop.MaxWidth = unit.Dp(260)
	return drop
}

func (a *App) activate(e entry, nested *gvmenu.DropdownMenu) {
	if e.Disabled {
		return
	}
	a.state.Select(e)
	a.logger.Debug("ui: entry activated", "label", e.Label, "id", e.ID)
	if nested != nil {
		a.pending = nested
	}
	a.window.Invalidate()
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
	snap := a.state.Snapshot()

	return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutHeader(gtx, snap)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(a.layoutButtons),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return a.layoutLog(gtx, snap.Logs)
			}),
		)
	})
}

func (a *App) layoutHeader(gtx layout.Context, snap StateSnapshot) layout.Dimensions {
	title := snap.Container.Shape().RootTag()
	if m, ok := snap.Container.(*menu.Menu); ok && m.Label != "" {
		title += " " + m.Label
	}
	if snap.Source != "" {
		title = snap.Source + ": " + title
	}
	lbl := material.H6(a.gvTheme.Theme, title)
	lbl.Color = a.gvTheme.Palette.Fg
	return lbl.Layout(gtx)
}

func (a *App) layoutButtons(gtx layout.Context) layout.Dimensions {
	if a.pending != nil {
		a.pending.ToggleVisibility(gtx)
		a.pending = nil
	}

	children := make([]layout.FlexChild, 0, len(a.buttons)*2)
	for _, b := range a.buttons {
		b := b
		if b.entry == nil {
			children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout))
			continue
		}
		children = append(children,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return a.layoutTopButton(gtx, b)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		)
	}
	dims := layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	for _, drop := range a.nested {
		drop.Layout(gtx, a.gvTheme)
	}
	return dims
}

func (a *App) layoutTopButton(gtx layout.Context, b *topButton) layout.Dimensions {
	e := *b.entry
	for b.click.Clicked(gtx) {
		if e.Disabled {
			continue
		}
		if b.drop != nil {
			b.drop.ToggleVisibility(gtx)
		} else if e.Group == nil {
			a.state.Select(e)
		}
	}

	btn := material.ButtonLayout(a.gvTheme.Theme, &b.click)
	btn.Background = a.gvTheme.Bg2
	dims := btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return a.layoutEntry(gtx, a.gvTheme, e)
		})
	})
	if b.drop != nil {
		b.drop.Layout(gtx, a.gvTheme)
	}
	return dims
}

// layoutEntry draws an optional icon followed by the label. Disabled
// entries are muted.
func (a *App) layoutEntry(gtx layout.Context, th *theme.Theme, e entry) layout.Dimensions {
	label := e.Label
	if e.Group != nil {
		label += " ▸"
	}
	lbl := material.Body1(th.Theme, label)
	lbl.Color = th.Palette.Fg
	if e.Disabled {
		lbl.Color = muted(th.Palette.Fg)
	}
	return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if e.Icon == nil {
					return layout.Dimensions{}
				}
				return layout.Inset{Right: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return a.layoutIcon(gtx, e.Icon)
				})
			}),
			layout.Rigid(lbl.Layout),
		)
	})
}

func (a *App) layoutIcon(gtx layout.Context, ic *icon.Icon) layout.Dimensions {
	imgOp, ok := a.images[ic]
	if !ok {
		imgOp = paint.NewImageOp(ic.Image)
		a.images[ic] = imgOp
	}
	return widget.Image{Src: imgOp, Fit: widget.Contain}.Layout(gtx)
}

func (a *App) layoutLog(gtx layout.Context, logs []string) layout.Dimensions {
	return material.List(a.gvTheme.Theme, &a.logList).Layout(gtx, len(logs), func(gtx layout.Context, i int) layout.Dimensions {
		lbl := material.Body2(a.gvTheme.Theme, logs[i])
		lbl.Color = a.gvTheme.Palette.Fg
		return lbl.Layout(gtx)
	})
}

func (a *App) applyPalette() {
	if a.gvTheme == nil {
		return
	}
	if a.darkMode {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}
}

func muted(c color.NRGBA) color.NRGBA {
	c.A = 0x70
	return c
}

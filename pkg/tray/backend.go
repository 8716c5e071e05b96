package tray

// Backend is a platform tray implementation. Run blocks until Quit is
// called; onReady fires once the tray can accept items.
type Backend interface {
	Run(onReady, onExit func())
	Quit()
	SetIcon(data []byte)
	SetTitle(title string)
	SetTooltip(tooltip string)
	AddItem(title, tooltip string) Item
	AddSeparator()
}

// Item is one entry mounted in a Backend.
type Item interface {
	AddSubItem(title, tooltip string) Item
	Disable()
	Clicked() <-chan struct{}
}

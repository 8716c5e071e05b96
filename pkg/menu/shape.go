package menu

import (
	"fmt"
	"strings"
)

// Shape selects the container a document is built into.
type Shape int

const (
	ShapeMenu Shape = iota
	ShapeMenuBar
	ShapeContextMenu
)

// Root tags expected for each shape.
const (
	TagMenuRoot    = "menu-root"
	TagMenuBar     = "menu-bar"
	TagMenuContext = "menu-context"
)

// Child element tags.
const (
	TagItem      = "item"
	TagMenu      = "menu"
	TagSeparator = "separator"
)

// RootTag returns the document root tag the shape requires.
func (s Shape) RootTag() string {
	switch s {
	case ShapeMenuBar:
		return TagMenuBar
	case ShapeContextMenu:
		return TagMenuContext
	default:
		return TagMenuRoot
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeMenu:
		return "menu"
	case ShapeMenuBar:
		return "bar"
	case ShapeContextMenu:
		return "context"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape accepts the String form of a shape or its root tag.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "menu", TagMenuRoot:
		return ShapeMenu, nil
	case "bar", "menubar", TagMenuBar:
		return ShapeMenuBar, nil
	case "context", "contextmenu", TagMenuContext:
		return ShapeContextMenu, nil
	}
	return ShapeMenu, fmt.Errorf("unknown shape %q (expected menu, bar or context)", name)
}

// ShapeForRootTag returns the shape whose root tag matches tag.
func ShapeForRootTag(tag string) (Shape, bool) {
	switch tag {
	case TagMenuRoot:
		return ShapeMenu, true
	case TagMenuBar:
		return ShapeMenuBar, true
	case TagMenuContext:
		return ShapeContextMenu, true
	}
	return ShapeMenu, false
}

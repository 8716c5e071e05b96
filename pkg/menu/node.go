package menu

import "github.com/OpenTraceLab/menukit/pkg/icon"

// Node is one entry of a menu tree: *Leaf, *Separator or *Group.
// Consumers switch on the concrete type; no other implementations exist.
type Node interface {
	node()
}

// Common holds the attributes shared by leaves and groups.
type Common struct {
	Label    string
	ID       string // empty when the element had no id
	Disabled bool
	Icon     *icon.Icon // nil when absent or unresolvable
}

// Leaf is a selectable menu item.
type Leaf struct {
	Common
}

// Separator divides entries. It carries no attributes.
type Separator struct{}

// Group is a sub menu. Children keep document order, which is display order.
type Group struct {
	Common
	Children []Node
}

func (*Leaf) node()      {}
func (*Separator) node() {}
func (*Group) node()     {}

// Container is the result of a build.
type Container interface {
	Shape() Shape
	Nodes() []Node
}

// Menu is the ShapeMenu container. The root element itself is built as a
// group, so its own text, id, disabled and icon attributes apply.
type Menu struct {
	Group
}

// Shape implements Container.
func (m *Menu) Shape() Shape { return ShapeMenu }

// Nodes implements Container.
func (m *Menu) Nodes() []Node { return m.Children }

// MenuBar is the ShapeMenuBar container; it holds top level groups only.
type MenuBar struct {
	Menus []*Group
}

// Shape implements Container.
func (b *MenuBar) Shape() Shape { return ShapeMenuBar }

// Nodes implements Container.
func (b *MenuBar) Nodes() []Node {
	nodes := make([]Node, len(b.Menus))
	for i, g := range b.Menus {
		nodes[i] = g
	}
	return nodes
}

// ContextMenu is the ShapeContextMenu container.
type ContextMenu struct {
	Items []Node
}

// Shape implements Container.
func (c *ContextMenu) Shape() Shape { return ShapeContextMenu }

// Nodes implements Container.
func (c *ContextMenu) Nodes() []Node { return c.Items }

// emptyContainer returns a container of the right type with no entries.
func emptyContainer(shape Shape) Container {
	switch shape {
	case ShapeMenuBar:
		return &MenuBar{}
	case ShapeContextMenu:
		return &ContextMenu{}
	default:
		return &Menu{}
	}
}

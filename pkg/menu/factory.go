package menu

import (
	"fmt"
	"log/slog"

	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/OpenTraceLab/menukit/pkg/markup"
)

// buildContext carries the per-call settings through one recursive build.
type buildContext struct {
	resolver icon.Resolver
	logger   *slog.Logger
	strict   bool
}

// newNode builds the node for one child element. ok is false for tags that
// produce no node; in strict mode those are an error.
func (c *buildContext) newNode(el *markup.Element) (Node, bool, error) {
	switch el.Tag {
	case TagItem:
		return &Leaf{Common: c.common(el, ParseAttributes(el))}, true, nil
	case TagSeparator:
		return &Separator{}, true, nil
	case TagMenu:
		g, err := c.newGroup(el)
		if err != nil {
			return nil, false, err
		}
		return g, true, nil
	}

	if c.strict {
		return nil, false, fmt.Errorf("line %d: <%s>: %w", el.Line, el.Tag, ErrUnknownTag)
	}
	c.logger.Debug("menu: skipping unknown element", "tag", el.Tag, "line", el.Line)
	return nil, false, nil
}

// newGroup builds a group from el and recurses into its children.
func (c *buildContext) newGroup(el *markup.Element) (*Group, error) {
	g := &Group{Common: c.common(el, ParseAttributes(el))}
	children, err := c.children(el, allNodes)
	if err != nil {
		return nil, err
	}
	g.Children = children
	return g, nil
}

// common applies label, id, disabled flag and icon.
func (c *buildContext) common(el *markup.Element, attrs Attributes) Common {
	cm := Common{
		Label:    attrs.Text,
		Disabled: attrs.Disabled,
	}
	if attrs.HasID {
		cm.ID = attrs.ID
	}
	if attrs.HasIcon {
		cm.Icon = c.resolveIcon(el, attrs)
	}
	return cm
}

// resolveIcon never fails the build: an unresolvable icon is logged and
// left out.
func (c *buildContext) resolveIcon(el *markup.Element, attrs Attributes) *icon.Icon {
	if c.resolver == nil {
		return nil
	}
	ic, err := c.resolver.Resolve(attrs.Icon, attrs.ResizeIcon)
	if err != nil {
		c.logger.Warn("menu: icon unavailable",
			"tag", el.Tag, "text", attrs.Text, "ref", attrs.Icon, "line", el.Line, "err", err)
		return nil
	}
	return ic
}

// childFilter decides which child tags a container accepts.
type childFilter func(tag string) bool

func allNodes(tag string) bool {
	return tag == TagItem || tag == TagMenu || tag == TagSeparator
}

func groupsOnly(tag string) bool {
	return tag == TagMenu
}

// children builds the direct children of el in document order. Known tags
// rejected by accept are dropped silently in both modes.
func (c *buildContext) children(el *markup.Element, accept childFilter) ([]Node, error) {
	nodes := make([]Node, 0, len(el.Children))
	for _, child := range el.Children {
		if allNodes(child.Tag) && !accept(child.Tag) {
			c.logger.Debug("menu: element not allowed here", "tag", child.Tag, "parent", el.Tag, "line", child.Line)
			continue
		}
		n, ok, err := c.newNode(child)
		if err != nil {
			return nil, err
		}
		if ok {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

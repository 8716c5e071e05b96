package ui

import (
	"github.com/OpenTraceLab/menukit/pkg/icon"
	"github.com/OpenTraceLab/menukit/pkg/menu"
)

// entry is one row of a dropdown or one top level button.
type entry struct {
	Label    string
	ID       string
	Disabled bool
	Icon     *icon.Icon
	// Group is set when the entry opens a nested dropdown.
	Group *menu.Group
}

func newEntry(n menu.Node) (entry, bool) {
	switch n := n.(type) {
	case *menu.Leaf:
		return entry{Label: n.Label, ID: n.ID, Disabled: n.Disabled, Icon: n.Icon}, true
	case *menu.Group:
		return entry{Label: n.Label, ID: n.ID, Disabled: n.Disabled, Icon: n.Icon, Group: n}, true
	}
	return entry{}, false
}

// optionGroups splits nodes into runs separated by separators, the layout
// gioview dropdowns draw with dividers. Empty runs are dropped.
func optionGroups(nodes []menu.Node) [][]entry {
	var groups [][]entry
	var cur []entry
	for _, n := range nodes {
		if _, ok := n.(*menu.Separator); ok {
			if len(cur) > 0 {
				groups = append(groups, cur)
				cur = nil
			}
			continue
		}
		if e, ok := newEntry(n); ok {
			cur = append(cur, e)
		}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// topLevel returns the entries drawn as buttons across the top of the
// window. Separators between them are kept as nil gaps.
func topLevel(c menu.Container) []*entry {
	var out []*entry
	for _, n := range c.Nodes() {
		if e, ok := newEntry(n); ok {
			out = append(out, &e)
		} else {
			out = append(out, nil)
		}
	}
	return out
}

// activation describes what clicking an entry does.
func activation(e entry) string {
	switch {
	case e.Disabled:
		return ""
	case e.Group != nil:
		return "open " + e.Label
	case e.ID != "":
		return "selected " + e.ID
	default:
		return "selected " + e.Label
	}
}

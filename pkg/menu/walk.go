package menu

// Walk visits nodes depth first in display order. fn receives each node
// with its depth (0 for the nodes passed in) and returns whether to descend
// into a group's children.
func Walk(nodes []Node, fn func(n Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(n Node, depth int) bool) {
	for _, n := range nodes {
		descend := fn(n, depth)
		if g, ok := n.(*Group); ok && descend {
			walk(g.Children, depth+1, fn)
		}
	}
}

// CommonOf returns the shared attributes of a leaf or group, nil for a
// separator.
func CommonOf(n Node) *Common {
	switch n := n.(type) {
	case *Leaf:
		return &n.Common
	case *Group:
		return &n.Common
	}
	return nil
}

// FindByID returns the first node in c carrying id, or nil. The root group
// of a Menu is checked before its children.
func FindByID(c Container, id string) Node {
	if id == "" {
		return nil
	}
	if m, ok := c.(*Menu); ok && m.ID == id {
		return &m.Group
	}
	var found Node
	Walk(c.Nodes(), func(n Node, _ int) bool {
		if found != nil {
			return false
		}
		if cm := CommonOf(n); cm != nil && cm.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// DuplicateIDs returns every identifier used more than once in c, in the
// order the second use is met. The builder accepts duplicates; this is for
// consumers that require unique identifiers.
func DuplicateIDs(c Container) []string {
	seen := make(map[string]int)
	var dups []string
	count := func(id string) {
		if id == "" {
			return
		}
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	if m, ok := c.(*Menu); ok {
		count(m.ID)
	}
	Walk(c.Nodes(), func(n Node, _ int) bool {
		if cm := CommonOf(n); cm != nil {
			count(cm.ID)
		}
		return true
	})
	return dups
}

// Count returns the number of leaves, separators and groups in c.
func Count(c Container) (leaves, separators, groups int) {
	Walk(c.Nodes(), func(n Node, _ int) bool {
		switch n.(type) {
		case *Leaf:
			leaves++
		case *Separator:
			separators++
		case *Group:
			groups++
		}
		return true
	})
	return leaves, separators, groups
}

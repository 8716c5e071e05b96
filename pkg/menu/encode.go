package menu

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type jsonIcon struct {
	Ref    string `json:"ref"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type jsonNode struct {
	Kind     string     `json:"kind"`
	Label    string     `json:"label,omitempty"`
	ID       string     `json:"id,omitempty"`
	Disabled bool       `json:"disabled,omitempty"`
	Icon     *jsonIcon  `json:"icon,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

type jsonContainer struct {
	Shape string     `json:"shape"`
	Root  *jsonNode  `json:"root,omitempty"`
	Items []jsonNode `json:"items"`
}

func toJSONCommon(kind string, c Common) jsonNode {
	jn := jsonNode{Kind: kind, Label: c.Label, ID: c.ID, Disabled: c.Disabled}
	if c.Icon != nil {
		jn.Icon = &jsonIcon{Ref: c.Icon.Ref, Width: c.Icon.Width, Height: c.Icon.Height}
	}
	return jn
}

func toJSON(nodes []Node) []jsonNode {
	out := make([]jsonNode, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *Leaf:
			out = append(out, toJSONCommon("item", n.Common))
		case *Separator:
			out = append(out, jsonNode{Kind: "separator"})
		case *Group:
			jn := toJSONCommon("menu", n.Common)
			jn.Children = toJSON(n.Children)
			out = append(out, jn)
		}
	}
	return out
}

// MarshalJSON encodes a container. Pixel data is left out; icons are
// described by reference and size.
func MarshalJSON(c Container) ([]byte, error) {
	jc := jsonContainer{Shape: c.Shape().String(), Items: toJSON(c.Nodes())}
	if m, ok := c.(*Menu); ok {
		root := toJSONCommon("menu", m.Common)
		jc.Root = &root
	}
	return json.MarshalIndent(jc, "", "  ")
}

// Fprint writes an indented text rendering of c, one node per line.
func Fprint(w io.Writer, c Container) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", c.Shape().RootTag())
	if m, ok := c.(*Menu); ok {
		writeCommon(&b, m.Common)
	}
	b.WriteByte('\n')
	Walk(c.Nodes(), func(n Node, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth+1))
		switch n := n.(type) {
		case *Leaf:
			b.WriteString("item")
			writeCommon(&b, n.Common)
		case *Separator:
			b.WriteString("----")
		case *Group:
			fmt.Fprintf(&b, "menu")
			writeCommon(&b, n.Common)
			fmt.Fprintf(&b, " [%d]", len(n.Children))
		}
		b.WriteByte('\n')
		return true
	})
	_, err := io.WriteString(w, b.String())
	return err
}

func writeCommon(b *strings.Builder, c Common) {
	if c.Label != "" {
		fmt.Fprintf(b, " %q", c.Label)
	}
	if c.ID != "" {
		fmt.Fprintf(b, " #%s", c.ID)
	}
	if c.Disabled {
		b.WriteString(" (disabled)")
	}
	if c.Icon != nil {
		fmt.Fprintf(b, " icon=%s %dx%d", c.Icon.Ref, c.Icon.Width, c.Icon.Height)
	}
}

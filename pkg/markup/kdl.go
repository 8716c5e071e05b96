package markup

import (
	"errors"
	"fmt"
	"io"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// ErrExtraArgs is returned when a KDL node carries more than one positional
// argument.
var ErrExtraArgs = errors.New("too many arguments")

// ParseKDL reads a KDL menu document. Node names are tags, properties are
// attributes and a single positional argument is shorthand for the "text"
// attribute:
//
//	menu-root {
//		menu "File" id="file" {
//			item "Open" icon="@icons/open.png"
//			separator
//		}
//	}
//
// A node is terminated by a newline or ';'. On a single line the last node
// of a block needs its own ';' before the closing brace:
//
//	menu-root { menu "File" { item "Open"; separator; }; }
func ParseKDL(r io.Reader) (*Document, error) {
	doc, err := kdl.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("kdl: %w", err)
	}

	switch len(doc.Nodes) {
	case 0:
		return nil, fmt.Errorf("kdl: %w", ErrEmptyDocument)
	case 1:
	default:
		return nil, fmt.Errorf("kdl: %w", ErrMultipleRoots)
	}

	root, err := kdlElement(doc.Nodes[0])
	if err != nil {
		return nil, fmt.Errorf("kdl: %w", err)
	}
	return &Document{Root: root}, nil
}

// ParseKDLString parses a KDL menu document held in a string.
func ParseKDLString(input string) (*Document, error) {
	return ParseKDL(strings.NewReader(input))
}

func kdlElement(node *document.Node) (*Element, error) {
	el := NewElement(node.Name.ValueString())

	for key, value := range node.Properties {
		el.SetAttr(key, kdlString(value))
	}

	switch len(node.Arguments) {
	case 0:
	case 1:
		if !el.HasAttr("text") {
			el.SetAttr("text", kdlString(node.Arguments[0]))
		}
	default:
		return nil, fmt.Errorf("%s: %d arguments: %w", el.Tag, len(node.Arguments), ErrExtraArgs)
	}

	for _, child := range node.Children {
		sub, err := kdlElement(child)
		if err != nil {
			return nil, err
		}
		el.Append(sub)
	}
	return el, nil
}

func kdlString(v *document.Value) string {
	if v == nil {
		return ""
	}
	switch rv := v.ResolvedValue().(type) {
	case nil:
		return ""
	case string:
		return rv
	default:
		return fmt.Sprint(rv)
	}
}

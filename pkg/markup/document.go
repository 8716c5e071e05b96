// Package markup holds the element tree that menu documents are parsed into
// and the front ends that produce it.
//
// Four source syntaxes are supported and all of them yield the same
// Document for equivalent input:
//
//	<menu-root><menu text="File"><item text="Open"/></menu></menu-root>   (XML)
//	(menu-root (menu (text "File") (item (text "Open"))))                 (S-expression)
//	menu-root { menu text="File" { item text="Open" } }                   (KDL)
//	menu-root { menu { text: "File" item { text: "Open" } } }             (KRY blocks)
//
// A Document is read-only once a front end has returned it.
package markup

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors shared by the front ends.
var (
	ErrEmptyDocument = errors.New("document has no root element")
	ErrMultipleRoots = errors.New("document has more than one root element")

	ErrMismatchedTag   = errors.New("mismatched closing tag")
	ErrUnclosedElement = errors.New("element not closed")
)

// Document is a parsed markup tree.
type Document struct {
	Root *Element
}

// Element is one markup element.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
	Line     int // 1-based source line, 0 when unknown
}

// NewElement creates an element with an empty attribute map.
func NewElement(tag string) *Element {
	return &Element{Tag: tag, Attrs: make(map[string]string)}
}

// Attr returns the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets an attribute, creating the map if needed.
func (e *Element) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
}

// Append adds children in order.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// AttrNames returns the attribute names in sorted order.
func (e *Element) AttrNames() []string {
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the element and its subtree in a compact XML-like form.
// Attributes are sorted so the output is stable.
func (e *Element) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Element) write(b *strings.Builder) {
	if e == nil {
		return
	}
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, name := range e.AttrNames() {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(e.Attrs[name])
		b.WriteByte('"')
	}
	if len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for _, child := range e.Children {
		child.write(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}

// Equal reports whether two element trees have the same tags, attributes and
// children. Source lines are ignored.
func Equal(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for k, v := range a.Attrs {
		if bv, ok := b.Attrs[k]; !ok || bv != v {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

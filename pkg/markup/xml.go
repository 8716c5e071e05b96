package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseXML reads an XML menu document. Character data, comments and
// processing instructions are ignored; only elements and their attributes
// make it into the tree. Names keep their namespace prefix, so <x:item> is
// a distinct tag from <item>.
func ParseXML(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := &Document{}
	var stack []*Element

	for {
		tok, err := dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(stack) > 0 {
					open := stack[len(stack)-1]
					return nil, fmt.Errorf("xml: line %d: <%s>: %w", open.Line, open.Tag, ErrUnclosedElement)
				}
				break
			}
			return nil, fmt.Errorf("xml: %w", err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			line, _ := dec.InputPos()
			el := &Element{
				Tag:   qualifiedName(tok.Name),
				Attrs: make(map[string]string, len(tok.Attr)),
				Line:  line,
			}
			for _, attr := range tok.Attr {
				el.Attrs[qualifiedName(attr.Name)] = attr.Value
			}
			if len(stack) == 0 {
				if doc.Root != nil {
					return nil, fmt.Errorf("xml: line %d: %w", line, ErrMultipleRoots)
				}
				doc.Root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			line, _ := dec.InputPos()
			name := qualifiedName(tok.Name)
			if len(stack) == 0 || stack[len(stack)-1].Tag != name {
				return nil, fmt.Errorf("xml: line %d: </%s>: %w", line, name, ErrMismatchedTag)
			}
			stack = stack[:len(stack)-1]
		}
	}

	if doc.Root == nil {
		return nil, fmt.Errorf("xml: %w", ErrEmptyDocument)
	}
	return doc, nil
}

// qualifiedName joins a raw prefix and local name as written in the source.
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// ParseXMLString parses an XML menu document held in a string.
func ParseXMLString(input string) (*Document, error) {
	return ParseXML(strings.NewReader(input))
}

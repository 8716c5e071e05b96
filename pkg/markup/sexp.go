package markup

import (
	"fmt"
	"io"
	"strings"
)

// sexpNode is either an atom or a list.
type sexpNode struct {
	atom   string
	quoted bool
	list   []*sexpNode
	isList bool
	line   int
}

type sexpParser struct {
	lexer   *sexpLexer
	current sexpToken
}

func (p *sexpParser) advance() error {
	tok, err := p.lexer.next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// parseAll reads every top-level expression.
func (p *sexpParser) parseAll() ([]*sexpNode, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	var result []*sexpNode
	for p.current.Type != sexpEOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		result = append(result, expr)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (p *sexpParser) parseExpr() (*sexpNode, error) {
	switch p.current.Type {
	case sexpOpen:
		return p.parseList()
	case sexpSymbol, sexpString:
		return &sexpNode{atom: p.current.Value, quoted: p.current.Type == sexpString, line: p.current.Line}, nil
	case sexpClose:
		return nil, fmt.Errorf("line %d: unexpected ')'", p.current.Line)
	default:
		return nil, fmt.Errorf("line %d: unexpected end of input", p.current.Line)
	}
}

func (p *sexpParser) parseList() (*sexpNode, error) {
	node := &sexpNode{isList: true, line: p.current.Line}
	for {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.current.Type == sexpClose {
			return node, nil
		}
		if p.current.Type == sexpEOF {
			return nil, fmt.Errorf("line %d: unexpected end of input in list", node.line)
		}
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.list = append(node.list, elem)
	}
}

// ParseSexp reads an S-expression menu document. Each list is an element
// whose head symbol is the tag. A nested list made of a symbol followed by
// exactly one atom is an attribute of the enclosing element:
//
//	(menu (text "File") (id file) (item (text "Open")))
func ParseSexp(r io.Reader) (*Document, error) {
	p := &sexpParser{lexer: newSexpLexer(r)}
	exprs, err := p.parseAll()
	if err != nil {
		return nil, fmt.Errorf("sexp: %w", err)
	}
	switch len(exprs) {
	case 0:
		return nil, fmt.Errorf("sexp: %w", ErrEmptyDocument)
	case 1:
	default:
		return nil, fmt.Errorf("sexp: line %d: %w", exprs[1].line, ErrMultipleRoots)
	}

	root, err := sexpElement(exprs[0])
	if err != nil {
		return nil, fmt.Errorf("sexp: %w", err)
	}
	return &Document{Root: root}, nil
}

// ParseSexpString parses an S-expression menu document held in a string.
func ParseSexpString(input string) (*Document, error) {
	return ParseSexp(strings.NewReader(input))
}

func sexpElement(n *sexpNode) (*Element, error) {
	if !n.isList {
		return nil, fmt.Errorf("line %d: expected a list, got atom %q", n.line, n.atom)
	}
	if len(n.list) == 0 {
		return nil, fmt.Errorf("line %d: empty list", n.line)
	}
	head := n.list[0]
	if head.isList || head.quoted {
		return nil, fmt.Errorf("line %d: list must start with a tag symbol", n.line)
	}

	el := NewElement(head.atom)
	el.Line = n.line
	for _, child := range n.list[1:] {
		if !child.isList {
			return nil, fmt.Errorf("line %d: unexpected atom %q in <%s>", child.line, child.atom, el.Tag)
		}
		if isSexpAttribute(child) {
			el.SetAttr(child.list[0].atom, child.list[1].atom)
			continue
		}
		sub, err := sexpElement(child)
		if err != nil {
			return nil, err
		}
		el.Append(sub)
	}
	return el, nil
}

func isSexpAttribute(n *sexpNode) bool {
	if len(n.list) != 2 {
		return false
	}
	name, value := n.list[0], n.list[1]
	return !name.isList && !name.quoted && !value.isList
}

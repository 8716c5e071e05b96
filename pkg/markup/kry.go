package markup

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// KRYLexer defines the tokens of the KRY block syntax.
var KRYLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to end of line
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Optional entry separators carry no meaning
	{Name: "Sep", Pattern: `[;,]`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?[0-9]+(?:\.[0-9]+)?`},

	// Tags and keys may contain dashes (menu-root, resize-icon)
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},
	{Name: "Punct", Pattern: `[{}:]`},
})

// kryFile is the whole source; a valid menu document holds one block.
type kryFile struct {
	Blocks []*kryBlock `@@*`
}

// kryBlock is `tag { entries }`.
type kryBlock struct {
	Pos     lexer.Position
	Tag     string      `@Ident "{"`
	Entries []*kryEntry `@@* "}"`
}

// kryEntry is either a property or a nested block.
type kryEntry struct {
	Prop  *kryProp  `  @@`
	Block *kryBlock `| @@`
}

// kryProp is `key: value`.
type kryProp struct {
	Key   string `@Ident ":"`
	Value string `@( String | Number | Ident )`
}

// KRYParser parses the KRY block syntax:
//
//	menu-root {
//		menu {
//			text: "File"
//			item { text: "Open" id: open }
//			separator {}
//		}
//	}
type KRYParser struct {
	parser *participle.Parser[kryFile]
}

// NewKRYParser builds the grammar.
func NewKRYParser() (*KRYParser, error) {
	parser, err := participle.Build[kryFile](
		participle.Lexer(KRYLexer),
		participle.Elide("Comment", "Whitespace", "Sep"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &KRYParser{parser: parser}, nil
}

// Parse parses a document from a reader.
func (p *KRYParser) Parse(r io.Reader) (*Document, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("kry: parse error: %w", err)
	}
	return kryDocument(file)
}

// ParseString parses a document held in a string.
func (p *KRYParser) ParseString(input string) (*Document, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("kry: parse error: %w", err)
	}
	return kryDocument(file)
}

// ParseFile parses a document from a file path.
func (p *KRYParser) ParseFile(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// ParseKRY parses a KRY document with a freshly built parser.
func ParseKRY(r io.Reader) (*Document, error) {
	p, err := NewKRYParser()
	if err != nil {
		return nil, err
	}
	return p.Parse(r)
}

func kryDocument(file *kryFile) (*Document, error) {
	switch len(file.Blocks) {
	case 0:
		return nil, fmt.Errorf("kry: %w", ErrEmptyDocument)
	case 1:
	default:
		return nil, fmt.Errorf("kry: line %d: %w", file.Blocks[1].Pos.Line, ErrMultipleRoots)
	}
	return &Document{Root: file.Blocks[0].element()}, nil
}

func (b *kryBlock) element() *Element {
	el := NewElement(b.Tag)
	el.Line = b.Pos.Line
	for _, entry := range b.Entries {
		switch {
		case entry.Prop != nil:
			el.SetAttr(entry.Prop.Key, entry.Prop.Value)
		case entry.Block != nil:
			el.Append(entry.Block.element())
		}
	}
	return el
}

package markup

import (
	"bufio"
	"fmt"
	"io"
	"unicode"
)

type sexpTokenType int

const (
	sexpEOF sexpTokenType = iota
	sexpOpen
	sexpClose
	sexpSymbol
	sexpString
)

type sexpToken struct {
	Type  sexpTokenType
	Value string
	Line  int
}

// sexpLexer tokenizes S-expressions from an io.Reader, one rune of lookahead.
type sexpLexer struct {
	reader *bufio.Reader
	peeked *rune
	line   int
}

func newSexpLexer(r io.Reader) *sexpLexer {
	return &sexpLexer{
		reader: bufio.NewReader(r),
		line:   1,
	}
}

// next returns the next token. Whitespace and comments running from '#' or
// ';' to the end of the line are skipped.
func (l *sexpLexer) next() (sexpToken, error) {
	for {
		ch, err := l.peek()
		if err != nil {
			if err == io.EOF {
				return sexpToken{Type: sexpEOF, Line: l.line}, nil
			}
			return sexpToken{}, err
		}

		if unicode.IsSpace(ch) {
			l.read()
			continue
		}

		if ch == '#' || ch == ';' {
			for {
				c, err := l.read()
				if err != nil || c == '\n' {
					break
				}
			}
			continue
		}

		break
	}

	ch, err := l.peek()
	if err != nil {
		if err == io.EOF {
			return sexpToken{Type: sexpEOF, Line: l.line}, nil
		}
		return sexpToken{}, err
	}

	switch ch {
	case '(':
		l.read()
		return sexpToken{Type: sexpOpen, Value: "(", Line: l.line}, nil
	case ')':
		l.read()
		return sexpToken{Type: sexpClose, Value: ")", Line: l.line}, nil
	case '"':
		return l.readString()
	default:
		return l.readSymbol()
	}
}

func (l *sexpLexer) peek() (rune, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	ch, _, err := l.reader.ReadRune()
	if err != nil {
		return 0, err
	}
	l.peeked = &ch
	return ch, nil
}

func (l *sexpLexer) read() (rune, error) {
	var ch rune
	if l.peeked != nil {
		ch = *l.peeked
		l.peeked = nil
	} else {
		var err error
		ch, _, err = l.reader.ReadRune()
		if err != nil {
			return 0, err
		}
	}
	if ch == '\n' {
		l.line++
	}
	return ch, nil
}

func (l *sexpLexer) readString() (sexpToken, error) {
	start := l.line
	l.read() // opening quote

	var result []rune
	for {
		ch, err := l.read()
		if err != nil {
			if err == io.EOF {
				return sexpToken{}, fmt.Errorf("line %d: unterminated string", start)
			}
			return sexpToken{}, err
		}

		if ch == '"' {
			break
		}

		if ch == '\\' {
			next, err := l.read()
			if err != nil {
				return sexpToken{}, fmt.Errorf("line %d: unexpected end of input after backslash", l.line)
			}
			switch next {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			default:
				result = append(result, next)
			}
			continue
		}

		result = append(result, ch)
	}

	return sexpToken{Type: sexpString, Value: string(result), Line: start}, nil
}

func (l *sexpLexer) readSymbol() (sexpToken, error) {
	var result []rune
	for {
		ch, err := l.peek()
		if err != nil {
			if err == io.EOF {
				break
			}
			return sexpToken{}, err
		}
		if unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == '"' {
			break
		}
		l.read()
		result = append(result, ch)
	}

	if len(result) == 0 {
		return sexpToken{}, fmt.Errorf("line %d: empty symbol", l.line)
	}
	return sexpToken{Type: sexpSymbol, Value: string(result), Line: l.line}, nil
}

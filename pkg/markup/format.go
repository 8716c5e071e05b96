package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a markup syntax.
type Format int

const (
	FormatUnknown Format = iota
	FormatXML
	FormatSexp
	FormatKDL
	FormatKRY
)

// ErrUnknownFormat is returned when a syntax cannot be determined.
var ErrUnknownFormat = errors.New("unknown markup format")

var formatNames = map[Format]string{
	FormatXML:  "xml",
	FormatSexp: "sexp",
	FormatKDL:  "kdl",
	FormatKRY:  "kry",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat maps a format name ("xml", "sexp", "kdl", "kry") to a Format.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatForPath picks a format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".fxml":
		return FormatXML
	case ".sexp", ".sx", ".lisp":
		return FormatSexp
	case ".kdl":
		return FormatKDL
	case ".kry":
		return FormatKRY
	}
	return FormatUnknown
}

// Sniff guesses the format from the first significant byte of the input.
// Only XML and S-expressions can be told apart this way. Lines starting with
// the S-expression comment markers '#' or ';' are skipped.
func Sniff(data []byte) Format {
	for {
		data = bytes.TrimLeft(data, " \t\r\n\ufeff")
		if len(data) == 0 {
			return FormatUnknown
		}
		switch data[0] {
		case '<':
			return FormatXML
		case '(':
			return FormatSexp
		case '#', ';':
			i := bytes.IndexByte(data, '\n')
			if i < 0 {
				return FormatUnknown
			}
			data = data[i+1:]
			continue
		}
		return FormatUnknown
	}
}

// Parse reads a document in the given format.
func Parse(r io.Reader, format Format) (*Document, error) {
	switch format {
	case FormatXML:
		return ParseXML(r)
	case FormatSexp:
		return ParseSexp(r)
	case FormatKDL:
		return ParseKDL(r)
	case FormatKRY:
		return ParseKRY(r)
	}
	return nil, ErrUnknownFormat
}

// ParseBytes reads a document, sniffing the format when it is unknown.
func ParseBytes(data []byte, format Format) (*Document, error) {
	if format == FormatUnknown {
		format = Sniff(data)
	}
	return Parse(bytes.NewReader(data), format)
}

// ParseFile reads a document from disk. The format comes from the file
// extension, falling back to sniffing the content.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	doc, err := ParseBytes(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

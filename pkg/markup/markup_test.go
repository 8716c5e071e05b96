package markup

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func expectedFileMenu() *Element {
	recent := NewElement("menu")
	recent.SetAttr("text", "Recent")
	a := NewElement("item")
	a.SetAttr("text", "A")
	recent.Append(a)

	exit := NewElement("item")
	exit.SetAttr("text", "Exit")
	exit.SetAttr("disabled", "true")

	file := NewElement("menu")
	file.SetAttr("text", "File")
	file.SetAttr("id", "file")
	file.Append(recent, NewElement("separator"), exit)

	root := NewElement("menu-root")
	root.Append(file)
	return root
}

func TestFrontEndsAgree(t *testing.T) {
	want := expectedFileMenu()
	for _, name := range []string{"file_menu.xml", "file_menu.sexp", "file_menu.kdl", "file_menu.kry"} {
		t.Run(name, func(t *testing.T) {
			doc, err := ParseFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatalf("ParseFile failed: %v", err)
			}
			if !Equal(doc.Root, want) {
				t.Fatalf("tree mismatch:\n got  %s\n want %s", doc.Root, want)
			}
		})
	}
}

func TestInlineFormsAgree(t *testing.T) {
	open := NewElement("item")
	open.SetAttr("text", "Open")
	open.SetAttr("id", "open")
	file := NewElement("menu")
	file.SetAttr("text", "File")
	file.Append(open, NewElement("separator"))
	want := NewElement("menu-root")
	want.Append(file)

	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"sexp", FormatSexp, `(menu-root (menu (text "File") (item (text "Open") (id "open")) (separator)))`},
		{"kdl", FormatKDL, `menu-root { menu text="File" { item text="Open" id="open"; separator; }; }`},
		{"kry", FormatKRY, `menu-root {
  menu {
    text: "File"
    item { text: "Open" id: "open" }
    separator {}
  }
}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			if !Equal(doc.Root, want) {
				t.Fatalf("tree mismatch:\n got  %s\n want %s", doc.Root, want)
			}
		})
	}
}

func TestParseXMLKeepsOrderAndLines(t *testing.T) {
	input := `<menu-context>
<item text="One"/>
<separator/>
<item text="Two"/>
</menu-context>`
	doc, err := ParseXMLString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	var tags []string
	for _, child := range doc.Root.Children {
		tags = append(tags, child.Tag)
	}
	if got := strings.Join(tags, ","); got != "item,separator,item" {
		t.Errorf("Expected item,separator,item, got %s", got)
	}
	if doc.Root.Children[2].Line != 4 {
		t.Errorf("Expected line 4 for last item, got %d", doc.Root.Children[2].Line)
	}
}

func TestParseXMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", `<?xml version="1.0"?>`, ErrEmptyDocument},
		{"two roots", `<menu-root/><menu-bar/>`, ErrMultipleRoots},
		{"mismatched close", `<menu-root><item></menu-root>`, ErrMismatchedTag},
		{"prefix mismatch", `<menu-root><x:item></item></menu-root>`, ErrMismatchedTag},
		{"unclosed", `<menu-root><item>`, ErrUnclosedElement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseXMLString(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := ParseXMLString(`<menu-root><item text="a></menu-root>`); err == nil {
		t.Fatal("Expected error for malformed XML")
	}
}

func TestParseXMLKeepsPrefixes(t *testing.T) {
	doc, err := ParseXMLString(`<menu-root xmlns:x="urn:x">
	<x:item text="prefixed"/>
	<item text="plain" x:text="other"/>
</menu-root>`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(doc.Root.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(doc.Root.Children))
	}
	if tag := doc.Root.Children[0].Tag; tag != "x:item" {
		t.Errorf("Expected tag x:item, got %q", tag)
	}
	plain := doc.Root.Children[1]
	if v, _ := plain.Attr("text"); v != "plain" {
		t.Errorf("Expected text 'plain', got %q", v)
	}
	if v, _ := plain.Attr("x:text"); v != "other" {
		t.Errorf("Expected x:text 'other', got %q", v)
	}
	if v, _ := doc.Root.Attr("xmlns:x"); v != "urn:x" {
		t.Errorf("Expected xmlns:x kept as an attribute, got %q", v)
	}
}

func TestParseSexpAttributeRule(t *testing.T) {
	doc, err := ParseSexpString(`(menu-context (item (text "Say \"hi\"") (icon "@a b.png")) (separator) (menu))`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(doc.Root.Children) != 3 {
		t.Fatalf("Expected 3 children, got %d", len(doc.Root.Children))
	}
	item := doc.Root.Children[0]
	if v, _ := item.Attr("text"); v != `Say "hi"` {
		t.Errorf("Expected escaped text, got %q", v)
	}
	if v, _ := item.Attr("icon"); v != "@a b.png" {
		t.Errorf("Expected icon '@a b.png', got %q", v)
	}
	if doc.Root.Children[1].Tag != "separator" || doc.Root.Children[2].Tag != "menu" {
		t.Errorf("Unexpected children: %s", doc.Root)
	}
}

func TestParseSexpErrors(t *testing.T) {
	inputs := map[string]string{
		"unterminated list":   `(menu-root (item)`,
		"unterminated string": `(menu-root (item (text "oops)))`,
		"bare atom":           `(menu-root stray)`,
		"stray close":         `)`,
		"quoted head":         `("menu-root")`,
		"two roots":           `(menu-root) (menu-bar)`,
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseSexpString(input); err == nil {
				t.Fatalf("Expected error for %q", input)
			}
		})
	}
}

func TestParseKDLArguments(t *testing.T) {
	doc, err := ParseKDLString(`menu-bar { menu "Edit" text="Explicit" { item "Copy" resize-icon=false; }; }`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	edit := doc.Root.Children[0]
	if v, _ := edit.Attr("text"); v != "Explicit" {
		t.Errorf("Expected property to win over argument, got %q", v)
	}
	copyItem := edit.Children[0]
	if v, _ := copyItem.Attr("resize-icon"); v != "false" {
		t.Errorf("Expected resize-icon 'false', got %q", v)
	}

	_, err = ParseKDLString(`menu-bar { item "a" "b"; }`)
	if !errors.Is(err, ErrExtraArgs) {
		t.Fatalf("Expected ErrExtraArgs, got %v", err)
	}
}

func TestParseKRY(t *testing.T) {
	parser, err := NewKRYParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	doc, err := parser.ParseString(`menu-context {
		item { text: "Zoom" id: zoom-in resize-icon: false }
		// comment
		separator {}
	}`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(doc.Root.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(doc.Root.Children))
	}
	item := doc.Root.Children[0]
	if v, _ := item.Attr("id"); v != "zoom-in" {
		t.Errorf("Expected id 'zoom-in', got %q", v)
	}
	if item.Line != 2 {
		t.Errorf("Expected line 2, got %d", item.Line)
	}

	if _, err := parser.ParseString(`menu-context { item { text "missing colon" } }`); err == nil {
		t.Fatal("Expected parse error")
	}
	if _, err := parser.ParseString(`a {} b {}`); !errors.Is(err, ErrMultipleRoots) {
		t.Fatalf("Expected ErrMultipleRoots, got %v", err)
	}
}

func TestFormatDetection(t *testing.T) {
	paths := map[string]Format{
		"menu.xml":  FormatXML,
		"MENU.XML":  FormatXML,
		"menu.sexp": FormatSexp,
		"menu.kdl":  FormatKDL,
		"menu.kry":  FormatKRY,
		"menu.txt":  FormatUnknown,
	}
	for path, want := range paths {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %v, want %v", path, got, want)
		}
	}

	if got := Sniff([]byte("\n  <menu-root/>")); got != FormatXML {
		t.Errorf("Expected xml, got %v", got)
	}
	sniffs := map[string]Format{
		"(menu-root)":                        FormatSexp,
		"; menu\n(menu-root)":                FormatSexp,
		"# menu\n\n  ;; more\n(menu-context)": FormatSexp,
		"; only a comment":                   FormatUnknown,
		"menu-root {}":                       FormatUnknown,
	}
	for input, want := range sniffs {
		if got := Sniff([]byte(input)); got != want {
			t.Errorf("Sniff(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := ParseBytes([]byte("menu-root {}"), FormatUnknown); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}

	f, err := ParseFormat(" KDL ")
	if err != nil || f != FormatKDL {
		t.Errorf("ParseFormat(KDL) = %v, %v", f, err)
	}
}

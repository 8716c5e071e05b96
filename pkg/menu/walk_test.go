package menu

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const sampleMenu = `<menu-root text="Main" id="main">
	<menu text="File" id="file">
		<menu text="Recent" id="recent"><item text="A" id="a"/></menu>
		<separator/>
		<item text="Exit" id="exit" disabled="true"/>
	</menu>
	<item text="About" id="a"/>
</menu-root>`

func loadSample(t *testing.T) *Menu {
	t.Helper()
	m, err := NewBuilder(WithResolver(nil)).Load(mustParse(t, sampleMenu))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return m
}

func TestWalkDepths(t *testing.T) {
	m := loadSample(t)
	var got []string
	Walk(m.Nodes(), func(n Node, depth int) bool {
		label := "-"
		if c := CommonOf(n); c != nil {
			label = c.Label
		}
		got = append(got, strings.Repeat(".", depth)+label)
		return true
	})
	want := "File,.Recent,..A,.-,.Exit,About"
	if strings.Join(got, ",") != want {
		t.Errorf("Walk order = %v, want %s", got, want)
	}

	var top int
	Walk(m.Nodes(), func(n Node, depth int) bool {
		top++
		return false
	})
	if top != 2 {
		t.Errorf("Expected 2 top level visits without descent, got %d", top)
	}
}

func TestFindByIDAndCount(t *testing.T) {
	m := loadSample(t)
	n := FindByID(m, "exit")
	leaf, ok := n.(*Leaf)
	if !ok || leaf.Label != "Exit" || !leaf.Disabled {
		t.Fatalf("FindByID(exit) = %#v", n)
	}
	if a := FindByID(m, "a"); a.(*Leaf).Label != "A" {
		t.Errorf("FindByID must return the first match in display order")
	}
	if FindByID(m, "missing") != nil || FindByID(m, "") != nil {
		t.Error("Expected nil for unknown or empty id")
	}
	if root, ok := FindByID(m, "main").(*Group); !ok || root != &m.Group {
		t.Errorf("FindByID(main) = %#v, want the menu root", root)
	}

	leaves, seps, groups := Count(m)
	if leaves != 3 || seps != 1 || groups != 2 {
		t.Errorf("Count = %d/%d/%d, want 3/1/2", leaves, seps, groups)
	}
}

func TestDuplicateIDs(t *testing.T) {
	m := loadSample(t)
	dups := DuplicateIDs(m)
	if len(dups) != 1 || dups[0] != "a" {
		t.Errorf("DuplicateIDs = %v, want [a]", dups)
	}

	m.Children = append(m.Children, &Leaf{Common: Common{ID: "main"}})
	dups = DuplicateIDs(m)
	if len(dups) != 2 || dups[1] != "main" {
		t.Errorf("Root id must count, got %v", dups)
	}
}

func TestMarshalJSON(t *testing.T) {
	data, err := MarshalJSON(loadSample(t))
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	var decoded struct {
		Shape string `json:"shape"`
		Root  struct {
			Label string `json:"label"`
		} `json:"root"`
		Items []struct {
			Kind     string `json:"kind"`
			Label    string `json:"label"`
			Children []struct {
				Kind     string `json:"kind"`
				Disabled bool   `json:"disabled"`
			} `json:"children"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, data)
	}
	if decoded.Shape != "menu" || decoded.Root.Label != "Main" {
		t.Errorf("Unexpected header: %+v", decoded)
	}
	if len(decoded.Items) != 2 || decoded.Items[0].Kind != "menu" || len(decoded.Items[0].Children) != 3 {
		t.Fatalf("Unexpected items:\n%s", data)
	}
	if decoded.Items[0].Children[1].Kind != "separator" || !decoded.Items[0].Children[2].Disabled {
		t.Errorf("Unexpected File children:\n%s", data)
	}

	empty, err := MarshalJSON(&ContextMenu{})
	if err != nil || !bytes.Contains(empty, []byte(`"items": []`)) {
		t.Errorf("Empty container must encode items as [], got %s", empty)
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprint(&buf, loadSample(t)); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	want := `menu-root "Main" #main
  menu "File" #file [3]
    menu "Recent" #recent [1]
      item "A" #a
    ----
    item "Exit" #exit (disabled)
  item "About" #a
`
	if buf.String() != want {
		t.Errorf("Fprint output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

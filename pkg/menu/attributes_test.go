package menu

import (
	"testing"

	"github.com/OpenTraceLab/menukit/pkg/markup"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"  true\n", true},
		{"false", false},
		{"", false},
		{"yes", false},
		{"1", false},
		{"truex", false},
	}
	for _, tt := range tests {
		if got := ParseBool(tt.in); got != tt.want {
			t.Errorf("ParseBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAttributesDefaults(t *testing.T) {
	attrs := ParseAttributes(markup.NewElement("item"))
	if attrs.HasID || attrs.HasIcon || attrs.Disabled || attrs.Text != "" {
		t.Errorf("Unexpected defaults: %+v", attrs)
	}
	if !attrs.ResizeIcon {
		t.Error("resize-icon must default to true")
	}
}

func TestParseAttributes(t *testing.T) {
	el := markup.NewElement("menu")
	el.SetAttr("text", "Tools")
	el.SetAttr("id", "")
	el.SetAttr("disabled", "TrUe")
	el.SetAttr("resize-icon", "nope")
	el.SetAttr("icon", "@tools.png")

	attrs := ParseAttributes(el)
	if attrs.Text != "Tools" || !attrs.Disabled {
		t.Errorf("Unexpected attributes: %+v", attrs)
	}
	if !attrs.HasID || attrs.ID != "" {
		t.Errorf("Expected present but empty id, got %+v", attrs)
	}
	if attrs.ResizeIcon {
		t.Error("Malformed resize-icon must read as false")
	}
	if !attrs.HasIcon || attrs.Icon != "@tools.png" {
		t.Errorf("Unexpected icon: %+v", attrs)
	}
}

func TestParseShape(t *testing.T) {
	tests := map[string]Shape{
		"menu":         ShapeMenu,
		"menu-root":    ShapeMenu,
		"Bar":          ShapeMenuBar,
		"menu-bar":     ShapeMenuBar,
		"context":      ShapeContextMenu,
		"menu-context": ShapeContextMenu,
	}
	for in, want := range tests {
		got, err := ParseShape(in)
		if err != nil || got != want {
			t.Errorf("ParseShape(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseShape("popup"); err == nil {
		t.Error("Expected error for unknown shape")
	}
	for _, s := range []Shape{ShapeMenu, ShapeMenuBar, ShapeContextMenu} {
		back, ok := ShapeForRootTag(s.RootTag())
		if !ok || back != s {
			t.Errorf("ShapeForRootTag(%q) = %v, %v", s.RootTag(), back, ok)
		}
	}
}

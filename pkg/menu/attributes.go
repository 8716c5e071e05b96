package menu

import (
	"strings"

	"github.com/OpenTraceLab/menukit/pkg/markup"
)

// Attribute names recognised on item and menu elements.
const (
	AttrText       = "text"
	AttrID         = "id"
	AttrDisabled   = "disabled"
	AttrResizeIcon = "resize-icon"
	AttrIcon       = "icon"
)

// Attributes are the typed attributes of one element.
type Attributes struct {
	Text       string
	ID         string
	HasID      bool
	Disabled   bool
	ResizeIcon bool
	Icon       string
	HasIcon    bool
}

// ParseBool reports whether text reads as "true", ignoring case and
// surrounding whitespace. Everything else, including malformed text, is
// false.
func ParseBool(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "true")
}

// ParseAttributes extracts the typed attributes of el. Absent attributes
// take their defaults: no id, enabled, resize-icon true, no icon.
func ParseAttributes(el *markup.Element) Attributes {
	attrs := Attributes{ResizeIcon: true}
	attrs.Text, _ = el.Attr(AttrText)
	attrs.ID, attrs.HasID = el.Attr(AttrID)
	if v, ok := el.Attr(AttrDisabled); ok {
		attrs.Disabled = ParseBool(v)
	}
	if v, ok := el.Attr(AttrResizeIcon); ok {
		attrs.ResizeIcon = ParseBool(v)
	}
	attrs.Icon, attrs.HasIcon = el.Attr(AttrIcon)
	return attrs
}

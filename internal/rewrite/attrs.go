package rewrite

import "strings"

// Attr is a single delegated attribute. Marker attributes such as
// data-pagination and data-modal-close carry no value.
type Attr struct {
	Name   string
	Value  string
	Marker bool
}

// Attrs is an ordered delegated-attribute list. Order is the render
// order: the discriminator attribute first, then parameters in
// declaration order.
type Attrs []Attr

// Get returns the value of the named attribute and whether it exists.
// Marker attributes report an empty value.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// Has returns true if the named attribute exists.
func (a Attrs) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Format serializes the attributes into space-separated name="value"
// pairs, double-quote-delimited, in list order. Values are
// HTML-attribute-escaped; marker attributes render as a bare name.
func (a Attrs) Format() string {
	var b strings.Builder

	for i, attr := range a {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(attr.Name)

		if attr.Marker {
			continue
		}

		b.WriteString(`="`)
		b.WriteString(escapeAttrValue(attr.Value))
		b.WriteByte('"')
	}

	return b.String()
}

// String implements fmt.Stringer via Format.
func (a Attrs) String() string {
	return a.Format()
}

var attrValueEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeAttrValue entity-encodes the characters that would break out of
// a double-quoted HTML attribute value.
func escapeAttrValue(v string) string {
	return attrValueEscaper.Replace(v)
}

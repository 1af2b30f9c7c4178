// Package heading renders the design-system heading primitive.
package heading

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/ui/markup"
	"github.com/louisbranch/uikit/internal/ui/styles"
)

// Element is the HTML tag a heading renders as.
type Element string

// Heading elements.
const (
	H1 Element = "h1"
	H2 Element = "h2"
	H3 Element = "h3"
	H4 Element = "h4"
	H5 Element = "h5"
	H6 Element = "h6"
	P  Element = "p"
)

// Heading renders text inside element; an empty element defaults to h2.
func Heading(element Element, text string) templ.Component {
	switch element {
	case H1, H2, H3, H4, H5, H6, P:
	default:
		element = H2
	}
	return markup.El(string(element), []markup.Attr{markup.A("class", styles.Block("Heading"))}, markup.Text(text))
}

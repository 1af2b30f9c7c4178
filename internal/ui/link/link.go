// Package link renders anchors without design-system link styling.
package link

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/ui/markup"
)

// Props configures an unstyled link.
type Props struct {
	URL      string
	External bool
	Class    string
	// Attrs are appended after the standard attributes.
	Attrs []markup.Attr
}

// Unstyled renders an anchor to props.URL. External links open in a new
// browsing context without leaking the opener.
func Unstyled(props Props, children ...templ.Component) templ.Component {
	attrs := []markup.Attr{
		markup.Opt("class", props.Class),
		markup.A("href", string(templ.URL(props.URL))),
		markup.Opt("target", externalValue(props.External, "_blank")),
		markup.Opt("rel", externalValue(props.External, "noopener noreferrer")),
	}
	return markup.El("a", markup.Attrs(attrs, props.Attrs), children...)
}

func externalValue(external bool, value string) string {
	if external {
		return value
	}
	return ""
}

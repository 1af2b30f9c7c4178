package button

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/ui/markup"
	"github.com/louisbranch/uikit/internal/ui/styles"
)

var (
	groupClass     = styles.Block("ButtonGroup")
	groupItemClass = styles.Element("ButtonGroup", "Item")
)

// Group lays out buttons in a row, wrapping each non-nil child in an item.
func Group(children ...templ.Component) templ.Component {
	items := make([]templ.Component, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		items = append(items, markup.El("div", []markup.Attr{markup.A("class", groupItemClass)}, child))
	}
	return markup.El("div", []markup.Attr{markup.A("class", groupClass)}, items...)
}

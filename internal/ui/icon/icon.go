// Package icon renders sprite-backed icons with a color token.
package icon

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/platform/icons"
	"github.com/louisbranch/uikit/internal/ui/markup"
	"github.com/louisbranch/uikit/internal/ui/styles"
)

// Color is a theme color token.
type Color string

// Color tokens understood by the stylesheet.
const (
	ColorWhite      Color = "white"
	ColorInkLighter Color = "inkLighter"
	ColorGreenDark  Color = "greenDark"
	ColorTealDark   Color = "tealDark"
	ColorYellowDark Color = "yellowDark"
	ColorRedDark    Color = "redDark"
)

// Props configures an icon.
type Props struct {
	Source icons.Source
	Color  Color
	// Backdrop draws a tinted circle behind the glyph. Only applies when a
	// color is set.
	Backdrop bool
	// AccessibilityLabel is announced instead of hiding the icon.
	AccessibilityLabel string
}

var (
	block        = styles.Block("Icon")
	svgClass     = styles.Element("Icon", "Svg")
	isColored    = styles.Modifier("Icon", "isColored")
	hasBackdrop  = styles.Modifier("Icon", "hasBackdrop")
	hiddenClass  = styles.Block("VisuallyHidden")
	sourceDataID = "data-icon-source"
)

// Icon renders props.Source through resolver.
func Icon(resolver icons.Resolver, props Props) templ.Component {
	if resolver == nil {
		resolver = icons.NewLucide()
	}
	symbolID, _ := resolver.Resolve(props.Source)

	class := styles.ClassNames(
		block,
		styles.If(props.Color != "", styles.Modifier("Icon", styles.VariationName("color", string(props.Color)))),
		styles.If(props.Color != "" && props.Color != ColorWhite, isColored),
		styles.If(props.Backdrop && props.Color != "", hasBackdrop),
	)

	var label templ.Component
	if props.AccessibilityLabel != "" {
		label = markup.El("span", []markup.Attr{markup.A("class", hiddenClass)}, markup.Text(props.AccessibilityLabel))
	}

	return markup.El("span", []markup.Attr{
		markup.A("class", class),
		markup.Opt(sourceDataID, string(props.Source)),
	},
		label,
		markup.El("svg", []markup.Attr{
			markup.A("class", svgClass),
			markup.A("viewBox", "0 0 24 24"),
			markup.A("focusable", "false"),
			markup.A("aria-hidden", "true"),
		}, markup.El("use", []markup.Attr{markup.A("href", "#"+symbolID)})),
	)
}

package styles

// Banner class hooks.
var (
	Banner                       = Block("Banner")
	BannerHasDismiss             = Modifier("Banner", "hasDismiss")
	BannerWithinContentContainer = Modifier("Banner", "withinContentContainer")
	BannerWithinPage             = Modifier("Banner", "withinPage")
	BannerRibbon                 = Element("Banner", "Ribbon")
	BannerHeading                = Element("Banner", "Heading")
	BannerContent                = Element("Banner", "Content")
	BannerActions                = Element("Banner", "Actions")
	BannerPrimaryAction          = Element("Banner", "PrimaryAction")
	BannerDismiss                = Element("Banner", "Dismiss")
	BannerSecondaryAction        = Element("Banner", "SecondaryAction")
	BannerText                   = Element("Banner", "Text")
)

// BannerStatus returns the status modifier class, e.g.
// "Polaris-Banner--statusWarning".
func BannerStatus(status string) string {
	return Modifier("Banner", VariationName("status", status))
}

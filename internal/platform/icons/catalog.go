package icons

import (
	"strings"
)

// Source names an icon independently of its artwork.
type Source string

// Sources used by the component library.
const (
	CircleTickMajorTwotone        Source = "CircleTickMajorTwotone"
	CircleInformationMajorTwotone Source = "CircleInformationMajorTwotone"
	CircleAlertMajorTwotone       Source = "CircleAlertMajorTwotone"
	CircleDisabledMajorTwotone    Source = "CircleDisabledMajorTwotone"
	FlagMajorTwotone              Source = "FlagMajorTwotone"
	CancelSmallMinor              Source = "CancelSmallMinor"
	ExternalSmallMinor            Source = "ExternalSmallMinor"
)

// Definition describes a catalog entry.
type Definition struct {
	Source      Source
	Lucide      string
	Description string
}

var catalog = []Definition{
	{
		Source:      CircleTickMajorTwotone,
		Lucide:      "circle-check",
		Description: "Successful outcome.",
	},
	{
		Source:      CircleInformationMajorTwotone,
		Lucide:      "info",
		Description: "Neutral information worth noticing.",
	},
	{
		Source:      CircleAlertMajorTwotone,
		Lucide:      "circle-alert",
		Description: "Warning that needs attention.",
	},
	{
		Source:      CircleDisabledMajorTwotone,
		Lucide:      "ban",
		Description: "Critical problem blocking progress.",
	},
	{
		Source:      FlagMajorTwotone,
		Lucide:      "flag",
		Description: "Default notice marker.",
	},
	{
		Source:      CancelSmallMinor,
		Lucide:      "x",
		Description: "Dismiss or close control.",
	},
	{
		Source:      ExternalSmallMinor,
		Lucide:      "external-link",
		Description: "Destination opens outside the app.",
	},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Source | Lucide | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.Source))
		builder.WriteString(" | ")
		builder.WriteString(def.Lucide)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}

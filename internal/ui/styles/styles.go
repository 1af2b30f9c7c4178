// Package styles builds the semantic class hooks a compatible stylesheet
// themes. Class names follow the Polaris BEM shape: Block, Block--modifier
// and Block__Element.
package styles

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix namespaces every generated class.
const Prefix = "Polaris-"

// Block returns the root class for a component, e.g. "Polaris-Banner".
func Block(name string) string {
	return Prefix + name
}

// Element returns a child region class, e.g. "Polaris-Banner__Ribbon".
func Element(block, element string) string {
	return Block(block) + "__" + element
}

// Modifier returns a variant class, e.g. "Polaris-Banner--hasDismiss".
func Modifier(block, modifier string) string {
	return Block(block) + "--" + modifier
}

// VariationName joins a variation group and value in camel case:
// ("status", "success") -> "statusSuccess".
func VariationName(name, value string) string {
	if value == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(value)
	return name + string(unicode.ToUpper(r)) + value[size:]
}

// ClassNames joins the non-empty class names with single spaces.
func ClassNames(names ...string) string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		kept = append(kept, name)
	}
	return strings.Join(kept, " ")
}

// If returns class when cond holds, otherwise the empty string.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

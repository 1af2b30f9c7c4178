// Package markup writes HTML elements as templ components with attributes
// emitted in declaration order, so rendered output is stable for styling
// hooks and accessibility wiring.
package markup

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type attrKind uint8

const (
	attrValue attrKind = iota
	attrFlag
	attrSkip
)

// Attr is a single HTML attribute.
type Attr struct {
	Name  string
	Value string
	kind  attrKind
}

// A returns a name="value" attribute. The value is always written, even
// when empty.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Opt returns a name="value" attribute that is omitted when value is empty.
func Opt(name, value string) Attr {
	if value == "" {
		return Attr{Name: name, kind: attrSkip}
	}
	return Attr{Name: name, Value: value}
}

// Flag returns a boolean attribute written as a bare name when on.
func Flag(name string, on bool) Attr {
	if !on {
		return Attr{Name: name, kind: attrSkip}
	}
	return Attr{Name: name, kind: attrFlag}
}

// Attrs concatenates attribute lists.
func Attrs(groups ...[]Attr) []Attr {
	var out []Attr
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

// WriteOpen writes an opening tag with its attributes.
func WriteOpen(w io.Writer, tag string, attrs ...Attr) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, attr := range attrs {
		switch attr.kind {
		case attrSkip:
			continue
		case attrFlag:
			if _, err := io.WriteString(w, " "+attr.Name); err != nil {
				return err
			}
		default:
			if _, err := io.WriteString(w, " "+attr.Name+`="`+templ.EscapeString(attr.Value)+`"`); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, ">")
	return err
}

// WriteClose writes a closing tag.
func WriteClose(w io.Writer, tag string) error {
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// El renders tag with attrs wrapping children. Nil children are skipped.
func El(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := WriteOpen(w, tag, attrs...); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		return WriteClose(w, tag)
	})
}

// Void renders a void element such as <use> or <input>.
func Void(tag string, attrs ...Attr) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return WriteOpen(w, tag, attrs...)
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Fragment renders children in order with no wrapper. Nil children are
// skipped.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

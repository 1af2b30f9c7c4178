package banner

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/uikit/internal/platform/uid"
	"github.com/louisbranch/uikit/internal/ui/app"
	"golang.org/x/net/html"
)

func newProvider() *app.Provider {
	return app.New(app.Options{IDs: uid.NewCounter(), ActionPrefix: "/ui/actions"})
}

func renderBanner(t *testing.T, p *app.Provider, props Props, nesting Context) *html.Node {
	t.Helper()
	var b strings.Builder
	if err := Banner(p, props, nesting).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc, err := html.Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("parse rendered banner: %v", err)
	}
	root := findFirst(doc, byClass("Polaris-Banner"))
	if root == nil {
		t.Fatalf("rendered markup has no banner container: %q", b.String())
	}
	return root
}

func text(s string) templ.Component {
	return templ.Raw(templ.EscapeString(s))
}

type predicate func(*html.Node) bool

func byClass(class string) predicate {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, class)
	}
}

func byTag(tag string) predicate {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func findFirst(n *html.Node, match predicate) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, match predicate) []*html.Node {
	var out []*html.Node
	if match(n) {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, match)...)
	}
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	value, _ := attr(n, "class")
	for _, field := range strings.Fields(value) {
		if field == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

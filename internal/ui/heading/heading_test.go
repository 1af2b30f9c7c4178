package heading

import (
	"context"
	"strings"
	"testing"
)

func TestHeadingElements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		element Element
		want    string
	}{
		{element: P, want: `<p class="Polaris-Heading">Title</p>`},
		{element: "", want: `<h2 class="Polaris-Heading">Title</h2>`},
		{element: "section", want: `<h2 class="Polaris-Heading">Title</h2>`},
		{element: H3, want: `<h3 class="Polaris-Heading">Title</h3>`},
	}
	for _, tc := range tests {
		var b strings.Builder
		if err := Heading(tc.element, "Title").Render(context.Background(), &b); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if got := b.String(); got != tc.want {
			t.Errorf("Heading(%q) = %q, want %q", tc.element, got, tc.want)
		}
	}
}

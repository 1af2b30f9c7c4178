package sessions

import (
	"testing"

	"github.com/louisbranch/uikit/internal/platform/uid"
	"github.com/louisbranch/uikit/internal/ui/app"
	"github.com/louisbranch/uikit/internal/ui/scrollable"
)

func testFactory(locale string, prefix string) *app.Provider {
	return app.New(app.Options{IDs: uid.NewCounter(), ActionPrefix: prefix})
}

func TestVisitorReusesKnownID(t *testing.T) {
	t.Parallel()

	store := NewStore(uid.NewCounter(), 4)
	first, created := store.Visitor("")
	if !created || first.ID != "v1" {
		t.Fatalf("Visitor(\"\") = %q, %v", first.ID, created)
	}
	again, created := store.Visitor(first.ID)
	if created || again != first {
		t.Fatal("expected known visitor to be reused")
	}
	other, created := store.Visitor("missing")
	if !created || other == first {
		t.Fatal("expected unknown id to create a visitor")
	}
}

func TestVisitorDismissRestoreAndRetry(t *testing.T) {
	t.Parallel()

	visitor, _ := NewStore(nil, 0).Visitor("")
	visitor.Dismiss("success")
	visitor.Dismiss("warning")
	if !visitor.Dismissed("success") || visitor.Dismissed("info") {
		t.Fatal("unexpected dismissal state")
	}
	if got := visitor.Restore(); got != 2 {
		t.Fatalf("Restore() = %d, want 2", got)
	}
	if visitor.Dismissed("success") {
		t.Fatal("expected restore to clear dismissals")
	}
	visitor.Retry()
	if got := visitor.Retry(); got != 2 || visitor.Retries() != 2 {
		t.Fatalf("Retry() = %d", got)
	}
}

func TestOpenBuildsViewWithActionPrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(uid.NewCounter(), 4)
	visitor, _ := store.Visitor("")
	var gotPrefix, gotLocale string
	view := store.Open(visitor, "pt-BR", "/ui/sessions/", func(locale string, prefix string) *app.Provider {
		gotLocale, gotPrefix = locale, prefix
		return testFactory(locale, prefix)
	})
	if view.ID != "s2" {
		t.Fatalf("view id = %q", view.ID)
	}
	if gotPrefix != "/ui/sessions/s2/actions" || gotLocale != "pt-BR" {
		t.Fatalf("factory got %q %q", gotLocale, gotPrefix)
	}
	if found, ok := store.View("s2"); !ok || found != view {
		t.Fatal("expected view to be retrievable")
	}
	if got := view.Provider.Actions.Endpoint("Action1"); got != "/ui/sessions/s2/actions/Action1" {
		t.Fatalf("endpoint = %q", got)
	}
}

func TestOpenEvictsOldestView(t *testing.T) {
	t.Parallel()

	store := NewStore(uid.NewCounter(), 2)
	visitor, _ := store.Visitor("")
	first := store.Open(visitor, "en-US", "/ui/sessions", testFactory)
	store.Open(visitor, "en-US", "/ui/sessions", testFactory)
	store.Open(visitor, "en-US", "/ui/sessions", testFactory)
	if _, ok := store.View(first.ID); ok {
		t.Fatal("expected oldest view evicted")
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}
}

func TestDrainScrollsCollectsRegionsInOrder(t *testing.T) {
	t.Parallel()

	store := NewStore(uid.NewCounter(), 2)
	visitor, _ := store.Visitor("")
	view := store.Open(visitor, "en-US", "/ui/sessions", testFactory)
	first := scrollable.NewRegion(view.Provider)
	second := scrollable.NewRegion(view.Provider)
	view.AddRegion(first)
	view.AddRegion(nil)
	view.AddRegion(second)
	second.ScrollToPosition(40)
	first.ScrollToPosition(120)

	scrolls := view.DrainScrolls()
	if len(scrolls) != 2 || scrolls[0].Region != first.ID() || scrolls[0].Top != 120 || scrolls[1].Top != 40 {
		t.Fatalf("DrainScrolls() = %+v", scrolls)
	}
	if again := view.DrainScrolls(); len(again) != 0 {
		t.Fatalf("expected drained queue, got %+v", again)
	}
}

func TestMountEndpoint(t *testing.T) {
	t.Parallel()

	if got := MountEndpoint("/ui/sessions/", "s9"); got != "/ui/sessions/s9/mount" {
		t.Fatalf("MountEndpoint() = %q", got)
	}
}

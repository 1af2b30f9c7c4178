package action

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/uikit/internal/platform/uid"
)

func TestRegistryDispatchInvokesHandlerOncePerCall(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(uid.NewCounter(), "/ui/sessions/s1/actions/")
	calls := 0
	id := reg.Register(func(context.Context) error {
		calls++
		return nil
	})
	if id != "Action1" {
		t.Fatalf("id = %q, want %q", id, "Action1")
	}
	if got := reg.Endpoint(id); got != "/ui/sessions/s1/actions/Action1" {
		t.Fatalf("Endpoint() = %q", got)
	}

	if err := reg.Dispatch(context.Background(), id); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if err := reg.Dispatch(context.Background(), id); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestRegistryDispatchUnknownID(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(uid.NewCounter(), "/a")
	err := reg.Dispatch(context.Background(), "Action9")
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("Dispatch() error = %v, want ErrUnknownAction", err)
	}
}

func TestRegistryDispatchNilHandlerIsNoop(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(uid.NewCounter(), "/a")
	id := reg.Register(nil)
	if err := reg.Dispatch(context.Background(), id); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
}

func TestRegistryDispatchReturnsHandlerError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	reg := NewRegistry(uid.NewCounter(), "/a")
	id := reg.Register(func(context.Context) error { return boom })
	if err := reg.Dispatch(context.Background(), id); !errors.Is(err, boom) {
		t.Fatalf("Dispatch() error = %v, want boom", err)
	}
}

func TestRegistryResetClearsHandlers(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(uid.NewCounter(), "/a")
	id := reg.Register(nil)
	reg.Reset()
	if reg.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", reg.Len())
	}
	if err := reg.Dispatch(context.Background(), id); !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("Dispatch() after reset error = %v", err)
	}
}

func TestActionLabels(t *testing.T) {
	t.Parallel()

	var a Action = Navigation{Content: "Docs", URL: "/docs"}
	if a.Label() != "Docs" {
		t.Fatalf("Navigation label = %q", a.Label())
	}
	a = Callback{Content: "Retry"}
	if a.Label() != "Retry" {
		t.Fatalf("Callback label = %q", a.Label())
	}
	if (Primary{}).Label() != "" {
		t.Fatal("expected empty label for primary without action")
	}
}

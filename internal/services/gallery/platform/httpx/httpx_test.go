package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestRequestIDAddsHeaderWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.HasPrefix(seen, "gallery-") {
		t.Fatalf("request id = %q", seen)
	}
	if rr.Header().Get("X-Request-ID") != seen {
		t.Fatal("expected request id echoed on response")
	}
}

func TestRecoverPanicWritesServerError(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RecoverPanic(log.New(&buffer, "", 0))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if !strings.Contains(buffer.String(), "panic recovered method=GET path=/x") {
		t.Fatalf("unexpected log %q", buffer.String())
	}
}

func TestRequireSameOrigin(t *testing.T) {
	t.Parallel()

	h := RequireSameOrigin()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{name: "no proof", want: http.StatusForbidden},
		{name: "htmx", headers: map[string]string{"HX-Request": "true"}, want: http.StatusNoContent},
		{name: "same origin", headers: map[string]string{"Origin": "http://example.com"}, want: http.StatusNoContent},
		{name: "cross origin", headers: map[string]string{"Origin": "http://evil.test"}, want: http.StatusForbidden},
		{name: "referer", headers: map[string]string{"Referer": "http://example.com/page"}, want: http.StatusNoContent},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "http://example.com/ui", nil)
		for key, value := range tc.headers {
			req.Header.Set(key, value)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rr.Code, tc.want)
		}
	}
}

func TestWriteRedirectHonorsHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/ui", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteRedirect(rr, req, "/")
	if rr.Code != http.StatusOK || rr.Header().Get("HX-Redirect") != "/" {
		t.Fatalf("htmx redirect = %d %q", rr.Code, rr.Header().Get("HX-Redirect"))
	}

	rr = httptest.NewRecorder()
	WriteRedirect(rr, httptest.NewRequest(http.MethodPost, "/ui", nil), "/")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
		t.Fatalf("plain redirect = %d %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	if IsHTTPS(req) {
		t.Fatal("plain request reported as https")
	}
	req.Header.Set("X-Forwarded-Proto", "https, http")
	if !IsHTTPS(req) {
		t.Fatal("forwarded https not detected")
	}
	if IsHTTPS(nil) {
		t.Fatal("nil request reported as https")
	}
}

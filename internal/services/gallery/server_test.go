package gallery

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/uikit/internal/platform/uid"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	return NewHandler(Config{
		Logger:     log.New(io.Discard, "", 0),
		SessionIDs: uid.NewCounter(),
	})
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func htmxPost(target string, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("HX-Request", "true")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func attr(t *testing.T, markup string, name string) string {
	t.Helper()
	marker := name + `="`
	start := strings.Index(markup, marker)
	if start < 0 {
		t.Fatalf("attribute %s not found", name)
	}
	start += len(marker)
	return markup[start : start+strings.Index(markup[start:], `"`)]
}

func cookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestIndexRendersGalleryAndSetsVisitor(t *testing.T) {
	t.Parallel()

	rr := serve(newTestHandler(t), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"<!doctype html>",
		`data-session="s2"`,
		`data-mount-endpoint="/ui/sessions/s2/mount"`,
		"Polaris-Banner--statusCritical",
		"Component gallery",
	} {
		if !strings.Contains(body, marker) {
			t.Errorf("index missing %q", marker)
		}
	}
	if c := cookie(rr, VisitorCookie); c == nil || c.Value != "v1" {
		t.Fatalf("visitor cookie = %v", c)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestIndexHonorsAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	body := serve(newTestHandler(t), req).Body.String()
	if !strings.Contains(body, `<html lang="pt-BR">`) || !strings.Contains(body, "Galeria de componentes") {
		t.Fatalf("expected pt-BR page, got %q", body)
	}
}

func TestMountRunsAttachPassOnce(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	page := serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	endpoint := attr(t, page, "data-mount-endpoint")
	anchor := attr(t, page, "data-mount")

	rr := serve(h, htmxPost(endpoint, `{"anchors":{"`+anchor+`":{"offsetTop":120}}}`))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%q", rr.Code, rr.Body.String())
	}
	var got MountResponse
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Attached != 1 || len(got.Scrolls) != 1 || got.Scrolls[0].Top != 120 || got.Scrolls[0].Region != "Scrollable1" {
		t.Fatalf("mount response = %+v", got)
	}

	rr = serve(h, htmxPost(endpoint, `{"anchors":{"`+anchor+`":{"offsetTop":300}}}`))
	got = MountResponse{}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Attached != 0 || len(got.Scrolls) != 0 {
		t.Fatalf("second mount response = %+v", got)
	}
}

func TestMountRejectsBadInput(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	page := serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	endpoint := attr(t, page, "data-mount-endpoint")

	if rr := serve(h, htmxPost(endpoint, `{not json`)); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad json status = %d", rr.Code)
	}
	rr := serve(h, htmxPost("/ui/sessions/missing/mount", `{}`))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown session status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "This page expired.") {
		t.Fatalf("expected localized error, got %q", rr.Body.String())
	}
	cross := httptest.NewRequest(http.MethodPost, endpoint, strings.NewReader(`{}`))
	cross.Header.Set("Origin", "http://evil.test")
	if rr := serve(h, cross); rr.Code != http.StatusForbidden {
		t.Fatalf("cross-origin status = %d", rr.Code)
	}
}

func TestDispatchWritesFlashAndRedirects(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	first := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	visitor := cookie(first, VisitorCookie)
	page := first.Body.String()
	// The success banner's dismiss control is the first action on the page.
	endpoint := attr(t, page, "hx-post")

	rr := serve(h, htmxPost(endpoint, ""))
	if rr.Code != http.StatusOK || rr.Header().Get("HX-Redirect") != "/" {
		t.Fatalf("dispatch = %d %q", rr.Code, rr.Header().Get("HX-Redirect"))
	}
	notice := cookie(rr, "uikit_flash")
	if notice == nil {
		t.Fatal("expected flash cookie")
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(visitor)
	next.AddCookie(notice)
	body := serve(h, next).Body.String()
	if !strings.Contains(body, "Notice dismissed.") {
		t.Fatal("expected flash notice banner")
	}
	if strings.Contains(body, "Polaris-Banner--statusSuccess") {
		t.Fatal("expected dismissed success banner hidden")
	}
}

func TestDispatchUnknownTargets(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	page := serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	session := attr(t, page, "data-session")

	if rr := serve(h, htmxPost("/ui/sessions/"+session+"/actions/Action999", "")); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown action status = %d", rr.Code)
	}
	if rr := serve(h, htmxPost("/ui/sessions/nope/actions/Action1", "")); rr.Code != http.StatusNotFound {
		t.Fatalf("unknown session status = %d", rr.Code)
	}
	get := httptest.NewRequest(http.MethodGet, "/ui/sessions/"+session+"/actions/Action1", nil)
	if rr := serve(h, get); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET dispatch status = %d", rr.Code)
	}
}

func TestStaticAssetsAndMissingRoutes(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	for _, path := range []string{"/static/gallery.css", "/static/gallery.js"} {
		if rr := serve(h, httptest.NewRequest(http.MethodGet, path, nil)); rr.Code != http.StatusOK {
			t.Errorf("GET %s = %d", path, rr.Code)
		}
	}
	if rr := serve(h, httptest.NewRequest(http.MethodGet, "/missing", nil)); rr.Code != http.StatusNotFound {
		t.Fatalf("GET /missing = %d", rr.Code)
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty address")
	}
	server, err := NewServer(context.Background(), Config{HTTPAddr: " localhost:0 "})
	if err != nil {
		t.Fatalf("NewServer() = %v", err)
	}
	if server.Addr() != "localhost:0" {
		t.Fatalf("Addr() = %q", server.Addr())
	}
	server.Close()
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("NewServer() = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() = %v", err)
	}
}

package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/uikit/internal/platform/timeouts"
	"github.com/louisbranch/uikit/internal/services/gallery/page"
	apperrors "github.com/louisbranch/uikit/internal/services/gallery/platform/errors"
	"github.com/louisbranch/uikit/internal/services/gallery/platform/flash"
	"github.com/louisbranch/uikit/internal/services/gallery/platform/httpx"
	"github.com/louisbranch/uikit/internal/services/gallery/platform/observability"
	"github.com/louisbranch/uikit/internal/services/gallery/sessions"
	"github.com/louisbranch/uikit/internal/ui/action"
	"github.com/louisbranch/uikit/internal/ui/lifecycle"
	"github.com/louisbranch/uikit/internal/ui/scrollable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// VisitorCookie carries the visitor handle between views.
const VisitorCookie = "uikit_visitor"

// maxMountBody bounds a layout report.
const maxMountBody = 64 << 10

// MountRequest is the client's layout report.
type MountRequest struct {
	Anchors lifecycle.Measurements `json:"anchors"`
}

// MountResponse reports the attach pass outcome.
type MountResponse struct {
	Attached int                 `json:"attached"`
	Scrolls  []scrollable.Scroll `json:"scrolls"`
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	ctx, span := observability.Tracer().Start(httpx.RequestContext(r), "gallery.render")
	defer span.End()

	visitor := h.visitor(w, r)
	locale := h.locales.Resolve(r)
	view := h.sessions.Open(visitor, locale, SessionRouteBase, h.newProvider)
	span.SetAttributes(attribute.String("gallery.view", view.ID), attribute.String("gallery.locale", locale))

	opts := page.GalleryOptions{WithinContent: h.cfg.WithinContent}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		opts.Notice = &notice
	}
	doc := page.Layout(page.LayoutOptions{
		Title:         view.Provider.T("gallery.title"),
		Lang:          locale,
		SessionID:     view.ID,
		MountEndpoint: sessions.MountEndpoint(SessionRouteBase, view.ID),
		HTMXScript:    h.cfg.HTMXScript,
	}, page.Gallery(view, opts))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if err := doc.Render(ctx, w); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render")
		h.logger.Printf("gallery render failed view=%s err=%v", view.ID, err)
		return
	}
	h.logger.Printf("gallery rendered view=%s visitor=%s locale=%s actions=%d mounts=%d",
		view.ID, visitor.ID, locale, view.Provider.Actions.Len(), view.Provider.Mounts.Pending())
}

func (h *handlers) visitor(w http.ResponseWriter, r *http.Request) *sessions.Visitor {
	var id string
	if cookie, err := r.Cookie(VisitorCookie); err == nil && cookie != nil {
		id = cookie.Value
	}
	visitor, created := h.sessions.Visitor(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     VisitorCookie,
			Value:    visitor.ID,
			Path:     "/",
			HttpOnly: true,
			Secure:   httpx.IsHTTPS(r),
			SameSite: http.SameSiteLaxMode,
		})
	}
	return visitor
}

func (h *handlers) view(r *http.Request) (*sessions.View, error) {
	id := strings.TrimSpace(r.PathValue("session"))
	view, ok := h.sessions.View(id)
	if !ok {
		return nil, apperrors.EK(apperrors.KindNotFound, "gallery.error.session", "unknown session "+id)
	}
	return view, nil
}

func (h *handlers) dispatch(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	actionID := strings.TrimSpace(r.PathValue("action"))

	ctx, span := observability.Tracer().Start(httpx.RequestContext(r), "gallery.dispatch")
	defer span.End()
	span.SetAttributes(attribute.String("gallery.view", view.ID), attribute.String("gallery.action", actionID))

	ctx, cancel := context.WithTimeout(ctx, timeouts.Dispatch)
	defer cancel()
	ctx, outbox := flash.WithOutbox(ctx)

	if err := view.Provider.Actions.Dispatch(ctx, actionID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch")
		if errors.Is(err, action.ErrUnknownAction) {
			h.writeError(w, r, apperrors.EK(apperrors.KindNotFound, "gallery.error.action", err.Error()))
			return
		}
		h.logger.Printf("gallery dispatch failed view=%s action=%s err=%v", view.ID, actionID, err)
		h.writeError(w, r, fmt.Errorf("dispatch %s: %w", actionID, err))
		return
	}
	notice, ok := outbox.Notice()
	if ok {
		flash.Write(w, r, notice)
	}
	h.logger.Printf("gallery dispatched view=%s action=%s notice=%s", view.ID, actionID, notice.Key)
	httpx.WriteRedirect(w, r, "/")
}

func (h *handlers) mount(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req MountRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMountBody))
	if err := decoder.Decode(&req); err != nil {
		h.writeError(w, r, apperrors.EK(apperrors.KindInvalidInput, "gallery.error.layout", "decode layout report: "+err.Error()))
		return
	}
	if req.Anchors == nil {
		req.Anchors = lifecycle.Measurements{}
	}

	ctx, span := observability.Tracer().Start(httpx.RequestContext(r), "gallery.attach")
	defer span.End()
	attached := view.Provider.Mounts.AttachAll(ctx, req.Anchors)
	scrolls := view.DrainScrolls()
	span.SetAttributes(
		attribute.String("gallery.view", view.ID),
		attribute.Int("gallery.attached", attached),
		attribute.Int("gallery.scrolls", len(scrolls)),
	)
	h.logger.Printf("gallery attached view=%s anchors=%d attached=%d scrolls=%d", view.ID, len(req.Anchors), attached, len(scrolls))

	if err := httpx.WriteJSON(w, http.StatusOK, MountResponse{Attached: attached, Scrolls: scrolls}); err != nil {
		h.logger.Printf("gallery attach response failed view=%s err=%v", view.ID, err)
	}
}

// writeError answers with the error's status and, when it carries a
// localization key, the copy for the request locale.
func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	message := err.Error()
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized, ok := h.bundle.Message(h.locales.Resolve(r), key); ok {
			message = localized
		}
	}
	http.Error(w, message, apperrors.HTTPStatus(err))
}

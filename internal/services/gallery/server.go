// Package gallery hosts the component gallery: a browser surface that
// renders every banner tone and a scrolling region, dispatches their
// actions and runs the attach pass once the client reports layout.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/uikit/internal/platform/i18n/catalog"
	"github.com/louisbranch/uikit/internal/platform/timeouts"
	"github.com/louisbranch/uikit/internal/platform/uid"
	"github.com/louisbranch/uikit/internal/services/gallery/platform/httpx"
	"github.com/louisbranch/uikit/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/uikit/internal/services/gallery/platform/observability"
	"github.com/louisbranch/uikit/internal/services/gallery/sessions"
	gallerystatic "github.com/louisbranch/uikit/internal/services/gallery/static"
	"github.com/louisbranch/uikit/internal/ui/app"
)

// SessionRouteBase is where per-view action and mount endpoints live.
const SessionRouteBase = "/ui/sessions"

// Config defines startup inputs for the gallery service.
type Config struct {
	HTTPAddr string
	// Locale is used when a request states no supported preference.
	Locale string
	// WithinContent renders the showcase nested in a content container.
	WithinContent bool
	// HTMXScript optionally loads htmx from a URL.
	HTMXScript string
	// SessionCapacity bounds retained views and visitors.
	SessionCapacity int
	// Logger receives request and dispatch logs; nil uses log.Default().
	Logger *log.Logger
	// Catalog supplies localized copy; nil uses the embedded catalogs.
	Catalog *catalog.Bundle
	// SessionIDs issues visitor and view handles; nil uses random ids.
	SessionIDs uid.Generator
}

// Server hosts the gallery HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handlers struct {
	cfg      Config
	logger   *log.Logger
	bundle   *catalog.Bundle
	locales  *i18n.Resolver
	sessions *sessions.Store
}

// NewHandler builds the root handler.
func NewHandler(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	bundle := cfg.Catalog
	if bundle == nil {
		bundle = catalog.Default()
	}
	h := &handlers{
		cfg:      cfg,
		logger:   logger,
		bundle:   bundle,
		locales:  i18n.NewResolver(bundle, cfg.Locale),
		sessions: sessions.NewStore(cfg.SessionIDs, cfg.SessionCapacity),
	}

	ui := http.NewServeMux()
	ui.HandleFunc("POST "+SessionRouteBase+"/{session}/actions/{action}", h.dispatch)
	ui.HandleFunc("POST "+SessionRouteBase+"/{session}/mount", h.mount)

	rootMux := http.NewServeMux()
	rootMux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(gallerystatic.FS))))
	rootMux.HandleFunc("GET /{$}", h.index)
	rootMux.Handle(SessionRouteBase+"/", httpx.Chain(ui, httpx.RequireSameOrigin()))
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Trace(),
		observability.RequestLogger(logger),
	)
}

func (h *handlers) newProvider(locale string, actionPrefix string) *app.Provider {
	return app.New(app.Options{
		IDs:          uid.NewCounter(),
		Localizer:    h.bundle.Printer(locale),
		ActionPrefix: actionPrefix,
	})
}

// NewServer validates config and constructs a gallery server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown gallery http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve gallery http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}

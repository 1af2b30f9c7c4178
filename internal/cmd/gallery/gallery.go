// Package gallery parses gallery command flags and starts the service.
package gallery

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/uikit/internal/platform/cmd"
	"github.com/louisbranch/uikit/internal/services/gallery"
)

// Config holds gallery command configuration.
type Config struct {
	HTTPAddr        string `env:"UIKIT_GALLERY_HTTP_ADDR"        envDefault:"localhost:8095"`
	Locale          string `env:"UIKIT_GALLERY_LOCALE"           envDefault:"en-US"`
	WithinContent   bool   `env:"UIKIT_GALLERY_WITHIN_CONTENT"`
	HTMXScript      string `env:"UIKIT_GALLERY_HTMX_SCRIPT"`
	SessionCapacity int    `env:"UIKIT_GALLERY_SESSION_CAPACITY" envDefault:"256"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "gallery HTTP listen address")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale used when the browser states no supported preference")
	fs.BoolVar(&cfg.WithinContent, "within-content", cfg.WithinContent, "render the showcase nested in a content container")
	fs.StringVar(&cfg.HTMXScript, "htmx-script", cfg.HTMXScript, "optional htmx script URL")
	fs.IntVar(&cfg.SessionCapacity, "session-capacity", cfg.SessionCapacity, "views and visitors retained in memory")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the gallery server under telemetry.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGallery, func(ctx context.Context) error {
		server, err := gallery.NewServer(ctx, gallery.Config{
			HTTPAddr:        cfg.HTTPAddr,
			Locale:          cfg.Locale,
			WithinContent:   cfg.WithinContent,
			HTMXScript:      cfg.HTMXScript,
			SessionCapacity: cfg.SessionCapacity,
		})
		if err != nil {
			return fmt.Errorf("init gallery server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve gallery: %w", err)
		}
		return nil
	})
}

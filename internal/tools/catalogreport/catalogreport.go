// Package catalogreport prints the icon catalog and locale coverage as
// markdown for contributors.
package catalogreport

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/louisbranch/uikit/internal/platform/i18n/catalog"
	"github.com/louisbranch/uikit/internal/platform/icons"
)

// Report kinds accepted by -kind.
const (
	KindIcons = "icons"
	KindI18n  = "i18n"
)

// Config holds report options.
type Config struct {
	Kind       string
	BaseLocale string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Kind: KindIcons, BaseLocale: catalog.BaseLocale}
	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "report to print: icons or i18n")
	fs.StringVar(&cfg.BaseLocale, "base-locale", cfg.BaseLocale, "locale other locales are compared against")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the selected report to out. A nil bundle uses the embedded
// catalogs.
func Run(cfg Config, out io.Writer, bundle *catalog.Bundle) error {
	if out == nil {
		return errors.New("output is required")
	}
	switch strings.TrimSpace(cfg.Kind) {
	case KindIcons:
		_, err := io.WriteString(out, icons.CatalogMarkdown())
		return err
	case KindI18n:
		if bundle == nil {
			bundle = catalog.Default()
		}
		return writeCoverage(out, bundle, cfg.BaseLocale)
	default:
		return fmt.Errorf("unknown report kind %q", cfg.Kind)
	}
}

type coverage struct {
	locale    string
	namespace string
	have      int
	want      int
	missing   []string
}

func writeCoverage(out io.Writer, bundle *catalog.Bundle, baseLocale string) error {
	if !bundle.HasLocale(baseLocale) {
		return fmt.Errorf("base locale %q is missing from catalogs", baseLocale)
	}
	base := bundle.LocaleMessages(baseLocale)
	namespaces := map[string][]string{}
	for key := range base {
		namespace, _, _ := strings.Cut(key, ".")
		namespaces[namespace] = append(namespaces[namespace], key)
	}
	names := make([]string, 0, len(namespaces))
	for name := range namespaces {
		names = append(names, name)
	}
	sort.Strings(names)

	var rows []coverage
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		for _, name := range names {
			row := coverage{locale: locale, namespace: name, want: len(namespaces[name])}
			for _, key := range namespaces[name] {
				if _, ok := messages[key]; ok {
					row.have++
				} else {
					row.missing = append(row.missing, key)
				}
			}
			sort.Strings(row.missing)
			rows = append(rows, row)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Locale coverage (base %s)\n\n", baseLocale)
	b.WriteString("| Locale | Namespace | Translated | Missing keys |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, row := range rows {
		missing := "-"
		if len(row.missing) > 0 {
			missing = "`" + strings.Join(row.missing, "`, `") + "`"
		}
		fmt.Fprintf(&b, "| %s | %s | %d/%d | %s |\n", row.locale, row.namespace, row.have, row.want, missing)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

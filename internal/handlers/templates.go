package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/itsDrac/nft-web/internal/nav"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// TemplateCache holds one parsed template per page.
type TemplateCache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
	funcs template.FuncMap
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		cache: make(map[string]*template.Template),
		funcs: template.FuncMap{
			"flashClass": func(typ string) string {
				if typ == flashError {
					return "flash-error"
				}
				return "flash-success"
			},
		},
	}
}

// Load parses every page together with the shared layout. A nil fsys
// uses the embedded templates.
func (tc *TemplateCache) Load(fsys fs.FS) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if fsys == nil {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return err
		}
		fsys = sub
	}

	for _, page := range nav.Pages {
		tmpl, err := template.New(page.Template).Funcs(tc.funcs).ParseFS(fsys, "layout.html", page.Template)
		if err != nil {
			slog.Error("Failed to parse template", "file", page.Template, "error", err)
			return fmt.Errorf("parse %s: %w", page.Template, err)
		}
		tc.cache[page.Template] = tmpl
		slog.Debug("Cached template", "name", page.Template)
	}
	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}

// StaticFS serves stylesheets and images.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

package email

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/aymerick/raymond"
)

//go:embed templates/*.hbs
var templateFS embed.FS

const layoutName = "layout"

// Renderer renders the embedded Handlebars templates inside the shared layout.
type Renderer struct {
	layout     *raymond.Template
	templates  map[string]*raymond.Template
	agencyName string
	siteURL    string
}

// NewRenderer parses every embedded template up front so a broken template
// fails at startup instead of on first send.
func NewRenderer(agencyName, siteURL string) (*Renderer, error) {
	entries, err := fs.Glob(templateFS, "templates/*.hbs")
	if err != nil {
		return nil, err
	}

	r := &Renderer{templates: map[string]*raymond.Template{}, agencyName: agencyName, siteURL: siteURL}
	for _, path := range entries {
		src, err := templateFS.ReadFile(path)
		if err != nil {
			return nil, err
		}
		tpl, err := raymond.Parse(string(src))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(path, "templates/"), ".hbs")
		if name == layoutName {
			r.layout = tpl
			continue
		}
		r.templates[name] = tpl
	}
	if r.layout == nil {
		return nil, fmt.Errorf("template %q missing", layoutName)
	}
	return r, nil
}

// Render executes the named template and wraps it in the layout.
func (r *Renderer) Render(name, subject string, data map[string]any) (string, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not found", name)
	}
	content, err := tpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return r.layout.Exec(map[string]any{
		"subject":    subject,
		"content":    raymond.SafeString(content),
		"agencyName": r.agencyName,
		"siteURL":    r.siteURL,
	})
}

package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders page models with the embedded templates.
type Renderer struct {
	tmpl *template.Template
	log  *zap.Logger
}

// NewRenderer parses the embedded templates.
func NewRenderer(log *zap.Logger) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{
		tmpl: tmpl,
		log:  log,
	}, nil
}

// Home renders the home page (shorten form + dashboard).
func (r *Renderer) Home(w io.Writer, page HomePage) error {
	return r.render(w, "home.html", page)
}

// Analytics renders the analytics page for one short code.
func (r *Renderer) Analytics(w io.Writer, page AnalyticsPage) error {
	return r.render(w, "analytics.html", page)
}

// render executes into a buffer first so a template failure never leaves a
// half-written response.
func (r *Renderer) render(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.log.Error("failed to execute template", zap.String("template", name), zap.Error(err))
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

package http

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"vefa/internal/core"
	appweb "vefa/web"
)

// page is the data every full page template receives.
type page struct {
	Title  string
	Active string
	View   any
}

var templateFuncs = template.FuncMap{
	"euros":   core.FormatEuros,
	"percent": func(d decimal.Decimal) string { return core.FormatPercent(d) },
	"size":    core.FormatSize,
	"date":    func(d core.Date) string { return d.Long() },
}

// parseTemplates loads the embedded templates.
func parseTemplates() (*template.Template, error) {
	t, err := template.New("vefa").Funcs(templateFuncs).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// renderTemplate executes name into a buffer so that a failing template
// never leaves a half-written response.
func (s *Server) renderTemplate(name string, data any) ([]byte, error) {
	if s.templates == nil {
		return nil, fmt.Errorf("templates not loaded")
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

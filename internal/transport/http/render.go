package http

import (
	"html/template"
	"io"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer parses every page template plus the partials/ fragments
// once at startup. Templates are addressed by file name.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	t, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}

	t, err = t.ParseGlob(filepath.Join(dir, "partials", "*.html"))
	if err != nil {
		return nil, err
	}

	return &TemplateRenderer{templates: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

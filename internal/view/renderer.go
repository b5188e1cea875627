// Package view renders the HTML pages of the application.  Templates are
// embedded into the binary and exposed to Echo through its Renderer
// interface, so handlers call c.Render with a template name and a data map.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every embedded template once at startup.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

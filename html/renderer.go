package html

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// Template is the echo Renderer for the admin pages.
type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

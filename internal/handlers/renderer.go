package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin/render"
)

// TemplateFuncs is available to every page template.
var TemplateFuncs = template.FuncMap{
	// price renders a monetary amount rounded to two decimals with the
	// euro sign. Totals are accumulated in full precision and only
	// rounded here.
	"price": func(v float64) string {
		return fmt.Sprintf("%.2f€", v)
	},
	"mul": func(a float64, b int) float64 {
		return a * float64(b)
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// HTMLRenderer serves a separate template set per page.
type HTMLRenderer struct {
	Templates map[string]*template.Template
}

// Instance returns the render for the named page template.
func (r *HTMLRenderer) Instance(name string, data interface{}) render.Render {
	return render.HTML{
		Template: r.Templates[name],
		Data:     data,
	}
}

// Render writes the HTTP response.
func (r *HTMLRenderer) Render(w http.ResponseWriter, code int, data ...interface{}) error {
	name := data[0].(string)
	templateData := data[1]
	instance := r.Instance(name, templateData)
	return instance.Render(w)
}

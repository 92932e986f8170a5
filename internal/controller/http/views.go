package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/linkpay/webclient/internal/model"
)

//go:embed views/*.html
var viewsFS embed.FS

var templates = template.Must(template.ParseFS(viewsFS, "views/*.html"))

type loginData struct {
	Error string
	Email string
}

type registerData struct {
	Error string
	Form  model.RegisterDTO
}

type homeData struct {
	FullName   string
	Snapshot   *model.AuthSnapshot
	View       *model.OrdersView
	NoBusiness bool
}

// render buffers the template so a late failure does not produce a
// half-written page.
func (c *Controller) render(w http.ResponseWriter, name string, status int, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		c.lg.Errorf("failed to render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

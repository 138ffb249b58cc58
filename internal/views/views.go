// Package views renders the HTML pages of the registration flow.
package views

import (
	"embed"
	"html/template"
	"io"

	"signup/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// RegisterPage is the data rendered by the registration page.
type RegisterPage struct {
	Title    string
	Action   string
	LoginURL string
	Outcome  models.Outcome
}

// HasBanner reports whether a status banner should be shown.
func (p RegisterPage) HasBanner() bool {
	return p.Outcome != models.OutcomeNone
}

// RenderRegister writes the page shell, an optional status banner and the
// registration form to w. All values are escaped by html/template.
func RenderRegister(w io.Writer, page RegisterPage) error {
	if page.Title == "" {
		page.Title = "Register"
	}
	return pages.ExecuteTemplate(w, "register.html", page)
}

// Package view renders the console's screens from templates embedded in the
// binary. Screens are full standalone pages; there is no client-side
// framework, navigation is plain links and form posts.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/orbit-facilities/console/internal/core/domain"
)

//go:embed templates/*.tmpl
var files embed.FS

// Renderer satisfies echo.Renderer.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(files, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// LoginData feeds the login screen.
type LoginData struct {
	Error  string
	Notice string
}

// SignUpData feeds the sign-up screen. Form echoes the submitted values back
// so a validation failure does not wipe the user's input.
type SignUpData struct {
	Error string
	Form  domain.Registration
}

// DashboardData feeds the dashboard screen.
type DashboardData struct {
	Username  string
	Section   string
	Rooms     []domain.Room
	Equipment []domain.Equipment
	Error     string
}

// ErrorData feeds the generic error screen.
type ErrorData struct {
	Status  int
	Message string
}

// Package web holds the HTML views and static assets, embedded into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"school_system/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"date":  func(t time.Time) string { return t.Format(domain.IncidentDateLayout) },
	"title": func(r domain.Role) string { return r.Title() },
}

// Templates parses every view; each is addressed by its file name
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static serves the files under static/
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // the directory is embedded above
	}
	return http.FS(sub)
}

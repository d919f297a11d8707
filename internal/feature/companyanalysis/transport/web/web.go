// Package web embeds the HTML templates of the analysis page.
package web

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexTemplate is the name of the single-page template.
const IndexTemplate = "index.html"

// Templates parses the embedded templates. It panics on a malformed template,
// which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html"))
}

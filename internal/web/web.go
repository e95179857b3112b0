// Package web embute as páginas HTML renderizadas no servidor.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates carrega todas as páginas; cada arquivo define um template com o nome da página
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templatesFS, "templates/*.html")
}

package view

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded stylesheet and other static assets.
// Expects to be mounted at /static/.
func StaticHandler() http.Handler {
	return http.FileServer(http.FS(staticFS))
}

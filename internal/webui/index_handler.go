package webui

import (
	"embed"
	"net/http"
)

//go:embed index.html
var dashboardFS embed.FS

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	page, err := dashboardFS.ReadFile("index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page) // nolint
}

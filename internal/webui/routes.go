package webui

import "net/http"

func SetWebUIRoutes(mux *http.ServeMux, webUI *WebUI) {
	mux.HandleFunc("GET /{$}", webUI.indexHandler)
	mux.HandleFunc("GET /debug/", webUI.debugIndexHandler)
}

package webui

import (
	"macropilot.econdata.org/internal/app"
)

// WebUI serves the embedded dashboard and the debug pages. It sits in
// front of the JSON API, which does the actual work.
type WebUI struct {
	App *app.Application
}

func NewWebUI(application *app.Application) *WebUI {
	return &WebUI{App: application}
}

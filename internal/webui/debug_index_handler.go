package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"macropilot.econdata.org/internal/reference"
)

//go:embed debug_index.html
var debugFS embed.FS

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(debugFS, "debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "config":
		cfg := webUI.App.Config
		cfg.ApiKeys = nil
		cfg.FREDAPIKey = ""
		data = cfg
		title = "Server Configuration"
	case "countries":
		data = countryCatalog()
		title = "Country Catalog"
	case "indicators":
		data = reference.AllIndicators()
		title = "Indicator Catalog"
	case "regions":
		data = regionSummary()
		title = "Regions"
	default:
		data = map[string]string{
			"error": "Please use one of the following: config, countries, indicators, regions.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}

func countryCatalog() []reference.Country {
	codes := reference.AllCountryCodes()
	countries := make([]reference.Country, 0, len(codes))
	for _, code := range codes {
		if country := reference.CountryByCode(code); country != nil {
			countries = append(countries, *country)
		}
	}
	return countries
}

func regionSummary() map[string]int {
	summary := make(map[string]int)
	for _, region := range reference.RegionNames() {
		summary[region] = len(reference.CountriesForRegion(region))
	}
	return summary
}

package service

import (
	"html/template"
	"net/url"
	"strings"

	"contact-info-api/internal/geocoder"
	"contact-info-api/internal/models"
)

const (
	mapScriptPath = "contact-info/contact-info-map.js"
	mapStylePath  = "contact-info/contact-info-map.css"
)

func nl2br(s string) string {
	return strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br/>")
}

func renderWidget(rec *models.AddressRecord, wrapper models.WidgetWrapper, mapsAPIKey string) *models.RenderedWidget {
	out := &models.RenderedWidget{Scripts: []string{}, Styles: []string{}}

	var sb strings.Builder
	sb.WriteString(wrapper.BeforeWidget)

	if rec.Title != "" {
		sb.WriteString(wrapper.BeforeTitle)
		sb.WriteString(template.HTMLEscapeString(rec.Title))
		sb.WriteString(wrapper.AfterTitle)
	}

	if rec.Address != "" {
		if rec.ShowMap && geocoder.HasUsableMap(rec.Lat, rec.Lon) {
			sb.WriteString(string(geocoder.BuildMapFragment(rec.Lat, rec.Lon)))
			out.Scripts = append(out.Scripts, geocoder.MapsScriptURL(mapsAPIKey), mapScriptPath)
			out.Styles = append(out.Styles, mapStylePath)
		}

		sb.WriteString(`<div class="confit-address"><a href="`)
		sb.WriteString(template.HTMLEscapeString(geocoder.BuildMapLink(rec.Address)))
		sb.WriteString(`" target="_blank">`)
		sb.WriteString(nl2br(rec.Address))
		sb.WriteString(`</a></div>`)
	}

	if rec.Phone != "" {
		phone := template.HTMLEscapeString(rec.Phone)
		if wrapper.Mobile {
			sb.WriteString(`<div class="confit-phone"><a href="`)
			sb.WriteString(template.HTMLEscapeString("tel:" + url.PathEscape(rec.Phone)))
			sb.WriteString(`">` + phone + `</a></div>`)
		} else {
			sb.WriteString(`<div class="confit-phone">` + phone + `</div>`)
		}
	}

	if rec.Hours != "" {
		sb.WriteString(`<div class="confit-hours">` + nl2br(rec.Hours) + `</div>`)
	}

	sb.WriteString(wrapper.AfterWidget)
	out.HTML = sb.String()

	return out
}

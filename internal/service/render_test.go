package service

import (
	"testing"

	"contact-info-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderWidget(t *testing.T) {
	wrapper := models.WidgetWrapper{
		BeforeWidget: `<aside class="widget">`,
		AfterWidget:  `</aside>`,
		BeforeTitle:  `<h2>`,
		AfterTitle:   `</h2>`,
	}
	rec := &models.AddressRecord{
		Title:   "Hours & Info",
		Address: "1 Infinite Loop\nCupertino",
		Phone:   "1-202-555-1212",
		Hours:   "9-5\nClosed Sundays",
		ShowMap: true,
		Lat:     37.33,
		Lon:     -122.03,
	}

	out := renderWidget(rec, wrapper, "key123")

	expected := `<aside class="widget"><h2>Hours &amp; Info</h2>` +
		`<div class="contact-map">` +
		`<input type="hidden" class="contact-info-map-lat" value="37.33" />` +
		`<input type="hidden" class="contact-info-map-lon" value="-122.03" />` +
		`<div class="contact-info-map-canvas"></div></div>` +
		`<div class="confit-address"><a href="https://maps.google.com/maps?z=16&amp;q=1+infinite+loop+cupertino" target="_blank">1 Infinite Loop<br/>Cupertino</a></div>` +
		`<div class="confit-phone">1-202-555-1212</div>` +
		`<div class="confit-hours">9-5<br/>Closed Sundays</div>` +
		`</aside>`
	assert.Equal(t, expected, out.HTML)
	assert.Equal(t, []string{"https://maps.googleapis.com/maps/api/js?key=key123", mapScriptPath}, out.Scripts)
	assert.Equal(t, []string{mapStylePath}, out.Styles)
}

func TestRenderWidget_Variants(t *testing.T) {
	tests := []struct {
		name        string
		rec         models.AddressRecord
		wrapper     models.WidgetWrapper
		contains    []string
		notContains []string
	}{
		{
			name:        "sentinel coordinates hide the map",
			rec:         models.AddressRecord{Address: "nowhere", ShowMap: true},
			contains:    []string{`class="confit-address"`},
			notContains: []string{"contact-map"},
		},
		{
			name:        "map switched off",
			rec:         models.AddressRecord{Address: "1 Infinite Loop", Lat: 37.33, Lon: -122.03},
			notContains: []string{"contact-map"},
		},
		{
			name:     "mobile phone link",
			rec:      models.AddressRecord{Phone: "1-202-555-1212"},
			wrapper:  models.WidgetWrapper{Mobile: true},
			contains: []string{`<div class="confit-phone"><a href="tel:1-202-555-1212">1-202-555-1212</a></div>`},
		},
		{
			name:        "empty title and address",
			rec:         models.AddressRecord{Hours: "24/7"},
			wrapper:     models.WidgetWrapper{BeforeTitle: "<h2>"},
			contains:    []string{`<div class="confit-hours">24/7</div>`},
			notContains: []string{"<h2>", "confit-address"},
		},
		{
			name:        "text is escaped",
			rec:         models.AddressRecord{Hours: `<script>alert("x")</script>`},
			contains:    []string{"&lt;script&gt;"},
			notContains: []string{"<script>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderWidget(&tt.rec, tt.wrapper, "")
			for _, s := range tt.contains {
				assert.Contains(t, out.HTML, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out.HTML, s)
			}
		})
	}
}

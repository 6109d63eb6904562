package blocks

import (
	"fmt"
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

// MapsEmbedKey is the Google Maps embed API key injected at startup; the
// map iframe is omitted when it is empty.
var MapsEmbedKey string

var locationTmpl = parse("location", `<section class="block-location variant-{{.Variant}}" style="background-color: {{.Colors.Secondary}};">
  <div class="location-inner">
    <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; font-weight: {{.Fonts.HeadingWeight}}; color: {{.Colors.Text}};">Место проведения</h2>
    <div class="location-pin" style="background-color: {{alpha .Colors.Accent "20"}}; color: {{.Colors.Accent}};"></div>
    <h3 class="venue-name" style="color: {{.Colors.Text}};">{{.VenueName}}</h3>
{{- if .Address}}
    <p class="venue-address" style="color: {{.Colors.TextMuted}};">{{.Address}}</p>
{{- end}}
{{- if .EmbedURL}}
    <div class="map-embed"><iframe src="{{.EmbedURL}}" loading="lazy" referrerpolicy="no-referrer-when-downgrade"></iframe></div>
{{- end}}
    <div class="location-actions">
{{- if .GoogleURL}}
      <a class="location-btn primary" style="background-color: {{.Colors.Accent}}; color: {{.Colors.Secondary}};"{{if .Disabled}} aria-disabled="true"{{else}} href="{{.GoogleURL}}" target="_blank" rel="noopener noreferrer"{{end}}>Google Maps</a>
{{- end}}
{{- if .TwoGisURL}}
      <a class="location-btn outline" style="border-color: {{.Colors.Accent}}; color: {{.Colors.Accent}};"{{if .Disabled}} aria-disabled="true"{{else}} href="{{.TwoGisURL}}" target="_blank" rel="noopener noreferrer"{{end}}>2GIS</a>
{{- end}}
    </div>
  </div>
</section>
`)

// Location renders venue info with map actions. Google Maps resolves an
// explicit mapUrl before falling back to coordinates; 2GIS prefers the firm
// id over a coordinate deep link. Both actions are disabled in preview, and
// the map iframe only embeds outside preview when coordinates exist.
func Location(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context) (template.HTML, error) {
	venue := data.Venue

	venueName := venue.Name
	if venueName == "" {
		venueName = "Место не указано"
	}

	hasCoords := venue.Lat != 0 && venue.Lng != 0

	googleURL := venue.MapURL
	if googleURL == "" && hasCoords {
		googleURL = fmt.Sprintf("https://www.google.com/maps?q=%v,%v", venue.Lat, venue.Lng)
	}

	// The dgis:// scheme would not survive contextual URL filtering,
	// hence the template.URL type on the struct field.
	twoGisURL := ""
	if venue.TwoGisID != "" {
		twoGisURL = "https://2gis.kz/almaty/firm/" + venue.TwoGisID
	} else if hasCoords {
		twoGisURL = fmt.Sprintf("dgis://2gis.kz/routeSearch/to/%v,%v", venue.Lng, venue.Lat)
	}

	embedURL := ""
	if hasCoords && !ctx.IsPreview && MapsEmbedKey != "" {
		embedURL = fmt.Sprintf("https://www.google.com/maps/embed/v1/place?key=%s&q=%v,%v&zoom=15", MapsEmbedKey, venue.Lat, venue.Lng)
	}

	return execute(locationTmpl, struct {
		Variant   string
		VenueName string
		Address   string
		EmbedURL  string
		GoogleURL string
		TwoGisURL template.URL
		Disabled  bool
		Colors    model.ThemeColors
		Fonts     model.ThemeFonts
	}{
		Variant:   variant,
		VenueName: venueName,
		Address:   venue.Address,
		EmbedURL:  embedURL,
		GoogleURL: googleURL,
		TwoGisURL: template.URL(twoGisURL),
		Disabled:  ctx.IsPreview,
		Colors:    cfg.Colors,
		Fonts:     cfg.Fonts,
	})
}

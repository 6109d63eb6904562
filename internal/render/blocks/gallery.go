package blocks

import (
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

var galleryTmpl = parse("gallery", `<section class="block-gallery variant-{{.Variant}}" style="background-color: {{.Colors.Primary}};">
  <div class="gallery-inner">
    <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; font-weight: {{.Fonts.HeadingWeight}}; color: {{.Colors.Text}};">Галерея</h2>
{{- if .Photos}}
    <div class="gallery-grid">
{{- range $i, $url := .Photos}}
      <div class="gallery-item"><img src="{{$url}}" alt="Фото {{inc $i}}" loading="lazy"></div>
{{- end}}
    </div>
{{- else}}
    <p class="gallery-empty" style="color: {{.Colors.TextMuted}};">Фотографии будут добавлены позже</p>
{{- end}}
  </div>
</section>
`)

// Gallery renders the photo grid or its empty-state message.
func Gallery(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context) (template.HTML, error) {
	return execute(galleryTmpl, struct {
		Variant string
		Photos  []string
		Colors  model.ThemeColors
		Fonts   model.ThemeFonts
	}{
		Variant: variant,
		Photos:  data.Photos.Gallery,
		Colors:  cfg.Colors,
		Fonts:   cfg.Fonts,
	})
}

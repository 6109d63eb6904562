package blocks

import (
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

var heroTmpl = parse("hero", `<section class="block-hero variant-{{.Variant}}" style="background-color: {{.Colors.Primary}};{{if .HeroPhoto}} background-image: url('{{.HeroPhoto}}'); background-size: cover; background-position: center;{{end}}">
{{- if .Decoration.CornerOrnaments}}
  <div class="corner-ornament top-left" style="border-color: {{.Colors.Accent}};"></div>
  <div class="corner-ornament top-right" style="border-color: {{.Colors.Accent}};"></div>
  <div class="corner-ornament bottom-left" style="border-color: {{.Colors.Accent}};"></div>
  <div class="corner-ornament bottom-right" style="border-color: {{.Colors.Accent}};"></div>
{{- end}}
  <div class="hero-content">
    <p class="hero-overline" style="color: {{.Colors.TextMuted}};">Приглашение</p>
    <h1 class="hero-names" style="font-family: '{{.Fonts.Heading}}'; font-weight: {{.Fonts.HeadingWeight}}; color: {{.Colors.Text}};">{{.Names}}</h1>
    <div class="hero-divider" style="background-color: {{.Colors.Accent}};"></div>
    <p class="hero-date" style="color: {{.Colors.TextMuted}};">{{.Date}}</p>
{{- if .Time}}
    <p class="hero-time" style="color: {{.Colors.TextMuted}};">{{.Time}}</p>
{{- end}}
  </div>
{{- if not .IsPreview}}
  <div class="scroll-indicator" style="border-color: {{.Colors.Accent}};"><span style="background-color: {{.Colors.Accent}};"></span></div>
{{- end}}
</section>
`)

// Hero shows the celebrated names and the formatted date. Corner ornaments
// render only when the theme asks for them; there is no guest
// personalization at this level.
func Hero(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context) (template.HTML, error) {
	date := ""
	if data.Date != "" {
		date = render.FormatDate(data.Date)
	}

	heroPhoto := ""
	if variant == "photo-bg" {
		heroPhoto = data.Photos.Hero
	}

	return execute(heroTmpl, struct {
		Variant    string
		Names      string
		Date       string
		Time       string
		HeroPhoto  string
		IsPreview  bool
		Colors     model.ThemeColors
		Fonts      model.ThemeFonts
		Decoration model.ThemeDecoration
	}{
		Variant:    variant,
		Names:      data.Names.Combined(),
		Date:       date,
		Time:       data.Time,
		HeroPhoto:  heroPhoto,
		IsPreview:  ctx.IsPreview,
		Colors:     cfg.Colors,
		Fonts:      cfg.Fonts,
		Decoration: cfg.Decoration,
	})
}

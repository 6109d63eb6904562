package blocks

import (
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

var footerTmpl = parse("footer", `<section class="block-footer variant-{{.Variant}}" style="background-color: {{.Colors.Primary}};">
  <div class="footer-inner">
{{- if .Hashtag}}
    <p class="footer-hashtag" style="color: {{.Colors.Accent}};">{{.Hashtag}}</p>
{{- end}}
    <p class="footer-waiting" style="font-family: '{{.Fonts.Heading}}'; color: {{.Colors.Text}};">Күтеміз!</p>
    <div class="footer-ornament" style="color: {{.Colors.Accent}};"><span class="line" style="background-color: {{alpha .Colors.Accent "40"}};"></span><span class="heart"></span><span class="line" style="background-color: {{alpha .Colors.Accent "40"}};"></span></div>
    <p class="footer-names" style="color: {{.Colors.TextMuted}};">{{.Names}}</p>
    <p class="footer-attribution" style="color: {{.Colors.TextMuted}};">Создано на <a href="https://shaq.kz" target="_blank" rel="noopener noreferrer" style="color: {{.Colors.Accent}};">Shaq</a></p>
  </div>
</section>
`)

// Footer closes the page with the combined names, the hashtag when the
// variant asks for it, and the fixed attribution line.
func Footer(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context) (template.HTML, error) {
	hashtag := ""
	if variant == "with-hashtag" {
		hashtag = data.Hashtag
	}

	return execute(footerTmpl, struct {
		Variant string
		Hashtag string
		Names   string
		Colors  model.ThemeColors
		Fonts   model.ThemeFonts
	}{
		Variant: variant,
		Hashtag: hashtag,
		Names:   data.Names.Combined(),
		Colors:  cfg.Colors,
		Fonts:   cfg.Fonts,
	})
}

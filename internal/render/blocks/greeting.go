package blocks

import (
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

// Built-in copy used when the event has no greeting text of its own.
const (
	genericHonorific   = "Құрметті қонақ"
	defaultGreetingOne = "Қуанышты сәтті бірге бөлісуге шақырамыз!"
	defaultGreetingKz  = "Құрметті қонақтар, сіздерді біздің тойымызға шақырамыз!"
	defaultGreetingRu  = "Уважаемые гости, приглашаем вас на наше торжество!"
)

var greetingTmpl = parse("greeting", `<section class="block-greeting variant-{{.Variant}}" style="background-color: {{.Colors.Secondary}};">
  <div class="greeting-inner">
    <h2 class="greeting-name" style="font-family: '{{.Fonts.Heading}}'; font-weight: {{.Fonts.HeadingWeight}}; color: {{.Colors.Text}};">{{.DisplayName}}!</h2>
{{- if .Bilingual}}
{{- if .GreetingKz}}
    <p class="greeting-text" style="color: {{.Colors.Text}};">{{.GreetingKz}}</p>
{{- end}}
{{- if and .GreetingKz .GreetingRu}}
    <div class="greeting-divider" style="background-color: {{.Colors.Accent}};"></div>
{{- end}}
{{- if .GreetingRu}}
    <p class="greeting-text" style="color: {{.Colors.Text}};">{{.GreetingRu}}</p>
{{- end}}
{{- else}}
    <p class="greeting-text" style="color: {{.Colors.Text}};">{{.SingleText}}</p>
{{- end}}
{{- if .ShowDefault}}
    <p class="greeting-default" style="color: {{.Colors.TextMuted}};">{{.DefaultKz}}<br><br>{{.DefaultRu}}</p>
{{- end}}
  </div>
</section>
`)

// Greeting addresses the guest by name when personalized. The bilingual
// variant shows both languages with a divider; other variants fall back
// russian-first, then kazakh, then built-in copy. An event with no greeting
// text at all gets the bilingual placeholder.
func Greeting(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context) (template.HTML, error) {
	displayName := ctx.GuestName
	if displayName == "" {
		displayName = genericHonorific
	}

	single := data.GreetingRu
	if single == "" {
		single = data.GreetingKz
	}
	if single == "" {
		single = defaultGreetingOne
	}

	return execute(greetingTmpl, struct {
		Variant     string
		DisplayName string
		Bilingual   bool
		GreetingKz  string
		GreetingRu  string
		SingleText  string
		ShowDefault bool
		DefaultKz   string
		DefaultRu   string
		Colors      model.ThemeColors
		Fonts       model.ThemeFonts
	}{
		Variant:     variant,
		DisplayName: displayName,
		Bilingual:   variant == "bilingual",
		GreetingKz:  data.GreetingKz,
		GreetingRu:  data.GreetingRu,
		SingleText:  single,
		ShowDefault: data.GreetingKz == "" && data.GreetingRu == "",
		DefaultKz:   defaultGreetingKz,
		DefaultRu:   defaultGreetingRu,
		Colors:      cfg.Colors,
		Fonts:       cfg.Fonts,
	})
}

package blocks

import (
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/countdown"
	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

type countdownUnit struct {
	Value string
	Label string
}

var countdownTmpl = parse("countdown", `<section class="block-countdown variant-{{.Variant}}" style="background-color: {{.Colors.Secondary}};"{{if .Live}} data-countdown-date="{{.Date}}" data-countdown-time="{{.Time}}"{{end}}>
  <div class="countdown-inner">
{{- if .Past}}
    <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; color: {{.Colors.Text}};">Событие состоялось!</h2>
    <p class="countdown-thanks" style="color: {{.Colors.TextMuted}};">Спасибо, что были с нами</p>
{{- else}}
    <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; font-weight: {{.Fonts.HeadingWeight}}; color: {{.Colors.Text}};">До события осталось</h2>
    <div class="countdown-grid">
{{- range .Units}}
      <div class="countdown-unit{{if eq $.Variant "boxed"}} boxed{{end}}" style="{{if eq $.Variant "boxed"}}border-color: {{alpha $.Colors.Accent "40"}}; background-color: {{$.Colors.Primary}};{{end}}">
        <span class="countdown-number{{if eq $.Variant "large-number"}} large{{end}}" style="color: {{$.Colors.Accent}};">{{.Value}}</span>
        <span class="countdown-label" style="color: {{$.Colors.TextMuted}};">{{.Label}}</span>
      </div>
{{- end}}
    </div>
{{- end}}
  </div>
</section>
`)

// Countdown renders the four unit boxes, or the "event has occurred"
// message for a genuinely past event. Outside preview mode, a live
// (non-placeholder) countdown carries data attributes so the page script
// can recompute it once per second.
func Countdown(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context) (template.HTML, error) {
	return countdownAt(data, cfg, variant, ctx, countdown.Until(data.Date, data.Time))
}

func countdownAt(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context, left countdown.Result) (template.HTML, error) {
	units := []countdownUnit{
		{Value: itoa(left.Days), Label: "дней"},
		{Value: pad2(left.Hours), Label: "часов"},
		{Value: pad2(left.Minutes), Label: "минут"},
		{Value: pad2(left.Seconds), Label: "секунд"},
	}

	return execute(countdownTmpl, struct {
		Variant string
		Past    bool
		Live    bool
		Date    string
		Time    string
		Units   []countdownUnit
		Colors  model.ThemeColors
		Fonts   model.ThemeFonts
	}{
		Variant: variant,
		Past:    left.IsPast && !left.IsPlaceholder,
		Live:    !ctx.IsPreview && !left.IsPlaceholder && !left.IsPast,
		Date:    data.Date,
		Time:    data.Time,
		Units:   units,
		Colors:  cfg.Colors,
		Fonts:   cfg.Fonts,
	})
}

package blocks

import (
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

var programTmpl = parse("program", `<section class="block-program variant-{{.Variant}}" style="background-color: {{.Colors.Primary}};">
  <div class="program-inner">
{{- if .Items}}
    <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; font-weight: {{.Fonts.HeadingWeight}}; color: {{.Colors.Text}};">Программа вечера</h2>
    <div class="timeline">
      <div class="timeline-line" style="background-color: {{alpha .Colors.Accent "40"}};"></div>
{{- range .Items}}
      <div class="timeline-item">
        <div class="timeline-time" style="background-color: {{$.Colors.Secondary}}; border-color: {{$.Colors.Accent}}; color: {{$.Colors.Accent}};">{{.Time}}</div>
        <div class="timeline-body">
          <h3 class="timeline-title" style="color: {{$.Colors.Text}};">{{.Title}}</h3>
{{- if .Desc}}
          <p class="timeline-desc" style="color: {{$.Colors.TextMuted}};">{{.Desc}}</p>
{{- end}}
        </div>
      </div>
{{- end}}
    </div>
{{- else}}
    <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; color: {{.Colors.Text}};">Программа</h2>
    <p class="program-empty" style="color: {{.Colors.TextMuted}};">Программа будет добавлена позже</p>
{{- end}}
  </div>
</section>
`)

// Program renders the ordered event timeline, or its empty-state line when
// there is no program yet.
func Program(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context) (template.HTML, error) {
	return execute(programTmpl, struct {
		Variant string
		Items   []model.ProgramItem
		Colors  model.ThemeColors
		Fonts   model.ThemeFonts
	}{
		Variant: variant,
		Items:   data.Program,
		Colors:  cfg.Colors,
		Fonts:   cfg.Fonts,
	})
}

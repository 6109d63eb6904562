package blocks

import (
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

type detailCard struct {
	Icon  string
	Label string
	Value string
	Sub   string
}

var detailsTmpl = parse("details", `<section class="block-details variant-{{.Variant}}" style="background-color: {{.Colors.Primary}};">
  <div class="details-inner">
    <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; font-weight: {{.Fonts.HeadingWeight}}; color: {{.Colors.Text}};">Детали</h2>
    <div class="details-grid">
{{- range .Cards}}
      <div class="detail-card card-{{$.CardStyle}}" style="background-color: {{$.Colors.Secondary}};{{if eq $.CardStyle "bordered"}} border-color: {{alpha $.Colors.Accent "30"}};{{end}}">
        <div class="detail-icon icon-{{.Icon}}" style="background-color: {{alpha $.Colors.Accent "20"}}; color: {{$.Colors.Accent}};"></div>
        <div>
          <p class="detail-label" style="color: {{$.Colors.TextMuted}};">{{.Label}}</p>
          <p class="detail-value" style="color: {{$.Colors.Text}};">{{.Value}}</p>
{{- if .Sub}}
          <p class="detail-sub" style="color: {{$.Colors.TextMuted}};">{{.Sub}}</p>
{{- end}}
        </div>
      </div>
{{- end}}
    </div>
  </div>
</section>
`)

// Details renders one card per populated field. The dress-code card is
// omitted entirely when absent, so the card count follows the data.
func Details(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context) (template.HTML, error) {
	date := "Не указана"
	if data.Date != "" {
		date = render.FormatDate(data.Date)
	}
	tm := data.Time
	if tm == "" {
		tm = "Не указано"
	}
	venueName := data.Venue.Name
	if venueName == "" {
		venueName = "Не указано"
	}

	var gathering string
	if data.GatheringTime != "" {
		gathering = "Сбор гостей: " + data.GatheringTime
	}

	cards := []detailCard{
		{Icon: "calendar", Label: "Дата", Value: date},
		{Icon: "clock", Label: "Время", Value: tm, Sub: gathering},
		{Icon: "map-pin", Label: "Место", Value: venueName, Sub: data.Venue.Address},
	}
	if data.DressCode != "" {
		cards = append(cards, detailCard{Icon: "shirt", Label: "Дресс-код", Value: data.DressCode})
	}

	return execute(detailsTmpl, struct {
		Variant   string
		Cards     []detailCard
		CardStyle string
		Colors    model.ThemeColors
		Fonts     model.ThemeFonts
	}{
		Variant:   variant,
		Cards:     cards,
		CardStyle: cfg.Decoration.CardStyle,
		Colors:    cfg.Colors,
		Fonts:     cfg.Fonts,
	})
}

// Package blocks holds one renderer per invitation block type. Every
// renderer is a pure function of (data, theme, variant, context): colors,
// fonts and spacing come from the theme alone, so a theme swap restyles
// every block without touching the data.
package blocks

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

func itoa(n int) string { return strconv.Itoa(n) }
func pad2(n int) string { return fmt.Sprintf("%02d", n) }

var funcs = template.FuncMap{
	// alpha appends a hex alpha suffix to a theme color, e.g. "#C9A86A" +
	// "40" for a 25% tint.
	"alpha":      func(color, suffix string) string { return color + suffix },
	"inc":        func(i int) int { return i + 1 },
	"pad2":       pad2,
	"formatDate": render.FormatDate,
	"deadline":   render.FormatDeadline,
}

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

func execute(t *template.Template, v any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return template.HTML(buf.String()), nil
}

var stubTmpl = parse("stub", `<div class="block-stub">Блок «{{.}}» в разработке</div>
`)

// Render dispatches one block to its renderer. state only concerns the
// RSVP block; every other renderer ignores it. The intro block is consumed
// at page level and renders nothing inline; unknown types degrade to a
// small stub rather than failing.
func Render(block model.BlockConfig, data model.EventData, cfg model.ThemeConfig, ctx render.Context, state State) (template.HTML, error) {
	switch block.Type {
	case model.BlockHero:
		return Hero(data, cfg, block.Variant, ctx)
	case model.BlockGreeting:
		return Greeting(data, cfg, block.Variant, ctx)
	case model.BlockDetails:
		return Details(data, cfg, block.Variant, ctx)
	case model.BlockCountdown:
		return Countdown(data, cfg, block.Variant, ctx)
	case model.BlockProgram:
		return Program(data, cfg, block.Variant, ctx)
	case model.BlockLocation:
		return Location(data, cfg, block.Variant, ctx)
	case model.BlockGallery:
		return Gallery(data, cfg, block.Variant, ctx)
	case model.BlockRSVP:
		return RSVP(data, cfg, block.Variant, ctx, state)
	case model.BlockFooter:
		return Footer(data, cfg, block.Variant, ctx)
	case model.BlockIntro:
		return "", nil
	default:
		return execute(stubTmpl, string(block.Type))
	}
}

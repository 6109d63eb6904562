// Package templates renders whole invitations as single designed pages.
// Unlike the block strategy, a template owns the full page layout and its
// own stylesheet; the event data and theme flow into it but the block
// configuration is ignored.
package templates

import (
	"html/template"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
	"github.com/Sumatoha/shaq-web/internal/render/blocks"
)

type renderFunc func(data model.EventData, cfg model.ThemeConfig, ctx render.Context, state blocks.State) (template.HTML, error)

// Every selectable id resolves to a renderer. Ids without a dedicated
// design fall back to classic-elegant until one is built.
var registry = map[string]renderFunc{
	"classic-elegant":    ClassicElegant,
	"horizontal-story":   ClassicElegant,
	"typewriter-reveal":  ClassicElegant,
	"light-switch":       ClassicElegant,
	"card-flip":          ClassicElegant,
	"parallax-cinematic": ClassicElegant,
	"minimal-modern":     ClassicElegant,
	"magazine-layout":    ClassicElegant,
	"kazakh-ornamental":  ClassicElegant,
}

// Info describes a template for the editor's picker.
type Info struct {
	Name        string
	Description string
	Preview     string
}

var infos = map[string]Info{
	"classic-elegant":    {Name: "Классическая элегантность", Description: "Традиционный вертикальный скролл с конвертом и орнаментами", Preview: "/templates/classic-elegant.jpg"},
	"horizontal-story":   {Name: "Горизонтальная история", Description: "Свайп влево-вправо как в сторис", Preview: "/templates/horizontal-story.jpg"},
	"typewriter-reveal":  {Name: "Печатная машинка", Description: "Текст появляется как будто печатается", Preview: "/templates/typewriter-reveal.jpg"},
	"light-switch":       {Name: "Выключатель", Description: "Тёмная тема, можно \"включить свет\" дёрнув за шнур", Preview: "/templates/light-switch.jpg"},
	"card-flip":          {Name: "Переворот карточек", Description: "Секции переворачиваются как карточки", Preview: "/templates/card-flip.jpg"},
	"parallax-cinematic": {Name: "Кинематограф", Description: "Глубокий параллакс, кинематографичный эффект", Preview: "/templates/parallax-cinematic.jpg"},
	"minimal-modern":     {Name: "Минимал модерн", Description: "Чистый дизайн, много воздуха, тонкие анимации", Preview: "/templates/minimal-modern.jpg"},
	"magazine-layout":    {Name: "Журнальный стиль", Description: "Layout как в журнале с разными размерами секций", Preview: "/templates/magazine-layout.jpg"},
	"kazakh-ornamental":  {Name: "Қазақ өрнегі", Description: "Богатые казахские орнаменты и узоры", Preview: "/templates/kazakh-ornamental.jpg"},
}

// Known reports whether the id is a selectable template.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// List returns the picker metadata keyed by template id.
func List() map[string]Info {
	out := make(map[string]Info, len(infos))
	for id, info := range infos {
		out[id] = info
	}
	return out
}

// Render draws the full invitation with the named template. An unknown id
// silently renders classic-elegant rather than failing the page.
func Render(id string, data model.EventData, cfg model.ThemeConfig, ctx render.Context, state blocks.State) (template.HTML, error) {
	fn, ok := registry[id]
	if !ok {
		fn = ClassicElegant
	}
	return fn(data, cfg, ctx, state)
}

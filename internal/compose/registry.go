// Package compose owns the block list of an invitation: the registry of
// block types with their display variants, and the ordering/toggling
// operations the editor performs on it.
package compose

import "github.com/Sumatoha/shaq-web/internal/model"

// Variant is one named display style of a block type.
type Variant struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Variants enumerates the allowed variant set per block type. Every block
// renderer's variant switch honors exactly this contract.
var Variants = map[model.BlockType][]Variant{
	model.BlockHero: {
		{Value: "fullscreen-text", Label: "Текст на весь экран"},
		{Value: "photo-bg", Label: "Фото на фоне"},
		{Value: "split-screen", Label: "Разделённый"},
	},
	model.BlockIntro: {
		{Value: "envelope", Label: "Конверт"},
		{Value: "swipe-up", Label: "Свайп вверх"},
		{Value: "none", Label: "Без заставки"},
	},
	model.BlockGreeting: {
		{Value: "bilingual", Label: "Двуязычное"},
		{Value: "single-lang", Label: "Одноязычное"},
		{Value: "with-photo", Label: "С фото"},
	},
	model.BlockDetails: {
		{Value: "cards", Label: "Карточки"},
		{Value: "list", Label: "Список"},
		{Value: "icon-grid", Label: "Иконки в сетке"},
	},
	model.BlockCountdown: {
		{Value: "minimal", Label: "Минимальный"},
		{Value: "boxed", Label: "В рамках"},
		{Value: "large-number", Label: "Крупные числа"},
	},
	model.BlockProgram: {
		{Value: "timeline", Label: "Таймлайн"},
		{Value: "cards", Label: "Карточки"},
		{Value: "horizontal", Label: "Горизонтальный"},
	},
	model.BlockLocation: {
		{Value: "map-with-button", Label: "Карта + кнопка"},
		{Value: "address-only", Label: "Только адрес"},
	},
	model.BlockGallery: {
		{Value: "grid", Label: "Сетка"},
		{Value: "carousel", Label: "Карусель"},
		{Value: "masonry", Label: "Masonry"},
	},
	model.BlockRSVP: {
		{Value: "full-form", Label: "Полная форма"},
		{Value: "simple-buttons", Label: "Приду / Не приду"},
	},
	model.BlockStory: {
		{Value: "timeline", Label: "Таймлайн"},
		{Value: "slides", Label: "Слайды"},
	},
	model.BlockWishes: {
		{Value: "open-text", Label: "Свободный текст"},
		{Value: "gift-registry", Label: "Реестр подарков"},
	},
	model.BlockDressCode: {
		{Value: "visual-palette", Label: "Цветовая палитра"},
		{Value: "text-only", Label: "Текст"},
	},
	model.BlockBabyInfo: {
		{Value: "photo-stats", Label: "Фото + данные"},
		{Value: "milestone", Label: "Milestone"},
	},
	model.BlockFooter: {
		{Value: "minimal", Label: "Минимальный"},
		{Value: "with-hashtag", Label: "С хэштегом"},
	},
}

// ValidVariant reports whether variant belongs to the block type's set.
func ValidVariant(bt model.BlockType, variant string) bool {
	for _, v := range Variants[bt] {
		if v.Value == variant {
			return true
		}
	}
	return false
}

// DefaultBlocks returns the starter block list for a new event. Wedding-type
// events start with the envelope intro enabled.
func DefaultBlocks(eventType model.EventType) []model.BlockConfig {
	blocks := []model.BlockConfig{
		{Type: model.BlockIntro, Variant: "envelope", Enabled: eventType.TwoPerson()},
		{Type: model.BlockHero, Variant: "fullscreen-text", Enabled: true},
		{Type: model.BlockGreeting, Variant: "bilingual", Enabled: true},
		{Type: model.BlockCountdown, Variant: "boxed", Enabled: true},
		{Type: model.BlockDetails, Variant: "cards", Enabled: true},
		{Type: model.BlockProgram, Variant: "timeline", Enabled: false},
		{Type: model.BlockLocation, Variant: "map-with-button", Enabled: true},
		{Type: model.BlockGallery, Variant: "grid", Enabled: false},
		{Type: model.BlockRSVP, Variant: "full-form", Enabled: true},
		{Type: model.BlockFooter, Variant: "with-hashtag", Enabled: true},
	}
	for i := range blocks {
		blocks[i].Order = i
	}
	return blocks
}

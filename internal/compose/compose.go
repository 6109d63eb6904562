package compose

import (
	"slices"

	"github.com/Sumatoha/shaq-web/internal/model"
)

// Enabled returns the blocks that render, in rendering sequence: enabled
// only, ascending by order, ties kept in input order.
func Enabled(blocks []model.BlockConfig) []model.BlockConfig {
	out := make([]model.BlockConfig, 0, len(blocks))
	for _, b := range blocks {
		if b.Enabled {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b model.BlockConfig) int {
		return a.Order - b.Order
	})
	return out
}

// Reorder returns a new list with the element at from moved to position to,
// every element's Order rewritten to its new index. Out-of-range indices
// return the input unchanged.
func Reorder(blocks []model.BlockConfig, from, to int) []model.BlockConfig {
	if from < 0 || from >= len(blocks) || to < 0 || to >= len(blocks) {
		return blocks
	}

	out := slices.Clone(blocks)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, moved)
	for i := range out {
		out[i].Order = i
	}
	return out
}

// Toggle returns a new list with the enabled flag at index flipped.
// An out-of-range index returns the input unchanged.
func Toggle(blocks []model.BlockConfig, index int) []model.BlockConfig {
	if index < 0 || index >= len(blocks) {
		return blocks
	}
	out := slices.Clone(blocks)
	out[index].Enabled = !out[index].Enabled
	return out
}

// SetVariant returns a new list with the variant at index replaced. The
// caller validates the variant against the registry; this operation does
// not. An out-of-range index returns the input unchanged.
func SetVariant(blocks []model.BlockConfig, index int, variant string) []model.BlockConfig {
	if index < 0 || index >= len(blocks) {
		return blocks
	}
	out := slices.Clone(blocks)
	out[index].Variant = variant
	return out
}

// HasEnabledIntro reports whether the page should gate behind an intro
// splash. The intro block never renders inline.
func HasEnabledIntro(blocks []model.BlockConfig) bool {
	for _, b := range blocks {
		if b.Type == model.BlockIntro && b.Enabled {
			return true
		}
	}
	return false
}

// Package theme resolves a base theme definition plus event-level color
// overrides into the style configuration renderers consume.
package theme

import (
	"fmt"
	"strings"

	"github.com/Sumatoha/shaq-web/internal/model"
)

// Resolve clones base and applies customColors on top. Keys must match a
// ThemeColors field; unknown keys are ignored. base is never mutated.
func Resolve(base model.ThemeConfig, customColors map[string]string) model.ThemeConfig {
	resolved := base
	for key, value := range customColors {
		switch key {
		case "primary":
			resolved.Colors.Primary = value
		case "secondary":
			resolved.Colors.Secondary = value
		case "accent":
			resolved.Colors.Accent = value
		case "accentLight":
			resolved.Colors.AccentLight = value
		case "text":
			resolved.Colors.Text = value
		case "textMuted":
			resolved.Colors.TextMuted = value
		}
	}
	return resolved
}

// FontLinks returns one Google Fonts stylesheet URL per unique font family,
// heading first, then body if distinct.
func FontLinks(cfg model.ThemeConfig) []string {
	families := []string{cfg.Fonts.Heading}
	if cfg.Fonts.Body != cfg.Fonts.Heading {
		families = append(families, cfg.Fonts.Body)
	}

	links := make([]string, 0, len(families))
	for _, family := range families {
		name := strings.ReplaceAll(family, " ", "+")
		links = append(links, fmt.Sprintf("https://fonts.googleapis.com/css2?family=%s:wght@400;500;600;700&display=swap", name))
	}
	return links
}

// CSSVars maps a resolved config onto the CSS custom properties every block
// renderer styles against. A theme swap restyles the whole page through
// these alone.
func CSSVars(cfg model.ThemeConfig) map[string]string {
	borderRadius := "0"
	if cfg.Decoration.ButtonStyle == "rounded" {
		borderRadius = "0.5rem"
	}

	var animationDuration string
	switch cfg.Decoration.AnimationSpeed {
	case "smooth":
		animationDuration = "0.5s"
	case "snappy":
		animationDuration = "0.2s"
	default:
		animationDuration = "0s"
	}

	return map[string]string{
		"--color-primary":      cfg.Colors.Primary,
		"--color-secondary":    cfg.Colors.Secondary,
		"--color-accent":       cfg.Colors.Accent,
		"--color-accent-light": cfg.Colors.AccentLight,
		"--color-text":         cfg.Colors.Text,
		"--color-text-muted":   cfg.Colors.TextMuted,
		"--font-heading":       cfg.Fonts.Heading,
		"--font-body":          cfg.Fonts.Body,
		"--font-heading-weight": cfg.Fonts.HeadingWeight,
		"--font-body-weight":   cfg.Fonts.BodyWeight,
		"--border-radius":      borderRadius,
		"--animation-duration": animationDuration,
	}
}

// InlineStyle renders CSSVars as a deterministic style attribute value,
// ordered for stable output.
func InlineStyle(cfg model.ThemeConfig) string {
	vars := CSSVars(cfg)
	order := []string{
		"--color-primary", "--color-secondary", "--color-accent",
		"--color-accent-light", "--color-text", "--color-text-muted",
		"--font-heading", "--font-body", "--font-heading-weight",
		"--font-body-weight", "--border-radius", "--animation-duration",
	}

	var b strings.Builder
	for _, key := range order {
		fmt.Fprintf(&b, "%s: %s; ", key, vars[key])
	}
	return strings.TrimSpace(b.String())
}

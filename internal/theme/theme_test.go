package theme

import (
	"strings"
	"testing"

	"github.com/Sumatoha/shaq-web/internal/model"
)

func baseConfig() model.ThemeConfig {
	return model.ThemeConfig{
		Colors: model.ThemeColors{
			Primary:     "#FDFBF7",
			Secondary:   "#F5EFE6",
			Accent:      "#C9A86A",
			AccentLight: "#E5D5B0",
			Text:        "#2B2B2B",
			TextMuted:   "#8A8578",
		},
		Fonts: model.ThemeFonts{
			Heading:       "Playfair Display",
			Body:          "Inter",
			HeadingWeight: "500",
			BodyWeight:    "400",
		},
		Decoration: model.ThemeDecoration{
			CornerOrnaments: true,
			DividerStyle:    "diamond",
			BorderStyle:     "double",
			CardStyle:       "bordered",
			ButtonStyle:     "rounded",
			AnimationSpeed:  "smooth",
		},
	}
}

func TestResolveOverridesAccent(t *testing.T) {
	base := baseConfig()

	got := Resolve(base, map[string]string{"accent": "#ABCDEF"})

	if got.Colors.Accent != "#ABCDEF" {
		t.Errorf("accent = %q, want %q", got.Colors.Accent, "#ABCDEF")
	}
	if base.Colors.Accent != "#C9A86A" {
		t.Errorf("base mutated: accent = %q", base.Colors.Accent)
	}

	// Everything except the overridden key must equal the base.
	got.Colors.Accent = base.Colors.Accent
	if got != base {
		t.Errorf("resolve changed more than the accent: %+v", got)
	}
}

func TestResolveIgnoresUnknownKeys(t *testing.T) {
	base := baseConfig()

	got := Resolve(base, map[string]string{"sparkle": "#FF00FF", "background": "#000"})
	if got != base {
		t.Errorf("unknown keys changed the config: %+v", got)
	}
}

func TestResolveNilOverrides(t *testing.T) {
	base := baseConfig()
	if got := Resolve(base, nil); got != base {
		t.Errorf("nil overrides changed the config: %+v", got)
	}
}

func TestFontLinksDistinctFamilies(t *testing.T) {
	links := FontLinks(baseConfig())
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if !strings.Contains(links[0], "family=Playfair+Display:") {
		t.Errorf("heading link first, got %q", links[0])
	}
	if !strings.Contains(links[1], "family=Inter:") {
		t.Errorf("body link second, got %q", links[1])
	}
}

func TestFontLinksDedup(t *testing.T) {
	cfg := baseConfig()
	cfg.Fonts.Body = cfg.Fonts.Heading

	links := FontLinks(cfg)
	if len(links) != 1 {
		t.Errorf("got %d links, want 1 for a shared family", len(links))
	}
}

func TestCSSVars(t *testing.T) {
	vars := CSSVars(baseConfig())

	if vars["--color-accent"] != "#C9A86A" {
		t.Errorf("--color-accent = %q", vars["--color-accent"])
	}
	if vars["--border-radius"] != "0.5rem" {
		t.Errorf("--border-radius = %q, want 0.5rem for rounded buttons", vars["--border-radius"])
	}
	if vars["--animation-duration"] != "0.5s" {
		t.Errorf("--animation-duration = %q, want 0.5s for smooth", vars["--animation-duration"])
	}
}

func TestCSSVarsSharpNoAnimation(t *testing.T) {
	cfg := baseConfig()
	cfg.Decoration.ButtonStyle = "sharp"
	cfg.Decoration.AnimationSpeed = "none"

	vars := CSSVars(cfg)
	if vars["--border-radius"] != "0" {
		t.Errorf("--border-radius = %q, want 0", vars["--border-radius"])
	}
	if vars["--animation-duration"] != "0s" {
		t.Errorf("--animation-duration = %q, want 0s", vars["--animation-duration"])
	}
}

func TestInlineStyleStable(t *testing.T) {
	a := InlineStyle(baseConfig())
	b := InlineStyle(baseConfig())
	if a != b {
		t.Error("inline style is not deterministic")
	}
	if !strings.HasPrefix(a, "--color-primary: #FDFBF7;") {
		t.Errorf("unexpected ordering: %q", a)
	}
}

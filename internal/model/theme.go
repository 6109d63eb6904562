package model

type ThemeColors struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	AccentLight string `json:"accentLight"`
	Text        string `json:"text"`
	TextMuted   string `json:"textMuted"`
}

type ThemeFonts struct {
	Heading       string `json:"heading"`
	Body          string `json:"body"`
	HeadingWeight string `json:"headingWeight"`
	BodyWeight    string `json:"bodyWeight"`
}

type ThemeDecoration struct {
	CornerOrnaments bool   `json:"cornerOrnaments"`
	DividerStyle    string `json:"dividerStyle"`   // diamond, line, dots, none
	BorderStyle     string `json:"borderStyle"`    // double, single, none
	CardStyle       string `json:"cardStyle"`      // bordered, shadow, flat
	ButtonStyle     string `json:"buttonStyle"`    // sharp, rounded
	AnimationSpeed  string `json:"animationSpeed"` // smooth, snappy, none
}

type ThemeAssets struct {
	CornerSvg  string `json:"cornerSvg,omitempty"`
	DividerSvg string `json:"dividerSvg,omitempty"`
	PatternBg  string `json:"patternBg,omitempty"`
}

// ThemeConfig is the sole source of visual truth for every renderer.
type ThemeConfig struct {
	Colors     ThemeColors     `json:"colors"`
	Fonts      ThemeFonts      `json:"fonts"`
	Decoration ThemeDecoration `json:"decoration"`
	Assets     ThemeAssets     `json:"assets"`
}

type Theme struct {
	ID                  string      `json:"id"`
	Slug                string      `json:"slug"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	PreviewURL          string      `json:"previewUrl"`
	Tier                string      `json:"tier"` // free, standard, premium
	SupportedEventTypes []EventType `json:"supportedEventTypes"`
	Config              ThemeConfig `json:"config"`
}

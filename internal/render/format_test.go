package render

import "testing"

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-06-15"); got != "15 июня 2025 г." {
		t.Errorf("got %q", got)
	}
	if got := FormatDate("2030-01-01"); got != "1 января 2030 г." {
		t.Errorf("got %q", got)
	}
}

func TestFormatDateInvalid(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "2025-13-40", "15.06.2025"} {
		if got := FormatDate(in); got != NoDateText {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, NoDateText)
		}
	}
}

func TestFormatDeadline(t *testing.T) {
	if got := FormatDeadline("2025-06-01"); got != "1 июня" {
		t.Errorf("got %q", got)
	}
	if got := FormatDeadline("garbage"); got != "" {
		t.Errorf("invalid deadline should be empty, got %q", got)
	}
}

func TestContextCanRSVP(t *testing.T) {
	cases := []struct {
		name string
		ctx  Context
		want bool
	}{
		{"both slugs", Context{EventSlug: "a", GuestSlug: "b"}, true},
		{"missing guest slug", Context{EventSlug: "a"}, false},
		{"missing event slug", Context{GuestSlug: "b"}, false},
		{"preview", Context{EventSlug: "a", GuestSlug: "b", IsPreview: true}, false},
	}
	for _, c := range cases {
		if got := c.ctx.CanRSVP(); got != c.want {
			t.Errorf("%s: CanRSVP() = %v, want %v", c.name, got, c.want)
		}
	}
}

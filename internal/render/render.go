// Package render turns an event document plus a resolved theme into
// invitation HTML. Two strategies exist: the composable block pipeline
// (render/blocks) and monolithic full-page templates (render/templates).
// Both read the same inputs and must agree on output for the same data.
package render

// Context carries guest personalization and render-mode flags into either
// strategy. Renderers never mutate it.
type Context struct {
	GuestName   string
	EventSlug   string
	GuestSlug   string
	TableNumber *int
	IsPreview   bool
}

// CanRSVP reports whether this render may offer a submittable RSVP form.
// Both slugs are required to address the submission; preview never submits.
func (c Context) CanRSVP() bool {
	return !c.IsPreview && c.EventSlug != "" && c.GuestSlug != ""
}

package blocks

import (
	"context"
	"errors"
	"html/template"
	"sync"

	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
)

// State is the RSVP widget's display state. The transition is one-way:
// form moves to success or declined exactly once and never back.
type State string

const (
	StateForm     State = "form"
	StateSuccess  State = "success"
	StateDeclined State = "declined"
)

// ErrAlreadySubmitted is returned by Widget.Submit after the widget has
// reached a terminal state.
var ErrAlreadySubmitted = errors.New("rsvp already submitted")

// SubmitFunc delivers the guest's answer to the persistence API.
type SubmitFunc func(ctx context.Context, status model.RSVPStatus, guestCount int, wishes string) error

// Widget is the RSVP submission state machine shared by the block and
// template renderers. A failed submit leaves the widget in form state so
// the guest can retry; there is no silent success.
type Widget struct {
	mu    sync.Mutex
	state State
}

func NewWidget() *Widget {
	return &Widget{state: StateForm}
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Submit invokes fn and, only if it succeeds, transitions to the terminal
// state matching status. Submitting from a terminal state is rejected.
func (w *Widget) Submit(ctx context.Context, status model.RSVPStatus, guestCount int, wishes string, fn SubmitFunc) (State, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateForm {
		return w.state, ErrAlreadySubmitted
	}

	if fn != nil {
		if err := fn(ctx, status, guestCount, wishes); err != nil {
			return w.state, err
		}
	}

	if status == model.RSVPDeclined {
		w.state = StateDeclined
	} else {
		w.state = StateSuccess
	}
	return w.state, nil
}

var rsvpTmpl = parse("rsvp", `<section class="block-rsvp variant-{{.Variant}}" style="background-color: {{.Colors.Secondary}};">
  <div class="rsvp-inner">
{{- if .TableNumber}}
    <p class="rsvp-table" style="color: {{.Colors.Accent}};">Ваш стол: {{.TableNumber}}</p>
{{- end}}
{{- if eq .State "form"}}
    <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; font-weight: {{.Fonts.HeadingWeight}}; color: {{.Colors.Text}};">Подтвердите присутствие</h2>
{{- if .Deadline}}
    <p class="rsvp-deadline" style="color: {{.Colors.TextMuted}};">Пожалуйста, ответьте до {{.Deadline}}</p>
{{- end}}
    <form class="rsvp-form" method="post"{{if .Action}} action="{{.Action}}"{{end}}>
{{- if eq .Variant "full-form"}}
{{- if .GuestName}}
      <label class="form-label" style="color: {{.Colors.TextMuted}};">Ваше имя</label>
      <input class="form-input" type="text" name="name" value="{{.GuestName}}" disabled style="color: {{.Colors.Text}}; border-color: {{alpha .Colors.Accent "30"}};">
{{- end}}
      <label class="form-label" style="color: {{.Colors.TextMuted}};">Количество гостей</label>
      <select class="form-select" name="guestCount" style="background-color: {{.Colors.Primary}}; color: {{.Colors.Text}}; border-color: {{alpha .Colors.Accent "30"}};">
{{- range .Counts}}
        <option value="{{.N}}"{{if .Selected}} selected{{end}}>{{.N}} {{.Word}}</option>
{{- end}}
      </select>
      <label class="form-label" style="color: {{.Colors.TextMuted}};">Пожелания (необязательно)</label>
      <textarea class="form-textarea" name="wishes" rows="3" placeholder="Ваши пожелания или особые пожелания по питанию..." style="background-color: {{.Colors.Primary}}; color: {{.Colors.Text}}; border-color: {{alpha .Colors.Accent "30"}};"></textarea>
{{- end}}
      <div class="rsvp-buttons">
        <button class="rsvp-btn accept" type="submit" name="status" value="confirmed"{{if .Disabled}} disabled{{end}} style="background-color: {{.Colors.Accent}}; color: {{.Colors.Secondary}};">Приду</button>
        <button class="rsvp-btn decline" type="submit" name="status" value="declined"{{if .Disabled}} disabled{{end}} style="border-color: {{.Colors.TextMuted}}; color: {{.Colors.TextMuted}};">Не смогу</button>
      </div>
    </form>
{{- else}}
    <div class="rsvp-result">
      <div class="rsvp-check" style="background-color: {{alpha .Colors.Accent "20"}}; color: {{.Colors.Accent}};"></div>
      <h2 class="section-title" style="font-family: '{{.Fonts.Heading}}'; color: {{.Colors.Text}};">Рахмет!</h2>
      <p style="color: {{.Colors.TextMuted}};">{{.ResultText}}</p>
    </div>
{{- end}}
  </div>
</section>
`)

type rsvpCount struct {
	N        int
	Word     string
	Selected bool
}

func guestCountOptions(selected int) []rsvpCount {
	words := map[int]string{1: "гость", 2: "гостя", 3: "гостя", 4: "гостя", 5: "гостей"}
	out := make([]rsvpCount, 0, 5)
	for n := 1; n <= 5; n++ {
		out = append(out, rsvpCount{N: n, Word: words[n], Selected: n == selected})
	}
	return out
}

// RSVP renders the widget in the given state. Without a full
// personalization context the form renders but cannot be submitted.
func RSVP(data model.EventData, cfg model.ThemeConfig, variant string, ctx render.Context, state State) (template.HTML, error) {
	action := ""
	if ctx.CanRSVP() {
		action = "/i/" + ctx.EventSlug + "/" + ctx.GuestSlug + "/rsvp"
	}

	resultText := "Мы рады, что вы будете с нами!"
	if state == StateDeclined {
		resultText = "Жаль, что вы не сможете присутствовать. Надеемся увидеть вас в следующий раз!"
	}

	return execute(rsvpTmpl, struct {
		Variant     string
		State       string
		Deadline    string
		Action      string
		GuestName   string
		TableNumber *int
		Counts      []rsvpCount
		Disabled    bool
		ResultText  string
		Colors      model.ThemeColors
		Fonts       model.ThemeFonts
	}{
		Variant:     variant,
		State:       string(state),
		Deadline:    render.FormatDeadline(data.RSVPDeadline),
		Action:      action,
		GuestName:   ctx.GuestName,
		TableNumber: ctx.TableNumber,
		Counts:      guestCountOptions(1),
		Disabled:    !ctx.CanRSVP(),
		ResultText:  resultText,
		Colors:      cfg.Colors,
		Fonts:       cfg.Fonts,
	})
}

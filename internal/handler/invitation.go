package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/invitation"
	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
	"github.com/Sumatoha/shaq-web/internal/render/blocks"
)

// InvitationHandler serves the public invitation pages. Everything it shows
// comes from the persistence API; there is no local state to get stale.
type InvitationHandler struct {
	client   *api.Client
	renderer *invitation.Renderer
	validate *validator.Validate
	logger   *slog.Logger
}

func NewInvitationHandler(client *api.Client, renderer *invitation.Renderer, logger *slog.Logger) *InvitationHandler {
	return &InvitationHandler{
		client:   client,
		renderer: renderer,
		validate: validator.New(),
		logger:   logger,
	}
}

var notFoundTmpl = template.Must(template.New("notfound").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><title>Приглашение не найдено</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 4rem 1rem;">
<h1>Приглашение не найдено</h1>
<p>Проверьте ссылку или обратитесь к организаторам.</p>
</body>
</html>
`))

func (h *InvitationHandler) notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	notFoundTmpl.Execute(w, nil)
}

// Public renders GET /i/{slug}: the anonymous invitation page.
func (h *InvitationHandler) Public(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	inv, err := h.client.PublicInvitation(r.Context(), slug)
	if err != nil {
		if api.IsNotFound(err) {
			h.notFound(w)
			return
		}
		h.logger.Error("fetch invitation", "slug", slug, "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}

	ctx := render.Context{EventSlug: slug, IsPreview: r.URL.Query().Get("preview") == "1"}
	page, err := h.renderer.Page(inv, ctx, blocks.StateForm)
	if err != nil {
		h.logger.Error("render invitation", "slug", slug, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// Guest renders GET /i/{slug}/{guestSlug}: the personalized page.
func (h *InvitationHandler) Guest(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	guestSlug := r.PathValue("guestSlug")

	inv, err := h.client.PublicInvitationWithGuest(r.Context(), slug, guestSlug)
	if err != nil {
		if api.IsNotFound(err) {
			h.notFound(w)
			return
		}
		h.logger.Error("fetch invitation", "slug", slug, "guest", guestSlug, "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}

	page, err := h.renderer.GuestPage(inv, guestSlug, false, blocks.StateForm)
	if err != nil {
		h.logger.Error("render invitation", "slug", slug, "guest", guestSlug, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// SubmitRSVP handles the invitation form post and re-renders the page in
// the resulting state. A failed upstream submit keeps the form so the guest
// can retry.
func (h *InvitationHandler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	guestSlug := r.PathValue("guestSlug")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	guestCount, _ := strconv.Atoi(r.FormValue("guestCount"))
	if guestCount == 0 {
		guestCount = 1
	}
	rsvp := api.RSVPRequest{
		Status:     model.RSVPStatus(r.FormValue("status")),
		GuestCount: guestCount,
		Wishes:     strings.TrimSpace(r.FormValue("wishes")),
	}
	if err := h.validate.Struct(rsvp); err != nil {
		http.Error(w, "Invalid RSVP", http.StatusBadRequest)
		return
	}

	inv, err := h.client.PublicInvitationWithGuest(r.Context(), slug, guestSlug)
	if err != nil {
		if api.IsNotFound(err) {
			h.notFound(w)
			return
		}
		h.logger.Error("fetch invitation", "slug", slug, "guest", guestSlug, "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}

	state := blocks.StateForm
	if err := h.client.SubmitRSVP(r.Context(), slug, guestSlug, rsvp); err != nil {
		h.logger.Error("submit rsvp", "slug", slug, "guest", guestSlug, "error", err)
	} else if rsvp.Status == model.RSVPDeclined {
		state = blocks.StateDeclined
	} else {
		state = blocks.StateSuccess
	}

	page, err := h.renderer.GuestPage(inv, guestSlug, false, state)
	if err != nil {
		h.logger.Error("render invitation", "slug", slug, "guest", guestSlug, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

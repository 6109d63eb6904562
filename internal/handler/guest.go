package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/auth"
	"github.com/Sumatoha/shaq-web/internal/guestlink"
	"github.com/Sumatoha/shaq-web/internal/model"
)

// GuestHandler backs the editor's guest panel: the RSVP dashboard, guest
// CRUD, and the per-guest share artifacts (personal link, WhatsApp message,
// QR code).
type GuestHandler struct {
	client   *api.Client
	links    *guestlink.Builder
	validate *validator.Validate
	logger   *slog.Logger
}

func NewGuestHandler(client *api.Client, links *guestlink.Builder, logger *slog.Logger) *GuestHandler {
	return &GuestHandler{
		client:   client,
		links:    links,
		validate: validator.New(),
		logger:   logger,
	}
}

// guestView is a guest plus the share links the panel shows.
type guestView struct {
	model.Guest
	PersonalURL string `json:"personalUrl"`
	WhatsAppURL string `json:"whatsappUrl"`
}

func (h *GuestHandler) view(g model.Guest) guestView {
	return guestView{
		Guest:       g,
		PersonalURL: h.links.PersonalURL(g),
		WhatsAppURL: h.links.WhatsAppURL(g),
	}
}

func (h *GuestHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *GuestHandler) upstreamError(w http.ResponseWriter, err error, msg string, args ...any) {
	h.logger.Error(msg, args...)
	if api.IsNotFound(err) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	http.Error(w, "Service unavailable", http.StatusBadGateway)
}

// Dashboard returns the guest list with RSVP stats and share links.
// GET /editor/{id}/guests.
func (h *GuestHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")

	data, err := h.client.Dashboard(r.Context(), ac.Token, eventID)
	if err != nil {
		h.upstreamError(w, err, "guest dashboard", "event", eventID, "error", err)
		return
	}

	views := make([]guestView, 0, len(data.Guests))
	for _, g := range data.Guests {
		views = append(views, h.view(g))
	}
	h.writeJSON(w, map[string]any{"guests": views, "stats": data.Stats})
}

type createGuestRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"max=20"`
}

// Create adds one guest. POST /editor/{id}/guests.
func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")

	var req createGuestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "Invalid guest", http.StatusBadRequest)
		return
	}

	guest, err := h.client.CreateGuest(r.Context(), ac.Token, eventID, model.Guest{Name: req.Name, Phone: req.Phone})
	if err != nil {
		h.upstreamError(w, err, "create guest", "event", eventID, "error", err)
		return
	}
	h.writeJSON(w, h.view(guest))
}

// CreateBulk adds guests from a newline-separated list of names, skipping
// blank lines. POST /editor/{id}/guests/bulk.
func (h *GuestHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")

	var req struct {
		Names string `json:"names"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	var names []string
	for _, line := range strings.Split(req.Names, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		http.Error(w, "No names given", http.StatusBadRequest)
		return
	}

	guests, err := h.client.CreateGuestsBulk(r.Context(), ac.Token, eventID, names)
	if err != nil {
		h.upstreamError(w, err, "bulk create guests", "event", eventID, "error", err)
		return
	}

	views := make([]guestView, 0, len(guests))
	for _, g := range guests {
		views = append(views, h.view(g))
	}
	h.writeJSON(w, views)
}

// Update edits a guest. PUT /editor/{id}/guests/{guestId}.
func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")

	var guest model.Guest
	if err := json.NewDecoder(r.Body).Decode(&guest); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	guest.ID = r.PathValue("guestId")

	updated, err := h.client.UpdateGuest(r.Context(), ac.Token, eventID, guest)
	if err != nil {
		h.upstreamError(w, err, "update guest", "event", eventID, "guest", guest.ID, "error", err)
		return
	}
	h.writeJSON(w, h.view(updated))
}

// Delete removes a guest. DELETE /editor/{id}/guests/{guestId}.
func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")
	guestID := r.PathValue("guestId")

	if err := h.client.DeleteGuest(r.Context(), ac.Token, eventID, guestID); err != nil {
		h.upstreamError(w, err, "delete guest", "event", eventID, "guest", guestID, "error", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// QR serves the guest's personal link as a QR code PNG.
// GET /editor/{id}/guests/{guestId}/qr.png.
func (h *GuestHandler) QR(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")
	guestID := r.PathValue("guestId")

	guests, err := h.client.ListGuests(r.Context(), ac.Token, eventID)
	if err != nil {
		h.upstreamError(w, err, "list guests for qr", "event", eventID, "error", err)
		return
	}

	for _, g := range guests {
		if g.ID != guestID {
			continue
		}
		size, _ := strconv.Atoi(r.URL.Query().Get("size"))
		png, err := h.links.QRPNG(g, size)
		if err != nil {
			h.logger.Error("encode qr", "guest", guestID, "error", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
		return
	}
	http.Error(w, "Guest not found", http.StatusNotFound)
}

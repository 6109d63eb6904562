package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/invitation"
	"github.com/Sumatoha/shaq-web/internal/model"
)

func testTheme() model.ThemeConfig {
	return model.ThemeConfig{
		Colors: model.ThemeColors{
			Primary: "#FFFFFF", Secondary: "#FAF7F2", Accent: "#C9A86A",
			AccentLight: "#E8D9B8", Text: "#2C2C2C", TextMuted: "#8A8A8A",
		},
		Fonts: model.ThemeFonts{
			Heading: "Playfair Display", Body: "Lato",
			HeadingWeight: "600", BodyWeight: "400",
		},
		Decoration: model.ThemeDecoration{
			CornerOrnaments: true, DividerStyle: "diamond",
			CardStyle: "bordered", ButtonStyle: "rounded", AnimationSpeed: "smooth",
		},
	}
}

func publicPayload() model.PublicEventResponse {
	return model.PublicEventResponse{
		ID:        "ev-1",
		Slug:      "aidar-dana",
		EventType: model.EventWedding,
		Data: model.EventData{
			Names: model.EventNames{Person1: "Aidar", Person2: "Dana"},
			Date:  "2026-06-15",
			Time:  "17:00",
			Venue: model.Venue{Name: "Hall", Address: "Abay 10, Almaty"},
		},
		Theme: testTheme(),
		Blocks: []model.BlockConfig{
			{Type: model.BlockHero, Variant: "classic", Enabled: true, Order: 0},
			{Type: model.BlockRSVP, Variant: "full-form", Enabled: true, Order: 1},
		},
	}
}

// newUpstream fakes the persistence API and records RSVP submissions.
func newUpstream(t *testing.T) (*httptest.Server, *[]api.RSVPRequest) {
	t.Helper()
	var submitted []api.RSVPRequest

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/i/aidar-dana", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(publicPayload())
	})
	mux.HandleFunc("GET /api/i/aidar-dana/aliya", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.PublicGuestEventResponse{
			PublicEventResponse: publicPayload(),
			GuestName:           "Алия",
		})
	})
	mux.HandleFunc("POST /api/i/aidar-dana/aliya/rsvp", func(w http.ResponseWriter, r *http.Request) {
		var req api.RSVPRequest
		json.NewDecoder(r.Body).Decode(&req)
		submitted = append(submitted, req)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "event not found"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &submitted
}

func newInvitationHandler(t *testing.T) (*InvitationHandler, *[]api.RSVPRequest) {
	t.Helper()
	upstream, submitted := newUpstream(t)
	client := api.NewClient(api.Config{BaseURL: upstream.URL})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer := invitation.NewRenderer(logger)
	return NewInvitationHandler(client, renderer, logger), submitted
}

func serveInvitation(h *InvitationHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /i/{slug}", h.Public)
	mux.HandleFunc("GET /i/{slug}/{guestSlug}", h.Guest)
	mux.HandleFunc("POST /i/{slug}/{guestSlug}/rsvp", h.SubmitRSVP)
	return mux
}

func TestPublicPage(t *testing.T) {
	h, _ := newInvitationHandler(t)
	mux := serveInvitation(h)

	req := httptest.NewRequest("GET", "/i/aidar-dana", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Aidar") || !strings.Contains(body, "Dana") {
		t.Error("page should show both names")
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestPublicPageNotFound(t *testing.T) {
	h, _ := newInvitationHandler(t)
	mux := serveInvitation(h)

	req := httptest.NewRequest("GET", "/i/missing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "Приглашение не найдено") {
		t.Error("404 page should carry the Russian message")
	}
}

func TestGuestPagePersonalized(t *testing.T) {
	h, _ := newInvitationHandler(t)
	mux := serveInvitation(h)

	req := httptest.NewRequest("GET", "/i/aidar-dana/aliya", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Алия") {
		t.Error("guest page should show the guest name")
	}
	if !strings.Contains(body, `action="/i/aidar-dana/aliya/rsvp"`) {
		t.Error("RSVP form should post to the personal endpoint")
	}
}

func TestSubmitRSVPConfirmed(t *testing.T) {
	h, submitted := newInvitationHandler(t)
	mux := serveInvitation(h)

	form := url.Values{"status": {"confirmed"}, "guestCount": {"3"}, "wishes": {"Бақытты болыңдар!"}}
	req := httptest.NewRequest("POST", "/i/aidar-dana/aliya/rsvp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(*submitted) != 1 {
		t.Fatalf("submitted %d RSVPs, want 1", len(*submitted))
	}
	got := (*submitted)[0]
	if got.Status != model.RSVPConfirmed || got.GuestCount != 3 {
		t.Errorf("submitted = %+v", got)
	}
	if !strings.Contains(rec.Body.String(), "Рахмет") {
		t.Error("confirmed submit should render the success state")
	}
}

func TestSubmitRSVPInvalidStatus(t *testing.T) {
	h, submitted := newInvitationHandler(t)
	mux := serveInvitation(h)

	form := url.Values{"status": {"maybe"}}
	req := httptest.NewRequest("POST", "/i/aidar-dana/aliya/rsvp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(*submitted) != 0 {
		t.Error("invalid status must never reach the upstream")
	}
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/auth"
	"github.com/Sumatoha/shaq-web/internal/guestlink"
	"github.com/Sumatoha/shaq-web/internal/model"
)

func newGuestHandler(t *testing.T) (*GuestHandler, *[][]string) {
	t.Helper()
	var bulkCalls [][]string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events/ev-1/dashboard", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.DashboardData{
			Guests: []model.Guest{
				{ID: "g1", Name: "Алия", Slug: "aidar-dana/aliya", RSVPStatus: model.RSVPConfirmed, GuestCount: 2},
			},
			Stats: model.RSVPStats{Confirmed: 1, TotalGuests: 2},
		})
	})
	mux.HandleFunc("POST /api/events/ev-1/guests/bulk", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Names []string `json:"names"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		bulkCalls = append(bulkCalls, req.Names)
		guests := make([]model.Guest, len(req.Names))
		for i, name := range req.Names {
			guests[i] = model.Guest{ID: name, Name: name}
		}
		json.NewEncoder(w).Encode(guests)
	})
	mux.HandleFunc("GET /api/events/ev-1/guests", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Guest{{ID: "g1", Name: "Алия", Slug: "aidar-dana/aliya"}})
	})

	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	client := api.NewClient(api.Config{BaseURL: upstream.URL})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	links := guestlink.NewBuilder("https://shaq.example.com")
	return NewGuestHandler(client, links, logger), &bulkCalls
}

func guestMux(h *GuestHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /editor/{id}/guests", h.Dashboard)
	mux.HandleFunc("POST /editor/{id}/guests/bulk", h.CreateBulk)
	mux.HandleFunc("GET /editor/{id}/guests/{guestId}/qr.png", h.QR)
	return mux
}

func authed(req *http.Request) *http.Request {
	ctx := auth.WithAuth(context.Background(), auth.AuthContext{SessionID: "s1", Token: "token-1"})
	return req.WithContext(ctx)
}

func TestGuestDashboardIncludesShareLinks(t *testing.T) {
	h, _ := newGuestHandler(t)
	mux := guestMux(h)

	req := authed(httptest.NewRequest("GET", "/editor/ev-1/guests", nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Guests []guestView     `json:"guests"`
		Stats  model.RSVPStats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Guests) != 1 {
		t.Fatalf("guests = %d, want 1", len(resp.Guests))
	}
	g := resp.Guests[0]
	if g.PersonalURL != "https://shaq.example.com/i/aidar-dana/aliya" {
		t.Errorf("PersonalURL = %q", g.PersonalURL)
	}
	if !strings.HasPrefix(g.WhatsAppURL, "https://wa.me/?text=") {
		t.Errorf("WhatsAppURL = %q", g.WhatsAppURL)
	}
	if resp.Stats.Confirmed != 1 {
		t.Errorf("Confirmed = %d, want 1", resp.Stats.Confirmed)
	}
}

func TestGuestBulkSplitsNames(t *testing.T) {
	h, bulkCalls := newGuestHandler(t)
	mux := guestMux(h)

	body := `{"names":"Алия\n\n  Ерлан  \nСания\n"}`
	req := authed(httptest.NewRequest("POST", "/editor/ev-1/guests/bulk", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(*bulkCalls) != 1 {
		t.Fatalf("bulk calls = %d, want 1", len(*bulkCalls))
	}
	got := (*bulkCalls)[0]
	want := []string{"Алия", "Ерлан", "Сания"}
	if len(got) != len(want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGuestBulkEmpty(t *testing.T) {
	h, _ := newGuestHandler(t)
	mux := guestMux(h)

	req := authed(httptest.NewRequest("POST", "/editor/ev-1/guests/bulk", strings.NewReader(`{"names":"  \n\n"}`)))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGuestQRServesPNG(t *testing.T) {
	h, _ := newGuestHandler(t)
	mux := guestMux(h)

	req := authed(httptest.NewRequest("GET", "/editor/ev-1/guests/g1/qr.png", nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want %q", ct, "image/png")
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a PNG")
	}
}

func TestGuestQRUnknownGuest(t *testing.T) {
	h, _ := newGuestHandler(t)
	mux := guestMux(h)

	req := authed(httptest.NewRequest("GET", "/editor/ev-1/guests/nope/qr.png", nil))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

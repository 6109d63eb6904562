package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/session"
)

func sampleEvent() model.Event {
	return model.Event{
		ID:        "ev-1",
		UserID:    "u1",
		Slug:      "aidar-dana",
		Status:    model.StatusDraft,
		EventType: model.EventWedding,
		Data: model.EventData{
			Names: model.EventNames{Person1: "Aidar", Person2: "Dana"},
			Date:  "2026-06-15",
			Time:  "17:00",
		},
		Theme: model.EventThemeRef{ID: "classic-gold"},
		Blocks: []model.BlockConfig{
			{Type: model.BlockHero, Variant: "classic", Enabled: true, Order: 0},
		},
	}
}

type fakeUpstream struct {
	mu          sync.Mutex
	event       model.Event
	plan        string
	updateCalls int
}

func newTestServer(t *testing.T) (*Server, *fakeUpstream) {
	t.Helper()
	up := &fakeUpstream{event: sampleEvent(), plan: "premium"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Login    string `json:"login"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		up.mu.Lock()
		plan := up.plan
		up.mu.Unlock()
		json.NewEncoder(w).Encode(api.AuthResponse{
			Token: "token-1",
			User:  model.User{ID: "u1", Login: req.Login, Plan: plan},
		})
	})
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		up.mu.Lock()
		defer up.mu.Unlock()
		json.NewEncoder(w).Encode([]model.Event{up.event})
	})
	mux.HandleFunc("GET /api/events/ev-1", func(w http.ResponseWriter, r *http.Request) {
		up.mu.Lock()
		defer up.mu.Unlock()
		json.NewEncoder(w).Encode(up.event)
	})
	mux.HandleFunc("PUT /api/events/ev-1", func(w http.ResponseWriter, r *http.Request) {
		var ev model.Event
		json.NewDecoder(r.Body).Decode(&ev)
		up.mu.Lock()
		up.event = ev
		up.updateCalls++
		up.mu.Unlock()
		json.NewEncoder(w).Encode(ev)
	})
	mux.HandleFunc("PUT /api/events/ev-1/publish", func(w http.ResponseWriter, r *http.Request) {
		up.mu.Lock()
		up.event.Status = model.StatusPublished
		ev := up.event
		up.mu.Unlock()
		json.NewEncoder(w).Encode(ev)
	})
	mux.HandleFunc("GET /api/themes", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Theme{{
			ID: "t1", Slug: "classic-gold", Name: "Classic Gold", Tier: "free",
			Config: model.ThemeConfig{Colors: model.ThemeColors{Accent: "#C9A86A"}},
		}, {
			ID: "t2", Slug: "royal-emerald", Name: "Royal Emerald", Tier: "premium",
			Config: model.ThemeConfig{Colors: model.ThemeColors{Accent: "#2E6E5A"}},
		}})
	})
	mux.HandleFunc("GET /api/i/aidar-dana", func(w http.ResponseWriter, r *http.Request) {
		up.mu.Lock()
		ev := up.event
		up.mu.Unlock()
		json.NewEncoder(w).Encode(model.PublicEventResponse{
			ID: ev.ID, Slug: ev.Slug, EventType: ev.EventType,
			Data: ev.Data, Blocks: ev.Blocks,
		})
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})

	upstream := httptest.NewServer(mux)
	t.Cleanup(upstream.Close)

	client := api.NewClient(api.Config{BaseURL: upstream.URL})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(client, Config{PublicURL: "https://shaq.example.com"}, logger)
	client.OnUnauthorized(srv.Sessions().InvalidateToken)
	return srv, up
}

func loggedInCookie(t *testing.T, srv *Server) *http.Cookie {
	t.Helper()
	router := srv.Router()

	form := url.Values{"login": {"aidar@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestEditorRequiresSession(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/editor/ev-1", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want %q", loc, "/login")
	}
}

func TestLoginThenHome(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := loggedInCookie(t, srv)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Aidar &amp; Dana") {
		t.Error("home should list the event")
	}
}

func TestLoginBadPassword(t *testing.T) {
	srv, _ := newTestServer(t)

	form := url.Values{"login": {"aidar@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestEditorUpdateSavePublish(t *testing.T) {
	srv, up := newTestServer(t)
	cookie := loggedInCookie(t, srv)
	router := srv.Router()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.AddCookie(cookie)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do("POST", "/editor/ev-1/data", `{"path":"names.person1","value":"Ерлан"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", rec.Code, rec.Body.String())
	}
	var state struct {
		Event model.Event `json:"event"`
		Dirty bool        `json:"dirty"`
	}
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.Event.Data.Names.Person1 != "Ерлан" {
		t.Errorf("person1 = %q, want %q", state.Event.Data.Names.Person1, "Ерлан")
	}
	if !state.Dirty {
		t.Error("edit should mark the session dirty")
	}

	rec = do("POST", "/editor/ev-1/save", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d", rec.Code)
	}
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.Dirty {
		t.Error("save should clear the dirty flag")
	}
	if up.updateCalls != 1 {
		t.Errorf("updateCalls = %d, want 1", up.updateCalls)
	}

	rec = do("POST", "/editor/ev-1/publish", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("publish status = %d", rec.Code)
	}
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.Event.Status != model.StatusPublished {
		t.Errorf("status = %q, want %q", state.Event.Status, model.StatusPublished)
	}
}

func TestEditorPreviewRendersWorkingCopy(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := loggedInCookie(t, srv)
	router := srv.Router()

	req := httptest.NewRequest("POST", "/editor/ev-1/data", strings.NewReader(`{"path":"names.person1","value":"Санжар"}`))
	req.AddCookie(cookie)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest("GET", "/editor/ev-1/preview", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preview status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Санжар") {
		t.Error("preview should render the unsaved working copy")
	}
}

func TestChangeThemeTierGate(t *testing.T) {
	srv, up := newTestServer(t)
	up.plan = "free"
	cookie := loggedInCookie(t, srv)
	router := srv.Router()

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/editor/ev-1/theme", strings.NewReader(body))
		req.AddCookie(cookie)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do(`{"slug":"royal-emerald"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("premium theme on free plan: status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	rec = do(`{"slug":"classic-gold"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("free theme: status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestChangeThemePremiumPlan(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := loggedInCookie(t, srv)

	req := httptest.NewRequest("POST", "/editor/ev-1/theme", strings.NewReader(`{"slug":"royal-emerald"}`))
	req.AddCookie(cookie)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var state struct {
		Theme model.ThemeConfig `json:"theme"`
	}
	json.Unmarshal(rec.Body.Bytes(), &state)
	if state.Theme.Colors.Accent != "#2E6E5A" {
		t.Errorf("accent = %q, want the new theme's palette", state.Theme.Colors.Accent)
	}
}

func TestPublicInvitationThroughRouter(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/i/aidar-dana", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Aidar") {
		t.Error("public page should show the event names")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	srv, _ := newTestServer(t)
	cookie := loggedInCookie(t, srv)
	router := srv.Router()

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("logout status = %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status after logout = %d, want redirect to login", rec.Code)
	}
}

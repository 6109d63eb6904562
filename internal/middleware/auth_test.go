package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sumatoha/shaq-web/internal/auth"
	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/session"
)

func TestRequireSessionNoCookie(t *testing.T) {
	store := session.NewStore()

	handler := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want %q", loc, "/login")
	}
}

func TestRequireSessionUnknownID(t *testing.T) {
	store := session.NewStore()

	handler := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-session"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestRequireSessionValid(t *testing.T) {
	store := session.NewStore()
	sess := store.Create("token-abc", model.User{ID: "u1", Login: "aidar@example.com", Plan: "premium"})

	var gotAC auth.AuthContext
	handler := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, ok := auth.FromContext(r.Context())
		if !ok {
			t.Fatal("expected AuthContext in request context")
		}
		gotAC = ac
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sess.ID})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotAC.SessionID != sess.ID {
		t.Errorf("SessionID = %q, want %q", gotAC.SessionID, sess.ID)
	}
	if gotAC.Token != "token-abc" {
		t.Errorf("Token = %q, want %q", gotAC.Token, "token-abc")
	}
	if gotAC.User.Login != "aidar@example.com" {
		t.Errorf("User.Login = %q, want %q", gotAC.User.Login, "aidar@example.com")
	}
}

func TestRequireSessionFetchGets401(t *testing.T) {
	store := session.NewStore()

	handler := RequireSession(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("POST", "/editor/e1/data", nil)
	req.Header.Set("X-Requested-With", "fetch")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

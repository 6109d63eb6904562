package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/countdown"
	"github.com/Sumatoha/shaq-web/internal/editor"
	"github.com/Sumatoha/shaq-web/internal/guestlink"
	"github.com/Sumatoha/shaq-web/internal/handler"
	"github.com/Sumatoha/shaq-web/internal/invitation"
	"github.com/Sumatoha/shaq-web/internal/middleware"
	"github.com/Sumatoha/shaq-web/internal/session"
	ws "github.com/Sumatoha/shaq-web/internal/websocket"
)

// Config is what the server needs beyond its dependencies.
type Config struct {
	PublicURL string
}

type Server struct {
	client      *api.Client
	sessions    *session.Store
	manager     *editor.Manager
	hub         *ws.Hub
	invitationH *handler.InvitationHandler
	authH       *handler.AuthHandler
	editorH     *handler.EditorHandler
	guestH      *handler.GuestHandler
	aiH         *handler.AIDesignHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger

	tickerMu sync.Mutex
	tickers  map[string]*countdown.Ticker
}

func New(client *api.Client, cfg Config, logger *slog.Logger) *Server {
	sessions := session.NewStore()
	hub := ws.NewHub(logger.With("component", "websocket"))
	manager := editor.NewManager(client)
	renderer := invitation.NewRenderer(logger.With("component", "render"))
	links := guestlink.NewBuilder(cfg.PublicURL)

	s := &Server{
		client:      client,
		sessions:    sessions,
		manager:     manager,
		hub:         hub,
		invitationH: handler.NewInvitationHandler(client, renderer, logger.With("component", "invitation")),
		authH:       handler.NewAuthHandler(client, sessions, logger.With("component", "auth")),
		editorH:     handler.NewEditorHandler(client, manager, renderer, hub, logger.With("component", "editor")),
		guestH:      handler.NewGuestHandler(client, links, logger.With("component", "guests")),
		aiH:         handler.NewAIDesignHandler(client, logger.With("component", "ai")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
	s.tickers = make(map[string]*countdown.Ticker)

	hub.SetRoomHooks(s.startCountdown, s.stopCountdown)
	return s
}

// Sessions returns the session store for cleanup tasks and the API 401 hook.
func (s *Server) Sessions() *session.Store {
	return s.sessions
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// startCountdown begins streaming countdown frames when the first preview
// pane for an event connects. Without an open editor session for the event,
// or with a placeholder date, nothing streams; the page script counts down
// on its own.
func (s *Server) startCountdown(eventID string) {
	date, tm, ok := s.manager.EventDate(eventID)
	if !ok {
		return
	}

	t := countdown.NewTicker(date, tm, func(res countdown.Result) {
		s.hub.Broadcast(ws.CountdownTick(eventID, res.Days, res.Hours, res.Minutes, res.Seconds))
	})
	if !t.Start() {
		return
	}

	s.tickerMu.Lock()
	s.tickers[eventID] = t
	s.tickerMu.Unlock()
}

// stopCountdown ends the stream when the last pane disconnects.
func (s *Server) stopCountdown(eventID string) {
	s.tickerMu.Lock()
	t, ok := s.tickers[eventID]
	delete(s.tickers, eventID)
	s.tickerMu.Unlock()

	if ok {
		t.Stop()
	}
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no session required)
	outerMux.HandleFunc("GET /login", s.authH.LoginPage)
	outerMux.HandleFunc("POST /login", s.rateLimited(s.authH.Login, middleware.RealIP, 10))
	outerMux.HandleFunc("GET /register", s.authH.RegisterPage)
	outerMux.HandleFunc("POST /register", s.rateLimited(s.authH.Register, middleware.RealIP, 10))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	outerMux.HandleFunc("GET /i/{slug}", s.invitationH.Public)
	outerMux.HandleFunc("GET /i/{slug}/{guestSlug}", s.invitationH.Guest)
	outerMux.HandleFunc("POST /i/{slug}/{guestSlug}/rsvp", s.rateLimited(s.invitationH.SubmitRSVP, middleware.RSVPKey, 5))

	// Protected routes
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	sessionMiddleware := middleware.RequireSession(s.sessions)
	outerMux.Handle("/", sessionMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimited(h http.HandlerFunc, keyFunc func(*http.Request) string, limit int) http.HandlerFunc {
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, limit, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(h).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /logout", s.authH.Logout)

	// Event list and lifecycle
	mux.HandleFunc("GET /{$}", s.editorH.Home)
	mux.HandleFunc("POST /events", s.editorH.CreateEvent)
	mux.HandleFunc("POST /events/{id}/delete", s.editorH.DeleteEvent)

	// Editor
	mux.HandleFunc("GET /editor/{id}", s.editorH.EditorPage)
	mux.HandleFunc("GET /editor/{id}/preview", s.editorH.Preview)
	mux.HandleFunc("POST /editor/{id}/data", s.editorH.UpdateData)
	mux.HandleFunc("POST /editor/{id}/theme", s.editorH.ChangeTheme)
	mux.HandleFunc("POST /editor/{id}/theme/color", s.editorH.UpdateCustomColor)
	mux.HandleFunc("POST /editor/{id}/template", s.editorH.SetTemplate)
	mux.HandleFunc("POST /editor/{id}/blocks/reorder", s.editorH.ReorderBlocks)
	mux.HandleFunc("POST /editor/{id}/blocks/{index}/toggle", s.editorH.ToggleBlock)
	mux.HandleFunc("POST /editor/{id}/blocks/{index}/variant", s.editorH.SetBlockVariant)
	mux.HandleFunc("POST /editor/{id}/ui", s.editorH.UpdateUI)
	mux.HandleFunc("PUT /editor/{id}/seating", s.editorH.UpdateSeating)
	mux.HandleFunc("POST /editor/{id}/save", s.editorH.Save)
	mux.HandleFunc("POST /editor/{id}/publish", s.editorH.Publish)

	// Guests
	mux.HandleFunc("GET /editor/{id}/guests", s.guestH.Dashboard)
	mux.HandleFunc("POST /editor/{id}/guests", s.guestH.Create)
	mux.HandleFunc("POST /editor/{id}/guests/bulk", s.guestH.CreateBulk)
	mux.HandleFunc("PUT /editor/{id}/guests/{guestId}", s.guestH.Update)
	mux.HandleFunc("DELETE /editor/{id}/guests/{guestId}", s.guestH.Delete)
	mux.HandleFunc("GET /editor/{id}/guests/{guestId}/qr.png", s.guestH.QR)

	// AI design assistant
	mux.HandleFunc("GET /editor/{id}/ai", s.aiH.Session)
	mux.HandleFunc("POST /editor/{id}/ai", s.aiH.Generate)
	mux.HandleFunc("DELETE /editor/{id}/ai", s.aiH.Reset)

	// Live preview websocket
	mux.HandleFunc("GET /ws/preview/{id}", ws.HandlePreview(s.hub, s.logger.With("component", "websocket")))
}

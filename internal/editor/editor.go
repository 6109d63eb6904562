// Package editor holds the server-side editing state for one event: the
// working copy of the event, the resolved theme and the dirty flag. Edits
// accumulate in memory and hit the persistence API on save.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/Sumatoha/shaq-web/internal/compose"
	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/theme"
)

// Backend is the slice of the persistence API the editor needs.
type Backend interface {
	GetEvent(ctx context.Context, token, id string) (model.Event, error)
	UpdateEvent(ctx context.Context, token string, event model.Event) (model.Event, error)
	PublishEvent(ctx context.Context, token, id string) (model.Event, error)
	ListThemes(ctx context.Context) ([]model.Theme, error)
}

// Session is one user's working copy of one event.
type Session struct {
	mu      sync.Mutex
	backend Backend
	token   string

	event   model.Event
	themes  []model.Theme
	current model.ThemeConfig

	previewMode string
	activePanel string
	selected    int
	dirty       bool
	loaded      bool
}

func NewSession(backend Backend, token string) *Session {
	return &Session{
		backend:     backend,
		token:       token,
		previewMode: "mobile",
		activePanel: "data",
		selected:    -1,
	}
}

// Load fetches the event and the theme catalog, then resolves the current
// theme config with the event's color overrides. Loading discards any
// unsaved edits.
func (s *Session) Load(ctx context.Context, eventID string) error {
	event, err := s.backend.GetEvent(ctx, s.token, eventID)
	if err != nil {
		return fmt.Errorf("load event: %w", err)
	}
	themes, err := s.backend.ListThemes(ctx)
	if err != nil {
		return fmt.Errorf("load themes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.event = event
	s.themes = themes
	s.current = s.resolveLocked()
	s.dirty = false
	s.loaded = true
	return nil
}

func (s *Session) resolveLocked() model.ThemeConfig {
	for _, t := range s.themes {
		if t.Slug == s.event.Theme.ID {
			return theme.Resolve(t.Config, s.event.Theme.CustomColors)
		}
	}
	return model.ThemeConfig{}
}

// Event returns a copy of the working event.
func (s *Session) Event() model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.event
}

// Theme returns the resolved theme config the preview renders with.
func (s *Session) Theme() model.ThemeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Themes returns the catalog loaded alongside the event.
func (s *Session) Themes() []model.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.themes
}

func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// EnabledBlocks returns the blocks the preview renders, in order.
func (s *Session) EnabledBlocks() []model.BlockConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return compose.Enabled(s.event.Blocks)
}

// UpdateData sets one field of the event data by dot path, e.g.
// "names.person1" or "venue.address". Unknown leaf keys are dropped on the
// way back into the typed struct, matching a lenient form post.
func (s *Session) UpdateData(path string, value any) error {
	if path == "" {
		return fmt.Errorf("update data: empty path")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(s.event.Data)
	if err != nil {
		return fmt.Errorf("update data %s: %w", path, err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("update data %s: %w", path, err)
	}

	setNested(m, strings.Split(path, "."), value)

	raw, err = json.Marshal(m)
	if err != nil {
		return fmt.Errorf("update data %s: %w", path, err)
	}
	var data model.EventData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("update data %s: %w", path, err)
	}

	s.event.Data = data
	s.dirty = true
	return nil
}

func setNested(m map[string]any, keys []string, value any) {
	for _, key := range keys[:len(keys)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = value
}

// ChangeTheme switches to the named theme and clears the color overrides.
// An unknown slug is ignored.
func (s *Session) ChangeTheme(slug string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.themes {
		if t.Slug == slug {
			s.event.Theme = model.EventThemeRef{ID: slug, CustomColors: map[string]string{}}
			s.current = t.Config
			s.dirty = true
			return
		}
	}
}

// UpdateCustomColor overrides one palette color on top of the base theme.
func (s *Session) UpdateCustomColor(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.event.Theme.CustomColors == nil {
		s.event.Theme.CustomColors = map[string]string{}
	}
	s.event.Theme.CustomColors[key] = value
	s.current = s.resolveLocked()
	s.dirty = true
}

// SetTemplate switches the rendering strategy. Empty means blocks.
func (s *Session) SetTemplate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event.Template = id
	s.dirty = true
}

func (s *Session) ReorderBlocks(from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event.Blocks = compose.Reorder(s.event.Blocks, from, to)
	s.dirty = true
}

func (s *Session) ToggleBlock(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event.Blocks = compose.Toggle(s.event.Blocks, index)
	s.dirty = true
}

func (s *Session) SetBlockVariant(index int, variant string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event.Blocks = compose.SetVariant(s.event.Blocks, index, variant)
	s.dirty = true
}

func (s *Session) SelectBlock(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = index
}

func (s *Session) SelectedBlock() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

func (s *Session) SetPreviewMode(mode string) {
	if mode != "desktop" && mode != "mobile" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewMode = mode
}

func (s *Session) PreviewMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewMode
}

func (s *Session) SetActivePanel(panel string) {
	switch panel {
	case "blocks", "data", "theme", "guests", "seating", "ai":
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activePanel = panel
}

func (s *Session) ActivePanel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activePanel
}

func (s *Session) UpdateSeatingTables(tables []model.SeatingTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.event.Seating = tables
	s.dirty = true
}

// Save pushes the working copy upstream and clears the dirty flag.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	event := s.event
	s.mu.Unlock()

	updated, err := s.backend.UpdateEvent(ctx, s.token, event)
	if err != nil {
		return fmt.Errorf("save event: %w", err)
	}

	s.mu.Lock()
	s.event = updated
	s.current = s.resolveLocked()
	s.dirty = false
	s.mu.Unlock()
	return nil
}

// Publish saves first when there are unsaved edits, then flips the event
// live. The returned event carries the published status and slug.
func (s *Session) Publish(ctx context.Context) (model.Event, error) {
	if s.Dirty() {
		if err := s.Save(ctx); err != nil {
			return model.Event{}, err
		}
	}

	s.mu.Lock()
	id := s.event.ID
	s.mu.Unlock()

	published, err := s.backend.PublishEvent(ctx, s.token, id)
	if err != nil {
		return model.Event{}, fmt.Errorf("publish event: %w", err)
	}

	s.mu.Lock()
	s.event = published
	s.mu.Unlock()
	return published, nil
}

// Manager hands out one editor session per login session and event.
type Manager struct {
	mu       sync.Mutex
	backend  Backend
	sessions map[string]*Session
}

func NewManager(backend Backend) *Manager {
	return &Manager{backend: backend, sessions: make(map[string]*Session)}
}

// Open returns the existing editor session for (sessionID, eventID) or
// loads a fresh one.
func (m *Manager) Open(ctx context.Context, sessionID, token, eventID string) (*Session, error) {
	key := sessionID + "/" + eventID

	m.mu.Lock()
	sess, ok := m.sessions[key]
	m.mu.Unlock()
	if ok {
		return sess, nil
	}

	sess = NewSession(m.backend, token)
	if err := sess.Load(ctx, eventID); err != nil {
		return nil, err
	}

	m.mu.Lock()
	if existing, ok := m.sessions[key]; ok {
		sess = existing
	} else {
		m.sessions[key] = sess
	}
	m.mu.Unlock()
	return sess, nil
}

// EventDate returns the working copy's date and time for any open session
// editing the event. The preview countdown stream reads it when the first
// pane for a room connects.
func (m *Manager) EventDate(eventID string) (date, tm string, ok bool) {
	suffix := "/" + eventID
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, sess := range m.sessions {
		if strings.HasSuffix(key, suffix) {
			ev := sess.Event()
			return ev.Data.Date, ev.Data.Time, true
		}
	}
	return "", "", false
}

// Close drops every editor session belonging to the login session.
func (m *Manager) Close(sessionID string) {
	prefix := sessionID + "/"
	m.mu.Lock()
	for key := range m.sessions {
		if strings.HasPrefix(key, prefix) {
			delete(m.sessions, key)
		}
	}
	m.mu.Unlock()
}

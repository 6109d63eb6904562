package handler

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/auth"
	"github.com/Sumatoha/shaq-web/internal/compose"
	"github.com/Sumatoha/shaq-web/internal/editor"
	"github.com/Sumatoha/shaq-web/internal/invitation"
	"github.com/Sumatoha/shaq-web/internal/model"
	"github.com/Sumatoha/shaq-web/internal/render"
	"github.com/Sumatoha/shaq-web/internal/render/blocks"
	ws "github.com/Sumatoha/shaq-web/internal/websocket"
)

// EditorHandler owns the builder UI: the event list, the editor page, and
// the JSON endpoints its panels call. Every mutation goes through the
// in-memory editor session; nothing reaches the persistence API until save.
type EditorHandler struct {
	client   *api.Client
	manager  *editor.Manager
	renderer *invitation.Renderer
	hub      *ws.Hub
	logger   *slog.Logger
}

func NewEditorHandler(client *api.Client, manager *editor.Manager, renderer *invitation.Renderer, hub *ws.Hub, logger *slog.Logger) *EditorHandler {
	return &EditorHandler{
		client:   client,
		manager:  manager,
		renderer: renderer,
		hub:      hub,
		logger:   logger,
	}
}

var eventListTmpl = template.Must(template.New("events").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>Мои приглашения | Shaq</title></head>
<body style="font-family: sans-serif; max-width: 40rem; margin: 2rem auto; padding: 0 1rem;">
<h1>Мои приглашения</h1>
<form method="post" action="/events" style="display: grid; gap: 0.5rem; margin-bottom: 2rem;">
<select name="eventType">
<option value="wedding">Свадьба</option>
<option value="sundet">Сундет той</option>
<option value="tusau">Тусау кесер</option>
<option value="birthday">День рождения</option>
<option value="jubilee">Юбилей</option>
<option value="corporate">Корпоратив</option>
</select>
<input type="text" name="person1" placeholder="Имя" required>
<input type="text" name="person2" placeholder="Имя второго человека (для свадьбы)">
<button type="submit">Создать приглашение</button>
</form>
{{range .Events}}
<div style="border: 1px solid #e5e7eb; border-radius: 0.5rem; padding: 1rem; margin-bottom: 0.75rem;">
<strong>{{.Data.Names.Combined}}</strong> — {{.Status}}
<div style="margin-top: 0.5rem;">
<a href="/editor/{{.ID}}">Редактировать</a>
{{if eq .Status "published"}} · <a href="/i/{{.Slug}}" target="_blank">Открыть</a>{{end}}
<form method="post" action="/events/{{.ID}}/delete" style="display: inline;"><button type="submit">Удалить</button></form>
</div>
</div>
{{else}}
<p>Пока нет приглашений.</p>
{{end}}
</body>
</html>
`))

// Home lists the user's events. GET /.
func (h *EditorHandler) Home(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())

	events, err := h.client.ListEvents(r.Context(), ac.Token)
	if err != nil {
		h.logger.Error("list events", "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	eventListTmpl.Execute(w, map[string]any{"Events": events})
}

// CreateEvent creates a draft with the default block set for its type and
// drops the user into the editor. POST /events.
func (h *EditorHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())

	eventType := model.EventType(r.FormValue("eventType"))
	person1 := strings.TrimSpace(r.FormValue("person1"))
	if person1 == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	event := model.Event{
		EventType: eventType,
		Status:    model.StatusDraft,
		Data: model.EventData{
			Names: model.EventNames{
				Person1: person1,
				Person2: strings.TrimSpace(r.FormValue("person2")),
			},
		},
		Blocks: compose.DefaultBlocks(eventType),
	}

	created, err := h.client.CreateEvent(r.Context(), ac.Token, event)
	if err != nil {
		h.logger.Error("create event", "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}

	http.Redirect(w, r, "/editor/"+created.ID, http.StatusSeeOther)
}

// DeleteEvent removes an event. POST /events/{id}/delete.
func (h *EditorHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ac, _ := auth.FromContext(r.Context())
	id := r.PathValue("id")

	if err := h.client.DeleteEvent(r.Context(), ac.Token, id); err != nil {
		h.logger.Error("delete event", "id", id, "error", err)
		http.Error(w, "Service unavailable", http.StatusBadGateway)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *EditorHandler) open(w http.ResponseWriter, r *http.Request) (*editor.Session, string, bool) {
	ac, _ := auth.FromContext(r.Context())
	eventID := r.PathValue("id")

	sess, err := h.manager.Open(r.Context(), ac.SessionID, ac.Token, eventID)
	if err != nil {
		if api.IsNotFound(err) {
			http.Error(w, "Event not found", http.StatusNotFound)
		} else {
			h.logger.Error("open editor", "event", eventID, "error", err)
			http.Error(w, "Service unavailable", http.StatusBadGateway)
		}
		return nil, "", false
	}
	return sess, eventID, true
}

func (h *EditorHandler) refreshPreview(eventID string) {
	h.hub.Broadcast(ws.PreviewRefresh(eventID, nil))
}

// stateResponse is what every mutation endpoint returns so the panels can
// re-render from the working copy.
type stateResponse struct {
	Event       model.Event       `json:"event"`
	Theme       model.ThemeConfig `json:"theme"`
	Dirty       bool              `json:"dirty"`
	PreviewMode string            `json:"previewMode"`
	ActivePanel string            `json:"activePanel"`
}

func (h *EditorHandler) writeState(w http.ResponseWriter, sess *editor.Session) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stateResponse{
		Event:       sess.Event(),
		Theme:       sess.Theme(),
		Dirty:       sess.Dirty(),
		PreviewMode: sess.PreviewMode(),
		ActivePanel: sess.ActivePanel(),
	})
}

// EditorPage renders the builder shell. GET /editor/{id}.
func (h *EditorHandler) EditorPage(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	editorTmpl.Execute(w, map[string]any{
		"EventID":     eventID,
		"Event":       sess.Event(),
		"Themes":      sess.Themes(),
		"Panels":      []string{"blocks", "data", "theme", "guests", "seating", "ai"},
		"ActivePanel": sess.ActivePanel(),
		"PreviewMode": sess.PreviewMode(),
	})
}

// Preview renders the invitation body from the working copy, preview
// semantics on. The websocket tells open panes when to reload this.
// GET /editor/{id}/preview.
func (h *EditorHandler) Preview(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	event := sess.Event()
	inv := model.PublicEventResponse{
		ID:        event.ID,
		Slug:      event.Slug,
		EventType: event.EventType,
		Data:      event.Data,
		Theme:     sess.Theme(),
		Blocks:    event.Blocks,
		Template:  event.Template,
	}

	page, err := h.renderer.Page(inv, render.Context{EventSlug: event.Slug, IsPreview: true}, blocks.StateForm)
	if err != nil {
		h.logger.Error("render preview", "event", eventID, "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// UpdateData applies one dot-path edit to the working copy.
// POST /editor/{id}/data.
func (h *EditorHandler) UpdateData(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	var req struct {
		Path  string `json:"path"`
		Value any    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := sess.UpdateData(req.Path, req.Value); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.refreshPreview(eventID)
	h.writeState(w, sess)
}

// ChangeTheme switches the base theme and drops color overrides. Themes
// above the free tier need a paid plan. POST /editor/{id}/theme.
func (h *EditorHandler) ChangeTheme(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	var req struct {
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	for _, t := range sess.Themes() {
		if t.Slug == req.Slug && t.Tier != "free" && !auth.IsPremium(r.Context()) {
			http.Error(w, "Theme requires a paid plan", http.StatusForbidden)
			return
		}
	}
	sess.ChangeTheme(req.Slug)

	h.refreshPreview(eventID)
	h.writeState(w, sess)
}

// UpdateCustomColor records one color override on top of the base theme.
// POST /editor/{id}/theme/color.
func (h *EditorHandler) UpdateCustomColor(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	sess.UpdateCustomColor(req.Key, req.Value)

	h.refreshPreview(eventID)
	h.writeState(w, sess)
}

// SetTemplate switches between template rendering and block rendering.
// POST /editor/{id}/template.
func (h *EditorHandler) SetTemplate(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	sess.SetTemplate(req.ID)

	h.refreshPreview(eventID)
	h.writeState(w, sess)
}

// ReorderBlocks moves a block within the list. POST /editor/{id}/blocks/reorder.
func (h *EditorHandler) ReorderBlocks(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	var req struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	sess.ReorderBlocks(req.From, req.To)

	h.refreshPreview(eventID)
	h.writeState(w, sess)
}

// ToggleBlock flips a block on or off. POST /editor/{id}/blocks/{index}/toggle.
func (h *EditorHandler) ToggleBlock(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	sess.ToggleBlock(index)

	h.refreshPreview(eventID)
	h.writeState(w, sess)
}

// SetBlockVariant changes a block's visual variant after validating it
// against the registry. POST /editor/{id}/blocks/{index}/variant.
func (h *EditorHandler) SetBlockVariant(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	var req struct {
		Variant string `json:"variant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	blocksList := sess.Event().Blocks
	if index < 0 || index >= len(blocksList) {
		http.Error(w, "Block index out of range", http.StatusBadRequest)
		return
	}
	if !compose.ValidVariant(blocksList[index].Type, req.Variant) {
		http.Error(w, "Unknown variant", http.StatusBadRequest)
		return
	}
	sess.SetBlockVariant(index, req.Variant)

	h.refreshPreview(eventID)
	h.writeState(w, sess)
}

// UpdateUI records panel, preview mode and block selection. These never
// dirty the event. POST /editor/{id}/ui.
func (h *EditorHandler) UpdateUI(w http.ResponseWriter, r *http.Request) {
	sess, _, ok := h.open(w, r)
	if !ok {
		return
	}

	var req struct {
		ActivePanel   *string `json:"activePanel"`
		PreviewMode   *string `json:"previewMode"`
		SelectedBlock *int    `json:"selectedBlock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if req.ActivePanel != nil {
		sess.SetActivePanel(*req.ActivePanel)
	}
	if req.PreviewMode != nil {
		sess.SetPreviewMode(*req.PreviewMode)
	}
	if req.SelectedBlock != nil {
		sess.SelectBlock(*req.SelectedBlock)
	}

	h.writeState(w, sess)
}

// UpdateSeating replaces the seating tables on the working copy.
// PUT /editor/{id}/seating.
func (h *EditorHandler) UpdateSeating(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	var req struct {
		Tables []model.SeatingTable `json:"tables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	sess.UpdateSeatingTables(req.Tables)

	h.refreshPreview(eventID)
	h.writeState(w, sess)
}

// Save pushes the working copy upstream. POST /editor/{id}/save.
func (h *EditorHandler) Save(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	if err := sess.Save(r.Context()); err != nil {
		h.logger.Error("save event", "event", eventID, "error", err)
		http.Error(w, "Save failed", http.StatusBadGateway)
		return
	}

	h.writeState(w, sess)
}

// Publish saves pending edits and flips the event live.
// POST /editor/{id}/publish.
func (h *EditorHandler) Publish(w http.ResponseWriter, r *http.Request) {
	sess, eventID, ok := h.open(w, r)
	if !ok {
		return
	}

	if _, err := sess.Publish(r.Context()); err != nil {
		h.logger.Error("publish event", "event", eventID, "error", err)
		http.Error(w, "Publish failed", http.StatusBadGateway)
		return
	}

	h.writeState(w, sess)
}

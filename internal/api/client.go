// Package api is the HTTP client for the persistence service. All event,
// guest and theme state lives behind it; this application only renders.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Sumatoha/shaq-web/internal/model"
)

// Config holds the persistence API connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Error carries the upstream status code so callers can branch on 401 and
// 404 without string matching.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	// Called with the rejected token whenever an authenticated request
	// comes back 401, before the error reaches the caller. The session
	// layer hooks this to drop the stale token.
	onUnauthorized func(token string)
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// OnUnauthorized registers the 401 hook. Call before serving traffic; the
// hook runs on request goroutines.
func (c *Client) OnUnauthorized(fn func(token string)) {
	c.onUnauthorized = fn
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if token != "" && c.onUnauthorized != nil {
			c.onUnauthorized(token)
		}
		return &Error{Status: http.StatusUnauthorized, Message: "unauthorized"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "request failed"
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			msg = errResp.Error
		}
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// AuthResponse is returned by both register and login.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type registerRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, login, password, name string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", "", registerRequest{Login: login, Password: password, Name: name}, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, login, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Login: login, Password: password}, &out)
	return out, err
}

func (c *Client) Me(ctx context.Context, token string) (model.User, error) {
	var out model.User
	err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out)
	return out, err
}

func (c *Client) CreateEvent(ctx context.Context, token string, event model.Event) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodPost, "/events", token, event, &out)
	return out, err
}

func (c *Client) ListEvents(ctx context.Context, token string) ([]model.Event, error) {
	var out []model.Event
	err := c.do(ctx, http.MethodGet, "/events", token, nil, &out)
	return out, err
}

func (c *Client) GetEvent(ctx context.Context, token, id string) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(id), token, nil, &out)
	return out, err
}

func (c *Client) UpdateEvent(ctx context.Context, token string, event model.Event) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(event.ID), token, event, &out)
	return out, err
}

func (c *Client) PublishEvent(ctx context.Context, token, id string) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id)+"/publish", token, nil, &out)
	return out, err
}

func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), token, nil, nil)
}

type seatingRequest struct {
	Tables []model.SeatingTable `json:"tables"`
}

func (c *Client) UpdateSeating(ctx context.Context, token, id string, tables []model.SeatingTable) error {
	return c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(id)+"/seating", token, seatingRequest{Tables: tables}, nil)
}

func (c *Client) CreateGuest(ctx context.Context, token, eventID string, guest model.Guest) (model.Guest, error) {
	var out model.Guest
	err := c.do(ctx, http.MethodPost, "/events/"+url.PathEscape(eventID)+"/guests", token, guest, &out)
	return out, err
}

type bulkGuestRequest struct {
	Names []string `json:"names"`
}

func (c *Client) CreateGuestsBulk(ctx context.Context, token, eventID string, names []string) ([]model.Guest, error) {
	var out []model.Guest
	err := c.do(ctx, http.MethodPost, "/events/"+url.PathEscape(eventID)+"/guests/bulk", token, bulkGuestRequest{Names: names}, &out)
	return out, err
}

func (c *Client) ListGuests(ctx context.Context, token, eventID string) ([]model.Guest, error) {
	var out []model.Guest
	err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID)+"/guests", token, nil, &out)
	return out, err
}

func (c *Client) UpdateGuest(ctx context.Context, token, eventID string, guest model.Guest) (model.Guest, error) {
	var out model.Guest
	err := c.do(ctx, http.MethodPut, "/events/"+url.PathEscape(eventID)+"/guests/"+url.PathEscape(guest.ID), token, guest, &out)
	return out, err
}

func (c *Client) DeleteGuest(ctx context.Context, token, eventID, guestID string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventID)+"/guests/"+url.PathEscape(guestID), token, nil, nil)
}

func (c *Client) Dashboard(ctx context.Context, token, eventID string) (model.DashboardData, error) {
	var out model.DashboardData
	err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID)+"/dashboard", token, nil, &out)
	return out, err
}

func (c *Client) ListThemes(ctx context.Context) ([]model.Theme, error) {
	var out []model.Theme
	err := c.do(ctx, http.MethodGet, "/themes", "", nil, &out)
	return out, err
}

func (c *Client) GetTheme(ctx context.Context, slug string) (model.Theme, error) {
	var out model.Theme
	err := c.do(ctx, http.MethodGet, "/themes/"+url.PathEscape(slug), "", nil, &out)
	return out, err
}

func (c *Client) PublicInvitation(ctx context.Context, slug string) (model.PublicEventResponse, error) {
	var out model.PublicEventResponse
	err := c.do(ctx, http.MethodGet, "/i/"+url.PathEscape(slug), "", nil, &out)
	return out, err
}

func (c *Client) PublicInvitationWithGuest(ctx context.Context, slug, guestSlug string) (model.PublicGuestEventResponse, error) {
	var out model.PublicGuestEventResponse
	err := c.do(ctx, http.MethodGet, "/i/"+url.PathEscape(slug)+"/"+url.PathEscape(guestSlug), "", nil, &out)
	return out, err
}

// RSVPRequest is the guest's answer as posted to the persistence API.
type RSVPRequest struct {
	Status     model.RSVPStatus `json:"status" validate:"required,oneof=confirmed declined"`
	GuestCount int              `json:"guestCount" validate:"min=1,max=5"`
	Wishes     string           `json:"wishes" validate:"max=500"`
}

func (c *Client) SubmitRSVP(ctx context.Context, slug, guestSlug string, rsvp RSVPRequest) error {
	return c.do(ctx, http.MethodPost, "/i/"+url.PathEscape(slug)+"/"+url.PathEscape(guestSlug)+"/rsvp", "", rsvp, nil)
}

// AISession is the stored chat history of the AI design assistant.
type AISession struct {
	Messages    []AIMessage `json:"messages"`
	CurrentHTML string      `json:"currentHtml"`
}

type AIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIDesignResult is one assistant turn: the regenerated page and the reply.
type AIDesignResult struct {
	HTML    string `json:"html"`
	Message string `json:"message"`
}

type aiDesignRequest struct {
	Message string `json:"message"`
}

func (c *Client) AISession(ctx context.Context, token, eventID string) (AISession, error) {
	var out AISession
	err := c.do(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID)+"/ai-design", token, nil, &out)
	return out, err
}

func (c *Client) GenerateAIDesign(ctx context.Context, token, eventID, message string) (AIDesignResult, error) {
	var out AIDesignResult
	err := c.do(ctx, http.MethodPost, "/events/"+url.PathEscape(eventID)+"/ai-design", token, aiDesignRequest{Message: message}, &out)
	return out, err
}

func (c *Client) ResetAISession(ctx context.Context, token, eventID string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventID)+"/ai-design", token, nil, nil)
}

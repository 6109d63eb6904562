package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Sumatoha/shaq-web/internal/api"
	"github.com/Sumatoha/shaq-web/internal/session"
)

// AuthHandler proxies login and registration to the persistence API and
// keeps the returned token behind a server-side session cookie. The bearer
// token itself never reaches the browser.
type AuthHandler struct {
	client   *api.Client
	sessions *session.Store
	logger   *slog.Logger
}

func NewAuthHandler(client *api.Client, sessions *session.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{client: client, sessions: sessions, logger: logger}
}

var authTmpl = template.Must(template.New("auth").Parse(`<!DOCTYPE html>
<html lang="ru">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>{{.Title}} | Shaq</title></head>
<body style="font-family: sans-serif; max-width: 24rem; margin: 4rem auto; padding: 0 1rem;">
<h1>{{.Title}}</h1>
{{if .Error}}<p style="color: #b91c1c;">{{.Error}}</p>{{end}}
<form method="post" action="{{.Action}}" style="display: grid; gap: 0.75rem;">
{{if .WithName}}<input type="text" name="name" placeholder="Ваше имя" required>{{end}}
<input type="text" name="login" placeholder="Email или телефон" required>
<input type="password" name="password" placeholder="Пароль" required>
<button type="submit">{{.Title}}</button>
</form>
<p><a href="{{.AltHref}}">{{.AltText}}</a></p>
</body>
</html>
`))

type authPage struct {
	Title    string
	Action   string
	AltHref  string
	AltText  string
	WithName bool
	Error    string
}

func loginPage(errMsg string) authPage {
	return authPage{
		Title:   "Вход",
		Action:  "/login",
		AltHref: "/register",
		AltText: "Нет аккаунта? Зарегистрируйтесь",
		Error:   errMsg,
	}
}

func registerPage(errMsg string) authPage {
	return authPage{
		Title:    "Регистрация",
		Action:   "/register",
		AltHref:  "/login",
		AltText:  "Уже есть аккаунт? Войдите",
		WithName: true,
		Error:    errMsg,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	authTmpl.Execute(w, loginPage(""))
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	authTmpl.Execute(w, registerPage(""))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	login := strings.TrimSpace(r.FormValue("login"))
	password := r.FormValue("password")
	if login == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		authTmpl.Execute(w, loginPage("Заполните все поля"))
		return
	}

	resp, err := h.client.Login(r.Context(), login, password)
	if err != nil {
		if api.IsUnauthorized(err) {
			w.WriteHeader(http.StatusUnauthorized)
			authTmpl.Execute(w, loginPage("Неверный логин или пароль"))
			return
		}
		h.logger.Error("login", "error", err)
		w.WriteHeader(http.StatusBadGateway)
		authTmpl.Execute(w, loginPage("Сервис недоступен, попробуйте позже"))
		return
	}

	h.startSession(w, resp)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	login := strings.TrimSpace(r.FormValue("login"))
	password := r.FormValue("password")
	if name == "" || login == "" || password == "" {
		w.WriteHeader(http.StatusBadRequest)
		authTmpl.Execute(w, registerPage("Заполните все поля"))
		return
	}

	resp, err := h.client.Register(r.Context(), login, password, name)
	if err != nil {
		h.logger.Error("register", "error", err)
		w.WriteHeader(http.StatusBadGateway)
		authTmpl.Execute(w, registerPage("Не удалось создать аккаунт"))
		return
	}

	h.startSession(w, resp)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, resp api.AuthResponse) {
	sess := h.sessions.Create(resp.Token, resp.User)
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

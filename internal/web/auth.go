package web

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/auth"
	"github.com/erazemk/boxtrack/internal/metrics"
	"github.com/erazemk/boxtrack/internal/model"
)

type loginPage struct {
	PageData
	Next      string
	FirstName string
	LastName  string
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &loginPage{
		PageData: PageData{Title: "Log in"},
		Next:     r.URL.Query().Get("next"),
	})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	firstName := r.FormValue("first_name")
	lastName := r.FormValue("last_name")
	next := r.FormValue("next")

	page := &loginPage{
		PageData:  PageData{Title: "Log in"},
		Next:      next,
		FirstName: firstName,
		LastName:  lastName,
	}

	if firstName == "" || lastName == "" {
		page.Error = "Enter your first and last name."
		s.Templates.Render(w, "login.html", page)
		return
	}

	ok, err := s.Store.IsUser(r.Context(), firstName, lastName)
	if err != nil {
		s.Logger.Error("failed to check user", zap.Error(err))
		page.Error = "Login failed. Please try again."
		s.Templates.RenderStatus(w, http.StatusInternalServerError, "login.html", page)
		return
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		s.Logger.Warn("login failed",
			zap.String("first_name", firstName),
			zap.String("last_name", lastName),
			zap.String("remote", r.RemoteAddr))
		page.Error = "Name not recognised."
		s.Templates.Render(w, "login.html", page)
		return
	}

	user := model.User{FirstName: firstName, LastName: lastName}
	token, err := auth.GenerateToken(s.Secret, user, s.sessionTTL())
	if err != nil {
		s.Logger.Error("failed to generate session token", zap.Error(err))
		page.Error = "Login failed. Please try again."
		s.Templates.RenderStatus(w, http.StatusInternalServerError, "login.html", page)
		return
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	s.Logger.Info("user logged in", zap.String("user", user.FullName()))
	s.setSessionCookie(w, token)
	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

// Logout handles GET and POST /logout. The session token is revoked so a
// copied cookie stops working too.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.CookieName); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.Secret, cookie.Value); err == nil && claims.ID != "" {
			expires := time.Now().Add(s.sessionTTL())
			if claims.ExpiresAt != nil {
				expires = claims.ExpiresAt.Time
			}
			if err := s.Store.RevokeToken(r.Context(), claims.ID, expires); err != nil {
				s.Logger.Error("failed to revoke session", zap.Error(err))
			} else {
				s.Logger.Info("user logged out", zap.String("user", claims.User().FullName()))
			}
		}
	}

	s.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

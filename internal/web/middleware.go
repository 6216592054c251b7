package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/auth"
	"github.com/erazemk/boxtrack/internal/metrics"
)

type webContextKey string

const webClaimsKey webContextKey = "webclaims"

// SessionMiddleware validates the session cookie, checks revocation, and adds
// claims to the context. Requests without a valid session are sent to the
// login page, which returns them here afterwards.
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := s.sessionClaims(r)
		if err != nil {
			s.Logger.Warn("invalid session cookie", zap.Error(err), zap.String("remote", r.RemoteAddr))
			s.clearSessionCookie(w)
		}
		if claims == nil {
			http.Redirect(w, r, loginURL(r.URL.RequestURI()), http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), webClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

var errUserRemoved = errors.New("session user no longer exists")

// sessionClaims returns the claims of a valid, unrevoked session cookie
// whose user still exists.
// A missing cookie returns nil claims and no error.
func (s *Server) sessionClaims(r *http.Request) (*auth.Claims, error) {
	cookie, err := r.Cookie(s.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	claims, err := auth.ValidateToken(s.Secret, cookie.Value)
	if err != nil {
		return nil, err
	}

	revoked, err := s.Store.IsTokenRevoked(r.Context(), claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, nil
	}

	// A removed user loses access immediately, not when the token expires.
	ok, err := s.Store.IsUser(r.Context(), claims.FirstName, claims.LastName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errUserRemoved
	}
	return claims, nil
}

// setSessionCookie stores a signed session token in the cookie.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		// Lax so that opening a scanned QR link from another app keeps the session.
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.sessionTTL().Seconds()),
	})
}

// clearSessionCookie empties the session cookie and expires it immediately.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return auth.DefaultTokenExpiry
}

// GetWebClaims retrieves the session claims from web context.
func GetWebClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(webClaimsKey).(*auth.Claims)
	return claims
}

// loginURL returns the login page URL that returns to next afterwards.
func loginURL(next string) string {
	if next == "" || next == "/" {
		return "/login"
	}
	return "/login?next=" + url.QueryEscape(next)
}

// safeNext returns next if it is a local path, otherwise "/".
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	// Never bounce back into the login or logout pages.
	if u.Path == "/login" || u.Path == "/logout" {
		return "/"
	}
	return next
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests with method, path, status, and
// duration, and records the request latency metric.
func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			elapsed := time.Since(start)

			metrics.ObserveRequest(r.Method, rec.status, elapsed)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.RequestURI()),
				zap.Int("status", rec.status),
				zap.Duration("duration", elapsed.Round(time.Millisecond)),
			)
		})
	}
}

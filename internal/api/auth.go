package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/auth"
	"github.com/erazemk/boxtrack/internal/metrics"
	"github.com/erazemk/boxtrack/internal/model"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Store  Store
	Secret string
	TTL    time.Duration
	Logger *zap.Logger
}

type loginRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FirstName == "" || req.LastName == "" {
		jsonError(w, http.StatusBadRequest, "first_name and last_name required")
		return
	}

	ok, err := h.Store.IsUser(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		h.Logger.Error("failed to check user", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		h.Logger.Warn("api login failed",
			zap.String("first_name", req.FirstName),
			zap.String("last_name", req.LastName),
			zap.String("remote", r.RemoteAddr))
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user := model.User{FirstName: req.FirstName, LastName: req.LastName}
	token, err := auth.GenerateToken(h.Secret, user, h.TTL)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	h.Logger.Info("user logged in via api", zap.String("user", user.FullName()))
	jsonResponse(w, http.StatusOK, loginResponse{Token: token})
}

// Logout handles POST /api/auth/logout. The bearer token is revoked until it
// would have expired.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	expires := time.Now().Add(h.TTL)
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}
	if err := h.Store.RevokeToken(r.Context(), claims.ID, expires); err != nil {
		h.Logger.Error("failed to revoke token", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.Logger.Info("user logged out via api", zap.String("user", claims.User().FullName()))
	w.WriteHeader(http.StatusNoContent)
}

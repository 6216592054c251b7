package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/metrics"
	"github.com/erazemk/boxtrack/internal/model"
)

// recentLimit caps the log entries returned with a box.
const recentLimit = 20

// BoxesHandler handles box endpoints.
type BoxesHandler struct {
	Store  Store
	Logger *zap.Logger
}

type boxResponse struct {
	model.Box
	Recent []model.LogEntry `json:"recent"`
}

type checkinRequest struct {
	Location string `json:"location"`
}

func boxVars(r *http.Request) (string, int64, bool) {
	vars := mux.Vars(r)
	num, err := strconv.ParseInt(vars["num"], 10, 64)
	if err != nil || vars["size"] == "" {
		return "", 0, false
	}
	return vars["size"], num, true
}

// List handles GET /api/boxes.
func (h *BoxesHandler) List(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.Store.ListBoxes(r.Context())
	if err != nil {
		h.Logger.Error("failed to list boxes", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if boxes == nil {
		boxes = []model.Box{}
	}
	jsonResponse(w, http.StatusOK, boxes)
}

// Get handles GET /api/boxes/{size}/{num}.
func (h *BoxesHandler) Get(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		jsonError(w, http.StatusNotFound, "box not found")
		return
	}

	box, err := h.Store.GetBox(r.Context(), size, num)
	if err != nil {
		storeError(w, h.Logger, "failed to get box", err)
		return
	}

	recent, err := h.Store.ListLogs(r.Context(), size, num, recentLimit)
	if err != nil {
		h.Logger.Error("failed to list box history", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if recent == nil {
		recent = []model.LogEntry{}
	}

	jsonResponse(w, http.StatusOK, boxResponse{Box: *box, Recent: recent})
}

// Checkout handles POST /api/boxes/{size}/{num}/checkout.
func (h *BoxesHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		jsonError(w, http.StatusNotFound, "box not found")
		return
	}
	claims := GetClaims(r.Context())

	entry, err := h.Store.Checkout(r.Context(), size, num, claims.User())
	if err != nil {
		storeError(w, h.Logger, "failed to check out box", err)
		return
	}

	metrics.MovesTotal.WithLabelValues(metrics.Checkout).Inc()
	h.Logger.Info("box checked out via api",
		zap.String("user", claims.User().FullName()),
		zap.String("size", size),
		zap.Int64("num", num))
	jsonResponse(w, http.StatusOK, entry)
}

// Checkin handles POST /api/boxes/{size}/{num}/checkin.
func (h *BoxesHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		jsonError(w, http.StatusNotFound, "box not found")
		return
	}
	claims := GetClaims(r.Context())

	var req checkinRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Store.Checkin(r.Context(), size, num, claims.User(), req.Location)
	if err != nil {
		storeError(w, h.Logger, "failed to check in box", err)
		return
	}

	metrics.MovesTotal.WithLabelValues(metrics.Checkin).Inc()
	h.Logger.Info("box checked in via api",
		zap.String("user", claims.User().FullName()),
		zap.String("size", size),
		zap.Int64("num", num),
		zap.String("location", entry.Status))
	jsonResponse(w, http.StatusOK, entry)
}

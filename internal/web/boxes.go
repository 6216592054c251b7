package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/metrics"
	"github.com/erazemk/boxtrack/internal/model"
	"github.com/erazemk/boxtrack/internal/store"
)

// historyLimit caps the entries shown on a box's history page.
const historyLimit = 100

// boxVars extracts the box size and number from the route.
func boxVars(r *http.Request) (string, int64, bool) {
	vars := mux.Vars(r)
	num, err := strconv.ParseInt(vars["num"], 10, 64)
	if err != nil || vars["size"] == "" {
		return "", 0, false
	}
	return vars["size"], num, true
}

// boxURL builds "/<route>/<size>/<num>".
func boxURL(route, size string, num int64) string {
	return fmt.Sprintf("/%s/%s/%d", route, url.PathEscape(size), num)
}

// boxNotFound renders the 404 page for an unknown box.
func (s *Server) boxNotFound(w http.ResponseWriter, r *http.Request, size string, num int64) {
	s.Templates.RenderStatus(w, http.StatusNotFound, "error.html", &errorPage{
		PageData: s.pageData(r, "Unknown box"),
		Message:  fmt.Sprintf("There is no box %s %d.", size, num),
	})
}

// Scan handles GET /scan/{size}/{num}. It sends an away box to check-in and
// any other box to checkout.
func (s *Server) Scan(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	away, err := s.Store.IsAway(r.Context(), size, num)
	if errors.Is(err, store.ErrBoxNotFound) {
		s.boxNotFound(w, r, size, num)
		return
	}
	if err != nil {
		s.serverError(w, r, "failed to look up box status", err)
		return
	}

	route := metrics.Checkout
	if away {
		route = metrics.Checkin
	}
	metrics.ScansTotal.WithLabelValues(route).Inc()
	http.Redirect(w, r, boxURL(route, size, num), http.StatusFound)
}

type checkinPage struct {
	PageData
	Box      *model.Box
	Action   string
	Location string
}

// CheckinPage handles GET /checkin/{size}/{num}.
func (s *Server) CheckinPage(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	box, err := s.Store.GetBox(r.Context(), size, num)
	if errors.Is(err, store.ErrBoxNotFound) {
		s.boxNotFound(w, r, size, num)
		return
	}
	if err != nil {
		s.serverError(w, r, "failed to get box", err)
		return
	}

	s.Templates.Render(w, "checkin.html", &checkinPage{
		PageData: s.pageData(r, "Check in"),
		Box:      box,
		Action:   boxURL("checkin", size, num),
	})
}

// CheckinSubmit handles POST /checkin/{size}/{num}.
func (s *Server) CheckinSubmit(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	claims := GetWebClaims(r.Context())
	location := r.FormValue("location")

	entry, err := s.Store.Checkin(r.Context(), size, num, claims.User(), location)
	switch {
	case errors.Is(err, model.ErrEmptyLocation), errors.Is(err, model.ErrAwayLocation):
		page := &checkinPage{
			PageData: s.pageData(r, "Check in"),
			Box:      &model.Box{Size: size, Number: num, Status: model.StatusAway},
			Action:   boxURL("checkin", size, num),
			Location: location,
		}
		if errors.Is(err, model.ErrAwayLocation) {
			page.Error = `"away" is not a location. Enter where the box is now.`
		} else {
			page.Error = "Enter where the box is now."
		}
		s.Templates.RenderStatus(w, http.StatusBadRequest, "checkin.html", page)
		return
	case errors.Is(err, store.ErrBoxNotFound):
		s.boxNotFound(w, r, size, num)
		return
	case err != nil:
		s.serverError(w, r, "failed to check in box", err)
		return
	}

	metrics.MovesTotal.WithLabelValues(metrics.Checkin).Inc()
	s.Logger.Info("box checked in",
		zap.String("user", claims.User().FullName()),
		zap.String("size", size),
		zap.Int64("num", num),
		zap.String("location", entry.Status))
	http.Redirect(w, r, "/confirm", http.StatusSeeOther)
}

// Checkout handles GET and POST /checkout/{size}/{num}. Both commit the
// move immediately.
func (s *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		s.NotFound(w, r)
		return
	}
	claims := GetWebClaims(r.Context())

	_, err := s.Store.Checkout(r.Context(), size, num, claims.User())
	if errors.Is(err, store.ErrBoxNotFound) {
		s.boxNotFound(w, r, size, num)
		return
	}
	if err != nil {
		s.serverError(w, r, "failed to check out box", err)
		return
	}

	metrics.MovesTotal.WithLabelValues(metrics.Checkout).Inc()
	s.Logger.Info("box checked out",
		zap.String("user", claims.User().FullName()),
		zap.String("size", size),
		zap.Int64("num", num))
	http.Redirect(w, r, "/confirm", http.StatusSeeOther)
}

// Confirm handles GET /confirm.
func (s *Server) Confirm(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "confirm.html", &struct{ PageData }{s.pageData(r, "Done")})
}

// History handles GET /history/{size}/{num}.
func (s *Server) History(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		s.NotFound(w, r)
		return
	}

	box, err := s.Store.GetBox(r.Context(), size, num)
	if errors.Is(err, store.ErrBoxNotFound) {
		s.boxNotFound(w, r, size, num)
		return
	}
	if err != nil {
		s.serverError(w, r, "failed to get box", err)
		return
	}

	entries, err := s.Store.ListLogs(r.Context(), size, num, historyLimit)
	if err != nil {
		s.serverError(w, r, "failed to list box history", err)
		return
	}

	s.Templates.Render(w, "history.html", &struct {
		PageData
		Box     *model.Box
		Entries []model.LogEntry
	}{
		PageData: s.pageData(r, box.Label()),
		Box:      box,
		Entries:  entries,
	})
}

// WhereIs handles GET /whereis/{size}/{num}. It answers with the bare status
// and needs no session.
func (s *Server) WhereIs(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	status, err := s.Store.GetStatus(r.Context(), size, num)
	if errors.Is(err, store.ErrBoxNotFound) {
		http.Error(w, "box not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.Logger.Error("failed to get box status", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(status)); err != nil {
		s.Logger.Error("failed to write status response", zap.Error(err))
	}
}

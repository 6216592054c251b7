package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/metrics"
	webembed "github.com/erazemk/boxtrack/web"
)

// boxPath is the route suffix identifying one box.
const boxPath = "/{size}/{num:[0-9]+}"

// NewRouter creates the web page router with all page routes registered.
func NewRouter(opts Options) (*mux.Router, error) {
	if opts.Store == nil {
		return nil, errors.New("web: store required")
	}
	if opts.Secret == "" {
		return nil, errors.New("web: session secret required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.CookieName == "" {
		opts.CookieName = "ert-sm"
	}

	templates, err := LoadTemplates(opts.Logger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:      opts.Store,
		Templates:  templates,
		Logger:     opts.Logger,
		Secret:     opts.Secret,
		CookieName: opts.CookieName,
		SessionTTL: opts.SessionTTL,
		BaseURL:    opts.BaseURL,
	}

	r := mux.NewRouter()
	session := s.SessionMiddleware

	// Static assets and metrics.
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS())))).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Public routes.
	r.HandleFunc("/login", s.LoginPage).Methods(http.MethodGet)
	r.HandleFunc("/login", s.LoginSubmit).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.Logout).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/qr"+boxPath, s.QRCode).Methods(http.MethodGet)
	r.HandleFunc("/whereis"+boxPath, s.WhereIs).Methods(http.MethodGet)

	// Authenticated routes.
	r.Handle("/", session(http.HandlerFunc(s.Home))).Methods(http.MethodGet)
	r.Handle("/scan"+boxPath, session(http.HandlerFunc(s.Scan))).Methods(http.MethodGet)
	r.Handle("/checkin"+boxPath, session(http.HandlerFunc(s.CheckinPage))).Methods(http.MethodGet)
	r.Handle("/checkin"+boxPath, session(http.HandlerFunc(s.CheckinSubmit))).Methods(http.MethodPost)
	r.Handle("/checkout"+boxPath, session(http.HandlerFunc(s.Checkout))).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/confirm", session(http.HandlerFunc(s.Confirm))).Methods(http.MethodGet)
	r.Handle("/history"+boxPath, session(http.HandlerFunc(s.History))).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(s.NotFound)

	return r, nil
}

// NotFound renders the 404 page.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.Templates.RenderStatus(w, http.StatusNotFound, "error.html", &errorPage{
		PageData: s.pageData(r, "Not found"),
		Message:  "There is nothing here.",
	})
}

// serverError logs err and renders a generic 500 page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.Logger.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	s.Templates.RenderStatus(w, http.StatusInternalServerError, "error.html", &errorPage{
		PageData: s.pageData(r, "Something went wrong"),
		Message:  "The request could not be completed. Please try again.",
	})
}

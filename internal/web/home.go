package web

import (
	"net/http"

	"github.com/erazemk/boxtrack/internal/model"
)

// pageData builds the base template data for the current session.
func (s *Server) pageData(r *http.Request, title string) PageData {
	pd := PageData{Title: title}
	if claims := GetWebClaims(r.Context()); claims != nil {
		u := claims.User()
		pd.User = &u
		pd.LoggedIn = true
	}
	return pd
}

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	boxes, err := s.Store.ListBoxes(r.Context())
	if err != nil {
		s.serverError(w, r, "failed to list boxes for home page", err)
		return
	}

	s.Templates.Render(w, "home.html", &struct {
		PageData
		Boxes []model.Box
	}{
		PageData: s.pageData(r, "Boxes"),
		Boxes:    boxes,
	})
}

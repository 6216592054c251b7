package web

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/model"
	"github.com/erazemk/boxtrack/internal/qr"
)

// QRCode handles GET /qr/{size}/{num}. It returns a PNG encoding the box's
// absolute scan URL. ?label=1 prints the box name under the code and ?px=N
// sets the image size.
func (s *Server) QRCode(w http.ResponseWriter, r *http.Request) {
	size, num, ok := boxVars(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	px, _ := strconv.Atoi(r.URL.Query().Get("px"))
	target := qr.ScanURL(s.baseURL(r), size, num)

	var (
		data []byte
		err  error
	)
	if label, _ := strconv.ParseBool(r.URL.Query().Get("label")); label {
		box := model.Box{Size: size, Number: num}
		data, err = qr.EncodeLabeled(target, box.Label(), px)
	} else {
		data, err = qr.Encode(target, px)
	}
	if err != nil {
		s.Logger.Error("failed to generate qr code", zap.Error(err), zap.String("url", target))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		s.Logger.Error("failed to write qr response", zap.Error(err))
	}
}

// baseURL returns the configured base URL or scheme://host of the request.
func (s *Server) baseURL(r *http.Request) string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + strings.TrimRight(r.Host, "/")
}

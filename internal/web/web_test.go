package web

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erazemk/boxtrack/internal/auth"
	"github.com/erazemk/boxtrack/internal/db"
	"github.com/erazemk/boxtrack/internal/model"
	"github.com/erazemk/boxtrack/internal/qr"
	"github.com/erazemk/boxtrack/internal/store"
)

const (
	testSecret = "test-secret"
	testCookie = "ert-sm"
)

var ada = model.User{FirstName: "Ada", LastName: "Lovelace"}

// setupTestRouter creates a router over an in-memory store holding one user
// and two boxes: M 3 on shelf-2 and S 1 away.
func setupTestRouter(t *testing.T, baseURL string) (*mux.Router, *store.Store) {
	t.Helper()

	st := store.New(db.NewTestDB(t), db.SQLite)
	ctx := context.Background()
	_, err := st.CreateUser(ctx, ada.FirstName, ada.LastName)
	require.NoError(t, err)
	_, err = st.CreateBox(ctx, "M", 3, "shelf-2")
	require.NoError(t, err)
	_, err = st.CreateBox(ctx, "S", 1, model.StatusAway)
	require.NoError(t, err)

	router, err := NewRouter(Options{
		Store:      st,
		Secret:     testSecret,
		CookieName: testCookie,
		SessionTTL: time.Hour,
		BaseURL:    baseURL,
	})
	require.NoError(t, err)
	return router, st
}

func sessionCookie(t *testing.T, user model.User) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, user, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: testCookie, Value: token}
}

func do(router http.Handler, method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestGatedRoutesRedirectToLogin(t *testing.T) {
	router, st := setupTestRouter(t, "")

	tests := []struct {
		method, path string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/scan/M/3"},
		{http.MethodGet, "/checkin/S/1"},
		{http.MethodPost, "/checkin/S/1"},
		{http.MethodGet, "/checkout/M/3"},
		{http.MethodPost, "/checkout/M/3"},
		{http.MethodGet, "/confirm"},
		{http.MethodGet, "/history/M/3"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(router, tt.method, tt.path, nil, nil)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/login"),
				"Location = %q", rec.Header().Get("Location"))
		})
	}

	// Nothing was committed by the rejected requests.
	status, err := st.GetStatus(context.Background(), "M", 3)
	require.NoError(t, err)
	assert.Equal(t, "shelf-2", status)
	entries, err := st.ListLogs(context.Background(), "", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUngatedRoutes(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rec := do(router, http.MethodGet, "/login", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="first_name"`)

	rec = do(router, http.MethodGet, "/qr/M/3", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = do(router, http.MethodGet, "/whereis/M/3", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shelf-2", rec.Body.String())

	rec = do(router, http.MethodGet, "/logout", nil, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestLoginShowsName(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rec := do(router, http.MethodPost, "/login", url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
	}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := findCookie(rec, testCookie)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	claims, err := auth.ValidateToken(testSecret, cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, ada, claims.User())

	rec = do(router, http.MethodGet, "/", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "shelf-2")
	assert.Contains(t, body, "Log out")
}

func TestLoginUnknownUser(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	tests := []url.Values{
		{"first_name": {"Grace"}, "last_name": {"Hopper"}},
		{"first_name": {"ada"}, "last_name": {"Lovelace"}},
		{"first_name": {"Ada"}},
	}
	for _, form := range tests {
		rec := do(router, http.MethodPost, "/login", form, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/login"`)
		assert.Nil(t, findCookie(rec, testCookie), "form %v", form)
	}
}

func TestLoginReturnsToScannedBox(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rec := do(router, http.MethodGet, "/scan/M/3", nil, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	loginURL, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	next := loginURL.Query().Get("next")
	assert.Equal(t, "/scan/M/3", next)

	rec = do(router, http.MethodPost, "/login", url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"next":       {next},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/scan/M/3", rec.Header().Get("Location"))
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/scan/M/3", "/scan/M/3"},
		{"/history/M/3?x=1", "/history/M/3?x=1"},
		{"//evil.example.com/", "/"},
		{"/\\evil.example.com", "/"},
		{"https://evil.example.com/scan/M/3", "/"},
		{"scan/M/3", "/"},
		{"/login", "/"},
		{"/logout", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeNext(tt.in), "safeNext(%q)", tt.in)
	}
}

func TestScanRouting(t *testing.T) {
	router, _ := setupTestRouter(t, "")
	cookie := sessionCookie(t, ada)

	rec := do(router, http.MethodGet, "/scan/M/3", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/checkout/M/3", rec.Header().Get("Location"))

	rec = do(router, http.MethodGet, "/scan/S/1", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/checkin/S/1", rec.Header().Get("Location"))

	rec = do(router, http.MethodGet, "/scan/XL/99", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodGet, "/scan/M/three", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutScenario(t *testing.T) {
	router, st := setupTestRouter(t, "")
	cookie := sessionCookie(t, ada)
	ctx := context.Background()

	rec := do(router, http.MethodGet, "/scan/M/3", nil, cookie)
	require.Equal(t, "/checkout/M/3", rec.Header().Get("Location"))

	rec = do(router, http.MethodPost, "/checkout/M/3", url.Values{}, cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/confirm", rec.Header().Get("Location"))

	status, err := st.GetStatus(ctx, "M", 3)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAway, status)

	latest, err := st.LatestLog(ctx, "M", 3)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, model.StatusAway, latest.Status)
	assert.Equal(t, ada, latest.Actor())

	rec = do(router, http.MethodGet, "/confirm", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The next scan of the same box goes to check-in.
	rec = do(router, http.MethodGet, "/scan/M/3", nil, cookie)
	assert.Equal(t, "/checkin/M/3", rec.Header().Get("Location"))
}

func TestCheckoutGetCommits(t *testing.T) {
	router, st := setupTestRouter(t, "")
	cookie := sessionCookie(t, ada)

	rec := do(router, http.MethodGet, "/checkout/M/3", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	status, err := st.GetStatus(context.Background(), "M", 3)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAway, status)

	rec = do(router, http.MethodGet, "/checkout/XL/99", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckinFlow(t *testing.T) {
	router, st := setupTestRouter(t, "")
	cookie := sessionCookie(t, ada)
	ctx := context.Background()

	rec := do(router, http.MethodGet, "/checkin/S/1", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="location"`)
	assert.Contains(t, rec.Body.String(), `action="/checkin/S/1"`)

	rec = do(router, http.MethodPost, "/checkin/S/1", url.Values{"location": {"shelf-5"}}, cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/confirm", rec.Header().Get("Location"))

	status, err := st.GetStatus(ctx, "S", 1)
	require.NoError(t, err)
	assert.Equal(t, "shelf-5", status)

	rec = do(router, http.MethodGet, "/checkin/XL/99", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckinRejectsAway(t *testing.T) {
	router, st := setupTestRouter(t, "")
	cookie := sessionCookie(t, ada)

	for _, location := range []string{"away", "  ", ""} {
		rec := do(router, http.MethodPost, "/checkin/S/1", url.Values{"location": {location}}, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "location %q", location)
		assert.Contains(t, rec.Body.String(), `class="error"`)
	}

	entries, err := st.ListLogs(context.Background(), "S", 1, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWhereIs(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rec := do(router, http.MethodGet, "/whereis/S/1", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.StatusAway, rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))

	rec = do(router, http.MethodGet, "/whereis/XL/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHistoryPage(t *testing.T) {
	router, st := setupTestRouter(t, "")
	cookie := sessionCookie(t, ada)

	_, err := st.Checkout(context.Background(), "M", 3, ada)
	require.NoError(t, err)

	rec := do(router, http.MethodGet, "/history/M/3", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "Currently: <strong>away</strong>")

	rec = do(router, http.MethodGet, "/history/XL/99", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestForgedCookieRejected(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	forged := &http.Cookie{Name: testCookie, Value: "{'first_name': 'Ada', 'last_name': 'Lovelace'}"}
	rec := do(router, http.MethodGet, "/", nil, forged)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cleared := findCookie(rec, testCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	// A token signed with another key is no better.
	token, err := auth.GenerateToken("other-secret", ada, time.Hour)
	require.NoError(t, err)
	rec = do(router, http.MethodGet, "/", nil, &http.Cookie{Name: testCookie, Value: token})
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	router, _ := setupTestRouter(t, "")
	cookie := sessionCookie(t, ada)

	rec := do(router, http.MethodGet, "/", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodGet, "/logout", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cleared := findCookie(rec, testCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	// The old cookie no longer works.
	rec = do(router, http.MethodGet, "/", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRemovedUserLosesSession(t *testing.T) {
	router, st := setupTestRouter(t, "")
	cookie := sessionCookie(t, ada)
	ctx := context.Background()

	require.NoError(t, st.DeleteUser(ctx, ada.FirstName, ada.LastName))

	rec := do(router, http.MethodGet, "/checkout/M/3", nil, cookie)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?next=%2Fcheckout%2FM%2F3", rec.Header().Get("Location"))

	status, err := st.GetStatus(ctx, "M", 3)
	require.NoError(t, err)
	assert.Equal(t, "shelf-2", status)
	logs, err := st.ListLogs(ctx, "M", 3, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestQRCodeEncodesScanURL(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/qr/M/3", nil)
	req.Host = "boxes.local:8080"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	want, err := qr.Encode("http://boxes.local:8080/scan/M/3", qr.DefaultSize)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, rec.Body.Bytes()), "qr code does not encode the scan url")

	// QR codes work for boxes that do not exist yet.
	rec = do(router, http.MethodGet, "/qr/XL/99?label=1&px=512", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestQRCodeUsesBaseURL(t *testing.T) {
	router, _ := setupTestRouter(t, "https://boxes.example.com")

	rec := do(router, http.MethodGet, "/qr/M/3", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	want, err := qr.Encode("https://boxes.example.com/scan/M/3", qr.DefaultSize)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(want, rec.Body.Bytes()))
}

func TestUnknownPath(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	rec := do(router, http.MethodGet, "/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTemplatesParseWithFuncMap(t *testing.T) {
	// Parsing fails if a template calls a function missing from the map.
	_, err := LoadTemplates(zap.NewNop())
	require.NoError(t, err)

	var names []string
	for name := range FuncMap() {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"humanTime", "pathEscape"}, names)
}

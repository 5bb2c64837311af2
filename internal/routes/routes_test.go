package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/config"
	"github.com/BruksfildServices01/bridal-rental/internal/infra/memory"
	"github.com/BruksfildServices01/bridal-rental/internal/middleware"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
)

const (
	ownerEmail    = "owner@shop.test"
	ownerPassword = "s3cret-pass"
)

type server struct {
	t      *testing.T
	router *gin.Engine
	logs   *memory.SystemLogRepository
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	creds, err := session.NewCredentials(ownerEmail, "", ownerPassword)
	if err != nil {
		t.Fatal(err)
	}

	logs := memory.NewSystemLogRepository(store)
	deps := Deps{
		Dresses:  memory.NewDressRepository(store),
		Bookings: memory.NewBookingRepository(store),
		Reports:  memory.NewReportRepository(store),
		Logs:     logs,
		Sessions: session.NewService(
			creds,
			session.NewTokens("test-secret", time.Hour),
			session.NewMemoryRevocations(),
		),
	}
	cfg := &config.Config{
		Env:            "test",
		Timezone:       "UTC",
		MaxUploadBytes: 1 << 20,
	}

	r := gin.New()
	dispatcher, err := RegisterRoutes(r, deps, cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(dispatcher.Close)

	return &server{t: t, router: r, logs: logs}
}

func (s *server) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			s.t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) form(path string, cookies []*http.Cookie, values url.Values) *httptest.ResponseRecorder {
	s.t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) page(path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	s.t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) login() string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    ownerEmail,
		"password": ownerPassword,
	})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	decode(s.t, w, &resp)
	return resp.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	decode(t, w, &body)
	return body.Code
}

func (s *server) createDress(token, number string) uint {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/dresses", token, gin.H{
		"dress_number": number,
		"model_name":   "Royal",
		"category":     "wedding",
		"size":         "M",
		"rental_price": "5500",
	})
	if w.Code != http.StatusCreated {
		s.t.Fatalf("create dress: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var d struct {
		ID uint `json:"id"`
	}
	decode(s.t, w, &d)
	return d.ID
}

// ======================================================
// API
// ======================================================

func TestHealthIsPublic(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAPIRequiresToken(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/dresses", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "missing_authorization" {
		t.Fatalf("unexpected code %s", code)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    ownerEmail,
		"password": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "invalid_credentials" {
		t.Fatalf("unexpected code %s", code)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newServer(t)
	token := s.login()

	if w := s.do(http.MethodGet, "/api/dresses", token, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 before logout, got %d", w.Code)
	}

	if w := s.do(http.MethodPost, "/api/auth/logout", token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	if w := s.do(http.MethodGet, "/api/dresses", token, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestDressAPI(t *testing.T) {
	s := newServer(t)
	token := s.login()

	id := s.createDress(token, "1001a")

	w := s.do(http.MethodPost, "/api/dresses", token, gin.H{"dress_number": "1001A"})
	if w.Code != http.StatusConflict || errorCode(t, w) != "duplicate_identifier" {
		t.Fatalf("expected duplicate_identifier 409, got %d: %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodPatch, fmt.Sprintf("/api/dresses/%d", id), token, gin.H{"color": "Ivory"})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated struct {
		DressNumber string `json:"dress_number"`
		ModelName   string `json:"model_name"`
		Color       string `json:"color"`
	}
	decode(t, w, &updated)
	if updated.DressNumber != "1001A" || updated.Color != "Ivory" || updated.ModelName != "Royal" {
		t.Fatalf("patch did not keep untouched fields: %+v", updated)
	}

	w = s.do(http.MethodGet, "/api/dresses?category=wedding", token, nil)
	var list struct {
		Total int `json:"total"`
	}
	decode(t, w, &list)
	if list.Total != 1 {
		t.Fatalf("expected one dress, got %d", list.Total)
	}

	w = s.do(http.MethodGet, fmt.Sprintf("/api/dresses/%d/image", id), token, nil)
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/jpeg" {
		t.Fatalf("expected placeholder jpeg, got %d %s", w.Code, w.Header().Get("Content-Type"))
	}

	if w := s.do(http.MethodGet, "/api/dresses/999", token, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	if w := s.do(http.MethodDelete, fmt.Sprintf("/api/dresses/%d", id), token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}
}

func TestBookingLifecycle(t *testing.T) {
	s := newServer(t)
	token := s.login()
	id := s.createDress(token, "1001A")

	booking := gin.H{
		"dress_id":      id,
		"customer_name": "Sara",
		"booking_date":  "2030-06-10",
		"return_date":   "2030-06-12",
		"total_price":   "5500",
		"deposit_paid":  "1500",
	}

	w := s.do(http.MethodPost, "/api/bookings", token, booking)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID               uint   `json:"id"`
		Status           string `json:"status"`
		RemainingBalance string `json:"remaining_balance"`
	}
	decode(t, w, &created)
	if created.Status != "active" || created.RemainingBalance != "4000" {
		t.Fatalf("unexpected booking %+v", created)
	}

	w = s.do(http.MethodPatch, fmt.Sprintf("/api/dresses/%d", id), token, gin.H{"color": "Ivory"})
	var patched struct {
		IsAvailable bool `json:"is_available"`
	}
	decode(t, w, &patched)
	if w.Code != http.StatusOK || patched.IsAvailable {
		t.Fatalf("partial edit put a booked dress back on the shelf: %d %s", w.Code, w.Body.String())
	}

	booking["booking_date"] = "2030-06-12"
	booking["return_date"] = "2030-06-14"
	w = s.do(http.MethodPost, "/api/bookings", token, booking)
	if w.Code != http.StatusConflict || errorCode(t, w) != "booking_conflict" {
		t.Fatalf("expected booking_conflict, got %d: %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, fmt.Sprintf("/api/availability/dresses/%d?start=2030-06-11", id), token, nil)
	var check struct {
		Available bool `json:"available"`
	}
	decode(t, w, &check)
	if check.Available {
		t.Fatal("dress should be taken on 2030-06-11")
	}

	w = s.do(http.MethodGet, "/api/availability?date=2030-06-20", token, nil)
	var free struct {
		Total int `json:"total"`
	}
	decode(t, w, &free)
	if free.Total != 0 {
		t.Fatalf("dress is flagged out until returned, got %d free", free.Total)
	}

	if w := s.do(http.MethodDelete, fmt.Sprintf("/api/dresses/%d", id), token, nil); w.Code != http.StatusConflict {
		t.Fatalf("delete with active booking: expected 409, got %d", w.Code)
	}

	path := fmt.Sprintf("/api/bookings/%d/return", created.ID)
	if w := s.do(http.MethodPatch, path, token, nil); w.Code != http.StatusOK {
		t.Fatalf("return: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = s.do(http.MethodPatch, path, token, nil)
	if w.Code != http.StatusConflict || errorCode(t, w) != "not_active" {
		t.Fatalf("second return: expected not_active, got %d: %s", w.Code, w.Body.String())
	}

	w = s.do(http.MethodGet, "/api/bookings?status=all", token, nil)
	var list struct {
		Total int `json:"total"`
	}
	decode(t, w, &list)
	if list.Total != 1 {
		t.Fatalf("expected one booking, got %d", list.Total)
	}
}

func TestBookingValidation(t *testing.T) {
	s := newServer(t)
	token := s.login()
	id := s.createDress(token, "2001C")

	cases := []struct {
		name string
		body gin.H
		code string
	}{
		{"no name", gin.H{"dress_id": id, "booking_date": "2030-01-01"}, "customer_name_required"},
		{"bad date", gin.H{"dress_id": id, "customer_name": "A", "booking_date": "01/01/2030"}, "invalid_date"},
		{"reversed", gin.H{"dress_id": id, "customer_name": "A", "booking_date": "2030-01-05", "return_date": "2030-01-01"}, "invalid_date_range"},
		{"unknown dress", gin.H{"dress_id": 999, "customer_name": "A", "booking_date": "2030-01-01"}, "dress_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/api/bookings", token, tc.body)
			if got := errorCode(t, w); got != tc.code {
				t.Fatalf("expected %s, got %s (%d)", tc.code, got, w.Code)
			}
		})
	}
}

func TestActionLogIsRecorded(t *testing.T) {
	s := newServer(t)
	token := s.login()
	s.createDress(token, "1002B")

	deadline := time.Now().Add(2 * time.Second)
	for {
		w := s.do(http.MethodGet, "/api/logs?action=add_dress", token, nil)
		var page struct {
			Total int64 `json:"total"`
		}
		decode(t, w, &page)
		if page.Total == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("ADD_DRESS never logged: %s", w.Body.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// ======================================================
// HTML
// ======================================================

func TestPagesRedirectToLogin(t *testing.T) {
	s := newServer(t)

	w := s.page("/dresses", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %s", w.Code, w.Header().Get("Location"))
	}

	if w := s.page("/login", nil); w.Code != http.StatusOK {
		t.Fatalf("login page: expected 200, got %d", w.Code)
	}
}

func sessionCookies(t *testing.T, w *httptest.ResponseRecorder) []*http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			return []*http.Cookie{c}
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestWebFlow(t *testing.T) {
	s := newServer(t)

	w := s.form("/login", nil, url.Values{"email": {ownerEmail}, "password": {"wrong"}})
	if w.Header().Get("Location") != "/login" {
		t.Fatalf("bad password should return to the form, got %s", w.Header().Get("Location"))
	}

	w = s.form("/login", nil, url.Values{"email": {ownerEmail}, "password": {ownerPassword}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %s", w.Code, w.Header().Get("Location"))
	}
	cookies := sessionCookies(t, w)

	w = s.form("/dresses/add", cookies, url.Values{
		"dress_number": {"3001d"},
		"model_name":   {"Garden Lace"},
		"category":     {"engagement"},
		"size":         {"s"},
		"rental_price": {"2100.50"},
		"is_available": {"on"},
	})
	if w.Header().Get("Location") != "/dresses" {
		t.Fatalf("expected redirect to /dresses, got %d %s", w.Code, w.Header().Get("Location"))
	}

	w = s.page("/dresses", cookies)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "3001D") {
		t.Fatalf("dress missing from list: %d", w.Code)
	}

	for _, path := range []string{"/", "/booking/add", "/bookings", "/availability", "/reports", "/logs", "/dresses/add"} {
		if w := s.page(path, cookies); w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}

	w = s.form("/availability", cookies, url.Values{"check_date": {"2030-02-01"}, "category": {"all"}})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Garden Lace") {
		t.Fatalf("availability should list the new dress: %d", w.Code)
	}

	w = s.page("/logout", cookies)
	if w.Header().Get("Location") != "/login" {
		t.Fatalf("logout should land on /login, got %s", w.Header().Get("Location"))
	}
	if w := s.page("/", cookies); w.Code != http.StatusSeeOther {
		t.Fatalf("revoked cookie should be refused, got %d", w.Code)
	}
}

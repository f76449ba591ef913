package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmaydwell1/eliteprep/internal/coach"
	"github.com/jmaydwell1/eliteprep/internal/store"
	"github.com/jmaydwell1/eliteprep/internal/types"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	db, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRouter(NewHandler(db, coach.Canned{}, "test"))
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode detail from %q: %v", rec.Body.String(), err)
	}
	return body.Detail
}

const validProfile = `{
	"email": "user@example.com", "name": "Jordan",
	"birthdate": "1998-04-12T00:00:00Z", "gender": "Female",
	"city": "Austin", "state": "Texas", "sport": ["Golf"],
	"athletic_status": "Intermediate", "handicap": 12,
	"expectation": "Consistency", "goal": "Break 80"
}`

const validSubmission = `{
	"email": "user@example.com", "focus": 7, "confidence": 6,
	"anxiety": 3, "enjoyment": 8, "burnout": 2, "effort": 9, "motivation": 7
}`

func register(t *testing.T, h http.Handler, email string) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/register",
		`{"email":"`+email+`","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s = %d: %s", email, rec.Code, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("health body = %s", rec.Body.String())
	}
}

func TestRegister(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/register",
		`{"email":"User@Example.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register = %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "User registered successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	// Email is normalized to lowercase.
	if resp.Email != "user@example.com" {
		t.Errorf("email = %q, want lowercased", resp.Email)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "user@example.com")

	rec := doJSON(t, h, http.MethodPost, "/register",
		`{"email":"user@example.com","password":"other12"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register = %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != "Email already registered" {
		t.Errorf("detail = %q", got)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/register",
		`{"email":"not-an-email","password":"short"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid register = %d", rec.Code)
	}

	// 422 bodies carry a list of field detail items.
	var body struct {
		Detail []types.FieldDetail `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode 422 body: %v", err)
	}
	if len(body.Detail) != 2 {
		t.Fatalf("detail items = %d, want 2", len(body.Detail))
	}
	if len(body.Detail[0].Loc) != 2 || body.Detail[0].Loc[0] != "body" {
		t.Errorf("detail loc = %v", body.Detail[0].Loc)
	}
}

func TestLogin(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "user@example.com")

	rec := doJSON(t, h, http.MethodPost, "/login",
		`{"email":"user@example.com","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodPost, "/login",
		`{"email":"user@example.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password login = %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != "Invalid email or password" {
		t.Errorf("detail = %q", got)
	}
}

func TestOnboarding(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "user@example.com")

	rec := doJSON(t, h, http.MethodPost, "/onboarding", validProfile)
	if rec.Code != http.StatusOK {
		t.Fatalf("onboarding = %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Onboarding data saved") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestOnboardingUnknownUser(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/onboarding", validProfile)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("onboarding without account = %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != types.DetailUserNotFound {
		t.Errorf("detail = %q", got)
	}
}

func TestOnboardingValidation(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "user@example.com")

	invalid := strings.Replace(validProfile, `"handicap": 12`, `"handicap": 99`, 1)
	rec := doJSON(t, h, http.MethodPost, "/onboarding", invalid)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("out-of-range handicap = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPerformanceTrendsAndAverages(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "user@example.com")

	rec := doJSON(t, h, http.MethodPost, "/performance-trends", validSubmission)
	if rec.Code != http.StatusOK {
		t.Fatalf("trend = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/performance-averages/user@example.com", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("averages = %d: %s", rec.Code, rec.Body.String())
	}

	var averages types.PerformanceAverages
	if err := json.Unmarshal(rec.Body.Bytes(), &averages); err != nil {
		t.Fatalf("decode averages: %v", err)
	}
	if averages.AverageFocus != 7 {
		t.Errorf("AverageFocus = %v, want 7", averages.AverageFocus)
	}
	// (7+6+3+8+2+9+7)/7 = 6
	if averages.TotalAverage != 6 {
		t.Errorf("TotalAverage = %v, want 6", averages.TotalAverage)
	}
}

func TestPerformanceAverages404Details(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "user@example.com")

	// Unknown user and no-data user produce distinct detail strings; the
	// client discriminates on them.
	rec := doJSON(t, h, http.MethodGet, "/performance-averages/ghost@example.com", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown user = %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != types.DetailUserNotFound {
		t.Errorf("detail = %q, want %q", got, types.DetailUserNotFound)
	}

	rec = doJSON(t, h, http.MethodGet, "/performance-averages/user@example.com", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("no data = %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != types.DetailNoData {
		t.Errorf("detail = %q, want %q", got, types.DetailNoData)
	}
}

func TestTrendValidation(t *testing.T) {
	h := newTestRouter(t)
	register(t, h, "user@example.com")

	invalid := strings.Replace(validSubmission, `"focus": 7`, `"focus": 11`, 1)
	rec := doJSON(t, h, http.MethodPost, "/performance-trends", invalid)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("out-of-range answer = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGenerate(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/generate", `{"prompt":"pre-round nerves"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate = %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Text() == "" {
		t.Error("generate returned empty reply")
	}
}

func TestGenerateEmptyPrompt(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodPost, "/generate", `{"prompt":"  "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty prompt = %d", rec.Code)
	}
}

func TestInvalidJSON(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodPost, "/register", `{"email":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid JSON = %d", rec.Code)
	}
}

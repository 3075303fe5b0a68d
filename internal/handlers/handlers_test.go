package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"placement_backend/internal/app"
	"placement_backend/internal/preferences"
	"placement_backend/test/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T, templatesDir string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := helpers.TestConfig()
	cfg.Templates.Dir = templatesDir
	db := helpers.NewTestDB(t)

	return &testServer{
		router: app.SetupRouter(cfg, db, preferences.NewSimulatedStore()),
		db:     db,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var decoded map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	return w, decoded
}

func registerBody(email string) map[string]any {
	return map[string]any{
		"full_name":    "Rahul Verma",
		"email":        email,
		"password":     "pa55word",
		"account_type": "student",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	w, body := s.do(t, http.MethodPost, "/api/v1/users/register", "", registerBody("rahul@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "rahul@example.com", body["email"])
	assert.NotContains(t, w.Body.String(), "pa55word")
	assert.NotContains(t, w.Body.String(), "hashed")

	w, body = s.do(t, http.MethodPost, "/api/v1/users/register", "", registerBody("rahul@example.com"))
	assert.Equal(t, http.StatusConflict, w.Code)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Email already registered", errBody["message"])

	w, body = s.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]any{"email": "rahul@example.com", "password": "pa55word"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "student", body["account_type"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	w, body = s.do(t, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Rahul Verma", body["full_name"])
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	s := newTestServer(t, t.TempDir())
	w, _ := s.do(t, http.MethodPost, "/api/v1/users/register", "", registerBody("known@example.com"))
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPass, wrongBody := s.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]any{"email": "known@example.com", "password": "bad"})
	unknown, unknownBody := s.do(t, http.MethodPost, "/api/v1/users/login", "", map[string]any{"email": "unknown@example.com", "password": "bad"})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongBody, unknownBody)
}

func TestRegister_ValidationFailure(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	body := registerBody("not-an-email")
	body["account_type"] = "janitor"
	w, _ := s.do(t, http.MethodPost, "/api/v1/users/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_PasswordLimitInBytes(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	body := registerBody("unicode@example.com")
	body["password"] = strings.Repeat("é", 40)
	w, resp := s.do(t, http.MethodPost, "/api/v1/users/register", "", body)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	errBody, ok := resp["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", errBody["code"])

	body = registerBody("unicode@example.com")
	body["password"] = strings.Repeat("é", 36)
	w, _ = s.do(t, http.MethodPost, "/api/v1/users/register", "", body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCurrentUser_RequiresToken(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	w, _ := s.do(t, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/users/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDrives(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	w, _ := s.do(t, http.MethodPost, "/api/v1/drives", "", map[string]any{
		"company_id": 999, "role": "Analyst", "package_lpa": 5.0, "deadline": "2025-11-01T00:00:00Z",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, company := s.do(t, http.MethodPost, "/api/v1/companies", "", map[string]any{
		"name": "TechCorp Solutions", "industry": "IT", "location": "Pune",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	companyID := int(company["id"].(float64))

	w, drive := s.do(t, http.MethodPost, "/api/v1/drives", "", map[string]any{
		"company_id": companyID, "role": "Software Intern", "package_lpa": 6.5, "deadline": "2025-11-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Software Intern", drive["role"])
	assert.Equal(t, 6.5, drive["package_lpa"])

	w, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/drives/%d", companyID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var drives []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &drives))
	assert.Len(t, drives, 1)

	w, _ = s.do(t, http.MethodGet, "/api/v1/drives/4242", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w, _ = s.do(t, http.MethodGet, "/api/v1/drives/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDrive_DateOnlyDeadline(t *testing.T) {
	s := newTestServer(t, t.TempDir())
	company := helpers.CreateCompany(t, s.db, "TechCorp Solutions")

	w, drive := s.do(t, http.MethodPost, "/api/v1/drives", "", map[string]any{
		"company_id": company.ID, "role": "Software Intern", "package_lpa": 6.5, "deadline": "2025-11-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "2025-11-01T00:00:00Z", drive["deadline"])

	w, _ = s.do(t, http.MethodPost, "/api/v1/drives", "", map[string]any{
		"company_id": company.ID, "role": "Software Intern", "package_lpa": 6.5, "deadline": "01.11.2025",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompanies(t *testing.T) {
	s := newTestServer(t, t.TempDir())
	payload := map[string]any{"name": "Wipro", "industry": "IT", "location": "Bengaluru"}

	w, created := s.do(t, http.MethodPost, "/api/v1/companies", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/v1/companies", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, got := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/companies/%d", int(created["id"].(float64))), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Wipro", got["name"])

	w, _ = s.do(t, http.MethodGet, "/api/v1/companies/777", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodGet, "/api/v1/companies", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApplications(t *testing.T) {
	s := newTestServer(t, t.TempDir())
	company := helpers.CreateCompany(t, s.db, "TechCorp")
	drive := helpers.CreateDrive(t, s.db, company.ID, "Software Intern")
	user := helpers.CreateUser(t, s.db, "student@example.com")

	w, created := s.do(t, http.MethodPost, "/api/v1/applications", "", map[string]any{"user_id": user.ID, "drive_id": drive.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", created["status"])

	w, _ = s.do(t, http.MethodPost, "/api/v1/applications", "", map[string]any{"user_id": user.ID, "drive_id": drive.ID + 9})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/applications/user/%d", user.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var details []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	require.Len(t, details, 1)
	assert.Equal(t, "TechCorp", details[0]["company_name"])

	w, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/applications/drive/%d", drive.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRecommendationsAndPreferences(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	w, body := s.do(t, http.MethodGet, "/api/v1/recommendations/3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["user_id"])
	recs, ok := body["recommendations"].([]any)
	require.True(t, ok)
	assert.Len(t, recs, 2)

	w, body = s.do(t, http.MethodPut, "/api/v1/users/3/preferences", "", map[string]any{"user_id": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "light", data["theme"])

	w, _ = s.do(t, http.MethodPut, "/api/v1/users/3/preferences", "", map[string]any{"user_id": 4, "theme": "dark"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Home</h1>"), 0o644))
	s := newTestServer(t, dir)

	w, _ := s.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Home")

	w, _ = s.do(t, http.MethodGet, "/index.html", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodGet, "/analytics.html", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "<h1>404 Not Found: Page Missing</h1>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t, t.TempDir())

	w, body := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mutukulaw/internal/config"
	"github.com/mutukulaw/internal/db"
	"github.com/mutukulaw/internal/handler"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestRouter(t *testing.T, cfg config.AppConfig) (*gin.Engine, *gorm.DB, func()) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	api := handler.NewAPI(gdb, cfg, nil, nil)
	r := SetupRouter(api, "test-secret", "")

	return r, gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func adminConfig() config.AppConfig {
	return config.AppConfig{
		AdminUserIDs: []string{"admin_test"},
		FirmName:     "Test Firm",
		ContactEmail: "firm@example.com",
		ContactPhone: "+254 700 000 000",
	}
}

func TestAdminEndpointsRejectUnknownCallers(t *testing.T) {
	r, gdb, cleanup := setupTestRouter(t, adminConfig())
	defer cleanup()

	seed := db.PracticeArea{Title: "Secret Area", Description: "d"}
	if err := gdb.Create(&seed).Error; err != nil {
		t.Fatalf("failed to seed area: %v", err)
	}

	// No identity at all.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/practice-areas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "Secret Area") {
		t.Fatalf("unauthorized response must not leak entity data: %s", w.Body.String())
	}

	// Identity not on the allowlist.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/practice-areas", nil)
	req.Header.Set("X-Admin-Id", "someone_else")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for unknown identity, got %d", w.Code)
	}
}

func TestAdminEndpointsAllowAllowlistedIdentity(t *testing.T) {
	r, gdb, cleanup := setupTestRouter(t, adminConfig())
	defer cleanup()

	seed := db.PracticeArea{Title: "Criminal Law", Description: "d"}
	if err := gdb.Create(&seed).Error; err != nil {
		t.Fatalf("failed to seed area: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/practice-areas", nil)
	req.Header.Set("X-Admin-Id", "admin_test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Criminal Law") {
		t.Fatalf("expected entity data for admin, got %s", w.Body.String())
	}
}

func TestPublicReadsNeedNoIdentity(t *testing.T) {
	r, gdb, cleanup := setupTestRouter(t, adminConfig())
	defer cleanup()

	if err := gdb.Create(&db.PracticeArea{Title: "Family Law", Description: "d"}).Error; err != nil {
		t.Fatalf("failed to seed area: %v", err)
	}
	if err := gdb.Create(&db.BlogPost{Title: "Draft", Slug: "draft", Content: "c"}).Error; err != nil {
		t.Fatalf("failed to seed draft: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/practice-areas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Family Law") {
		t.Fatalf("expected public practice areas, got %s", w.Body.String())
	}

	// The public blog list excludes drafts.
	req = httptest.NewRequest(http.MethodGet, "/api/blog", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "Draft") {
		t.Fatalf("public blog list must not include drafts: %s", w.Body.String())
	}
}

func TestCheckAdminNeverErrors(t *testing.T) {
	r, _, cleanup := setupTestRouter(t, adminConfig())
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"isAdmin":false`) {
		t.Fatalf("expected isAdmin false, got %s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/admin/check", nil)
	req.Header.Set("X-Admin-Id", "admin_test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `"isAdmin":true`) {
		t.Fatalf("expected isAdmin true, got %s", w.Body.String())
	}
}

func TestSignInEstablishesSession(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash access key: %v", err)
	}

	cfg := adminConfig()
	cfg.AdminAccessKeyHash = string(hash)

	r, _, cleanup := setupTestRouter(t, cfg)
	defer cleanup()

	body, _ := json.Marshal(map[string]string{
		"identity":  "admin_test",
		"accessKey": "open sesame",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie")
	}

	// The session cookie now authorizes admin endpoints without headers.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/blog", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected session to authorize admin endpoint, got %d", w.Code)
	}
}

func TestSignInRejectsBadKeyOrIdentity(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash access key: %v", err)
	}

	cfg := adminConfig()
	cfg.AdminAccessKeyHash = string(hash)

	r, _, cleanup := setupTestRouter(t, cfg)
	defer cleanup()

	cases := []map[string]string{
		{"identity": "admin_test", "accessKey": "wrong"},
		{"identity": "not_allowlisted", "accessKey": "open sesame"},
	}
	for _, payload := range cases {
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/session", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401 for %v, got %d", payload, w.Code)
		}
	}
}

func TestContactEndToEnd(t *testing.T) {
	r, gdb, cleanup := setupTestRouter(t, adminConfig())
	defer cleanup()

	body, _ := json.Marshal(map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "Family Law",
		"message": "Need help with custody.",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID == 0 {
		t.Fatalf("expected a non-empty id")
	}

	var stored db.ContactRequest
	if err := gdb.First(&stored, resp.ID).Error; err != nil {
		t.Fatalf("expected persisted contact request: %v", err)
	}
	if stored.Read {
		t.Fatalf("expected read=false on a fresh request")
	}
}

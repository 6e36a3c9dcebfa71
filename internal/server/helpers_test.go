package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"friendconnect/internal/config"
	"friendconnect/internal/database"
	"friendconnect/internal/repository"
	"friendconnect/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	relRepo := repository.NewRelationshipRepository(db)
	tagRepo := repository.NewPersonalizationRepository(db)

	s := &Server{
		config: &config.Config{
			JWTSecret: "test-secret-not-for-production-use-only",
			Env:       "test",
		},
		db:       db,
		validate: validator.New(),
		userRepo: userRepo,
		relRepo:  relRepo,
		tagRepo:  tagRepo,
	}
	s.authService = service.NewAuthService(userRepo)
	s.relService = service.NewRelationshipService(relRepo, userRepo, tagRepo)
	s.personalService = service.NewPersonalizationService(tagRepo, userRepo)
	return s
}

func newTestApp(t *testing.T, s *Server) *fiber.App {
	t.Helper()
	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

// doJSON performs a request against the app and decodes the JSON response
// body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode body %q: %v", raw, err)
		}
	}
	return resp.StatusCode, decoded
}

// signupUser registers a user through the API and returns its id and token.
func signupUser(t *testing.T, app *fiber.App, name, email string) (uint, string) {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"name":     name,
		"username": email,
		"password": "password123",
	})
	if status != http.StatusOK {
		t.Fatalf("signup %s: expected 200, got %d (%v)", email, status, body)
	}

	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("signup %s: missing token in %v", email, body)
	}
	user, _ := body["user"].(map[string]any)
	id, _ := user["id"].(float64)
	if id == 0 {
		t.Fatalf("signup %s: missing user id in %v", email, body)
	}
	return uint(id), token
}

package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestUnhandledErrorsRenderJSON(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	app := s.NewApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	status, body := doJSON(t, app, http.MethodGet, "/boom", "", nil)
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body["message"] != "Unknown error" {
		t.Fatalf("unexpected body %v", body)
	}
	if body["details"] != "boom" {
		t.Fatalf("unexpected details %v", body)
	}
}

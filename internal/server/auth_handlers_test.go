package server

import (
	"net/http"
	"testing"
)

func TestHealthRoute(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	app := newTestApp(t, s)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/", "", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body["message"] != "healthy server" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestSignupSuccess(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	app := newTestApp(t, s)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"name":     "Alice",
		"username": "alice@example.com",
		"password": "password123",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	if body["message"] != "Account successfully created!" {
		t.Fatalf("unexpected message %v", body["message"])
	}
	if body["token"] == "" || body["token"] == nil {
		t.Fatal("expected token")
	}

	user, _ := body["user"].(map[string]any)
	if user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user %v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatal("password hash must not appear in responses")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	app := newTestApp(t, s)
	signupUser(t, app, "Alice", "alice@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", "", map[string]any{
		"name":     "Alice Again",
		"username": "alice@example.com",
		"password": "password123",
	})
	if status != http.StatusLengthRequired {
		t.Fatalf("expected 411, got %d", status)
	}
	if body["message"] != "Email already taken or Incorrect inputs" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestSignupInvalidBody(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	app := newTestApp(t, s)

	cases := []map[string]any{
		{"username": "alice@example.com", "password": "password123"}, // missing name
		{"name": "Alice", "username": "not-an-email", "password": "password123"},
		{"name": "Alice", "username": "alice@example.com", "password": "short"},
	}
	for _, payload := range cases {
		status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/signup", "", payload)
		if status != http.StatusLengthRequired {
			t.Fatalf("payload %v: expected 411, got %d", payload, status)
		}
		if body["message"] != "Invalid inputs" {
			t.Fatalf("payload %v: unexpected message %v", payload, body["message"])
		}
	}
}

func TestLoginSuccess(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	app := newTestApp(t, s)
	signupUser(t, app, "Alice", "alice@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": "alice@example.com",
		"password": "password123",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", status, body)
	}
	if body["token"] == nil {
		t.Fatal("expected token")
	}
	user, _ := body["user"].(map[string]any)
	if user["name"] != "Alice" {
		t.Fatalf("unexpected user %v", user)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	app := newTestApp(t, s)

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": "nobody@example.com",
		"password": "password123",
	})
	if status != http.StatusLengthRequired {
		t.Fatalf("expected 411, got %d", status)
	}
	if body["message"] != "incorrect email" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	app := newTestApp(t, s)
	signupUser(t, app, "Alice", "alice@example.com")

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"username": "alice@example.com",
		"password": "wrong-password",
	})
	if status != http.StatusLengthRequired {
		t.Fatalf("expected 411, got %d", status)
	}
	if body["message"] != "incorrect password" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}

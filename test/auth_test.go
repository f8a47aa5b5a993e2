package test

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
)

func TestRegister(t *testing.T) {
	app := CreateTestApp()

	username := fmt.Sprintf("register_%d", time.Now().UnixNano())
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "secret123",
	})
	req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Register request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("Expected status 201 but got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Error decoding register response: %v", err)
	}
	if result["username"] != username {
		t.Errorf("Expected username %q in response, got %v", username, result["username"])
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := CreateTestApp()

	username := RegisterTestUser(t, app)

	body, _ := json.Marshal(map[string]string{
		"username": username,
		"password": "othersecret",
	})
	req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Register request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate username but got %d", resp.StatusCode)
	}
}

func TestRegisterValidationError(t *testing.T) {
	app := CreateTestApp()

	// password below the minimum length
	body, _ := json.Marshal(map[string]string{
		"username": fmt.Sprintf("shortpass_%d", time.Now().UnixNano()),
		"password": "abc",
	})
	req := httptest.NewRequest("POST", "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Register request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400 but got %d", resp.StatusCode)
	}
}

func TestToken(t *testing.T) {
	app := CreateTestApp()

	username := RegisterTestUser(t, app)

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", "secret123")
	req := httptest.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Token request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 but got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Error decoding token response: %v", err)
	}
	if token, _ := result["access_token"].(string); token == "" {
		t.Errorf("Expected access_token in response")
	}
	if result["token_type"] != "bearer" {
		t.Errorf("Expected token_type bearer, got %v", result["token_type"])
	}
}

func TestTokenBadCredentials(t *testing.T) {
	app := CreateTestApp()

	username := RegisterTestUser(t, app)

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", "wrongpass")
	req := httptest.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Token request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401 but got %d", resp.StatusCode)
	}
	if resp.Header.Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("Expected WWW-Authenticate: Bearer challenge")
	}
}

func TestTokenUnknownUser(t *testing.T) {
	app := CreateTestApp()

	form := url.Values{}
	form.Set("username", "nobody_here")
	form.Set("password", "whatever")
	req := httptest.NewRequest("POST", "/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Token request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401 but got %d", resp.StatusCode)
	}
}

func TestUsersMe(t *testing.T) {
	app := CreateTestApp()

	username := RegisterTestUser(t, app)
	token := LoginTestUser(t, app, username, "secret123")

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Me request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 but got %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("Error decoding me response: %v", err)
	}
	if result["username"] != username {
		t.Errorf("Expected username %q, got %v", username, result["username"])
	}
}

func TestUsersMeUnauthorized(t *testing.T) {
	app := CreateTestApp()

	req := httptest.NewRequest("GET", "/users/me", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Me request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401 but got %d", resp.StatusCode)
	}
	if resp.Header.Get("WWW-Authenticate") != "Bearer" {
		t.Errorf("Expected WWW-Authenticate: Bearer challenge")
	}
}

func TestUsersMeInvalidToken(t *testing.T) {
	app := CreateTestApp()

	req := httptest.NewRequest("GET", "/users/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Me request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401 but got %d", resp.StatusCode)
	}
}

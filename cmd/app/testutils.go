package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jadewing/inkstream/internal/blogservice"
	"github.com/jadewing/inkstream/internal/common"
	"github.com/jadewing/inkstream/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func readResponse(t *testing.T, res *http.Response) (int, http.Header, envelope) {
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	var envelope envelope
	err = json.Unmarshal(responseBody, &envelope)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, envelope
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := &Config{
		Port:        ":4000",
		Environment: "test",
		JWTSecret:   "test-secret",
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, cfg.JWTSecret),
		blogService: blogservice.NewBlogService(db),
	}

	return app, db
}

func (ts *testServer) post(t *testing.T, path string, data any, token *string) (int, http.Header, envelope) {
	jsonPayload, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	body := bytes.NewReader(jsonPayload)
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) get(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) put(t *testing.T, path string, token *string, payload any) (int, http.Header, envelope) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	body := bytes.NewReader(jsonPayload)
	req, err := http.NewRequest(http.MethodPut, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

func (ts *testServer) delete(t *testing.T, path string, token *string) (int, http.Header, envelope) {
	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if token != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", *token))
	}
	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return readResponse(t, res)
}

// signup registers a user through the API and returns the issued token.
func (ts *testServer) signup(t *testing.T, username string) string {
	payload := map[string]string{
		"username": username,
		"email":    fmt.Sprintf("%s@example.com", username),
		"password": "TestPassword123!",
	}

	status, _, body := ts.post(t, "/api/v1/user/signup", payload, nil)
	if status != http.StatusCreated {
		t.Fatalf("signup failed with status %d: %s", status, body.Message)
	}

	data, ok := body.Data.(map[string]any)
	if !ok {
		t.Fatal("signup response carries no data object")
	}

	token, ok := data["jwt_token"].(string)
	if !ok {
		t.Fatal("signup response carries no token")
	}

	return token
}

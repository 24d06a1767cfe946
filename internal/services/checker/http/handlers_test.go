package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"honest/internal/core/lexicon"
	phttp "honest/internal/platform/net/http"
	"honest/internal/platform/net/http/bind"
	svc "honest/internal/services/checker/service"

	"github.com/go-chi/chi/v5"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Status     string          `json:"status"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	bind.Init()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), svc.New(lexicon.MustLoad()))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestCheck_Endpoint(t *testing.T) {
	srv := newTestServer(t)

	status, env := do(t, srv, http.MethodPost, "/check", `{"text":"It was completed quickly."}`)
	if status != http.StatusOK || env.StatusCode != http.StatusOK {
		t.Fatalf("status = %d/%d, want 200", status, env.StatusCode)
	}

	var out struct {
		Issues []struct {
			Type  string `json:"issue_type"`
			Start int    `json:"start"`
			End   int    `json:"end"`
		} `json:"issues"`
		Readability struct {
			Words int `json:"words"`
		} `json:"readability"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(out.Issues) != 2 {
		t.Fatalf("issues = %+v, want 2", out.Issues)
	}
	if out.Issues[0].Type != "passive_voice" || out.Issues[0].Start != 3 {
		t.Fatalf("issue[0] = %+v", out.Issues[0])
	}
	if out.Readability.Words != 4 {
		t.Fatalf("readability words = %d, want 4", out.Readability.Words)
	}
}

func TestCheck_EmptyBodyIsBadRequest(t *testing.T) {
	srv := newTestServer(t)
	status, env := do(t, srv, http.MethodPost, "/check", "")
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %+v", status, env)
	}
	if env.Error == "" {
		t.Fatalf("error message missing")
	}
}

func TestReadability_Endpoint(t *testing.T) {
	srv := newTestServer(t)
	status, env := do(t, srv, http.MethodPost, "/readability", `{"text":"The cat sat."}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var out struct {
		Compact string `json:"compact"`
		Band    string `json:"band"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.Compact != "Elementary (Grade 0.6) | 3 words | Flesch: 100" {
		t.Fatalf("compact = %q", out.Compact)
	}
	if out.Band != "easy" {
		t.Fatalf("band = %q", out.Band)
	}
}

func TestChecks_GetAndToggle(t *testing.T) {
	srv := newTestServer(t)

	status, env := do(t, srv, http.MethodGet, "/checks", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var out struct {
		Checks map[string]bool `json:"checks"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(out.Checks) != 9 || !out.Checks["jargon"] {
		t.Fatalf("checks = %+v", out.Checks)
	}

	status, env = do(t, srv, http.MethodPut, "/checks", `{"name":"jargon","enabled":false}`)
	if status != http.StatusOK {
		t.Fatalf("toggle status = %d, want 200", status)
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.Checks["jargon"] {
		t.Fatalf("jargon still enabled after toggle: %+v", out.Checks)
	}

	// enabled is required, omitting it is a validation error
	status, _ = do(t, srv, http.MethodPut, "/checks", `{"name":"jargon"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing enabled", status)
	}
}

func TestCinnamon_Endpoints(t *testing.T) {
	srv := newTestServer(t)

	status, env := do(t, srv, http.MethodPost, "/cinnamon", `{"word":"moist"}`)
	if status != http.StatusOK {
		t.Fatalf("add status = %d, want 200", status)
	}
	var out struct {
		Words []string `json:"words"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	has := func(ws []string, w string) bool {
		for _, x := range ws {
			if x == w {
				return true
			}
		}
		return false
	}
	if !has(out.Words, "moist") {
		t.Fatalf("words after add = %v", out.Words)
	}

	status, env = do(t, srv, http.MethodPost, "/cinnamon/remove", `{"word":"moist"}`)
	if status != http.StatusOK {
		t.Fatalf("remove status = %d, want 200", status)
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if has(out.Words, "moist") {
		t.Fatalf("words after remove = %v", out.Words)
	}

	// word is required
	status, _ = do(t, srv, http.MethodPost, "/cinnamon", `{}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for missing word", status)
	}
}

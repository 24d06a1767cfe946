package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	phttp "honest/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

func mountTestAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), Options{Debounce: time.Hour})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestMount_Healthz(t *testing.T) {
	srv := mountTestAPI(t)

	resp, err := srv.Client().Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz status = %d", resp.StatusCode)
	}
	var env struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data["status"] != "ok" {
		t.Fatalf("healthz data = %+v", env.Data)
	}
}

func TestMount_CheckerRoutes(t *testing.T) {
	srv := mountTestAPI(t)

	resp, err := srv.Client().Post(srv.URL+"/api/v1/check", "application/json",
		strings.NewReader(`{"text":"We should utilize this."}`))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check status = %d", resp.StatusCode)
	}
	var env struct {
		RequestID string          `json:"request_id"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.RequestID == "" {
		t.Fatalf("request id middleware not mounted")
	}
	if len(env.Data) == 0 {
		t.Fatalf("check returned no data")
	}
}

func TestMount_SettingsAbsentWithoutStore(t *testing.T) {
	srv := mountTestAPI(t)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/settings?key=x")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("settings without store = %d, want 404", resp.StatusCode)
	}
}

func TestMount_SessionWebsocket(t *testing.T) {
	srv := mountTestAPI(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/session/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var greet struct {
		Op    string   `json:"op"`
		Words []string `json:"words"`
	}
	if err := ws.ReadJSON(&greet); err != nil {
		t.Fatalf("greeting: %v", err)
	}
	if greet.Op != "cinnamon_words" || len(greet.Words) == 0 {
		t.Fatalf("greeting = %+v", greet)
	}
}

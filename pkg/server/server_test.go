package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sgtmarmite/wtfcesko/pkg/errors"
)

func siteDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"index.html":               `<!doctype html><canvas id="chart-dane"></canvas>`,
		"assets/app-0123456789.js": "window.WTF_CHARTS={};",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestServer(t *testing.T, base string) *httptest.Server {
	t.Helper()
	s, err := New(Options{Dir: siteDir(t), BasePath: base, Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func noRedirect(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	client := &http.Client{CheckRedirect: noRedirect}
	resp, err := client.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestRoutes(t *testing.T) {
	ts := newTestServer(t, "/wtfcesko")

	tests := []struct {
		name     string
		path     string
		status   int
		location string
		body     string
		cache    string
	}{
		{name: "root redirects", path: "/", status: http.StatusFound, location: "/wtfcesko/"},
		{name: "base redirects", path: "/wtfcesko", status: http.StatusFound, location: "/wtfcesko/"},
		{name: "index", path: "/wtfcesko/", status: http.StatusOK, body: `id="chart-dane"`, cache: "no-cache"},
		{name: "asset", path: "/wtfcesko/assets/app-0123456789.js", status: http.StatusOK, body: "WTF_CHARTS", cache: "immutable"},
		{name: "missing", path: "/wtfcesko/nope.html", status: http.StatusNotFound},
		{name: "outside base", path: "/assets/app-0123456789.js", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts, tt.path)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if tt.location != "" && resp.Header.Get("Location") != tt.location {
				t.Errorf("Location = %q, want %q", resp.Header.Get("Location"), tt.location)
			}
			if tt.body != "" && !strings.Contains(body, tt.body) {
				t.Errorf("body = %q, want it to contain %q", body, tt.body)
			}
			if tt.cache != "" && !strings.Contains(resp.Header.Get("Cache-Control"), tt.cache) {
				t.Errorf("Cache-Control = %q, want %q", resp.Header.Get("Cache-Control"), tt.cache)
			}
		})
	}
}

func TestRootBasePath(t *testing.T) {
	ts := newTestServer(t, "")
	resp, body := get(t, ts, "/")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "chart-dane") {
		t.Errorf("GET / = %d %q", resp.StatusCode, body)
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, "/wtfcesko")
	resp, body := get(t, ts, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload["status"] != "ok" || payload["version"] == "" {
		t.Errorf("payload = %v", payload)
	}
}

func TestNewErrors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"no dir", Options{}, errors.ErrCodeInvalidPath},
		{"missing dir", Options{Dir: filepath.Join(t.TempDir(), "missing")}, errors.ErrCodeInvalidPath},
		{"file", Options{Dir: file}, errors.ErrCodeInvalidPath},
		{"bad base", Options{Dir: t.TempDir(), BasePath: "wtf/"}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = log.New(io.Discard)
			_, err := New(tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("New() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestURL(t *testing.T) {
	s := &Server{base: "/wtfcesko"}
	tests := map[string]string{
		":4321":          "http://localhost:4321/wtfcesko/",
		"127.0.0.1:8080": "http://127.0.0.1:8080/wtfcesko/",
		"[::]:4321":      "http://localhost:4321/wtfcesko/",
	}
	for addr, want := range tests {
		if got := s.URL(addr); got != want {
			t.Errorf("URL(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, err := New(Options{Dir: siteDir(t), Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatal(err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/speedo/pkg/buildinfo"
	"github.com/matzehuels/speedo/pkg/cache"
	"github.com/matzehuels/speedo/pkg/pipeline"
	"github.com/matzehuels/speedo/pkg/render"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewMemoryCache(16), nil, logger)
	return New(runner, WithTimeout(10*time.Second))
}

func do(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v\n%s", err, rec.Body.String())
	}
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
	if got, want := rec.Header().Get("Server"), buildinfo.ServerHeader(); got != want {
		t.Errorf("Server = %q, want %q", got, want)
	}
	if _, err := uuid.Parse(rec.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("X-Request-ID = %q, want a UUID", rec.Header().Get(RequestIDHeader))
	}
}

func TestRequestIDPropagation(t *testing.T) {
	s := newTestServer(t)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	if got := do(t, s, req).Header().Get(RequestIDHeader); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "not a uuid")
	if got := do(t, s, req).Header().Get(RequestIDHeader); got == "not a uuid" {
		t.Error("malformed X-Request-ID was echoed back")
	}
}

func TestGaugeFormats(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		path        string
		contentType string
		prefix      []byte
	}{
		{"/v1/gauge.png?value=80&max=220&title=Speed&unit=km/h&color=limegreen&gradient=true", "image/png", []byte("\x89PNG")},
		{"/v1/gauge.svg?value=80&max=220&title=Speed", "image/svg+xml; charset=utf-8", []byte("<svg")},
		{"/v1/gauge.json?value=3000&max=8000&unit=RPM", "application/json", []byte("{")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, s, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !bytes.HasPrefix(bytes.TrimSpace(rec.Body.Bytes()), tt.prefix) {
				t.Errorf("body starts with %q, want %q", rec.Body.Bytes()[:min(8, rec.Body.Len())], tt.prefix)
			}
			if rec.Header().Get("ETag") == "" {
				t.Error("ETag header missing")
			}
		})
	}
}

func TestGaugeCacheAndETag(t *testing.T) {
	s := newTestServer(t)
	path := "/v1/gauge.svg?value=50&max=100&title=Fuel&unit=%25"

	first := do(t, s, httptest.NewRequest(http.MethodGet, path, nil))
	if first.Header().Get("X-Cache") != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", first.Header().Get("X-Cache"))
	}

	second := do(t, s, httptest.NewRequest(http.MethodGet, path, nil))
	if second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", second.Header().Get("X-Cache"))
	}
	if !bytes.Equal(first.Body.Bytes(), second.Body.Bytes()) {
		t.Error("cached body differs from rendered body")
	}

	etag := first.Header().Get("ETag")
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("If-None-Match", etag)
	rec := do(t, s, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("If-None-Match status = %d, want 304", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("304 body length = %d, want 0", rec.Body.Len())
	}
}

func TestGaugeErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"missing max", "/v1/gauge.png?value=10", 400, "INVALID_SCALE"},
		{"zero max", "/v1/gauge.png?value=10&max=0", 400, "INVALID_SCALE"},
		{"bad max", "/v1/gauge.png?max=ten", 400, "INVALID_INPUT"},
		{"bad value", "/v1/gauge.png?max=10&value=x", 400, "INVALID_INPUT"},
		{"bad gradient", "/v1/gauge.png?max=10&gradient=maybe", 400, "INVALID_INPUT"},
		{"bad format", "/v1/gauge.gif?max=10", 400, "INVALID_FORMAT"},
		{"bad color", "/v1/gauge.png?max=10&color=notacolor", 400, "INVALID_COLOR"},
		{"bad palette", "/v1/gauge.png?max=10&palette=nope", 400, "INVALID_PALETTE"},
		{"bad theme", "/v1/gauge.png?max=10&theme=neon", 400, "INVALID_THEME"},
		{"bad size", "/v1/gauge.png?max=10&size=5", 400, "INVALID_INPUT"},
		{"unknown route", "/v2/gauge.png", 404, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			body := decodeError(t, rec)
			if body.Code != tt.code {
				t.Errorf("code = %q, want %q", body.Code, tt.code)
			}
			if body.Message == "" {
				t.Error("message is empty")
			}
			if body.RequestID == "" {
				t.Error("request_id is empty")
			}
		})
	}
}

func TestRender(t *testing.T) {
	s := newTestServer(t)
	body := `{"value": 70, "max": 120, "title": "Temp", "unit": "°C", "color": "blue", "formats": ["json", "svg"]}`
	rec := do(t, s, httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want first requested format (json)", got)
	}
	if !strings.Contains(rec.Body.String(), "Temp") {
		t.Errorf("scene export missing title:\n%s", rec.Body.String())
	}
}

func TestRenderErrors(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed", `{"max":`, 400, "INVALID_INPUT"},
		{"unknown field", `{"max": 10, "maximum": 20}`, 400, "INVALID_INPUT"},
		{"invalid scale", `{"value": 5, "max": -1}`, 400, "INVALID_SCALE"},
		{"too large", `{"title": "` + strings.Repeat("x", maxBodyBytes) + `"}`, 413, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader(tt.body)))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			if got := decodeError(t, rec).Code; got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}

	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/v1/render", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /v1/render status = %d, want 405", rec.Code)
	}
}

func TestPDFWithoutConverter(t *testing.T) {
	if render.Available() {
		t.Skip("rsvg-convert installed")
	}
	s := newTestServer(t)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/v1/gauge.pdf?max=10", nil))
	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501: %s", rec.Code, rec.Body.String())
	}
	if got := decodeError(t, rec).Code; got != "UNSUPPORTED" {
		t.Errorf("code = %q, want UNSUPPORTED", got)
	}
}

func TestPalettes(t *testing.T) {
	s := newTestServer(t)
	rec := do(t, s, httptest.NewRequest(http.MethodGet, "/v1/palettes", nil))
	var body struct {
		Default  string   `json:"default"`
		Palettes []string `json:"palettes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Default != "plasma" || len(body.Palettes) == 0 {
		t.Errorf("palettes = %+v", body)
	}
}

func TestServeShutdown(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

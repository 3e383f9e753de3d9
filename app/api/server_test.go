package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lysyi3m/syndication"
	"github.com/lysyi3m/syndication/app/metrics"
	"github.com/lysyi3m/syndication/app/report"
)

const atomBody = `<feed xmlns="http://www.w3.org/2005/Atom"><id>u</id><title>T</title><updated>2019-04-01T07:30:00Z</updated><entry><id>e</id><title>E</title><updated>2019-04-01T07:30:00Z</updated></entry></feed>`

const rssBody = `<rss version="2.0"><channel><title>T</title><link>http://x</link><description>D</description><item><title>I</title></item></channel></rss>`

func newTestServer(t *testing.T, maxBodyBytes int64) (http.Handler, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	handler := NewHandler(metrics.NewCollector(reg), maxBodyBytes, "test-version")
	return NewServer(handler, reg), reg
}

func doRequest(t *testing.T, server http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() == name {
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
		}
	}
	return total
}

func TestConvertAtomToRSS(t *testing.T) {
	server, reg := newTestServer(t, 1<<20)

	w := doRequest(t, server, http.MethodPost, "/convert/rss", atomBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d (%s)", w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); ct != rssContentType {
		t.Errorf("Expected content type %q, got: %q", rssContentType, ct)
	}
	if w.Header().Get("X-Source-Format") != "atom" {
		t.Errorf("Expected source format 'atom', got: %s", w.Header().Get("X-Source-Format"))
	}
	if w.Header().Get("X-Feed-Entries") != "1" {
		t.Errorf("Expected 1 entry, got: %s", w.Header().Get("X-Feed-Entries"))
	}

	feed, err := syndication.Parse(w.Body.String())
	if err != nil {
		t.Fatalf("Expected valid RSS output, got: %v", err)
	}
	if feed.SourceFormat() != "rss" || feed.Title != "T" || len(feed.Entries) != 1 {
		t.Errorf("Unexpected converted feed: format=%s title=%s entries=%d", feed.SourceFormat(), feed.Title, len(feed.Entries))
	}

	if got := counterValue(t, reg, "syndication_conversions_total"); got != 1 {
		t.Errorf("Expected 1 conversion, got: %v", got)
	}
}

func TestConvertSameFormatIsIdentity(t *testing.T) {
	server, _ := newTestServer(t, 1<<20)

	feed, err := syndication.Parse(rssBody)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	expected := syndication.ToRSSString(feed)

	w := doRequest(t, server, http.MethodPost, "/convert/rss", rssBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}
	if w.Body.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, w.Body.String())
	}
}

func TestConvertRSSToAtom(t *testing.T) {
	server, _ := newTestServer(t, 1<<20)

	w := doRequest(t, server, http.MethodPost, "/convert/atom", rssBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != atomContentType {
		t.Errorf("Expected content type %q, got: %q", atomContentType, ct)
	}
	if !strings.Contains(w.Body.String(), `<feed xmlns="http://www.w3.org/2005/Atom"`) {
		t.Errorf("Expected an Atom document, got:\n%s", w.Body.String())
	}
}

func TestConvertErrors(t *testing.T) {
	server, reg := newTestServer(t, 64)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unsupported format", "/convert/json", atomBody, http.StatusBadRequest},
		{"empty body", "/convert/rss", "", http.StatusBadRequest},
		{"unrecognized document", "/convert/rss", "invalid xml", http.StatusUnprocessableEntity},
		{"body too large", "/convert/rss", atomBody, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, server, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.status {
				t.Errorf("Expected status %d, got: %d (%s)", tt.status, w.Code, w.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Expected JSON error body, got: %v", err)
			}
			if resp.Error == "" {
				t.Error("Expected an error message")
			}
		})
	}

	if got := counterValue(t, reg, "syndication_parse_fail_total"); got != 1 {
		t.Errorf("Expected 1 parse failure, got: %v", got)
	}
}

func TestInspect(t *testing.T) {
	server, _ := newTestServer(t, 1<<20)

	w := doRequest(t, server, http.MethodPost, "/inspect", rssBody)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}

	var r report.Report
	if err := json.Unmarshal(w.Body.Bytes(), &r); err != nil {
		t.Fatalf("Expected JSON report, got: %v", err)
	}
	if r.Format != "rss" || r.Title != "T" || r.Description != "D" {
		t.Errorf("Unexpected report: %+v", r)
	}
	if r.EntryCount != 1 || r.Entries[0].Title != "I" {
		t.Errorf("Unexpected entries: %+v", r.Entries)
	}
}

func TestHealthAndIndex(t *testing.T) {
	server, _ := newTestServer(t, 1<<20)

	w := doRequest(t, server, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}
	var health map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("Expected JSON health body, got: %v", err)
	}
	if health["status"] != "ok" || health["version"] != "test-version" {
		t.Errorf("Unexpected health: %v", health)
	}

	w = doRequest(t, server, http.MethodGet, "/", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/metrics") {
		t.Errorf("Expected index listing the metrics endpoint, got: %d %s", w.Code, w.Body.String())
	}

	w = doRequest(t, server, http.MethodGet, "/favicon.ico", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204 for favicon, got: %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	server, _ := newTestServer(t, 1<<20)

	w := doRequest(t, server, http.MethodOptions, "/convert/rss", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got: %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header on preflight response")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := newTestServer(t, 1<<20)
	doRequest(t, server, http.MethodPost, "/convert/atom", rssBody)

	w := doRequest(t, server, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `syndication_conversions_total{source="rss",target="atom"} 1`) {
		t.Errorf("Expected conversion counter in output, got:\n%s", w.Body.String())
	}
}

func TestMetricsDisabled(t *testing.T) {
	server := NewServer(NewHandler(nil, 1<<20, "test-version"), nil)

	w := doRequest(t, server, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 without metrics, got: %d", w.Code)
	}

	w = doRequest(t, server, http.MethodPost, "/convert/rss", atomBody)
	if w.Code != http.StatusOK {
		t.Errorf("Expected conversions to work without metrics, got: %d", w.Code)
	}
}

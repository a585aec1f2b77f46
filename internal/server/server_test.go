package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"trustlens/internal/inspector"
	"trustlens/internal/interfaces"
	"trustlens/internal/model"
	"trustlens/internal/server"
)

type cannedInspector struct {
	report *model.InspectionReport
}

func (c *cannedInspector) Inspect(_ context.Context, _ string) *model.InspectionReport {
	return c.report
}

func (c *cannedInspector) Close() error { return nil }

func okReport() *model.InspectionReport {
	return &model.InspectionReport{
		Success:          true,
		TrustScore:       90,
		KeywordsDetected: []string{"replica", "no return"},
		ImagesFound:      []string{"http://shop.test/img/a.jpg"},
		WhoisData: &model.RegistrationRecord{
			Domain: "shop.test", DomainAge: 2,
			CreationDate: "2024-03-01 00:00:00",
			Country:      "US", Registrar: "Example Registrar",
			NameServers: []string{"ns1.test"},
		},
		WaybackData: &model.ArchiveRecord{
			SnapshotsFound: 5,
			FirstSnapshot:  "2024-01-01 00:00:00",
			LastSnapshot:   "2024-02-10 00:00:00", ChangePeriodDays: 40,
		},
	}
}

func newTestServer(t *testing.T, report *model.InspectionReport) *server.Server {
	t.Helper()

	cfg := server.DefaultConfig()
	cfg.Logger = interfaces.NewTestLogger(false)
	runner := inspector.NewRunner(&cannedInspector{report: report}, cfg.Logger)

	s := server.NewServerWithRunner(cfg, runner)
	t.Cleanup(func() { s.Close() })
	return s
}

func doJSON(t *testing.T, s http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode JSON response: %v (body: %s)", err, rec.Body.String())
	}
}

func TestServer_CORS_HeaderPresent(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "GET", "/health", "")

	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS origin *, got %q", origin)
	}
}

func TestServer_Health(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestServer_Index(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "GET", "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `action="/analyze"`) {
		t.Error("index page should contain the analyze form")
	}
}

func TestServer_AnalyzeForm(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	form := url.Values{"url": {"http://shop.test/"}}
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "90 / 100") {
		t.Errorf("results page should show the score, got: %s", body)
	}
	if !strings.Contains(body, "replica") {
		t.Error("results page should list detected keywords")
	}
}

func TestServer_AnalyzeForm_MissingURL(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "missing url") {
		t.Error("expected error page for missing url field")
	}
}

func TestServer_AnalyzeForm_FailedInspection(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, model.FailedReport("connection refused"))

	form := url.Values{"url": {"http://down.test/"}}
	req := httptest.NewRequest("POST", "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("error page should show the failure message")
	}
}

func TestServer_InspectAPI(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "POST", "/api/inspect", `{"url":"http://shop.test/"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var report model.InspectionReport
	decodeBody(t, rec, &report)
	if !report.Success || report.TrustScore != 90 {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestServer_InspectAPI_InvalidJSON(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "POST", "/api/inspect", `{invalid}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestServer_InspectAPI_MissingURL(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "POST", "/api/inspect", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestServer_StartJobAndGet(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "POST", "/api/jobs", `{"url":"http://shop.test/"}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var job inspector.Job
	decodeBody(t, rec, &job)
	if job.ID == "" {
		t.Fatal("job must get an ID")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		got := s.Runner().GetJob(job.ID)
		if got != nil && (got.Status == inspector.JobDone || got.Status == inspector.JobFailed) {
			if got.Status != inspector.JobDone {
				t.Errorf("status = %q, want done", got.Status)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("job did not finish in time")
		}
		time.Sleep(10 * time.Millisecond)
	}

	rec = doJSON(t, s, "GET", "/api/jobs/"+job.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestServer_ListJobs_Empty(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "GET", "/api/jobs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestServer_GetJob_NotFound(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "GET", "/api/jobs/nonexistent", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestServer_CancelJob_NoContent(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "DELETE", "/api/jobs/nonexistent", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestServer_SwaggerSpecServed(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "GET", "/swagger/doc.json", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var spec map[string]any
	decodeBody(t, rec, &spec)
	if info, ok := spec["info"].(map[string]any); !ok || info["title"] != "TrustLens API" {
		t.Errorf("unexpected spec info: %v", spec["info"])
	}
	if _, ok := spec["paths"].(map[string]any)["/api/inspect"]; !ok {
		t.Error("spec should document /api/inspect")
	}
}

func TestServer_OptionsPreflight(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, okReport())

	rec := doJSON(t, s, "OPTIONS", "/api/inspect", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for OPTIONS, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected Allow-Methods header on OPTIONS")
	}
}

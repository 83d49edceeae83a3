package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hazyhaar/normy/pkg/profile"
)

const testManifest = `
profiles:
  fra-basic:
    language: FRA
    stages: [case_fold, remove_diacritics]
  tur-lower:
    language: TUR
    stages: [lower_case]
`

func newTestRouter(t *testing.T) http.Handler {
	reg := profile.NewRegistry(nil)
	if err := reg.Load([]byte(testManifest)); err != nil {
		t.Fatal(err)
	}
	return NewRouter(reg, nil)
}

func TestHandleNormalize(t *testing.T) {
	router := newTestRouter(t)
	body := `{"profile":"fra-basic","text":"CAFÉ"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/normalize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp normalizeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if want := "cafe"; resp.Result != want {
		t.Errorf("got %q, want %q", resp.Result, want)
	}
}

func TestHandleNormalizeUnknownProfile(t *testing.T) {
	router := newTestRouter(t)
	body := `{"profile":"does-not-exist","text":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/normalize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleNormalizeBatch(t *testing.T) {
	router := newTestRouter(t)
	body := `{"profile":"tur-lower","texts":["KIZILIRMAK","NEHRİ"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/normalize/batch", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp batchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 2 || resp.Results[0] != "kızılırmak" || resp.Results[1] != "nehri" {
		t.Errorf("got %#v", resp.Results)
	}
}

func TestHandleNormalizeBatchMethodNotAllowedOnGet(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/normalize/batch", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleListProfiles(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/profiles", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp profilesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Profiles) != 2 {
		t.Errorf("got %d profiles, want 2", len(resp.Profiles))
	}
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp healthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.Profiles != 2 {
		t.Errorf("got %#v", resp)
	}
}

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/handler"
	"github.com/exhibitions/internal/query"
	"github.com/exhibitions/internal/router"
	"github.com/exhibitions/internal/seed"
	"github.com/exhibitions/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm/logger"
)

const baseURL = "http://example.test"

type e2eSuite struct {
	handler   http.Handler
	uploadDir string
	report    seed.Report
}

type envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Data       json.RawMessage      `json:"data"`
	Pagination *query.Pagination    `json:"pagination"`
	Errors     []service.FieldError `json:"errors"`
}

type exhibitionBody struct {
	ID        uint                     `json:"id"`
	Title     string                   `json:"title"`
	Image     *string                  `json:"image"`
	Category  string                   `json:"category"`
	Status    service.ExhibitionStatus `json:"status"`
	Artworks  []db.Artwork             `json:"artworks"`
	StartDate string                   `json:"startDate"`
}

func TestE2E_AllInterfaces(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("seeded catalogue", suite.testSeededCatalogue)
	t.Run("exhibition lifecycle", suite.testExhibitionLifecycle)
	t.Run("uploads", suite.testUploads)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(db.Options{
		Path:   fmt.Sprintf("file:e2e-%d?mode=memory&cache=shared", time.Now().UnixNano()),
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	clock := func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
	}

	report, err := seed.Seed(t.Context(), gdb, seed.Config{UploadsBaseURL: baseURL + "/uploads", Clock: clock})
	if err != nil {
		t.Fatalf("failed to seed catalogue: %v", err)
	}

	uploadDir := t.TempDir()
	api := handler.NewAPI(gdb, handler.Options{Logger: zerolog.Nop(), Clock: clock, MaxPageSize: 100})
	engine := router.SetupRouter(api, router.Options{
		Logger:        zerolog.Nop(),
		UploadDir:     uploadDir,
		UploadURLPath: "/uploads",
	})

	return &e2eSuite{handler: engine, uploadDir: uploadDir, report: report}
}

func (s *e2eSuite) testSeededCatalogue(t *testing.T) {
	resp := s.mustRequest(t, http.MethodGet, "/api/exhibitions?status=active", nil)
	env := decodeEnvelope(t, resp, http.StatusOK)
	var active []exhibitionBody
	decodeData(t, env, &active)
	if len(active) != 1 || active[0].Title != "Олександр Ройтбурд. Теорема влади" {
		t.Fatalf("unexpected active exhibitions %+v", active)
	}
	if active[0].Image == nil || *active[0].Image != baseURL+"/uploads/oleksandr-rojtburd-teorema-vlady-1.webp" {
		t.Fatalf("unexpected seeded image %v", active[0].Image)
	}

	resp = s.mustRequest(t, http.MethodGet, "/api/exhibitions/stats", nil)
	env = decodeEnvelope(t, resp, http.StatusOK)
	var stats service.ExhibitionStats
	decodeData(t, env, &stats)
	if stats.Total != int64(s.report.Exhibitions) || stats.Active != 1 || stats.Upcoming != 1 || stats.Past != 5 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	resp = s.mustRequest(t, http.MethodGet, "/api/gallery?limit=5&page=4", nil)
	env = decodeEnvelope(t, resp, http.StatusOK)
	if env.Pagination == nil || env.Pagination.TotalItems != int64(s.report.Artworks) || env.Pagination.TotalPages != 4 || env.Pagination.HasNextPage {
		t.Fatalf("unexpected gallery pagination %+v", env.Pagination)
	}

	resp = s.mustRequest(t, http.MethodGet, "/api/exhibitions/search?q="+url.QueryEscape("pinchukartcentre"), nil)
	env = decodeEnvelope(t, resp, http.StatusOK)
	var found []exhibitionBody
	decodeData(t, env, &found)
	if len(found) != s.report.Exhibitions || found[0].StartDate != "2018-10-30" {
		t.Fatalf("expected every seeded exhibition ordered by start date, got %d (first %+v)", len(found), found)
	}
}

func (s *e2eSuite) testExhibitionLifecycle(t *testing.T) {
	resp := s.mustRequestJSON(t, http.MethodPost, "/api/exhibitions", map[string]any{
		"title":       "Нова виставка",
		"description": "Опис нової виставки",
		"location":    "Київ",
		"startDate":   "2024-07-01",
		"endDate":     "2024-08-01",
		"category":    "Графіка",
		"organizer":   "E2E організатор",
	})
	env := decodeEnvelope(t, resp, http.StatusCreated)
	var created exhibitionBody
	decodeData(t, env, &created)

	exhibitionPath := "/api/exhibitions/" + idStr(created.ID)
	resp = s.mustRequestJSON(t, http.MethodPost, exhibitionPath+"/artworks", map[string]any{
		"title":    "Ескіз",
		"artist":   "Невідомий автор",
		"imageUrl": baseURL + "/uploads/sketch.webp",
	})
	env = decodeEnvelope(t, resp, http.StatusCreated)
	var artwork db.Artwork
	decodeData(t, env, &artwork)

	resp = s.mustRequest(t, http.MethodGet, exhibitionPath+"?includeArtworks=true", nil)
	env = decodeEnvelope(t, resp, http.StatusOK)
	var detail exhibitionBody
	decodeData(t, env, &detail)
	if !detail.Status.IsUpcoming || detail.Status.Duration != 31 {
		t.Fatalf("unexpected status %+v", detail.Status)
	}
	if len(detail.Artworks) != 1 || detail.Artworks[0].ID != artwork.ID {
		t.Fatalf("unexpected artworks %+v", detail.Artworks)
	}

	resp = s.mustRequestJSON(t, http.MethodPut, exhibitionPath, map[string]any{"endDate": "2024-06-01"})
	env = decodeEnvelope(t, resp, http.StatusBadRequest)
	if len(env.Errors) != 1 || env.Errors[0].Field != "endDate" {
		t.Fatalf("expected endDate violation, got %+v", env.Errors)
	}

	resp = s.mustRequest(t, http.MethodDelete, exhibitionPath, nil)
	decodeEnvelope(t, resp, http.StatusOK)

	resp = s.mustRequest(t, http.MethodGet, "/api/gallery/"+idStr(artwork.ID), nil)
	decodeEnvelope(t, resp, http.StatusNotFound)

	resp = s.mustRequestJSON(t, http.MethodPost, exhibitionPath+"/artworks", map[string]any{
		"title":    "Ескіз",
		"artist":   "Невідомий автор",
		"imageUrl": baseURL + "/uploads/sketch.webp",
	})
	decodeEnvelope(t, resp, http.StatusNotFound)
}

func (s *e2eSuite) testUploads(t *testing.T) {
	content := []byte("webp-bytes")
	if err := os.WriteFile(filepath.Join(s.uploadDir, "poster.webp"), content, 0o644); err != nil {
		t.Fatalf("failed to write upload: %v", err)
	}

	resp := s.mustRequest(t, http.MethodGet, "/uploads/poster.webp", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected uploaded file to be served, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); body != string(content) {
		t.Fatalf("unexpected upload body %q", body)
	}
}

func (s *e2eSuite) mustRequest(t *testing.T, method, path string, body io.Reader) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w.Result()
}

func (s *e2eSuite) mustRequestJSON(t *testing.T, method, path string, payload map[string]any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to encode payload: %v", err)
	}
	return s.mustRequest(t, method, path, bytes.NewReader(raw))
}

func decodeEnvelope(t *testing.T, resp *http.Response, wantStatus int) envelope {
	t.Helper()
	defer resp.Body.Close()
	body := readBody(t, resp)
	if resp.StatusCode != wantStatus {
		t.Fatalf("expected status %d, got %d: %s", wantStatus, resp.StatusCode, body)
	}
	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if env.Success != (wantStatus < http.StatusBadRequest) {
		t.Fatalf("unexpected success flag in %s", body)
	}
	return env
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return string(data)
}

func idStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lovedays/internal/db"
	"github.com/lovedays/internal/handler"
	"github.com/lovedays/internal/router"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type e2eSuite struct {
	handler   http.Handler
	baseURL   string
	uploadDir string
	now       time.Time
	coupleID  string
}

func TestE2E_FullFlow(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("setup couple", suite.testSetupCouple)
	t.Run("stats and milestones", suite.testStats)
	t.Run("memories", suite.testMemories)
	t.Run("important dates", suite.testImportantDates)
	t.Run("photo upload", suite.testPhotoUpload)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Couple{}, &db.Memory{}, &db.ImportantDate{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	db.DB = gdb
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	uploadDir := t.TempDir()
	api := handler.NewAPI(gdb, uploadDir, "/uploads").WithClock(func() time.Time { return now })
	engine := router.SetupRouterWithAPI(api, uploadDir, "/uploads")

	return &e2eSuite{
		handler:   engine,
		baseURL:   "http://example.test",
		uploadDir: uploadDir,
		now:       now,
	}
}

func (s *e2eSuite) testSetupCouple(t *testing.T) {
	// The API reports no couple before setup.
	resp := s.mustRequestJSON(t, http.MethodGet, "/api/couple", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if body := strings.TrimSpace(readBody(t, resp)); body != "null" {
		t.Fatalf("expected null couple, got %q", body)
	}

	resp = s.mustRequestJSON(t, http.MethodPost, "/api/couple", map[string]interface{}{
		"partner1Name": "An",
		"partner2Name": "Bình",
		"startDate":    "2024-06-08",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var couple db.Couple
	decodeJSON(t, resp, &couple)
	if couple.ID == "" {
		t.Fatal("expected a server generated id")
	}
	s.coupleID = couple.ID

	// Only one couple may exist.
	resp = s.mustRequestJSON(t, http.MethodPost, "/api/couple", map[string]interface{}{
		"partner1Name": "Chi",
		"partner2Name": "Dũng",
		"startDate":    "2024-01-01",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.StatusCode)
	}

	// Editing keeps unset fields.
	resp = s.mustRequestJSON(t, http.MethodPut, "/api/couple/"+s.coupleID, map[string]interface{}{
		"partner2Name": "Bảo",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	decodeJSON(t, resp, &couple)
	if couple.Partner1Name != "An" || couple.Partner2Name != "Bảo" {
		t.Fatalf("unexpected couple after update: %+v", couple)
	}
	if couple.StartDate != "2024-06-08" {
		t.Fatalf("expected start date preserved, got %q", couple.StartDate)
	}
}

func (s *e2eSuite) testStats(t *testing.T) {
	resp := s.mustRequestJSON(t, http.MethodGet, "/api/stats", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var stats struct {
		Elapsed struct {
			Days   int `json:"days"`
			Months int `json:"months"`
		} `json:"elapsed"`
		Milestones struct {
			Next *struct {
				Days int `json:"days"`
			} `json:"next"`
			DaysRemaining int `json:"daysRemaining"`
		} `json:"milestones"`
		Quote string `json:"quote"`
	}
	decodeJSON(t, resp, &stats)

	if stats.Elapsed.Days != 7 {
		t.Fatalf("expected 7 elapsed days, got %d", stats.Elapsed.Days)
	}
	if stats.Milestones.Next == nil || stats.Milestones.Next.Days != 14 {
		t.Fatalf("expected next milestone at 14 days, got %+v", stats.Milestones.Next)
	}
	if stats.Milestones.DaysRemaining != 7 {
		t.Fatalf("expected 7 days remaining, got %d", stats.Milestones.DaysRemaining)
	}
	if stats.Quote == "" {
		t.Fatal("expected a quote of the day")
	}

	resp = s.mustRequestJSON(t, http.MethodGet, "/api/milestones", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 for milestones, got %d", resp.StatusCode)
	}
	var overview struct {
		DaysElapsed  int `json:"daysElapsed"`
		ReachedCount int `json:"reachedCount"`
		Milestones   []struct {
			Days    int  `json:"days"`
			Reached bool `json:"reached"`
			IsToday bool `json:"isToday"`
		} `json:"milestones"`
	}
	decodeJSON(t, resp, &overview)
	if overview.DaysElapsed != 7 {
		t.Fatalf("expected 7 days elapsed, got %d", overview.DaysElapsed)
	}
	if len(overview.Milestones) == 0 {
		t.Fatal("expected the milestone catalog")
	}
	if first := overview.Milestones[0]; !first.Reached {
		t.Fatalf("expected the first milestone reached, got %+v", first)
	}
	for _, m := range overview.Milestones {
		if m.Days == 7 && !m.IsToday {
			t.Fatal("expected the 7 day milestone flagged as today")
		}
	}
}

func (s *e2eSuite) testMemories(t *testing.T) {
	resp := s.mustRequestJSON(t, http.MethodPost, "/api/memories", map[string]interface{}{
		"coupleId": s.coupleID,
		"title":    "Buổi hẹn đầu tiên",
		"content":  "Một ngày **tuyệt vời** <script>alert(1)</script>",
		"date":     "2024-06-10",
		"mood":     "happy",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}
	var memory map[string]interface{}
	decodeJSON(t, resp, &memory)
	html, _ := memory["contentHtml"].(string)
	if !strings.Contains(html, "<strong>tuyệt vời</strong>") {
		t.Fatalf("expected rendered markdown, got %q", html)
	}
	if strings.Contains(html, "<script") {
		t.Fatalf("expected scripts stripped, got %q", html)
	}

	resp = s.mustRequestJSON(t, http.MethodGet, "/api/memories/"+s.coupleID, nil)
	defer resp.Body.Close()
	var memories []map[string]interface{}
	decodeJSON(t, resp, &memories)
	if len(memories) != 1 {
		t.Fatalf("expected one memory, got %d", len(memories))
	}

	id, _ := memory["id"].(string)
	resp = s.mustRequestJSON(t, http.MethodDelete, "/api/memories/"+id, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.StatusCode)
	}
	resp = s.mustRequestJSON(t, http.MethodDelete, "/api/memories/"+id, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for a missing memory, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) testImportantDates(t *testing.T) {
	resp := s.mustRequestJSON(t, http.MethodPost, "/api/important-dates", map[string]interface{}{
		"coupleId": s.coupleID,
		"title":    "Sinh nhật",
		"date":     "2000-06-16",
		"type":     "birthday",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}

	resp = s.mustRequestJSON(t, http.MethodPost, "/api/important-dates", map[string]interface{}{
		"coupleId": s.coupleID,
		"title":    "Whatever",
		"date":     "2024-01-01",
		"type":     "holiday",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for an unknown type, got %d", resp.StatusCode)
	}

	resp = s.mustRequestJSON(t, http.MethodGet, "/api/important-dates/"+s.coupleID+"/countdowns", nil)
	defer resp.Body.Close()
	var countdowns []struct {
		DaysUntil int    `json:"daysUntil"`
		NextDate  string `json:"nextDate"`
		Status    string `json:"status"`
	}
	decodeJSON(t, resp, &countdowns)
	if len(countdowns) != 1 {
		t.Fatalf("expected one countdown, got %d", len(countdowns))
	}
	if countdowns[0].DaysUntil != 1 || countdowns[0].Status != "upcoming" {
		t.Fatalf("expected tomorrow's countdown, got %+v", countdowns[0])
	}
	if countdowns[0].NextDate != "2024-06-16" {
		t.Fatalf("expected next occurrence 2024-06-16, got %q", countdowns[0].NextDate)
	}
}

func (s *e2eSuite) testPhotoUpload(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1600, 900))
	for y := 0; y < 900; y += 100 {
		for x := 0; x < 1600; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, "photo", "test.png"))
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(buf.Bytes()); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	resp := s.mustRequest(t, http.MethodPost, "/api/upload", body, map[string]string{
		"Content-Type": writer.FormDataContentType(),
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.StatusCode, readBody(t, resp))
	}

	var payload struct {
		PhotoURI string `json:"photoUri"`
	}
	decodeJSON(t, resp, &payload)
	if !strings.HasPrefix(payload.PhotoURI, "/uploads/") {
		t.Fatalf("expected an /uploads/ uri, got %q", payload.PhotoURI)
	}

	filename := strings.TrimPrefix(payload.PhotoURI, "/uploads/")
	if _, err := os.Stat(filepath.Join(s.uploadDir, filename)); err != nil {
		t.Fatalf("expected the scaled photo on disk: %v", err)
	}

	// The stored file is served back through the static route.
	resp = s.mustRequest(t, http.MethodGet, payload.PhotoURI, nil, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 serving the upload, got %d", resp.StatusCode)
	}
}

func (s *e2eSuite) mustRequest(t *testing.T, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.baseURL+path, body)
	if err != nil {
		t.Fatalf("failed to build request %s %s: %v", method, path, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w.Result()
}

func (s *e2eSuite) mustRequestJSON(t *testing.T, method, path string, payload map[string]interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	headers := map[string]string{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
		headers["Content-Type"] = "application/json"
	}
	return s.mustRequest(t, method, path, body, headers)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(raw)
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

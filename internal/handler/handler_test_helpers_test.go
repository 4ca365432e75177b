package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/query"
	"github.com/exhibitions/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ginOnce   sync.Once
	testDBSeq atomic.Int64
)

type envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Data       json.RawMessage      `json:"data"`
	Pagination *query.Pagination    `json:"pagination"`
	Errors     []service.FieldError `json:"errors"`
}

func setupTestAPI(t *testing.T) (*API, *gorm.DB) {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	dsn := fmt.Sprintf("file:handler-%d-%d?mode=memory&cache=shared", time.Now().UnixNano(), testDBSeq.Add(1))
	gdb, err := db.Open(db.Options{Path: dsn, Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	api := NewAPI(gdb, Options{
		Logger: zerolog.Nop(),
		Clock: func() time.Time {
			return time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
		},
		MaxPageSize: 50,
	})
	return api, gdb
}

// perform runs h against a recorded request. body may be nil, a string sent
// verbatim, or a value encoded as JSON.
func perform(t *testing.T, h gin.HandlerFunc, method, target string, body any, params ...gin.Param) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params

	h(c)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, env
}

func idParam(id uint) gin.Param {
	return gin.Param{Key: "id", Value: fmt.Sprint(id)}
}

func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func validExhibitionBody() map[string]any {
	return map[string]any{
		"title":       "Мистецтво Арсеналу",
		"description": "Велика виставка сучасного мистецтва",
		"location":    "Київ, Мистецький Арсенал",
		"startDate":   "2024-06-01",
		"endDate":     "2024-06-30",
		"category":    "Сучасне мистецтво",
		"organizer":   "Мистецький Арсенал",
	}
}

func createExhibition(t *testing.T, api *API, body map[string]any) uint {
	t.Helper()
	w, env := perform(t, api.CreateExhibition, "POST", "/api/exhibitions", body)
	if w.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID uint `json:"id"`
	}
	decodeData(t, env, &created)
	return created.ID
}

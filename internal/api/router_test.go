package api

import (
	"ecoalerta/internal/core"
	"ecoalerta/internal/ledger"
	"ecoalerta/internal/profile"
	"ecoalerta/internal/storage/memory"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	router *gin.Engine
	kv     *memory.Storage
	clock  *core.FixedClock
}

func newTestServer(t *testing.T, keyHash string) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kv := memory.New()
	clock := &core.FixedClock{CurrentTime: time.Date(2024, 1, 8, 19, 0, 0, 0, time.UTC)}

	router := NewRouter(RouterConfig{
		Profiles: profile.New(kv, logger),
		Ledger:   ledger.New(kv, clock, ledger.Options{Language: core.LanguagePortuguese, Location: time.UTC}, logger),
		Calendar: core.Calendar{
			"Trindade": {"2ª 07:00", "5ª 07:00"},
			"Centro":   {"3ª 19:00"},
		},
		Clock:      clock,
		Language:   core.LanguagePortuguese,
		Location:   time.UTC,
		APIKeyHash: keyHash,
		Logger:     logger,
	})

	return &testServer{router: router, kv: kv, clock: clock}
}

func (s *testServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP","service":"ecoalerta"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestConfig_GetBeforeSave(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodGet, "/v1/config", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CONFIG_NOT_FOUND", decode(t, w)["code"])
}

func TestConfig_PutThenGet(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodPut, "/v1/config", `{"neighborhood":"Trindade","slots":["3ª 07:00"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/v1/config", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"neighborhood":"Trindade","slots":["3ª 07:00"]}`, w.Body.String())

	w = s.do(http.MethodPut, "/v1/config", `{"neighborhood":"Centro"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"neighborhood":"Centro","slots":[]}`, w.Body.String())
}

func TestConfig_PutInvalid(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodPut, "/v1/config", `{"slots":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w)["code"])

	w = s.do(http.MethodPut, "/v1/config", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPut, "/v1/config", strings.NewReader(`{"neighborhood":"Centro"}`))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestConfig_PutSaveFailure(t *testing.T) {
	s := newTestServer(t, "")
	s.kv.FailWrites(true)

	w := s.do(http.MethodPut, "/v1/config", `{"neighborhood":"Centro"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SAVE_FAILED", decode(t, w)["code"])
}

func TestCollections_Next(t *testing.T) {
	s := newTestServer(t, "")
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/v1/config", `{"neighborhood":"Trindade","slots":["3ª 07:00"]}`).Code)

	w := s.do(http.MethodGet, "/v1/collections/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"found": true,
		"label": "3ª 07:00",
		"timestamp": "2024-01-09T07:00:00Z",
		"hours_remaining": 12,
		"duration_text": "12 hours",
		"date_text": "Terça, 09/01/2024 às 07:00",
		"is_eve": true
	}`, w.Body.String())
}

func TestCollections_NextFromCalendar(t *testing.T) {
	s := newTestServer(t, "")
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/v1/config", `{"neighborhood":"Trindade"}`).Code)

	// Tuesday 08:00 -> Thursday 07:00
	w := s.do(http.MethodGet, "/v1/collections/next?at=2024-01-09T08:00:00Z", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, true, body["found"])
	assert.Equal(t, "5ª 07:00", body["label"])
	assert.Equal(t, float64(47), body["hours_remaining"])
	assert.Equal(t, "1 day and 23h", body["duration_text"])
	assert.Equal(t, false, body["is_eve"])
}

func TestCollections_NextNotFound(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodGet, "/v1/collections/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"found":false}`, w.Body.String())

	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/v1/config", `{"neighborhood":"Unknown"}`).Code)
	w = s.do(http.MethodGet, "/v1/collections/next", "")
	assert.JSONEq(t, `{"found":false}`, w.Body.String())
}

func TestCollections_NextInvalidTime(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodGet, "/v1/collections/next?at=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TIME", decode(t, w)["code"])
}

func TestNeighborhoods(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodGet, "/v1/neighborhoods", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"name":"Centro","slots":["3ª 19:00"]},
		{"name":"Trindade","slots":["2ª 07:00","5ª 07:00"]}
	]`, w.Body.String())
}

func TestReports_CreateAndList(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodGet, "/v1/reports", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(http.MethodPost, "/v1/reports", `{"reason":"Coleta não realizada","notes":"Rua A","timestamp":1234567890000}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"protocol":"ECO-1234567890000","success":true}`, w.Body.String())

	w = s.do(http.MethodPost, "/v1/reports", `{"reason":"Outro"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ECO-1704740400000", decode(t, w)["protocol"], "defaults to the clock")

	w = s.do(http.MethodGet, "/v1/reports", "")
	require.Equal(t, http.StatusOK, w.Code)

	var reports []core.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "ECO-1234567890000", reports[0].Protocol)
	assert.Equal(t, "13/02/2009, 23:31:30", reports[0].FormattedTimestamp)
	assert.Equal(t, "Outro", reports[1].Reason)
}

func TestReports_CreateInvalid(t *testing.T) {
	s := newTestServer(t, "")

	w := s.do(http.MethodPost, "/v1/reports", `{"notes":"no reason"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/v1/reports", `{"reason":"r","timestamp":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReports_CreateFailure(t *testing.T) {
	s := newTestServer(t, "")
	s.kv.FailWrites(true)

	w := s.do(http.MethodPost, "/v1/reports", `{"reason":"Outro"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"protocol":null,"success":false}`, w.Body.String())
}

func TestReports_Export(t *testing.T) {
	s := newTestServer(t, "")
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/v1/reports", `{"reason":"Outro","timestamp":1000}`).Code)

	w := s.do(http.MethodGet, "/v1/reports/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=ecoalerta-reports.json", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.True(t, strings.HasPrefix(w.Body.String(), "[\n  {\n    \"protocol\": \"ECO-1000\""))
}

func TestAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	s := newTestServer(t, string(hash))

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/v1/reports", "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/v1/reports", "", "X-EcoAlerta-Key", "wrong").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/v1/reports", "", "X-EcoAlerta-Key", "s3cret").Code)
}

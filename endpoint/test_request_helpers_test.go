package endpoint

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ariebrainware/tripwire/generator"
	"github.com/ariebrainware/tripwire/middleware"
	"github.com/ariebrainware/tripwire/model"
	"github.com/ariebrainware/tripwire/persistence"
	"github.com/ariebrainware/tripwire/store"
	"github.com/ariebrainware/tripwire/trap"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://tripwire.test"

type requestSpec struct {
	method      string
	requestPath string
	body        interface{}
	headers     map[string]string
}

type testEnv struct {
	router  *gin.Engine
	store   *store.Store
	adapter *persistence.MemoryAdapter
	svc     *middleware.Services
}

type envOption func(*middleware.Services, *RouterConfig)

func withGenerator(g generator.Generator) envOption {
	return func(s *middleware.Services, _ *RouterConfig) { s.Generator = g }
}

func withRateLimit(limit int) envOption {
	return func(_ *middleware.Services, cfg *RouterConfig) {
		cfg.GenerateRateLimit = limit
		cfg.GenerateRateWindow = time.Hour
	}
}

// newTestEnv wires the full router over an in-memory store seeded with tokens.
func newTestEnv(t *testing.T, tokens []model.HoneyToken, opts ...envOption) *testEnv {
	t.Helper()
	return newSeededTestEnv(t, tokens, nil, opts...)
}

func newSeededTestEnv(t *testing.T, tokens []model.HoneyToken, alerts []model.Alert, opts ...envOption) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adapter := persistence.NewMemoryAdapter()
	st, err := store.Open(context.Background(), adapter, store.Options{SeedTokens: tokens, SeedAlerts: alerts})
	require.NoError(t, err)

	det := trap.NewDetector(st)
	t.Cleanup(det.Wait)

	svc := &middleware.Services{
		Store:     st,
		Detector:  det,
		Generator: generator.Mock{},
		BaseURL:   testBaseURL,
	}
	cfg := RouterConfig{AppName: "tripwire", GenerateRateLimit: 100, GenerateRateWindow: time.Minute}
	for _, opt := range opts {
		opt(svc, &cfg)
	}

	return &testEnv{
		router:  SetupRouter(svc, cfg),
		store:   st,
		adapter: adapter,
		svc:     svc,
	}
}

func testToken(id string, status model.TokenStatus) model.HoneyToken {
	return model.HoneyToken{
		ID:           id,
		Name:         "Token " + id,
		Kind:         model.KindDeceptiveURL,
		TriggerValue: testBaseURL + "/trap?token_id=" + id,
		CreatedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:       status,
	}
}

func performRequest(r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	var reader *strings.Reader
	setJSONHeader := false
	switch v := spec.body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
		setJSONHeader = true
	default:
		b, _ := json.Marshal(spec.body)
		reader = strings.NewReader(string(b))
		setJSONHeader = true
	}

	req := httptest.NewRequest(spec.method, spec.requestPath, reader)
	if setJSONHeader {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range spec.headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			return w, nil, err
		}
	}
	return w, response, nil
}

// mustRequest performs the request and decodes the APIResponse envelope.
func mustRequest(t *testing.T, r *gin.Engine, spec requestSpec) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w, resp, err := performRequest(r, spec)
	require.NoError(t, err)
	return w, resp
}

func dataMap(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "data is not an object: %v", resp["data"])
	return data
}

func dataList(t *testing.T, resp map[string]interface{}) []interface{} {
	t.Helper()
	data, ok := resp["data"].([]interface{})
	require.True(t, ok, "data is not a list: %v", resp["data"])
	return data
}

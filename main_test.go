package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"Thermowall/internal/auth"
	"Thermowall/internal/calc/catalog"
	"Thermowall/internal/config"
	"Thermowall/internal/repo"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memRepo struct {
	repo.Repository
	saved []repo.Calculation
}

func (m *memRepo) SaveCalculation(_ context.Context, userID int, kind string, _, _ any) (string, error) {
	m.saved = append(m.saved, repo.Calculation{ID: "c1", UserID: userID, Kind: kind})
	return "c1", nil
}

func (m *memRepo) ListCalculations(_ context.Context, userID, _ int) ([]repo.Calculation, error) {
	return m.saved, nil
}

func newTestServer(t *testing.T, opts ...func(*config.Config)) (http.Handler, *memRepo, string) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	store := &memRepo{}
	cfg := config.Config{TokenKey: "test-key", RateLimit: 100, RateBurst: 100}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := mux.NewRouter()
	HandleList(r, deps{cfg: cfg, repo: store, catalog: cat, log: zap.NewNop()})

	token, err := (&auth.Authenv{JWTkey: []byte(cfg.TokenKey)}).IssueToken(3, "eng")
	require.NoError(t, err)
	return CORS(r), store, token
}

func TestRoutes_WallCalcRequiresAuth(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/user/tools/wall/calc", bytes.NewBufferString(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_WallCalcSavesHistory(t *testing.T) {
	h, store, token := newTestServer(t)

	body := `{"length_m":6,"height_m":3,
		"main_material":{"name":"brick","conductivity":0.51,"thickness_m":0.6},
		"insulator":{"name":"mineral wool","conductivity":0.04},
		"city":"Saint Petersburg"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/wall/calc", bytes.NewBufferString(body))
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"insulation_thickness_m":0.07`)
	assert.Contains(t, rec.Body.String(), `"id":"c1"`)
	require.Len(t, store.saved, 1)
	assert.Equal(t, 3, store.saved[0].UserID)

	req = httptest.NewRequest(http.MethodGet, "/api/user/history", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"c1"`)
}

func TestRoutes_ConfiguredResistanceOnEveryEndpoint(t *testing.T) {
	h, _, token := newTestServer(t, func(c *config.Config) { c.RequiredResistance = 3.5 })

	item := `{"length_m":6,"height_m":3,
		"main_material":{"name":"brick","conductivity":0.51,"thickness_m":0.6},
		"insulator":{"name":"mineral wool","conductivity":0.04}}`
	tests := []struct {
		path, body, want string
	}{
		{"/api/user/tools/wall/calc", item, `"insulation_thickness_m":0.09`},
		{"/api/user/tools/wall/batch", `{"items":[` + item + `]}`, `"insulation_thickness_m":0.09`},
		{"/api/user/tools/wall/recommend", `{"wall":` + item + `}`, `"required_resistance":3.5`},
		{"/api/user/tools/wall/autodesign", `{"material":"brick","conductivity":0.51}`, `"required_resistance":3.5`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestRoutes_Materials(t *testing.T) {
	h, _, token := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user/tools/materials", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mineral wool"`)
}

func TestCORS_Preflight(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/user/tools/wall/calc", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("loud")
	assert.Error(t, err)
}

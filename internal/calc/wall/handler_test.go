package wall

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Thermowall/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingSaver struct {
	userID int
	kind   string
	err    error
}

func (s *recordingSaver) SaveCalculation(_ context.Context, userID int, kind string, _, _ any) (string, error) {
	s.userID = userID
	s.kind = kind
	if s.err != nil {
		return "", s.err
	}
	return "calc-1", nil
}

func postCalc(t *testing.T, h *Handler, ctx context.Context, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/tools/wall/calc", bytes.NewReader(raw)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	return rec
}

func TestHandler_Calc(t *testing.T) {
	saver := &recordingSaver{}
	h := &Handler{Repo: saver, Log: zap.NewNop()}

	rec := postCalc(t, h, auth.WithUser(context.Background(), 7, "eng"), brickInput())
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		AreaM2               float64  `json:"area_m2"`
		InsulationThicknessM float64  `json:"insulation_thickness_m"`
		Volumes              []Volume `json:"volumes"`
		ID                   string   `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, 18.0, out.AreaM2)
	assert.Equal(t, 0.07, out.InsulationThicknessM)
	assert.Equal(t, "calc-1", out.ID)
	assert.Equal(t, 7, saver.userID)
	assert.Equal(t, "wall", saver.kind)
}

func TestHandler_Calc_AnonymousIsNotSaved(t *testing.T) {
	saver := &recordingSaver{}
	h := &Handler{Repo: saver}

	rec := postCalc(t, h, context.Background(), brickInput())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, saver.userID)
}

func TestHandler_Calc_SaveFailureStillAnswers(t *testing.T) {
	h := &Handler{Repo: &recordingSaver{err: errors.New("db down")}}

	rec := postCalc(t, h, auth.WithUser(context.Background(), 7, "eng"), brickInput())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"id"`)
}

func TestHandler_Calc_BadRequests(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodPost, "/tools/wall/calc", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	in := brickInput()
	in.LengthM = 0
	rec = postCalc(t, h, context.Background(), in)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	in = brickInput()
	in.City = "Saint Petersburg"
	rec = postCalc(t, h, context.Background(), in)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	in = brickInput()
	in.LengthM, in.HeightM = 1e200, 1e200
	rec = postCalc(t, h, context.Background(), in)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too large")
}

func TestHandler_Calc_DefaultResistance(t *testing.T) {
	h := &Handler{Resolver: Resolver{DefaultResistance: 3.5}}

	rec := postCalc(t, h, context.Background(), brickInput())
	require.Equal(t, http.StatusOK, rec.Code)

	var out Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Equal(t, 3.5, out.RequiredResistance)
	require.NotNil(t, out.InsulationThicknessM)
	assert.Equal(t, 0.09, *out.InsulationThicknessM)
}

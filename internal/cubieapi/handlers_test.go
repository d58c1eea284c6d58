package cubieapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	return NewServer(zerolog.Nop())
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealthz(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCoordinatesByScramble(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/api/v1/coordinates", CoordinatesRequest{Scramble: "R U R' U'"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CoordinatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Valid)
}

func TestHandleCoordinatesBadScramble(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/api/v1/coordinates", CoordinatesRequest{Scramble: "Rw"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidateSolved(t *testing.T) {
	solved := "000000000111111111222222222333333333444444444555555555"
	rec := doRequest(t, testServer(), http.MethodPost, "/api/v1/validate", ValidateRequest{Facelets: solved})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Valid)
	require.Empty(t, resp.Violations)
}

func TestHandleValidateBadLength(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodPost, "/api/v1/validate", ValidateRequest{Facelets: "000"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSymmetryFixesSolved(t *testing.T) {
	solvedFacelets := "000000000111111111222222222333333333444444444555555555"
	rec := doRequest(t, testServer(), http.MethodGet, "/api/v1/symmetries/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SymmetryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 5, resp.Index)
	require.Equal(t, solvedFacelets, resp.Facelets)
}

func TestHandleSymmetryOutOfRange(t *testing.T) {
	rec := doRequest(t, testServer(), http.MethodGet, "/api/v1/symmetries/999", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

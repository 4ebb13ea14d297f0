package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func dataOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", body)
	return data
}

func TestComputeEstimate_PlainBox(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/estimate",
		`{"plyType":"3-ply","length":10,"width":10,"height":10,"quantity":500}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, true, body["success"])

	data := dataOf(t, body)
	require.InDelta(t, 16.2, data["pricePerUnit"], 1e-9)
	require.InDelta(t, 8100.00, data["totalPrice"], 1e-9)
	require.InDelta(t, 0.90, data["discountFactor"], 1e-9)
	require.InDelta(t, 0.0, data["printingCost"], 1e-9)
}

func TestComputeEstimate_WithPrinting(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/estimate",
		`{"plyType":"5-ply","length":20,"width":15,"height":10,"quantity":1000,"printingRequested":true,"colorCount":2}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, decodeEnvelope(t, rec))
	// 25 * 1.6 + 9 = 49, top tier discount 0.85
	require.InDelta(t, 41.65, data["pricePerUnit"], 1e-9)
	require.InDelta(t, 41650.00, data["totalPrice"], 1e-9)
	require.InDelta(t, 9.0, data["printingCost"], 1e-9)
}

func TestComputeEstimate_UnknownPly(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/estimate",
		`{"plyType":"9-ply","length":10,"width":10,"height":10,"quantity":100}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Equal(t, false, body["success"])

	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, errs, "plyType")
}

func TestComputeEstimate_ColorCountOutOfRange(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := doJSON(srv, http.MethodPost, "/api/estimate",
		`{"plyType":"3-ply","length":10,"width":10,"height":10,"quantity":100,"printingRequested":true,"colorCount":5}`, "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs, ok := decodeEnvelope(t, rec)["errors"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, errs, "colorCount")
}

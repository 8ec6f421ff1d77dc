package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func checkPincode(t *testing.T, pincode string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/delivery/check/"+pincode, nil)
	req = mux.SetURLVars(req, map[string]string{"pincode": pincode})
	rec := httptest.NewRecorder()

	CheckDelivery(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return rec, body
}

func TestCheckDeliveryRejectsMalformedPincode(t *testing.T) {
	for _, input := range []string{"12345", "1234567", "56000a", "abcdef"} {
		rec, body := checkPincode(t, input)
		require.Equal(t, http.StatusBadRequest, rec.Code, "input %q", input)
		require.Equal(t, "error", body["status"], "input %q", input)
	}
}

func TestCheckDeliveryUnresolvedPincodeIsNotAnError(t *testing.T) {
	// prefiks 99 tidak dikenal dan tidak ada provider geocoding di test:
	// jawaban tetap 200, bukan 5xx, supaya UI bisa menampilkan pesannya
	rec, body := checkPincode(t, "999999")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, false, body["deliverable"])
	require.NotEmpty(t, body["message"])
	require.Nil(t, body["location"])
}

func TestCheckDeliveryHeuristicFallback(t *testing.T) {
	// tanpa provider, pincode Karnataka di-resolve lewat prefiks
	rec, body := checkPincode(t, "560099")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, body["deliverable"])

	loc, ok := body["location"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "Karnataka", loc["state"])
	require.Equal(t, true, loc["degraded"])
}

func TestCheckProductDeliveryRejectsBadProductID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/delivery/check/abc/560001", nil)
	req = mux.SetURLVars(req, map[string]string{"productId": "abc", "pincode": "560001"})
	rec := httptest.NewRecorder()

	CheckProductDelivery(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

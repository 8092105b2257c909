package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestHandleProcessKey_TonalWord(t *testing.T) {
	srv := newServer()

	var last processKeyResponse
	for _, key := range []string{"t", "o", "a", "n", "s"} {
		rec := doJSON(t, srv.handleProcessKey, http.MethodPost, "/process-key", processKeyRequest{
			SessionID: "test-session",
			Key:       key,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &last))
	}

	require.Equal(t, "toán", last.Preedit)
	require.Equal(t, "test-session", last.SessionID)
}

func TestHandleProcessKey_UnrecognisedKey(t *testing.T) {
	srv := newServer()
	rec := doJSON(t, srv.handleProcessKey, http.MethodPost, "/process-key", processKeyRequest{
		Key: "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleConfig_RoundTrip(t *testing.T) {
	srv := newServer()
	enabled := true
	rec := doJSON(t, srv.handleConfig, http.MethodPost, "/config", configRequest{
		SessionID:       "cfg-session",
		Method:          "vni",
		Enabled:         &enabled,
		AutocorrectMode: "both",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got configResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "vni", got.Method)
	require.Equal(t, "both", got.AutocorrectMode)
	require.True(t, got.Enabled)
}

func TestHandleConfig_RejectsUnknownMethod(t *testing.T) {
	srv := newServer()
	rec := doJSON(t, srv.handleConfig, http.MethodPost, "/config", configRequest{
		Method: "qwerty",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleVersion(t *testing.T) {
	srv := newServer()
	rec := doJSON(t, srv.handleVersion, http.MethodGet, "/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["version"])
}

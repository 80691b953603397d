package gin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ParamsBridging(t *testing.T) {
	srv := New("test")

	var got map[string]string
	srv.RegisterHandler("/things/:thingID", "GET", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Context().Value("params").(map[string]string)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/things/42", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", got["thingID"])
}

func TestServer_RequestID(t *testing.T) {
	srv := New("test")
	srv.RegisterHandler("/ok", "GET", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Generated when absent.
	req := httptest.NewRequest("GET", "/ok", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Kept when the caller sent one.
	req = httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestServer_Ping(t *testing.T) {
	srv := New("test")

	req := httptest.NewRequest("GET", "/bbb-pads/ping", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["data"])
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := New("test")

	req := httptest.NewRequest("GET", "/nope", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

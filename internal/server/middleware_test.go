package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		allowedOrigins []string
		origin         string
		method         string
		expectedCode   int
		expectedOrigin string
	}{
		{
			name:           "no configured origins allows any origin",
			origin:         "http://192.168.1.20:3000",
			method:         http.MethodGet,
			expectedCode:   http.StatusOK,
			expectedOrigin: "http://192.168.1.20:3000",
		},
		{
			name:           "configured origin is echoed",
			allowedOrigins: []string{"https://rutinas.example.com"},
			origin:         "https://rutinas.example.com",
			method:         http.MethodGet,
			expectedCode:   http.StatusOK,
			expectedOrigin: "https://rutinas.example.com",
		},
		{
			name:           "unknown origin gets no allow header",
			allowedOrigins: []string{"https://rutinas.example.com"},
			origin:         "https://evil.example.com",
			method:         http.MethodGet,
			expectedCode:   http.StatusOK,
			expectedOrigin: "",
		},
		{
			name:         "preflight short-circuits",
			origin:       "http://localhost:3000",
			method:       http.MethodOptions,
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(tt.method, "/api/user", nil)
			if tt.origin != "" {
				request.Header.Set("Origin", tt.origin)
			}

			CORSMiddleware(tt.allowedOrigins, next).ServeHTTP(recorder, request)

			assert.Equal(t, tt.expectedCode, recorder.Code)
			if tt.expectedOrigin != "" {
				assert.Equal(t, tt.expectedOrigin, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	require.NoError(t, Initialize("debug"))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	assert.Error(t, Initialize("loud"))
}

func TestWithLogging(t *testing.T) {
	type want struct {
		status   int64
		size     int64
		location string
	}

	tests := []struct {
		name    string
		request string
		handler http.HandlerFunc
		want    want
	}{
		{
			name:    "Test logging #1 implicit status",
			request: "/home",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("hello"))
			},
			want: want{status: http.StatusOK, size: 5},
		},
		{
			name:    "Test logging #2 redirect",
			request: "/secure_redirect?redirect_url=/profile",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "/profile")
				w.WriteHeader(http.StatusFound)
			},
			want: want{status: http.StatusFound, location: "/profile"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := Log
			core, logs := observer.New(zap.InfoLevel)
			Log = zap.New(core)
			t.Cleanup(func() { Log = prev })

			h := WithRequestID(WithLogging(tt.handler))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.request, nil))

			entries := logs.FilterMessage("Request served").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.want.status, fields["status"])
			assert.Equal(t, tt.want.size, fields["size"])
			assert.Equal(t, tt.request, fields["uri"])
			assert.Equal(t, tt.want.location, fields["location"])
			assert.Equal(t, w.Header().Get(RequestIDHeader), fields["request_id"])
		})
	}
}

func TestWithRequestID(t *testing.T) {
	h := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "client-id", w.Header().Get(RequestIDHeader))
}

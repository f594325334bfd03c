package health

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/ping" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("PONG"))
	}))
	defer srv.Close()

	host := strings.TrimPrefix(srv.URL, "http://")
	require.NoError(t, CheckOnce(host))
}

func TestWaitRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("PONG"))
	}))
	defer srv.Close()

	host := strings.TrimPrefix(srv.URL, "http://")
	require.NoError(t, Wait(host, 5, time.Millisecond))
	assert.Equal(t, int32(3), calls.Load())
}

func TestCheckOnceStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := CheckOnce(strings.TrimPrefix(srv.URL, "http://"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHostFromEnv(t *testing.T) {
	t.Setenv("DASHBOARD_HOST", "")
	assert.Equal(t, defaultHost, Host())

	t.Setenv("DASHBOARD_HOST", "dash:9000")
	assert.Equal(t, "dash:9000", Host())
}

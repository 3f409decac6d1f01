package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Houeta/dsm44-seeder/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepRecorder struct {
	calls []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) {
	s.calls = append(s.calls, d)
}

func newTestSubmitter(t *testing.T, policy RetryPolicy) (*Submitter, *sleepRecorder, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	recorder := &sleepRecorder{}

	sub := NewSubmitter(logger, &http.Client{Timeout: time.Second}, testMetrics, policy)
	sub.sleep = recorder.sleep

	return sub, recorder, testMetrics
}

func TestSubmit_FailsTwiceThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id_empleado":7}`))
	}))
	defer server.Close()

	sub, recorder, testMetrics := newTestSubmitter(t, RetryPolicy{MaxAttempts: 3, Delay: 250 * time.Millisecond})

	resp := sub.Submit(t.Context(), server.URL+"/empleados", map[string]string{"nombre": "Juan"})

	require.NotNil(t, resp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"id_empleado":7}`, string(resp.Body))
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []time.Duration{250 * time.Millisecond, 250 * time.Millisecond}, recorder.calls)
	assert.InDelta(t, 2, testutil.ToFloat64(testMetrics.SubmitRetries.WithLabelValues("/empleados")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.SubmitAttempts.WithLabelValues("/empleados", "success")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(testMetrics.SubmitAttempts.WithLabelValues("/empleados", "failure")), 0)
}

func TestSubmit_AlwaysFails(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	sub, recorder, _ := newTestSubmitter(t, RetryPolicy{MaxAttempts: 2, Delay: time.Second})

	resp := sub.Submit(t.Context(), server.URL+"/empleados/create-asistencia", struct{}{})

	assert.Nil(t, resp)
	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, recorder.calls, 1)
}

func TestSubmit_ClientErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	sub, recorder, _ := newTestSubmitter(t, RetryPolicy{MaxAttempts: 4})

	resp := sub.Submit(t.Context(), server.URL, struct{}{})

	assert.Nil(t, resp)
	assert.Equal(t, int32(4), calls.Load())
	assert.Len(t, recorder.calls, 3)
}

func TestSubmit_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	deadURL := server.URL
	server.Close()

	sub, recorder, _ := newTestSubmitter(t, RetryPolicy{MaxAttempts: 3})

	resp := sub.Submit(t.Context(), deadURL+"/empleados", struct{}{})

	assert.Nil(t, resp)
	assert.Len(t, recorder.calls, 2)
}

func TestSubmit_SendsIdenticalJSONBody(t *testing.T) {
	var (
		mu     sync.Mutex
		bodies []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)

		mu.Lock()
		bodies = append(bodies, string(raw))
		first := len(bodies) == 1
		mu.Unlock()

		if first {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sub, _, _ := newTestSubmitter(t, RetryPolicy{MaxAttempts: 2})

	payload := map[string]any{"fecha": "2025-01-01", "empleado": 3}
	resp := sub.Submit(t.Context(), server.URL, payload)

	require.NotNil(t, resp)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(bodies[0]), &decoded))
	assert.Equal(t, "2025-01-01", decoded["fecha"])
	assert.InDelta(t, 3, decoded["empleado"], 0)
}

func TestSubmit_UnencodablePayload(t *testing.T) {
	sub, recorder, _ := newTestSubmitter(t, RetryPolicy{MaxAttempts: 3})

	resp := sub.Submit(t.Context(), "http://localhost/empleados", make(chan int))

	assert.Nil(t, resp)
	assert.Empty(t, recorder.calls)
}

func TestNewSubmitter_Defaults(t *testing.T) {
	sub := NewSubmitter(slog.Default(), &http.Client{}, metrics.NewMetrics(prometheus.NewRegistry()),
		RetryPolicy{MaxAttempts: 0, Delay: -time.Second})

	assert.Equal(t, DefaultMaxAttempts, sub.policy.MaxAttempts)
	assert.Equal(t, DefaultDelay, sub.policy.Delay)
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	sleepContext(ctx, time.Minute)

	assert.Less(t, time.Since(start), time.Second)
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "/api/dsm44/empleados", endpointLabel("http://localhost:3009/api/dsm44/empleados?x=1"))
	assert.Equal(t, "unknown", endpointLabel("http://localhost:3009"))
	assert.Equal(t, "unknown", endpointLabel("::bad"))
}

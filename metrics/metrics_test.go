// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	m := New("test")

	ok := m.Middleware("GET /ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fine"))
	})
	missing := m.Middleware("GET /missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	broken := m.Middleware("GET /broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 3; i++ {
		ok(httptest.NewRecorder(), httptest.NewRequest("GET", "/ok", nil))
	}
	missing(httptest.NewRecorder(), httptest.NewRequest("GET", "/missing", nil))
	broken(httptest.NewRecorder(), httptest.NewRequest("GET", "/broken", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "GET /ok", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "GET /missing", "404")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.statusCategory.WithLabelValues("2xx", "GET", "GET /ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusCategory.WithLabelValues("4xx", "GET", "GET /missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusCategory.WithLabelValues("5xx", "GET", "GET /broken")))
}

func TestMiddlewarePreservesResponse(t *testing.T) {
	m := New("test")

	handler := m.Middleware("POST /things", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1}`))
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("POST", "/things", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"id":1}`, w.Body.String())
}

func TestObserveTx(t *testing.T) {
	m := New("test")

	m.ObserveTx("create consideration", "commit")
	m.ObserveTx("create consideration", "commit")
	m.ObserveTx("delete consideration", "not_found")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transactions.WithLabelValues("create consideration", "commit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transactions.WithLabelValues("delete consideration", "not_found")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New("vault")
	m.ObserveTx("create consideration", "rollback")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "db_transactions_total"), "missing transaction counter")
	assert.True(t, strings.Contains(body, `service="vault"`), "missing service label")
}

func TestIndependentRegistries(t *testing.T) {
	// Two instances must not collide on registration
	require.NotPanics(t, func() {
		New("a")
		New("b")
	})
}

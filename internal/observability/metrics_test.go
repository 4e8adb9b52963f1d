package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/products", "GET", 200, 10*time.Millisecond)
	metrics.RecordRequest("/products", "GET", 200, 5*time.Millisecond)
	metrics.RecordError("/products", "PUT", "NOT_FOUND")

	assert.Equal(t, int64(2), metrics.RequestCount("/products", "GET", 200))
	assert.Equal(t, int64(0), metrics.RequestCount("/products", "GET", 500))
	assert.Equal(t, int64(1), metrics.ErrorCount("/products", "PUT", "NOT_FOUND"))
}

func TestMetricsNilReceiver(t *testing.T) {
	var metrics *Metrics

	metrics.RecordRequest("/products", "GET", 200, time.Millisecond)
	metrics.RecordError("/products", "GET", "INTERNAL_ERROR")

	assert.Equal(t, int64(0), metrics.RequestCount("/products", "GET", 200))
	assert.Equal(t, int64(0), metrics.ErrorCount("/products", "GET", "INTERNAL_ERROR"))
}

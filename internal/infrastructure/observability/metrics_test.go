package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestDomainMetrics_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDomainMetrics("test", reg)

	m.Delivery("success", 120*time.Millisecond)
	m.GateRejected("outstanding_balance")
	m.GateRejected("outstanding_balance")
	m.Transition("draft", "sent")
	m.Compensation("deleted")
	m.OrphanSwept()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Deliveries.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GateRejections.WithLabelValues("outstanding_balance")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("draft", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Compensations.WithLabelValues("deleted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrphansSwept))
}

func TestDomainMetrics_NilIsNoop(t *testing.T) {
	var m *DomainMetrics
	assert.NotPanics(t, func() {
		m.Delivery("success", time.Second)
		m.GateRejected("x")
		m.Transition("a", "b")
		m.Compensation("failed")
		m.OrphanSwept()
	})
}

func TestNewDomainMetrics_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewDomainMetrics("test", reg)
	second := NewDomainMetrics("test", reg)

	second.OrphanSwept()
	assert.Equal(t, 1.0, testutil.ToFloat64(first.OrphansSwept))
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "json", "warn")

	log.Info().Msg("hidden")
	log.Warn().Str("quote_id", "q1").Msg("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"quote_id":"q1"`)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLogLevel("debug"))
	assert.Equal(t, gormlogger.Error, GormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel("info"))
}

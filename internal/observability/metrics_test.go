package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordSignup("Chess Club", OutcomeOK)
	m.RecordSignup("Chess Club", OutcomeOK)
	m.RecordSignup("Chess Club", OutcomeDuplicate)
	m.RecordUnregister("Chess Club", OutcomeNotRegistered)
	m.SetParticipants("Chess Club", 3)
	m.AddParticipants("Chess Club", 2)
	m.AddParticipants("Chess Club", -1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.signups.WithLabelValues("Chess Club", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.signups.WithLabelValues("Chess Club", OutcomeDuplicate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.unregistrations.WithLabelValues("Chess Club", OutcomeNotRegistered)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.participants.WithLabelValues("Chess Club")))
}

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}

func TestCountersAreRegistered(t *testing.T) {
	before := testutil.ToFloat64(Payments.WithLabelValues("quote", "paypal"))
	Payments.WithLabelValues("quote", "paypal").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Payments.WithLabelValues("quote", "paypal")))
}

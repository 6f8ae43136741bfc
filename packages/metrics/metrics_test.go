package metrics

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velas/vlxaddress/packages/address"
)

func TestObserve(t *testing.T) {
	conversions := NewConversions()

	conversions.Observe(DirectionEthToVlx, nil)
	conversions.Observe(DirectionEthToVlx, nil)
	conversions.Observe(DirectionVlxToEth, errors.Errorf("decoding failed: %w", address.ErrChecksumMismatch))
	conversions.Observe(DirectionVlxToEth, errors.New("unexpected"))

	assert.Equal(t, 2.0, testutil.ToFloat64(conversions.total.WithLabelValues(DirectionEthToVlx, resultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(conversions.total.WithLabelValues(DirectionVlxToEth, "checksumMismatch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(conversions.total.WithLabelValues(DirectionVlxToEth, resultUnknown)))
	assert.Equal(t, 2.0, testutil.ToFloat64(conversions.failed.WithLabelValues(DirectionVlxToEth)))
	assert.Equal(t, 0.0, testutil.ToFloat64(conversions.failed.WithLabelValues(DirectionEthToVlx)))
}

func TestRegistry(t *testing.T) {
	conversions := NewConversions()
	conversions.Observe(DirectionEthToVlx, nil)

	families, err := conversions.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, family := range families {
		names[family.GetName()] = true
	}
	assert.True(t, names["vlxaddress_conversions_total"])
	assert.True(t, names["go_goroutines"])
}

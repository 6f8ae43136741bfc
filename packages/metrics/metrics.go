// Package metrics counts address conversions and exposes them to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/velas/vlxaddress/packages/jsonmodels"
)

const (
	namespace = "vlxaddress"

	// DirectionEthToVlx labels conversions from the hex form into the encoded form.
	DirectionEthToVlx = "eth_to_vlx"
	// DirectionVlxToEth labels conversions from the encoded form into the hex form.
	DirectionVlxToEth = "vlx_to_eth"

	resultSuccess = "success"
	resultUnknown = "unknown"
)

// Conversions holds the collectors of the address conversions and the registry they are registered with.
type Conversions struct {
	registry *prometheus.Registry
	total    *prometheus.CounterVec
	failed   *prometheus.CounterVec
}

// NewConversions creates the conversion collectors and registers them, together with the go runtime and process
// collectors, with a new registry.
func NewConversions() *Conversions {
	c := &Conversions{
		registry: prometheus.NewRegistry(),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Number of address conversions by direction and result.",
		}, []string{"direction", "result"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversion_failures_total",
			Help:      "Number of failed address conversions by direction.",
		}, []string{"direction"}),
	}

	c.registry.MustRegister(c.total)
	c.registry.MustRegister(c.failed)
	c.registry.MustRegister(prometheus.NewGoCollector())
	c.registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	return c
}

// Observe records the outcome of a conversion in the given direction.
func (c *Conversions) Observe(direction string, err error) {
	if err == nil {
		c.total.WithLabelValues(direction, resultSuccess).Inc()
		return
	}

	result := string(jsonmodels.ErrorKindFromError(err))
	if result == "" {
		result = resultUnknown
	}
	c.total.WithLabelValues(direction, result).Inc()
	c.failed.WithLabelValues(direction).Inc()
}

// Registry returns the registry the collectors are registered with.
func (c *Conversions) Registry() *prometheus.Registry {
	return c.registry
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dvn

import (
	"errors"

	"github.com/luxfi/metric"
)

// Metrics records lifecycle transitions. A nil *Metrics records nothing.
type Metrics struct {
	PacketsReceived      metric.Counter
	PacketsDropped       metric.Counter
	VerificationsStarted metric.Counter
	Status               metric.Gauge // numeric Status
}

func NewMetrics(namespace string, registerer metric.Registerer) (*Metrics, error) {
	m := &Metrics{
		PacketsReceived: metric.NewCounter(metric.CounterOpts{
			Namespace: namespace,
			Name:      "packets_received",
			Help:      "number of packets stored for verification (n)",
		}),
		PacketsDropped: metric.NewCounter(metric.CounterOpts{
			Namespace: namespace,
			Name:      "packets_dropped",
			Help:      "number of stored packets dropped without verification (n)",
		}),
		VerificationsStarted: metric.NewCounter(metric.CounterOpts{
			Namespace: namespace,
			Name:      "verifications_started",
			Help:      "number of transitions into the verifying status (n)",
		}),
		Status: metric.NewGauge(metric.GaugeOpts{
			Namespace: namespace,
			Name:      "status",
			Help:      "current lifecycle status (0=stopped, 1=listening, 2=packet_received, 3=verifying)",
		}),
	}
	return m, errors.Join(
		registerer.Register(m.PacketsReceived),
		registerer.Register(m.PacketsDropped),
		registerer.Register(m.VerificationsStarted),
		registerer.Register(m.Status),
	)
}

func (m *Metrics) setStatus(s Status) {
	if m == nil {
		return
	}
	m.Status.Set(float64(s))
}

func (m *Metrics) received() {
	if m == nil {
		return
	}
	m.PacketsReceived.Inc()
}

func (m *Metrics) dropped() {
	if m == nil {
		return
	}
	m.PacketsDropped.Inc()
}

func (m *Metrics) verifying() {
	if m == nil {
		return
	}
	m.VerificationsStarted.Inc()
}

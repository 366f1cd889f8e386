// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dvn

import "github.com/luxfi/log"

// Option configures a DVN
type Option interface {
	apply(d *DVN)
}

type optionFunc func(d *DVN)

func (o optionFunc) apply(d *DVN) {
	o(d)
}

// WithLogger sets the logger used for lifecycle diagnostics
func WithLogger(logger log.Logger) Option {
	return optionFunc(func(d *DVN) {
		d.log = logger
	})
}

// WithMetrics records lifecycle transitions into m
func WithMetrics(m *Metrics) Option {
	return optionFunc(func(d *DVN) {
		d.metrics = m
	})
}

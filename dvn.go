// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dvn tracks the lifecycle of a decentralized verifier node and the
// single packet it is currently attesting to.
package dvn

import (
	"github.com/luxfi/ids"
	"github.com/luxfi/log"

	"github.com/luxfi/dvn/config"
	"github.com/luxfi/dvn/packet"
)

// DVN holds the verifier status and at most one packet.
//
// A DVN is not safe for concurrent use. Callers tracking several packets at
// once run one DVN per packet.
type DVN struct {
	config  config.Config
	log     log.Logger
	metrics *Metrics

	status Status
	packet *packet.Packet
}

// New returns a stopped DVN with no packet.
func New(cfg config.Config, options ...Option) *DVN {
	d := &DVN{
		config: cfg,
		log:    log.NewNoOpLogger(),
		status: Stopped,
	}
	for _, option := range options {
		option.apply(d)
	}
	d.metrics.setStatus(d.status)
	return d
}

// NewFromEnv returns a stopped DVN configured from the DVN_* environment
// variables.
func NewFromEnv(options ...Option) (*DVN, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg, options...), nil
}

func (d *DVN) Config() config.Config {
	return d.config
}

func (d *DVN) Status() Status {
	return d.status
}

// Packet returns a copy of the stored packet.
func (d *DVN) Packet() (packet.Packet, bool) {
	if d.packet == nil {
		return packet.Packet{}, false
	}
	return d.packet.Clone(), true
}

// Listening moves the DVN to Listening.
func (d *DVN) Listening() {
	d.setStatus(Listening)
}

// PacketReceived stores a copy of p, replacing any stored packet, and moves
// the DVN to PacketReceived. The payload is not validated here.
func (d *DVN) PacketReceived(p packet.Packet) {
	stored := p.Clone()
	d.packet = &stored
	d.metrics.received()
	d.setStatus(PacketReceived)
}

// ResetPacket drops the stored packet and moves the DVN back to Listening.
// It is called when this DVN is not required to verify the packet.
func (d *DVN) ResetPacket() {
	d.packet = nil
	d.metrics.dropped()
	d.setStatus(Listening)
	d.log.Debug("DVN not required, stored packet dropped")
}

// Verifying moves the DVN to Verifying. The stored packet is kept.
func (d *DVN) Verifying() {
	d.metrics.verifying()
	d.setStatus(Verifying)
}

// Header decodes the header of the stored packet.
func (d *DVN) Header() (packet.Header, bool) {
	if d.packet == nil {
		return packet.Header{}, false
	}
	return packet.ExtractHeader(d.packet.EncodedPayload)
}

// HeaderHash returns the keccak256 digest of the stored packet's header.
func (d *DVN) HeaderHash() (ids.ID, bool) {
	if d.packet == nil {
		return ids.Empty, false
	}
	return packet.HeaderHash(d.packet.EncodedPayload)
}

// MessageHash returns the keccak256 digest of the stored packet's message.
func (d *DVN) MessageHash() (ids.ID, bool) {
	if d.packet == nil {
		return ids.Empty, false
	}
	return packet.MessageHash(d.packet.EncodedPayload)
}

func (d *DVN) setStatus(s Status) {
	d.status = s
	d.metrics.setStatus(s)
	d.log.Debug("dvn status changed",
		log.Stringer("status", s),
	)
}

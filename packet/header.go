// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package packet decodes the encoded payload of packets emitted by a source
// chain endpoint.
//
// The payload is a flat record with no per-field length prefixes:
//
//	version(1) | nonce(8) | srcEID(4) | sender(4) | dstEID(4) | receiver(32) | guid(32) | message
//
// All integers are big-endian.
package packet

import (
	"fmt"
	"slices"

	"github.com/luxfi/ids"
	"github.com/luxfi/vm/utils/wrappers"
)

const (
	// AddressLen is the width of the receiver and guid fields.
	AddressLen = 32

	// HeaderLen is the number of bytes consumed while reading a Header and
	// produced by Header.Bytes.
	HeaderLen = wrappers.ByteLen + wrappers.LongLen + 3*wrappers.IntLen + 2*AddressLen

	// MinimumLength is the shortest payload that is accepted by the
	// extraction functions.
	MinimumLength = 93

	// MessageOffset is the number of leading bytes skipped by
	// ExtractMessage.
	//
	// MessageOffset is shorter than HeaderLen, so the message starts with
	// the last four guid bytes. Both values match the packets already being
	// attested to and must not be changed independently of each other.
	MessageOffset = 81
)

// Header is the fixed-width prefix of an encoded payload.
type Header struct {
	Version  uint8
	Nonce    uint64
	SrcEID   uint32
	Sender   uint32
	DstEID   uint32
	Receiver ids.ID
	GUID     ids.ID
}

// ExtractHeader decodes the header at the start of raw. Returns false if raw
// is shorter than MinimumLength. Field values are not validated.
func ExtractHeader(raw []byte) (Header, bool) {
	if len(raw) < MinimumLength {
		return Header{}, false
	}

	p := wrappers.Packer{Bytes: raw}
	var h Header
	h.Version = p.UnpackByte()
	h.Nonce = p.UnpackLong()
	h.SrcEID = p.UnpackInt()
	h.Sender = p.UnpackInt()
	h.DstEID = p.UnpackInt()
	copy(h.Receiver[:], p.UnpackFixedBytes(AddressLen))
	copy(h.GUID[:], p.UnpackFixedBytes(AddressLen))
	if p.Errored() {
		return Header{}, false
	}
	return h, true
}

// ExtractMessage returns a copy of everything after MessageOffset. Returns
// false if raw is shorter than MinimumLength.
func ExtractMessage(raw []byte) ([]byte, bool) {
	if len(raw) < MinimumLength {
		return nil, false
	}
	return slices.Clone(raw[MessageOffset:]), true
}

// Bytes serializes the header in the same field order ExtractHeader reads
// it, with no padding.
func (h Header) Bytes() []byte {
	p := wrappers.Packer{
		Bytes: make([]byte, HeaderLen),
	}
	p.PackByte(h.Version)
	p.PackLong(h.Nonce)
	p.PackInt(h.SrcEID)
	p.PackInt(h.Sender)
	p.PackInt(h.DstEID)
	p.PackFixedBytes(h.Receiver[:])
	p.PackFixedBytes(h.GUID[:])
	return p.Bytes
}

func (h Header) String() string {
	return fmt.Sprintf(
		"v%d nonce %d: %d -> %d (sender %d, receiver %s, guid %s)",
		h.Version,
		h.Nonce,
		h.SrcEID,
		h.DstEID,
		h.Sender,
		h.Receiver,
		h.GUID,
	)
}

// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dvntest builds packets and configs for tests.
package dvntest

import (
	"slices"

	"github.com/luxfi/ids"

	"github.com/luxfi/dvn/config"
	"github.com/luxfi/dvn/packet"
)

// Header returns a header with a distinct value in every field.
func Header() packet.Header {
	h := packet.Header{
		Version: 1,
		Nonce:   0x0102030405060708,
		SrcEID:  30101,
		Sender:  0xdeadbeef,
		DstEID:  30184,
	}
	for i := range h.Receiver {
		h.Receiver[i] = byte(0x20 + i)
		h.GUID[i] = byte(0x80 + i)
	}
	return h
}

// Payload returns the encoded payload of a packet carrying h and message.
func Payload(h packet.Header, message []byte) []byte {
	return slices.Concat(h.Bytes(), message)
}

// Packet wraps payload into a packet sent by a fixed send library.
func Packet(payload []byte) packet.Packet {
	return packet.Packet{
		EncodedPayload: payload,
		Options:        []byte{0x00, 0x03},
		SendLibrary:    ids.ShortID{0x5e, 0x11},
	}
}

// Config returns a config that passes validation.
func Config() config.Config {
	return config.Config{
		SourceEID:      30101,
		TargetEID:      30184,
		SourceRPCURL:   "https://source.example.com",
		TargetRPCURL:   "https://target.example.com",
		SourceEndpoint: ids.ShortID{0x1a, 0x44},
		DVNAddress:     ids.ShortID{0xd0, 0x0d},
	}
}

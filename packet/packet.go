// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package packet

import (
	"slices"

	"github.com/luxfi/ids"
)

// Packet is a PacketSent event emitted by the source chain endpoint.
type Packet struct {
	// EncodedPayload is the header followed by the message.
	EncodedPayload []byte
	// Options are the executor and DVN options attached by the sender. They
	// are carried but never decoded here.
	Options []byte
	// SendLibrary is the address of the message library that emitted the
	// packet.
	SendLibrary ids.ShortID
}

// Clone returns a copy of p that shares no memory with it.
func (p Packet) Clone() Packet {
	return Packet{
		EncodedPayload: slices.Clone(p.EncodedPayload),
		Options:        slices.Clone(p.Options),
		SendLibrary:    p.SendLibrary,
	}
}

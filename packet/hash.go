// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package packet

import (
	"github.com/luxfi/crypto"
	"github.com/luxfi/ids"
)

// Keccak256 returns the legacy Keccak-256 digest of the concatenation of
// data as an ids.ID.
func Keccak256(data ...[]byte) ids.ID {
	var digest ids.ID
	copy(digest[:], crypto.Keccak256(data...))
	return digest
}

// HeaderHash returns the digest of the re-serialized header of raw.
func HeaderHash(raw []byte) (ids.ID, bool) {
	header, ok := ExtractHeader(raw)
	if !ok {
		return ids.Empty, false
	}
	return Keccak256(header.Bytes()), true
}

// MessageHash returns the digest of the message bytes of raw.
func MessageHash(raw []byte) (ids.ID, bool) {
	message, ok := ExtractMessage(raw)
	if !ok {
		return ids.Empty, false
	}
	return Keccak256(message), true
}

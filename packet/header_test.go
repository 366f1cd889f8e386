// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package packet_test

import (
	"encoding/binary"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/dvn/dvntest"
	"github.com/luxfi/dvn/packet"
)

func TestLayoutConstants(t *testing.T) {
	require := require.New(t)

	require.Equal(85, packet.HeaderLen)
	require.Equal(93, packet.MinimumLength)
	require.Equal(81, packet.MessageOffset)
}

func TestExtractShortInput(t *testing.T) {
	for _, size := range []int{0, 1, packet.MessageOffset, packet.HeaderLen, packet.MinimumLength - 1} {
		raw := make([]byte, size)

		_, ok := packet.ExtractHeader(raw)
		require.False(t, ok, "ExtractHeader accepted %d bytes", size)

		message, ok := packet.ExtractMessage(raw)
		require.False(t, ok, "ExtractMessage accepted %d bytes", size)
		require.Nil(t, message)

		_, ok = packet.HeaderHash(raw)
		require.False(t, ok, "HeaderHash accepted %d bytes", size)

		_, ok = packet.MessageHash(raw)
		require.False(t, ok, "MessageHash accepted %d bytes", size)
	}

	_, ok := packet.ExtractHeader(nil)
	require.False(t, ok)
}

func TestExtractZeroPacket(t *testing.T) {
	require := require.New(t)

	raw := make([]byte, packet.MinimumLength)

	header, ok := packet.ExtractHeader(raw)
	require.True(ok)
	require.Equal(packet.Header{}, header)

	message, ok := packet.ExtractMessage(raw)
	require.True(ok)
	require.NotEmpty(message)
	require.Len(message, packet.MinimumLength-packet.MessageOffset)
	require.Equal(make([]byte, 12), message)
}

func TestExtractHeaderFields(t *testing.T) {
	require := require.New(t)

	want := dvntest.Header()
	raw := dvntest.Payload(want, []byte("hello world"))

	got, ok := packet.ExtractHeader(raw)
	require.True(ok)
	require.Equal(want.Version, got.Version)
	require.Equal(want.Nonce, got.Nonce)
	require.Equal(want.SrcEID, got.SrcEID)
	require.Equal(want.Sender, got.Sender)
	require.Equal(want.DstEID, got.DstEID)
	require.Equal(want.Receiver, got.Receiver)
	require.Equal(want.GUID, got.GUID)
}

func TestExtractHeaderIgnoresTrailingBytes(t *testing.T) {
	require := require.New(t)

	h := dvntest.Header()
	short, ok := packet.ExtractHeader(dvntest.Payload(h, make([]byte, 8)))
	require.True(ok)
	long, ok := packet.ExtractHeader(dvntest.Payload(h, make([]byte, 4096)))
	require.True(ok)
	require.Equal(short, long)
}

func TestHeaderBytesLayout(t *testing.T) {
	require := require.New(t)

	h := dvntest.Header()
	b := h.Bytes()
	require.Len(b, packet.HeaderLen)

	require.Equal(h.Version, b[0])
	require.Equal(h.Nonce, binary.BigEndian.Uint64(b[1:9]))
	require.Equal(h.SrcEID, binary.BigEndian.Uint32(b[9:13]))
	require.Equal(h.Sender, binary.BigEndian.Uint32(b[13:17]))
	require.Equal(h.DstEID, binary.BigEndian.Uint32(b[17:21]))
	require.Equal(h.Receiver[:], b[21:53])
	require.Equal(h.GUID[:], b[53:85])
}

func TestHeaderBytesRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		header packet.Header
	}{
		{
			name: "zero",
		},
		{
			name:   "distinct fields",
			header: dvntest.Header(),
		},
		{
			name: "max integers",
			header: packet.Header{
				Version: 0xff,
				Nonce:   ^uint64(0),
				SrcEID:  ^uint32(0),
				Sender:  ^uint32(0),
				DstEID:  ^uint32(0),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			raw := dvntest.Payload(tt.header, make([]byte, packet.MinimumLength-packet.HeaderLen))
			decoded, ok := packet.ExtractHeader(raw)
			require.True(ok)
			require.Equal(tt.header, decoded)
			require.Equal(raw[:packet.HeaderLen], decoded.Bytes())
		})
	}
}

func TestExtractMessageOffset(t *testing.T) {
	require := require.New(t)

	h := dvntest.Header()
	body := []byte("cross-chain message body")
	raw := dvntest.Payload(h, body)

	message, ok := packet.ExtractMessage(raw)
	require.True(ok)
	require.Len(message, len(raw)-packet.MessageOffset)
	// The skip stops short of the header, so the tail of the guid leads the
	// message.
	require.Equal(slices.Concat(h.GUID[guidTail:], body), message)
}

// guidTail is where the guid bytes returned by ExtractMessage begin.
const guidTail = packet.AddressLen - (packet.HeaderLen - packet.MessageOffset)

func TestExtractDoesNotMutateOrAlias(t *testing.T) {
	require := require.New(t)

	raw := dvntest.Payload(dvntest.Header(), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	original := slices.Clone(raw)

	header, ok := packet.ExtractHeader(raw)
	require.True(ok)
	message, ok := packet.ExtractMessage(raw)
	require.True(ok)
	require.Equal(original, raw)

	header.Receiver[0] ^= 0xff
	header.GUID[0] ^= 0xff
	message[0] ^= 0xff
	require.Equal(original, raw)
}

func TestHeaderString(t *testing.T) {
	s := dvntest.Header().String()
	require.Contains(t, s, "30101 -> 30184")
	require.Contains(t, s, "nonce 72623859790382856")
}

func TestExtractSequentialBytes(t *testing.T) {
	require := require.New(t)

	raw := make([]byte, packet.MinimumLength)
	for i := range raw {
		raw[i] = byte(i)
	}

	header, ok := packet.ExtractHeader(raw)
	require.True(ok)
	require.Equal(uint8(0), header.Version)
	require.Equal(uint64(0x0102030405060708), header.Nonce)
	require.Equal(uint32(0x090a0b0c), header.SrcEID)
	require.Equal(uint32(0x0d0e0f10), header.Sender)
	require.Equal(uint32(0x11121314), header.DstEID)
	require.Equal(raw[21:53], header.Receiver[:])
	require.Equal(raw[53:85], header.GUID[:])
	require.Equal(raw[:packet.HeaderLen], header.Bytes())

	message, ok := packet.ExtractMessage(raw)
	require.True(ok)
	require.Len(message, 12)
	require.Equal(byte(packet.MessageOffset), message[0])

	digest, ok := packet.HeaderHash(raw)
	require.True(ok)
	require.Equal(packet.Keccak256(header.Bytes()), digest)
}

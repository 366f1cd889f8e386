// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dvn

// Status is the lifecycle phase of a DVN.
type Status uint8

const (
	Stopped Status = iota
	Listening
	PacketReceived
	Verifying
)

func (s Status) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Listening:
		return "listening"
	case PacketReceived:
		return "packet_received"
	case Verifying:
		return "verifying"
	default:
		return "unknown"
	}
}

// Package session drives wire.Record values across an external transport.
// It is a thin layer over wire: the codec stays synchronous and
// non-blocking, and session only adds what a real transport needs —
// timeouts, backpressure via AvailableBytes, and observability.
package session

import (
	"context"
	"time"
)

// Outbound is a transport capable of accepting an encoded record.
// AvailableBytes reports current backpressure headroom; Post attempts
// delivery before timeout elapses.
type Outbound interface {
	AvailableBytes() int
	Post(ctx context.Context, b []byte, timeout time.Duration) error
}

// Inbound is the receive side of a transport.
type Inbound interface {
	AvailableBytes() int
	Request(ctx context.Context, dst []byte, timeout time.Duration) error
}

package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shmit-go/wirecodec/clock"
	"github.com/shmit-go/wirecodec/wire"
)

// Recorder is implemented by domain types that can be staged for wire
// transfer. Record must return the same *wire.Record on every call for a
// given value (same field ordering, same cached size).
type Recorder interface {
	Record() *wire.Record
}

var (
	egressAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "session_egress_attempts_total",
		Help: "Outbound Post attempts by outcome.",
	}, []string{"outcome"})

	egressEncodeSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "session_egress_encode_seconds",
		Help: "Time spent encoding a record before Post.",
	})
)

func init() {
	prometheus.MustRegister(egressAttempts, egressEncodeSeconds)
}

// Egress stages and posts Recorder values over an Outbound port.
type Egress struct {
	out   Outbound
	clock clock.Clock
	log   *zap.Logger
}

// NewEgress constructs an Egress over out. log may be nil, in which case a
// no-op logger is used.
func NewEgress(out Outbound, c clock.Clock, log *zap.Logger) *Egress {
	if log == nil {
		log = zap.NewNop()
	}
	return &Egress{out: out, clock: c, log: log}
}

// Post encodes v's Record into a pooled scratch buffer and posts it to the
// Outbound port, subtracting encode time from the caller's timeout. If the
// port reports insufficient AvailableBytes, Post returns ErrUnavailable
// without touching the transport.
func (e *Egress) Post(ctx context.Context, v Recorder, timeout time.Duration) error {
	rec := v.Record()
	size := int(rec.SizeBytes())

	if e.out.AvailableBytes() < size {
		egressAttempts.WithLabelValues("unavailable").Inc()
		return ErrUnavailable
	}

	sb := wire.GetScratchBuffer()
	defer wire.PutScratchBuffer(sb)
	buf := sb.Grow(size)

	start := e.clock.Now()
	cursor := uint(0)
	if res := rec.Encode(buf, &cursor); !res.IsSuccess() {
		egressAttempts.WithLabelValues("encode_failed").Inc()
		e.log.Error("session: record encode failed", zap.Int("size", size))
		return ErrCodecFailed
	}
	elapsed := e.clock.Since(start)

	remaining := timeout - elapsed
	if remaining < 0 {
		remaining = 0
	}

	if err := e.out.Post(ctx, buf, remaining); err != nil {
		egressAttempts.WithLabelValues("transport_error").Inc()
		e.log.Warn("session: post failed", zap.Error(err), zap.Duration("remaining", remaining))
		return &TransportError{Op: "post", Err: err}
	}

	egressAttempts.WithLabelValues("success").Inc()
	egressEncodeSeconds.Observe(elapsed.Seconds())
	return nil
}

package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shmit-go/wirecodec/clock"
	"github.com/shmit-go/wirecodec/wire"
)

var ingressAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "session_ingress_attempts_total",
	Help: "Inbound Request attempts by outcome.",
}, []string{"outcome"})

func init() {
	prometheus.MustRegister(ingressAttempts)
}

// Ingress requests bytes over an Inbound port and decodes them into a
// Recorder's Record.
type Ingress struct {
	in    Inbound
	clock clock.Clock
	log   *zap.Logger
}

// NewIngress constructs an Ingress over in. log may be nil.
func NewIngress(in Inbound, c clock.Clock, log *zap.Logger) *Ingress {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ingress{in: in, clock: c, log: log}
}

// Request reads v's Record's size in bytes from the Inbound port and
// decodes into v.Record() in place. It returns ErrUnavailable if the port
// does not yet have that many bytes available.
func (i *Ingress) Request(ctx context.Context, v Recorder, timeout time.Duration) error {
	rec := v.Record()
	size := int(rec.SizeBytes())

	if i.in.AvailableBytes() < size {
		ingressAttempts.WithLabelValues("unavailable").Inc()
		return ErrUnavailable
	}

	sb := wire.GetScratchBuffer()
	defer wire.PutScratchBuffer(sb)
	buf := sb.Grow(size)

	if err := i.in.Request(ctx, buf, timeout); err != nil {
		ingressAttempts.WithLabelValues("transport_error").Inc()
		i.log.Warn("session: request failed", zap.Error(err))
		return &TransportError{Op: "request", Err: err}
	}

	cursor := uint(0)
	if res := rec.Decode(buf, &cursor); !res.IsSuccess() {
		ingressAttempts.WithLabelValues("decode_failed").Inc()
		i.log.Error("session: record decode failed", zap.Int("size", size))
		return ErrCodecFailed
	}

	ingressAttempts.WithLabelValues("success").Inc()
	return nil
}

package domain

import (
	"context"
	"errors"
	"time"
)

// Transport is the output channel for the sample stream.
// Send writes a single line followed by the line terminator.
type Transport interface {
	Send(ctx context.Context, line []byte) error
}

// SampleStreamer encodes samples and emits them on a transport, one line per sample.
type SampleStreamer struct {
	transport Transport
	logger    Logger
}

// Stream drains the samples channel and sends each sample as a bracketed
// comma-separated line. When the transport reports it is not ready, the streamer
// waits briefly and drops the sample instead of buffering it; there is no history
// to preserve. The method blocks until the channel is closed.
func (s *SampleStreamer) Stream(ctx context.Context, samples <-chan Sample) {
	var buf []byte
	for sample := range samples {
		buf = sample.AppendLine(buf[:0])
		err := s.transport.Send(ctx, buf)
		if err == nil {
			continue
		}

		if errors.Is(err, ErrTransportNotReady) {
			delay := time.Second * 1
			s.logger.Info("transport is not ready, waiting for %s", delay)
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		} else {
			s.logger.Error("error emitting sample: %s", err.Error())
		}
	}
}

// NewSampleStreamer creates a SampleStreamer with the specified transport and logger.
func NewSampleStreamer(transport Transport, logger Logger) *SampleStreamer {
	return &SampleStreamer{
		transport: transport,
		logger:    logger,
	}
}

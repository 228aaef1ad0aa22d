package domain

import (
	"bytes"
	"context"
	"fmt"
	"time"
)

// Writer defines the destination recorded readings are appended to.
type Writer interface {
	// IsReady returns true if the writer can accept data.
	IsReady() bool

	// Write appends the provided data to the destination.
	Write(data []byte) error

	// Reconnect re-establishes the connection to the destination.
	Reconnect(ctx context.Context) error

	// Close shuts the writer down and releases its resources.
	Close() error
}

// ReadingRecorder appends one record per received reading to a Writer.
// When a write fails it triggers a writer reconnect and retries the record,
// so a rotated or deleted log file does not lose the stream.
type ReadingRecorder struct {
	logger      Logger
	writer      Writer
	reconnectCh chan bool
}

// Start listens for reconnection triggers until the context is cancelled.
func (r *ReadingRecorder) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.reconnectCh:
			if err := r.writer.Reconnect(ctx); err != nil {
				r.logger.Error("error on reconnecting: %s", err.Error())
			}
		}
	}
}

// triggerReconnect sends a non-blocking reconnect signal.
func (r *ReadingRecorder) triggerReconnect() {
	select {
	case r.reconnectCh <- true:
	default:
	}
}

// waitWriter blocks until the writer becomes ready or the context is cancelled,
// polling once per second.
func (r *ReadingRecorder) waitWriter(ctx context.Context) {
	if r.writer.IsReady() {
		return
	}
	r.logger.Error("writer is not ready")
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second * 1):
			if r.writer.IsReady() {
				return
			}
		}
	}
}

// Consume formats and records readings from the channel until it is closed.
func (r *ReadingRecorder) Consume(ctx context.Context, readings <-chan *Reading) {
	for reading := range readings {
		r.waitWriter(ctx)

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "time=%s \t acc=[%g,%g,%g]\n",
			reading.ReceivedAt.Format(time.RFC3339Nano),
			reading.Acc.X, reading.Acc.Y, reading.Acc.Z,
		)
		record := buf.Bytes()

		for r.writer.Write(record) != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			r.triggerReconnect()
			r.waitWriter(ctx)
		}
	}
}

// NewReadingRecorder creates a ReadingRecorder with the provided logger and writer.
func NewReadingRecorder(logger Logger, writer Writer) *ReadingRecorder {
	return &ReadingRecorder{
		logger:      logger,
		reconnectCh: make(chan bool, 1),
		writer:      writer,
	}
}

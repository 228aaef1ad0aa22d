// Package infrastructure provides concrete implementations of the monitor domain
// abstractions: the serial line stream, the buffered reading log, and the
// kscreen-doctor rotator.
package infrastructure

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	monitorDomain "github.com/okorenko/tiltstream/monitor/domain"
)

// maxMalformedLines is how many consecutive unparseable lines are tolerated before
// the stream is considered broken. Partial lines right after opening the port are
// normal; an endless stream of garbage usually means a wrong baud rate.
const maxMalformedLines = 4

// LineStreamReader turns the device's text line stream into validated readings.
type LineStreamReader struct {
	closedLock   sync.RWMutex
	logger       monitorDomain.Logger
	readings     chan *monitorDomain.Reading
	interceptors *monitorDomain.Interceptors[monitorDomain.Reading]
	closed       bool
}

// GetReadingsChannel returns the read-only channel carrying parsed readings.
func (s *LineStreamReader) GetReadingsChannel() <-chan *monitorDomain.Reading {
	return s.readings
}

// Stop closes the readings channel. After Stop no new readings are delivered.
func (s *LineStreamReader) Stop() {
	s.closedLock.Lock()
	defer s.closedLock.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	close(s.readings)
}

// send safely delivers a reading to the channel.
// It prevents writing to a closed channel during shutdown.
func (s *LineStreamReader) send(ctx context.Context, reading *monitorDomain.Reading) error {
	s.closedLock.RLock()
	defer s.closedLock.RUnlock()

	if s.closed {
		return errors.New("stream reader is closed")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.readings <- reading:
		return nil
	}
}

// Consume scans lines from r until the context is cancelled, the stream ends, or too
// many consecutive lines are malformed.
//
// Line handling:
//  1. Malformed lines are dropped; after maxMalformedLines in a row an error is returned.
//  2. Readings rejected by the interceptor chain are dropped, and reset the malformed
//     counter since the line itself was well-formed.
//  3. Valid readings are timestamped and forwarded to the readings channel.
func (s *LineStreamReader) Consume(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	malformed := 0

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		acc, err := monitorDomain.ParseLine(scanner.Text())
		if err != nil {
			malformed++
			s.logger.Error("dropping line: %s", err.Error())
			if malformed >= maxMalformedLines {
				return fmt.Errorf("%d consecutive malformed lines: %w", malformed, err)
			}
			continue
		}
		malformed = 0

		reading := &monitorDomain.Reading{Acc: acc, ReceivedAt: time.Now()}
		if err := s.interceptors.Apply(reading); err != nil {
			s.logger.Error("reading rejected: %s", err.Error())
			continue
		}

		if err := s.send(ctx, reading); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// NewLineStreamReader creates a LineStreamReader with the given interceptor chain.
func NewLineStreamReader(
	interceptors *monitorDomain.Interceptors[monitorDomain.Reading],
	logger monitorDomain.Logger,
) *LineStreamReader {
	return &LineStreamReader{
		logger:       logger,
		interceptors: interceptors,
		readings:     make(chan *monitorDomain.Reading, 10),
	}
}

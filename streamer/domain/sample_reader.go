package domain

import (
	"context"
	"time"
)

// SampleReader acquires samples from an accelerometer at a fixed interval.
type SampleReader struct {
	logger      Logger
	maxCapacity uint32
	interval    SampleInterval
}

// Read starts the acquisition loop and returns the channel it delivers samples on.
// One sample is read per interval tick until the context is cancelled, then the
// channel is closed. A failed read is logged and the tick is skipped, so no stale
// or fabricated value ever reaches the channel.
func (r *SampleReader) Read(ctx context.Context, accel Accelerometer) <-chan Sample {
	sampleCh := make(chan Sample, r.maxCapacity)
	ticker := time.NewTicker(time.Duration(r.interval))

	go func() {
		for {
			select {
			case <-ctx.Done():
				close(sampleCh)
				ticker.Stop()
				return
			case <-ticker.C:
				sample, err := accel.Read()
				if err != nil {
					r.logger.Error("error reading accelerometer: %s", err.Error())
					continue
				}
				select {
				case sampleCh <- sample:
				case <-ctx.Done():
					close(sampleCh)
					ticker.Stop()
					return
				}
			}
		}
	}()

	return sampleCh
}

// NewSampleReader creates a SampleReader with the given interval and channel capacity.
func NewSampleReader(interval SampleInterval, maxCapacity uint32, logger Logger) *SampleReader {
	return &SampleReader{
		interval:    interval,
		maxCapacity: maxCapacity,
		logger:      logger,
	}
}

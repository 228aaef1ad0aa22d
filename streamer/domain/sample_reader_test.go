package domain

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type mockLogger struct {
	mu         sync.Mutex
	errorCalls []string
}

func (m *mockLogger) Info(_ string, _ ...interface{}) {}

func (m *mockLogger) Error(msg string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCalls = append(m.errorCalls, msg)
}

func (m *mockLogger) GetErrorCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.errorCalls...)
}

type mockAccelerometer struct {
	sample     Sample
	readErr    error
	bringUpErr error
}

func (m *mockAccelerometer) BringUp(_ context.Context) error {
	return m.bringUpErr
}

func (m *mockAccelerometer) Read() (Sample, error) {
	return m.sample, m.readErr
}

func TestSampleReader_Read(t *testing.T) {
	t.Run("reads samples at a fixed interval", func(t *testing.T) {
		accel := &mockAccelerometer{sample: Sample{X: 1.0, Y: -2.5, Z: 9.81}}
		interval, _ := NewSampleInterval(50 * time.Millisecond)
		reader := NewSampleReader(interval, 2, &mockLogger{})

		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond) // +- 10 reads per 500ms
		defer cancel()

		sampleCh := reader.Read(ctx, accel)

		var received []Sample
		for sample := range sampleCh {
			received = append(received, sample)
		}

		if len(received) < 4 {
			t.Errorf("expected at least 4 samples, got %d", len(received))
		}

		for _, sample := range received {
			if sample != accel.sample {
				t.Errorf("expected sample %+v, got %+v", accel.sample, sample)
			}
		}
	})

	t.Run("paces emissions by the configured interval", func(t *testing.T) {
		accel := &mockAccelerometer{sample: Sample{Z: 1}}
		interval, _ := NewSampleInterval(100 * time.Millisecond)
		reader := NewSampleReader(interval, 2, &mockLogger{})

		elapsed := 350 * time.Millisecond
		ctx, cancel := context.WithTimeout(context.Background(), elapsed)
		defer cancel()

		count := 0
		for range reader.Read(ctx, accel) {
			count++
		}

		// At a 100ms interval no more than elapsed/interval samples fit.
		if max := int(elapsed / (100 * time.Millisecond)); count > max {
			t.Errorf("expected at most %d samples in %s, got %d", max, elapsed, count)
		}
	})

	t.Run("stops reading when context is cancelled", func(t *testing.T) {
		accel := &mockAccelerometer{sample: Sample{Z: 1}}
		interval, _ := NewSampleInterval(time.Millisecond)
		reader := NewSampleReader(interval, 2, &mockLogger{})

		ctx, cancel := context.WithCancel(context.Background())
		sampleCh := reader.Read(ctx, accel)
		time.Sleep(20 * time.Millisecond)

		cancel()

		timeout := time.After(100 * time.Millisecond)
		for {
			select {
			case _, ok := <-sampleCh:
				if !ok {
					return
				}
			case <-timeout:
				t.Fatal("timed out waiting for channel to close")
			}
		}
	})

	t.Run("skips the tick when the read fails", func(t *testing.T) {
		accel := &mockAccelerometer{readErr: errors.New("bus error")}
		logger := &mockLogger{}
		interval, _ := NewSampleInterval(10 * time.Millisecond)
		reader := NewSampleReader(interval, 2, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		count := 0
		for range reader.Read(ctx, accel) {
			count++
		}

		if count != 0 {
			t.Errorf("expected no samples from a failing accelerometer, got %d", count)
		}
		if len(logger.GetErrorCalls()) == 0 {
			t.Error("expected read failures to be logged")
		}
	})
}

package domain

import (
	"context"
	"errors"
	"testing"
)

func TestInitializer_BringUp_Success(t *testing.T) {
	accel := &mockAccelerometer{}
	transport := &mockTransport{}
	initializer := NewInitializer(&mockLogger{})

	if err := initializer.BringUp(context.Background(), accel, transport); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if lines := transport.GetLines(); len(lines) != 0 {
		t.Errorf("expected no diagnostic on success, got %d lines", len(lines))
	}
}

func TestInitializer_BringUp_Failure(t *testing.T) {
	accel := &mockAccelerometer{bringUpErr: errors.New("device id mismatch")}
	transport := &mockTransport{}
	initializer := NewInitializer(&mockLogger{})

	err := initializer.BringUp(context.Background(), accel, transport)
	if !errors.Is(err, ErrSensorUnavailable) {
		t.Fatalf("expected ErrSensorUnavailable, got %v", err)
	}

	lines := transport.GetLines()
	if len(lines) != 1 {
		t.Fatalf("expected the diagnostic to be written exactly once, got %d lines", len(lines))
	}
	if lines[0] != BringupDiagnostic {
		t.Errorf("expected diagnostic %q, got %q", BringupDiagnostic, lines[0])
	}
}

func TestInitializer_BringUp_DiagnosticWriteFailure(t *testing.T) {
	accel := &mockAccelerometer{bringUpErr: errors.New("device id mismatch")}
	transport := &mockTransport{sendError: errors.New("port gone")}
	logger := &mockLogger{}
	initializer := NewInitializer(logger)

	err := initializer.BringUp(context.Background(), accel, transport)
	if !errors.Is(err, ErrSensorUnavailable) {
		t.Fatalf("expected ErrSensorUnavailable, got %v", err)
	}

	if calls := logger.GetErrorCalls(); len(calls) != 1 {
		t.Errorf("expected the failed diagnostic write to be logged once, got %d", len(calls))
	}
}

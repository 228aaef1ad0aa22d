package infrastructure

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	monitorDomain "github.com/okorenko/tiltstream/monitor/domain"
)

// FileWriter is a buffered append-only log file writer. It flushes the buffer at a
// fixed interval and can reopen the file when the recorder requests a reconnect.
type FileWriter struct {
	logPath       monitorDomain.LogPath
	logger        monitorDomain.Logger
	bufferSize    monitorDomain.BufferSize
	flushInterval monitorDomain.FlushInterval
	readyLock     sync.Mutex
	f             *os.File
	w             *bufio.Writer
	wLock         sync.Mutex
	ready         bool
}

func (fw *FileWriter) setReady(val bool) {
	fw.readyLock.Lock()
	defer fw.readyLock.Unlock()
	fw.ready = val
}

// IsReady returns true if the writer can accept data.
func (fw *FileWriter) IsReady() bool {
	fw.readyLock.Lock()
	defer fw.readyLock.Unlock()
	return fw.ready
}

// Write appends data to the write buffer.
func (fw *FileWriter) Write(data []byte) error {
	if !fw.IsReady() {
		return fmt.Errorf("file writer is not ready")
	}
	fw.wLock.Lock()
	defer fw.wLock.Unlock()
	if fw.w == nil {
		return fmt.Errorf("file writer is not ready")
	}
	_, err := fw.w.Write(data)
	return err
}

// Reconnect closes the current file and opens it again. The writer becomes ready
// again only once the file is open; a failed reopen leaves it not ready, and the
// flush loop in Start keeps retrying.
func (fw *FileWriter) Reconnect(ctx context.Context) error {
	fw.setReady(false)

	_ = fw.Close()

	if err := fw.open(ctx); err != nil {
		return err
	}
	fw.setReady(true)
	return nil
}

// Close flushes remaining buffered data and closes the file handle.
func (fw *FileWriter) Close() error {
	if fw.w != nil {
		if err := fw.flush(); err != nil {
			fw.logger.Error("error on flushing buffer: %s", err.Error())
		}
	}

	if fw.f != nil {
		if err := fw.f.Close(); err != nil {
			fw.logger.Error("error on closing file: %s", err.Error())
		}
	}
	return nil
}

func (fw *FileWriter) flush() error {
	fw.wLock.Lock()
	defer fw.wLock.Unlock()
	if fw.w == nil {
		return nil
	}
	return fw.w.Flush()
}

// open creates the log file if needed and wraps it with the sized buffer.
func (fw *FileWriter) open(_ context.Context) error {
	f, err := os.OpenFile(string(fw.logPath), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		fw.logger.Error("error on opening file: %s", err.Error())
		return fmt.Errorf("error on opening file: %w", err)
	}

	fw.f = f
	fw.w = bufio.NewWriterSize(f, int(fw.bufferSize))
	return nil
}

// Start opens the log file and runs the periodic flush loop until the context is
// cancelled, then closes the file. When the file cannot be opened the writer stays
// not ready and the open is retried on every tick, so an unwritable log path never
// takes the process down.
func (fw *FileWriter) Start(ctx context.Context) {
	defer func() {
		if err := fw.Close(); err != nil {
			fw.logger.Error("error on closing file writer: %s", err.Error())
		}
	}()

	if err := fw.open(ctx); err != nil {
		fw.logger.Error("error on opening log: %s", err.Error())
	} else {
		fw.setReady(true)
	}

	ticker := time.NewTicker(time.Duration(fw.flushInterval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !fw.IsReady() {
				if err := fw.open(ctx); err != nil {
					continue
				}
				fw.setReady(true)
				continue
			}
			if err := fw.flush(); err != nil {
				fw.logger.Error("error on flushing buffer: %s", err.Error())
			}
		}
	}
}

// NewFileWriter creates a FileWriter. It is not ready until Start has opened the file.
func NewFileWriter(
	logPath monitorDomain.LogPath,
	bufferSize monitorDomain.BufferSize,
	flushInterval monitorDomain.FlushInterval,
	logger monitorDomain.Logger,
) *FileWriter {
	return &FileWriter{
		logPath:       logPath,
		bufferSize:    bufferSize,
		flushInterval: flushInterval,
		logger:        logger,
		ready:         false,
	}
}

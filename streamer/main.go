// Streamer polls a 3-axis accelerometer at a fixed interval and emits one bracketed
// comma-separated line per sample on a serial transport.
//
// Usage example: streamer -device /dev/ttyUSB0 -baud 9600 -interval 100ms
//
// Flags:
//
//	-device: serial output device, or - for stdout
//	-baud: serial baud rate
//	-interval: pause between samples
//	-i2c-bus: I2C bus the accelerometer is attached to
//	-simulate: read from a simulated accelerometer instead of the I2C device
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kidoman/embd"
	_ "github.com/kidoman/embd/host/all"

	streamerDomain "github.com/okorenko/tiltstream/streamer/domain"
	streamerInfrastructure "github.com/okorenko/tiltstream/streamer/infrastructure"
)

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	flag.Usage()
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	config, err := streamerInfrastructure.GetConfigParameters()
	if err != nil {
		endWithError(err)
	}

	logger := streamerInfrastructure.NewLogrusLogger()

	var transport streamerDomain.Transport
	if config.Device == "-" {
		transport = streamerInfrastructure.NewWriterTransport(os.Stdout)
	} else {
		serialTransport, err := streamerInfrastructure.OpenSerialTransport(config.Device, config.Baud)
		if err != nil {
			logger.Error("error opening transport: %s", err.Error())
			os.Exit(1)
		}
		defer serialTransport.Close()
		transport = serialTransport
	}

	var accel streamerDomain.Accelerometer
	if config.Simulate {
		accel = streamerInfrastructure.SimulatedAccelerometer{}
	} else {
		accel = streamerInfrastructure.NewADXL345(embd.NewI2CBus(config.I2CBus), logger)
	}

	initializer := streamerDomain.NewInitializer(logger)
	if err := initializer.BringUp(ctx, accel, transport); err != nil {
		// The diagnostic line is already on the transport; the hosting
		// environment decides whether to restart.
		logger.Error("%s", err.Error())
		os.Exit(1)
	}

	wg := &sync.WaitGroup{}

	reader := streamerDomain.NewSampleReader(config.Interval, 2, logger)
	samples := reader.Read(ctx, accel)

	streamer := streamerDomain.NewSampleStreamer(transport, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = streamerDomain.SafeRun(func() error {
			streamer.Stream(ctx, samples)
			return nil
		}, logger)
	}()

	wg.Wait()
	logger.Info("streamer stopped")
}

// Monitor reads acceleration lines produced by the streamer from a serial port,
// records them to a log file, and rotates a KDE Plasma display through
// kscreen-doctor whenever the device orientation changes.
//
// Usage example: monitor -config ./monitor.yaml
//
// The configuration file names the serial device, the log file, the display output
// and the two calibration vectors; see config.example.yaml. Running with -calibrate
// measures the two vectors from the live stream and writes them back to the file.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	monitorDomain "github.com/okorenko/tiltstream/monitor/domain"
	monitorInfrastructure "github.com/okorenko/tiltstream/monitor/infrastructure"
)

// calibrationSamples is how many readings are averaged per calibration measurement.
const calibrationSamples = 25

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	flag.Usage()
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	configPath := flag.String("config", "monitor.yaml", "path to the YAML configuration file")
	calibrate := flag.Bool("calibrate", false, "measure the calibration vectors from the live stream and save them")
	flag.Parse()

	config, err := monitorInfrastructure.LoadConfig(*configPath)
	if err != nil {
		endWithError(err)
	}

	logger := monitorInfrastructure.NewLogrusLogger()

	if *calibrate {
		if err := runCalibration(ctx, config, *configPath, logger); err != nil {
			logger.Error("calibration failed: %s", err.Error())
			os.Exit(1)
		}
		return
	}

	logger.Info("Creating services...")
	wg := &sync.WaitGroup{}

	writer := monitorInfrastructure.NewFileWriter(
		config.LogPath,
		config.BufferSize,
		config.FlushInterval,
		logger,
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		writer.Start(ctx)
	}()

	recorder := monitorDomain.NewReadingRecorder(logger, writer)
	wg.Add(1)
	go func() {
		defer wg.Done()
		recorder.Start(ctx)
	}()

	port, err := monitorInfrastructure.OpenSerialPort(config.Device, config.Baud)
	if err != nil {
		logger.Error("error opening serial port: %s", err.Error())
		finish()
		wg.Wait()
		os.Exit(1)
	}

	// closing the port unblocks the scanner on shutdown
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		_ = port.Close()
	}()

	interceptors := monitorDomain.WithInterceptors[monitorDomain.Reading](
		monitorInfrastructure.NewPanicRecoveryInterceptor[monitorDomain.Reading](
			monitorInfrastructure.NewReadingValidator(),
			logger,
		),
	)
	streamReader := monitorInfrastructure.NewLineStreamReader(interceptors, logger)

	trackerCh := make(chan *monitorDomain.Reading, 10)
	recorderCh := make(chan *monitorDomain.Reading, 10)
	wg.Add(1)
	go func() {
		defer wg.Done()
		monitorDomain.Broadcast(streamReader.GetReadingsChannel(), []chan<- *monitorDomain.Reading{
			trackerCh,
			recorderCh,
		})
	}()

	rotator := monitorInfrastructure.NewKScreenRotator(config.Display, logger)
	tracker := monitorDomain.NewRotationTracker(config.Orientations, rotator, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = monitorDomain.SafeRun(func() error {
			tracker.Track(ctx, trackerCh)
			return nil
		}, logger)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = monitorDomain.SafeRun(func() error {
			recorder.Consume(ctx, recorderCh)
			return nil
		}, logger)
		logger.Info("reading recorder stopped")
	}()

	logger.Info("Reading from %s", config.Device)
	if err := streamReader.Consume(ctx, port); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stream reader stopped: %s", err.Error())
	}

	streamReader.Stop()
	finish()
	wg.Wait()
	logger.Info("All components stopped gracefully")
}

// runCalibration measures the acceleration with the display upright and rotated 90
// degrees clockwise, derives the orientation vectors from the two measurements, and
// writes them back to the configuration file. The display is rotated along the way
// so the user can see which direction is meant.
func runCalibration(
	ctx context.Context,
	config *monitorInfrastructure.AppConfig,
	configPath string,
	logger monitorDomain.Logger,
) error {
	port, err := monitorInfrastructure.OpenSerialPort(config.Device, config.Baud)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		_ = port.Close()
	}()

	interceptors := monitorDomain.WithInterceptors[monitorDomain.Reading](
		monitorInfrastructure.NewReadingValidator(),
	)
	streamReader := monitorInfrastructure.NewLineStreamReader(interceptors, logger)
	go func() {
		if err := streamReader.Consume(ctx, port); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("stream reader stopped: %s", err.Error())
		}
		streamReader.Stop()
	}()

	calibrator, err := monitorDomain.NewCalibrator(calibrationSamples)
	if err != nil {
		return err
	}
	rotator := monitorInfrastructure.NewKScreenRotator(config.Display, logger)
	prompt := bufio.NewReader(os.Stdin)
	readings := streamReader.GetReadingsChannel()

	fmt.Println("Stand the display upright, then press Enter.")
	if _, err := prompt.ReadString('\n'); err != nil {
		return err
	}
	monitorDomain.DiscardBuffered(readings)
	down, err := calibrator.Measure(ctx, readings)
	if err != nil {
		return err
	}

	if err := rotator.Rotate(ctx, monitorDomain.RotationLeft); err != nil {
		logger.Error("error demonstrating the left rotation: %s", err.Error())
	}
	fmt.Println("Rotate the display 90 degrees clockwise, then press Enter.")
	if _, err := prompt.ReadString('\n'); err != nil {
		return err
	}
	monitorDomain.DiscardBuffered(readings)
	left, err := calibrator.Measure(ctx, readings)
	if err != nil {
		return err
	}

	if err := rotator.Rotate(ctx, monitorDomain.RotationNone); err != nil {
		logger.Error("error restoring the rotation: %s", err.Error())
	}

	if _, err := monitorDomain.NewOrientationVectors(down, left); err != nil {
		return fmt.Errorf("measured vectors are unusable: %w", err)
	}

	if err := monitorInfrastructure.SaveCalibration(configPath, down, left); err != nil {
		return err
	}
	logger.Info("calibration saved to %s", configPath)
	return nil
}

package infrastructure

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	monitorDomain "github.com/okorenko/tiltstream/monitor/domain"
)

// fileConfig mirrors the YAML layout of the monitor configuration file.
// Absent keys keep their defaults.
type fileConfig struct {
	Device          string `yaml:"device"`
	Baud            int    `yaml:"baud"`
	LogFile         string `yaml:"log_file"`
	BufferSize      int    `yaml:"buffer_size"`
	FlushIntervalMs int    `yaml:"flush_interval_ms"`
	Display         string `yaml:"display"`
	Calibration     struct {
		Down [3]float64 `yaml:"down"`
		Left [3]float64 `yaml:"left"`
	} `yaml:"calibration"`
}

// AppConfig holds all validated configuration parameters for the monitor.
type AppConfig struct {
	Device        monitorDomain.DevicePath
	Baud          monitorDomain.BaudRate
	LogPath       monitorDomain.LogPath
	BufferSize    monitorDomain.BufferSize
	FlushInterval monitorDomain.FlushInterval
	Display       monitorDomain.DisplayName
	Orientations  monitorDomain.OrientationVectors
}

func defaultFileConfig() fileConfig {
	raw := fileConfig{
		Baud:            9600,
		LogFile:         "./readings.log",
		BufferSize:      4096,
		FlushIntervalMs: 1000,
	}
	raw.Calibration.Down = [3]float64{0, -1, 0}
	raw.Calibration.Left = [3]float64{-1, 0, 0}
	return raw
}

// LoadConfig reads the YAML configuration file and validates it into domain types.
// The default calibration assumes the device reports roughly minus one g on the Y
// axis when the display stands upright; real setups should run -calibrate and
// overwrite it.
func LoadConfig(path string) (*AppConfig, error) {
	raw := defaultFileConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	device, err := monitorDomain.NewDevicePath(raw.Device)
	if err != nil {
		return nil, err
	}

	baud, err := monitorDomain.NewBaudRate(raw.Baud)
	if err != nil {
		return nil, err
	}

	logPath, err := monitorDomain.NewLogPath(raw.LogFile)
	if err != nil {
		return nil, err
	}

	bufferSize, err := monitorDomain.NewBufferSize(raw.BufferSize)
	if err != nil {
		return nil, err
	}

	flushInterval, err := monitorDomain.NewFlushInterval(time.Duration(raw.FlushIntervalMs) * time.Millisecond)
	if err != nil {
		return nil, err
	}

	display, err := monitorDomain.NewDisplayName(raw.Display)
	if err != nil {
		return nil, err
	}

	orientations, err := monitorDomain.NewOrientationVectors(
		vec3FromArray(raw.Calibration.Down),
		vec3FromArray(raw.Calibration.Left),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid calibration: %w", err)
	}

	config := &AppConfig{
		Device:        device,
		Baud:          baud,
		LogPath:       logPath,
		BufferSize:    bufferSize,
		FlushInterval: flushInterval,
		Display:       display,
		Orientations:  orientations,
	}

	return config, nil
}

// SaveCalibration writes the measured calibration vectors back into the
// configuration file, keeping the other settings. Keys the file omitted are written
// out with their default values.
func SaveCalibration(path string, down, left monitorDomain.Vec3) error {
	raw := defaultFileConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	raw.Calibration.Down = [3]float64{down.X, down.Y, down.Z}
	raw.Calibration.Left = [3]float64{left.X, left.Y, left.Z}

	out, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("error encoding config file: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

func vec3FromArray(a [3]float64) monitorDomain.Vec3 {
	return monitorDomain.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

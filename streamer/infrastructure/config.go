package infrastructure

import (
	"errors"
	"flag"
	"time"

	streamerDomain "github.com/okorenko/tiltstream/streamer/domain"
)

// Config holds validated streamer configuration.
type Config struct {
	Device   string
	Baud     streamerDomain.BaudRate
	Interval streamerDomain.SampleInterval
	I2CBus   byte
	Simulate bool
}

// GetConfigParameters parses command-line flags and returns validated streamer configuration.
func GetConfigParameters() (*Config, error) {
	rawDevice := flag.String("device", "", "serial output device (use - for stdout)")
	rawBaud := flag.Int("baud", 9600, "serial baud rate")
	rawInterval := flag.Duration("interval", 100*time.Millisecond, "pause between samples")
	rawBus := flag.Int("i2c-bus", 1, "I2C bus the accelerometer is attached to")
	simulate := flag.Bool("simulate", false, "use a simulated accelerometer instead of the I2C device")

	flag.Parse()

	if *rawDevice == "" {
		return nil, errors.New("device must be non empty string")
	}

	baud, err := streamerDomain.NewBaudRate(*rawBaud)
	if err != nil {
		return nil, err
	}

	interval, err := streamerDomain.NewSampleInterval(*rawInterval)
	if err != nil {
		return nil, err
	}

	if *rawBus < 0 {
		return nil, errors.New("i2c-bus must not be negative")
	}

	config := &Config{
		Device:   *rawDevice,
		Baud:     baud,
		Interval: interval,
		I2CBus:   byte(*rawBus),
		Simulate: *simulate,
	}
	return config, nil
}

// Package infrastructure provides concrete implementations of the streamer domain contracts.
package infrastructure

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/kidoman/embd"

	streamerDomain "github.com/okorenko/tiltstream/streamer/domain"
)

// ADXL345 register map, subset used by this driver.
const (
	adxl345Address byte = 0x53

	regDevID      byte = 0x00
	regBWRate     byte = 0x2C
	regPowerCtl   byte = 0x2D
	regDataFormat byte = 0x31
	regDataX0     byte = 0x32

	devIDValue byte = 0xE5

	bwRate100Hz          byte = 0x0A
	powerCtlMeasure      byte = 0x08
	dataFormatFullRes16g byte = 0x0B
)

// adxl345Scale converts a raw full-resolution axis reading to g (4 mg/LSB).
const adxl345Scale = 0.004

// ADXL345 reads 3-axis acceleration from an ADXL345 attached to an I2C bus.
type ADXL345 struct {
	bus    embd.I2CBus
	logger streamerDomain.Logger
}

// BringUp probes the device identity register and switches the device into
// full-resolution measurement mode. It must succeed before Read is called.
func (a *ADXL345) BringUp(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, err := a.bus.ReadByteFromReg(adxl345Address, regDevID)
	if err != nil {
		return fmt.Errorf("error probing device id: %w", err)
	}
	if id != devIDValue {
		return fmt.Errorf("unexpected device id 0x%02X, want 0x%02X", id, devIDValue)
	}

	if err := a.bus.WriteByteToReg(adxl345Address, regDataFormat, dataFormatFullRes16g); err != nil {
		return fmt.Errorf("error setting data format: %w", err)
	}
	if err := a.bus.WriteByteToReg(adxl345Address, regBWRate, bwRate100Hz); err != nil {
		return fmt.Errorf("error setting output rate: %w", err)
	}
	if err := a.bus.WriteByteToReg(adxl345Address, regPowerCtl, powerCtlMeasure); err != nil {
		return fmt.Errorf("error enabling measurement: %w", err)
	}

	a.logger.Info("ADXL345 is up at address 0x%02X", adxl345Address)
	return nil
}

// Read returns one acceleration sample in g. The six data registers are read in a
// single burst so the three axes belong to the same conversion.
func (a *ADXL345) Read() (streamerDomain.Sample, error) {
	data := make([]byte, 6)
	if err := a.bus.ReadFromReg(adxl345Address, regDataX0, data); err != nil {
		return streamerDomain.Sample{}, fmt.Errorf("error reading axis registers: %w", err)
	}

	x := int16(binary.LittleEndian.Uint16(data[0:2]))
	y := int16(binary.LittleEndian.Uint16(data[2:4]))
	z := int16(binary.LittleEndian.Uint16(data[4:6]))

	return streamerDomain.Sample{
		X: float64(x) * adxl345Scale,
		Y: float64(y) * adxl345Scale,
		Z: float64(z) * adxl345Scale,
	}, nil
}

// NewADXL345 creates a driver instance on the given bus. The bus is owned by the
// caller and must stay open for the driver's lifetime.
func NewADXL345(bus embd.I2CBus, logger streamerDomain.Logger) *ADXL345 {
	return &ADXL345{
		bus:    bus,
		logger: logger,
	}
}

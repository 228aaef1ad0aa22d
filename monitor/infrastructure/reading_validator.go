package infrastructure

import (
	"fmt"

	monitorDomain "github.com/okorenko/tiltstream/monitor/domain"
)

// ReadingValidator rejects physically impossible readings. ParseFloat happily accepts
// "NaN" and "Inf" as field text, so finiteness has to be enforced here.
type ReadingValidator struct {
}

// Apply validates one reading against the acceptance rules.
func (v ReadingValidator) Apply(reading *monitorDomain.Reading) error {
	if !reading.Acc.IsFinite() {
		return fmt.Errorf("%w: acceleration is not finite", monitorDomain.ErrValidation)
	}

	if reading.Acc.Length() == 0 {
		return fmt.Errorf("%w: acceleration vector is zero", monitorDomain.ErrValidation)
	}

	return nil
}

// NewReadingValidator creates a new instance of ReadingValidator.
func NewReadingValidator() *ReadingValidator {
	return &ReadingValidator{}
}

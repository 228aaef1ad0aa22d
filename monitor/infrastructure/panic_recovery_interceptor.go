package infrastructure

import (
	"fmt"

	monitorDomain "github.com/okorenko/tiltstream/monitor/domain"
)

// PanicRecoveryInterceptor wraps another interceptor and converts a panic in its
// Apply into a regular rejection, so one pathological message cannot crash the
// consumer loop.
type PanicRecoveryInterceptor[K any] struct {
	next   monitorDomain.Interceptor[K]
	logger monitorDomain.Logger
}

// Apply runs the wrapped interceptor with panic recovery. A recovered panic is
// logged and returned as an error, which drops the message.
func (i *PanicRecoveryInterceptor[K]) Apply(msg *K) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			i.logger.Error("panic in interceptor: %v", rec)
			err = fmt.Errorf("panic in interceptor: %v", rec)
		}
	}()

	return i.next.Apply(msg)
}

// NewPanicRecoveryInterceptor wraps the given interceptor with panic recovery.
func NewPanicRecoveryInterceptor[K any](
	next monitorDomain.Interceptor[K],
	logger monitorDomain.Logger,
) *PanicRecoveryInterceptor[K] {
	return &PanicRecoveryInterceptor[K]{
		next:   next,
		logger: logger,
	}
}

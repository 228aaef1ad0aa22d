package domain

// Interceptor inspects a message before it is delivered downstream.
// A non-nil error stops the chain and drops the message.
type Interceptor[K any] interface {
	Apply(msg *K) error
}

// Interceptors applies a collection of interceptors to messages, in order.
type Interceptors[K any] struct {
	chain []Interceptor[K]
}

// Apply executes all interceptors in order on the given message, returning the first
// error encountered.
func (i *Interceptors[K]) Apply(msg *K) error {
	for _, interceptor := range i.chain {
		if err := interceptor.Apply(msg); err != nil {
			return err
		}
	}

	return nil
}

// WithInterceptors creates a new Interceptors instance with the provided interceptors.
func WithInterceptors[K any](interceptors ...Interceptor[K]) *Interceptors[K] {
	return &Interceptors[K]{chain: interceptors}
}

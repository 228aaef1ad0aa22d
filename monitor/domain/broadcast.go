package domain

// Broadcast fans data from the source channel out to every consumer channel.
// A consumer that is not ready to receive misses that message; occasional
// lost samples are acceptable for a display monitor. All consumer channels
// are closed once the source closes.
func Broadcast[T any](source <-chan T, consumers []chan<- T) {
	for data := range source {
		for _, consumer := range consumers {
			select {
			case consumer <- data:
			default:
			}
		}
	}

	for _, consumer := range consumers {
		close(consumer)
	}
}

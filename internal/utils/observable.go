package utils

import "sync"

// Observable holds a value and pushes every change to its subscribers.
// Each subscriber channel has a buffer of one and always holds the most
// recent value; slow readers skip intermediate values.
type Observable[T comparable] struct {
	mu    sync.Mutex
	value T
	subs  map[int]chan T
	next  int
}

// NewObservable returns an Observable holding initial.
func NewObservable[T comparable](initial T) *Observable[T] {
	return &Observable[T]{value: initial, subs: make(map[int]chan T)}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores v and notifies subscribers if it differs from the current value.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.value == v {
		return
	}
	o.value = v
	for _, ch := range o.subs {
		deliver(ch, v)
	}
}

// Subscribe returns a channel that immediately receives the current value
// and then every change. cancel closes the channel.
func (o *Observable[T]) Subscribe() (<-chan T, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.next
	o.next++
	ch := make(chan T, 1)
	ch <- o.value
	o.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// deliver replaces any unread value in ch with v. Callers hold the lock, so
// no other writer can refill the buffer in between.
func deliver[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}

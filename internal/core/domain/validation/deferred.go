package validation

import "sync"

// Deferred marks a validator result that is still being computed. The runner
// rejects such results instead of waiting for them.
type Deferred interface {
	Deferred()
}

// Future is a Deferred result backed by a goroutine.
type Future struct {
	once   sync.Once
	done   chan struct{}
	result any
}

var _ Deferred = (*Future)(nil)

// Defer starts fn in its own goroutine and returns its Future.
func Defer(fn func() any) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		f.once.Do(func() {
			f.result = fn()
			close(f.done)
		})
	}()
	return f
}

func (f *Future) Deferred() {}

// Wait blocks until the result is available.
func (f *Future) Wait() any {
	<-f.done
	return f.result
}

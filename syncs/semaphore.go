package syncs

import "context"

// Semaphore bounds concurrent work, the zero capacity blocks every Acquire.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, n)
}

func (s Semaphore) Acquire(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}

// Go runs fns with at most n running at once and returns the first error in argument order.
func Go(ctx context.Context, n int, fns ...func() error) error {
	if n < 1 {
		n = 1
	}
	sem := NewSemaphore(n)
	errs := make([]error, len(fns))
	done := make(chan struct{}, len(fns))
	for i, fn := range fns {
		if err := sem.Acquire(ctx); err != nil {
			errs[i] = err
			done <- struct{}{}
			continue
		}
		go func() {
			defer func() {
				sem.Release()
				done <- struct{}{}
			}()
			errs[i] = fn()
		}()
	}
	for range fns {
		<-done
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

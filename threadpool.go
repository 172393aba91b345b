package threadpool

// ThreadPool is a handle that launches jobs on independent execution units.
// It is immutable after Build and safe for concurrent use.
// The zero value is usable and behaves like a pool built without options.
//
// The size passed to Build is validated but not retained: a ThreadPool never limits
// how many jobs run at the same time, never queues and never reuses execution units.
type ThreadPool struct {
	d *dispatcher
}

// Build validates size and options and returns a new ThreadPool.
//
// A size of zero fails with ErrInvalidSize. Any positive size yields the same behavior.
// An option returning an error aborts construction; that error is returned as is.
// Build allocates no goroutines, threads or queues.
func Build(size uint, opts ...Option) (*ThreadPool, error) {
	if size == 0 {
		return nil, ErrInvalidSize
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &ThreadPool{d: newDispatcher(&cfg)}, nil
}

// Execute launches job on a new execution unit and returns without waiting for it.
//
// Semantics:
// - Every call starts its own unit; there is no queue, admission control or backpressure.
// - Jobs dispatched by separate calls run in no particular order and may overlap freely.
// - A panic inside job is recovered within its unit. It is not reported to the caller
//   and does not affect the pool or other jobs.
// - There is no way to cancel or await a job once dispatched. Discarding the pool
//   does not stop jobs already running.
// - A nil job is ignored.
func (p *ThreadPool) Execute(job Job) {
	if job == nil {
		return
	}
	if p == nil || p.d == nil {
		defaultDispatcher.dispatch(job)
		return
	}
	p.d.dispatch(job)
}

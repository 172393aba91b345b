// Package threadpool dispatches one-shot jobs onto independent execution units.
//
// Constructor
//   - Build(size, opts...): validates size (must be > 0) and options and returns a *ThreadPool.
//     A zero size fails with ErrInvalidSize.
//
// Dispatch
//   - (*ThreadPool).Execute(job): starts a new execution unit running job and returns immediately.
//
// The size is a declared capacity only. It is checked at Build time and never consulted
// afterwards: a pool built with size 1 runs as many jobs at once as Execute is called.
// There is no queue, no backpressure and no reuse of execution units.
//
// Execution units
//   - Goroutine (default).
//   - Dedicated OS thread (WithOSThread): the thread is locked for the job and retired when it returns.
//
// Lifetime
// A ThreadPool has no Close. Jobs are detached: discarding the pool neither waits for nor
// cancels them, and a job still running when the process exits is abandoned. Callers that
// need completion signal it from the job, e.g. with a sync.WaitGroup.
//
// Failures
// A panicking job is recovered inside its own unit and does not reach the caller, the pool
// or other jobs. It is visible only through the MetricJobsPanicked counter when metrics are
// enabled with WithMetrics. A job ending through runtime.Goexit is counted in MetricJobsExited,
// so every dispatched job lands in exactly one of completed, panicked or exited.
package threadpool

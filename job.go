package threadpool

// Job is a one-shot unit of work handed to Execute.
// It has no result; anything it needs must be captured by the closure.
type Job func()

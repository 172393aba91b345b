package threadpool

import "github.com/ygrebnov/threadpool/metrics"

// Instrument names recorded by Execute.
const (
	MetricJobsDispatched = "threadpool_jobs_dispatched_total"
	MetricJobsCompleted  = "threadpool_jobs_completed_total"
	MetricJobsPanicked   = "threadpool_jobs_panicked_total"
	MetricJobsExited     = "threadpool_jobs_exited_total"
	MetricJobsRunning    = "threadpool_jobs_running"
	MetricJobDuration    = "threadpool_job_duration_seconds"
)

type instruments struct {
	dispatched metrics.Counter
	completed  metrics.Counter
	panicked   metrics.Counter
	exited     metrics.Counter
	running    metrics.UpDownCounter
	duration   metrics.Histogram
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		dispatched: p.Counter(MetricJobsDispatched,
			metrics.WithDescription("Jobs launched on an execution unit."), metrics.WithUnit("1")),
		completed: p.Counter(MetricJobsCompleted,
			metrics.WithDescription("Jobs that returned normally."), metrics.WithUnit("1")),
		panicked: p.Counter(MetricJobsPanicked,
			metrics.WithDescription("Jobs whose panic was recovered."), metrics.WithUnit("1")),
		exited: p.Counter(MetricJobsExited,
			metrics.WithDescription("Jobs that ended through runtime.Goexit."), metrics.WithUnit("1")),
		running: p.UpDownCounter(MetricJobsRunning,
			metrics.WithDescription("Jobs currently executing."), metrics.WithUnit("1")),
		duration: p.Histogram(MetricJobDuration,
			metrics.WithDescription("Wall time of a job."), metrics.WithUnit("seconds")),
	}
}

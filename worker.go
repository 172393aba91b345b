package threadpool

import "time"

// worker runs a single job inside an execution unit.
// It is stateless apart from its instruments, so one worker serves all units of a pool.
type worker struct {
	instr instruments
}

func newWorker(instr instruments) *worker {
	return &worker{instr: instr}
}

// execute runs job to completion and contains any panic it raises.
// Every job ends up in exactly one of the completed, panicked or exited counters.
func (w *worker) execute(job Job) {
	start := time.Now()
	returned := false

	w.instr.running.Add(1)
	defer func() {
		w.instr.running.Add(-1)
		w.instr.duration.Record(time.Since(start).Seconds())
		if returned {
			w.instr.completed.Add(1)
			return
		}
		if r := recover(); r != nil {
			w.instr.panicked.Add(1)
			return
		}
		// neither returned nor panicked: the job called runtime.Goexit
		w.instr.exited.Add(1)
	}()

	job()
	returned = true
}

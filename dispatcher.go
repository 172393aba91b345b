package threadpool

import "runtime"

// dispatcher launches every job on a fresh execution unit.
// It keeps no reference to a job after launching it.
type dispatcher struct {
	launch func(func())
	worker *worker
}

var defaultDispatcher = func() *dispatcher {
	cfg := defaultConfig()
	return newDispatcher(&cfg)
}()

func newDispatcher(cfg *config) *dispatcher {
	launch := launchGoroutine
	if cfg.OSThread {
		launch = launchOSThread
	}
	return &dispatcher{
		launch: launch,
		worker: newWorker(newInstruments(cfg.Metrics)),
	}
}

func (d *dispatcher) dispatch(job Job) {
	d.worker.instr.dispatched.Add(1)
	d.launch(func() { d.worker.execute(job) })
}

func launchGoroutine(fn func()) {
	go fn()
}

// launchOSThread runs fn on a goroutine wired to its own OS thread.
// UnlockOSThread is never called, so the runtime terminates the thread when fn returns
// instead of handing it to other goroutines.
func launchOSThread(fn func()) {
	go func() {
		runtime.LockOSThread()
		fn()
	}()
}

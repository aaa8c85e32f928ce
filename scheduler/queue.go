package scheduler

// queueSize is the amount of tasks that can be submitted between two ticks before Submit blocks.
const queueSize = 256

// Submit queues f to run on the goroutine driving the scheduler, right before the next tick. It is the
// only method of a running Scheduler that is safe to call from other goroutines, and the way to bind
// viewers to or end the runs of ghosts it owns.
func (s *Scheduler) Submit(f func()) {
	s.queue <- f
}

// drain runs every task queued so far.
func (s *Scheduler) drain() {
	for {
		select {
		case f := <-s.queue:
			f()
		default:
			return
		}
	}
}

package dodge

// Clock supplies the current time in seconds. The controller never reads an
// ambient clock; the host passes one in.
type Clock func() float64

// Handle is an owned, cancelable timer. Stopping a handle twice is harmless.
type Handle interface {
	Stop()
}

// Scheduler installs the controller's periodic tick and one-shot cooldown
// timers. The controller guarantees at most one live handle of each kind by
// always stopping the previous handle before installing a new one.
type Scheduler interface {
	// Every fires fn once per interval (seconds) until stopped.
	Every(interval float64, fn func()) Handle
	// After fires fn once after delay (seconds) unless stopped first.
	After(delay float64, fn func()) Handle
}

// FrameScheduler is a Scheduler driven by explicit Advance calls, one per
// host frame. Tasks whose deadline has passed fire during Advance; a task
// fires once per elapsed interval, so coarse frames catch up on a fine tick.
type FrameScheduler struct {
	now   float64
	tasks []*frameTask
}

type frameTask struct {
	interval float64
	next     float64
	fn       func()
	repeat   bool
	stopped  bool
}

func (t *frameTask) Stop() { t.stopped = true }

// NewFrameScheduler creates a scheduler whose clock starts at now.
func NewFrameScheduler(now float64) *FrameScheduler {
	return &FrameScheduler{now: now}
}

// Every implements Scheduler.
func (fs *FrameScheduler) Every(interval float64, fn func()) Handle {
	t := &frameTask{interval: interval, next: fs.now + interval, fn: fn, repeat: true}
	fs.tasks = append(fs.tasks, t)
	return t
}

// After implements Scheduler.
func (fs *FrameScheduler) After(delay float64, fn func()) Handle {
	t := &frameTask{next: fs.now + delay, fn: fn}
	fs.tasks = append(fs.tasks, t)
	return t
}

// Advance moves the scheduler clock to now and fires every due task.
// Callbacks may stop handles or install new ones; new tasks first become due
// on the following Advance.
func (fs *FrameScheduler) Advance(now float64) {
	fs.now = now

	due := fs.tasks
	for _, t := range due {
		for !t.stopped && t.next <= now {
			if t.repeat {
				t.next += t.interval
			} else {
				t.stopped = true
			}
			t.fn()
		}
	}

	// Compact out finished tasks.
	live := fs.tasks[:0]
	for _, t := range fs.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	fs.tasks = live
}

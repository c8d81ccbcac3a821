package browser

import "sync"

// ScanTask runs a recursive listing on its own goroutine so the
// interactive surface stays responsive. The UI polls Running on a timer
// cadence, calls Tick to advance the progress frame, and collects the
// result once Running reports false. There is no cancellation: once
// started, a scan runs to completion.
type ScanTask struct {
	message string

	mu      sync.Mutex
	running bool
	anim    *Animator
	entries []Entry
	err     error
}

// StartScan launches the recursive walk of root in the background and
// returns immediately. message prefixes the animated status text.
func StartScan(projector *Projector, root, anchor, message string) *ScanTask {
	task := &ScanTask{
		message: message,
		running: true,
		anim:    NewAnimator(),
	}

	go func() {
		entries, err := projector.ListRecursive(root, anchor)

		task.mu.Lock()
		task.entries = entries
		task.err = err
		task.running = false
		task.mu.Unlock()
	}()

	return task
}

// Running reports whether the walk is still in progress.
func (t *ScanTask) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// Tick advances the progress animation one frame and returns the status
// text to display, e.g. "Listing files... [  =     ]".
func (t *ScanTask) Tick() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.anim.Tick()

	return t.message + " " + t.anim.Frame()
}

// Status returns the current status text without advancing the animation.
func (t *ScanTask) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.message + " " + t.anim.Frame()
}

// Result returns the produced entries, or the walk error. Only meaningful
// after Running reports false; the polling loop guarantees the handoff
// happens exactly once, after its last observation of liveness.
func (t *ScanTask) Result() ([]Entry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.entries, t.err
}

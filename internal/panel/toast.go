package panel

import (
	"sync"
	"time"
)

// DefaultToastDuration is how long a toast stays up, matching the
// widget's 2000 ms auto-dismiss.
const DefaultToastDuration = 2 * time.Second

// Toast holds a one-shot message that dismisses itself after a
// duration. Showing a new message replaces the current one and
// restarts the timer. Toast never touches the data model.
type Toast struct {
	mu    sync.Mutex
	msg   string
	seq   int
	timer *time.Timer
}

// NewToast creates an empty toast.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays msg for DefaultToastDuration.
func (t *Toast) Show(msg string) {
	t.ShowFor(msg, DefaultToastDuration)
}

// ShowFor displays msg for the given duration.
func (t *Toast) ShowFor(msg string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	seq := t.seq
	t.msg = msg
	t.timer = time.AfterFunc(d, func() { t.expire(seq) })
}

// expire clears the message unless a newer Show replaced it.
func (t *Toast) expire(seq int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		return
	}
	t.msg = ""
	t.timer = nil
}

// Hide dismisses the current message before its timer fires.
func (t *Toast) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.seq++
	t.msg = ""
}

// Message returns the message currently displayed, or "" when none.
func (t *Toast) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.msg
}

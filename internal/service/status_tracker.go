package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/artisan-market/models"
)

// Auto-clear delays of the submission banner.
const (
	SuccessStatusTTL = 2 * time.Second
	ErrorStatusTTL   = 3 * time.Second
)

// StatusTracker holds the transient transaction banner. Success and Error
// schedule an automatic reset to [models.HiddenStatus]; any newer status
// cancels a pending reset.
type StatusTracker struct {
	mu          sync.Mutex
	current     models.TransactionStatus
	timer       *time.Timer
	generation  uint64
	subscribers []func(models.TransactionStatus)
	afterFunc   func(d time.Duration, f func()) *time.Timer
}

func NewStatusTracker() *StatusTracker {
	return &StatusTracker{
		current:   models.HiddenStatus,
		afterFunc: time.AfterFunc,
	}
}

// Subscribe registers fn to be called with every new status. fn runs on the
// goroutine that changed the status, which is a timer goroutine for
// automatic resets.
func (t *StatusTracker) Subscribe(fn func(models.TransactionStatus)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subscribers = append(t.subscribers, fn)
}

func (t *StatusTracker) Current() models.TransactionStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *StatusTracker) Pending(message string) {
	t.set(models.TransactionStatus{Visible: true, Status: models.TxPending, Message: message}, 0)
}

func (t *StatusTracker) Success(message string, clearAfter time.Duration) {
	t.set(models.TransactionStatus{Visible: true, Status: models.TxSuccess, Message: message}, clearAfter)
}

func (t *StatusTracker) Error(message string, clearAfter time.Duration) {
	t.set(models.TransactionStatus{Visible: true, Status: models.TxError, Message: message}, clearAfter)
}

// Clear hides the banner immediately.
func (t *StatusTracker) Clear() {
	t.set(models.HiddenStatus, 0)
}

func (t *StatusTracker) set(status models.TransactionStatus, clearAfter time.Duration) {
	t.mu.Lock()
	subscribers := t.applyLocked(status, clearAfter)
	t.mu.Unlock()

	notify(subscribers, status)
}

// clearIfCurrent resets the banner unless a newer status replaced the one
// that scheduled this reset.
func (t *StatusTracker) clearIfCurrent(gen uint64) {
	t.mu.Lock()
	if gen != t.generation {
		t.mu.Unlock()
		return
	}
	subscribers := t.applyLocked(models.HiddenStatus, 0)
	t.mu.Unlock()

	notify(subscribers, models.HiddenStatus)
}

func (t *StatusTracker) applyLocked(status models.TransactionStatus, clearAfter time.Duration) []func(models.TransactionStatus) {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
	t.current = status

	if clearAfter > 0 {
		gen := t.generation
		t.timer = t.afterFunc(clearAfter, func() {
			t.clearIfCurrent(gen)
		})
	}

	return append([]func(models.TransactionStatus){}, t.subscribers...)
}

func notify(subscribers []func(models.TransactionStatus), status models.TransactionStatus) {
	for _, fn := range subscribers {
		fn(status)
	}
}

// Package watch detects window or context transitions caused by an action,
// such as a button press that opens a dialog.
//
// Usage is always start before the action, stop after:
//
//	w := watch.NewPoller(provider.Context, 100*time.Millisecond)
//	w.Start()
//	err := press()
//	changed := w.Stop()
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mj1618/forms-cli/internal/logger"
	"github.com/mj1618/forms-cli/internal/platform"
)

// DefaultInterval is the sampling interval used when none is given.
const DefaultInterval = 100 * time.Millisecond

// Watcher observes a single transition.
type Watcher interface {
	// Start records the current context and begins watching.
	Start()
	// Stop ends watching and reports whether a transition was observed. It
	// is safe to call when nothing changed, before Start, and more than once.
	Stop() bool
	// Observed is closed on the first transition.
	Observed() <-chan struct{}
}

// Poller is a Watcher that samples a context function on a background
// goroutine.
type Poller struct {
	// ID correlates the start and stop log lines of one watch session.
	ID string

	sample   platform.ContextFunc
	interval time.Duration

	mu       sync.Mutex
	baseline string
	started  bool
	stopped  bool
	result   bool
	cancel   context.CancelFunc
	done     chan struct{}
	observed chan struct{}
	once     sync.Once
}

// NewPoller returns a poller over sample. A non-positive interval means
// DefaultInterval.
func NewPoller(sample platform.ContextFunc, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		ID:       uuid.NewString(),
		sample:   sample,
		interval: interval,
		observed: make(chan struct{}),
	}
}

// Start takes the baseline sample and launches the polling goroutine. Calls
// after the first are ignored.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	baseline, err := p.sample()
	if err != nil {
		logger.L().WithField("watch", p.ID).Warnf("baseline sample failed: %v", err)
	}
	p.baseline = baseline
	logger.L().WithField("watch", p.ID).Debugf("watching for transitions away from %q", baseline)

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p.check() {
				return
			}
		}
	}
}

// check samples once and signals on a transition.
func (p *Poller) check() bool {
	current, err := p.sample()
	if err != nil {
		logger.L().WithField("watch", p.ID).Debugf("sample failed: %v", err)
		return false
	}
	if current == p.baseline {
		return false
	}
	p.once.Do(func() {
		logger.L().WithField("watch", p.ID).Infof("transition %q -> %q", p.baseline, current)
		close(p.observed)
	})
	return true
}

// Stop cancels polling, waits for the goroutine, then takes a final sample
// so transitions completed during a synchronous action are not missed.
func (p *Poller) Stop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return false
	}
	if p.stopped {
		return p.result
	}
	p.stopped = true
	p.cancel()
	<-p.done
	p.check()

	select {
	case <-p.observed:
		p.result = true
	default:
	}
	logger.L().WithField("watch", p.ID).Debugf("stopped, transition observed: %v", p.result)
	return p.result
}

// Observed is closed on the first transition.
func (p *Poller) Observed() <-chan struct{} {
	return p.observed
}

// None is a Watcher that never observes anything.
type None struct{}

func (None) Start()                    {}
func (None) Stop() bool                { return false }
func (None) Observed() <-chan struct{} { return nil }

var (
	_ Watcher = (*Poller)(nil)
	_ Watcher = None{}
)

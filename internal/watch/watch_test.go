package watch

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeContext is a thread-safe fake context source.
type fakeContext struct {
	mu    sync.Mutex
	value string
	err   error
}

func (c *fakeContext) set(v string) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()
}

func (c *fakeContext) sample() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.err
}

func TestPollerNoTransition(t *testing.T) {
	c := &fakeContext{value: "Orders"}
	p := NewPoller(c.sample, time.Millisecond)
	p.Start()
	time.Sleep(5 * time.Millisecond)
	if p.Stop() {
		t.Error("Stop() = true without a transition")
	}
	if p.Stop() {
		t.Error("second Stop() = true")
	}
}

func TestPollerObservesDuringAction(t *testing.T) {
	c := &fakeContext{value: "Orders"}
	p := NewPoller(c.sample, time.Millisecond)
	p.Start()
	c.set("Confirm")

	select {
	case <-p.Observed():
	case <-time.After(2 * time.Second):
		t.Fatal("transition not observed")
	}
	if !p.Stop() {
		t.Error("Stop() = false after a transition")
	}
	if !p.Stop() {
		t.Error("repeated Stop() changed its result")
	}
}

func TestPollerFinalSample(t *testing.T) {
	c := &fakeContext{value: "Orders"}
	// Interval long enough that the goroutine never ticks.
	p := NewPoller(c.sample, time.Hour)
	p.Start()
	c.set("Confirm")
	if !p.Stop() {
		t.Error("Stop() missed a transition completed before it was called")
	}
}

func TestPollerStopWithoutStart(t *testing.T) {
	p := NewPoller(func() (string, error) { return "", nil }, 0)
	if p.Stop() {
		t.Error("Stop() before Start() = true")
	}
	if p.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", p.interval, DefaultInterval)
	}
}

func TestPollerSampleErrors(t *testing.T) {
	c := &fakeContext{value: "Orders", err: errors.New("tree gone")}
	p := NewPoller(c.sample, time.Millisecond)
	p.Start()
	time.Sleep(5 * time.Millisecond)
	if p.Stop() {
		t.Error("failed samples must not count as transitions")
	}
}

func TestPollerSessionIDs(t *testing.T) {
	a := NewPoller(func() (string, error) { return "", nil }, 0)
	b := NewPoller(func() (string, error) { return "", nil }, 0)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("session IDs %q and %q should be unique", a.ID, b.ID)
	}
}

func TestNone(t *testing.T) {
	var w Watcher = None{}
	w.Start()
	if w.Stop() {
		t.Error("None.Stop() = true")
	}
}

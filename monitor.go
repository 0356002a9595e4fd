package iyzisub

import (
	"context"
	"sync"
	"time"
)

const defaultMonitorInterval = 30 * time.Second

// HealthCallback is called when the API's observed reachability changes.
// When healthy is false, err carries the failing check's error.
type HealthCallback func(healthy bool, err error)

// HealthMonitor runs a health check on an interval and notifies callbacks
// when the result changes. A check passes when the API accepts a signed
// request from this client, so it exercises credentials as well as
// connectivity.
type HealthMonitor struct {
	health   *HealthService
	interval time.Duration

	mu        sync.RWMutex
	callbacks []HealthCallback
	checked   bool
	healthy   bool
	lastErr   error

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// MonitorHealth starts a monitor that checks the API every interval,
// beginning immediately. An interval of zero or less uses the 30 second
// default. Stop the monitor to release its goroutine.
func (c *Client) MonitorHealth(interval time.Duration) *HealthMonitor {
	if interval <= 0 {
		interval = defaultMonitorInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &HealthMonitor{
		health:   c.Health,
		interval: interval,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go m.run(ctx)
	return m
}

// OnChange registers a callback for reachability changes. Once a first
// check has completed, the callback is invoked immediately with the
// current state, then again on every change. The returned function
// unregisters this specific callback.
func (m *HealthMonitor) OnChange(callback HealthCallback) func() {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, callback)
	callbackIndex := len(m.callbacks) - 1
	checked, healthy, lastErr := m.checked, m.healthy, m.lastErr
	m.mu.Unlock()

	if checked {
		callback(healthy, lastErr)
	}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// Mark this callback as nil, don't remove, to preserve indices.
		if callbackIndex < len(m.callbacks) {
			m.callbacks[callbackIndex] = nil
		}
	}
}

// Healthy reports the result of the most recent check. It is false until
// the first check completes.
func (m *HealthMonitor) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.checked && m.healthy
}

// LastError returns the error from the most recent failing check, or nil
// when the last check passed.
func (m *HealthMonitor) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// Stop halts checking and releases the monitor's goroutine. It waits for
// an in-flight check to finish and is safe to call more than once.
func (m *HealthMonitor) Stop() {
	m.stopOnce.Do(func() {
		m.cancel()
		<-m.done
	})
}

func (m *HealthMonitor) run(ctx context.Context) {
	defer close(m.done)

	m.check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *HealthMonitor) check(ctx context.Context) {
	err := m.health.Check(ctx)
	if ctx.Err() != nil {
		// The monitor was stopped mid-check. A cancellation is not an
		// outage, so the last observed state stands.
		return
	}
	healthy := err == nil

	m.mu.Lock()
	changed := !m.checked || healthy != m.healthy
	m.checked = true
	m.healthy = healthy
	m.lastErr = err
	callbacks := make([]HealthCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, callback := range callbacks {
		if callback != nil {
			callback(healthy, err)
		}
	}
}

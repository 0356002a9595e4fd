package iyzisub

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

// healthToggleHandler serves a passing or failing bin check depending on
// the flag. Failures use the in-band failure envelope so no retries fire.
func healthToggleHandler(healthy *int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if atomic.LoadInt32(healthy) == 1 {
			fmt.Fprint(w, `{"status":"success","binNumber":"552879","cardType":"CREDIT_CARD"}`)
			return
		}
		fmt.Fprint(w, `{"status":"failure","errorCode":"1000","errorMessage":"invalid signature"}`)
	}
}

type healthChange struct {
	healthy bool
	err     error
}

// receiveChange waits until the monitor reports the wanted state, skipping
// over notifications for other states.
func receiveChange(t *testing.T, changes <-chan healthChange, want bool) healthChange {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case change := <-changes:
			if change.healthy == want {
				return change
			}
		case <-deadline:
			t.Fatalf("no notification with healthy=%v", want)
		}
	}
}

func TestMonitorHealth_NotifiesOnTransition(t *testing.T) {
	var healthy int32 = 1
	client := testClient(t, healthToggleHandler(&healthy))

	monitor := client.MonitorHealth(5 * time.Millisecond)
	defer monitor.Stop()

	changes := make(chan healthChange, 16)
	unsubscribe := monitor.OnChange(func(healthy bool, err error) {
		changes <- healthChange{healthy, err}
	})
	defer unsubscribe()

	receiveChange(t, changes, true)
	if !monitor.Healthy() {
		t.Error("Healthy() = false after a passing check")
	}

	atomic.StoreInt32(&healthy, 0)
	change := receiveChange(t, changes, false)
	if change.err == nil {
		t.Error("unhealthy notification carries no error")
	}
	if monitor.Healthy() {
		t.Error("Healthy() = true after a failing check")
	}
	if monitor.LastError() == nil {
		t.Error("LastError() = nil after a failing check")
	}

	atomic.StoreInt32(&healthy, 1)
	receiveChange(t, changes, true)
	if err := monitor.LastError(); err != nil {
		t.Errorf("LastError() = %v after recovery", err)
	}
}

func TestMonitorHealth_QuietWhileStable(t *testing.T) {
	var healthy int32 = 1
	client := testClient(t, healthToggleHandler(&healthy))

	monitor := client.MonitorHealth(5 * time.Millisecond)
	defer monitor.Stop()

	changes := make(chan healthChange, 16)
	unsubscribe := monitor.OnChange(func(healthy bool, err error) {
		changes <- healthChange{healthy, err}
	})
	defer unsubscribe()

	receiveChange(t, changes, true)

	// Checks keep running but the state never changes, so the initial
	// notification stays the only one.
	select {
	case change := <-changes:
		t.Errorf("unexpected notification: %+v", change)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMonitorHealth_Unsubscribe(t *testing.T) {
	var healthy int32 = 1
	client := testClient(t, healthToggleHandler(&healthy))

	monitor := client.MonitorHealth(5 * time.Millisecond)
	defer monitor.Stop()

	firstChanges := make(chan healthChange, 16)
	unsubscribeFirst := monitor.OnChange(func(healthy bool, err error) {
		firstChanges <- healthChange{healthy, err}
	})
	secondChanges := make(chan healthChange, 16)
	unsubscribeSecond := monitor.OnChange(func(healthy bool, err error) {
		secondChanges <- healthChange{healthy, err}
	})
	defer unsubscribeSecond()

	// Let both callbacks see the initial state before unsubscribing, so a
	// late initial delivery cannot be mistaken for a post-unsubscribe one.
	receiveChange(t, firstChanges, true)
	receiveChange(t, secondChanges, true)

	unsubscribeFirst()

	atomic.StoreInt32(&healthy, 0)
	receiveChange(t, secondChanges, false)

	select {
	case change := <-firstChanges:
		t.Errorf("unsubscribed callback was notified: %+v", change)
	default:
	}
}

func TestMonitorHealth_Stop(t *testing.T) {
	var calls int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","binNumber":"552879"}`)
	})

	monitor := client.MonitorHealth(5 * time.Millisecond)
	monitor.Stop()

	before := atomic.LoadInt32(&calls)
	time.Sleep(30 * time.Millisecond)
	if after := atomic.LoadInt32(&calls); after != before {
		t.Errorf("checks continued after Stop: %d then %d", before, after)
	}

	// A second Stop is a no-op.
	monitor.Stop()
}

func TestMonitorHealth_DefaultInterval(t *testing.T) {
	var healthy int32 = 1
	client := testClient(t, healthToggleHandler(&healthy))

	monitor := client.MonitorHealth(0)
	defer monitor.Stop()

	if monitor.interval != defaultMonitorInterval {
		t.Errorf("interval = %v, want %v", monitor.interval, defaultMonitorInterval)
	}
}

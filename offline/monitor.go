package offline

import (
	"context"
	"net/http"
	"sync"
	"time"

	"preopedge/events"
)

// Monitor holds the current network reachability flag. It is written only
// when the runtime signals a transition (a browser online/offline report or
// a remote transport outcome); there is no polling. Components that care
// about connectivity take a *Monitor rather than reading ambient state, so
// tests can substitute a fixed status.
type Monitor struct {
	mu     sync.Mutex
	online bool
	bus    *events.Bus
}

// NewMonitor creates a Monitor with the given initial status.
func NewMonitor(online bool, bus *events.Bus) *Monitor {
	return &Monitor{online: online, bus: bus}
}

// Online returns the current reachability flag.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline records a reachability signal. An event is emitted only on an
// actual transition.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	changed := m.online != online
	m.online = online
	m.mu.Unlock()

	if changed && m.bus != nil {
		m.bus.Emit(events.Event{
			Type:    events.TypeStatusChanged,
			Payload: events.StatusChangedEvent{Online: online},
		})
	}
}

// Probe performs the one-shot startup reachability check. Any HTTP response
// counts as reachable; only a transport failure means offline.
func Probe(ctx context.Context, url string, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

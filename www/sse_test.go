package www

import (
	"sync"
	"testing"

	"preopedge/events"
)

func TestHubStopIsIdempotent(t *testing.T) {
	hub := NewHub(events.NewBus())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Stop()
		}()
	}
	wg.Wait()
	hub.Stop()

	select {
	case <-hub.stopChan:
	default:
		t.Error("stop channel not closed")
	}
}

func TestHubBroadcastAfterStop(t *testing.T) {
	bus := events.NewBus()
	hub := NewHub(bus)
	hub.Stop()

	// Emitting after shutdown must not panic; there is nobody to deliver to.
	bus.Emit(events.Event{
		Type:    events.TypeQueueChanged,
		Payload: events.QueueChangedEvent{Pending: 1},
	})
}

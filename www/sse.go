package www

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"preopedge/events"
)

// SSEEvent is the typed envelope sent to SSE clients.
type SSEEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// streamName maps bus event types to the SSE event names the browser
// listens for.
var streamName = map[events.Type]string{
	events.TypeStatusChanged:    "status",
	events.TypeQueueChanged:     "queue",
	events.TypeSubmissionResult: "submission",
}

// Hub fans bus events out to connected SSE clients.
type Hub struct {
	mu       sync.Mutex
	clients  map[chan SSEEvent]struct{}
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewHub creates a hub subscribed to the bus. Events with no stream
// mapping stay server-side.
func NewHub(bus *events.Bus) *Hub {
	h := &Hub{
		clients:  make(map[chan SSEEvent]struct{}),
		stopChan: make(chan struct{}),
	}
	bus.Subscribe(func(evt events.Event) {
		name, ok := streamName[evt.Type]
		if !ok {
			return
		}
		h.broadcast(SSEEvent{Type: name, Data: evt.Payload})
	})
	return h
}

// Stop disconnects all clients. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.stopChan)
	})
}

func (h *Hub) broadcast(evt SSEEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c <- evt:
		default:
			// Slow client, drop the event
		}
	}
}

// HandleSSE is the HTTP handler for SSE connections.
func (h *Hub) HandleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	ch := make(chan SSEEvent, 64)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.clients, ch)
		h.mu.Unlock()
	}()

	fmt.Fprintf(w, "event: connected\ndata: {}\n\n")
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-h.stopChan:
			return
		case evt := <-ch:
			data, err := json.Marshal(evt.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Type, data)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprintf(w, ": keepalive\n\n")
			flusher.Flush()
		}
	}
}

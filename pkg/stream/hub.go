// Package stream pkg/stream/hub.go
package stream

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/vitalsim/vitalsim/pkg/history"
	"github.com/vitalsim/vitalsim/pkg/models"
)

// StateSource provides the current simulation snapshot for newly
// attached clients.
type StateSource interface {
	Status() models.SimulatorStatus
}

// message is the envelope sent to renderers.
type message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// snapshotPayload seeds a fresh renderer with current readings and the
// rolling history so it can draw without waiting for the next tick.
type snapshotPayload struct {
	Status  models.SimulatorStatus          `json:"status"`
	History map[string][]models.VitalSample `json:"history"`
}

// Hub maintains the set of active clients and broadcasts sample
// batches to them.
type Hub struct {
	clients     map[*Client]bool
	broadcast   chan []byte
	register    chan *Client
	unregister  chan *Client
	state       StateSource
	history     history.SampleManager
	log         *zap.Logger
	done        chan struct{}
	closeOnce   sync.Once
	clientCount int64
}

// NewHub creates a hub fed by the given simulation state.
func NewHub(state StateSource, hist history.SampleManager, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}

	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		state:      state,
		history:    hist,
		log:        log,
		done:       make(chan struct{}),
	}
}

// Start launches the hub loop.
func (h *Hub) Start(ctx context.Context) error {
	go h.run(ctx)

	return nil
}

// Stop halts the hub loop; active clients are disconnected.
func (h *Hub) Stop(_ context.Context) error {
	h.closeOnce.Do(func() {
		close(h.done)
	})

	return nil
}

// ClientCount returns the number of attached clients.
func (h *Hub) ClientCount() int64 {
	return atomic.LoadInt64(&h.clientCount)
}

// BroadcastSamples sends a tick batch to every attached client.
func (h *Hub) BroadcastSamples(samples []models.VitalSample) {
	data, err := json.Marshal(message{Type: "samples", Payload: samples})
	if err != nil {
		h.log.Error("failed to marshal sample batch", zap.Error(err))
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}

func (h *Hub) run(ctx context.Context) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case data := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client is blocked or gone, drop it.
					h.log.Warn("client send buffer full, removing",
						zap.String("remote", client.conn.RemoteAddr().String()))
					h.removeClient(client)
				}
			}
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.clients[client] = true
	atomic.AddInt64(&h.clientCount, 1)
	h.log.Info("stream client registered",
		zap.String("remote", client.conn.RemoteAddr().String()))

	if data, err := h.snapshotMessage(); err != nil {
		h.log.Error("failed to build snapshot", zap.Error(err))
	} else {
		select {
		case client.send <- data:
		default:
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	atomic.AddInt64(&h.clientCount, -1)
	close(client.send)
	h.log.Info("stream client unregistered",
		zap.String("remote", client.conn.RemoteAddr().String()))
}

func (h *Hub) closeAll() {
	for client := range h.clients {
		delete(h.clients, client)
		atomic.AddInt64(&h.clientCount, -1)
		close(client.send)
	}
}

func (h *Hub) snapshotMessage() ([]byte, error) {
	payload := snapshotPayload{
		History: make(map[string][]models.VitalSample),
	}

	if h.state != nil {
		payload.Status = h.state.Status()
	}

	if h.history != nil {
		for _, name := range h.history.Names() {
			payload.History[name] = h.history.History(name)
		}
	}

	return json.Marshal(message{Type: "snapshot", Payload: payload})
}

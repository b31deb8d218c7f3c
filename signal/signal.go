// Package signal delivers asynchronous events to whoever embeds the device:
// the websocket server, the shared library or the simulator.
package signal

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Envelope is the JSON form of every signal.
type Envelope struct {
	Type  string      `json:"type"`
	Event interface{} `json:"event"`
}

// Handler receives the marshalled envelope.
type Handler func(data []byte)

var (
	mu      sync.RWMutex
	handler Handler
)

// SetSignalHandler replaces the current handler. A nil handler drops
// signals.
func SetSignalHandler(h Handler) {
	mu.Lock()
	defer mu.Unlock()
	handler = h
}

// Send marshals event under typ and hands it to the handler.
func Send(typ string, event interface{}) {
	data, err := json.Marshal(Envelope{Type: typ, Event: event})
	if err != nil {
		zap.L().Error("failed to marshal signal", zap.String("type", typ), zap.Error(err))
		return
	}

	mu.RLock()
	h := handler
	mu.RUnlock()

	if h == nil {
		zap.L().Debug("no signal handler", zap.String("type", typ))
		return
	}
	h(data)
}

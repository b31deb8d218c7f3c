package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const signalWriteTimeout = 5 * time.Second

// listeners is the set of websocket clients following device signals.
type listeners struct {
	logger *zap.Logger
	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
}

func newListeners(logger *zap.Logger) *listeners {
	return &listeners{
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}, 1),
	}
}

func (l *listeners) add(conn *websocket.Conn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conns[conn] = struct{}{}
}

func (l *listeners) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.conns)
}

// broadcast writes one signal to every listener. A listener that cannot take
// it within signalWriteTimeout is dropped.
func (l *listeners) broadcast(data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for conn := range l.conns {
		err := conn.SetWriteDeadline(time.Now().Add(signalWriteTimeout))
		if err == nil {
			err = conn.WriteMessage(websocket.TextMessage, data)
		}
		if err != nil {
			l.logger.Warn("dropping signal listener", zap.Stringer("remote", conn.RemoteAddr()), zap.Error(err))
			l.drop(conn)
		}
	}
}

func (l *listeners) closeAll() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for conn := range l.conns {
		l.drop(conn)
	}
}

func (l *listeners) drop(conn *websocket.Conn) {
	delete(l.conns, conn)
	if err := conn.Close(); err != nil {
		l.logger.Error("failed to close signal listener", zap.Error(err))
	}
}

package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/pkg/session"
	"github.com/status-im/status-ergo-go/signal"
)

var errAlreadyListening = errors.New("server already started")

// Server exposes the ergo RPC service on /rpc and streams device signals
// (screen, status and response events) to websocket clients on /signals.
type Server struct {
	logger    *zap.Logger
	http      *http.Server
	listener  net.Listener
	followers *listeners
	address   string
}

func NewServer(logger *zap.Logger) *Server {
	logger = logger.Named("server")
	return &Server{
		logger:    logger,
		followers: newListeners(logger),
	}
}

func (s *Server) Address() string {
	return s.address
}

func (s *Server) Port() (int, error) {
	_, port, err := net.SplitHostPort(s.address)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(port)
}

// Connections returns how many websocket clients follow device signals.
func (s *Server) Connections() int {
	return s.followers.count()
}

// Setup routes every device signal to the websocket followers.
func (s *Server) Setup() {
	signal.SetSignalHandler(s.followers.broadcast)
}

func (s *Server) routes() (http.Handler, error) {
	rpc, err := session.CreateRPCServer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create RPC server")
	}

	mux := http.NewServeMux()
	mux.Handle("/rpc", rpc)
	mux.HandleFunc("/signals", s.follow)
	return mux, nil
}

func (s *Server) Listen(address string) error {
	if s.http != nil {
		return errAlreadyListening
	}
	if _, _, err := net.SplitHostPort(address); err != nil {
		return errors.Wrap(err, "invalid address")
	}

	handler, err := s.routes()
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	s.listener = listener
	s.address = listener.Addr().String()
	s.http = &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return nil
}

func (s *Server) Serve() {
	err := s.http.Serve(s.listener)
	if !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("ergo server closed with error", zap.Error(err))
	}
}

// Stop disconnects the signal followers, then shuts the HTTP side down.
func (s *Server) Stop(ctx context.Context) {
	s.followers.closeAll()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("failed to shutdown ergo server", zap.Error(err))
	}
	s.http = nil
	s.address = ""
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

func (s *Server) follow(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade signal connection", zap.Error(err))
		return
	}
	s.logger.Debug("signal follower connected", zap.Stringer("remote", conn.RemoteAddr()))
	s.followers.add(conn)
}

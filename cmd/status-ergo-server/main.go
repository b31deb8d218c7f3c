package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/cmd/status-ergo-server/server"
	"github.com/status-im/status-ergo-go/internal/logging"
)

var (
	address    = flag.String("address", "127.0.0.1:0", "host:port to listen")
	logFile    = flag.String("log-file", "", "write logs to this file instead of the console")
	rootLogger = zap.NewNop()
)

func main() {
	flag.Parse()

	var err error
	rootLogger, err = logging.BuildLogger(true, *logFile)
	if err != nil {
		fmt.Printf("failed to initialize log: %v\n", err)
		rootLogger = zap.NewNop()
	}
	zap.ReplaceGlobals(rootLogger)
	logger := rootLogger.Named("main")

	srv := server.NewServer(rootLogger)
	srv.Setup()

	err = srv.Listen(*address)
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))
		return
	}

	go handleInterrupts(srv)

	logger.Info("ergo-server started", zap.String("address", srv.Address()))
	srv.Serve()
}

// handleInterrupts catches interrupt signal (SIGTERM/SIGINT) and
// gracefully stops the server.
func handleInterrupts(srv *server.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	<-ch
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Stop(ctx)
}

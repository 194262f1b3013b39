package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/qnkhuat/tetristerm/pkg/logging"
	"github.com/qnkhuat/tetristerm/pkg/ssh"
)

const ShutdownTimeout = 10 * time.Second

var (
	listenAddressSSH string
	clientBinary     string
	clientLog        string
	hostKeyFile      string

	logDebug bool

	done = make(chan error, 1)
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&listenAddressSSH, "listen-ssh", "", "host SSH server on network address")
	flag.StringVar(&clientBinary, "tetristerm", "tetristerm", "path to tetristerm client")
	flag.StringVar(&clientLog, "client-log", os.DevNull, "log file passed to each client")
	flag.StringVar(&hostKeyFile, "host-key", "", "path to SSH host key (generated when empty)")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
}

func main() {
	flag.Parse()

	if listenAddressSSH == "" {
		log.Fatal("a listen address is required (--listen-ssh)")
	}

	logger, err := logging.NewConsoleLogger("server", logDebug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	server := &ssh.Server{
		ListenAddress: listenAddressSSH,
		Binary:        clientBinary,
		Args:          []string{"-log", clientLog},
		HostKeyFile:   hostKeyFile,
		Logger:        logger,
	}

	color.New(color.FgCyan, color.Bold).Fprint(os.Stderr, "tetristerm")
	color.New(color.FgHiBlack).Fprintf(os.Stderr, " ssh %s\n", listenAddressSSH)

	go func() {
		done <- server.Host()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	case sig := <-sigc:
		logger.Info("shutting down", zap.Stringer("signal", sig), zap.Int("sessions", server.Sessions()))

		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Warn("failed to shut down cleanly", zap.Error(err))
		}
	}
}

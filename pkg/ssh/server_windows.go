//go:build windows
// +build windows

package ssh

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// SSH server is unsupported on Windows

var (
	ErrNoListenAddress = errors.New("ssh: listen address must be specified")
	ErrNoBinary        = errors.New("ssh: client binary must be specified")
	ErrUnsupported     = errors.New("ssh: hosting is not supported on windows")
)

type Server struct {
	ListenAddress string
	Binary        string
	Args          []string
	HostKeyFile   string

	Logger *zap.Logger
}

func (s *Server) Host() error {
	return ErrUnsupported
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Sessions() int {
	return 0
}

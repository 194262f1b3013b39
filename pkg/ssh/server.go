//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"

	"github.com/qnkhuat/tetristerm/pkg/game"
)

const (
	ServerIdleTimeout = 5 * time.Minute
)

var (
	ErrNoListenAddress = errors.New("ssh: listen address must be specified")
	ErrNoBinary        = errors.New("ssh: client binary must be specified")
)

// Server hosts one client process per SSH session, attached to the session
// through a pty.
type Server struct {
	ListenAddress string
	Binary        string
	Args          []string
	HostKeyFile   string

	Logger *zap.Logger

	server   *ssh.Server
	sessions int64

	sync.Mutex
}

// Host listens until the server is shut down. Without a host key file an
// ephemeral key is generated.
func (s *Server) Host() error {
	if s.ListenAddress == "" {
		return ErrNoListenAddress
	} else if s.Binary == "" {
		return ErrNoBinary
	}

	if s.Logger == nil {
		s.Logger = zap.NewNop()
	}

	server := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handleSession,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKeyFile != "" {
		if err := server.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return fmt.Errorf("failed to load host key %s: %w", s.HostKeyFile, err)
		}
	}

	s.Lock()
	s.server = server
	s.Unlock()

	s.Logger.Info("listening", zap.String("address", s.ListenAddress), zap.String("client", s.Binary))

	err := server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}

	return err
}

// Shutdown stops listening and waits for open sessions until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Lock()
	server := s.server
	s.Unlock()

	if server == nil {
		return nil
	}

	return server.Shutdown(ctx)
}

// Sessions returns the number of sessions currently attached.
func (s *Server) Sessions() int {
	return int(atomic.LoadInt64(&s.sessions))
}

// Command returns the client invocation for an SSH user.
func (s *Server) Command(ctx context.Context, user string, term string) *exec.Cmd {
	args := make([]string, 0, len(s.Args)+2)
	args = append(args, s.Args...)
	args = append(args, "-nick", game.Nickname(user))

	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", term))

	return cmd
}

func (s *Server) handleSession(sshSession ssh.Session) {
	id := uuid.New()
	logger := s.Logger.With(zap.Stringer("session", id), zap.String("user", sshSession.User()), zap.Stringer("remote", sshSession.RemoteAddr()))

	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start tetristerm: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	atomic.AddInt64(&s.sessions, 1)
	defer atomic.AddInt64(&s.sessions, -1)

	logger.Info("session started", zap.String("term", ptyReq.Term))
	started := time.Now()

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := s.Command(cmdCtx, sshSession.User(), ptyReq.Term)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		logger.Error("failed to start client", zap.Error(err))

		io.WriteString(sshSession, "failed to start tetristerm\n")
		sshSession.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
			if err != nil {
				logger.Debug("failed to resize pty", zap.Error(err))
			}
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	err = cmd.Wait()

	logger.Info("session ended", zap.Duration("duration", time.Since(started)), zap.NamedError("exit", err))
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/logging"
	"github.com/qnkhuat/tetristerm/pkg/web"
)

var (
	logPath      string
	logDebug     bool
	nicknameFlag string
	seed         int64
	themeName    string
	themeFile    string
	blockSize    int
	debugAddress string
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&logPath, "log", "tetristerm.log", "path to log file")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.StringVar(&nicknameFlag, "nick", "", "nickname")
	flag.Int64Var(&seed, "seed", 0, "start a game right away with this seed")
	flag.StringVar(&themeName, "theme", "", "theme name")
	flag.StringVar(&themeFile, "theme-file", "", "path to a JSON theme list")
	flag.IntVar(&blockSize, "scale", 0, "UI scale (1-2, 0 picks from terminal size)")
	flag.StringVar(&debugAddress, "debug-address", "", "address to serve debug info")
}

func main() {
	flag.Parse()

	fd := os.Stdout.Fd()
	if !term.IsTerminal(int(fd)) && !isatty.IsCygwinTerminal(fd) {
		log.Fatal("failed to start tetristerm: non-interactive terminals are not supported")
	}

	logger, err := logging.NewLogger(logPath, "client", logDebug)
	if err != nil {
		log.Fatalf("failed to start tetristerm: %s", err)
	}
	defer logger.Sync()

	theme, err := gui.LoadTheme(themeFile, themeName)
	if err != nil {
		log.Fatalf("failed to start tetristerm: %s", err)
	}

	nickname := game.Nickname(nicknameFlag)

	draw := make(chan event.DrawObject, gui.DrawQueueSize)
	g := game.NewGame(nil, logger, draw)
	if seed != 0 {
		g.Start(seed)
	}

	if debugAddress != "" {
		go func() {
			err := http.ListenAndServe(debugAddress, web.NewDebugServer(g, logger))
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("debug server stopped", zap.Error(err))
			}
		}()
	}

	ui := gui.NewGUI(g, draw, theme, nickname, blockSize, logger)

	defer func() {
		if r := recover(); r != nil {
			ui.Stop()

			logger.Error("panic", zap.Any("recovered", r), zap.ByteString("stack", debug.Stack()))
			log.Fatalf("panic: %+v", r)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		ui.Stop()
	}()

	logger.Info("client started", zap.String("nick", nickname), zap.String("theme", theme.Name))

	if err := ui.Run(); err != nil {
		log.Fatalf("failed to run application: %s", err)
	}

	printSummary(g.Snapshot(), nickname)
}

func printSummary(s game.Snapshot, nickname string) {
	if s.Score == 0 && s.Lines == 0 {
		return
	}

	bold := color.New(color.Bold)
	label := color.New(color.FgHiBlack)

	fmt.Println()
	bold.Printf("  %s\n", nickname)
	label.Print("  score ")
	fmt.Printf("%d", s.Score)
	label.Print("  lines ")
	fmt.Printf("%d", s.Lines)
	label.Print("  level ")
	fmt.Printf("%d\n\n", s.Level)
}

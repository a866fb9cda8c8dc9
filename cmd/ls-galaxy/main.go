// Command ls-galaxy is a terminal portfolio where resume sections orbit as
// bodies you can fly the camera to.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-galaxy/internal/logging"
	"github.com/litescript/ls-galaxy/internal/media"
	"github.com/litescript/ls-galaxy/internal/scene"
	"github.com/litescript/ls-galaxy/internal/session"
	"github.com/litescript/ls-galaxy/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode  bool
	snapshotPath string
	dumpScene    bool
	simulateFor  time.Duration
)

const (
	defaultFPS = 30
	minFPS     = 10
	maxFPS     = 120

	simStep = 0.05
)

func main() {
	fps := flag.Int("fps", defaultFPS, "Frames per second (10-120)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to a rotating file")
	scenePath := flag.String("scene", "", "Load bodies from a JSON catalog")
	audioDir := flag.String("audio-dir", "audio", "Directory holding <slug>.mp3 tracks")
	mute := flag.Bool("mute", false, "Do not open the audio device")
	seed := flag.Uint64("seed", 0, "Shuffle seed (0 = time-based)")
	flag.BoolVar(&summaryMode, "summary", false, "Print a body table instead of the TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.BoolVar(&dumpScene, "dump-scene", false, "Print the body catalog as JSON and exit")
	flag.DurationVar(&simulateFor, "at", 0, "Simulate this long before a headless summary or snapshot")
	flag.Parse()

	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	headless := summaryMode || snapshotPath != "" || dumpScene || !isTTY

	// The TUI owns the terminal, so it only logs to a file.
	logger := logging.Discard()
	if *logFile != "" {
		l, closer, err := logging.NewFile(logging.ParseLevel(*logLevel), logging.DefaultFileConfig(*logFile))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer closer.Close()
		logger = l
	} else if headless {
		logger = logging.New(logging.ParseLevel(*logLevel))
	}

	catalog := scene.DefaultCatalog()
	if *scenePath != "" {
		c, err := scene.LoadCatalogFile(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		catalog = c
	}

	if dumpScene {
		if err := catalog.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := session.DefaultConfig()
	cfg.Menu.Seed = *seed
	if cfg.Menu.Seed == 0 {
		cfg.Menu.Seed = uint64(time.Now().UnixNano())
	}

	deps := session.Deps{Log: logger}
	if !headless {
		deps.Opener = media.NewBrowserOpener()
		if !*mute {
			player, err := media.NewBeepPlayer(media.DefaultAudioConfig(*audioDir), logger)
			if err != nil {
				logger.Warn("Audio unavailable, continuing silently: %v", err)
			} else {
				deps.Player = player
				deps.Click = player
			}
		}
	}

	sess, err := session.New(cfg, catalog, deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	if headless {
		if err := runHeadless(sess, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(ui.New(sess, *fps), tea.WithAltScreen(), tea.WithMouseAllMotion())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Debug("Signal received, quitting")
		p.Quit()
	}()

	logger.Info("Starting with %d bodies at %d fps", len(catalog.Bodies), *fps)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless advances the scene without a terminal and prints it.
func runHeadless(sess *session.Session, out io.Writer) error {
	for t := 0.0; t < simulateFor.Seconds(); t += simStep {
		sess.Tick(simStep)
	}
	export := sess.Export()

	if snapshotPath != "" {
		if snapshotPath == "-" {
			if err := export.WriteJSON(out); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(snapshotPath)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	// Summary is the default when nothing else was asked for, including
	// when stdout is not a terminal.
	if summaryMode || snapshotPath == "" {
		session.WriteSummaryTable(out, export)
	}
	return nil
}

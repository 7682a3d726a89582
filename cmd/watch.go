package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/tranvictor/basewatch/config"
	"github.com/tranvictor/basewatch/dashboard"
	"github.com/tranvictor/basewatch/networks"
	"github.com/tranvictor/basewatch/tracker"
	"github.com/tranvictor/basewatch/ui"
	"github.com/tranvictor/basewatch/util/reader"
)

const (
	frameInterval = 250 * time.Millisecond
	hideCursor    = "\x1b[?25l"
	showCursor    = "\x1b[?25h"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show a live dashboard of the latest Base blocks",
	Long: `Polls every supported network for new blocks and shows the selected one.

Keys:
	m        watch mainnet
	t        watch testnet
	p, space pause or resume polling
	+, -     show more or fewer blocks
	q        quit

With --plain, or when stdout is not a terminal, one line is printed per new
block instead of redrawing the dashboard.`,
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateNetwork(config.Network); err != nil {
			return err
		}
		if config.PollInterval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", config.PollInterval)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		u := ui.NewTerminalUIWithFile(outputFile(cmd), colored())
		plain := config.Plain || !u.IsTerminal()

		logger, err := config.NewLogger(config.LogFile, config.LogLevel, plain)
		if err != nil {
			return err
		}
		log := logger.WithField("session", uuid.NewString())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		t := newTracker(log)
		d, err := dashboard.New(t, config.Network)
		if err != nil {
			return err
		}
		d.SetWindowSize(config.WindowSize)
		log.WithFields(logrus.Fields{
			"network":  d.Network(),
			"window":   d.WindowSize(),
			"interval": config.PollInterval,
		}).Info("starting")

		done := u.Spinner("Connecting to Base...")
		t.Connect(ctx)
		done()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return t.Run(gctx)
		})
		g.Go(func() error {
			defer cancel()
			if plain {
				return runPlain(gctx, u, d)
			}
			return runInteractive(gctx, cancel, u, d, log)
		})
		err = g.Wait()
		log.Info("stopped")
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

// validateNetwork checks name is supported and suggests the closest
// supported name when it isn't.
func validateNetwork(name string) error {
	_, err := networks.GetNetwork(name)
	if err == nil {
		return nil
	}
	if s := networks.Suggest(name); s != "" {
		return fmt.Errorf("%w, did you mean '%s'?", err, s)
	}
	return err
}

// newTracker adds a session for every supported network so switching
// networks keeps both histories warm.
func newTracker(log *logrus.Entry) *tracker.Tracker {
	t := tracker.NewTracker(log)
	for _, n := range networks.GetSupportedNetworks() {
		nodes := networks.GetNodes(n)
		log.WithFields(logrus.Fields{
			"network": n.GetName(),
			"nodes":   networks.SortedNodeNames(nodes),
		}).Debug("adding network")
		t.Add(n.GetName(), reader.NewEthReaderGeneric(nodes), tracker.WithInterval(config.PollInterval))
	}
	return t
}

func runInteractive(ctx context.Context, quit func(), u *ui.TerminalUI, d *dashboard.Dashboard, log *logrus.Entry) error {
	out := u.Writer()
	redraw := make(chan struct{}, 1)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("couldn't switch the terminal to raw mode: %w", err)
		}
		defer term.Restore(fd, state)
		go readKeys(os.Stdin, d, log, redraw, quit)
	}
	fmt.Fprint(out, hideCursor)
	defer fmt.Fprint(out, showCursor)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for tick := 0; ; {
		frame := ui.RenderDashboard(d.Snapshot(), ui.ViewOptions{Width: u.Width(), Tick: tick})
		if config.NoColor {
			frame = ansi.Strip(frame)
		}
		u.Frame(frame)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			tick++
		case <-redraw:
		}
	}
}

func runPlain(ctx context.Context, u ui.UI, d *dashboard.Dashboard) error {
	p := newBlockPrinter(u)
	u.Info("Watching %s, press Ctrl-C to stop.", d.Snapshot().Network.GetDisplayName())

	ticker := time.NewTicker(config.PollInterval / 2)
	defer ticker.Stop()
	for {
		printSelected(p, d)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func printSelected(p *blockPrinter, d *dashboard.Dashboard) int {
	s, found := d.Tracker().Session(d.Network())
	if !found {
		return 0
	}
	return p.print(d.Snapshot(), s.History().Records())
}

func init() {
	watchCmd.Flags().IntVar(&config.WindowSize, "window", dashboard.DefaultWindowSize, fmt.Sprintf("number of blocks in the metrics window, %d to %d", dashboard.MinWindowSize, dashboard.MaxWindowSize))
	watchCmd.Flags().DurationVar(&config.PollInterval, "interval", tracker.DefaultInterval, "delay between two polls of a network")
	watchCmd.Flags().BoolVar(&config.Plain, "plain", false, "print one line per block instead of the dashboard")
	watchCmd.Flags().StringVar(&config.LogFile, "log-file", "", "write logs to this file, rotated by size")
	watchCmd.Flags().StringVar(&config.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.AddCommand(watchCmd)
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ramanasai/chime/internal/alarm"
	"github.com/ramanasai/chime/internal/clock"
	"github.com/ramanasai/chime/internal/notify"
	"github.com/ramanasai/chime/internal/schedule"
)

var watchSound bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Ring alarms without the full-screen clock",
	Long: `Runs the alarm scheduler in the foreground and prints each ring.
While an alarm rings, type s (stop) or z (snooze) and press enter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if watchSound {
			a.notifier.SetSound(true)
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		w := &watcher{
			sched:  a.sched,
			out:    cmd.OutOrStdout(),
			logger: a.logger,
			info:   notify.Info,
		}
		fmt.Fprintf(w.out, "Watching %d alarm(s). Ctrl+C to quit.\n", a.state().Len())
		return w.run(ctx, schedule.Ticks(ctx, a.cfg.Tick), readLines(ctx, os.Stdin))
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchSound, "sound", false, "beep while ringing (overrides sound.enabled)")
}

type watcher struct {
	sched  *alarm.Scheduler
	out    io.Writer
	logger *log.Logger
	info   func(title, message string) error

	last time.Time
}

// run drives the scheduler from ticks and applies stop/snooze commands from
// lines until ctx is done or ticks closes.
func (w *watcher) run(ctx context.Context, ticks <-chan time.Time, lines <-chan string) error {
	defer w.sched.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now, ok := <-ticks:
			if !ok {
				return nil
			}
			w.last = now
			if a, rang := w.sched.Tick(now); rang {
				fmt.Fprintf(w.out, "%s  ⏰ %s — %s  [s]top / [z]snooze\n",
					clock.FormatDigital(now, w.sched.State().Use24h()), a.Title(), clock.FormatAlarmDisplay(a.Time, w.sched.State().Use24h()))
			}
		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			w.command(line)
		}
	}
}

func (w *watcher) command(line string) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "stop":
		if _, ringing := w.sched.Ringing(); !ringing {
			fmt.Fprintln(w.out, "Nothing is ringing.")
			return
		}
		w.sched.Stop()
		fmt.Fprintln(w.out, "Stopped.")
	case "z", "snooze":
		a, ok := w.sched.Snooze(w.last)
		if !ok {
			fmt.Fprintln(w.out, "Nothing is ringing.")
			return
		}
		msg := fmt.Sprintf("Snoozed until %s", clock.FormatAlarmDisplay(a.Time, w.sched.State().Use24h()))
		fmt.Fprintln(w.out, msg)
		if w.info != nil {
			if err := w.info("chime", msg); err != nil {
				w.logger.Debug("snooze notification failed", "err", err)
			}
		}
	case "":
	default:
		fmt.Fprintln(w.out, "Commands: s (stop), z (snooze)")
	}
}

// readLines forwards r line by line until EOF or ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

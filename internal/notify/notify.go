package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"
	"github.com/ramanasai/chime/internal/alarm"
	"github.com/ramanasai/chime/internal/config"
	"github.com/ramanasai/chime/internal/schedule"
)

const appName = "chime"

// Info shows a plain desktop notification.
func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Message is the text shown for a ringing alarm.
func Message(a alarm.Alarm) string {
	return fmt.Sprintf("%s — %s", a.Title(), a.Time)
}

// Notifier rings alarms: one desktop notification plus a beep repeated on a
// fixed interval until Stop. Beeps only sound while sound is enabled; any
// audio or notification failure is logged and otherwise ignored.
type Notifier struct {
	freq     float64
	duration int
	interval time.Duration
	sound    atomic.Bool
	logger   *log.Logger

	beep   func(freq float64, ms int) error
	notify func(title, message string) error

	mu     sync.Mutex
	cancel context.CancelFunc
	alarm  alarm.Alarm
}

func New(cfg config.SoundConfig, logger *log.Logger) *Notifier {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	n := &Notifier{
		freq:     cfg.Frequency,
		duration: cfg.Duration,
		interval: cfg.Interval,
		logger:   logger,
		beep:     beeep.Beep,
		notify:   func(title, message string) error { return beeep.Alert(title, message, "") },
	}
	n.sound.Store(cfg.Enabled)
	return n
}

// SetSound turns audible beeps on or off, including for an alarm that is
// already ringing.
func (n *Notifier) SetSound(on bool) { n.sound.Store(on) }

// SoundEnabled reports the sound flag.
func (n *Notifier) SoundEnabled() bool { return n.sound.Load() }

// Ring starts presenting a. A previous ring is replaced.
func (n *Notifier) Ring(a alarm.Alarm) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopLocked()
	n.alarm = a
	if err := n.notify(appName, Message(a)); err != nil {
		n.logger.Debug("desktop notification failed", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	go schedule.Every(ctx, n.interval, func(time.Time) { n.beepOnce() })
	n.logger.Info("alarm ringing", "id", a.ID, "time", a.Time, "label", a.Label)
}

// Stop cancels the repeating tone. Calling it while silent is a no-op.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopLocked()
}

// Ringing reports whether a tone loop is active and for which alarm.
func (n *Notifier) Ringing() (alarm.Alarm, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.alarm, n.cancel != nil
}

func (n *Notifier) stopLocked() {
	if n.cancel == nil {
		return
	}
	n.cancel()
	n.cancel = nil
	n.alarm = alarm.Alarm{}
}

func (n *Notifier) beepOnce() {
	if !n.sound.Load() {
		return
	}
	if err := n.beep(n.freq, n.duration); err != nil {
		n.logger.Debug("beep failed", "err", err)
	}
}

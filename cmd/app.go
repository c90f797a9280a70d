package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ramanasai/chime/internal/alarm"
	"github.com/ramanasai/chime/internal/config"
	"github.com/ramanasai/chime/internal/db"
	"github.com/ramanasai/chime/internal/logging"
	"github.com/ramanasai/chime/internal/notify"
	"github.com/ramanasai/chime/internal/store"
)

// app is everything a command needs, wired from config.
type app struct {
	cfg      config.Config
	dir      string
	dbh      *sql.DB
	logger   *log.Logger
	logFile  io.Closer
	notifier *notify.Notifier
	sched    *alarm.Scheduler
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load()
}

func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dirOverride := cfg.DataDir
	if dataDirFlag != "" {
		dirOverride = dataDirFlag
	}
	dir, err := db.DataDir(dirOverride)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	logger, logFile := logging.Open(dir, cfg.Log.Level)
	dbh, err := db.Open(dir)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	st := store.New(db.NewKV(dbh), logger)
	state := alarm.NewState(st.Load(), st, logger)
	n := notify.New(cfg.Sound, logger)
	sched := alarm.NewScheduler(state, n, cfg.Snooze)

	logger.Debug("opened", "dir", dir, "alarms", state.Len())
	return &app{
		cfg:      cfg,
		dir:      dir,
		dbh:      dbh,
		logger:   logger,
		logFile:  logFile,
		notifier: n,
		sched:    sched,
	}, nil
}

func (a *app) state() *alarm.State { return a.sched.State() }

func (a *app) Close() error {
	a.notifier.Stop()
	return errors.Join(a.dbh.Close(), a.logFile.Close())
}

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gantry/internal/config"
	"gantry/internal/logging"
	"gantry/internal/prefs"
	"gantry/internal/probe"
	"gantry/internal/readiness"
	"gantry/internal/state"
	"gantry/internal/supervisor"
	"gantry/internal/ui"
)

// Options configure the launcher.
type Options struct {
	ConfigPath  string
	PrefsPath   string        // empty uses default ~/.config/gantry/prefs.toml
	Headless    bool          // run without the TUI; report to Out
	NoSpawn     bool          // attach to an already-running backend
	MaxAttempts int           // overrides config when positive
	RetryDelay  time.Duration // overrides config when positive
	Out         io.Writer     // headless status output; defaults to stdout
}

const stopGrace = 5 * time.Second

// Run boots the launcher and blocks until the UI exits or, in headless
// mode, until the readiness wait reaches a terminal outcome. It returns
// the process exit code; a non-nil error is a fatal startup failure.
func Run(ctx context.Context, opts Options) (int, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return 1, fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := logging.New(logging.Options{
		Path:  cfg.LauncherLogPath(),
		Level: cfg.Logging.Level,
	})
	if err != nil {
		return 1, fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()

	prober := probe.NewHTTP(probe.Endpoint{
		Host: cfg.Backend.Host,
		Port: cfg.Backend.Port,
		Path: cfg.Backend.HealthPath,
	})

	params := readiness.Params{
		MaxAttempts: cfg.Readiness.MaxAttempts,
		RetryDelay:  cfg.Readiness.RetryDelay,
	}
	if opts.MaxAttempts > 0 {
		params.MaxAttempts = opts.MaxAttempts
	}
	if opts.RetryDelay > 0 {
		params.RetryDelay = opts.RetryDelay
	}

	// Spawn failures are fatal and never retried, unlike an unreachable
	// backend which gets the full probe budget.
	var handle *supervisor.Handle
	if !opts.NoSpawn {
		handle, err = supervisor.Spawn(supervisor.Spec{
			Command: cfg.Backend.Command,
			Args:    cfg.Backend.Args,
			Env: map[string]string{
				"PORT":    strconv.Itoa(cfg.Backend.Port),
				"MIX_ENV": "prod",
				"BURRITO": "1",
			},
			LogPath: cfg.BackendLogPath(),
		})
		if err != nil {
			log.Errorw("backend spawn failed", "command", cfg.Backend.Command, "error", err)
			return 1, err
		}
		defer handle.Stop(stopGrace)
		log.Infow("backend spawned", "pid", handle.PID(), "command", cfg.Backend.Command, "port", cfg.Backend.Port)
	}

	if opts.Headless {
		return runHeadless(ctx, opts, prober, params, log)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	store := &state.Store{}

	program := ui.NewProgram(ui.Options{
		Store:       store,
		BackendLog:  cfg.BackendLogPath(),
		MaxAttempts: params.MaxAttempts,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
	})

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()

	// The readiness wait runs on its own goroutine so the splash stays
	// responsive; it talks to the event loop only through Program.Send.
	go func() {
		notifier := readiness.NotifierFunc(func(attempt int, text string) {
			program.Send(ui.StatusMsg{Attempt: attempt, Text: text})
		})
		report := readiness.New(prober, notifier, params, log).Wait(monitorCtx)

		if report.Outcome == readiness.BackendReady {
			StartMonitor(monitorCtx, store, prober, defaultMonitorInterval)
		}
		pid := 0
		if handle != nil {
			pid = handle.PID()
		}
		program.Send(ui.OutcomeMsg{
			Report:     report,
			BackendURL: prober.BaseURL(),
			PID:        pid,
		})
	}()

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	code, err := ui.Wait(program)
	if err != nil {
		return 1, fmt.Errorf("run ui: %w", err)
	}
	log.Infow("launcher exiting", "code", code)
	return code, nil
}

// runHeadless performs the readiness wait with console status output
// instead of the TUI. Exit codes match the UI path.
func runHeadless(ctx context.Context, opts Options, prober *probe.HTTP, params readiness.Params, log *zap.SugaredLogger) (int, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	lastText := ""
	notifier := readiness.NotifierFunc(func(attempt int, text string) {
		if text != lastText {
			fmt.Fprintln(out, text)
			lastText = text
		}
	})

	controller := readiness.New(prober, notifier, params, log)
	report := controller.Wait(ctx)
	if report.Outcome == readiness.BackendReady {
		fmt.Fprintf(out, "Backend ready at %s after %d attempts\n", prober.BaseURL(), report.Attempts)
		log.Infow("backend ready", "attempts", report.Attempts)
		return 0, nil
	}
	fmt.Fprintf(out, "Backend failed to start after %d attempts\n", report.Attempts)
	log.Infow("backend failed", "attempts", report.Attempts)
	return 1, nil
}

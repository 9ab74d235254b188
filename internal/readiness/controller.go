package readiness

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gantry/internal/probe"
)

// Outcome is the terminal result of a readiness wait. Exactly one outcome
// is produced per run.
type Outcome int

const (
	// BackendReady means a probe succeeded within the retry budget.
	BackendReady Outcome = iota
	// BackendFailed means the retry budget was exhausted (or the wait was
	// cancelled) without a successful probe.
	BackendFailed
)

// String returns a short label for logs.
func (o Outcome) String() string {
	if o == BackendReady {
		return "ready"
	}
	return "failed"
}

// Report describes how a readiness wait ended.
type Report struct {
	Outcome  Outcome
	Attempts int // number of probes actually issued
	Elapsed  time.Duration
	Last     probe.Result // result of the final probe issued
}

// Notifier receives best-effort status pushes while the wait is in
// progress. Implementations must not block; failures are ignored.
type Notifier interface {
	PushStatus(attempt int, text string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(attempt int, text string)

// PushStatus implements Notifier.
func (f NotifierFunc) PushStatus(attempt int, text string) {
	f(attempt, text)
}

const (
	defaultMaxAttempts = 120
	defaultRetryDelay  = 500 * time.Millisecond
)

// Params bound the wait. The defaults give a two minute worst case
// (120 attempts x 500ms), which covers a cold boot with migrations.
type Params struct {
	MaxAttempts int
	RetryDelay  time.Duration
	Bands       []Band
}

func (p Params) withDefaults() Params {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.RetryDelay <= 0 {
		p.RetryDelay = defaultRetryDelay
	}
	if len(p.Bands) == 0 {
		p.Bands = DefaultBands
	}
	return p
}

// Controller drives the probe-until-ready loop. One controller performs one
// wait per process lifetime; there is no reset.
type Controller struct {
	prober   probe.Prober
	notifier Notifier
	params   Params
	log      *zap.SugaredLogger
}

// New builds a Controller. notifier may be nil when no status view is
// wired in (headless runs); log may be nil.
func New(prober probe.Prober, notifier Notifier, params Params, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Controller{
		prober:   prober,
		notifier: notifier,
		params:   params.withDefaults(),
		log:      log,
	}
}

// Wait probes the backend until it is ready or the retry budget is
// exhausted, returning exactly one Report. Individual probe failures are
// never fatal; only running out of attempts is. A cancelled context ends
// the wait early with BackendFailed and no further probes.
func (c *Controller) Wait(ctx context.Context) Report {
	start := time.Now()
	var last probe.Result

	for attempt := 1; attempt <= c.params.MaxAttempts; attempt++ {
		last = c.prober.Check(ctx)
		if last.Ok() {
			c.log.Infow("backend ready", "attempt", attempt, "elapsed", time.Since(start))
			return Report{Outcome: BackendReady, Attempts: attempt, Elapsed: time.Since(start), Last: last}
		}

		switch last.State {
		case probe.TransportError:
			// Same control flow as NotReady: the listener just isn't up yet.
			c.log.Debugw("backend unreachable", "attempt", attempt, "max", c.params.MaxAttempts, "detail", last.Detail)
		default:
			c.log.Debugw("backend not ready", "attempt", attempt, "max", c.params.MaxAttempts, "status", last.StatusCode)
		}

		c.pushStatus(attempt)

		if attempt == c.params.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			c.log.Warnw("readiness wait cancelled", "attempt", attempt)
			return Report{Outcome: BackendFailed, Attempts: attempt, Elapsed: time.Since(start), Last: last}
		case <-time.After(c.params.RetryDelay):
		}
	}

	c.log.Errorw("backend failed to start", "attempts", c.params.MaxAttempts, "elapsed", time.Since(start))
	return Report{Outcome: BackendFailed, Attempts: c.params.MaxAttempts, Elapsed: time.Since(start), Last: last}
}

// pushStatus sends the banded status line to the notifier if one exists.
// Status updates are cosmetic; any problem delivering them is ignored.
func (c *Controller) pushStatus(attempt int) {
	if c.notifier == nil {
		return
	}
	c.notifier.PushStatus(attempt, StatusText(c.params.Bands, attempt))
}

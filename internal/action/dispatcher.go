package action

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"tempo/internal/timer"
)

// ErrMissingResource marks a timeout target (file or URL) that cannot
// be reached at dispatch time. It is user-visible and recoverable.
var ErrMissingResource = errors.New("timeout target missing")

// Notifier is the presentation-side collaborator for completion messages.
type Notifier interface {
	Notify(message string, playSound bool) error
}

// Dispatcher executes exactly one action per countdown expiry. It never
// touches rendering or process exit itself; side effects go through the
// injected collaborators.
type Dispatcher struct {
	notifier Notifier
	system   SystemController
}

func NewDispatcher(n Notifier, sys SystemController) *Dispatcher {
	return &Dispatcher{notifier: n, system: sys}
}

// Result reports what an expiry produced, for the caller to render.
type Result struct {
	Message   string
	SwitchTo  *timer.Mode // non-nil when the action reconfigured the display mode
	PhaseDone bool        // a Pomodoro sequence just finished
	Cycles    int         // completed cycles when PhaseDone
	Err       error
}

// OnCountdownExpired handles a single expiry. Pomodoro expiries always
// notify with phase-specific text, independent of the configured
// action; plain expiries execute the configured action.
func (d *Dispatcher) OnCountdownExpired(ctrl *timer.Controller, configured Action, sound bool) Result {
	if seq := ctrl.Sequence(); seq != nil {
		return d.advanceSequence(ctrl, seq, sound)
	}
	return d.execute(ctrl, configured, sound)
}

func (d *Dispatcher) advanceSequence(ctrl *timer.Controller, seq *timer.Sequence, sound bool) Result {
	out := ctrl.AdvancePhase()
	switch {
	case out.Stale:
		return Result{}
	case out.Done:
		msg := fmt.Sprintf("Pomodoro complete: %d cycles finished", seq.CompletedCycles)
		d.notify(msg, sound)
		return Result{Message: msg, PhaseDone: true, Cycles: seq.CompletedCycles}
	default:
		var msg string
		if seq.WorkPhase(out.PhaseIndex) {
			msg = "Work phase complete. Break time!"
		} else {
			msg = "Break over. Back to work!"
		}
		if out.CycleStarted > 0 {
			msg = fmt.Sprintf("%s Starting cycle %d.", msg, out.CycleStarted)
		}
		d.notify(msg, sound)
		return Result{Message: msg}
	}
}

func (d *Dispatcher) execute(ctrl *timer.Controller, a Action, sound bool) Result {
	switch a.Kind {
	case ShowMessage:
		msg := "Time's up!"
		d.notify(msg, sound)
		return Result{Message: msg}
	case LockSession:
		return Result{Err: d.system.LockSession()}
	case OpenFile:
		if _, err := os.Stat(a.Payload); err != nil {
			return Result{Err: fmt.Errorf("%w: %s", ErrMissingResource, a.Payload)}
		}
		return Result{Err: d.system.OpenPath(a.Payload)}
	case OpenWebsite:
		u, err := url.Parse(a.Payload)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return Result{Err: fmt.Errorf("%w: %s", ErrMissingResource, a.Payload)}
		}
		return Result{Err: d.system.OpenURL(a.Payload)}
	case SwitchToClock:
		mode := timer.ModeClock
		ctrl.SwitchMode(mode)
		return Result{SwitchTo: &mode}
	case SwitchToCountUp:
		mode := timer.ModeCountUp
		ctrl.SwitchMode(mode)
		return Result{SwitchTo: &mode}
	case Sleep:
		return Result{Err: d.system.Sleep()}
	case Shutdown:
		return Result{Err: d.system.Shutdown()}
	case Restart:
		return Result{Err: d.system.Restart()}
	}
	return Result{}
}

func (d *Dispatcher) notify(msg string, sound bool) {
	if d.notifier == nil {
		return
	}
	_ = d.notifier.Notify(msg, sound)
}

// Package action defines the timeout actions a finished countdown can
// trigger, the security downgrade applied to destructive ones, and the
// dispatcher that executes exactly one action per expiry.
package action

import (
	"errors"
	"fmt"
)

// Kind enumerates the configurable timeout behaviors.
type Kind int

const (
	ShowMessage Kind = iota
	LockSession
	OpenFile
	OpenWebsite
	SwitchToClock
	SwitchToCountUp
	Sleep
	Shutdown
	Restart
)

var kindNames = map[Kind]string{
	ShowMessage:     "MESSAGE",
	LockSession:     "LOCK",
	OpenFile:        "OPEN_FILE",
	OpenWebsite:     "OPEN_URL",
	SwitchToClock:   "CLOCK",
	SwitchToCountUp: "COUNT_UP",
	Sleep:           "SLEEP",
	Shutdown:        "SHUTDOWN",
	Restart:         "RESTART",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "MESSAGE"
}

// ErrUnknownKind marks an unrecognized persisted action name.
var ErrUnknownKind = errors.New("unknown timeout action")

// ParseKind decodes a persisted action name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return ShowMessage, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Action pairs a kind with its payload (file path or URL, when relevant).
type Action struct {
	Kind    Kind
	Payload string
}

// Destructive reports whether the kind touches host power state.
func (k Kind) Destructive() bool {
	switch k {
	case Sleep, Shutdown, Restart:
		return true
	}
	return false
}

// Downgrade rewrites destructive actions to ShowMessage. It is applied
// at the configuration load/store boundary, the single place unsafe
// persisted actions can enter, and is idempotent. The boolean reports
// whether a rewrite happened, for audit logging.
func Downgrade(a Action) (Action, bool) {
	if a.Kind.Destructive() {
		return Action{Kind: ShowMessage}, true
	}
	return a, false
}

// Package notify delivers completion messages to the desktop
// notification service, with a terminal-bell fallback.
package notify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/beeep"
)

const maxMessageLen = 200

// Desktop sends notifications through the platform notification
// daemon via beeep.
type Desktop struct {
	appName string
}

func NewDesktop(appName string) *Desktop {
	return &Desktop{appName: appName}
}

// Notify shows the message, optionally with the platform alert sound.
// A failing notification daemon degrades to a terminal bell rather
// than surfacing an error to the timer.
func (d *Desktop) Notify(message string, playSound bool) error {
	msg := capMessage(message)
	if msg == "" {
		return nil
	}

	var err error
	if playSound {
		err = beeep.Alert(d.appName, msg, "")
	} else {
		err = beeep.Notify(d.appName, msg, "")
	}
	if err != nil {
		terminalBell()
	}
	return nil
}

// capMessage trims the message and bounds its length in runes, so the
// cap never splits a multi-byte character.
func capMessage(message string) string {
	msg := strings.TrimSpace(message)
	if utf8.RuneCountInString(msg) <= maxMessageLen {
		return msg
	}
	return string([]rune(msg)[:maxMessageLen]) + "…"
}

// terminalBell outputs a bell character as a last-resort signal.
func terminalBell() {
	fmt.Print("\a")
}

package action

// SystemController is the capability surface for host-level effects.
// Calls are best-effort one-shots with no completion guarantee.
type SystemController interface {
	LockSession() error
	OpenPath(path string) error
	OpenURL(url string) error
	Sleep() error
	Shutdown() error
	Restart() error
}

// Shell executes system requests through platform commands. The
// command tables live in system_*.go behind build tags.
type Shell struct{}

func NewShell() Shell { return Shell{} }

func (Shell) LockSession() error         { return runDetached(lockCommand()) }
func (Shell) OpenPath(path string) error { return runDetached(openCommand(path)) }
func (Shell) OpenURL(url string) error   { return runDetached(openCommand(url)) }
func (Shell) Sleep() error               { return runDetached(sleepCommand()) }
func (Shell) Shutdown() error            { return runDetached(shutdownCommand()) }
func (Shell) Restart() error             { return runDetached(restartCommand()) }

//go:build !linux && !darwin && !windows

package action

func runDetached(name string, args []string) error { return nil }

func lockCommand() (string, []string)              { return "", nil }
func openCommand(target string) (string, []string) { return "", nil }
func sleepCommand() (string, []string)             { return "", nil }
func shutdownCommand() (string, []string)          { return "", nil }
func restartCommand() (string, []string)           { return "", nil }

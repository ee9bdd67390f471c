//go:build darwin

package action

import "os/exec"

func runDetached(name string, args []string) error {
	return exec.Command(name, args...).Start()
}

func lockCommand() (string, []string) {
	return "pmset", []string{"displaysleepnow"}
}

func openCommand(target string) (string, []string) {
	return "open", []string{target}
}

func sleepCommand() (string, []string) {
	return "pmset", []string{"sleepnow"}
}

func shutdownCommand() (string, []string) {
	return "osascript", []string{"-e", `tell app "System Events" to shut down`}
}

func restartCommand() (string, []string) {
	return "osascript", []string{"-e", `tell app "System Events" to restart`}
}

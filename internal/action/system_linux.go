//go:build linux

package action

import "os/exec"

func runDetached(name string, args []string) error {
	return exec.Command(name, args...).Start()
}

func lockCommand() (string, []string) {
	return "loginctl", []string{"lock-session"}
}

func openCommand(target string) (string, []string) {
	return "xdg-open", []string{target}
}

func sleepCommand() (string, []string) {
	return "systemctl", []string{"suspend"}
}

func shutdownCommand() (string, []string) {
	return "systemctl", []string{"poweroff"}
}

func restartCommand() (string, []string) {
	return "systemctl", []string{"reboot"}
}

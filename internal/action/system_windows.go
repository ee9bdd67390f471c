//go:build windows

package action

import "os/exec"

func runDetached(name string, args []string) error {
	return exec.Command(name, args...).Start()
}

func lockCommand() (string, []string) {
	return "rundll32.exe", []string{"user32.dll,LockWorkStation"}
}

func openCommand(target string) (string, []string) {
	return "cmd", []string{"/c", "start", "", target}
}

func sleepCommand() (string, []string) {
	return "rundll32.exe", []string{"powrprof.dll,SetSuspendState", "0,1,0"}
}

func shutdownCommand() (string, []string) {
	return "shutdown", []string{"/s", "/t", "0"}
}

func restartCommand() (string, []string) {
	return "shutdown", []string{"/r", "/t", "0"}
}

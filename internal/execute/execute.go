package execute

import (
	"os"
	"os/exec"
	"syscall"
)

// Command starts command through sh in its own session and does not wait for
// it. The recognized gesture name is passed in $DOLLAR_GESTURE.
func Command(command, gesture string) error {
	if command == "" {
		return nil
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Env = append(os.Environ(), "DOLLAR_GESTURE="+gesture)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

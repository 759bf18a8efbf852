package player

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Launcher spawns the external media player for a selected file. The child
// process is fire-and-forget: its lifetime is independent of the UI and the
// launcher never waits on it from the caller's goroutine.
type Launcher struct {
	command string
	logDir  string
}

// NewLauncher builds a launcher running command with output captured under
// logDir.
func NewLauncher(command, logDir string) *Launcher {
	return &Launcher{command: command, logDir: logDir}
}

// Play starts `command <path>` with stdout and stderr redirected to out.log
// and err.log (truncate-create). A spawn failure is returned to the caller
// as a plain error; it must never take down the navigation loop.
func (l *Launcher) Play(path string) error {
	if l.command == "" {
		return fmt.Errorf("no player command configured")
	}

	outLog, err := os.Create(filepath.Join(l.logDir, "out.log"))
	if err != nil {
		return fmt.Errorf("open out.log: %w", err)
	}
	errLog, err := os.Create(filepath.Join(l.logDir, "err.log"))
	if err != nil {
		outLog.Close()
		return fmt.Errorf("open err.log: %w", err)
	}

	cmd := exec.Command(l.command, path)
	cmd.Stdout = outLog
	cmd.Stderr = errLog

	if err := cmd.Start(); err != nil {
		outLog.Close()
		errLog.Close()
		return fmt.Errorf("start %s: %w", l.command, err)
	}

	// Reap the child off the UI path so it never becomes a zombie.
	go func() {
		_ = cmd.Wait()
		outLog.Close()
		errLog.Close()
	}()
	return nil
}

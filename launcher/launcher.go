package launcher

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"github.com/mobile-next/gestured/utils"
)

// SpawnFunc starts name with args and returns once the process has been
// handed off, or with the error that prevented it from starting.
type SpawnFunc func(name string, args []string) error

// ProcessLauncher runs every command on its own goroutine. Launch returns
// immediately and the outcome is never reported back to the caller.
type ProcessLauncher struct {
	tokenizer *Tokenizer
	spawn     SpawnFunc
}

// NewProcessLauncher creates a launcher that starts real processes.
func NewProcessLauncher() (*ProcessLauncher, error) {
	return NewProcessLauncherWithSpawn(SpawnProcess)
}

func NewProcessLauncherWithSpawn(spawn SpawnFunc) (*ProcessLauncher, error) {
	tokenizer, err := NewTokenizer(defaultTokenizerCacheSize)
	if err != nil {
		return nil, err
	}
	return &ProcessLauncher{
		tokenizer: tokenizer,
		spawn:     spawn,
	}, nil
}

// Launch hands command to a new goroutine. Commands that cannot be
// tokenized are skipped; commands that fail to start only end their own
// goroutine.
func (l *ProcessLauncher) Launch(command string) {
	id := uuid.New().String()
	go l.run(id, command)
}

func (l *ProcessLauncher) run(id string, command string) {
	log := utils.Logger().WithField("task", id)

	argv, err := l.tokenizer.Split(command)
	if err != nil {
		log.Debugf("Skipping launch: %v", err)
		return
	}

	log.Debugf("Launching %q", command)
	if err := l.spawn(argv[0], argv[1:]); err != nil {
		log.Errorf("Failed to start %q: %v", command, err)
	}
}

// SpawnProcess starts name in its own process group with the daemon's
// environment and standard streams, then reaps it once it exits.
func SpawnProcess(name string, args []string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stdin = nil
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	utils.ConfigureDetachedProcAttr(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	utils.Verbose("Started %s with PID: %d", name, cmd.Process.Pid)
	go func() {
		if err := cmd.Wait(); err != nil {
			utils.Verbose("%s (PID %d) exited: %v", name, cmd.Process.Pid, err)
		}
	}()
	return nil
}

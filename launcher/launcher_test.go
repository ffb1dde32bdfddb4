package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnRecorder struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (s *spawnRecorder) spawn(name string, args []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, append([]string{name}, args...))
	return s.err
}

func (s *spawnRecorder) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *spawnRecorder) snapshot() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string(nil), s.calls...)
}

func TestProcessLauncher_LaunchSpawnsTokenizedCommand(t *testing.T) {
	rec := &spawnRecorder{}
	l, err := NewProcessLauncherWithSpawn(rec.spawn)
	require.NoError(t, err)

	l.Launch("notify-send 'swipe up'")

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, [][]string{{"notify-send", "swipe up"}}, rec.snapshot())
}

func TestProcessLauncher_UnbalancedQuotesSkipped(t *testing.T) {
	rec := &spawnRecorder{}
	l, err := NewProcessLauncherWithSpawn(rec.spawn)
	require.NoError(t, err)

	l.Launch("'unterminated")

	assert.Never(t, func() bool { return rec.count() > 0 }, 100*time.Millisecond, 5*time.Millisecond)
}

func TestProcessLauncher_SpawnFailureIsIsolated(t *testing.T) {
	rec := &spawnRecorder{err: errors.New("executable file not found")}
	l, err := NewProcessLauncherWithSpawn(rec.spawn)
	require.NoError(t, err)

	l.Launch("missing-binary")
	l.Launch("missing-binary --again")

	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestProcessLauncher_LaunchDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	started := make(chan struct{}, 2)
	l, err := NewProcessLauncherWithSpawn(func(name string, args []string) error {
		started <- struct{}{}
		<-release
		return nil
	})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		l.Launch("slow one")
		l.Launch("slow two")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Launch blocked on a hanging spawn")
	}

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("expected both launches to start")
		}
	}
}

func TestSpawnProcess_StartsRealCommand(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "launched")

	err := SpawnProcess("sh", []string{"-c", "touch " + marker})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSpawnProcess_MissingExecutable(t *testing.T) {
	err := SpawnProcess("gestured-test-no-such-binary", nil)
	assert.Error(t, err)
}

package devices

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/mobile-next/gestured/utils"
)

const (
	DefaultSeat = "seat0"

	libinputBinary = "libinput"
)

var deltaPattern = regexp.MustCompile(`(-?\d+(?:\.\d+)?)/\s*(-?\d+(?:\.\d+)?)`)

// LibinputSource reads swipe gestures from `libinput debug-events`.
type LibinputSource struct {
	iface   Interface
	devices []string

	mu      sync.Mutex
	cmd     *exec.Cmd
	scanner *bufio.Scanner
	queue   []Event
	closed  bool
}

// NewLibinputSource creates a source that listens on a udev seat, or on the
// given device nodes when devicePaths is not empty.
func NewLibinputSource(iface Interface, devicePaths []string) *LibinputSource {
	if iface == nil {
		iface = FileInterface{}
	}
	return &LibinputSource{
		iface:   iface,
		devices: devicePaths,
	}
}

func newLibinputSourceFromReader(r io.Reader) *LibinputSource {
	return &LibinputSource{
		iface:   FileInterface{},
		scanner: bufio.NewScanner(r),
	}
}

// AssignSeat starts the libinput event stream for seat. When explicit device
// nodes were configured they are checked for read access and used instead.
func (s *LibinputSource) AssignSeat(seat string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		return fmt.Errorf("seat already assigned")
	}

	if seat == "" {
		seat = DefaultSeat
	}

	args := []string{"debug-events"}
	if len(s.devices) > 0 {
		if err := CheckReadable(s.iface, s.devices); err != nil {
			return err
		}
		for _, path := range s.devices {
			args = append(args, "--device", path)
		}
	} else {
		args = append(args, "--udev", seat)
	}

	name, args, err := debugEventsCommand(args)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to attach to libinput output: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start libinput: %w", err)
	}

	utils.Verbose("Started %s with PID: %d", strings.Join(cmd.Args, " "), cmd.Process.Pid)
	s.cmd = cmd
	s.scanner = bufio.NewScanner(stdout)
	return nil
}

// debugEventsCommand resolves the libinput binary and, when available, wraps
// it in stdbuf so events are not held back by pipe buffering.
func debugEventsCommand(args []string) (string, []string, error) {
	libinput, err := exec.LookPath(libinputBinary)
	if err != nil {
		return "", nil, fmt.Errorf("libinput not found in PATH: %w", err)
	}

	if stdbuf, err := exec.LookPath("stdbuf"); err == nil {
		return stdbuf, append([]string{"-oL", "--", libinput}, args...), nil
	}

	return libinput, args, nil
}

// Dispatch blocks until libinput reports the next line of output.
func (s *LibinputSource) Dispatch() error {
	if s.scanner == nil {
		return fmt.Errorf("no seat assigned")
	}

	if !s.scanner.Scan() {
		err := s.scanner.Err()
		if err == nil {
			err = io.EOF
		}
		if waitErr := s.wait(); waitErr != nil {
			err = fmt.Errorf("%w (libinput: %v)", err, waitErr)
		}
		return fmt.Errorf("libinput event stream closed: %w", err)
	}

	line := s.scanner.Text()
	event, ok := parseDebugEventLine(line)
	if ok {
		s.queue = append(s.queue, event)
	}
	return nil
}

func (s *LibinputSource) NextEvent() (Event, bool) {
	if len(s.queue) == 0 {
		return Event{}, false
	}
	event := s.queue[0]
	s.queue = s.queue[1:]
	return event, true
}

// wait reaps the libinput process once its output has been fully read.
func (s *LibinputSource) wait() error {
	s.mu.Lock()
	cmd := s.cmd
	s.mu.Unlock()

	if cmd == nil {
		return nil
	}
	return cmd.Wait()
}

// Close stops the libinput process, which unblocks a pending Dispatch.
func (s *LibinputSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	s.closed = true

	utils.Verbose("Stopping libinput process with PID: %d", s.cmd.Process.Pid)
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to stop libinput: %w", err)
	}
	return nil
}

// parseDebugEventLine converts one line of `libinput debug-events` output
// into a swipe event. Lines for other event types are ignored.
//
//	-event9   GESTURE_SWIPE_BEGIN     +2.603s	3
//	 event9   GESTURE_SWIPE_UPDATE    +2.603s	3  0.34/ 0.00 ( 1.28/ 0.00 unaccelerated)
//	 event9   GESTURE_SWIPE_END       +2.779s	3 cancelled
func parseDebugEventLine(line string) (Event, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Event{}, false
	}

	var kind EventKind
	switch fields[1] {
	case "GESTURE_SWIPE_BEGIN":
		kind = SwipeBegin
	case "GESTURE_SWIPE_UPDATE":
		kind = SwipeUpdate
	case "GESTURE_SWIPE_END":
		kind = SwipeEnd
	default:
		return Event{}, false
	}

	idx := 2
	if strings.HasPrefix(fields[idx], "+") {
		idx++
	}
	if idx >= len(fields) {
		return Event{}, false
	}

	fingers, err := strconv.Atoi(fields[idx])
	if err != nil {
		utils.Verbose("Ignoring malformed libinput line %q: %v", line, err)
		return Event{}, false
	}

	event := Event{
		Kind:    kind,
		Device:  strings.TrimLeft(fields[0], "-"),
		Fingers: fingers,
	}
	rest := strings.Join(fields[idx+1:], " ")

	switch kind {
	case SwipeUpdate:
		match := deltaPattern.FindStringSubmatch(rest)
		if match == nil {
			utils.Verbose("Ignoring libinput update without deltas: %q", line)
			return Event{}, false
		}
		// the pattern guarantees both groups parse
		event.DX, _ = strconv.ParseFloat(match[1], 64)
		event.DY, _ = strconv.ParseFloat(match[2], 64)
	case SwipeEnd:
		event.Cancelled = strings.Contains(rest, "cancelled")
	}

	return event, true
}

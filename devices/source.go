package devices

import (
	"fmt"
	"os"
	"syscall"

	"github.com/mobile-next/gestured/utils"
)

// Interface opens and closes device nodes on behalf of an input backend.
// Implementations decide how access to restricted /dev/input nodes is obtained.
type Interface interface {
	OpenRestricted(path string, flags int) (*os.File, error)
	CloseRestricted(f *os.File)
}

// EventSource yields swipe events from an input device subsystem.
//
// Dispatch blocks until the backend has new data and refills the internal
// queue; NextEvent drains that queue and reports false once it is empty.
// An error from Dispatch means the source is no longer usable.
type EventSource interface {
	AssignSeat(seat string) error
	Dispatch() error
	NextEvent() (Event, bool)
	Close() error
}

// FileInterface opens device nodes directly with the caller's privileges.
type FileInterface struct{}

// OpenRestricted opens path honoring the access mode in flags
// (O_RDONLY, O_WRONLY or O_RDWR) plus any extra open flags.
func (FileInterface) OpenRestricted(path string, flags int) (*os.File, error) {
	f, err := os.OpenFile(path, flags, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

func (FileInterface) CloseRestricted(f *os.File) {
	if f == nil {
		return
	}
	if err := f.Close(); err != nil {
		utils.Verbose("Failed to close %s: %v", f.Name(), err)
	}
}

// CheckReadable verifies that every path can be opened for reading through
// iface. Each node is closed again immediately.
func CheckReadable(iface Interface, paths []string) error {
	for _, path := range paths {
		f, err := iface.OpenRestricted(path, os.O_RDONLY|syscall.O_NONBLOCK)
		if err != nil {
			return err
		}
		iface.CloseRestricted(f)
	}
	return nil
}

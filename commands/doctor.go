package commands

import (
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mobile-next/gestured/devices"
)

const inputDevicePattern = "/dev/input/event*"

type DoctorInfo struct {
	GesturedVersion    string `json:"gestured_version"`
	OS                 string `json:"os"`
	OSVersion          string `json:"os_version"`
	LibinputPath       string `json:"libinput_path"`
	LibinputVersion    string `json:"libinput_version,omitempty"`
	StdbufPath         string `json:"stdbuf_path"`
	InInputGroup       *bool  `json:"in_input_group,omitempty"`
	EventNodes         int    `json:"event_nodes"`
	ReadableEventNodes int    `json:"readable_event_nodes"`
}

func lookPath(name string) string {
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

// isInInputGroup reports whether the current user belongs to the "input"
// group, which owns /dev/input/event* on most distributions.
func isInInputGroup() *bool {
	current, err := user.Current()
	if err != nil {
		return nil
	}

	group, err := user.LookupGroup("input")
	if err != nil {
		return nil
	}

	gids, err := current.GroupIds()
	if err != nil {
		return nil
	}

	member := false
	for _, gid := range gids {
		if gid == group.Gid {
			member = true
			break
		}
	}
	return &member
}

// countEventNodes returns how many event nodes exist and how many of them
// can be opened for reading by this process.
func countEventNodes(pattern string, iface devices.Interface) (int, int) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return 0, 0
	}

	readable := 0
	for _, path := range paths {
		if devices.CheckReadable(iface, []string{path}) == nil {
			readable++
		}
	}
	return len(paths), readable
}

func getOSVersion() string {
	switch runtime.GOOS {
	case "linux":
		// try reading /etc/os-release
		data, err := os.ReadFile("/etc/os-release")
		if err != nil {
			return ""
		}
		lines := strings.Split(string(data), "\n")
		for _, line := range lines {
			if strings.HasPrefix(line, "PRETTY_NAME=") {
				return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), "\"")
			}
		}
		return ""
	case "freebsd":
		cmd := exec.Command("freebsd-version")
		output, err := cmd.CombinedOutput()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(output))
	default:
		return ""
	}
}

// DoctorCommand performs system diagnostics and returns information about the environment
func DoctorCommand(version string) *CommandResponse {
	info := DoctorInfo{
		GesturedVersion: version,
		OS:              runtime.GOOS,
		OSVersion:       getOSVersion(),
		LibinputPath:    lookPath("libinput"),
		StdbufPath:      lookPath("stdbuf"),
		InInputGroup:    isInInputGroup(),
	}

	// get libinput version if libinput is available
	if info.LibinputPath != "" {
		if v, err := devices.LibinputVersion(); err == nil {
			info.LibinputVersion = v
		}
	}

	info.EventNodes, info.ReadableEventNodes = countEventNodes(inputDevicePattern, devices.FileInterface{})

	return NewSuccessResponse(info)
}

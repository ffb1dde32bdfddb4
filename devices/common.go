package devices

import (
	"bufio"
	"fmt"
	"os/exec"
	"strings"
)

// InputDeviceInfo represents the JSON-friendly libinput device information
type InputDeviceInfo struct {
	Name         string   `json:"name"`
	Kernel       string   `json:"kernel"`
	Seat         string   `json:"seat,omitempty"`
	Capabilities []string `json:"capabilities"`
	Gestures     bool     `json:"gestures"`
}

func runLibinputCommand(args ...string) ([]byte, error) {
	cmd := exec.Command(libinputBinary, args...)
	return cmd.Output()
}

// ListInputDevices returns every device libinput can see. When gesturesOnly
// is set, devices without gesture capability are left out.
func ListInputDevices(gesturesOnly bool) ([]InputDeviceInfo, error) {
	output, err := runLibinputCommand("list-devices")
	if err != nil {
		return nil, fmt.Errorf("failed to list libinput devices: %w", err)
	}

	all := parseListDevices(string(output))
	if !gesturesOnly {
		return all, nil
	}

	var filtered []InputDeviceInfo
	for _, d := range all {
		if d.Gestures {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// LibinputVersion returns the output of `libinput --version`
func LibinputVersion() (string, error) {
	output, err := runLibinputCommand("--version")
	if err != nil {
		return "", fmt.Errorf("failed to get libinput version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// parseListDevices parses the blank-line separated blocks printed by
// `libinput list-devices`.
func parseListDevices(output string) []InputDeviceInfo {
	var devices []InputDeviceInfo
	var current *InputDeviceInfo

	flush := func() {
		if current != nil && current.Name != "" {
			devices = append(devices, *current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		if current == nil {
			current = &InputDeviceInfo{Capabilities: []string{}}
		}

		switch strings.TrimSpace(key) {
		case "Device":
			current.Name = value
		case "Kernel":
			current.Kernel = value
		case "Seat":
			seat, _, _ := strings.Cut(value, ",")
			current.Seat = strings.TrimSpace(seat)
		case "Capabilities":
			current.Capabilities = strings.Fields(value)
			for _, c := range current.Capabilities {
				if c == "gesture" {
					current.Gestures = true
				}
			}
		}
	}
	flush()

	return devices
}

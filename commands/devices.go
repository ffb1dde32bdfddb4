package commands

import (
	"github.com/mobile-next/gestured/devices"
)

// DevicesCommand lists libinput devices, optionally only gesture-capable ones
func DevicesCommand(showAll bool) *CommandResponse {
	deviceInfoList, err := devices.ListInputDevices(!showAll)
	if err != nil {
		return NewErrorResponse(err)
	}

	if deviceInfoList == nil {
		deviceInfoList = []devices.InputDeviceInfo{}
	}

	return NewSuccessResponse(map[string]interface{}{
		"devices": deviceInfoList,
	})
}

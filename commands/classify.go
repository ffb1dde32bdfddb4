package commands

import (
	"fmt"
	"math"

	"github.com/mobile-next/gestured/gestures"
)

// ClassifyRequest represents the parameters for a classify command
type ClassifyRequest struct {
	DX        float64 `json:"dx"`
	DY        float64 `json:"dy"`
	Fingers   int     `json:"fingers"`
	Threshold float64 `json:"threshold"`
	Gestures  []string `json:"gestures,omitempty"`
}

// ClassifyResult describes how a swipe vector would be handled
type ClassifyResult struct {
	Direction string   `json:"direction"`
	Angle     float64  `json:"angle"`
	Length    float64  `json:"length"`
	Accepted  bool     `json:"accepted"`
	Matches   []string `json:"matches"`
}

// commandCollector records commands instead of launching them
type commandCollector struct {
	commands []string
}

func (c *commandCollector) Launch(command string) {
	c.commands = append(c.commands, command)
}

// ClassifyCommand runs a swipe vector through the same dispatcher the daemon
// uses, without launching anything.
func ClassifyCommand(req ClassifyRequest) *CommandResponse {
	if math.IsNaN(req.DX) || math.IsNaN(req.DY) {
		return NewErrorResponse(fmt.Errorf("dx and dy must be numbers"))
	}

	var bindings []gestures.Binding
	if len(req.Gestures) > 0 {
		var err error
		bindings, err = gestures.ParseBindings(req.Gestures)
		if err != nil {
			return NewErrorResponse(err)
		}
	}

	collector := &commandCollector{commands: []string{}}
	dispatcher := gestures.NewDispatcher(bindings, req.Threshold, collector)
	dispatcher.Complete(req.Fingers, req.DX, req.DY)

	length := gestures.Length(req.DX, req.DY)
	return NewSuccessResponse(ClassifyResult{
		Direction: gestures.Classify(req.DX, req.DY).String(),
		Angle:     gestures.Angle(req.DX, req.DY),
		Length:    length,
		Accepted:  length > req.Threshold,
		Matches:   collector.commands,
	})
}

package config

import (
	"fmt"
	"strings"
)

// InputSourceID selects which pointer device feeds the gesture interpreter
type InputSourceID int

const (
	InputSourceAuto InputSourceID = iota // Touch on mobile builds, mouse elsewhere
	InputSourceMouse
	InputSourceTouch
)

var inputSourceNames = map[InputSourceID]string{
	InputSourceAuto:  "auto",
	InputSourceMouse: "mouse",
	InputSourceTouch: "touch",
}

func (id InputSourceID) String() string {
	if name, ok := inputSourceNames[id]; ok {
		return name
	}
	return fmt.Sprintf("InputSourceID(%d)", int(id))
}

// ParseInputSource maps a -input flag value to an InputSourceID.
func ParseInputSource(s string) (InputSourceID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for id, n := range inputSourceNames {
		if n == name {
			return id, nil
		}
	}
	return InputSourceAuto, fmt.Errorf("unknown input source %q (want auto, mouse or touch)", s)
}

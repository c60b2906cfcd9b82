package input

// Key is a tracked logical input, already mapped from physical keys/buttons by the front-end
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyRun
	KeyInteract
	KeyOrbitLeft
	KeyOrbitRight
	KeyLeftClick
	KeyRightClick
	KeyQuit
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyForward:    "forward",
	KeyBack:       "back",
	KeyLeft:       "left",
	KeyRight:      "right",
	KeyRun:        "run",
	KeyInteract:   "interact",
	KeyOrbitLeft:  "orbit_left",
	KeyOrbitRight: "orbit_right",
	KeyLeftClick:  "left_click",
	KeyRightClick: "right_click",
	KeyQuit:       "quit",
}

func (k Key) String() string {
	if k >= KeyCount {
		return "unknown"
	}
	return keyNames[k]
}

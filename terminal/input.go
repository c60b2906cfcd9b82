package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/trinket/input"
)

// ActionKind is a front-end command handled outside the simulation
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionQuit
	ActionMute
	ActionPlace  // Slot carries the 0-based inventory slot
	ActionResize // Screen size changed
)

// Action is the result of handling one device event
type Action struct {
	Kind ActionKind
	Slot int
}

// InputAdapter turns tcell events into accumulated per-tick input
// Event handling and snapshotting run on different goroutines
type InputAdapter struct {
	mu       sync.Mutex
	acc      *input.Accumulator
	viewport Viewport
}

// NewInputAdapter creates an adapter; terminal keys stay held for holdWindow after their last repeat,
// mouse buttons until tcell reports them up
func NewInputAdapter(holdWindow time.Duration) *InputAdapter {
	acc := input.NewAccumulator(holdWindow)
	acc.TrackRelease(input.KeyLeftClick, input.KeyRightClick)
	return &InputAdapter{acc: acc}
}

// SetViewport updates the map area used for cursor mapping
func (a *InputAdapter) SetViewport(v Viewport) {
	a.mu.Lock()
	a.viewport = v
	a.mu.Unlock()
}

// Snapshot hands out the input for one tick
func (a *InputAdapter) Snapshot(now time.Time) *input.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.acc.Snapshot(now)
	return &s
}

// HandleEvent records ev and returns any front-end action it triggers
func (a *InputAdapter) HandleEvent(ev tcell.Event, now time.Time) Action {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev, now)
	case *tcell.EventMouse:
		a.handleMouse(ev, now)
	case *tcell.EventResize:
		return Action{Kind: ActionResize}
	}
	return Action{}
}

func (a *InputAdapter) handleKey(ev *tcell.EventKey, now time.Time) Action {
	run := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyUp:
		a.move(input.KeyForward, run, now)
	case tcell.KeyDown:
		a.move(input.KeyBack, run, now)
	case tcell.KeyLeft:
		a.move(input.KeyLeft, run, now)
	case tcell.KeyRight:
		a.move(input.KeyRight, run, now)
	case tcell.KeyEnter:
		a.acc.Press(input.KeyInteract, now)
	case tcell.KeyRune:
		return a.handleRune(ev.Rune(), now)
	}
	return Action{}
}

func (a *InputAdapter) handleRune(r rune, now time.Time) Action {
	// Upper-case movement letters arrive with shift held
	switch r {
	case 'w', 'W':
		a.move(input.KeyForward, r == 'W', now)
	case 's', 'S':
		a.move(input.KeyBack, r == 'S', now)
	case 'a', 'A':
		a.move(input.KeyLeft, r == 'A', now)
	case 'd', 'D':
		a.move(input.KeyRight, r == 'D', now)
	case 'e', ' ':
		a.acc.Press(input.KeyInteract, now)
	case 'q':
		a.acc.Press(input.KeyOrbitLeft, now)
	case 'r':
		a.acc.Press(input.KeyOrbitRight, now)
	case '+', '=':
		a.acc.Scroll(1)
	case '-':
		a.acc.Scroll(-1)
	case 'm':
		return Action{Kind: ActionMute}
	case 'Q':
		return Action{Kind: ActionQuit}
	default:
		if r >= '1' && r <= '9' {
			return Action{Kind: ActionPlace, Slot: int(r - '1')}
		}
	}
	return Action{}
}

func (a *InputAdapter) move(k input.Key, run bool, now time.Time) {
	a.acc.Press(k, now)
	if run {
		a.acc.Press(input.KeyRun, now)
	}
}

func (a *InputAdapter) handleMouse(ev *tcell.EventMouse, now time.Time) {
	x, y := ev.Position()
	ndc, valid := a.viewport.CellToNDC(x, y)
	a.acc.Cursor(ndc, mgl32.Vec2{float32(x), float32(y)}, valid)

	buttons := ev.Buttons()
	if buttons&tcell.Button1 != 0 {
		a.acc.Press(input.KeyLeftClick, now)
	} else {
		a.acc.Release(input.KeyLeftClick)
	}
	if buttons&tcell.Button2 != 0 {
		a.acc.Press(input.KeyRightClick, now)
	} else {
		a.acc.Release(input.KeyRightClick)
	}
	if buttons&tcell.WheelUp != 0 {
		a.acc.Scroll(1)
	}
	if buttons&tcell.WheelDown != 0 {
		a.acc.Scroll(-1)
	}
}
